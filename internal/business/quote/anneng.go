package quote

import "strings"

const (
	annengMinBillableKg = 15.0 // 最低计费重量：不足按 15kg 计
	annengMaxWeightKg   = 70.0 // 承运上限
	annengSurcharge     = 5.0  // 单票固定附加费
)

// AnnengResolver 安能报价适配器（标准与定时达共用，按行表区分）
// 城市优先、省份兜底：命中城市为精确价，仅命中省份为参考价
type AnnengResolver struct {
	company string
	rows    []AnnengRow
}

// NewAnnengResolver 创建安能适配器
// company 为产品名（安能标准 / 安能定时达），rows 为对应产品的行表
func NewAnnengResolver(company string, rows []AnnengRow) *AnnengResolver {
	return &AnnengResolver{company: company, rows: rows}
}

func (r *AnnengResolver) Company() string { return r.company }

func (r *AnnengResolver) Resolve(province, city string, weight float64) ResolverResult {
	if weight > annengMaxWeightKg {
		return ResolverResult{Note: "重量超过70kg，安能不承运"}
	}

	row, precise := r.findRow(province, city)
	if row == nil {
		return ResolverResult{Note: "暂无该地区报价"}
	}

	notes := make([]string, 0, 2)
	if precise {
		notes = append(notes, "城市精确匹配")
	} else {
		notes = append(notes, "省内参考价")
	}

	effective := weight
	if effective < annengMinBillableKg {
		effective = annengMinBillableKg
		notes = append(notes, "不足15kg按15kg计费")
	}

	price := row.UnitPrice*effective + annengSurcharge
	if price <= annengSurcharge {
		return ResolverResult{Note: noteCalcFailed}
	}

	return ResolverResult{
		Price:    price,
		LeadTime: row.Time,
		Note:     strings.Join(notes, "，"),
	}
}

// findRow 先按城市在行表中精确查找，落空后退到省份匹配
func (r *AnnengResolver) findRow(province, city string) (*AnnengRow, bool) {
	if city != "" {
		for i := range r.rows {
			for _, c := range r.rows[i].Cities {
				if FuzzyMatchCity(city, c) {
					return &r.rows[i], true
				}
			}
		}
	}

	for i := range r.rows {
		if IsSameProvince(r.rows[i].Province, province) {
			return &r.rows[i], false
		}
	}

	return nil, false
}
