package quote

import (
	"fmt"
	"sort"
)

// 新亮物流重量带键名
const (
	xinliangBandFixed = "≤50kg" // 固定总价带
	xinliangBand200   = "50-200kg"
	xinliangBand500   = "200-500kg"
	xinliangBand1000  = "500-1000kg"
	xinliangBand3000  = "1000-3000kg"
	xinliangBandMax   = "≥3000kg"
)

// XinliangResolver 新亮物流报价适配器
// 唯一需要市级费率表的承运商：城市未命中时取同省首个城市作参考价
type XinliangResolver struct {
	table XinliangTable
}

// NewXinliangResolver 创建新亮物流适配器
func NewXinliangResolver(table XinliangTable) *XinliangResolver {
	return &XinliangResolver{table: table}
}

func (r *XinliangResolver) Company() string { return "新亮物流" }

func (r *XinliangResolver) Resolve(province, city string, weight float64) ResolverResult {
	cities := r.findProvince(province)
	if cities == nil {
		return ResolverResult{Note: "暂无该省份报价"}
	}

	// 城市按排序后的固定顺序匹配，多个城市命中同一输入时结果不随迭代顺序变化
	names := make([]string, 0, len(cities))
	for name := range cities {
		names = append(names, name)
	}
	if len(names) == 0 {
		return ResolverResult{Note: "暂无该省份报价"}
	}
	sort.Strings(names)

	// 城市精确/模糊命中
	if city != "" {
		for _, name := range names {
			if !FuzzyMatchCity(city, name) {
				continue
			}
			rate := cities[name]
			price := xinliangPrice(rate.Rates, weight)
			if price <= 0 {
				return ResolverResult{Note: noteCalcFailed}
			}
			return ResolverResult{Price: price, LeadTime: rate.LeadTimeDays}
		}
	}

	// 城市未命中：取省内排序后的首个城市作参考价
	ref := names[0]
	price := xinliangPrice(cities[ref].Rates, weight)
	if price <= 0 {
		return ResolverResult{Note: noteCalcFailed}
	}
	return ResolverResult{
		Price:    price,
		LeadTime: cities[ref].LeadTimeDays,
		Note:     fmt.Sprintf("城市未收录，按 %s 参考价估算", ref),
	}
}

// findProvince 在费率表中按标准化省名查找
func (r *XinliangResolver) findProvince(province string) map[string]XinliangCityRate {
	for name, cities := range r.table.Data {
		if IsSameProvince(name, province) {
			return cities
		}
	}
	return nil
}

// xinliangPrice 按重量带计价：50kg 以内固定总价，以上按带内每公斤单价
func xinliangPrice(rates map[string]float64, weight float64) float64 {
	if weight <= 50 {
		return rates[xinliangBandFixed]
	}

	var band string
	switch {
	case weight <= 200:
		band = xinliangBand200
	case weight <= 500:
		band = xinliangBand500
	case weight <= 1000:
		band = xinliangBand1000
	case weight <= 3000:
		band = xinliangBand3000
	default:
		band = xinliangBandMax
	}

	rate := rates[band]
	if rate <= 0 {
		return 0
	}
	return rate * weight
}
