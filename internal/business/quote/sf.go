package quote

// sfMaxWeightKg 顺丰承运上限
const sfMaxWeightKg = 20.0

// SFResolver 顺丰快递报价适配器：省级首重 + 续重
type SFResolver struct {
	table SFTable
}

// NewSFResolver 创建顺丰适配器
func NewSFResolver(table SFTable) *SFResolver {
	return &SFResolver{table: table}
}

func (r *SFResolver) Company() string { return "顺丰快递" }

func (r *SFResolver) Resolve(province, city string, weight float64) ResolverResult {
	// 重量上限先于地区查找判定
	if weight > sfMaxWeightKg {
		return ResolverResult{Note: "重量超过20kg，顺丰不承运"}
	}

	region, ok := r.findRegion(province)
	if !ok {
		return ResolverResult{Note: "暂无该地区报价"}
	}

	price := region.FirstKg
	if weight > 1 {
		price += (weight - 1) * region.AdditionalPerKg
	}
	if price <= 0 {
		return ResolverResult{Note: noteCalcFailed}
	}

	return ResolverResult{Price: price}
}

func (r *SFResolver) findRegion(province string) (SFRegion, bool) {
	for name, region := range r.table.Regions {
		if IsSameProvince(name, province) {
			return region, true
		}
	}
	return SFRegion{}, false
}
