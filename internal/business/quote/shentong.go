package quote

// 申通分档定价：3kg 以内按固定档位价，超过后按省份单价整单计费
var shentongStagedBrackets = []struct {
	upToKg float64
	price  float64
}{
	{1, 2.5},
	{2, 3.5},
	{3, 4.5},
}

// shentongTieredRates 分档省份集合：省 → 3kg 以上每公斤单价
var shentongTieredRates = map[string]float64{
	"浙江": 1.2,
	"江苏": 1.2,
	"上海": 1.2,
	"安徽": 1.5,
	"福建": 1.8,
	"山东": 1.8,
	"河南": 2.0,
	"江西": 2.0,
	"湖北": 2.0,
	"湖南": 2.0,
}

// shentongFlatRates 一口价省份集合：省 → 每公斤单价，统一叠加基础费
var shentongFlatRates = map[string]float64{
	"广东":  1.6,
	"河北":  2.2,
	"山西":  2.5,
	"辽宁":  2.8,
	"吉林":  3.0,
	"黑龙江": 3.2,
	"四川":  2.8,
	"重庆":  2.6,
	"贵州":  3.0,
	"云南":  3.0,
	"陕西":  2.5,
	"甘肃":  3.5,
	"广西":  2.8,
	"海南":  3.5,
}

// shentongFlatBase 一口价省份的固定基础费
const shentongFlatBase = 5.0

// ShentongResolver 申通快递报价适配器
// 固化的省份表优先于兜底 regions 数据（见 DESIGN.md 对表重叠问题的裁决）
type ShentongResolver struct {
	table ShentongTable
}

// NewShentongResolver 创建申通适配器
func NewShentongResolver(table ShentongTable) *ShentongResolver {
	return &ShentongResolver{table: table}
}

func (r *ShentongResolver) Company() string { return "申通快递" }

func (r *ShentongResolver) Resolve(province, city string, weight float64) ResolverResult {
	prov := NormalizeProvince(province)

	// 分档省份：3kg 以内走档位价，超过整单按省单价
	if rate, ok := shentongTieredRates[prov]; ok {
		if weight <= 3 {
			for _, bracket := range shentongStagedBrackets {
				if weight <= bracket.upToKg {
					return ResolverResult{Price: bracket.price}
				}
			}
		}
		return ResolverResult{Price: weight * rate}
	}

	// 一口价省份：基础费 + 重量 × 省单价
	if rate, ok := shentongFlatRates[prov]; ok {
		return ResolverResult{Price: shentongFlatBase + weight*rate}
	}

	// 两张表都未覆盖：退回数据源的省级兜底费率
	for name, region := range r.table.Regions {
		if IsSameProvince(name, province) {
			price := region.Base + weight*region.ExtraPerKg
			if price <= 0 {
				return ResolverResult{Note: noteCalcFailed}
			}
			return ResolverResult{Price: price, Note: "按兜底费率估算"}
		}
	}

	return ResolverResult{Note: "暂无该地区报价"}
}
