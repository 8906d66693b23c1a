package quote

// Location 标准地点（从数据源一次性加载，加载后不可变）
type Location struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`          // 规范行政区划名，如 "浙江省"、"杭州市"
	PricingRules []string `json:"pricing_rules"` // 关联的计价规则 ID（可为空）
}

// PriceResult 单个公司的报价结果
type PriceResult struct {
	Company    string  `json:"company"`
	Price      float64 `json:"price"`
	Currency   string  `json:"currency"`
	LeadTime   string  `json:"lead_time,omitempty"`
	IsCheapest bool    `json:"is_cheapest"`
	Note       string  `json:"note,omitempty"`
}

// ModelType 计价模型类型标签
type ModelType string

const (
	ModelFirstAdditional     ModelType = "first_additional"            // 首重 + 续重
	ModelTieredMinimumCharge ModelType = "tiered_minimum_charge"       // 分段计价 + 最低收费
	ModelComplexTiered       ModelType = "complex_tiered"              // 复杂分段（固定价/基础费 + 进位）
	ModelFirstPlusTieredFlat ModelType = "first_plus_tiered_flat_rate" // 首重 + 总重分段固定价
)

// Rounding 进位规则
type Rounding string

const (
	RoundingNone   Rounding = "none"
	RoundingUpTo02 Rounding = "up_to_0.2" // 向上进位到 0.2
	RoundingUpTo1  Rounding = "up_to_1"   // 向上进位到整数
)

// PriceTier 价格分段的最小单元
// 区间按数组顺序求值，先匹配者生效；顺序即优先级，不按 UpToKg 重排
type PriceTier struct {
	UpToKg     *float64 `json:"upToKg"` // 重量上限，nil 代表无上限
	PricePerKg float64  `json:"pricePerKg,omitempty"`
	FlatPrice  float64  `json:"flatPrice,omitempty"`
	BaseFee    float64  `json:"baseFee,omitempty"`
}

// matches 判断重量是否落在该区间内
func (t *PriceTier) matches(weight float64) bool {
	return t.UpToKg == nil || weight <= *t.UpToKg
}

// PricingModel 计价模型（每种 ModelType 一个变体，只携带各自必需的字段）
// Evaluate 返回 (价格, 是否适用)；不适用不是错误，代表该规则无法承运此重量
type PricingModel interface {
	Evaluate(weight float64) (price float64, ok bool)
	Type() ModelType
}

// PriceRule 一条完整的计价规则
// Model 在加载时由 ModelType 及其伴生字段解析而来；解析失败的规则在加载阶段丢弃
type PriceRule struct {
	ID          string
	RuleName    string
	CompanyName string
	Destination string // 目的地描述文本，地点匹配按其包含关系判定
	Timeliness  string
	Model       PricingModel
}
