package quote

// ResolverResult 单个承运商的解析结果
// Price 为 0 表示无法报价，此时 Note 给出人类可读的原因
type ResolverResult struct {
	Price    float64
	LeadTime string
	Note     string
}

// Priced 是否给出了有效报价
func (r ResolverResult) Priced() bool {
	return r.Price > 0
}

// Resolver 承运商报价适配器
// 每家公司一个实现：负责选择费率行、套用业务限制（最大重量、最低计费重量）并计价
// 实现必须是纯函数式的：相同输入返回相同结果，不得修改费率表
type Resolver interface {
	Company() string
	Resolve(province, city string, weight float64) ResolverResult
}

const noteCalcFailed = "计算失败"
