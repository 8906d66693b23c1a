package profit

import "github.com/cocoozhong/logistics-calculator-v2/internal/business/profit"

// ProfitHandler 利润计算 HTTP 处理器
type ProfitHandler struct {
	store profit.Store
}

// NewProfitHandler 创建利润计算处理器实例
func NewProfitHandler(store profit.Store) *ProfitHandler {
	return &ProfitHandler{
		store: store,
	}
}
