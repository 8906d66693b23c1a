package quote

import "github.com/cocoozhong/logistics-calculator-v2/internal/business"

// QuoteHandler 报价 HTTP 处理器
type QuoteHandler struct {
	quoteService *business.QuoteService
}

// NewQuoteHandler 创建报价处理器实例
func NewQuoteHandler(quoteService *business.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		quoteService: quoteService,
	}
}
