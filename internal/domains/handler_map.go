package domains

import (
	"github.com/cocoozhong/logistics-calculator-v2/internal/domains/common"
	"github.com/cocoozhong/logistics-calculator-v2/internal/domains/handlers/quote"
)

// HandlerMap 路由表（ActionType → Handler 映射）
var HandlerMap = map[string]common.HandlerServProc{
	"quote_calculate": quote.NewQuoteHandler,

	// 未来扩展示例：
	// "quote_batch_calculate": quotebatch.NewBatchHandler,
}
