package profit

import (
	"github.com/gin-gonic/gin"

	"github.com/cocoozhong/logistics-calculator-v2/pkg/ginx"
)

// History 计算历史查询接口
// GET /api/v1/profit/history
func (h *ProfitHandler) History(c *gin.Context) {
	records, err := h.store.List(c.Request.Context())
	if err != nil {
		ginx.InternalError(c, err.Error())
		return
	}

	ginx.Success(c, records)
}

// ClearHistory 清空计算历史接口
// DELETE /api/v1/profit/history
func (h *ProfitHandler) ClearHistory(c *gin.Context) {
	if err := h.store.Clear(c.Request.Context()); err != nil {
		ginx.InternalError(c, err.Error())
		return
	}

	ginx.Success(c, nil)
}
