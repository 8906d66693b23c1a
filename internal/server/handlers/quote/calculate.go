package quote

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cocoozhong/logistics-calculator-v2/internal/business"
	"github.com/cocoozhong/logistics-calculator-v2/pkg/errorutil"
	"github.com/cocoozhong/logistics-calculator-v2/pkg/ginx"
)

// CalculateRequest 报价请求
// address 与 province 二选一，weight 必填
type CalculateRequest struct {
	Address  string  `json:"address"`
	Province string  `json:"province"`
	City     string  `json:"city"`
	Weight   float64 `json:"weight" binding:"required,gt=0"`
}

// Calculate 计算报价接口
// POST /api/v1/quotes
func (h *QuoteHandler) Calculate(c *gin.Context) {
	var req CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	if req.Address == "" && req.Province == "" {
		ginx.BadRequest(c, "address or province is required")
		return
	}

	input := &business.QuoteInput{
		QuoteID:  uuid.NewString(),
		Address:  req.Address,
		Province: req.Province,
		City:     req.City,
		Weight:   req.Weight,
	}

	output, err := h.quoteService.Calculate(c.Request.Context(), input)
	if err != nil {
		// 业务错误（地址无法识别、无可用报价）按 400 返回
		if e, ok := err.(*errorutil.Error); ok && !e.Retryable {
			ginx.BadRequest(c, e.Message)
			return
		}
		ginx.InternalError(c, err.Error())
		return
	}

	ginx.Success(c, output)
}
