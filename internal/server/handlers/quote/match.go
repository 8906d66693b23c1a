package quote

import (
	"github.com/gin-gonic/gin"

	quotecore "github.com/cocoozhong/logistics-calculator-v2/internal/business/quote"
	"github.com/cocoozhong/logistics-calculator-v2/pkg/ginx"
)

// MatchRequest 地点匹配请求
type MatchRequest struct {
	Input string `json:"input" binding:"required"`
}

// MatchResponse 地点匹配结果
type MatchResponse struct {
	Matched *quotecore.Location `json:"matched"`
}

// Match 地点搜索匹配接口（下拉框联想）
// POST /api/v1/locations/match
func (h *QuoteHandler) Match(c *gin.Context) {
	var req MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	matched := quotecore.MatchLocation(req.Input, h.quoteService.Locations())
	if matched == nil {
		ginx.NotFound(c, "no matching location")
		return
	}

	ginx.Success(c, MatchResponse{Matched: matched})
}
