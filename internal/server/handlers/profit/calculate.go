package profit

import (
	"github.com/gin-gonic/gin"

	"github.com/cocoozhong/logistics-calculator-v2/internal/business/profit"
	"github.com/cocoozhong/logistics-calculator-v2/pkg/errorutil"
	"github.com/cocoozhong/logistics-calculator-v2/pkg/ginx"
)

// NPointRequest N点售价计算请求
type NPointRequest struct {
	Cost       float64 `json:"cost" binding:"required,gt=0"`
	ProfitRate float64 `json:"profit_rate"`
}

// NPoint N点售价计算接口
// POST /api/v1/profit/npoint
func (h *ProfitHandler) NPoint(c *gin.Context) {
	var req NPointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	in := profit.NPointInputs{Cost: req.Cost, ProfitRate: req.ProfitRate}
	out, err := profit.CalculateNPointPrice(in)
	if err != nil {
		ginx.BadRequest(c, errorutil.Wrap(err).Message)
		return
	}

	// 保存历史记录，失败不阻塞响应
	_ = h.store.Save(c.Request.Context(), profit.NewNPointRecord(in, out))

	ginx.Success(c, out)
}

// ProfitPointRequest 赚几个点计算请求
type ProfitPointRequest struct {
	Cost  float64 `json:"cost" binding:"required,gt=0"`
	Price float64 `json:"price" binding:"required,gt=0"`
}

// Point 赚几个点计算接口
// POST /api/v1/profit/point
func (h *ProfitHandler) Point(c *gin.Context) {
	var req ProfitPointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	in := profit.ProfitPointInputs{Cost: req.Cost, Price: req.Price}
	out, err := profit.CalculateProfitPoint(in)
	if err != nil {
		ginx.BadRequest(c, errorutil.Wrap(err).Message)
		return
	}

	_ = h.store.Save(c.Request.Context(), profit.NewProfitPointRecord(in, out))

	ginx.Success(c, out)
}
