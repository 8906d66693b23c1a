package response

import (
	"github.com/cocoozhong/logistics-calculator-v2/internal/domains/common/job"
	"github.com/cocoozhong/logistics-calculator-v2/pkg/errorutil"
)

// QuoteResult 报价结果（实现 ResultI 接口）
type QuoteResult struct {
	ID     string           `json:"id"`
	Status string           `json:"status"`
	Data   interface{}      `json:"data"`
	Error  *errorutil.Error `json:"error,omitempty"`
}

const (
	QuoteStatusSuccess = "SUCCESS"
	QuoteStatusFailed  = "FAILED"
)

// NewQuoteResult 创建报价结果
func NewQuoteResult() *QuoteResult {
	return &QuoteResult{}
}

// Set 实现 ResultI 接口
func (r *QuoteResult) Set(meta *job.Meta, err error) {
	r.ID = meta.ID
	if err != nil {
		r.Status = QuoteStatusFailed
		r.Error = errorutil.Wrap(err)
	} else {
		r.Status = QuoteStatusSuccess
	}
}

// GetStatus 实现 ResultI 接口
func (r *QuoteResult) GetStatus() string {
	return r.Status
}
