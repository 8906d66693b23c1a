package quote

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cocoozhong/logistics-calculator-v2/internal/business"
	"github.com/cocoozhong/logistics-calculator-v2/internal/domains/common"
	"github.com/cocoozhong/logistics-calculator-v2/internal/domains/common/job"
	"github.com/cocoozhong/logistics-calculator-v2/internal/domains/common/response"
	"github.com/cocoozhong/logistics-calculator-v2/internal/framework"
)

// QuoteJobData 报价 Job 的业务数据
type QuoteJobData struct {
	Address  string  `json:"address"`
	Province string  `json:"province"`
	City     string  `json:"city"`
	Weight   float64 `json:"weight"`
}

// QuoteHandler 报价计算 Handler
type QuoteHandler struct {
	ctx     context.Context
	meta    *job.Meta
	jobData *QuoteJobData
	input   *business.QuoteInput
}

// NewQuoteHandler 创建报价 Handler
// 解析标准化 Job 消息并校验业务字段
func NewQuoteHandler(ctx context.Context, meta *job.Meta, payload interface{}) (common.HandlerServ, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload failed: %w", err)
	}

	var bizData QuoteJobData
	if err := json.Unmarshal(payloadBytes, &bizData); err != nil {
		return nil, fmt.Errorf("unmarshal business data failed: %w", err)
	}

	// 校验必填字段
	if bizData.Address == "" && bizData.Province == "" {
		return nil, fmt.Errorf("address or province is required")
	}
	if bizData.Weight <= 0 {
		return nil, fmt.Errorf("weight must be positive")
	}

	return &QuoteHandler{
		ctx:     ctx,
		meta:    meta,
		jobData: &bizData,
	}, nil
}

// GetProcess 处理报价请求
func (h *QuoteHandler) GetProcess() *response.Response {
	result := response.NewQuoteResult()

	// PreProcess → Process 函数链，任一环节失败即终止
	chain := framework.NewPreProcessor([]framework.ProcessorFunc{
		h.preProcess,
		h.process,
	})
	err := chain.Run(h.ctx)

	resp := &response.Response{}
	resp.WrapResponse(result, h.meta, err)

	return resp
}

// preProcess 组装报价输入
func (h *QuoteHandler) preProcess(ctx context.Context) error {
	h.input = &business.QuoteInput{
		RequestID: h.meta.RequestID,
		QuoteID:   h.meta.ID,
		Address:   h.jobData.Address,
		Province:  h.jobData.Province,
		City:      h.jobData.City,
		Weight:    h.jobData.Weight,
	}
	return nil
}

// process 调用报价服务执行计算并发送回调
func (h *QuoteHandler) process(ctx context.Context) error {
	quoteService, ok := ctx.Value("quote_service").(*business.QuoteService)
	if !ok || quoteService == nil {
		return fmt.Errorf("QuoteService not found in context")
	}

	return quoteService.ExecuteQuote(ctx, h.input)
}
