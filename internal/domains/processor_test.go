package domains

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/bitleak/lmstfy/client"

	"github.com/cocoozhong/logistics-calculator-v2/internal/business"
	"github.com/cocoozhong/logistics-calculator-v2/internal/business/quote"
	"github.com/cocoozhong/logistics-calculator-v2/internal/domains/common/job"
	"github.com/cocoozhong/logistics-calculator-v2/internal/domains/common/response"
	"github.com/cocoozhong/logistics-calculator-v2/pkg/errorutil"
	"github.com/cocoozhong/logistics-calculator-v2/pkg/lmstfyx"
	"github.com/cocoozhong/logistics-calculator-v2/pkg/logger"
)

type capturePublisher struct {
	published [][]byte
}

func (p *capturePublisher) Publish(queue string, data []byte, ttl, delay uint32) error {
	p.published = append(p.published, data)
	return nil
}

func newTestQuoteService(publisher business.CallbackPublisher) *business.QuoteService {
	aggregator := quote.NewAggregator(quote.Tables{}, 8)
	return business.NewQuoteService(aggregator, nil, nil, publisher, "quote_callback", nil, "")
}

func quoteJobData(t *testing.T, bizData map[string]interface{}) []byte {
	t.Helper()
	data, err := json.Marshal(job.Job{
		Payload: &job.JobPayload{
			Data: &job.JobPayloadData{
				RequestID:  "req-1",
				ActionType: "quote_calculate",
				ID:         "q1",
				Data:       bizData,
			},
		},
	})
	if err != nil {
		t.Fatalf("marshal job: %v", err)
	}
	return data
}

func TestGetProcess_Success(t *testing.T) {
	publisher := &capturePublisher{}
	proc := GetProcess(logger.NewNop(), newTestQuoteService(publisher))

	// 空费率表下申通固化省份表可以报价浙江
	resp := proc(context.Background(), &client.Job{
		ID: "job-1",
		Data: quoteJobData(t, map[string]interface{}{
			"province": "浙江省",
			"city":     "杭州市",
			"weight":   5,
		}),
	})

	if resp.Action != lmstfyx.JobRespStatusSuccess {
		t.Fatalf("expected success action, got %v", resp.Action)
	}
	if len(publisher.published) != 1 {
		t.Fatalf("expected one callback published, got %d", len(publisher.published))
	}

	var callback business.QuoteCallback
	if err := json.Unmarshal(publisher.published[0], &callback); err != nil {
		t.Fatalf("invalid callback json: %v", err)
	}
	if callback.Status != business.CallbackStatusSuccess || callback.QuoteID != "q1" {
		t.Fatalf("unexpected callback %+v", callback)
	}
}

func TestGetProcess_InvalidJobJSON(t *testing.T) {
	proc := GetProcess(logger.NewNop(), newTestQuoteService(&capturePublisher{}))

	resp := proc(context.Background(), &client.Job{ID: "job-2", Data: []byte("not json")})
	if resp.Action != lmstfyx.JobRespStatusBury {
		t.Fatalf("expected bury for invalid json, got %v", resp.Action)
	}
}

func TestGetProcess_UnknownActionType(t *testing.T) {
	proc := GetProcess(logger.NewNop(), newTestQuoteService(&capturePublisher{}))

	data, _ := json.Marshal(job.Job{
		Payload: &job.JobPayload{
			Data: &job.JobPayloadData{
				ActionType: "unknown_action",
				Data:       map[string]interface{}{},
			},
		},
	})
	resp := proc(context.Background(), &client.Job{ID: "job-3", Data: data})
	if resp.Action != lmstfyx.JobRespStatusBury {
		t.Fatalf("expected bury for unknown action, got %v", resp.Action)
	}
}

func TestGetProcess_HandlerValidationFailed(t *testing.T) {
	proc := GetProcess(logger.NewNop(), newTestQuoteService(&capturePublisher{}))

	// 缺少 weight：Handler 构造阶段即失败
	resp := proc(context.Background(), &client.Job{
		ID: "job-4",
		Data: quoteJobData(t, map[string]interface{}{
			"province": "浙江省",
		}),
	})
	if resp.Action != lmstfyx.JobRespStatusBury {
		t.Fatalf("expected bury for invalid payload, got %v", resp.Action)
	}
}

func TestDoJobReport(t *testing.T) {
	ctx := context.Background()
	log := logger.NewNop()

	result := response.NewQuoteResult()

	// 无错误 → Success
	resp := doJobReport(ctx, &response.Response{Result: result, Processed: true}, log)
	if resp.Action != lmstfyx.JobRespStatusSuccess {
		t.Fatalf("expected success, got %v", resp.Action)
	}
	if len(resp.Data) == 0 {
		t.Fatal("expected marshaled response data")
	}

	// 可重试错误 → Release
	resp = doJobReport(ctx, &response.Response{
		Error:  errorutil.Retriable("下游暂时不可用"),
		Result: result,
	}, log)
	if resp.Action != lmstfyx.JobRespStatusRelease {
		t.Fatalf("expected release, got %v", resp.Action)
	}

	// 不可重试错误 → Bury
	resp = doJobReport(ctx, &response.Response{
		Error:  errorutil.NonRetriable("参数非法"),
		Result: result,
	}, log)
	if resp.Action != lmstfyx.JobRespStatusBury {
		t.Fatalf("expected bury, got %v", resp.Action)
	}
}
