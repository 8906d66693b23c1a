package business

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/cocoozhong/logistics-calculator-v2/internal/business/quote"
	"github.com/cocoozhong/logistics-calculator-v2/pkg/infra/redis"
)

// stubPublisher 捕获发布到回调队列的消息
type stubPublisher struct {
	queue string
	data  []byte
}

func (p *stubPublisher) Publish(queue string, data []byte, ttl, delay uint32) error {
	p.queue = queue
	p.data = data
	return nil
}

// stubNotifier 捕获发布的完成通知
type stubNotifier struct {
	channel      string
	notification *redis.QuoteNotification
}

func (n *stubNotifier) PublishQuoteComplete(ctx context.Context, channel string, notification *redis.QuoteNotification) error {
	n.channel = channel
	n.notification = notification
	return nil
}

func serviceLocations() []quote.Location {
	return []quote.Location{
		{ID: "loc-gd", Name: "广东省"},
		{ID: "loc-qy", Name: "清远市", PricingRules: []string{"r1"}},
		{ID: "loc-zj", Name: "浙江省"},
		{ID: "loc-hz", Name: "杭州市"},
	}
}

func serviceRules() []quote.PriceRule {
	return []quote.PriceRule{
		{
			ID:          "r1",
			RuleName:    "德邦华南标快",
			CompanyName: "德邦快递",
			Destination: "广东省清远市",
			Timeliness:  "2-3天",
			Model: &quote.FirstAdditionalModel{
				FirstWeightKg:    1,
				FirstWeightPrice: 10,
				AdditionalPerKg:  8,
			},
		},
	}
}

func newTestService(publisher CallbackPublisher, notifier Notifier) *QuoteService {
	// 空费率表下只有申通的固化省份表能报价
	aggregator := quote.NewAggregator(quote.Tables{}, 8)
	return NewQuoteService(aggregator, serviceRules(), serviceLocations(), publisher, "quote_callback", notifier, "quote_complete")
}

func TestCalculate_InvalidWeight(t *testing.T) {
	svc := newTestService(nil, nil)

	if _, err := svc.Calculate(context.Background(), &QuoteInput{Province: "浙江省", Weight: 0}); err == nil {
		t.Fatal("expected error for zero weight")
	}
}

func TestCalculate_AddressRulePath(t *testing.T) {
	svc := newTestService(nil, nil)

	out, err := svc.Calculate(context.Background(), &QuoteInput{
		QuoteID: "q1",
		Address: "广东省清远市",
		Weight:  2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Province != "广东省" || out.City != "清远市" {
		t.Fatalf("unexpected location: %s/%s", out.Province, out.City)
	}
	if len(out.Results) != 1 {
		t.Fatalf("expected single rule result, got %d", len(out.Results))
	}
	// 首重 10 + 续重 ceil(1)*8
	r := out.Results[0]
	if r.Company != "德邦快递" || r.Price != 18 || !r.IsCheapest {
		t.Fatalf("unexpected result %+v", r)
	}
}

func TestCalculate_ProvinceTablePath(t *testing.T) {
	svc := newTestService(nil, nil)

	out, err := svc.Calculate(context.Background(), &QuoteInput{
		QuoteID:  "q2",
		Province: "浙江省",
		City:     "杭州市",
		Weight:   5,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Results) != 1 {
		t.Fatalf("expected single result, got %+v", out.Results)
	}
	if out.Results[0].Company != "申通快递" || out.Results[0].Price != 6 {
		t.Fatalf("unexpected result %+v", out.Results[0])
	}
}

func TestCalculate_NoQuoteAvailable(t *testing.T) {
	svc := newTestService(nil, nil)

	if _, err := svc.Calculate(context.Background(), &QuoteInput{Province: "東京都", Weight: 5}); err == nil {
		t.Fatal("expected error when no carrier can quote")
	}
}

func TestExecuteQuote_Success(t *testing.T) {
	publisher := &stubPublisher{}
	notifier := &stubNotifier{}
	svc := newTestService(publisher, notifier)

	err := svc.ExecuteQuote(context.Background(), &QuoteInput{
		RequestID: "req-1",
		QuoteID:   "q3",
		Province:  "浙江省",
		City:      "杭州市",
		Weight:    5,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if publisher.queue != "quote_callback" {
		t.Fatalf("unexpected callback queue %q", publisher.queue)
	}

	var callback QuoteCallback
	if err := json.Unmarshal(publisher.data, &callback); err != nil {
		t.Fatalf("invalid callback json: %v", err)
	}
	if callback.Status != CallbackStatusSuccess || callback.QuoteID != "q3" || callback.QuoteResult == nil {
		t.Fatalf("unexpected callback %+v", callback)
	}

	if notifier.channel != "quote_complete" {
		t.Fatalf("unexpected channel %q", notifier.channel)
	}
	if notifier.notification.Status != "QUOTED" || notifier.notification.CheapestCompany != "申通快递" {
		t.Fatalf("unexpected notification %+v", notifier.notification)
	}
	if notifier.notification.CheapestPrice != 6 {
		t.Fatalf("unexpected cheapest price %v", notifier.notification.CheapestPrice)
	}
}

func TestExecuteQuote_CalculationFailed(t *testing.T) {
	publisher := &stubPublisher{}
	notifier := &stubNotifier{}
	svc := newTestService(publisher, notifier)

	err := svc.ExecuteQuote(context.Background(), &QuoteInput{
		RequestID: "req-2",
		QuoteID:   "q4",
		Province:  "浙江省",
		Weight:    -1,
	})
	if err != nil {
		t.Fatalf("failed calculation should still deliver callback, got error: %v", err)
	}

	var callback QuoteCallback
	if err := json.Unmarshal(publisher.data, &callback); err != nil {
		t.Fatalf("invalid callback json: %v", err)
	}
	if callback.Status != CallbackStatusFailed || callback.Error == "" || callback.QuoteResult != nil {
		t.Fatalf("unexpected callback %+v", callback)
	}

	if notifier.notification.Status != "FAILED" {
		t.Fatalf("unexpected notification %+v", notifier.notification)
	}
}
