package business

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cocoozhong/logistics-calculator-v2/internal/business/quote"
	"github.com/cocoozhong/logistics-calculator-v2/pkg/errorutil"
	"github.com/cocoozhong/logistics-calculator-v2/pkg/infra/redis"
)

// 回调状态
const (
	CallbackStatusSuccess = "SUCCESS"
	CallbackStatusFailed  = "FAILED"
)

// CallbackPublisher 回调发布接口（lmstfy 适配器实现）
type CallbackPublisher interface {
	Publish(queue string, data []byte, ttl, delay uint32) error
}

// Notifier 报价完成通知接口（Redis PubSub 实现）
type Notifier interface {
	PublishQuoteComplete(ctx context.Context, channel string, notification *redis.QuoteNotification) error
}

// QuoteInput 一次报价请求
// Address 与 Province/City 二选一：Address 非空时先走地址解析
type QuoteInput struct {
	RequestID string  `json:"request_id"`
	QuoteID   string  `json:"quote_id"`
	Address   string  `json:"address"`
	Province  string  `json:"province"`
	City      string  `json:"city"`
	Weight    float64 `json:"weight"`
}

// QuoteOutput 报价结果
type QuoteOutput struct {
	QuoteID  string              `json:"quote_id"`
	Province string              `json:"province"`
	City     string              `json:"city"`
	Weight   float64             `json:"weight"`
	Results  []quote.PriceResult `json:"results"`
}

// QuoteCallback 回调消息（发往 callback 队列）
type QuoteCallback struct {
	RequestID   string       `json:"request_id"`
	QuoteID     string       `json:"quote_id"`
	Status      string       `json:"status"`
	Error       string       `json:"error,omitempty"`
	QuoteResult *QuoteOutput `json:"quote_result,omitempty"`
	ProcessedAt int64        `json:"processed_at"`
}

// QuoteService 报价服务
// 职责：计算报价 → 发送回调到 callback 队列 → 发布 Redis 完成通知
type QuoteService struct {
	aggregator    *quote.Aggregator
	rules         []quote.PriceRule
	locations     []quote.Location
	publisher     CallbackPublisher
	callbackQueue string
	notifier      Notifier
	channel       string
}

// NewQuoteService 创建报价服务实例
// publisher / notifier 允许为 nil（同步 API 链路不需要回调与通知）
func NewQuoteService(
	aggregator *quote.Aggregator,
	rules []quote.PriceRule,
	locations []quote.Location,
	publisher CallbackPublisher,
	callbackQueue string,
	notifier Notifier,
	channel string,
) *QuoteService {
	return &QuoteService{
		aggregator:    aggregator,
		rules:         rules,
		locations:     locations,
		publisher:     publisher,
		callbackQueue: callbackQueue,
		notifier:      notifier,
		channel:       channel,
	}
}

// Locations 标准地点列表（供地点搜索接口使用）
func (s *QuoteService) Locations() []quote.Location {
	return s.locations
}

// Calculate 同步计算一次报价
// 地址文本优先走解析；解析出的候选地点若有适用的通用规则则用规则报价，
// 否则退回固定承运商表计价
func (s *QuoteService) Calculate(ctx context.Context, input *QuoteInput) (*QuoteOutput, error) {
	if input.Weight <= 0 {
		return nil, errorutil.NonRetriable("重量必须大于0")
	}

	province, city := input.Province, input.City

	// 1. 地址解析
	if input.Address != "" {
		parsed := quote.ParseAddressWithLocations(input.Address, s.locations)
		if parsed.Matched == nil && province == "" {
			return nil, errorutil.NonRetriable("无法识别目的地地址")
		}

		// 规则库报价：第一个有适用规则的候选胜出
		if len(parsed.Candidates) > 0 {
			if results := s.aggregator.CalculatePricesFromRules(parsed.Candidates, input.Weight, s.rules); len(results) > 0 {
				return s.output(input, parsed.Province, parsed.City, results), nil
			}
			province, city = parsed.Province, parsed.City
		}
	}

	if province == "" {
		return nil, errorutil.NonRetriable("目的地省份不能为空")
	}

	// 2. 固定承运商表报价
	results := s.aggregator.CalculatePrices(province, city, input.Weight)
	if len(results) == 0 {
		return nil, errorutil.NonRetriable("暂无可用报价")
	}

	return s.output(input, province, city, results), nil
}

// ExecuteQuote 异步链路：计算报价并发送回调与完成通知
// 返回 error 表示整个流程失败（计算失败仍会发送 FAILED 回调）
func (s *QuoteService) ExecuteQuote(ctx context.Context, input *QuoteInput) error {
	// 1. 计算报价
	output, calcErr := s.Calculate(ctx, input)

	// 2. 构造回调消息
	callback := QuoteCallback{
		RequestID:   input.RequestID,
		QuoteID:     input.QuoteID,
		ProcessedAt: time.Now().Unix(),
	}

	if calcErr != nil {
		callback.Status = CallbackStatusFailed
		callback.Error = calcErr.Error()
	} else {
		callback.Status = CallbackStatusSuccess
		callback.QuoteResult = output
	}

	// 3. 发送回调到 callback 队列
	callbackJSON, err := json.Marshal(callback)
	if err != nil {
		return fmt.Errorf("failed to marshal callback: %w", err)
	}
	// ttl=0 表示永不过期, delay=0 表示立即可用
	if err := s.publisher.Publish(s.callbackQueue, callbackJSON, 0, 0); err != nil {
		return fmt.Errorf("failed to publish callback: %w", err)
	}

	// 4. 发布 Redis 完成通知
	if s.notifier != nil {
		notification := s.buildNotification(input, output, calcErr)
		if err := s.notifier.PublishQuoteComplete(ctx, s.channel, notification); err != nil {
			return fmt.Errorf("failed to publish notification: %w", err)
		}
	}

	return nil
}

func (s *QuoteService) output(input *QuoteInput, province, city string, results []quote.PriceResult) *QuoteOutput {
	return &QuoteOutput{
		QuoteID:  input.QuoteID,
		Province: province,
		City:     city,
		Weight:   input.Weight,
		Results:  results,
	}
}

func (s *QuoteService) buildNotification(input *QuoteInput, output *QuoteOutput, calcErr error) *redis.QuoteNotification {
	notification := &redis.QuoteNotification{
		QuoteID:   input.QuoteID,
		Province:  input.Province,
		City:      input.City,
		Weight:    input.Weight,
		Timestamp: time.Now().Unix(),
	}

	if calcErr != nil {
		notification.Status = "FAILED"
		return notification
	}

	notification.Status = "QUOTED"
	notification.Province = output.Province
	notification.City = output.City
	for _, r := range output.Results {
		if r.IsCheapest {
			notification.CheapestCompany = r.Company
			notification.CheapestPrice = r.Price
			break
		}
	}
	return notification
}
