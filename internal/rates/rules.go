package rates

import (
	"context"
	"encoding/json"

	"github.com/cocoozhong/logistics-calculator-v2/internal/business/quote"
	"github.com/cocoozhong/logistics-calculator-v2/pkg/logger"
)

// rawRule 规则库文档中的一条原始规则
// Tiers 在数据源中以 JSON 字符串存储，加载时二次解析
type rawRule struct {
	ID                         string  `json:"id"`
	RuleName                   string  `json:"rule_name"`
	CompanyName                string  `json:"company_name"`
	Destination                string  `json:"destination"`
	ModelType                  string  `json:"model_type"`
	MinimumCharge              float64 `json:"minimum_charge"`
	FirstWeightKg              float64 `json:"first_weight_kg"`
	FirstWeightPrice           float64 `json:"first_weight_price"`
	AdditionalWeightPricePerKg float64 `json:"additional_weight_price_per_kg"`
	Rounding                   string  `json:"rounding"`
	Tiers                      string  `json:"tiers"`
	Timeliness                 string  `json:"timeliness"`
	ExceptionThresholdKg       float64 `json:"exception_threshold_kg"`
	ExceptionFormula           string  `json:"exception_formula"`
}

// ruleDocument 规则库文档
type ruleDocument struct {
	Rules []rawRule `json:"rules"`
}

// buildRules 将原始规则转换为带计价模型的规则列表
// 校验不通过的规则记日志后丢弃，不中断整体加载：
//  1. 规则名称与模型类型缺一不可
//  2. 各模型类型必须带齐伴生字段（如 first_additional 必须有首重价和续重单价）
func buildRules(ctx context.Context, raws []rawRule, log logger.Logger) []quote.PriceRule {
	rules := make([]quote.PriceRule, 0, len(raws))

	for _, raw := range raws {
		if raw.RuleName == "" {
			log.Warnf(ctx, "skip rule without name, id: %s", raw.ID)
			continue
		}

		model, reason := buildModel(raw)
		if model == nil {
			log.Warnf(ctx, "skip rule %s: %s", raw.RuleName, reason)
			continue
		}

		rules = append(rules, quote.PriceRule{
			ID:          raw.ID,
			RuleName:    raw.RuleName,
			CompanyName: raw.CompanyName,
			Destination: raw.Destination,
			Timeliness:  raw.Timeliness,
			Model:       model,
		})
	}

	return rules
}

// buildModel 按 ModelType 构造对应的计价模型变体
// 返回 nil 表示规则无效，reason 说明丢弃原因
func buildModel(raw rawRule) (quote.PricingModel, string) {
	switch quote.ModelType(raw.ModelType) {
	case quote.ModelFirstAdditional:
		if raw.FirstWeightPrice <= 0 || raw.AdditionalWeightPricePerKg <= 0 {
			return nil, "first_additional requires first weight price and additional price"
		}
		firstKg := raw.FirstWeightKg
		if firstKg <= 0 {
			firstKg = 1
		}
		return &quote.FirstAdditionalModel{
			FirstWeightKg:        firstKg,
			FirstWeightPrice:     raw.FirstWeightPrice,
			AdditionalPerKg:      raw.AdditionalWeightPricePerKg,
			ExceptionThresholdKg: raw.ExceptionThresholdKg,
			ExceptionFormula:     raw.ExceptionFormula,
		}, ""

	case quote.ModelTieredMinimumCharge:
		tiers, err := parseTiers(raw.Tiers)
		if err != nil {
			return nil, "invalid tiers json: " + err.Error()
		}
		if raw.MinimumCharge <= 0 || len(tiers) == 0 {
			return nil, "tiered_minimum_charge requires minimum charge and tiers"
		}
		return &quote.TieredMinimumChargeModel{
			MinimumCharge: raw.MinimumCharge,
			Tiers:         tiers,
		}, ""

	case quote.ModelComplexTiered:
		tiers, err := parseTiers(raw.Tiers)
		if err != nil {
			return nil, "invalid tiers json: " + err.Error()
		}
		if len(tiers) == 0 {
			return nil, "complex_tiered requires tiers"
		}
		return &quote.ComplexTieredModel{
			Rounding: quote.Rounding(raw.Rounding),
			Tiers:    tiers,
		}, ""

	case quote.ModelFirstPlusTieredFlat:
		tiers, err := parseTiers(raw.Tiers)
		if err != nil {
			return nil, "invalid tiers json: " + err.Error()
		}
		if raw.FirstWeightPrice <= 0 || len(tiers) == 0 {
			return nil, "first_plus_tiered_flat_rate requires first weight price and tiers"
		}
		firstKg := raw.FirstWeightKg
		if firstKg <= 0 {
			firstKg = 1
		}
		return &quote.FirstPlusTieredFlatModel{
			FirstWeightKg:    firstKg,
			FirstWeightPrice: raw.FirstWeightPrice,
			Tiers:            tiers,
		}, ""

	case "":
		return nil, "missing model type"

	default:
		return nil, "unknown model type: " + raw.ModelType
	}
}

// parseTiers 解析区间 JSON 字符串，空串视为无区间
func parseTiers(s string) ([]quote.PriceTier, error) {
	if s == "" {
		return nil, nil
	}
	var tiers []quote.PriceTier
	if err := json.Unmarshal([]byte(s), &tiers); err != nil {
		return nil, err
	}
	return tiers, nil
}
