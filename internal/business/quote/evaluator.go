package quote

import (
	"errors"
	"math"
)

// ErrMissingModel 规则缺少计价模型（加载校验被绕过时的程序性错误）
var ErrMissingModel = errors.New("price rule has no pricing model")

// CalculatePrice 对单条规则求价
// weight <= 0 时短路返回 0，不进入任何模型分支；
// ok == false 表示该规则不适用于此重量（无匹配区间等），调用方不得当作 0 元报价
func CalculatePrice(weight float64, rule *PriceRule) (price float64, ok bool, err error) {
	if weight <= 0 {
		return 0, true, nil
	}
	if rule == nil || rule.Model == nil {
		return 0, false, ErrMissingModel
	}

	price, ok = rule.Model.Evaluate(weight)
	return price, ok, nil
}

// applyRounding 进位函数
func applyRounding(price float64, rounding Rounding) float64 {
	switch rounding {
	case RoundingUpTo02:
		return math.Ceil(price*5) / 5
	case RoundingUpTo1:
		return math.Ceil(price)
	default:
		return price
	}
}

// FirstAdditionalModel 首重 + 续重模型
// 续重按公斤向上取整；满足例外条件时跳过首重逻辑，整单按续重单价计费
type FirstAdditionalModel struct {
	FirstWeightKg        float64
	FirstWeightPrice     float64
	AdditionalPerKg      float64
	ExceptionThresholdKg float64 // 0 表示无例外规则
	ExceptionFormula     string  // 目前仅支持 per_kg_only
}

func (m *FirstAdditionalModel) Type() ModelType { return ModelFirstAdditional }

func (m *FirstAdditionalModel) Evaluate(weight float64) (float64, bool) {
	// 例外规则：超过阈值后不收首重，直接按续重单价算
	if m.ExceptionThresholdKg > 0 && weight >= m.ExceptionThresholdKg && m.ExceptionFormula == "per_kg_only" {
		return weight * m.AdditionalPerKg, true
	}

	if weight <= m.FirstWeightKg {
		return m.FirstWeightPrice, true
	}

	additional := math.Ceil(weight - m.FirstWeightKg)
	return m.FirstWeightPrice + additional*m.AdditionalPerKg, true
}

// TieredMinimumChargeModel 分段计价 + 最低收费模型
type TieredMinimumChargeModel struct {
	MinimumCharge float64
	Tiers         []PriceTier
}

func (m *TieredMinimumChargeModel) Type() ModelType { return ModelTieredMinimumCharge }

func (m *TieredMinimumChargeModel) Evaluate(weight float64) (float64, bool) {
	var selected *PriceTier
	for i := range m.Tiers {
		if m.Tiers[i].matches(weight) {
			selected = &m.Tiers[i]
			break
		}
	}
	if selected == nil {
		return 0, false
	}

	var price float64
	if selected.FlatPrice > 0 {
		price = selected.FlatPrice
	} else if selected.PricePerKg > 0 {
		price = weight * selected.PricePerKg
	}

	return math.Max(price, m.MinimumCharge), true
}

// ComplexTieredModel 复杂分段模型（支持固定价格、基础费和进位）
type ComplexTieredModel struct {
	Rounding Rounding
	Tiers    []PriceTier
}

func (m *ComplexTieredModel) Type() ModelType { return ModelComplexTiered }

func (m *ComplexTieredModel) Evaluate(weight float64) (float64, bool) {
	for i := range m.Tiers {
		tier := &m.Tiers[i]
		if !tier.matches(weight) {
			continue
		}
		if tier.FlatPrice > 0 {
			return applyRounding(tier.FlatPrice, m.Rounding), true
		}
		if tier.PricePerKg > 0 {
			price := weight * tier.PricePerKg
			if tier.BaseFee > 0 {
				price = tier.BaseFee + weight*tier.PricePerKg
			}
			return applyRounding(price, m.Rounding), true
		}
		// 区间命中但未配置价格字段，继续找下一个区间
	}
	return 0, false
}

// FirstPlusTieredFlatModel 首重 + 总重分段固定价模型
// 区间以总重量为键，不是超出首重的部分
type FirstPlusTieredFlatModel struct {
	FirstWeightKg    float64
	FirstWeightPrice float64
	Tiers            []PriceTier
}

func (m *FirstPlusTieredFlatModel) Type() ModelType { return ModelFirstPlusTieredFlat }

func (m *FirstPlusTieredFlatModel) Evaluate(weight float64) (float64, bool) {
	if weight <= m.FirstWeightKg {
		return m.FirstWeightPrice, true
	}

	for i := range m.Tiers {
		tier := &m.Tiers[i]
		if tier.matches(weight) && tier.FlatPrice > 0 {
			return tier.FlatPrice, true
		}
	}

	// 超过所有区间上限，不承运
	return 0, false
}
