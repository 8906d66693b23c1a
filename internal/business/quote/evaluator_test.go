package quote

import (
	"math"
	"testing"
)

func fptr(v float64) *float64 { return &v }

func TestCalculatePrice_NonPositiveWeight(t *testing.T) {
	rule := &PriceRule{
		RuleName: "测试规则",
		Model: &FirstAdditionalModel{
			FirstWeightKg:    1,
			FirstWeightPrice: 10,
			AdditionalPerKg:  5,
		},
	}

	for _, weight := range []float64{0, -1, -0.5} {
		price, ok, err := CalculatePrice(weight, rule)
		if err != nil {
			t.Fatalf("weight=%v unexpected error: %v", weight, err)
		}
		if !ok || price != 0 {
			t.Fatalf("weight=%v expected (0, true), got (%v, %v)", weight, price, ok)
		}
	}
}

func TestCalculatePrice_MissingModel(t *testing.T) {
	_, _, err := CalculatePrice(5, &PriceRule{RuleName: "坏规则"})
	if err == nil {
		t.Fatal("expected error for rule without model")
	}
}

func TestFirstAdditional_WithinFirstWeight(t *testing.T) {
	m := &FirstAdditionalModel{FirstWeightKg: 1, FirstWeightPrice: 12, AdditionalPerKg: 8}

	for _, weight := range []float64{0.2, 0.5, 1.0} {
		price, ok := m.Evaluate(weight)
		if !ok || price != 12 {
			t.Fatalf("weight=%v expected 12, got (%v, %v)", weight, price, ok)
		}
	}
}

func TestFirstAdditional_AdditionalCeiled(t *testing.T) {
	m := &FirstAdditionalModel{FirstWeightKg: 1, FirstWeightPrice: 12, AdditionalPerKg: 8}

	// 2.3kg：续重 ceil(1.3)=2，12 + 2*8 = 28
	price, ok := m.Evaluate(2.3)
	if !ok || price != 28 {
		t.Fatalf("expected 28, got (%v, %v)", price, ok)
	}
}

func TestFirstAdditional_ExceptionPerKgOnly(t *testing.T) {
	m := &FirstAdditionalModel{
		FirstWeightKg:        1,
		FirstWeightPrice:     100, // 例外分支下首重价不参与计算
		AdditionalPerKg:      3,
		ExceptionThresholdKg: 20,
		ExceptionFormula:     "per_kg_only",
	}

	price, ok := m.Evaluate(25)
	if !ok || price != 75 {
		t.Fatalf("expected 25*3=75, got (%v, %v)", price, ok)
	}

	// 阈值以下走标准首重+续重
	price, ok = m.Evaluate(10)
	if !ok || price != 100+9*3 {
		t.Fatalf("expected 127, got (%v, %v)", price, ok)
	}

	// 恰好等于阈值也触发例外
	price, ok = m.Evaluate(20)
	if !ok || price != 60 {
		t.Fatalf("expected 60, got (%v, %v)", price, ok)
	}
}

func TestTieredMinimumCharge(t *testing.T) {
	m := &TieredMinimumChargeModel{
		MinimumCharge: 30,
		Tiers: []PriceTier{
			{UpToKg: fptr(10), FlatPrice: 25},
			{UpToKg: fptr(100), PricePerKg: 2.8},
			{UpToKg: nil, PricePerKg: 2.2},
		},
	}

	tests := []struct {
		weight float64
		want   float64
	}{
		{5, 30},      // 固定价 25 低于最低收费，托底为 30
		{50, 140},    // 50*2.8
		{200, 440},   // 兜底区间 200*2.2
		{10.5, 30},   // 10.5*2.8=29.4 < 30
		{11, 30.8},   // 11*2.8
	}
	for _, tt := range tests {
		price, ok := m.Evaluate(tt.weight)
		if !ok || math.Abs(price-tt.want) > 1e-9 {
			t.Fatalf("weight=%v expected %v, got (%v, %v)", tt.weight, tt.want, price, ok)
		}
	}
}

func TestTieredMinimumCharge_NoMatchingTier(t *testing.T) {
	m := &TieredMinimumChargeModel{
		MinimumCharge: 30,
		Tiers:         []PriceTier{{UpToKg: fptr(10), FlatPrice: 25}},
	}

	if _, ok := m.Evaluate(11); ok {
		t.Fatal("expected not applicable beyond last bounded tier")
	}
}

func TestComplexTiered_Rounding(t *testing.T) {
	tests := []struct {
		name     string
		rounding Rounding
		weight   float64
		want     float64
	}{
		{"up_to_0.2", RoundingUpTo02, 3, 3.4}, // 3*1.13=3.39 → 3.4
		{"up_to_1", RoundingUpTo1, 3, 4},      // 3.39 → 4
		{"none", RoundingNone, 3, 3.39},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &ComplexTieredModel{
				Rounding: tt.rounding,
				Tiers:    []PriceTier{{UpToKg: nil, PricePerKg: 1.13}},
			}
			price, ok := m.Evaluate(tt.weight)
			if !ok || math.Abs(price-tt.want) > 1e-9 {
				t.Fatalf("expected %v, got (%v, %v)", tt.want, price, ok)
			}
		})
	}
}

func TestComplexTiered_BaseFeeAndTierOrder(t *testing.T) {
	m := &ComplexTieredModel{
		Tiers: []PriceTier{
			{UpToKg: fptr(3), FlatPrice: 8},
			{UpToKg: fptr(30), BaseFee: 5, PricePerKg: 1.5},
			{UpToKg: nil, PricePerKg: 1.2},
		},
	}

	price, ok := m.Evaluate(2)
	if !ok || price != 8 {
		t.Fatalf("expected flat 8, got (%v, %v)", price, ok)
	}

	price, ok = m.Evaluate(10)
	if !ok || price != 20 { // 5 + 10*1.5
		t.Fatalf("expected 20, got (%v, %v)", price, ok)
	}

	price, ok = m.Evaluate(100)
	if !ok || price != 120 {
		t.Fatalf("expected 120, got (%v, %v)", price, ok)
	}
}

func TestComplexTiered_SkipsUnpricedTier(t *testing.T) {
	// 区间命中但未配置价格字段时继续向后找
	m := &ComplexTieredModel{
		Tiers: []PriceTier{
			{UpToKg: fptr(10)},
			{UpToKg: nil, PricePerKg: 2},
		},
	}

	price, ok := m.Evaluate(5)
	if !ok || price != 10 {
		t.Fatalf("expected 10 from fallback tier, got (%v, %v)", price, ok)
	}
}

func TestFirstPlusTieredFlat(t *testing.T) {
	m := &FirstPlusTieredFlatModel{
		FirstWeightKg:    1,
		FirstWeightPrice: 4,
		Tiers: []PriceTier{
			{UpToKg: fptr(2), FlatPrice: 6},
			{UpToKg: fptr(3), FlatPrice: 8},
		},
	}

	price, ok := m.Evaluate(0.8)
	if !ok || price != 4 {
		t.Fatalf("expected first weight price 4, got (%v, %v)", price, ok)
	}

	// 区间以总重量为键
	price, ok = m.Evaluate(1.5)
	if !ok || price != 6 {
		t.Fatalf("expected 6, got (%v, %v)", price, ok)
	}

	// 超过所有区间上限 → 不承运
	if _, ok := m.Evaluate(5); ok {
		t.Fatal("expected not applicable beyond all tiers")
	}
}

func TestApplyRounding(t *testing.T) {
	if got := applyRounding(3.21, RoundingUpTo02); math.Abs(got-3.4) > 1e-9 {
		t.Fatalf("up_to_0.2: expected 3.4, got %v", got)
	}
	if got := applyRounding(3.4, RoundingUpTo02); math.Abs(got-3.4) > 1e-9 {
		t.Fatalf("up_to_0.2 on exact boundary: expected 3.4, got %v", got)
	}
	if got := applyRounding(3.01, RoundingUpTo1); got != 4 {
		t.Fatalf("up_to_1: expected 4, got %v", got)
	}
	if got := applyRounding(3.14, RoundingNone); got != 3.14 {
		t.Fatalf("none: expected unchanged, got %v", got)
	}
}
