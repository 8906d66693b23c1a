package rates

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/cocoozhong/logistics-calculator-v2/internal/business/quote"
	"github.com/cocoozhong/logistics-calculator-v2/pkg/config"
	"github.com/cocoozhong/logistics-calculator-v2/pkg/logger"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func testRatesConfig(t *testing.T) config.RatesConfig {
	t.Helper()
	dir := t.TempDir()

	return config.RatesConfig{
		XinliangPath: writeFile(t, dir, "xinliang.json", `{
			"data": {
				"浙江省": {
					"杭州市": {"rates": {"≤50kg": 80, "50-200kg": 1.2}, "lead_time_days": "2-3天"}
				}
			}
		}`),
		SFPath: writeFile(t, dir, "sf.json", `{
			"regions": {"浙江": {"first_kg": 12, "additional_per_kg": 3}}
		}`),
		ShentongPath: writeFile(t, dir, "shentong.json", `{
			"regions": {"新疆": {"base": 10, "extra_per_kg": 4}}
		}`),
		AnnengPath: writeFile(t, dir, "anneng.json", `{
			"tables": {
				"anneng": [{"province": "广东省", "cities": ["广州市"], "unit_price": 1.5, "time": "1-2天"}],
				"anneng_timed": []
			}
		}`),
	}
}

func TestLoad_Tables(t *testing.T) {
	loader := NewLoader(logger.NewNop())

	bundle, err := loader.Load(context.Background(), testRatesConfig(t))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if bundle.Tables.Xinliang.Data["浙江省"]["杭州市"].Rates["≤50kg"] != 80 {
		t.Fatal("xinliang table not loaded")
	}
	if bundle.Tables.SF.Regions["浙江"].FirstKg != 12 {
		t.Fatal("sf table not loaded")
	}
	if bundle.Tables.Shentong.Regions["新疆"].ExtraPerKg != 4 {
		t.Fatal("shentong table not loaded")
	}
	if len(bundle.Tables.Anneng.Tables.Anneng) != 1 {
		t.Fatal("anneng table not loaded")
	}
}

func TestLoad_MissingTableFile(t *testing.T) {
	loader := NewLoader(logger.NewNop())

	cfg := testRatesConfig(t)
	cfg.SFPath = filepath.Join(t.TempDir(), "missing.json")

	if _, err := loader.Load(context.Background(), cfg); err == nil {
		t.Fatal("expected error for missing table file")
	}
}

func TestLoad_RulesAndLocations(t *testing.T) {
	loader := NewLoader(logger.NewNop())
	dir := t.TempDir()

	cfg := testRatesConfig(t)
	cfg.RulesPath = writeFile(t, dir, "rules.json", `{
		"rules": [
			{
				"id": "r1", "rule_name": "清远专线", "company_name": "甲",
				"destination": "广东省清远市", "model_type": "first_additional",
				"first_weight_kg": 1, "first_weight_price": 10,
				"additional_weight_price_per_kg": 2, "timeliness": "次日达"
			},
			{
				"id": "r2", "rule_name": "分段规则", "company_name": "乙",
				"model_type": "complex_tiered", "rounding": "up_to_0.2",
				"tiers": "[{\"upToKg\": 3, \"flatPrice\": 8}, {\"upToKg\": null, \"pricePerKg\": 1.5}]"
			},
			{
				"id": "r3", "rule_name": "缺字段的规则", "model_type": "first_additional"
			},
			{
				"id": "r4", "rule_name": "无模型规则"
			},
			{
				"id": "r5", "company_name": "无名规则", "model_type": "first_additional",
				"first_weight_price": 10, "additional_weight_price_per_kg": 2
			}
		]
	}`)
	cfg.LocationsPath = writeFile(t, dir, "locations.json", `{
		"locations": [
			{"id": "loc-1", "name": "广东省"},
			{"id": "loc-2", "name": "清远市", "pricing_rules": ["r1"]},
			{"id": "loc-3", "name": ""}
		]
	}`)

	bundle, err := loader.Load(context.Background(), cfg)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	// r3 缺伴生字段、r4 缺模型类型、r5 缺名称，均被丢弃
	if len(bundle.Rules) != 2 {
		t.Fatalf("expected 2 valid rules, got %d", len(bundle.Rules))
	}
	if bundle.Rules[0].ID != "r1" || bundle.Rules[0].Model.Type() != quote.ModelFirstAdditional {
		t.Fatalf("unexpected first rule: %+v", bundle.Rules[0])
	}

	// 无上限区间解析为 nil
	tiered, ok := bundle.Rules[1].Model.(*quote.ComplexTieredModel)
	if !ok {
		t.Fatalf("expected ComplexTieredModel, got %T", bundle.Rules[1].Model)
	}
	if len(tiered.Tiers) != 2 || tiered.Tiers[1].UpToKg != nil || *tiered.Tiers[0].UpToKg != 3 {
		t.Fatalf("tiers not parsed correctly: %+v", tiered.Tiers)
	}
	if tiered.Rounding != quote.RoundingUpTo02 {
		t.Fatalf("rounding not carried: %q", tiered.Rounding)
	}

	// 无名地点被丢弃
	if len(bundle.Locations) != 2 {
		t.Fatalf("expected 2 valid locations, got %d", len(bundle.Locations))
	}
	if bundle.Locations[1].PricingRules[0] != "r1" {
		t.Fatal("pricing rule binding not loaded")
	}
}

func TestLoad_InvalidTiersJSON(t *testing.T) {
	loader := NewLoader(logger.NewNop())
	dir := t.TempDir()

	cfg := testRatesConfig(t)
	cfg.RulesPath = writeFile(t, dir, "rules.json", `{
		"rules": [
			{
				"id": "r1", "rule_name": "坏区间", "model_type": "complex_tiered",
				"tiers": "not-json"
			}
		]
	}`)

	bundle, err := loader.Load(context.Background(), cfg)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(bundle.Rules) != 0 {
		t.Fatalf("rule with invalid tiers must be discarded, got %+v", bundle.Rules)
	}
}

func TestLoad_RulesPathOptional(t *testing.T) {
	loader := NewLoader(logger.NewNop())

	bundle, err := loader.Load(context.Background(), testRatesConfig(t))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if bundle.Rules != nil || bundle.Locations != nil {
		t.Fatal("rules and locations must stay empty when paths are unset")
	}
}
