package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/cocoozhong/logistics-calculator-v2/internal/business/quote"
	"github.com/cocoozhong/logistics-calculator-v2/pkg/config"
	"github.com/cocoozhong/logistics-calculator-v2/pkg/logger"
)

// Bundle 一次加载的全部数据：四家公司的费率表、通用规则库与标准地点列表
type Bundle struct {
	Tables    quote.Tables
	Rules     []quote.PriceRule
	Locations []quote.Location
}

// locationDocument 地点文档
type locationDocument struct {
	Locations []quote.Location `json:"locations"`
}

// Loader 费率数据加载器
type Loader struct {
	log logger.Logger
}

// NewLoader 创建加载器
func NewLoader(log logger.Logger) *Loader {
	return &Loader{log: log}
}

// Load 按配置加载全部数据源
// 四家公司的费率表为必需项；规则库与地点列表路径为空时跳过
func (l *Loader) Load(ctx context.Context, cfg config.RatesConfig) (*Bundle, error) {
	bundle := &Bundle{}

	// 1. 加载四家公司的费率表
	if err := readJSON(cfg.XinliangPath, &bundle.Tables.Xinliang); err != nil {
		return nil, fmt.Errorf("load xinliang table failed: %w", err)
	}
	if err := readJSON(cfg.SFPath, &bundle.Tables.SF); err != nil {
		return nil, fmt.Errorf("load sf table failed: %w", err)
	}
	if err := readJSON(cfg.ShentongPath, &bundle.Tables.Shentong); err != nil {
		return nil, fmt.Errorf("load shentong table failed: %w", err)
	}
	if err := readJSON(cfg.AnnengPath, &bundle.Tables.Anneng); err != nil {
		return nil, fmt.Errorf("load anneng table failed: %w", err)
	}

	// 2. 加载通用规则库（可选）
	if cfg.RulesPath != "" {
		var doc ruleDocument
		if err := readJSON(cfg.RulesPath, &doc); err != nil {
			return nil, fmt.Errorf("load rules failed: %w", err)
		}
		bundle.Rules = buildRules(ctx, doc.Rules, l.log)
		l.log.Infof(ctx, "loaded %d valid rules out of %d", len(bundle.Rules), len(doc.Rules))
	}

	// 3. 加载标准地点列表（可选），无名地点丢弃
	if cfg.LocationsPath != "" {
		var doc locationDocument
		if err := readJSON(cfg.LocationsPath, &doc); err != nil {
			return nil, fmt.Errorf("load locations failed: %w", err)
		}
		bundle.Locations = filterLocations(doc.Locations)
		l.log.Infof(ctx, "loaded %d valid locations out of %d", len(bundle.Locations), len(doc.Locations))
	}

	return bundle, nil
}

// filterLocations 过滤无效地点
func filterLocations(locations []quote.Location) []quote.Location {
	valid := make([]quote.Location, 0, len(locations))
	for _, loc := range locations {
		if loc.Name == "" {
			continue
		}
		valid = append(valid, loc)
	}
	return valid
}

func readJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}
