package quote

import (
	"fmt"
	"sort"
	"strings"
)

// Aggregator 报价聚合器
// 调用全部承运商适配器，过滤出有效报价，标记最便宜项并按价格升序返回
// 单个适配器的失败不会影响其他公司的报价
type Aggregator struct {
	resolvers []Resolver
	cache     *resultCache
}

// NewAggregator 由费率表构造聚合器
// cacheSize 为报价结果缓存容量，<=0 时取默认值
func NewAggregator(tables Tables, cacheSize int) *Aggregator {
	resolvers := []Resolver{
		NewXinliangResolver(tables.Xinliang),
		NewSFResolver(tables.SF),
		NewShentongResolver(tables.Shentong),
		NewAnnengResolver("安能标准", tables.Anneng.Tables.Anneng),
		NewAnnengResolver("安能定时达", tables.Anneng.Tables.AnnengTimed),
	}
	return NewAggregatorWithResolvers(resolvers, cacheSize)
}

// NewAggregatorWithResolvers 以自定义适配器列表构造聚合器（测试与扩展用）
func NewAggregatorWithResolvers(resolvers []Resolver, cacheSize int) *Aggregator {
	return &Aggregator{
		resolvers: resolvers,
		cache:     newResultCache(cacheSize),
	}
}

// CalculatePrices 计算一次查询的全部报价
// 返回按价格升序排列的结果，价格等于全局最小值的条目全部标记为最便宜（并列全标）
func (a *Aggregator) CalculatePrices(province, city string, weight float64) []PriceResult {
	if weight <= 0 || strings.TrimSpace(province) == "" {
		return nil
	}

	key := cacheKey(province, city, weight)
	if cached, ok := a.cache.get(key); ok {
		return cloneResults(cached)
	}

	results := make([]PriceResult, 0, len(a.resolvers))
	for _, resolver := range a.resolvers {
		rr := safeResolve(resolver, province, city, weight)
		if !rr.Priced() {
			continue
		}
		results = append(results, PriceResult{
			Company:  resolver.Company(),
			Price:    rr.Price,
			Currency: "CNY",
			LeadTime: rr.LeadTime,
			Note:     rr.Note,
		})
	}

	finalizeResults(results)

	a.cache.put(key, results)
	return cloneResults(results)
}

// CalculatePricesFromRules 规则库驱动的报价路径
// 按优先级遍历候选地点，第一个存在适用规则的候选胜出，不再下探更弱的候选
func (a *Aggregator) CalculatePricesFromRules(candidates []Location, weight float64, rules []PriceRule) []PriceResult {
	if weight <= 0 {
		return nil
	}

	for _, loc := range candidates {
		matched := matchRulesForLocation(loc, rules)
		if len(matched) == 0 {
			continue
		}

		results := make([]PriceResult, 0, len(matched))
		for _, rule := range matched {
			price, ok, err := CalculatePrice(weight, rule)
			if err != nil || !ok || price <= 0 {
				continue
			}
			results = append(results, PriceResult{
				Company:  rule.CompanyName,
				Price:    price,
				Currency: "CNY",
				LeadTime: rule.Timeliness,
				Note:     rule.RuleName,
			})
		}

		if len(results) > 0 {
			finalizeResults(results)
			return results
		}
	}

	return nil
}

// matchRulesForLocation 找出适用于该地点的规则：
// 目的地文本包含地点名，或地点显式关联了规则 ID
func matchRulesForLocation(loc Location, rules []PriceRule) []*PriceRule {
	matched := make([]*PriceRule, 0)
	for i := range rules {
		rule := &rules[i]
		if strings.Contains(rule.Destination, loc.Name) || strings.Contains(rule.RuleName, loc.Name) {
			matched = append(matched, rule)
			continue
		}
		for _, id := range loc.PricingRules {
			if id == rule.ID {
				matched = append(matched, rule)
				break
			}
		}
	}
	return matched
}

// safeResolve 调用单个适配器并吸收其内部故障
// 任何 panic 都转换为"计算失败"的无报价结果，保证其他公司不受影响
func safeResolve(resolver Resolver, province, city string, weight float64) (rr ResolverResult) {
	defer func() {
		if r := recover(); r != nil {
			rr = ResolverResult{Note: noteCalcFailed}
		}
	}()
	return resolver.Resolve(province, city, weight)
}

// finalizeResults 标记最便宜项并按价格升序稳定排序
func finalizeResults(results []PriceResult) {
	if len(results) == 0 {
		return
	}

	min := results[0].Price
	for _, r := range results[1:] {
		if r.Price < min {
			min = r.Price
		}
	}
	for i := range results {
		results[i].IsCheapest = results[i].Price == min
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Price < results[j].Price
	})
}

func cacheKey(province, city string, weight float64) string {
	return fmt.Sprintf("%s|%s|%.3f", province, city, weight)
}

func cloneResults(results []PriceResult) []PriceResult {
	out := make([]PriceResult, len(results))
	copy(out, results)
	return out
}
