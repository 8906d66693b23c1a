package quote

// 各物流公司费率表的固定结构，由外部数据源加载（JSON），加载后只读

// XinliangTable 新亮物流费率表：省 → 城市 → 费率带
type XinliangTable struct {
	Data map[string]map[string]XinliangCityRate `json:"data"`
}

// XinliangCityRate 单个城市的费率带与时效
// Rates 的键为重量带："≤50kg" 为固定总价，其余为每公斤单价
type XinliangCityRate struct {
	Rates        map[string]float64 `json:"rates"`
	LeadTimeDays string             `json:"lead_time_days"`
}

// SFTable 顺丰费率表：省级首重 + 续重
type SFTable struct {
	Regions map[string]SFRegion `json:"regions"`
}

// SFRegion 顺丰单省费率
type SFRegion struct {
	FirstKg         float64 `json:"first_kg"`
	AdditionalPerKg float64 `json:"additional_per_kg"`
}

// ShentongTable 申通费率表：省级基础费 + 续重单价（兜底数据）
type ShentongTable struct {
	Regions map[string]ShentongRegion `json:"regions"`
}

// ShentongRegion 申通单省兜底费率
type ShentongRegion struct {
	Base       float64 `json:"base"`
	ExtraPerKg float64 `json:"extra_per_kg"`
}

// AnnengTable 安能费率表：标准与定时达两个产品各一组行
type AnnengTable struct {
	Tables AnnengTables `json:"tables"`
}

// AnnengTables 安能两个产品的行表
type AnnengTables struct {
	Anneng      []AnnengRow `json:"anneng"`
	AnnengTimed []AnnengRow `json:"anneng_timed"`
}

// AnnengRow 安能行表的一行：省份、覆盖城市、单价与时效
type AnnengRow struct {
	Province  string   `json:"province"`
	Cities    []string `json:"cities"`
	UnitPrice float64  `json:"unit_price"`
	Time      string   `json:"time"`
}

// Tables 全部承运商费率表的汇总，供聚合器构造解析器
type Tables struct {
	Xinliang XinliangTable
	SF       SFTable
	Shentong ShentongTable
	Anneng   AnnengTable
}
