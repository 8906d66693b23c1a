package quote

import (
	"sort"
	"strings"
	"unicode"
)

// 候选置信度，同时承担排序优先级
const (
	confExact         = 1.0  // 输入与地点名完全相等
	confCitySubstring = 0.8  // 市级地点的包含匹配
	confProvSubstring = 0.6  // 省级地点的包含匹配
	confParentDerived = 0.5  // 由市级匹配推导出的父级省份
	confTokenCity     = 0.45 // 分词后命中的市级地点
	confTokenProvince = 0.35 // 分词后命中的省级地点
)

// Candidate 地点候选及其置信度
type Candidate struct {
	Location   Location
	Confidence float64
}

// Matcher 地点匹配器接口，候选按优先级降序返回
// 默认实现为启发式文本匹配，可替换为其他匹配策略
type Matcher interface {
	Rank(input string, locations []Location) []Candidate
}

// HeuristicMatcher 基于包含关系和分词的启发式匹配器
type HeuristicMatcher struct{}

// DefaultMatcher 默认匹配器实例
var DefaultMatcher Matcher = HeuristicMatcher{}

// Rank 对输入文本做候选排序
// 依次尝试：精确匹配 → 全文包含匹配（市级优先、长名优先）→ 分词匹配（先市级后省级）
// 任一阶段命中即停止；市级命中会追加推导出的父级省份候选
func (HeuristicMatcher) Rank(input string, locations []Location) []Candidate {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}

	// 1. 精确匹配：唯一候选
	for _, loc := range locations {
		if strings.EqualFold(loc.Name, input) {
			return []Candidate{{Location: loc, Confidence: confExact}}
		}
	}

	// 2. 包含匹配：收集所有双向包含的地点
	matches := make([]Location, 0)
	for _, loc := range locations {
		if containsFold(input, loc.Name) || containsFold(loc.Name, input) {
			matches = append(matches, loc)
		}
	}

	if len(matches) > 0 {
		// 市级 > 省级，更长（更具体）的名称优先；稳定排序保持加载顺序作平局裁决
		sort.SliceStable(matches, func(i, j int) bool {
			ai, bi := isCityLevel(matches[i].Name), isCityLevel(matches[j].Name)
			if ai != bi {
				return ai
			}
			return len([]rune(matches[i].Name)) > len([]rune(matches[j].Name))
		})

		candidates := make([]Candidate, 0, len(matches)+1)
		for _, loc := range matches {
			conf := confProvSubstring
			if isCityLevel(loc.Name) {
				conf = confCitySubstring
			}
			candidates = append(candidates, Candidate{Location: loc, Confidence: conf})
		}

		// 最佳匹配为市级时补充父级省份候选
		if isCityLevel(matches[0].Name) {
			if parent := findParentProvince(matches[0].Name, locations); parent != nil {
				if !containsLocation(matches, parent.ID) {
					candidates = append(candidates, Candidate{Location: *parent, Confidence: confParentDerived})
				}
			}
		}

		return candidates
	}

	// 3. 分词匹配：拆出省市片段逐个尝试，如 "广东省清远市" 带干扰字符的场景
	tokens := splitAddress(input)

	// 先找市级
	for _, token := range tokens {
		for _, loc := range locations {
			if !matchesToken(loc.Name, token, isCityLevel) {
				continue
			}
			candidates := []Candidate{{Location: loc, Confidence: confTokenCity}}
			if parent := findParentProvince(loc.Name, locations); parent != nil && parent.ID != loc.ID {
				candidates = append(candidates, Candidate{Location: *parent, Confidence: confTokenProvince})
			}
			return candidates
		}
	}

	// 再找省级
	for _, token := range tokens {
		for _, loc := range locations {
			if matchesToken(loc.Name, token, isProvinceLevel) {
				return []Candidate{{Location: loc, Confidence: confTokenProvince}}
			}
		}
	}

	return nil
}

// ParsedLocation 地址解析结果
// Candidates 由承运商解析器按序消费：逐个尝试，找到有适用规则的候选即停止
type ParsedLocation struct {
	Province   string
	City       string
	Matched    *Location
	Candidates []Location
}

// ParseAddressWithLocations 从地址文本解析省市信息并给出候选地点列表
func ParseAddressWithLocations(address string, locations []Location) ParsedLocation {
	ranked := DefaultMatcher.Rank(address, locations)
	if len(ranked) == 0 {
		return ParsedLocation{}
	}

	best := ranked[0].Location
	candidates := make([]Location, 0, len(ranked))
	for _, c := range ranked {
		candidates = append(candidates, c.Location)
	}

	parsed := ParsedLocation{Matched: &best, Candidates: candidates}
	if isCityLevel(best.Name) {
		parsed.City = best.Name
		parsed.Province = ProvinceOfCity(best.Name)
		if parsed.Province == "" {
			// 城市不在省市映射表中时从候选里找省级条目补齐
			for _, c := range ranked[1:] {
				if isProvinceLevel(c.Location.Name) {
					parsed.Province = c.Location.Name
					break
				}
			}
		}
	} else {
		parsed.Province = best.Name
	}

	return parsed
}

// MatchLocation 单地点最佳匹配（用于下拉框搜索，与地址解析链路相互独立）
// 优先级：精确 → 包含 → 省份简称 → 城市简称 → 字符重合度
func MatchLocation(input string, locations []Location) *Location {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}

	// 1. 精确匹配
	for i := range locations {
		if strings.EqualFold(locations[i].Name, input) {
			return &locations[i]
		}
	}

	// 2. 包含匹配
	for i := range locations {
		if containsFold(locations[i].Name, input) || containsFold(input, locations[i].Name) {
			return &locations[i]
		}
	}

	// 3. 省份简称匹配
	provinceShort := stripAll(input, "省", "市", "自治区", "特别行政区")
	if len([]rune(provinceShort)) > 1 {
		for i := range locations {
			short := stripAll(locations[i].Name, "省", "市", "自治区", "特别行政区")
			if short == provinceShort || strings.Contains(short, provinceShort) {
				return &locations[i]
			}
		}
	}

	// 4. 城市简称匹配
	cityShort := stripAll(input, "市", "区", "县")
	if len([]rune(cityShort)) > 1 {
		for i := range locations {
			short := stripAll(locations[i].Name, "市", "区", "县")
			if short == cityShort || strings.Contains(short, cityShort) {
				return &locations[i]
			}
		}
	}

	// 5. 字符重合度匹配：输入至少 3 个字符且 70% 以上出现在候选名中
	inputRunes := []rune(strings.ToLower(input))
	if len(inputRunes) < 3 {
		return nil
	}
	for i := range locations {
		nameRunes := []rune(strings.ToLower(locations[i].Name))
		matched := 0
		for _, r := range inputRunes {
			if runeIn(nameRunes, r) {
				matched++
			}
		}
		if float64(matched)/float64(len(inputRunes)) > 0.7 {
			return &locations[i]
		}
	}

	return nil
}

// isCityLevel 按名称中的行政后缀判断是否市级地点
func isCityLevel(name string) bool {
	return strings.Contains(name, "市") || strings.Contains(name, "县") || strings.Contains(name, "区")
}

// isProvinceLevel 判断是否省级地点
func isProvinceLevel(name string) bool {
	return strings.Contains(name, "省") || strings.Contains(name, "自治区") || strings.Contains(name, "特别行政区")
}

// matchesToken 判断地点名与分词片段是否匹配
// 精确相等直接命中；包含匹配还需通过级别判定，避免省级地点抢占市级片段
func matchesToken(name, token string, level func(string) bool) bool {
	token = strings.TrimSpace(token)
	if token == "" {
		return false
	}
	if strings.EqualFold(name, token) {
		return true
	}
	if containsFold(name, token) || containsFold(token, name) {
		return level(name)
	}
	return false
}

// findParentProvince 在地点列表中查找城市的父级省份
func findParentProvince(cityName string, locations []Location) *Location {
	provinceName := ProvinceOfCity(cityName)
	if provinceName == "" {
		return nil
	}
	for i := range locations {
		if locations[i].Name == provinceName {
			return &locations[i]
		}
	}
	return nil
}

func containsLocation(locations []Location, id string) bool {
	for _, loc := range locations {
		if loc.ID == id {
			return true
		}
	}
	return false
}

// splitAddress 按标点和空白切分地址文本
func splitAddress(address string) []string {
	return strings.FieldsFunc(address, func(r rune) bool {
		switch r {
		case '，', ',', '。', '.', '、', '；', ';':
			return true
		}
		return unicode.IsSpace(r)
	})
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func stripAll(s string, subs ...string) string {
	s = strings.ToLower(s)
	for _, sub := range subs {
		s = strings.ReplaceAll(s, sub, "")
	}
	return s
}

func runeIn(runes []rune, r rune) bool {
	for _, x := range runes {
		if x == r {
			return true
		}
	}
	return false
}
