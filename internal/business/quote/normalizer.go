package quote

import (
	"sort"
	"strings"
)

// provinceNormalizeMap 省份标准化映射：各种带/不带行政后缀的写法 → 规范短名
var provinceNormalizeMap = map[string]string{
	// 直辖市
	"北京": "北京", "北京市": "北京",
	"上海": "上海", "上海市": "上海",
	"天津": "天津", "天津市": "天津",
	"重庆": "重庆", "重庆市": "重庆",

	// 省
	"河北": "河北", "河北省": "河北",
	"山西": "山西", "山西省": "山西",
	"辽宁": "辽宁", "辽宁省": "辽宁",
	"吉林": "吉林", "吉林省": "吉林",
	"黑龙江": "黑龙江", "黑龙江省": "黑龙江",
	"江苏": "江苏", "江苏省": "江苏",
	"浙江": "浙江", "浙江省": "浙江",
	"安徽": "安徽", "安徽省": "安徽",
	"福建": "福建", "福建省": "福建",
	"江西": "江西", "江西省": "江西",
	"山东": "山东", "山东省": "山东",
	"河南": "河南", "河南省": "河南",
	"湖北": "湖北", "湖北省": "湖北",
	"湖南": "湖南", "湖南省": "湖南",
	"广东": "广东", "广东省": "广东",
	"海南": "海南", "海南省": "海南",
	"四川": "四川", "四川省": "四川",
	"贵州": "贵州", "贵州省": "贵州",
	"云南": "云南", "云南省": "云南",
	"陕西": "陕西", "陕西省": "陕西",
	"甘肃": "甘肃", "甘肃省": "甘肃",
	"青海": "青海", "青海省": "青海",
	"台湾": "台湾", "台湾省": "台湾",

	// 自治区
	"内蒙古": "内蒙古", "内蒙古自治区": "内蒙古",
	"广西": "广西", "广西壮族自治区": "广西",
	"西藏": "西藏", "西藏自治区": "西藏",
	"宁夏": "宁夏", "宁夏回族自治区": "宁夏",
	"新疆": "新疆", "新疆维吾尔自治区": "新疆",

	// 特别行政区
	"香港": "香港", "香港特别行政区": "香港",
	"澳门": "澳门", "澳门特别行政区": "澳门",
}

// citySuffixes 城市行政后缀，按声明顺序剥离，先匹配者生效
var citySuffixes = []string{
	"市", "县", "区", "旗", "盟", "州", "自治州", "地区", "特别行政区",
}

// provinceNormalizeKeys 兜底包含匹配使用的固定键序：长键优先，等长按字典序
// 模糊输入每次都落到同一个省，迭代顺序不得影响报价
var provinceNormalizeKeys = sortedProvinceKeys()

func sortedProvinceKeys() []string {
	keys := make([]string, 0, len(provinceNormalizeMap))
	for key := range provinceNormalizeMap {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		li, lj := len([]rune(keys[i])), len([]rune(keys[j]))
		if li != lj {
			return li > lj
		}
		return keys[i] < keys[j]
	})
	return keys
}

// NormalizeProvince 标准化省份名称
// 优先查精确映射，其次在映射键上做双向包含匹配，都不中则原样返回（去除首尾空白）
func NormalizeProvince(province string) string {
	if province == "" {
		return ""
	}

	trimmed := strings.TrimSpace(province)
	if canonical, ok := provinceNormalizeMap[trimmed]; ok {
		return canonical
	}

	for _, key := range provinceNormalizeKeys {
		if strings.Contains(key, trimmed) || strings.Contains(trimmed, key) {
			return provinceNormalizeMap[key]
		}
	}

	return trimmed
}

// NormalizeCity 标准化城市名称：剥离恰好一个行政后缀
// 剥离后不足两个字的不剥（如 "杭州" 不会被剥成 "杭"），以保证幂等
func NormalizeCity(city string) string {
	if city == "" {
		return ""
	}

	trimmed := strings.TrimSpace(city)
	for _, suffix := range citySuffixes {
		if strings.HasSuffix(trimmed, suffix) {
			stripped := strings.TrimSuffix(trimmed, suffix)
			if len([]rune(stripped)) >= 2 {
				return stripped
			}
			break
		}
	}

	return trimmed
}

// IsSameProvince 判断两个省份名在标准化后是否相同
func IsSameProvince(a, b string) bool {
	return NormalizeProvince(a) == NormalizeProvince(b)
}

// IsSameCity 判断两个城市名在标准化后是否相同
func IsSameCity(a, b string) bool {
	return NormalizeCity(a) == NormalizeCity(b)
}

// FuzzyMatchCity 模糊匹配城市名：标准化后相等，或任一方包含另一方
func FuzzyMatchCity(target, candidate string) bool {
	nt := NormalizeCity(target)
	nc := NormalizeCity(candidate)

	if nt == nc {
		return true
	}
	if nt == "" || nc == "" {
		return false
	}
	return strings.Contains(nt, nc) || strings.Contains(nc, nt)
}
