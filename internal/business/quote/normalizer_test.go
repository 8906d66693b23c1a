package quote

import "testing"

func TestNormalizeProvince(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"浙江省", "浙江"},
		{"浙江", "浙江"},
		{"新疆维吾尔自治区", "新疆"},
		{"内蒙古自治区", "内蒙古"},
		{"香港特别行政区", "香港"},
		{"北京市", "北京"},
		{" 广东省 ", "广东"},
		{"", ""},
		{"未知地名", "未知地名"},
	}
	for _, tt := range tests {
		if got := NormalizeProvince(tt.in); got != tt.want {
			t.Errorf("NormalizeProvince(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeProvince_Deterministic(t *testing.T) {
	// "山" 同时落在山东和山西的包含匹配里，兜底匹配必须每次都给同一个结果
	first := NormalizeProvince("山")
	for i := 0; i < 200; i++ {
		if got := NormalizeProvince("山"); got != first {
			t.Fatalf("ambiguous input resolved differently: %q then %q", first, got)
		}
	}
	// 长键优先、等长按字典序："山东省" 排在 "山西省" 之前
	if first != "山东" {
		t.Fatalf("expected 山东 by key order, got %q", first)
	}
}

func TestNormalizeProvince_Idempotent(t *testing.T) {
	inputs := []string{"浙江省", "新疆维吾尔自治区", "北京市", "山", "未知地名"}
	for _, in := range inputs {
		once := NormalizeProvince(in)
		twice := NormalizeProvince(once)
		if once != twice {
			t.Errorf("NormalizeProvince not idempotent for %q: %q -> %q", in, once, twice)
		}
	}
}

func TestNormalizeCity(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"杭州市", "杭州"},
		{"清远市", "清远"},
		{"义乌县", "义乌"},
		{"朝阳区", "朝阳"},
		{"杭州", "杭州"},
		{"", ""},
		// 剥离后不足两个字的不剥
		{"沙市", "沙市"},
	}
	for _, tt := range tests {
		if got := NormalizeCity(tt.in); got != tt.want {
			t.Errorf("NormalizeCity(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeCity_Idempotent(t *testing.T) {
	inputs := []string{"杭州市", "广州市", "沙市", "义乌县", "延边自治州", "香港特别行政区"}
	for _, in := range inputs {
		once := NormalizeCity(in)
		twice := NormalizeCity(once)
		if once != twice {
			t.Errorf("NormalizeCity not idempotent for %q: %q -> %q", in, once, twice)
		}
	}
}

func TestIsSameProvince(t *testing.T) {
	if !IsSameProvince("浙江省", "浙江") {
		t.Error("浙江省 and 浙江 should match")
	}
	if !IsSameProvince("新疆", "新疆维吾尔自治区") {
		t.Error("新疆 and full name should match")
	}
	if IsSameProvince("浙江省", "江苏省") {
		t.Error("different provinces must not match")
	}
}

func TestFuzzyMatchCity(t *testing.T) {
	tests := []struct {
		target, candidate string
		want              bool
	}{
		{"杭州市", "杭州", true},
		{"杭州", "杭州市", true},
		{"清远", "清远市", true},
		{"杭州市", "宁波市", false},
		{"", "杭州", false},
		{"杭州", "", false},
	}
	for _, tt := range tests {
		if got := FuzzyMatchCity(tt.target, tt.candidate); got != tt.want {
			t.Errorf("FuzzyMatchCity(%q, %q) = %v, want %v", tt.target, tt.candidate, got, tt.want)
		}
	}
}
