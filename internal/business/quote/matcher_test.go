package quote

import "testing"

func testLocations() []Location {
	return []Location{
		{ID: "loc-gd", Name: "广东省"},
		{ID: "loc-qy", Name: "清远市"},
		{ID: "loc-zj", Name: "浙江省"},
		{ID: "loc-hz", Name: "杭州市"},
	}
}

func TestRank_ExactMatch(t *testing.T) {
	ranked := DefaultMatcher.Rank("清远市", testLocations())
	if len(ranked) != 1 {
		t.Fatalf("exact match should yield single candidate, got %d", len(ranked))
	}
	if ranked[0].Location.Name != "清远市" || ranked[0].Confidence != 1.0 {
		t.Fatalf("unexpected candidate %+v", ranked[0])
	}
}

func TestRank_FullAddressCityFirst(t *testing.T) {
	// 省市连写时市级候选优先于省级候选
	ranked := DefaultMatcher.Rank("广东省清远市", testLocations())
	if len(ranked) < 2 {
		t.Fatalf("expected at least 2 candidates, got %d", len(ranked))
	}
	if ranked[0].Location.Name != "清远市" {
		t.Fatalf("expected 清远市 first, got %q", ranked[0].Location.Name)
	}
	if ranked[1].Location.Name != "广东省" {
		t.Fatalf("expected 广东省 second, got %q", ranked[1].Location.Name)
	}
	if ranked[0].Confidence <= ranked[1].Confidence {
		t.Fatal("city candidate must carry higher confidence than province")
	}
}

func TestRank_TokenizedAddress(t *testing.T) {
	// 简称加标点的地址走分词匹配，并补充推导出的父级省份
	ranked := DefaultMatcher.Rank("清远，石角镇", testLocations())
	if len(ranked) == 0 {
		t.Fatal("expected candidates from tokenized address")
	}
	if ranked[0].Location.Name != "清远市" {
		t.Fatalf("expected 清远市 first, got %q", ranked[0].Location.Name)
	}
	if len(ranked) < 2 || ranked[1].Location.Name != "广东省" {
		t.Fatal("expected derived parent province 广东省 as second candidate")
	}
}

func TestRank_NoMatch(t *testing.T) {
	if ranked := DefaultMatcher.Rank("东京都", testLocations()); ranked != nil {
		t.Fatalf("expected nil for unmatched input, got %v", ranked)
	}
	if ranked := DefaultMatcher.Rank("   ", testLocations()); ranked != nil {
		t.Fatal("expected nil for blank input")
	}
}

func TestParseAddressWithLocations(t *testing.T) {
	parsed := ParseAddressWithLocations("广东省清远市", testLocations())
	if parsed.Matched == nil {
		t.Fatal("expected a match")
	}
	if parsed.Matched.Name != "清远市" {
		t.Fatalf("expected best match 清远市, got %q", parsed.Matched.Name)
	}
	if len(parsed.Candidates) < 2 || parsed.Candidates[0].Name != "清远市" || parsed.Candidates[1].Name != "广东省" {
		t.Fatalf("unexpected candidate order: %+v", parsed.Candidates)
	}
}

func TestParseAddressWithLocations_Empty(t *testing.T) {
	parsed := ParseAddressWithLocations("不存在的地方", testLocations())
	if parsed.Matched != nil || len(parsed.Candidates) != 0 {
		t.Fatalf("expected empty result, got %+v", parsed)
	}
}

func TestMatchLocation(t *testing.T) {
	locations := testLocations()

	tests := []struct {
		in   string
		want string
	}{
		{"广东省", "广东省"}, // 精确
		{"广东", "广东省"},   // 包含
		{"清远", "清远市"},
		{"杭州市", "杭州市"},
	}
	for _, tt := range tests {
		got := MatchLocation(tt.in, locations)
		if got == nil || got.Name != tt.want {
			t.Errorf("MatchLocation(%q) = %v, want %q", tt.in, got, tt.want)
		}
	}

	if got := MatchLocation("東京", locations); got != nil {
		t.Errorf("expected nil for foreign input, got %v", got)
	}
	if got := MatchLocation("", locations); got != nil {
		t.Error("expected nil for empty input")
	}
}

func TestProvinceOfCity(t *testing.T) {
	if got := ProvinceOfCity("清远市"); got != "广东省" {
		t.Fatalf("expected 广东省, got %q", got)
	}
	if got := ProvinceOfCity("不存在市"); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}
