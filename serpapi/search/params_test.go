package search_test

import (
	"maps"
	"serpapi/serpapi/search"
	"testing"
)

func TestMergeOverridesWin(t *testing.T) {
	defaults := search.Params{"engine": "google", "api_key": "K", "q": "tea"}
	overrides := search.Params{"q": "coffee", "location": "Austin, TX, Texas, United States"}

	merged := search.Merge(defaults, overrides)

	expected := search.Params{
		"source":   "go",
		"engine":   "google",
		"api_key":  "K",
		"q":        "coffee",
		"location": "Austin, TX, Texas, United States",
	}
	if !maps.Equal(merged, expected) {
		t.Fatalf("incorrect merged params: %v", merged)
	}
}

func TestMergeMarkerAlwaysPresent(t *testing.T) {
	for _, tc := range []struct {
		defaults, overrides search.Params
	}{
		{nil, nil},
		{search.Params{}, search.Params{}},
		{search.Params{"engine": "bing"}, nil},
		{nil, search.Params{"q": "coffee"}},
	} {
		merged := search.Merge(tc.defaults, tc.overrides)
		if merged[search.SourceKey] != search.SourceValue {
			t.Fatalf("source marker missing for defaults=%v overrides=%v", tc.defaults, tc.overrides)
		}
	}
}

func TestMergeMarkerOverride(t *testing.T) {
	merged := search.Merge(search.Params{"source": "from-defaults"}, nil)
	if merged["source"] != "go" {
		t.Fatalf("defaults should not replace the source marker, got %q", merged["source"])
	}

	merged = search.Merge(search.Params{"source": "from-defaults"}, search.Params{"source": "custom"})
	if merged["source"] != "custom" {
		t.Fatalf("override should replace the source marker, got %q", merged["source"])
	}
}

func TestMergeIsPure(t *testing.T) {
	defaults := search.Params{"engine": "google", "api_key": "K"}
	overrides := search.Params{"engine": "youtube", "search_query": "coffee"}

	first := search.Merge(defaults, overrides)
	second := search.Merge(defaults, overrides)

	if !maps.Equal(first, second) {
		t.Fatal("merging the same params twice should give the same result")
	}

	if defaults["engine"] != "google" || len(defaults) != 2 || len(overrides) != 2 {
		t.Fatal("merge should not modify its inputs")
	}

	first["q"] = "modified"
	if _, ok := second["q"]; ok {
		t.Fatal("merged params should not share storage")
	}
}
