package service

import (
	"reflect"
	"testing"

	"bookmarkd/pkg/types"
)

func TestExtractAnalysisWithTrailingText(t *testing.T) {
	out := `{"title":"x","tags":["a","b"],"summary":"s","language":"py"} trailing text`
	res, ok := ExtractAnalysis(out)
	if !ok {
		t.Fatalf("expected ok")
	}
	if res.Title != "x" || res.Summary != "s" || res.Language != "py" {
		t.Fatalf("unexpected result: %+v", res)
	}
	if !reflect.DeepEqual(res.Tags, []string{"a", "b"}) {
		t.Fatalf("tags=%v", res.Tags)
	}
}

func TestExtractAnalysisSpansNewlines(t *testing.T) {
	out := "Sure, here it is:\n{\n  \"title\": \"t\",\n  \"tags\": [\"go\"],\n  \"summary\": \"s\",\n  \"language\": \"go\"\n}\nHope that helps."
	res, ok := ExtractAnalysis(out)
	if !ok {
		t.Fatalf("expected ok")
	}
	if res.Title != "t" || res.Language != "go" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestExtractAnalysisNoObject(t *testing.T) {
	if _, ok := ExtractAnalysis("no json here"); ok {
		t.Fatalf("expected failure for output without braces")
	}
}

func TestExtractAnalysisMalformedObject(t *testing.T) {
	if _, ok := ExtractAnalysis(`{"title": unquoted}`); ok {
		t.Fatalf("expected failure for undecodable object")
	}
}

func TestParseRelatedQueriesFilterAndCap(t *testing.T) {
	out := "a\nshort\nthis one is long enough\n\nanother valid line"
	got := ParseRelatedQueries(out, 3)
	want := []string{"this one is long enough", "another valid line"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestParseRelatedQueriesCapsAtThree(t *testing.T) {
	out := "first long query\nsecond long query\nthird long query\nfourth long query"
	got := ParseRelatedQueries(out, 3)
	if len(got) != 3 {
		t.Fatalf("len=%d want 3", len(got))
	}
	if got[2] != "third long query" {
		t.Fatalf("got[2]=%q", got[2])
	}
}

func TestParseRankingIndices(t *testing.T) {
	cases := []struct {
		name string
		out  string
		n    int
		want []int
	}{
		{"basic", "2,0", 4, []int{2, 0}},
		{"whitespace", " 3 , 1 ,0, 2 ", 4, []int{3, 1, 0, 2}},
		{"out of range dropped", "5,1,-1,2", 4, []int{1, 2}},
		{"duplicates dropped", "2,2,0,2", 4, []int{2, 0}},
		{"garbage tokens", "first,1,two,3", 4, []int{1, 3}},
		{"empty output", "", 4, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseRankingIndices(tc.out, tc.n)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("got %v want %v", got, tc.want)
			}
		})
	}
}

func TestRerankBookmarksIsPermutation(t *testing.T) {
	bms := []types.Bookmark{
		{"title": "b0"}, {"title": "b1"}, {"title": "b2"}, {"title": "b3"},
	}
	got := RerankBookmarks(bms, []int{2, 0})
	if len(got) != 4 {
		t.Fatalf("len=%d", len(got))
	}
	order := []string{"b2", "b0", "b1", "b3"}
	for i, want := range order {
		if got[i]["title"] != want {
			t.Fatalf("pos %d: got %v want %s", i, got[i]["title"], want)
		}
	}
}
