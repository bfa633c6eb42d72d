package service

import (
	"encoding/json"
	"strconv"
	"strings"
	"unicode/utf8"

	"bookmarkd/pkg/types"
)

// Best-effort parsers for freeform model output. Each is a pure function so
// the degradation rules stay unit-testable without an engine or HTTP layer.

// ExtractAnalysis pulls the first '{' through the last '}' out of the model
// output (the object may span newlines and be surrounded by prose) and
// decodes it. Returns nil, false when no object is present or it does not
// decode.
func ExtractAnalysis(out string) (*types.AnalysisResult, bool) {
	start := strings.Index(out, "{")
	end := strings.LastIndex(out, "}")
	if start < 0 || end <= start {
		return nil, false
	}
	var res types.AnalysisResult
	if err := json.Unmarshal([]byte(out[start:end+1]), &res); err != nil {
		return nil, false
	}
	return &res, true
}

// ParseRelatedQueries splits model output into lines, keeps trimmed lines
// longer than five characters and caps the result at max.
func ParseRelatedQueries(out string, max int) []string {
	var queries []string
	for _, line := range strings.Split(out, "\n") {
		q := strings.TrimSpace(line)
		if utf8.RuneCountInString(q) > 5 {
			queries = append(queries, q)
		}
		if len(queries) == max {
			break
		}
	}
	return queries
}

// ParseRankingIndices extracts a ranking from comma-separated model output.
// Only tokens that parse as whole numbers count; values outside [0, n) and
// repeats are dropped so the caller can build a true permutation.
func ParseRankingIndices(out string, n int) []int {
	var indices []int
	seen := make(map[int]bool, n)
	for _, tok := range strings.Split(out, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		i, err := strconv.Atoi(tok)
		if err != nil || i < 0 || i >= n || seen[i] {
			continue
		}
		seen[i] = true
		indices = append(indices, i)
	}
	return indices
}

// RerankBookmarks reorders bookmarks so the explicitly ranked ones come
// first in ranked order, followed by the remainder in original order. The
// output is always a permutation of the input.
func RerankBookmarks(bookmarks []types.Bookmark, indices []int) []types.Bookmark {
	ranked := make(map[int]bool, len(indices))
	out := make([]types.Bookmark, 0, len(bookmarks))
	for _, i := range indices {
		out = append(out, bookmarks[i])
		ranked[i] = true
	}
	for i, b := range bookmarks {
		if !ranked[i] {
			out = append(out, b)
		}
	}
	return out
}
