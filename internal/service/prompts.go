package service

import (
	"fmt"
	"strings"

	"bookmarkd/pkg/types"
)

// Per-operation character budgets applied to snippet text before it is
// embedded in a prompt.
const (
	analyzeBudget  = 1000
	explainBudget  = 800
	optimizeBudget = 600
	relatedBudget  = 400
)

// truncate caps s at n characters (code points, not bytes).
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func analyzePrompt(content string) string {
	return fmt.Sprintf(`Analyze this code snippet and provide a JSON response with:
1. A concise title (max 50 chars)
2. 3-5 relevant tags
3. A brief summary (max 100 chars)
4. Programming language detected

Code:
%s

Respond only with valid JSON in this format:
{"title": "...", "tags": ["tag1", "tag2", "tag3"], "summary": "...", "language": "..."}`, truncate(content, analyzeBudget))
}

func explainPrompt(content string) string {
	return fmt.Sprintf(`Explain this code in simple terms (max 150 words):

%s

Focus on:
- What it does
- Key concepts used
- When you might use it

Keep it concise and beginner-friendly.`, truncate(content, explainBudget))
}

func optimizePrompt(content string) string {
	return fmt.Sprintf(`Suggest 2-3 quick improvements for this code (max 100 words):

%s

Focus on:
- Performance improvements
- Readability enhancements
- Best practices

Be specific and actionable.`, truncate(content, optimizeBudget))
}

func relatedPrompt(content string) string {
	return fmt.Sprintf(`Based on this code, suggest 3 related search queries a developer might want:

%s

Respond with just the queries, one per line:`, truncate(content, relatedBudget))
}

func searchPrompt(query string, bookmarks []types.Bookmark) string {
	lines := make([]string, 0, len(bookmarks))
	for i, b := range bookmarks {
		lines = append(lines, fmt.Sprintf("%d: %s - %s [%s]",
			i, stringField(b, "title"), stringField(b, "summary"),
			strings.Join(stringsField(b, "tags"), ", ")))
	}
	return fmt.Sprintf(`Given the search query %q, rank these code bookmarks by relevance (0-100 score).
Consider both exact matches and semantic meaning.

Bookmarks:
%s

Respond with just the bookmark indices in order of relevance (most relevant first):
Example: 3,1,0,2`, query, strings.Join(lines, "\n"))
}

// stringField reads a string field from an opaque bookmark, tolerating
// absent or non-string values.
func stringField(b types.Bookmark, key string) string {
	if v, ok := b[key].(string); ok {
		return v
	}
	return ""
}

// stringsField reads a list-of-strings field, tolerating []any payloads as
// produced by encoding/json.
func stringsField(b types.Bookmark, key string) []string {
	switch v := b[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
