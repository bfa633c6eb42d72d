package types

// SnippetRequest is the payload for /analyze, /explain, /optimize and /related.
type SnippetRequest struct {
	// Code snippet to annotate.
	// example: def add(a, b):\n    return a + b
	Content string `json:"content" example:"def add(a, b):\n    return a + b"`
}

// AnalysisResult is the structured annotation produced by /analyze.
type AnalysisResult struct {
	// Concise title (max 50 chars).
	// example: Add two numbers
	Title string `json:"title" example:"Add two numbers"`
	// 3-5 relevant tags.
	Tags []string `json:"tags"`
	// Brief summary (max 100 chars).
	// example: Sums two values.
	Summary string `json:"summary" example:"Sums two values."`
	// Detected programming language.
	// example: python
	Language string `json:"language" example:"python"`
}

// ExplainResponse wraps the explanation returned by /explain.
type ExplainResponse struct {
	Explanation string `json:"explanation"`
}

// OptimizeResponse wraps the suggestions returned by /optimize.
type OptimizeResponse struct {
	Suggestions string `json:"suggestions"`
}

// RelatedResponse wraps the queries returned by /related.
type RelatedResponse struct {
	Queries []string `json:"queries"`
}

// Bookmark is an opaque caller-owned record. The service only reads the
// title, summary and tags fields to build ranking text; everything else is
// passed through untouched.
type Bookmark map[string]any

// SearchRequest is the payload for /search.
type SearchRequest struct {
	// Free-text search query.
	// example: http retry logic
	Query string `json:"query" example:"http retry logic"`
	// Bookmarks to re-rank by relevance to the query.
	Bookmarks []Bookmark `json:"bookmarks"`
}

// SearchResponse returns the input bookmarks reordered by relevance.
type SearchResponse struct {
	Bookmarks []Bookmark `json:"bookmarks"`
}

// StatusResponse is returned by GET /status.
type StatusResponse struct {
	// True when the engine is loaded and safe to invoke.
	// example: true
	Available bool `json:"available"`
	// Model identifier, present when available.
	// example: deepseek_7b
	Model string `json:"model,omitempty" example:"deepseek_7b"`
	// Processor selector, present when available.
	// example: cpu
	Processor string `json:"processor,omitempty" example:"cpu"`
	// Load state when unavailable: "loading" or "not_initialized".
	// example: loading
	Status string `json:"status,omitempty" example:"loading"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: No content provided
	Error string `json:"error" example:"No content provided"`
}
