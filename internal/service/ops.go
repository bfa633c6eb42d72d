package service

import (
	"context"
	"strings"

	"bookmarkd/internal/engine"
	"bookmarkd/pkg/types"
)

// Fixed fallback strings for the text operations.
const (
	msgUnavailable    = "LLM service not available"
	msgExplainFailed  = "Error explaining code"
	msgOptimizeFailed = "Error generating suggestions"
	maxRelatedQueries = 3
)

// Generation parameters per operation.
var (
	analyzeParams  = engine.GenParams{MaxTokens: 150, Temperature: 0.3, TopK: 10}
	explainParams  = engine.GenParams{MaxTokens: 200, Temperature: 0.4, TopK: 15}
	optimizeParams = engine.GenParams{MaxTokens: 150, Temperature: 0.3, TopK: 10}
	relatedParams  = engine.GenParams{MaxTokens: 80, Temperature: 0.5, TopK: 20}
	searchParams   = engine.GenParams{MaxTokens: 50, Temperature: 0.2, TopK: 5}
)

// AnalyzeCode asks the engine for a structured annotation of the snippet.
// Returns nil when the service is not ready, generation fails or the output
// carries no decodable JSON object.
func (s *Service) AnalyzeCode(ctx context.Context, content string) *types.AnalysisResult {
	eng, ok := s.handle()
	if !ok {
		observeOp("analyze", outcomeUnavailable)
		return nil
	}
	out, err := eng.Generate(ctx, analyzePrompt(content), analyzeParams)
	if err != nil {
		s.log.Error().Err(err).Msg("analyze generation failed")
		observeOp("analyze", outcomeError)
		return nil
	}
	res, ok := ExtractAnalysis(out)
	if !ok {
		observeOp("analyze", outcomeDegraded)
		return nil
	}
	observeOp("analyze", outcomeOK)
	return res
}

// ExplainCode returns a plain-language explanation of the snippet, or a
// fixed fallback string when the engine is unavailable or fails.
func (s *Service) ExplainCode(ctx context.Context, content string) string {
	eng, ok := s.handle()
	if !ok {
		observeOp("explain", outcomeUnavailable)
		return msgUnavailable
	}
	out, err := eng.Generate(ctx, explainPrompt(content), explainParams)
	if err != nil {
		s.log.Error().Err(err).Msg("explain generation failed")
		observeOp("explain", outcomeError)
		return msgExplainFailed
	}
	observeOp("explain", outcomeOK)
	return strings.TrimSpace(out)
}

// SuggestOptimizations returns improvement suggestions for the snippet, or
// a fixed fallback string when the engine is unavailable or fails.
func (s *Service) SuggestOptimizations(ctx context.Context, content string) string {
	eng, ok := s.handle()
	if !ok {
		observeOp("optimize", outcomeUnavailable)
		return msgUnavailable
	}
	out, err := eng.Generate(ctx, optimizePrompt(content), optimizeParams)
	if err != nil {
		s.log.Error().Err(err).Msg("optimize generation failed")
		observeOp("optimize", outcomeError)
		return msgOptimizeFailed
	}
	observeOp("optimize", outcomeOK)
	return strings.TrimSpace(out)
}

// RelatedQueries suggests up to three search queries related to the
// snippet. Empty when the engine is unavailable, fails or produces nothing
// usable.
func (s *Service) RelatedQueries(ctx context.Context, content string) []string {
	eng, ok := s.handle()
	if !ok {
		observeOp("related", outcomeUnavailable)
		return nil
	}
	out, err := eng.Generate(ctx, relatedPrompt(content), relatedParams)
	if err != nil {
		s.log.Error().Err(err).Msg("related generation failed")
		observeOp("related", outcomeError)
		return nil
	}
	observeOp("related", outcomeOK)
	return ParseRelatedQueries(out, maxRelatedQueries)
}

// SemanticSearch reorders bookmarks by relevance to the query. The result
// is always a permutation of the input; on any failure the input order is
// returned unchanged.
func (s *Service) SemanticSearch(ctx context.Context, query string, bookmarks []types.Bookmark) []types.Bookmark {
	eng, ok := s.handle()
	if !ok || len(bookmarks) == 0 {
		observeOp("search", outcomeUnavailable)
		return bookmarks
	}
	out, err := eng.Generate(ctx, searchPrompt(query, bookmarks), searchParams)
	if err != nil {
		s.log.Error().Err(err).Msg("search generation failed")
		observeOp("search", outcomeError)
		return bookmarks
	}
	indices := ParseRankingIndices(out, len(bookmarks))
	if len(indices) == 0 {
		observeOp("search", outcomeDegraded)
		return bookmarks
	}
	observeOp("search", outcomeOK)
	return RerankBookmarks(bookmarks, indices)
}
