package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"bookmarkd/pkg/types"
)

// Service defines the façade methods required by the HTTP API layer.
type Service interface {
	AnalyzeCode(ctx context.Context, content string) *types.AnalysisResult
	ExplainCode(ctx context.Context, content string) string
	SuggestOptimizations(ctx context.Context, content string) string
	RelatedQueries(ctx context.Context, content string) []string
	SemanticSearch(ctx context.Context, query string, bookmarks []types.Bookmark) []types.Bookmark
	Status() types.StatusResponse
	Ready() bool
}

func NewMux(svc Service) http.Handler {
	r := chi.NewRouter()
	// Basic middlewares: request id, real ip, recoverer
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	// Compression for JSON endpoints
	r.Use(middleware.Compress(5))
	r.Use(MetricsMiddleware)
	if corsEnabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: corsAllowedOrigins,
			AllowedMethods: corsAllowedMethods,
			AllowedHeaders: corsAllowedHeaders,
		}))
	}
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})

	// Status godoc
	// @Summary  Report engine readiness
	// @Produce  json
	// @Success  200 {object} types.StatusResponse
	// @Router   /status [get]
	r.Get("/status", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.Status())
	})

	// Analyze godoc
	// @Summary  Produce title/tags/summary/language for a snippet
	// @Accept   json
	// @Produce  json
	// @Param    request body types.SnippetRequest true "snippet"
	// @Success  200 {object} types.AnalysisResult
	// @Failure  400 {object} types.ErrorResponse
	// @Failure  500 {object} types.ErrorResponse
	// @Router   /analyze [post]
	r.Post("/analyze", func(w http.ResponseWriter, r *http.Request) {
		var req types.SnippetRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if req.Content == "" {
			writeJSONError(w, http.StatusBadRequest, "No content provided")
			return
		}
		start := time.Now()
		result := svc.AnalyzeCode(r.Context(), req.Content)
		logOp(r, "analyze", time.Since(start))
		if result == nil {
			// Deliberately covers both "engine not ready" and "no JSON in
			// output"; callers distinguish readiness via /status.
			writeJSONError(w, http.StatusInternalServerError, "Analysis failed")
			return
		}
		writeJSON(w, http.StatusOK, result)
	})

	// Explain godoc
	// @Summary  Explain a snippet in plain language
	// @Accept   json
	// @Produce  json
	// @Param    request body types.SnippetRequest true "snippet"
	// @Success  200 {object} types.ExplainResponse
	// @Failure  400 {object} types.ErrorResponse
	// @Router   /explain [post]
	r.Post("/explain", func(w http.ResponseWriter, r *http.Request) {
		var req types.SnippetRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if req.Content == "" {
			writeJSONError(w, http.StatusBadRequest, "No content provided")
			return
		}
		start := time.Now()
		explanation := svc.ExplainCode(r.Context(), req.Content)
		logOp(r, "explain", time.Since(start))
		writeJSON(w, http.StatusOK, types.ExplainResponse{Explanation: explanation})
	})

	// Optimize godoc
	// @Summary  Suggest improvements for a snippet
	// @Accept   json
	// @Produce  json
	// @Param    request body types.SnippetRequest true "snippet"
	// @Success  200 {object} types.OptimizeResponse
	// @Failure  400 {object} types.ErrorResponse
	// @Router   /optimize [post]
	r.Post("/optimize", func(w http.ResponseWriter, r *http.Request) {
		var req types.SnippetRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if req.Content == "" {
			writeJSONError(w, http.StatusBadRequest, "No content provided")
			return
		}
		start := time.Now()
		suggestions := svc.SuggestOptimizations(r.Context(), req.Content)
		logOp(r, "optimize", time.Since(start))
		writeJSON(w, http.StatusOK, types.OptimizeResponse{Suggestions: suggestions})
	})

	// Related godoc
	// @Summary  Suggest related search queries for a snippet
	// @Accept   json
	// @Produce  json
	// @Param    request body types.SnippetRequest true "snippet"
	// @Success  200 {object} types.RelatedResponse
	// @Failure  400 {object} types.ErrorResponse
	// @Router   /related [post]
	r.Post("/related", func(w http.ResponseWriter, r *http.Request) {
		var req types.SnippetRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if req.Content == "" {
			writeJSONError(w, http.StatusBadRequest, "No content provided")
			return
		}
		start := time.Now()
		queries := svc.RelatedQueries(r.Context(), req.Content)
		logOp(r, "related", time.Since(start))
		if queries == nil {
			queries = []string{}
		}
		writeJSON(w, http.StatusOK, types.RelatedResponse{Queries: queries})
	})

	// Search godoc
	// @Summary  Re-rank bookmarks by relevance to a query
	// @Accept   json
	// @Produce  json
	// @Param    request body types.SearchRequest true "query and bookmarks"
	// @Success  200 {object} types.SearchResponse
	// @Failure  400 {object} types.ErrorResponse
	// @Router   /search [post]
	r.Post("/search", func(w http.ResponseWriter, r *http.Request) {
		var req types.SearchRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if req.Query == "" || len(req.Bookmarks) == 0 {
			writeJSONError(w, http.StatusBadRequest, "Missing query or bookmarks")
			return
		}
		start := time.Now()
		ranked := svc.SemanticSearch(r.Context(), req.Query, req.Bookmarks)
		logOp(r, "search", time.Since(start))
		writeJSON(w, http.StatusOK, types.SearchResponse{Bookmarks: ranked})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if svc.Ready() {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("ready"))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("loading"))
	})

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	MountSwagger(r)

	return r
}

// decodeBody enforces the body size cap and decodes JSON, answering 400 on
// failure. Returns false when the request has already been answered.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil && status == http.StatusOK {
		// Headers are gone; nothing more we can do than log it.
		logEncodeError(err)
	}
}
