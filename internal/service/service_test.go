package service

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/rs/zerolog"

	"bookmarkd/internal/engine"
	"bookmarkd/pkg/types"
)

// stubEngine returns canned output and records whether it was invoked.
type stubEngine struct {
	out    string
	err    error
	calls  int
	prompt string
	params engine.GenParams
}

func (s *stubEngine) Generate(_ context.Context, prompt string, p engine.GenParams) (string, error) {
	s.calls++
	s.prompt = prompt
	s.params = p
	return s.out, s.err
}

func (s *stubEngine) Close() error { return nil }

func newReadyService(t *testing.T, eng engine.Engine) *Service {
	t.Helper()
	svc := New("deepseek_7b", "cpu", func(context.Context) (engine.Engine, error) {
		return eng, nil
	}, zerolog.Nop())
	if err := svc.WaitReady(context.Background()); err != nil {
		t.Fatalf("WaitReady: %v", err)
	}
	if !svc.Ready() {
		t.Fatalf("service not ready after successful load")
	}
	return svc
}

func TestServiceFailedLoad(t *testing.T) {
	stub := &stubEngine{}
	svc := New("deepseek_7b", "cpu", func(context.Context) (engine.Engine, error) {
		return nil, errors.New("no artifacts")
	}, zerolog.Nop())
	if err := svc.WaitReady(context.Background()); err != nil {
		t.Fatalf("WaitReady: %v", err)
	}
	if svc.Ready() {
		t.Fatalf("service ready after failed load")
	}

	st := svc.Status()
	if st.Available {
		t.Fatalf("available=true after failed load")
	}
	if st.Status != "not_initialized" {
		t.Fatalf("status=%q want not_initialized", st.Status)
	}

	ctx := context.Background()
	if res := svc.AnalyzeCode(ctx, "code"); res != nil {
		t.Fatalf("analyze returned %v when unavailable", res)
	}
	if got := svc.ExplainCode(ctx, "code"); got != msgUnavailable {
		t.Fatalf("explain=%q want %q", got, msgUnavailable)
	}
	if got := svc.SuggestOptimizations(ctx, "code"); got != msgUnavailable {
		t.Fatalf("optimize=%q want %q", got, msgUnavailable)
	}
	if got := svc.RelatedQueries(ctx, "code"); len(got) != 0 {
		t.Fatalf("related=%v want empty", got)
	}
	bms := []types.Bookmark{{"title": "a"}, {"title": "b"}}
	if got := svc.SemanticSearch(ctx, "q", bms); !reflect.DeepEqual(got, bms) {
		t.Fatalf("search reordered bookmarks while unavailable")
	}
	if stub.calls != 0 {
		t.Fatalf("engine invoked %d times while unavailable", stub.calls)
	}
}

func TestServiceStatusWhileLoading(t *testing.T) {
	release := make(chan struct{})
	svc := New("deepseek_7b", "cpu", func(context.Context) (engine.Engine, error) {
		<-release
		return &stubEngine{}, nil
	}, zerolog.Nop())
	defer close(release)

	st := svc.Status()
	if st.Available {
		t.Fatalf("available=true while loading")
	}
	if st.Status != "loading" {
		t.Fatalf("status=%q want loading", st.Status)
	}
}

func TestServiceStatusReady(t *testing.T) {
	svc := newReadyService(t, &stubEngine{})
	st := svc.Status()
	if !st.Available || st.Model != "deepseek_7b" || st.Processor != "cpu" {
		t.Fatalf("unexpected status: %+v", st)
	}
	if st.Status != "" {
		t.Fatalf("status field set when ready: %q", st.Status)
	}
}

func TestAnalyzeCodeParsesObject(t *testing.T) {
	stub := &stubEngine{out: `here: {"title":"Sort helper","tags":["go"],"summary":"sorts","language":"go"} done`}
	svc := newReadyService(t, stub)

	res := svc.AnalyzeCode(context.Background(), "func sort() {}")
	if res == nil {
		t.Fatalf("expected result")
	}
	if res.Title != "Sort helper" || res.Language != "go" {
		t.Fatalf("unexpected result: %+v", res)
	}
	if stub.params.MaxTokens != 150 || stub.params.TopK != 10 {
		t.Fatalf("unexpected generation params: %+v", stub.params)
	}
}

func TestAnalyzeCodeNoObject(t *testing.T) {
	svc := newReadyService(t, &stubEngine{out: "I cannot do that."})
	if res := svc.AnalyzeCode(context.Background(), "code"); res != nil {
		t.Fatalf("expected nil for output without JSON, got %+v", res)
	}
}

func TestAnalyzeCodeEngineError(t *testing.T) {
	svc := newReadyService(t, &stubEngine{err: errors.New("session gone")})
	if res := svc.AnalyzeCode(context.Background(), "code"); res != nil {
		t.Fatalf("expected nil on engine error, got %+v", res)
	}
}

func TestExplainCodeTrimsOutput(t *testing.T) {
	svc := newReadyService(t, &stubEngine{out: "\n  This function sorts a slice.  \n"})
	got := svc.ExplainCode(context.Background(), "code")
	if got != "This function sorts a slice." {
		t.Fatalf("got %q", got)
	}
}

func TestExplainCodeEngineError(t *testing.T) {
	svc := newReadyService(t, &stubEngine{err: errors.New("boom")})
	if got := svc.ExplainCode(context.Background(), "code"); got != msgExplainFailed {
		t.Fatalf("got %q want %q", got, msgExplainFailed)
	}
}

func TestSuggestOptimizationsEngineError(t *testing.T) {
	svc := newReadyService(t, &stubEngine{err: errors.New("boom")})
	if got := svc.SuggestOptimizations(context.Background(), "code"); got != msgOptimizeFailed {
		t.Fatalf("got %q want %q", got, msgOptimizeFailed)
	}
}

func TestRelatedQueriesCapsAtThree(t *testing.T) {
	svc := newReadyService(t, &stubEngine{out: "golang slice sorting\nbinary search trees\nquick sort implementation\nheap sort variants"})
	got := svc.RelatedQueries(context.Background(), "code")
	if len(got) != 3 {
		t.Fatalf("len=%d want 3: %v", len(got), got)
	}
}

func TestSemanticSearchReranks(t *testing.T) {
	stub := &stubEngine{out: "1,0"}
	svc := newReadyService(t, stub)
	bms := []types.Bookmark{
		{"title": "alpha"}, {"title": "beta"}, {"title": "gamma"},
	}
	got := svc.SemanticSearch(context.Background(), "b", bms)
	if len(got) != 3 {
		t.Fatalf("len=%d", len(got))
	}
	if got[0]["title"] != "beta" || got[1]["title"] != "alpha" || got[2]["title"] != "gamma" {
		t.Fatalf("unexpected order: %v", got)
	}
}

func TestSemanticSearchEmptyBookmarks(t *testing.T) {
	stub := &stubEngine{out: "0"}
	svc := newReadyService(t, stub)
	got := svc.SemanticSearch(context.Background(), "q", nil)
	if len(got) != 0 {
		t.Fatalf("got %v", got)
	}
	if stub.calls != 0 {
		t.Fatalf("engine invoked for empty bookmark list")
	}
}

func TestSemanticSearchUnparseableOutput(t *testing.T) {
	svc := newReadyService(t, &stubEngine{out: "most relevant is the second one"})
	bms := []types.Bookmark{{"title": "a"}, {"title": "b"}}
	got := svc.SemanticSearch(context.Background(), "q", bms)
	if !reflect.DeepEqual(got, bms) {
		t.Fatalf("order changed on unparseable ranking: %v", got)
	}
}

func TestPromptTruncation(t *testing.T) {
	long := make([]rune, 5000)
	for i := range long {
		long[i] = 'x'
	}
	content := string(long)

	stub := &stubEngine{out: "{}"}
	svc := newReadyService(t, stub)
	svc.AnalyzeCode(context.Background(), content)
	if stub.prompt == "" {
		t.Fatalf("engine not invoked")
	}
	if len(stub.prompt) > len(analyzePrompt(content)) {
		t.Fatalf("prompt grew beyond builder output")
	}
	// The snippet portion is capped well below the raw content length.
	if got := len(stub.prompt); got > 1500 {
		t.Fatalf("prompt length %d, truncation not applied", got)
	}
}
