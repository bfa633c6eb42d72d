package engine

import (
	"context"
	"time"
)

// Options configures the model bootstrap.
type Options struct {
	Model      string
	Processor  string
	Variant    string
	ModelsDir  string
	RuntimeURL string
}

const defaultConnectTimeout = 5 * time.Second

// Load resolves the model's on-disk artifacts, detects its family and opens
// a runtime session, returning a ready engine. Any failure propagates so the
// caller can mark the service unavailable; the process stays alive.
func Load(ctx context.Context, opts Options) (Engine, Artifacts, error) {
	artifacts, err := ResolveArtifacts(opts.ModelsDir, opts.Model)
	if err != nil {
		return nil, Artifacts{}, err
	}
	family, err := DetectFamily(opts.Model)
	if err != nil {
		return nil, Artifacts{}, err
	}
	client := newRuntimeClient(opts.RuntimeURL, defaultConnectTimeout)
	sessionID, err := client.openSession(ctx, sessionSpec{
		ModelDir:        artifacts.Dir,
		Graphs:          artifacts.Graphs,
		Tokenizer:       artifacts.Tokenizer,
		Metadata:        artifacts.Metadata,
		Processor:       opts.Processor,
		Variant:         opts.Variant,
		PerformanceMode: "sustained_high_performance",
	})
	if err != nil {
		return nil, Artifacts{}, err
	}
	switch family {
	case FamilyDeepSeek:
		return &deepseekEngine{client: client, sessionID: sessionID}, artifacts, nil
	case FamilyGemma:
		return &gemmaEngine{client: client, sessionID: sessionID}, artifacts, nil
	default:
		return nil, Artifacts{}, ErrUnsupportedModel(opts.Model)
	}
}
