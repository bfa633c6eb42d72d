// Package service is the orchestration façade between the HTTP layer and
// the inference engine: it owns one engine's lifecycle, builds prompts,
// invokes generation and best-effort-parses the freeform output. Operations
// never return errors; anything that goes wrong degrades into the
// operation's documented fallback result.
package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"bookmarkd/internal/engine"
	"bookmarkd/pkg/types"
)

// State is the lifecycle state of the service.
type State string

const (
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateFailed  State = "failed"
)

// Loader produces a ready engine. It is injected so tests can substitute a
// stub and so the bootstrap stays out of this package.
type Loader func(ctx context.Context) (engine.Engine, error)

// Service owns a single engine handle plus its readiness state. The load
// goroutine is the only writer; request handlers are readers.
type Service struct {
	model     string
	processor string
	log       zerolog.Logger

	mu      sync.RWMutex
	state   State
	eng     engine.Engine
	lastErr string

	loaded chan struct{} // closed once the load settles, either way
}

// New constructs the service and kicks off the one-time background load.
// Construction never blocks; the service answers status queries while the
// load is in flight and after it fails.
func New(model, processor string, loader Loader, log zerolog.Logger) *Service {
	s := &Service{
		model:     model,
		processor: processor,
		log:       log,
		state:     StateLoading,
		loaded:    make(chan struct{}),
	}
	go s.load(loader)
	return s
}

func (s *Service) load(loader Loader) {
	defer close(s.loaded)
	s.log.Info().Str("model", s.model).Str("processor", s.processor).Msg("loading model")
	eng, err := loader(context.Background())
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		// Terminal until process restart; no retry.
		s.state = StateFailed
		s.lastErr = err.Error()
		s.log.Error().Err(err).Str("model", s.model).Msg("model load failed")
		return
	}
	// Assign the handle before flipping state so readers holding the lock
	// never observe ready without an engine.
	s.eng = eng
	s.state = StateReady
	s.log.Info().Str("model", s.model).Msg("model loaded")
}

// WaitReady blocks until the background load settles or ctx is done.
// It returns nil once the load has settled regardless of outcome; callers
// check Ready for the result.
func (s *Service) WaitReady(ctx context.Context) error {
	select {
	case <-s.loaded:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Ready reports whether the engine is loaded and safe to invoke.
func (s *Service) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state == StateReady && s.eng != nil
}

// handle returns the engine when the service is ready.
func (s *Service) handle() (engine.Engine, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state != StateReady || s.eng == nil {
		return nil, false
	}
	return s.eng, true
}

// Status reports readiness without touching the engine.
func (s *Service) Status() types.StatusResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state == StateReady && s.eng != nil {
		return types.StatusResponse{
			Available: true,
			Model:     s.model,
			Processor: s.processor,
		}
	}
	status := "loading"
	if s.state == StateFailed {
		// The engine never initialized and never will without a restart.
		status = "not_initialized"
	}
	return types.StatusResponse{Available: false, Status: status}
}

// Close releases the engine if one was loaded.
func (s *Service) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.eng == nil {
		return nil
	}
	err := s.eng.Close()
	s.eng = nil
	return err
}
