package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/golf-league/internal/platform/logging"
)

// Effect is a best-effort follow-up to a committed write.
type Effect struct {
	Name string
	Run  func(ctx context.Context) error
}

// SideEffects runs effects on a bounded pool after the primary write has
// returned. Failures are logged and never reach the caller.
type SideEffects struct {
	pool     *ants.Pool
	logger   *logging.Logger
	inflight sync.WaitGroup
}

func NewSideEffects(workers int, logger *logging.Logger) (*SideEffects, error) {
	if workers <= 0 {
		workers = 1
	}
	if logger == nil {
		logger = logging.Default()
	}

	pool, err := ants.NewPool(workers, ants.WithPanicHandler(func(p any) {
		logger.Error("side effect panicked", "panic", fmt.Sprint(p))
	}))
	if err != nil {
		return nil, fmt.Errorf("create side effect pool: %w", err)
	}

	return &SideEffects{pool: pool, logger: logger}, nil
}

// Dispatch submits every effect concurrently with a context detached from
// the request, so a finished response does not cancel them.
func (s *SideEffects) Dispatch(ctx context.Context, effects ...Effect) {
	if s == nil {
		return
	}

	detached := context.WithoutCancel(ctx)
	for _, effect := range effects {
		if effect.Run == nil {
			continue
		}

		s.inflight.Add(1)
		err := s.pool.Submit(func() {
			defer s.inflight.Done()
			if runErr := effect.Run(detached); runErr != nil {
				s.logger.WarnContext(detached, "best-effort side effect failed", "effect", effect.Name, "error", runErr)
			}
		})
		if err != nil {
			s.inflight.Done()
			s.logger.WarnContext(ctx, "best-effort side effect dropped", "effect", effect.Name, "error", err)
		}
	}
}

// Wait blocks until every dispatched effect has finished.
func (s *SideEffects) Wait() {
	if s == nil {
		return
	}
	s.inflight.Wait()
}

func (s *SideEffects) Close() {
	if s == nil {
		return
	}
	s.inflight.Wait()
	s.pool.Release()
}
