package app

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/golf-league/internal/platform/logging"
	"github.com/riskibarqy/golf-league/internal/platform/resilience"
	"github.com/riskibarqy/golf-league/internal/usecase"
)

const storagePingTimeout = 2 * time.Second

// storageHealth pings the database through a circuit breaker. Memory storage
// has no pinger and always reports healthy.
type storageHealth struct {
	db      pinger
	breaker *resilience.Breaker
	logger  *logging.Logger
	timeout time.Duration
}

func newStorageHealth(db pinger, cfg resilience.BreakerConfig, logger *logging.Logger) *storageHealth {
	if logger == nil {
		logger = logging.Default()
	}
	return &storageHealth{
		db:      db,
		breaker: resilience.NewBreaker(cfg),
		logger:  logger,
		timeout: storagePingTimeout,
	}
}

func (h *storageHealth) Check(ctx context.Context) error {
	if h == nil || h.db == nil {
		return nil
	}

	err := h.breaker.Do(ctx, func(ctx context.Context) error {
		pingCtx, cancel := context.WithTimeout(ctx, h.timeout)
		defer cancel()
		return h.db.PingContext(pingCtx)
	})
	if err == nil {
		return nil
	}

	h.logger.WarnContext(ctx, "storage health check failed",
		"breaker_state", string(h.breaker.State()),
		"error", err,
	)
	return fmt.Errorf("%w: storage: %v", usecase.ErrDependencyUnavailable, err)
}
