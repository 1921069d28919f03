package audit

import (
	"context"
	"time"

	"github.com/riskibarqy/golf-league/internal/domain/audit"
	"github.com/riskibarqy/golf-league/internal/platform/logging"
)

// LogSink writes audit entries as structured lines on the "audit" logger.
type LogSink struct {
	logger *logging.Logger
}

func NewLogSink(logger *logging.Logger) *LogSink {
	if logger == nil {
		logger = logging.Default()
	}
	return &LogSink{logger: logger.Named("audit")}
}

func (s *LogSink) Record(ctx context.Context, entry audit.Entry) error {
	occurredAt := entry.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now().UTC()
	}

	args := []any{
		"action", entry.Action,
		"actor_id", entry.ActorID,
		"target_type", entry.TargetType,
		"target_id", entry.TargetID,
		"occurred_at", occurredAt.Format(time.RFC3339Nano),
	}
	if len(entry.Metadata) > 0 {
		args = append(args, "metadata", entry.Metadata)
	}

	s.logger.InfoContext(ctx, "audit event", args...)
	return nil
}
