package audit

import (
	"context"
	"time"
)

// Entry records a privileged action for later review.
type Entry struct {
	Action     string
	ActorID    string
	TargetType string
	TargetID   string
	Metadata   map[string]string
	OccurredAt time.Time
}

// Sink accepts audit entries. Callers treat it as fire-and-forget.
type Sink interface {
	Record(ctx context.Context, entry Entry) error
}
