package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/golf-league/internal/domain/timeline"
)

type TimelineRepository struct {
	mu      sync.RWMutex
	entries []timeline.Entry
}

func NewTimelineRepository(entries []timeline.Entry) *TimelineRepository {
	return &TimelineRepository{entries: append([]timeline.Entry(nil), entries...)}
}

func (r *TimelineRepository) Append(_ context.Context, entry timeline.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	r.entries = append(r.entries, entry)
	r.mu.Unlock()

	return nil
}

func (r *TimelineRepository) ListBySeason(_ context.Context, seasonID string, limit int) ([]timeline.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]timeline.Entry, 0)
	for i := len(r.entries) - 1; i >= 0; i-- {
		if r.entries[i].SeasonID != seasonID {
			continue
		}
		out = append(out, r.entries[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}

	return out, nil
}
