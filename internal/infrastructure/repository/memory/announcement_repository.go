package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/golf-league/internal/domain/announcement"
)

type AnnouncementRepository struct {
	mu    sync.RWMutex
	items []announcement.Announcement
}

func NewAnnouncementRepository(items []announcement.Announcement) *AnnouncementRepository {
	return &AnnouncementRepository{items: append([]announcement.Announcement(nil), items...)}
}

func (r *AnnouncementRepository) List(_ context.Context, seasonID string, limit int) ([]announcement.Announcement, error) {
	r.mu.RLock()
	out := make([]announcement.Announcement, 0, len(r.items))
	for _, item := range r.items {
		if seasonID != "" && item.SeasonID != seasonID && item.SeasonID != "" {
			continue
		}
		out = append(out, item)
	}
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Pinned != out[j].Pinned {
			return out[i].Pinned
		}
		return out[i].PublishedAt.After(out[j].PublishedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}

	return out, nil
}

func (r *AnnouncementRepository) Create(_ context.Context, item announcement.Announcement) error {
	if err := item.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	r.items = append(r.items, item)
	r.mu.Unlock()

	return nil
}
