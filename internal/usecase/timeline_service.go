package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/golf-league/internal/domain/season"
	"github.com/riskibarqy/golf-league/internal/domain/timeline"
)

const (
	defaultTimelineLimit = 50
	maxTimelineLimit     = 200
)

type TimelinePage struct {
	Season  season.Season
	Entries []timeline.Entry
}

type TimelineService struct {
	seasonRepo   season.Repository
	timelineRepo timeline.Repository
}

func NewTimelineService(seasonRepo season.Repository, timelineRepo timeline.Repository) *TimelineService {
	return &TimelineService{seasonRepo: seasonRepo, timelineRepo: timelineRepo}
}

func (s *TimelineService) List(ctx context.Context, seasonID string, limit int) (TimelinePage, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TimelineService.List")
	defer span.End()

	if limit < 0 {
		return TimelinePage{}, fmt.Errorf("%w: limit must be >= 0", ErrInvalidInput)
	}

	resolved, err := resolveSeason(ctx, s.seasonRepo, seasonID)
	if err != nil {
		return TimelinePage{}, err
	}

	entries, err := s.timelineRepo.ListBySeason(ctx, resolved.ID, normalizeLimit(limit, defaultTimelineLimit, maxTimelineLimit))
	if err != nil {
		return TimelinePage{}, fmt.Errorf("list timeline: %w", err)
	}

	return TimelinePage{Season: resolved, Entries: entries}, nil
}
