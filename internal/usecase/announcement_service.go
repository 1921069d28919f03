package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/golf-league/internal/domain/announcement"
	"github.com/riskibarqy/golf-league/internal/domain/season"
	"github.com/riskibarqy/golf-league/internal/domain/timeline"
	"github.com/riskibarqy/golf-league/internal/platform/id"
)

const (
	defaultAnnouncementLimit = 20
	maxAnnouncementLimit     = 100
)

type CreateAnnouncementInput struct {
	SeasonID string
	Title    string
	Body     string
	Pinned   bool
}

type AnnouncementService struct {
	seasonRepo       season.Repository
	announcementRepo announcement.Repository
	authorizer       *Authorizer
	activity         *ActivityRecorder
	idGen            id.Generator
	now              func() time.Time
}

func NewAnnouncementService(
	seasonRepo season.Repository,
	announcementRepo announcement.Repository,
	authorizer *Authorizer,
	activity *ActivityRecorder,
	idGen id.Generator,
) *AnnouncementService {
	return &AnnouncementService{
		seasonRepo:       seasonRepo,
		announcementRepo: announcementRepo,
		authorizer:       authorizer,
		activity:         activity,
		idGen:            idGen,
		now:              time.Now,
	}
}

// List returns league-wide announcements, or those of one season when seasonID is set.
func (s *AnnouncementService) List(ctx context.Context, seasonID string, limit int) ([]announcement.Announcement, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnnouncementService.List")
	defer span.End()

	seasonID = strings.TrimSpace(seasonID)
	if seasonID != "" {
		if _, err := resolveSeason(ctx, s.seasonRepo, seasonID); err != nil {
			return nil, err
		}
	}

	items, err := s.announcementRepo.List(ctx, seasonID, normalizeLimit(limit, defaultAnnouncementLimit, maxAnnouncementLimit))
	if err != nil {
		return nil, fmt.Errorf("list announcements: %w", err)
	}
	return items, nil
}

func (s *AnnouncementService) Create(ctx context.Context, actorID string, input CreateAnnouncementInput) (announcement.Announcement, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnnouncementService.Create")
	defer span.End()

	if _, err := s.authorizer.RequireCommissioner(ctx, actorID); err != nil {
		return announcement.Announcement{}, err
	}

	seasonID := strings.TrimSpace(input.SeasonID)
	if seasonID != "" {
		if _, err := resolveSeason(ctx, s.seasonRepo, seasonID); err != nil {
			return announcement.Announcement{}, err
		}
	}

	announcementID, err := s.idGen.NewID()
	if err != nil {
		return announcement.Announcement{}, fmt.Errorf("generate announcement id: %w", err)
	}

	item := announcement.Announcement{
		ID:          announcementID,
		SeasonID:    seasonID,
		AuthorID:    actorID,
		Title:       strings.TrimSpace(input.Title),
		Body:        strings.TrimSpace(input.Body),
		Pinned:      input.Pinned,
		PublishedAt: s.now().UTC(),
	}
	if err := item.Validate(); err != nil {
		return announcement.Announcement{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.announcementRepo.Create(ctx, item); err != nil {
		return announcement.Announcement{}, fmt.Errorf("create announcement: %w", err)
	}

	s.activity.Record(ctx, Activity{
		SeasonID:   item.SeasonID,
		Kind:       timeline.KindAnnouncementPosted,
		ActorID:    actorID,
		SubjectID:  item.ID,
		Summary:    item.Title,
		Action:     "announcement.created",
		TargetType: "announcement",
	})

	return item, nil
}
