package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/riskibarqy/golf-league/internal/domain/season"
	"github.com/riskibarqy/golf-league/internal/domain/timeline"
	"github.com/riskibarqy/golf-league/internal/platform/id"
)

type CreateSeasonInput struct {
	Name      string
	Year      int
	StartDate time.Time
	EndDate   *time.Time
	Activate  bool
}

type SeasonService struct {
	seasonRepo season.Repository
	authorizer *Authorizer
	activity   *ActivityRecorder
	idGen      id.Generator
	now        func() time.Time
}

func NewSeasonService(seasonRepo season.Repository, authorizer *Authorizer, activity *ActivityRecorder, idGen id.Generator) *SeasonService {
	return &SeasonService{
		seasonRepo: seasonRepo,
		authorizer: authorizer,
		activity:   activity,
		idGen:      idGen,
		now:        time.Now,
	}
}

// List returns seasons, most recently started first.
func (s *SeasonService) List(ctx context.Context) ([]season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.List")
	defer span.End()

	seasons, err := s.seasonRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}

	sort.SliceStable(seasons, func(i, j int) bool {
		return seasons[i].StartDate.After(seasons[j].StartDate)
	})
	return seasons, nil
}

func (s *SeasonService) Get(ctx context.Context, seasonID string) (season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.Get")
	defer span.End()

	seasonID = strings.TrimSpace(seasonID)
	if !id.Valid(seasonID) {
		return season.Season{}, fmt.Errorf("%w: season id is malformed", ErrInvalidInput)
	}

	item, exists, err := s.seasonRepo.GetByID(ctx, seasonID)
	if err != nil {
		return season.Season{}, fmt.Errorf("get season: %w", err)
	}
	if !exists {
		return season.Season{}, fmt.Errorf("%w: season=%s", ErrNotFound, seasonID)
	}

	return item, nil
}

// Resolve returns requestedID's season, or the current one when it is empty.
func (s *SeasonService) Resolve(ctx context.Context, requestedID string) (season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.Resolve")
	defer span.End()

	return resolveSeason(ctx, s.seasonRepo, requestedID)
}

func (s *SeasonService) Create(ctx context.Context, actorID string, input CreateSeasonInput) (season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.Create")
	defer span.End()

	if _, err := s.authorizer.RequireCommissioner(ctx, actorID); err != nil {
		return season.Season{}, err
	}

	seasonID, err := s.idGen.NewID()
	if err != nil {
		return season.Season{}, fmt.Errorf("generate season id: %w", err)
	}

	now := s.now().UTC()
	item := season.Season{
		ID:        seasonID,
		Name:      strings.TrimSpace(input.Name),
		Year:      input.Year,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := item.Validate(); err != nil {
		return season.Season{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.seasonRepo.Create(ctx, item); err != nil {
		return season.Season{}, fmt.Errorf("create season: %w", err)
	}

	s.activity.Record(ctx, Activity{
		ActorID:    actorID,
		SubjectID:  item.ID,
		Action:     "season.created",
		TargetType: "season",
		Metadata:   map[string]string{"name": item.Name},
	})

	if input.Activate {
		return s.activate(ctx, actorID, item)
	}
	return item, nil
}

// Activate makes seasonID the only active season.
func (s *SeasonService) Activate(ctx context.Context, actorID, seasonID string) (season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.Activate")
	defer span.End()

	if _, err := s.authorizer.RequireCommissioner(ctx, actorID); err != nil {
		return season.Season{}, err
	}

	item, err := s.Get(ctx, seasonID)
	if err != nil {
		return season.Season{}, err
	}
	if item.IsActive {
		return item, nil
	}

	return s.activate(ctx, actorID, item)
}

func (s *SeasonService) activate(ctx context.Context, actorID string, item season.Season) (season.Season, error) {
	if err := s.seasonRepo.Activate(ctx, item.ID); err != nil {
		return season.Season{}, fmt.Errorf("activate season: %w", err)
	}
	item.IsActive = true

	s.activity.Record(ctx, Activity{
		SeasonID:   item.ID,
		Kind:       timeline.KindSeasonActivated,
		ActorID:    actorID,
		SubjectID:  item.ID,
		Summary:    fmt.Sprintf("%s is now the active season", item.Name),
		Action:     "season.activated",
		TargetType: "season",
	})

	return item, nil
}
