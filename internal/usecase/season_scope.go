package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/riskibarqy/golf-league/internal/domain/match"
	"github.com/riskibarqy/golf-league/internal/domain/player"
	"github.com/riskibarqy/golf-league/internal/domain/season"
	"github.com/riskibarqy/golf-league/internal/domain/team"
	"github.com/riskibarqy/golf-league/internal/platform/id"
	"github.com/sourcegraph/conc/pool"
)

// resolveSeason loads every season and picks the one a request targets.
// The active season is read afresh on each call.
func resolveSeason(ctx context.Context, repo season.Repository, requestedID string) (season.Season, error) {
	requestedID = strings.TrimSpace(requestedID)
	if requestedID != "" && !id.Valid(requestedID) {
		return season.Season{}, fmt.Errorf("%w: season_id is malformed", ErrInvalidInput)
	}

	seasons, err := repo.List(ctx)
	if err != nil {
		return season.Season{}, fmt.Errorf("list seasons: %w", err)
	}

	resolved, err := season.Resolve(seasons, requestedID)
	switch {
	case errors.Is(err, season.ErrNotFound):
		return season.Season{}, fmt.Errorf("%w: season=%s", ErrNotFound, requestedID)
	case errors.Is(err, season.ErrNotConfigured):
		return season.Season{}, ErrNoActiveSeason
	case err != nil:
		return season.Season{}, fmt.Errorf("resolve season: %w", err)
	}

	return resolved, nil
}

type seasonSnapshot struct {
	teams    []team.Team
	profiles []player.Profile
	matches  []match.Match
}

// loadSnapshot fetches the rows a season aggregate needs in parallel. The
// first failing read cancels the others and fails the whole load.
func loadSnapshot(
	ctx context.Context,
	teamRepo team.Repository,
	playerRepo player.Repository,
	matchRepo match.Repository,
	seasonID string,
	filter match.ListFilter,
) (seasonSnapshot, error) {
	var snapshot seasonSnapshot

	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		teams, err := teamRepo.ListBySeason(ctx, seasonID)
		if err != nil {
			return fmt.Errorf("list teams by season: %w", err)
		}
		snapshot.teams = teams
		return nil
	})
	p.Go(func(ctx context.Context) error {
		profiles, err := playerRepo.List(ctx)
		if err != nil {
			return fmt.Errorf("list players: %w", err)
		}
		snapshot.profiles = profiles
		return nil
	})
	p.Go(func(ctx context.Context) error {
		matches, err := matchRepo.ListBySeason(ctx, seasonID, filter)
		if err != nil {
			return fmt.Errorf("list matches by season: %w", err)
		}
		snapshot.matches = matches
		return nil
	})
	if err := p.Wait(); err != nil {
		return seasonSnapshot{}, err
	}

	return snapshot, nil
}

func normalizeLimit(limit, fallback, max int) int {
	if limit <= 0 {
		return fallback
	}
	if limit > max {
		return max
	}
	return limit
}
