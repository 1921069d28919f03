package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/golf-league/internal/domain/headtohead"
	"github.com/riskibarqy/golf-league/internal/domain/match"
	"github.com/riskibarqy/golf-league/internal/domain/participation"
	"github.com/riskibarqy/golf-league/internal/domain/player"
	"github.com/riskibarqy/golf-league/internal/domain/season"
	"github.com/riskibarqy/golf-league/internal/domain/standings"
	"github.com/riskibarqy/golf-league/internal/domain/team"
	"github.com/riskibarqy/golf-league/internal/platform/id"
	"github.com/sourcegraph/conc/pool"
)

const maxLeaderboardLimit = 500

type LeaderboardQuery struct {
	SeasonID   string
	MinMatches int
	TeamID     string
	Limit      int
}

type PlayerLeaderboard struct {
	Season      season.Season
	Rows        []standings.PlayerSeasonStats
	GeneratedAt time.Time
}

type TeamStandings struct {
	Season      season.Season
	Rows        []standings.TeamSeasonStats
	GeneratedAt time.Time
}

type HeadToHeadQuery struct {
	SeasonID   string
	PlayerID   string
	OpponentID string
}

type HeadToHeadReport struct {
	Season      season.Season
	Player      player.Profile
	Opponent    player.Profile
	Result      headtohead.Result
	GeneratedAt time.Time
}

type ParticipationReport struct {
	Season           season.Season
	SeasonMatchCount int
	Rows             []participation.Row
	GeneratedAt      time.Time
}

// StatsService serves the derived season analytics. Nothing here is cached;
// every call reduces a fresh snapshot of the non-voided match set.
type StatsService struct {
	seasonRepo        season.Repository
	teamRepo          team.Repository
	playerRepo        player.Repository
	matchRepo         match.Repository
	headToHeadRepo    headtohead.Repository
	participationRepo participation.Repository
	now               func() time.Time
}

func NewStatsService(
	seasonRepo season.Repository,
	teamRepo team.Repository,
	playerRepo player.Repository,
	matchRepo match.Repository,
	headToHeadRepo headtohead.Repository,
	participationRepo participation.Repository,
) *StatsService {
	return &StatsService{
		seasonRepo:        seasonRepo,
		teamRepo:          teamRepo,
		playerRepo:        playerRepo,
		matchRepo:         matchRepo,
		headToHeadRepo:    headToHeadRepo,
		participationRepo: participationRepo,
		now:               time.Now,
	}
}

func (s *StatsService) PlayerLeaderboard(ctx context.Context, query LeaderboardQuery) (PlayerLeaderboard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.PlayerLeaderboard")
	defer span.End()

	if query.MinMatches < 0 {
		return PlayerLeaderboard{}, fmt.Errorf("%w: min_matches must be >= 0", ErrInvalidInput)
	}
	if query.Limit < 0 {
		return PlayerLeaderboard{}, fmt.Errorf("%w: limit must be >= 0", ErrInvalidInput)
	}
	query.TeamID = strings.TrimSpace(query.TeamID)
	if query.TeamID != "" && !id.Valid(query.TeamID) {
		return PlayerLeaderboard{}, fmt.Errorf("%w: team_id is malformed", ErrInvalidInput)
	}

	resolved, agg, err := s.aggregate(ctx, query.SeasonID)
	if err != nil {
		return PlayerLeaderboard{}, err
	}

	rows := standings.FilterPlayers(agg.Players, standings.LeaderboardFilter{
		MinMatches: query.MinMatches,
		TeamID:     query.TeamID,
		Limit:      normalizeLimit(query.Limit, maxLeaderboardLimit, maxLeaderboardLimit),
	})

	return PlayerLeaderboard{Season: resolved, Rows: rows, GeneratedAt: s.now().UTC()}, nil
}

func (s *StatsService) TeamStandings(ctx context.Context, seasonID string) (TeamStandings, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.TeamStandings")
	defer span.End()

	resolved, agg, err := s.aggregate(ctx, seasonID)
	if err != nil {
		return TeamStandings{}, err
	}

	return TeamStandings{Season: resolved, Rows: agg.Teams, GeneratedAt: s.now().UTC()}, nil
}

func (s *StatsService) aggregate(ctx context.Context, seasonID string) (season.Season, standings.SeasonAggregate, error) {
	resolved, err := resolveSeason(ctx, s.seasonRepo, seasonID)
	if err != nil {
		return season.Season{}, standings.SeasonAggregate{}, err
	}

	snapshot, err := loadSnapshot(ctx, s.teamRepo, s.playerRepo, s.matchRepo, resolved.ID, match.ListFilter{})
	if err != nil {
		return season.Season{}, standings.SeasonAggregate{}, err
	}

	agg := standings.Aggregate(snapshot.matches, standings.NewIndex(snapshot.teams, snapshot.profiles))
	return resolved, agg, nil
}

func (s *StatsService) HeadToHead(ctx context.Context, query HeadToHeadQuery) (HeadToHeadReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.HeadToHead")
	defer span.End()

	playerID := strings.TrimSpace(query.PlayerID)
	opponentID := strings.TrimSpace(query.OpponentID)
	if err := headtohead.ValidatePair(playerID, opponentID); err != nil {
		return HeadToHeadReport{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	resolved, err := resolveSeason(ctx, s.seasonRepo, query.SeasonID)
	if err != nil {
		return HeadToHeadReport{}, err
	}

	var (
		playerProfile, opponentProfile player.Profile
		summary                        headtohead.Summary
		hasSummary                     bool
	)
	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		profile, err := s.requireProfile(ctx, playerID)
		playerProfile = profile
		return err
	})
	p.Go(func(ctx context.Context) error {
		profile, err := s.requireProfile(ctx, opponentID)
		opponentProfile = profile
		return err
	})
	p.Go(func(ctx context.Context) error {
		row, exists, err := s.headToHeadRepo.GetSummary(ctx, resolved.ID, playerID, opponentID)
		if err != nil {
			return fmt.Errorf("get head-to-head summary: %w", err)
		}
		summary, hasSummary = row, exists
		return nil
	})
	if err := p.Wait(); err != nil {
		return HeadToHeadReport{}, err
	}

	var (
		summaryRef   *headtohead.Summary
		matches      []match.Match
		participants []match.Participant
	)
	if hasSummary {
		summaryRef = &summary
		if len(summary.MatchIDs) > 0 {
			detail := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
			detail.Go(func(ctx context.Context) error {
				rows, err := s.matchRepo.ListByIDs(ctx, summary.MatchIDs)
				if err != nil {
					return fmt.Errorf("list shared matches: %w", err)
				}
				matches = rows
				return nil
			})
			detail.Go(func(ctx context.Context) error {
				rows, err := s.matchRepo.ListParticipants(ctx, summary.MatchIDs, []string{playerID, opponentID})
				if err != nil {
					return fmt.Errorf("list shared match participants: %w", err)
				}
				participants = rows
				return nil
			})
			if err := detail.Wait(); err != nil {
				return HeadToHeadReport{}, err
			}
		}
	}

	result, err := headtohead.Build(playerID, opponentID, summaryRef, matches, participants)
	if err != nil {
		if errors.Is(err, headtohead.ErrSelfComparison) || errors.Is(err, headtohead.ErrInvalidID) {
			return HeadToHeadReport{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return HeadToHeadReport{}, fmt.Errorf("build head-to-head: %w", err)
	}

	return HeadToHeadReport{
		Season:      resolved,
		Player:      playerProfile,
		Opponent:    opponentProfile,
		Result:      result,
		GeneratedAt: s.now().UTC(),
	}, nil
}

func (s *StatsService) Participation(ctx context.Context, seasonID string) (ParticipationReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.Participation")
	defer span.End()

	resolved, err := resolveSeason(ctx, s.seasonRepo, seasonID)
	if err != nil {
		return ParticipationReport{}, err
	}

	var (
		profiles   []player.Profile
		totals     []participation.SeasonTotal
		matchCount int
	)
	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		rows, err := s.playerRepo.List(ctx)
		if err != nil {
			return fmt.Errorf("list players: %w", err)
		}
		profiles = rows
		return nil
	})
	p.Go(func(ctx context.Context) error {
		rows, err := s.participationRepo.ListSeasonTotals(ctx, resolved.ID)
		if err != nil {
			return fmt.Errorf("list season totals: %w", err)
		}
		totals = rows
		return nil
	})
	p.Go(func(ctx context.Context) error {
		count, err := s.matchRepo.CountBySeason(ctx, resolved.ID)
		if err != nil {
			return fmt.Errorf("count season matches: %w", err)
		}
		matchCount = count
		return nil
	})
	if err := p.Wait(); err != nil {
		return ParticipationReport{}, err
	}

	return ParticipationReport{
		Season:           resolved,
		SeasonMatchCount: matchCount,
		Rows:             participation.Build(profiles, totals, matchCount),
		GeneratedAt:      s.now().UTC(),
	}, nil
}

func (s *StatsService) requireProfile(ctx context.Context, playerID string) (player.Profile, error) {
	profile, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Profile{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return player.Profile{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}
	return profile, nil
}
