package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/golf-league/internal/domain/match"
	"github.com/riskibarqy/golf-league/internal/domain/player"
	"github.com/riskibarqy/golf-league/internal/domain/season"
	"github.com/riskibarqy/golf-league/internal/domain/standings"
	"github.com/riskibarqy/golf-league/internal/domain/team"
	"github.com/riskibarqy/golf-league/internal/domain/timeline"
	"github.com/riskibarqy/golf-league/internal/platform/id"
)

type CreateTeamInput struct {
	SeasonID string
	Name     string
	Color    string
}

// TeamView is a stored team merged with the record computed from its matches.
type TeamView struct {
	Team   team.Team
	Record standings.Record
}

type TeamService struct {
	seasonRepo season.Repository
	teamRepo   team.Repository
	playerRepo player.Repository
	matchRepo  match.Repository
	authorizer *Authorizer
	activity   *ActivityRecorder
	idGen      id.Generator
	now        func() time.Time
}

func NewTeamService(
	seasonRepo season.Repository,
	teamRepo team.Repository,
	playerRepo player.Repository,
	matchRepo match.Repository,
	authorizer *Authorizer,
	activity *ActivityRecorder,
	idGen id.Generator,
) *TeamService {
	return &TeamService{
		seasonRepo: seasonRepo,
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		matchRepo:  matchRepo,
		authorizer: authorizer,
		activity:   activity,
		idGen:      idGen,
		now:        time.Now,
	}
}

func (s *TeamService) ListBySeason(ctx context.Context, seasonID string) ([]TeamView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListBySeason")
	defer span.End()

	resolved, err := s.requireSeason(ctx, seasonID)
	if err != nil {
		return nil, err
	}

	snapshot, err := loadSnapshot(ctx, s.teamRepo, s.playerRepo, s.matchRepo, resolved.ID, match.ListFilter{})
	if err != nil {
		return nil, err
	}

	agg := standings.Aggregate(snapshot.matches, standings.NewIndex(snapshot.teams, snapshot.profiles))
	records := make(map[string]standings.Record, len(agg.Teams))
	for _, item := range agg.Teams {
		records[item.TeamID] = item.Record
	}

	out := make([]TeamView, 0, len(snapshot.teams))
	for _, item := range snapshot.teams {
		out = append(out, TeamView{Team: item, Record: records[item.ID]})
	}
	return out, nil
}

func (s *TeamService) Create(ctx context.Context, actorID string, input CreateTeamInput) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Create")
	defer span.End()

	if _, err := s.authorizer.RequireCommissioner(ctx, actorID); err != nil {
		return team.Team{}, err
	}

	resolved, err := s.requireSeason(ctx, input.SeasonID)
	if err != nil {
		return team.Team{}, err
	}

	name := strings.TrimSpace(input.Name)
	slug := team.Slugify(name)
	if slug == "" {
		return team.Team{}, fmt.Errorf("%w: team name must contain letters or digits", ErrInvalidInput)
	}

	existing, err := s.teamRepo.ListBySeason(ctx, resolved.ID)
	if err != nil {
		return team.Team{}, fmt.Errorf("list teams by season: %w", err)
	}
	for _, item := range existing {
		if item.Slug == slug {
			return team.Team{}, fmt.Errorf("%w: team %q already exists in season", ErrInvalidInput, item.Name)
		}
	}

	teamID, err := s.idGen.NewID()
	if err != nil {
		return team.Team{}, fmt.Errorf("generate team id: %w", err)
	}

	item := team.Team{
		ID:        teamID,
		SeasonID:  resolved.ID,
		Name:      name,
		Slug:      slug,
		Color:     strings.TrimSpace(input.Color),
		CreatedAt: s.now().UTC(),
	}
	if err := item.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.teamRepo.Create(ctx, item); err != nil {
		if crerr.Is(err, team.ErrDuplicate) {
			return team.Team{}, fmt.Errorf("%w: team %q already exists in season", ErrInvalidInput, item.Name)
		}
		return team.Team{}, fmt.Errorf("create team: %w", err)
	}

	s.activity.Record(ctx, Activity{
		SeasonID:   resolved.ID,
		Kind:       timeline.KindTeamCreated,
		ActorID:    actorID,
		SubjectID:  item.ID,
		Summary:    fmt.Sprintf("Team %s joined %s", item.Name, resolved.Name),
		Action:     "team.created",
		TargetType: "team",
		Metadata:   map[string]string{"slug": item.Slug},
	})

	return item, nil
}

func (s *TeamService) requireSeason(ctx context.Context, seasonID string) (season.Season, error) {
	seasonID = strings.TrimSpace(seasonID)
	if seasonID == "" {
		return season.Season{}, fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}
	return resolveSeason(ctx, s.seasonRepo, seasonID)
}
