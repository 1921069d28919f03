package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/golf-league/internal/domain/player"
	"github.com/riskibarqy/golf-league/internal/domain/team"
	"github.com/riskibarqy/golf-league/internal/domain/timeline"
	"github.com/riskibarqy/golf-league/internal/platform/id"
)

const (
	defaultPlayerListLimit = 100
	maxPlayerListLimit     = 500
)

type PlayerService struct {
	playerRepo player.Repository
	teamRepo   team.Repository
	authorizer *Authorizer
	activity   *ActivityRecorder
}

func NewPlayerService(playerRepo player.Repository, teamRepo team.Repository, authorizer *Authorizer, activity *ActivityRecorder) *PlayerService {
	return &PlayerService{
		playerRepo: playerRepo,
		teamRepo:   teamRepo,
		authorizer: authorizer,
		activity:   activity,
	}
}

func (s *PlayerService) List(ctx context.Context, query string, limit int) ([]player.Profile, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.List")
	defer span.End()

	profiles, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	return player.Search(profiles, query, normalizeLimit(limit, defaultPlayerListLimit, maxPlayerListLimit)), nil
}

func (s *PlayerService) Get(ctx context.Context, playerID string) (player.Profile, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Get")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if !id.Valid(playerID) {
		return player.Profile{}, fmt.Errorf("%w: player id is malformed", ErrInvalidInput)
	}

	profile, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Profile{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return player.Profile{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	return profile, nil
}

// AssignTeam moves a player onto teamID, or unassigns them when teamID is empty.
func (s *PlayerService) AssignTeam(ctx context.Context, actorID, playerID, teamID string) (player.Profile, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.AssignTeam")
	defer span.End()

	if _, err := s.authorizer.RequireCommissioner(ctx, actorID); err != nil {
		return player.Profile{}, err
	}

	profile, err := s.Get(ctx, playerID)
	if err != nil {
		return player.Profile{}, err
	}

	teamID = strings.TrimSpace(teamID)
	var target team.Team
	if teamID != "" {
		if !id.Valid(teamID) {
			return player.Profile{}, fmt.Errorf("%w: team id is malformed", ErrInvalidInput)
		}
		item, exists, err := s.teamRepo.GetByID(ctx, teamID)
		if err != nil {
			return player.Profile{}, fmt.Errorf("get team: %w", err)
		}
		if !exists {
			return player.Profile{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
		}
		target = item
	}

	if err := s.playerRepo.AssignTeam(ctx, profile.ID, teamID); err != nil {
		return player.Profile{}, fmt.Errorf("assign team: %w", err)
	}
	previousTeamID := profile.TeamID
	profile.TeamID = teamID

	summary := fmt.Sprintf("%s is now unassigned", profile.DisplayName())
	if target.ID != "" {
		summary = fmt.Sprintf("%s joined %s", profile.DisplayName(), target.Name)
	}
	s.activity.Record(ctx, Activity{
		SeasonID:   target.SeasonID,
		Kind:       timeline.KindRosterAssigned,
		ActorID:    actorID,
		SubjectID:  profile.ID,
		Summary:    summary,
		Action:     "player.team_assigned",
		TargetType: "player",
		Metadata:   map[string]string{"from_team_id": previousTeamID, "to_team_id": teamID},
	})

	return profile, nil
}
