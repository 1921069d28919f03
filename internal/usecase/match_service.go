package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/golf-league/internal/domain/match"
	"github.com/riskibarqy/golf-league/internal/domain/player"
	"github.com/riskibarqy/golf-league/internal/domain/season"
	"github.com/riskibarqy/golf-league/internal/domain/standings"
	"github.com/riskibarqy/golf-league/internal/domain/team"
	"github.com/riskibarqy/golf-league/internal/domain/timeline"
	"github.com/riskibarqy/golf-league/internal/platform/id"
	"github.com/sourcegraph/conc/pool"
)

const (
	defaultMatchListLimit = 50
	maxMatchListLimit     = 500
)

type ParticipantInput struct {
	UserID        string
	TeamID        string
	PointsAwarded float64
	Strokes       *int
	Position      *int
}

type CreateMatchInput struct {
	SeasonID     string
	PlayedOn     time.Time
	Format       string
	Course       string
	Notes        string
	Participants []ParticipantInput
}

type MatchListQuery struct {
	SeasonID      string
	IncludeVoided bool
	Limit         int
}

type MatchList struct {
	Season  season.Season
	Matches []standings.MatchResult
}

type MatchService struct {
	seasonRepo season.Repository
	teamRepo   team.Repository
	playerRepo player.Repository
	matchRepo  match.Repository
	authorizer *Authorizer
	activity   *ActivityRecorder
	idGen      id.Generator
	now        func() time.Time
}

func NewMatchService(
	seasonRepo season.Repository,
	teamRepo team.Repository,
	playerRepo player.Repository,
	matchRepo match.Repository,
	authorizer *Authorizer,
	activity *ActivityRecorder,
	idGen id.Generator,
) *MatchService {
	return &MatchService{
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

func (s *MatchService) List(ctx context.Context, query MatchListQuery) (MatchList, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.List")
	defer span.End()

	resolved, err := resolveSeason(ctx, s.seasonRepo, query.SeasonID)
	if err != nil {
		return MatchList{}, err
	}

	snapshot, err := loadSnapshot(ctx, s.teamRepo, s.playerRepo, s.matchRepo, resolved.ID, match.ListFilter{
		IncludeVoided: query.IncludeVoided,
		Limit:         normalizeLimit(query.Limit, defaultMatchListLimit, maxMatchListLimit),
	})
	if err != nil {
		return MatchList{}, err
	}

	idx := standings.NewIndex(snapshot.teams, snapshot.profiles)
	results := make([]standings.MatchResult, 0, len(snapshot.matches))
	for _, item := range snapshot.matches {
		results = append(results, standings.ScoreMatch(item, idx))
	}

	return MatchList{Season: resolved, Matches: results}, nil
}

func (s *MatchService) Get(ctx context.Context, matchID string) (standings.MatchResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Get")
	defer span.End()

	item, err := s.getMatch(ctx, matchID)
	if err != nil {
		return standings.MatchResult{}, err
	}

	idx, err := s.indexFor(ctx, item)
	if err != nil {
		return standings.MatchResult{}, err
	}

	return standings.ScoreMatch(item, idx), nil
}

// Create records a match submitted by actorID. Participants without a team
// inherit their roster team when it belongs to the match's season.
func (s *MatchService) Create(ctx context.Context, actorID string, input CreateMatchInput) (standings.MatchResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Create")
	defer span.End()

	if _, err := s.authorizer.RequireMember(ctx, actorID); err != nil {
		return standings.MatchResult{}, err
	}

	format, err := match.ParseFormat(input.Format)
	if err != nil {
		return standings.MatchResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	now := s.now().UTC()
	item := match.Match{
		SeasonID:     strings.TrimSpace(input.SeasonID),
		PlayedOn:     input.PlayedOn,
		Format:       format,
		Status:       match.StatusSubmitted,
		Course:       strings.TrimSpace(input.Course),
		Notes:        strings.TrimSpace(input.Notes),
		CreatedBy:    actorID,
		Participants: make([]match.Participant, 0, len(input.Participants)),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for _, participant := range input.Participants {
		item.Participants = append(item.Participants, match.Participant{
			UserID:        strings.TrimSpace(participant.UserID),
			TeamID:        strings.TrimSpace(participant.TeamID),
			PointsAwarded: participant.PointsAwarded,
			Strokes:       participant.Strokes,
			Position:      participant.Position,
		})
	}

	if err := item.ValidateSubmission(now); err != nil {
		return standings.MatchResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	resolved, err := resolveSeason(ctx, s.seasonRepo, input.SeasonID)
	if err != nil {
		return standings.MatchResult{}, err
	}
	item.SeasonID = resolved.ID

	userIDs := make([]string, 0, len(item.Participants))
	for _, participant := range item.Participants {
		userIDs = append(userIDs, participant.UserID)
	}

	var (
		profiles []player.Profile
		teams    []team.Team
	)
	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		rows, err := s.playerRepo.ListByIDs(ctx, userIDs)
		if err != nil {
			return fmt.Errorf("list participant profiles: %w", err)
		}
		profiles = rows
		return nil
	})
	p.Go(func(ctx context.Context) error {
		rows, err := s.teamRepo.ListBySeason(ctx, resolved.ID)
		if err != nil {
			return fmt.Errorf("list teams by season: %w", err)
		}
		teams = rows
		return nil
	})
	if err := p.Wait(); err != nil {
		return standings.MatchResult{}, err
	}

	idx := standings.NewIndex(teams, profiles)
	for i, participant := range item.Participants {
		profile, ok := idx.Players[participant.UserID]
		if !ok {
			return standings.MatchResult{}, fmt.Errorf("%w: player=%s", ErrNotFound, participant.UserID)
		}
		if participant.TeamID == "" {
			if _, inSeason := idx.Teams[profile.TeamID]; inSeason {
				item.Participants[i].TeamID = profile.TeamID
			}
			continue
		}
		if _, inSeason := idx.Teams[participant.TeamID]; !inSeason {
			return standings.MatchResult{}, fmt.Errorf("%w: team=%s in season=%s", ErrNotFound, participant.TeamID, resolved.ID)
		}
	}

	matchID, err := s.idGen.NewID()
	if err != nil {
		return standings.MatchResult{}, fmt.Errorf("generate match id: %w", err)
	}
	item.ID = matchID
	for i := range item.Participants {
		item.Participants[i].MatchID = matchID
	}
	if err := item.Validate(now); err != nil {
		return standings.MatchResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.matchRepo.Create(ctx, item); err != nil {
		return standings.MatchResult{}, fmt.Errorf("create match: %w", err)
	}

	result := standings.ScoreMatch(item, idx)
	s.activity.Record(ctx, Activity{
		SeasonID:   resolved.ID,
		Kind:       timeline.KindMatchRecorded,
		ActorID:    actorID,
		SubjectID:  item.ID,
		Summary:    describeMatch(result, idx),
		Action:     "match.created",
		TargetType: "match",
		Metadata: map[string]string{
			"format":       string(item.Format),
			"played_on":    item.PlayedOn.Format(time.DateOnly),
			"participants": fmt.Sprint(len(item.Participants)),
		},
	})

	return result, nil
}

func (s *MatchService) Void(ctx context.Context, actorID, matchID, reason string) (standings.MatchResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Void")
	defer span.End()

	return s.transition(ctx, actorID, matchID, reason, match.Match.Void, timeline.KindMatchVoided, "match.voided")
}

func (s *MatchService) Restore(ctx context.Context, actorID, matchID string) (standings.MatchResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Restore")
	defer span.End()

	return s.transition(ctx, actorID, matchID, "", match.Match.Restore, timeline.KindMatchRestored, "match.restored")
}

func (s *MatchService) transition(
	ctx context.Context,
	actorID, matchID, reason string,
	next func(match.Match) (match.Status, error),
	kind timeline.Kind,
	action string,
) (standings.MatchResult, error) {
	if _, err := s.authorizer.RequireCommissioner(ctx, actorID); err != nil {
		return standings.MatchResult{}, err
	}

	item, err := s.getMatch(ctx, matchID)
	if err != nil {
		return standings.MatchResult{}, err
	}

	status, err := next(item)
	if err != nil {
		if errors.Is(err, match.ErrInvalidTransition) {
			return standings.MatchResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return standings.MatchResult{}, err
	}

	now := s.now().UTC()
	if err := s.matchRepo.UpdateStatus(ctx, item.ID, status, now); err != nil {
		return standings.MatchResult{}, fmt.Errorf("update match status: %w", err)
	}
	item.Status = status
	item.UpdatedAt = now

	idx, err := s.indexFor(ctx, item)
	if err != nil {
		return standings.MatchResult{}, err
	}
	result := standings.ScoreMatch(item, idx)

	metadata := map[string]string{"status": string(status)}
	if reason = strings.TrimSpace(reason); reason != "" {
		metadata["reason"] = reason
	}
	s.activity.Record(ctx, Activity{
		SeasonID:   item.SeasonID,
		Kind:       kind,
		ActorID:    actorID,
		SubjectID:  item.ID,
		Summary:    fmt.Sprintf("Match on %s was %s", item.PlayedOn.Format(time.DateOnly), statusVerb(status)),
		Action:     action,
		TargetType: "match",
		Metadata:   metadata,
	})

	return result, nil
}

func (s *MatchService) getMatch(ctx context.Context, matchID string) (match.Match, error) {
	matchID = strings.TrimSpace(matchID)
	if !id.Valid(matchID) {
		return match.Match{}, fmt.Errorf("%w: match id is malformed", ErrInvalidInput)
	}

	item, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	return item, nil
}

func (s *MatchService) indexFor(ctx context.Context, item match.Match) (standings.Index, error) {
	userIDs := make([]string, 0, len(item.Participants))
	for _, participant := range item.Participants {
		userIDs = append(userIDs, participant.UserID)
	}

	var (
		profiles []player.Profile
		teams    []team.Team
	)
	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		rows, err := s.playerRepo.ListByIDs(ctx, userIDs)
		if err != nil {
			return fmt.Errorf("list participant profiles: %w", err)
		}
		profiles = rows
		return nil
	})
	p.Go(func(ctx context.Context) error {
		rows, err := s.teamRepo.ListBySeason(ctx, item.SeasonID)
		if err != nil {
			return fmt.Errorf("list teams by season: %w", err)
		}
		teams = rows
		return nil
	})
	if err := p.Wait(); err != nil {
		return standings.Index{}, err
	}

	return standings.NewIndex(teams, profiles), nil
}

func describeMatch(result standings.MatchResult, idx standings.Index) string {
	date := result.PlayedOn.Format(time.DateOnly)
	format := strings.ReplaceAll(string(result.Format), "_", " ")
	switch {
	case result.WinningTeamID != "":
		return fmt.Sprintf("%s won a %s match on %s", idx.TeamName(result.WinningTeamID), format, date)
	case result.IsTie:
		return fmt.Sprintf("A %s match on %s ended in a tie", format, date)
	default:
		return fmt.Sprintf("A %s match was recorded on %s", format, date)
	}
}

func statusVerb(status match.Status) string {
	if status == match.StatusVoided {
		return "voided"
	}
	return "restored"
}
