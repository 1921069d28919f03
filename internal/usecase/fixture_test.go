package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/riskibarqy/golf-league/internal/domain/audit"
	"github.com/riskibarqy/golf-league/internal/domain/match"
	"github.com/riskibarqy/golf-league/internal/domain/player"
	"github.com/riskibarqy/golf-league/internal/domain/season"
	"github.com/riskibarqy/golf-league/internal/domain/team"
	"github.com/riskibarqy/golf-league/internal/domain/timeline"
	"github.com/riskibarqy/golf-league/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/golf-league/internal/platform/logging"
)

var testNow = time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)

type sequenceGenerator struct {
	mu     sync.Mutex
	prefix string
	next   int
}

func (g *sequenceGenerator) NewID() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++
	return fmt.Sprintf("%s-%d", g.prefix, g.next), nil
}

type recordingSink struct {
	mu      sync.Mutex
	entries []audit.Entry
	err     error
}

func (s *recordingSink) Record(_ context.Context, entry audit.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.entries = append(s.entries, entry)
	return nil
}

func (s *recordingSink) actions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.entries))
	for _, entry := range s.entries {
		out = append(out, entry.Action)
	}
	return out
}

type failingTimeline struct{}

func (failingTimeline) Append(context.Context, timeline.Entry) error {
	return errors.New("timeline store unavailable")
}

func (failingTimeline) ListBySeason(context.Context, string, int) ([]timeline.Entry, error) {
	return nil, errors.New("timeline store unavailable")
}

func day(n int) time.Time {
	return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func scenarioSeasons() []season.Season {
	return []season.Season{
		{ID: "s1", Name: "2025", Year: 2025, IsActive: true, StartDate: day(-60)},
		{ID: "s0", Name: "2024", Year: 2024, StartDate: day(-420)},
	}
}

func scenarioTeams() []team.Team {
	return []team.Team{
		{ID: "team-1", SeasonID: "s1", Name: "Birdies", Slug: "birdies"},
		{ID: "team-2", SeasonID: "s1", Name: "Eagles", Slug: "eagles"},
		{ID: "team-old", SeasonID: "s0", Name: "Old Timers", Slug: "old-timers"},
	}
}

func scenarioPlayers() []player.Profile {
	return []player.Profile{
		{ID: "commish", Username: "commish", FullName: "Casey Commissioner", Role: player.RoleCommissioner},
		{ID: "player-1", Username: "p1", FullName: "Ann Fairway", Role: player.RolePlayer, TeamID: "team-1"},
		{ID: "player-2", Username: "p2", FullName: "Ben Bunker", Role: player.RolePlayer, TeamID: "team-2"},
		{ID: "player-3", Username: "p3", FullName: "Cho Chip", Role: player.RolePlayer, TeamID: "team-old"},
	}
}

func pairMatch(matchID string, playedOn time.Time, p1, p2 float64) match.Match {
	return match.Match{
		ID:       matchID,
		SeasonID: "s1",
		PlayedOn: playedOn,
		Format:   match.FormatStrokePlay,
		Status:   match.StatusSubmitted,
		Participants: []match.Participant{
			{MatchID: matchID, UserID: "player-1", TeamID: "team-1", PointsAwarded: p1},
			{MatchID: matchID, UserID: "player-2", TeamID: "team-2", PointsAwarded: p2},
		},
	}
}

type fixture struct {
	seasons  *memory.SeasonRepository
	teams    *memory.TeamRepository
	players  *memory.PlayerRepository
	matches  *memory.MatchRepository
	timeline timeline.Repository
	sink     *recordingSink
	effects  *SideEffects

	seasonService *SeasonService
	teamService   *TeamService
	playerService *PlayerService
	matchService  *MatchService
	statsService  *StatsService
	timelineSvc   *TimelineService
	announcements *AnnouncementService
}

type fixtureOption func(*fixture)

func withTimeline(repo timeline.Repository) fixtureOption {
	return func(f *fixture) { f.timeline = repo }
}

func withSinkError(err error) fixtureOption {
	return func(f *fixture) { f.sink.err = err }
}

func newFixture(t *testing.T, seasons []season.Season, matches []match.Match, opts ...fixtureOption) *fixture {
	t.Helper()

	f := &fixture{
		seasons:  memory.NewSeasonRepository(seasons),
		teams:    memory.NewTeamRepository(scenarioTeams()),
		players:  memory.NewPlayerRepository(scenarioPlayers()),
		matches:  memory.NewMatchRepository(matches),
		timeline: memory.NewTimelineRepository(nil),
		sink:     &recordingSink{},
	}
	for _, opt := range opts {
		opt(f)
	}

	effects, err := NewSideEffects(4, logging.NewNop())
	if err != nil {
		t.Fatalf("create side effects: %v", err)
	}
	t.Cleanup(effects.Close)
	f.effects = effects

	idGen := &sequenceGenerator{prefix: "gen"}
	activity := NewActivityRecorder(f.timeline, f.sink, effects, idGen)
	activity.now = func() time.Time { return testNow }
	authorizer := NewAuthorizer(f.players)

	f.seasonService = NewSeasonService(f.seasons, authorizer, activity, idGen)
	f.seasonService.now = func() time.Time { return testNow }
	f.teamService = NewTeamService(f.seasons, f.teams, f.players, f.matches, authorizer, activity, idGen)
	f.teamService.now = func() time.Time { return testNow }
	f.playerService = NewPlayerService(f.players, f.teams, authorizer, activity)
	f.matchService = NewMatchService(f.seasons, f.teams, f.players, f.matches, authorizer, activity, idGen)
	f.matchService.now = func() time.Time { return testNow }
	f.statsService = NewStatsService(f.seasons, f.teams, f.players, f.matches, f.matches, f.matches)
	f.statsService.now = func() time.Time { return testNow }
	f.timelineSvc = NewTimelineService(f.seasons, f.timeline)
	f.announcements = NewAnnouncementService(f.seasons, memory.NewAnnouncementRepository(nil), authorizer, activity, idGen)
	f.announcements.now = func() time.Time { return testNow }

	return f
}
