package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/golf-league/internal/domain/headtohead"
	"github.com/riskibarqy/golf-league/internal/domain/match"
	"github.com/riskibarqy/golf-league/internal/domain/season"
)

func TestStatsService_SingleMatchSeason(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newFixture(t, scenarioSeasons(), []match.Match{pairMatch("m1", day(0), 3.0, 1.5)})

	board, err := f.statsService.PlayerLeaderboard(ctx, LeaderboardQuery{})
	if err != nil {
		t.Fatalf("player leaderboard: %v", err)
	}
	if board.Season.ID != "s1" {
		t.Fatalf("unexpected season: got=%s want=s1", board.Season.ID)
	}
	if !board.GeneratedAt.Equal(testNow) {
		t.Fatalf("unexpected generated at: %v", board.GeneratedAt)
	}
	if len(board.Rows) == 0 || board.Rows[0].PlayerID != "player-1" {
		t.Fatalf("player-1 should lead: %+v", board.Rows)
	}
	if board.Rows[0].PointsPerMatch != 3.0 || board.Rows[0].Wins != 1 {
		t.Fatalf("unexpected player-1 record: %+v", board.Rows[0].Record)
	}

	teams, err := f.statsService.TeamStandings(ctx, "")
	if err != nil {
		t.Fatalf("team standings: %v", err)
	}
	if teams.Rows[0].TeamID != "team-1" || teams.Rows[0].Wins != 1 {
		t.Fatalf("team-1 should lead with a win: %+v", teams.Rows)
	}

	list, err := f.matchService.List(ctx, MatchListQuery{})
	if err != nil {
		t.Fatalf("list matches: %v", err)
	}
	if len(list.Matches) != 1 {
		t.Fatalf("unexpected match count: %d", len(list.Matches))
	}
	result := list.Matches[0]
	if result.TotalPoints != 4.5 || result.WinningTeamID != "team-1" {
		t.Fatalf("unexpected match result: total=%v winner=%s", result.TotalPoints, result.WinningTeamID)
	}
	for _, participant := range result.Participants {
		if participant.IsWinner != (participant.UserID == "player-1") {
			t.Fatalf("unexpected isWinner for %s", participant.UserID)
		}
	}
}

func TestStatsService_PlayerLeaderboardFilters(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newFixture(t, scenarioSeasons(), []match.Match{pairMatch("m1", day(0), 3.0, 1.5)})

	board, err := f.statsService.PlayerLeaderboard(ctx, LeaderboardQuery{SeasonID: "s1", MinMatches: 1, TeamID: "team-2"})
	if err != nil {
		t.Fatalf("player leaderboard: %v", err)
	}
	if len(board.Rows) != 1 || board.Rows[0].PlayerID != "player-2" {
		t.Fatalf("unexpected filtered rows: %+v", board.Rows)
	}

	if _, err := f.statsService.PlayerLeaderboard(ctx, LeaderboardQuery{MinMatches: -1}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := f.statsService.PlayerLeaderboard(ctx, LeaderboardQuery{TeamID: "bad id"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestStatsService_HeadToHeadTwoSharedMatches(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newFixture(t, scenarioSeasons(), []match.Match{
		pairMatch("m1", day(0), 3, 1.5),
		pairMatch("m2", day(7), 2, 2.5),
	})

	report, err := f.statsService.HeadToHead(ctx, HeadToHeadQuery{PlayerID: "player-1", OpponentID: "player-2"})
	if err != nil {
		t.Fatalf("head to head: %v", err)
	}

	got := report.Result
	if got.MatchesPlayed != 2 || got.Wins != 1 || got.Losses != 1 || got.Ties != 0 {
		t.Fatalf("unexpected record: %+v", got)
	}
	if got.PointsFor != 5 || got.PointsAgainst != 4 || got.AverageMargin != 0.5 {
		t.Fatalf("unexpected points: for=%v against=%v margin=%v", got.PointsFor, got.PointsAgainst, got.AverageMargin)
	}
	if len(got.Matches) != 2 || got.Matches[0].MatchID != "m2" || got.Matches[0].Outcome != headtohead.OutcomeLoss {
		t.Fatalf("unexpected match list: %+v", got.Matches)
	}
	if report.Player.ID != "player-1" || report.Opponent.ID != "player-2" {
		t.Fatalf("unexpected profiles: %s vs %s", report.Player.ID, report.Opponent.ID)
	}
}

func TestStatsService_HeadToHeadErrors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newFixture(t, scenarioSeasons(), []match.Match{pairMatch("m1", day(0), 3, 1.5)})

	tests := []struct {
		name      string
		query     HeadToHeadQuery
		targetErr error
	}{
		{name: "self comparison", query: HeadToHeadQuery{PlayerID: "player-1", OpponentID: "player-1"}, targetErr: ErrInvalidInput},
		{name: "malformed id", query: HeadToHeadQuery{PlayerID: "player-1", OpponentID: "player 2"}, targetErr: ErrInvalidInput},
		{name: "unknown player", query: HeadToHeadQuery{PlayerID: "player-1", OpponentID: "player-99"}, targetErr: ErrNotFound},
		{name: "unknown season", query: HeadToHeadQuery{SeasonID: "s9", PlayerID: "player-1", OpponentID: "player-2"}, targetErr: ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := f.statsService.HeadToHead(ctx, tt.query); !errors.Is(err, tt.targetErr) {
				t.Fatalf("unexpected error: got=%v want=%v", err, tt.targetErr)
			}
		})
	}
}

func TestStatsService_HeadToHeadWithoutHistory(t *testing.T) {
	t.Parallel()

	f := newFixture(t, scenarioSeasons(), []match.Match{pairMatch("m1", day(0), 3, 1.5)})

	report, err := f.statsService.HeadToHead(context.Background(), HeadToHeadQuery{PlayerID: "player-1", OpponentID: "player-3"})
	if err != nil {
		t.Fatalf("head to head: %v", err)
	}
	if report.Result.MatchesPlayed != 0 || len(report.Result.Matches) != 0 {
		t.Fatalf("expected empty history, got %+v", report.Result)
	}
}

func TestStatsService_Participation(t *testing.T) {
	t.Parallel()

	matches := make([]match.Match, 0, 6)
	for i := 0; i < 3; i++ {
		matches = append(matches, pairMatch("shared-"+string(rune('a'+i)), day(i), 1, 1))
	}
	for i := 0; i < 3; i++ {
		m := pairMatch("solo-"+string(rune('a'+i)), day(10+i), 1, 1)
		m.Participants[0] = match.Participant{UserID: "commish", PointsAwarded: 2}
		matches = append(matches, m)
	}
	voided := pairMatch("voided", day(20), 5, 5)
	voided.Status = match.StatusVoided
	matches = append(matches, voided)

	f := newFixture(t, scenarioSeasons(), matches)

	report, err := f.statsService.Participation(context.Background(), "s1")
	if err != nil {
		t.Fatalf("participation: %v", err)
	}
	if report.SeasonMatchCount != 6 {
		t.Fatalf("unexpected season match count: got=%d want=6", report.SeasonMatchCount)
	}

	rates := make(map[string]float64, len(report.Rows))
	for _, row := range report.Rows {
		rates[row.PlayerID] = row.ParticipationRate
	}
	if rates["player-1"] != 0.5 {
		t.Fatalf("unexpected player-1 rate: got=%v want=0.5", rates["player-1"])
	}
	if rates["player-2"] != 1 {
		t.Fatalf("unexpected player-2 rate: got=%v want=1", rates["player-2"])
	}
	if report.Rows[0].PlayerID != "player-3" || report.Rows[0].MatchesPlayed != 0 {
		t.Fatalf("least engaged player should come first: %+v", report.Rows[0])
	}
}

func TestStatsService_SeasonResolution(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	empty := newFixture(t, nil, nil)
	if _, err := empty.statsService.TeamStandings(ctx, ""); !errors.Is(err, ErrNoActiveSeason) {
		t.Fatalf("expected ErrNoActiveSeason, got %v", err)
	}

	f := newFixture(t, scenarioSeasons(), nil)
	if _, err := f.statsService.TeamStandings(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := f.statsService.TeamStandings(ctx, "bad;id"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	inactive := []season.Season{
		{ID: "s-old", Name: "Old", Year: 2024, StartDate: day(-400)},
		{ID: "s-new", Name: "New", Year: 2025, StartDate: day(-30)},
	}
	fallback := newFixture(t, inactive, nil)
	standings, err := fallback.statsService.TeamStandings(ctx, "")
	if err != nil {
		t.Fatalf("team standings: %v", err)
	}
	if standings.Season.ID != "s-new" {
		t.Fatalf("expected latest started season, got %s", standings.Season.ID)
	}
}
