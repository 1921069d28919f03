package headtohead

import (
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/golf-league/internal/domain/match"
)

func day(n int) time.Time {
	return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func pairMatch(matchID string, playedOn time.Time, p1, p2 float64) match.Match {
	return match.Match{
		ID:       matchID,
		SeasonID: "s1",
		PlayedOn: playedOn,
		Format:   match.FormatMatchPlay,
		Status:   match.StatusSubmitted,
		Participants: []match.Participant{
			{MatchID: matchID, UserID: "player-1", TeamID: "team-1", PointsAwarded: p1},
			{MatchID: matchID, UserID: "player-2", TeamID: "team-2", PointsAwarded: p2},
		},
	}
}

func flatten(matches []match.Match) []match.Participant {
	out := make([]match.Participant, 0)
	for _, item := range matches {
		out = append(out, item.Participants...)
	}
	return out
}

func TestBuild_TwoSharedMatches(t *testing.T) {
	t.Parallel()

	matches := []match.Match{
		pairMatch("m1", day(0), 3, 1.5),
		pairMatch("m2", day(7), 2, 2.5),
	}

	summary, ok := Summarize("s1", "player-1", "player-2", matches)
	if !ok {
		t.Fatalf("expected summary for shared matches")
	}

	result, err := Build("player-1", "player-2", &summary, matches, flatten(matches))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.MatchesPlayed != 2 || result.Wins != 1 || result.Losses != 1 || result.Ties != 0 {
		t.Fatalf("unexpected record: %+v", result)
	}
	if result.PointsFor != 5 || result.PointsAgainst != 4 || result.AverageMargin != 0.5 {
		t.Fatalf("unexpected points: for=%v against=%v margin=%v", result.PointsFor, result.PointsAgainst, result.AverageMargin)
	}
	if len(result.Matches) != 2 || result.Matches[0].MatchID != "m2" || result.Matches[1].MatchID != "m1" {
		t.Fatalf("matches should be most recent first: %+v", result.Matches)
	}
	if result.Matches[0].Outcome != OutcomeLoss || result.Matches[1].Outcome != OutcomeWin {
		t.Fatalf("unexpected outcomes: %s, %s", result.Matches[0].Outcome, result.Matches[1].Outcome)
	}
	if result.LastPlayedOn == nil || !result.LastPlayedOn.Equal(day(7)) {
		t.Fatalf("unexpected last played on: %v", result.LastPlayedOn)
	}
}

func TestBuild_SelfComparison(t *testing.T) {
	t.Parallel()

	summary := Summary{MatchesPlayed: 1, MatchIDs: []string{"m1"}}
	for _, in := range []*Summary{nil, &summary} {
		if _, err := Build("player-1", "player-1", in, nil, nil); !errors.Is(err, ErrSelfComparison) {
			t.Fatalf("expected ErrSelfComparison, got %v", err)
		}
	}
}

func TestBuild_MalformedID(t *testing.T) {
	t.Parallel()

	if _, err := Build("player 1", "player-2", nil, nil, nil); !errors.Is(err, ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
	if _, err := Build("player-1", "", nil, nil, nil); !errors.Is(err, ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
}

func TestBuild_NoSummary(t *testing.T) {
	t.Parallel()

	result, err := Build("player-1", "player-2", nil, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.MatchesPlayed != 0 || result.PointsFor != 0 || result.LastPlayedOn != nil {
		t.Fatalf("expected empty result, got %+v", result)
	}
	if result.Matches == nil || len(result.Matches) != 0 {
		t.Fatalf("expected empty non-nil match list, got %#v", result.Matches)
	}
}

func TestBuild_MissingParticipantRowDefaultsToZero(t *testing.T) {
	t.Parallel()

	matches := []match.Match{pairMatch("m1", day(0), 2, 0)}
	summary := Summary{MatchesPlayed: 1, Wins: 1, PlayerPoints: 2, MatchIDs: []string{"m1"}}
	participants := []match.Participant{{MatchID: "m1", UserID: "player-1", PointsAwarded: 2}}

	result, err := Build("player-1", "player-2", &summary, matches, participants)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Matches) != 1 {
		t.Fatalf("unexpected match count: %d", len(result.Matches))
	}
	got := result.Matches[0]
	if got.PlayerPoints != 2 || got.OpponentPoints != 0 || got.Outcome != OutcomeWin {
		t.Fatalf("unexpected shared match: %+v", got)
	}
}

func TestBuild_TieLabel(t *testing.T) {
	t.Parallel()

	matches := []match.Match{pairMatch("m1", day(0), 2.5, 2.5)}
	summary, _ := Summarize("s1", "player-1", "player-2", matches)
	result, err := Build("player-1", "player-2", &summary, matches, flatten(matches))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Ties != 1 || result.Matches[0].Outcome != OutcomeTie {
		t.Fatalf("expected tie, got %+v", result)
	}
}

func TestSummarize_IsAsymmetric(t *testing.T) {
	t.Parallel()

	matches := []match.Match{
		pairMatch("m1", day(0), 3, 1.5),
		pairMatch("m2", day(7), 2, 2.5),
	}
	forward, _ := Summarize("s1", "player-1", "player-2", matches)
	reverse, _ := Summarize("s1", "player-2", "player-1", matches)

	if forward.PlayerPoints != reverse.OpponentPoints || forward.OpponentPoints != reverse.PlayerPoints {
		t.Fatalf("points should swap: forward=%+v reverse=%+v", forward, reverse)
	}
	if forward.AverageMargin != -reverse.AverageMargin {
		t.Fatalf("margin should invert: forward=%v reverse=%v", forward.AverageMargin, reverse.AverageMargin)
	}
	if forward.Wins != reverse.Losses {
		t.Fatalf("wins should mirror losses: forward=%d reverse=%d", forward.Wins, reverse.Losses)
	}
}

func TestSummarize_SkipsVoidedAndUnshared(t *testing.T) {
	t.Parallel()

	voided := pairMatch("m2", day(1), 9, 0)
	voided.Status = match.StatusVoided
	solo := match.Match{
		ID: "m3", SeasonID: "s1", PlayedOn: day(2), Status: match.StatusSubmitted,
		Participants: []match.Participant{{UserID: "player-1"}, {UserID: "player-9"}},
	}

	if _, ok := Summarize("s1", "player-1", "player-2", []match.Match{voided, solo}); ok {
		t.Fatalf("expected no summary without shared non-voided matches")
	}
}
