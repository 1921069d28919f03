package participation

import (
	"testing"

	"github.com/riskibarqy/golf-league/internal/domain/player"
)

func TestRate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		played int
		total  int
		want   float64
	}{
		{played: 3, total: 6, want: 0.5},
		{played: 1, total: 3, want: 0.333},
		{played: 2, total: 3, want: 0.667},
		{played: 0, total: 4, want: 0},
		{played: 5, total: 0, want: 0},
	}

	for _, tt := range tests {
		if got := Rate(tt.played, tt.total); got != tt.want {
			t.Fatalf("Rate(%d, %d)=%v want=%v", tt.played, tt.total, got, tt.want)
		}
	}
}

func TestBuild(t *testing.T) {
	t.Parallel()

	players := []player.Profile{
		{ID: "p1", FullName: "Zoe"},
		{ID: "p2", FullName: "amy"},
		{ID: "p3", FullName: "Bob"},
		{ID: "p4", Username: "carl"},
	}
	totals := []SeasonTotal{
		{PlayerID: "p1", MatchesPlayed: 3, TotalPoints: 7.5},
		{PlayerID: "p2", MatchesPlayed: 6, TotalPoints: 12},
		{PlayerID: "p3", MatchesPlayed: 3, TotalPoints: 4},
		{PlayerID: "ghost", MatchesPlayed: 1},
	}

	rows := Build(players, totals, 6)
	if len(rows) != 4 {
		t.Fatalf("unexpected row count: got=%d want=4", len(rows))
	}

	wantOrder := []string{"p4", "p3", "p1", "p2"}
	for i, id := range wantOrder {
		if rows[i].PlayerID != id {
			t.Fatalf("row %d: got=%s want=%s", i, rows[i].PlayerID, id)
		}
	}

	if rows[0].MatchesPlayed != 0 || rows[0].TotalPoints != 0 || rows[0].ParticipationRate != 0 {
		t.Fatalf("player without totals should default to zero: %+v", rows[0])
	}
	if rows[2].ParticipationRate != 0.5 {
		t.Fatalf("unexpected rate for p1: %v", rows[2].ParticipationRate)
	}
	if rows[3].ParticipationRate != 1 {
		t.Fatalf("unexpected rate for p2: %v", rows[3].ParticipationRate)
	}
}

func TestBuild_EmptySeason(t *testing.T) {
	t.Parallel()

	rows := Build([]player.Profile{{ID: "p1"}}, nil, 0)
	if len(rows) != 1 || rows[0].ParticipationRate != 0 {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}
