package standings

import (
	"time"

	"github.com/riskibarqy/golf-league/internal/domain/match"
)

const RecentFormSize = 5

type Outcome string

const (
	OutcomeNone Outcome = ""
	OutcomeWin  Outcome = "win"
	OutcomeLoss Outcome = "loss"
	OutcomeTie  Outcome = "tie"
)

type TeamTotal struct {
	TeamID  string
	Name    string
	Points  float64
	Outcome Outcome
}

type ParticipantResult struct {
	UserID        string
	DisplayName   string
	TeamID        string
	PointsAwarded float64
	Strokes       *int
	Position      *int
	IsWinner      bool
	Outcome       Outcome
}

// MatchResult is a match with its team totals and winner determination.
type MatchResult struct {
	MatchID       string
	SeasonID      string
	PlayedOn      time.Time
	Format        match.Format
	Status        match.Status
	Course        string
	Notes         string
	TotalPoints   float64
	WinningTeamID string
	IsTie         bool
	Teams         []TeamTotal
	Participants  []ParticipantResult
}

// Record is the derived season line shared by players and teams.
type Record struct {
	MatchesPlayed  int
	PointsTotal    float64
	PointsPerMatch float64
	Wins           int
	Losses         int
	Ties           int
	// RecentForm holds up to RecentFormSize point values, most recent first.
	RecentForm []float64
}

type PlayerSeasonStats struct {
	PlayerID    string
	DisplayName string
	Username    string
	TeamID      string
	Record
}

// TeamSeasonStats merges a team's stored identity with its computed record.
type TeamSeasonStats struct {
	TeamID string
	Name   string
	Slug   string
	Color  string
	Record
}

type SeasonAggregate struct {
	Matches []MatchResult
	Players []PlayerSeasonStats
	Teams   []TeamSeasonStats
}

type LeaderboardFilter struct {
	MinMatches int
	TeamID     string
	Limit      int
}
