package headtohead

import (
	"errors"
	"time"

	"github.com/riskibarqy/golf-league/internal/domain/match"
)

var (
	ErrSelfComparison = errors.New("cannot compare a player to themselves")
	ErrInvalidID      = errors.New("malformed player id")
)

type Outcome string

const (
	OutcomeWin  Outcome = "win"
	OutcomeLoss Outcome = "loss"
	OutcomeTie  Outcome = "tie"
)

// Summary is the backing aggregate for an ordered (player, opponent) pair.
// The (B, A) row carries swapped points and an inverted margin.
type Summary struct {
	SeasonID       string
	PlayerID       string
	OpponentID     string
	MatchesPlayed  int
	Wins           int
	Losses         int
	Ties           int
	PlayerPoints   float64
	OpponentPoints float64
	AverageMargin  float64
	LastPlayedOn   *time.Time
	MatchIDs       []string
}

type SharedMatch struct {
	MatchID        string
	PlayedOn       time.Time
	Format         match.Format
	Course         string
	PlayerPoints   float64
	OpponentPoints float64
	Outcome        Outcome
}

type Result struct {
	PlayerID      string
	OpponentID    string
	MatchesPlayed int
	Wins          int
	Losses        int
	Ties          int
	PointsFor     float64
	PointsAgainst float64
	AverageMargin float64
	LastPlayedOn  *time.Time
	Matches       []SharedMatch
}
