package participation

import "context"

// SeasonTotal is one row of the player_season_totals view.
type SeasonTotal struct {
	PlayerID      string
	MatchesPlayed int
	TotalPoints   float64
}

type Row struct {
	PlayerID          string
	DisplayName       string
	TeamID            string
	MatchesPlayed     int
	TotalPoints       float64
	ParticipationRate float64
}

// Repository reads per-player season totals over non-voided matches.
type Repository interface {
	ListSeasonTotals(ctx context.Context, seasonID string) ([]SeasonTotal, error)
}
