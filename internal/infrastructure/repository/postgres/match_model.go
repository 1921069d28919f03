package postgres

import (
	"database/sql"
	"time"

	"github.com/lib/pq"
)

type matchTableModel struct {
	ID        string    `db:"id"`
	SeasonID  string    `db:"season_id"`
	PlayedOn  time.Time `db:"played_on"`
	Format    string    `db:"format"`
	Status    string    `db:"status"`
	Course    string    `db:"course"`
	Notes     string    `db:"notes"`
	CreatedBy string    `db:"created_by"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type participantTableModel struct {
	MatchID       string         `db:"match_id"`
	UserID        string         `db:"user_id"`
	TeamID        sql.NullString `db:"team_id"`
	PointsAwarded float64        `db:"points_awarded"`
	Strokes       sql.NullInt32  `db:"strokes"`
	Position      sql.NullInt32  `db:"position"`
}

type seasonTotalViewModel struct {
	PlayerID      string  `db:"player_id"`
	MatchesPlayed int     `db:"matches_played"`
	TotalPoints   float64 `db:"total_points"`
}

type headToHeadViewModel struct {
	SeasonID       string         `db:"season_id"`
	PlayerID       string         `db:"player_id"`
	OpponentID     string         `db:"opponent_id"`
	MatchesPlayed  int            `db:"matches_played"`
	Wins           int            `db:"wins"`
	Losses         int            `db:"losses"`
	Ties           int            `db:"ties"`
	PlayerPoints   float64        `db:"player_points"`
	OpponentPoints float64        `db:"opponent_points"`
	AverageMargin  float64        `db:"average_margin"`
	LastPlayedOn   sql.NullTime   `db:"last_played_on"`
	MatchIDs       pq.StringArray `db:"match_ids"`
}
