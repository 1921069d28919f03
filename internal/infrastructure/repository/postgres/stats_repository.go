package postgres

import (
	"context"
	"fmt"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/golf-league/internal/domain/headtohead"
	"github.com/riskibarqy/golf-league/internal/domain/participation"
	qb "github.com/riskibarqy/golf-league/internal/platform/querybuilder"
)

// StatsRepository reads the aggregate views defined alongside the match tables.
type StatsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) GetSummary(ctx context.Context, seasonID, playerID, opponentID string) (headtohead.Summary, bool, error) {
	query, args, err := qb.Select(
		"season_id", "player_id", "opponent_id", "matches_played", "wins", "losses", "ties",
		"player_points", "opponent_points", "average_margin", "last_played_on", "match_ids",
	).From("head_to_head_summary").
		Where(
			qb.Eq("season_id", seasonID),
			qb.Eq("player_id", playerID),
			qb.Eq("opponent_id", opponentID),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return headtohead.Summary{}, false, fmt.Errorf("build select head-to-head summary query: %w", err)
	}

	var row headToHeadViewModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return headtohead.Summary{}, false, nil
		}
		return headtohead.Summary{}, false, crerr.Wrapf(err, "select head-to-head summary %s vs %s", playerID, opponentID)
	}

	return headtohead.Summary{
		SeasonID:       row.SeasonID,
		PlayerID:       row.PlayerID,
		OpponentID:     row.OpponentID,
		MatchesPlayed:  row.MatchesPlayed,
		Wins:           row.Wins,
		Losses:         row.Losses,
		Ties:           row.Ties,
		PlayerPoints:   row.PlayerPoints,
		OpponentPoints: row.OpponentPoints,
		AverageMargin:  row.AverageMargin,
		LastPlayedOn:   timePtr(row.LastPlayedOn),
		MatchIDs:       []string(row.MatchIDs),
	}, true, nil
}

func (r *StatsRepository) ListSeasonTotals(ctx context.Context, seasonID string) ([]participation.SeasonTotal, error) {
	query, args, err := qb.Select("player_id", "matches_played", "total_points").
		From("player_season_totals").
		Where(qb.Eq("season_id", seasonID)).
		OrderBy("player_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select season totals query: %w", err)
	}

	var rows []seasonTotalViewModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrapf(err, "select season totals for %s", seasonID)
	}

	out := make([]participation.SeasonTotal, 0, len(rows))
	for _, row := range rows {
		out = append(out, participation.SeasonTotal{
			PlayerID:      row.PlayerID,
			MatchesPlayed: row.MatchesPlayed,
			TotalPoints:   row.TotalPoints,
		})
	}
	return out, nil
}
