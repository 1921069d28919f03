package postgres

import (
	"context"
	"fmt"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/golf-league/internal/domain/player"
	qb "github.com/riskibarqy/golf-league/internal/platform/querybuilder"
)

var playerColumns = []string{"id", "username", "full_name", "role", "team_id", "handicap", "created_at", "updated_at"}

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Profile, error) {
	query, args, err := qb.Select(playerColumns...).From("players").
		OrderBy("LOWER(COALESCE(NULLIF(full_name, ''), username))", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players query: %w", err)
	}
	return r.selectProfiles(ctx, "select players", query, args)
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Profile, bool, error) {
	query, args, err := qb.Select(playerColumns...).From("players").
		Where(qb.Eq("id", playerID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return player.Profile{}, false, fmt.Errorf("build select player by id query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Profile{}, false, nil
		}
		return player.Profile{}, false, crerr.Wrapf(err, "select player %s", playerID)
	}

	profile, err := profileFromRow(row)
	if err != nil {
		return player.Profile{}, false, err
	}
	return profile, true, nil
}

func (r *PlayerRepository) ListByIDs(ctx context.Context, playerIDs []string) ([]player.Profile, error) {
	if len(playerIDs) == 0 {
		return []player.Profile{}, nil
	}

	query, args, err := qb.Select(playerColumns...).From("players").
		Where(qb.In("id", playerIDs)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players by ids query: %w", err)
	}
	return r.selectProfiles(ctx, "select players by ids", query, args)
}

func (r *PlayerRepository) AssignTeam(ctx context.Context, playerID, teamID string) error {
	query, args, err := qb.Update("players").
		Set("team_id", nullString(teamID)).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", playerID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build assign team query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return crerr.Wrapf(err, "assign player %s to team", playerID)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return crerr.Wrap(err, "rows affected assign team")
	}
	if affected == 0 {
		return crerr.Newf("assign team: player %s not found", playerID)
	}
	return nil
}

func (r *PlayerRepository) selectProfiles(ctx context.Context, op, query string, args []any) ([]player.Profile, error) {
	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrap(err, op)
	}

	out := make([]player.Profile, 0, len(rows))
	for _, row := range rows {
		profile, err := profileFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, profile)
	}
	return out, nil
}

// profileFromRow rejects rows whose role is outside the known set.
func profileFromRow(row playerTableModel) (player.Profile, error) {
	role, err := player.ParseRole(row.Role)
	if err != nil {
		return player.Profile{}, crerr.Wrapf(err, "player %s", row.ID)
	}

	return player.Profile{
		ID:        row.ID,
		Username:  row.Username,
		FullName:  row.FullName,
		Role:      role,
		TeamID:    row.TeamID.String,
		Handicap:  floatPtr(row.Handicap),
		CreatedAt: row.CreatedAt.UTC(),
		UpdatedAt: row.UpdatedAt.UTC(),
	}, nil
}
