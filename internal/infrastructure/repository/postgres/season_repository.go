package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/golf-league/internal/domain/season"
	qb "github.com/riskibarqy/golf-league/internal/platform/querybuilder"
)

var seasonColumns = []string{"id", "name", "year", "is_active", "start_date", "end_date", "created_at", "updated_at"}

type SeasonRepository struct {
	db *sqlx.DB
}

func NewSeasonRepository(db *sqlx.DB) *SeasonRepository {
	return &SeasonRepository{db: db}
}

func (r *SeasonRepository) List(ctx context.Context) ([]season.Season, error) {
	query, args, err := qb.Select(seasonColumns...).From("seasons").
		OrderBy("start_date DESC", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select seasons query: %w", err)
	}

	var rows []seasonTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrap(err, "select seasons")
	}

	out := make([]season.Season, 0, len(rows))
	for _, row := range rows {
		out = append(out, seasonFromRow(row))
	}
	return out, nil
}

func (r *SeasonRepository) GetByID(ctx context.Context, seasonID string) (season.Season, bool, error) {
	query, args, err := qb.Select(seasonColumns...).From("seasons").
		Where(qb.Eq("id", seasonID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return season.Season{}, false, fmt.Errorf("build select season by id query: %w", err)
	}

	var row seasonTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return season.Season{}, false, nil
		}
		return season.Season{}, false, crerr.Wrapf(err, "select season %s", seasonID)
	}

	return seasonFromRow(row), true, nil
}

func (r *SeasonRepository) Create(ctx context.Context, item season.Season) error {
	query, args, err := qb.InsertModel("seasons", seasonTableModel{
		ID:        item.ID,
		Name:      item.Name,
		Year:      item.Year,
		IsActive:  false,
		StartDate: dateOnly(item.StartDate),
		EndDate:   nullDate(item.EndDate),
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}, "")
	if err != nil {
		return fmt.Errorf("build insert season query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return wrapWrite(err, "insert season")
	}
	return nil
}

// Activate clears the previous active flag before setting the new one so the
// partial unique index on is_active never sees two active rows.
func (r *SeasonRepository) Activate(ctx context.Context, seasonID string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return crerr.Wrap(err, "begin tx activate season")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	clearQuery, clearArgs, err := qb.Update("seasons").
		Set("is_active", false).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("is_active", true), qb.Ne("id", seasonID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build clear active season query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, clearQuery, clearArgs...); err != nil {
		return crerr.Wrap(err, "clear active season")
	}

	setQuery, setArgs, err := qb.Update("seasons").
		Set("is_active", true).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", seasonID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build activate season query: %w", err)
	}
	result, err := tx.ExecContext(ctx, setQuery, setArgs...)
	if err != nil {
		return crerr.Wrap(err, "activate season")
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return crerr.Wrap(err, "rows affected activate season")
	}
	if affected == 0 {
		return crerr.Newf("activate season %s: not found", seasonID)
	}

	if err := tx.Commit(); err != nil {
		return crerr.Wrap(err, "commit activate season tx")
	}
	return nil
}

func seasonFromRow(row seasonTableModel) season.Season {
	return season.Season{
		ID:        row.ID,
		Name:      row.Name,
		Year:      row.Year,
		IsActive:  row.IsActive,
		StartDate: dateOnly(row.StartDate),
		EndDate:   timePtr(row.EndDate),
		CreatedAt: row.CreatedAt.UTC(),
		UpdatedAt: row.UpdatedAt.UTC(),
	}
}

func nullDate(value *time.Time) sql.NullTime {
	if value == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: dateOnly(*value), Valid: true}
}
