package postgres

import (
	"database/sql"
	"errors"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/lib/pq"
)

const uniqueViolationCode = "23505"

var ErrConflict = crerr.New("row conflicts with an existing record")

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolationCode
}

// wrapWrite wraps err with op. Unique violations are marked with ErrConflict
// and any domain sentinels passed in, so callers can match them with crerr.Is.
func wrapWrite(err error, op string, conflicts ...error) error {
	wrapped := crerr.Wrap(err, op)
	if !isUniqueViolation(err) {
		return wrapped
	}
	wrapped = crerr.Mark(wrapped, ErrConflict)
	for _, sentinel := range conflicts {
		wrapped = crerr.Mark(wrapped, sentinel)
	}
	return wrapped
}

func nullString(value string) sql.NullString {
	return sql.NullString{String: value, Valid: value != ""}
}

func timePtr(value sql.NullTime) *time.Time {
	if !value.Valid {
		return nil
	}
	t := value.Time.UTC()
	return &t
}

func floatPtr(value sql.NullFloat64) *float64 {
	if !value.Valid {
		return nil
	}
	v := value.Float64
	return &v
}

func intPtr(value sql.NullInt32) *int {
	if !value.Valid {
		return nil
	}
	v := int(value.Int32)
	return &v
}

func nullInt(value *int) sql.NullInt32 {
	if value == nil {
		return sql.NullInt32{}
	}
	return sql.NullInt32{Int32: int32(*value), Valid: true}
}

// dateOnly truncates t to its UTC calendar date for DATE columns.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
