package postgres

import (
	"database/sql"
	"time"
)

type seasonTableModel struct {
	ID        string       `db:"id"`
	Name      string       `db:"name"`
	Year      int          `db:"year"`
	IsActive  bool         `db:"is_active"`
	StartDate time.Time    `db:"start_date"`
	EndDate   sql.NullTime `db:"end_date"`
	CreatedAt time.Time    `db:"created_at"`
	UpdatedAt time.Time    `db:"updated_at"`
}

type teamTableModel struct {
	ID        string    `db:"id"`
	SeasonID  string    `db:"season_id"`
	Name      string    `db:"name"`
	Slug      string    `db:"slug"`
	Color     string    `db:"color"`
	CreatedAt time.Time `db:"created_at"`
}

type playerTableModel struct {
	ID        string          `db:"id"`
	Username  string          `db:"username"`
	FullName  string          `db:"full_name"`
	Role      string          `db:"role"`
	TeamID    sql.NullString  `db:"team_id"`
	Handicap  sql.NullFloat64 `db:"handicap"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
}
