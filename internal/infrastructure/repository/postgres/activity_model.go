package postgres

import (
	"database/sql"
	"time"
)

type timelineTableModel struct {
	ID        string    `db:"id"`
	SeasonID  string    `db:"season_id"`
	Kind      string    `db:"kind"`
	ActorID   string    `db:"actor_id"`
	SubjectID string    `db:"subject_id"`
	Summary   string    `db:"summary"`
	CreatedAt time.Time `db:"created_at"`
}

type announcementTableModel struct {
	ID          string         `db:"id"`
	SeasonID    sql.NullString `db:"season_id"`
	AuthorID    string         `db:"author_id"`
	Title       string         `db:"title"`
	Body        string         `db:"body"`
	Pinned      bool           `db:"pinned"`
	PublishedAt time.Time      `db:"published_at"`
}
