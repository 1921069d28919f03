package postgres

import (
	"context"
	"fmt"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/golf-league/internal/domain/announcement"
	"github.com/riskibarqy/golf-league/internal/domain/timeline"
	qb "github.com/riskibarqy/golf-league/internal/platform/querybuilder"
)

type TimelineRepository struct {
	db *sqlx.DB
}

func NewTimelineRepository(db *sqlx.DB) *TimelineRepository {
	return &TimelineRepository{db: db}
}

func (r *TimelineRepository) Append(ctx context.Context, entry timeline.Entry) error {
	if err := entry.Validate(); err != nil {
		return fmt.Errorf("append timeline entry: %w", err)
	}

	query, args, err := qb.InsertModel("timeline_entries", timelineTableModel{
		ID:        entry.ID,
		SeasonID:  entry.SeasonID,
		Kind:      string(entry.Kind),
		ActorID:   entry.ActorID,
		SubjectID: entry.SubjectID,
		Summary:   entry.Summary,
		CreatedAt: entry.CreatedAt,
	}, "ON CONFLICT (id) DO NOTHING")
	if err != nil {
		return fmt.Errorf("build insert timeline entry query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return crerr.Wrap(err, "insert timeline entry")
	}
	return nil
}

func (r *TimelineRepository) ListBySeason(ctx context.Context, seasonID string, limit int) ([]timeline.Entry, error) {
	query, args, err := qb.Select("id", "season_id", "kind", "actor_id", "subject_id", "summary", "created_at").
		From("timeline_entries").
		Where(qb.Eq("season_id", seasonID)).
		OrderBy("created_at DESC", "id DESC").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select timeline entries query: %w", err)
	}

	var rows []timelineTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrapf(err, "select timeline entries for %s", seasonID)
	}

	out := make([]timeline.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, timeline.Entry{
			ID:        row.ID,
			SeasonID:  row.SeasonID,
			Kind:      timeline.Kind(row.Kind),
			ActorID:   row.ActorID,
			SubjectID: row.SubjectID,
			Summary:   row.Summary,
			CreatedAt: row.CreatedAt.UTC(),
		})
	}
	return out, nil
}

type AnnouncementRepository struct {
	db *sqlx.DB
}

func NewAnnouncementRepository(db *sqlx.DB) *AnnouncementRepository {
	return &AnnouncementRepository{db: db}
}

func (r *AnnouncementRepository) List(ctx context.Context, seasonID string, limit int) ([]announcement.Announcement, error) {
	builder := qb.Select("id", "season_id", "author_id", "title", "body", "pinned", "published_at").
		From("announcements").
		OrderBy("pinned DESC", "published_at DESC", "id").
		Limit(limit)
	if seasonID != "" {
		builder.Where(qb.AnyOf(qb.Eq("season_id", seasonID), qb.IsNull("season_id")))
	}
	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select announcements query: %w", err)
	}

	var rows []announcementTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrap(err, "select announcements")
	}

	out := make([]announcement.Announcement, 0, len(rows))
	for _, row := range rows {
		out = append(out, announcement.Announcement{
			ID:          row.ID,
			SeasonID:    row.SeasonID.String,
			AuthorID:    row.AuthorID,
			Title:       row.Title,
			Body:        row.Body,
			Pinned:      row.Pinned,
			PublishedAt: row.PublishedAt.UTC(),
		})
	}
	return out, nil
}

func (r *AnnouncementRepository) Create(ctx context.Context, item announcement.Announcement) error {
	query, args, err := qb.InsertModel("announcements", announcementTableModel{
		ID:          item.ID,
		SeasonID:    nullString(item.SeasonID),
		AuthorID:    item.AuthorID,
		Title:       item.Title,
		Body:        item.Body,
		Pinned:      item.Pinned,
		PublishedAt: item.PublishedAt,
	}, "")
	if err != nil {
		return fmt.Errorf("build insert announcement query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return wrapWrite(err, "insert announcement")
	}
	return nil
}
