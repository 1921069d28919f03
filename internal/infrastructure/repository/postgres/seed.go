package postgres

import (
	"context"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/golf-league/internal/infrastructure/repository/memory"
)

// BootstrapSeed loads the demo league into an empty database. It is a no-op
// once any season exists.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM seasons`); err != nil {
		return crerr.Wrap(err, "count seasons for bootstrap seed")
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return crerr.Wrap(err, "begin seed tx")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	now := time.Now().UTC()

	for _, s := range memory.SeedSeasons() {
		if err := seedExec(ctx, tx, `
INSERT INTO seasons (id, name, year, is_active, start_date, end_date, created_at, updated_at)
VALUES (:id, :name, :year, :is_active, :start_date, :end_date, :created_at, :updated_at)
ON CONFLICT (id) DO NOTHING`, seasonTableModel{
			ID:        s.ID,
			Name:      s.Name,
			Year:      s.Year,
			IsActive:  s.IsActive,
			StartDate: s.StartDate,
			EndDate:   nullDate(s.EndDate),
			CreatedAt: now,
			UpdatedAt: now,
		}); err != nil {
			return crerr.Wrapf(err, "seed season %s", s.ID)
		}
	}

	for _, t := range memory.SeedTeams() {
		if err := seedExec(ctx, tx, `
INSERT INTO teams (id, season_id, name, slug, color, created_at)
VALUES (:id, :season_id, :name, :slug, :color, :created_at)
ON CONFLICT (id) DO NOTHING`, teamTableModel{
			ID:        t.ID,
			SeasonID:  t.SeasonID,
			Name:      t.Name,
			Slug:      t.Slug,
			Color:     t.Color,
			CreatedAt: now,
		}); err != nil {
			return crerr.Wrapf(err, "seed team %s", t.ID)
		}
	}

	for _, p := range memory.SeedPlayers() {
		if err := seedExec(ctx, tx, `
INSERT INTO players (id, username, full_name, role, team_id, created_at, updated_at)
VALUES (:id, :username, :full_name, :role, :team_id, :created_at, :updated_at)
ON CONFLICT (id) DO NOTHING`, playerTableModel{
			ID:        p.ID,
			Username:  p.Username,
			FullName:  p.FullName,
			Role:      string(p.Role),
			TeamID:    nullString(p.TeamID),
			CreatedAt: now,
			UpdatedAt: now,
		}); err != nil {
			return crerr.Wrapf(err, "seed player %s", p.ID)
		}
	}

	for _, m := range memory.SeedMatches() {
		createdBy := m.CreatedBy
		if createdBy == "" {
			createdBy = memory.PlayerIDCommissioner
		}
		if err := seedExec(ctx, tx, `
INSERT INTO matches (id, season_id, played_on, format, status, course, notes, created_by, created_at, updated_at)
VALUES (:id, :season_id, :played_on, :format, :status, :course, :notes, :created_by, :created_at, :updated_at)
ON CONFLICT (id) DO NOTHING`, matchTableModel{
			ID:        m.ID,
			SeasonID:  m.SeasonID,
			PlayedOn:  m.PlayedOn,
			Format:    string(m.Format),
			Status:    string(m.Status),
			Course:    m.Course,
			Notes:     m.Notes,
			CreatedBy: createdBy,
			CreatedAt: now,
			UpdatedAt: now,
		}); err != nil {
			return crerr.Wrapf(err, "seed match %s", m.ID)
		}

		for _, participant := range m.Participants {
			if err := seedExec(ctx, tx, `
INSERT INTO match_participants (match_id, user_id, team_id, points_awarded, strokes, position)
VALUES (:match_id, :user_id, :team_id, :points_awarded, :strokes, :position)
ON CONFLICT (match_id, user_id) DO NOTHING`, participantTableModel{
				MatchID:       m.ID,
				UserID:        participant.UserID,
				TeamID:        nullString(participant.TeamID),
				PointsAwarded: participant.PointsAwarded,
				Strokes:       nullInt(participant.Strokes),
				Position:      nullInt(participant.Position),
			}); err != nil {
				return crerr.Wrapf(err, "seed participant %s of match %s", participant.UserID, m.ID)
			}
		}
	}

	for _, a := range memory.SeedAnnouncements() {
		if err := seedExec(ctx, tx, `
INSERT INTO announcements (id, season_id, author_id, title, body, pinned, published_at)
VALUES (:id, :season_id, :author_id, :title, :body, :pinned, :published_at)
ON CONFLICT (id) DO NOTHING`, announcementTableModel{
			ID:          a.ID,
			SeasonID:    nullString(a.SeasonID),
			AuthorID:    a.AuthorID,
			Title:       a.Title,
			Body:        a.Body,
			Pinned:      a.Pinned,
			PublishedAt: a.PublishedAt,
		}); err != nil {
			return crerr.Wrapf(err, "seed announcement %s", a.ID)
		}
	}

	if err := tx.Commit(); err != nil {
		return crerr.Wrap(err, "commit seed tx")
	}
	return nil
}

func seedExec(ctx context.Context, tx *sqlx.Tx, query string, arg any) error {
	bound, args, err := sqlx.Named(query, arg)
	if err != nil {
		return crerr.Wrap(err, "bind seed query")
	}
	if _, err := tx.ExecContext(ctx, tx.Rebind(bound), args...); err != nil {
		return err
	}
	return nil
}
