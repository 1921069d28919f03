package postgres

import (
	"context"
	"fmt"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/riskibarqy/golf-league/internal/domain/match"
	qb "github.com/riskibarqy/golf-league/internal/platform/querybuilder"
)

var (
	matchColumns       = []string{"id", "season_id", "played_on", "format", "status", "course", "notes", "created_by", "created_at", "updated_at"}
	participantColumns = []string{"match_id", "user_id", "team_id", "points_awarded", "strokes", "position"}
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

// matchRecencyOrder lists newest first; same-day matches keep insertion order.
var matchRecencyOrder = []string{"played_on DESC", "created_at", "id"}

func seasonMatchesQuery(seasonID string, filter match.ListFilter) (string, []any, error) {
	builder := qb.Select(matchColumns...).From("matches").
		Where(qb.Eq("season_id", seasonID)).
		OrderBy(matchRecencyOrder...).
		Limit(filter.Limit)
	if !filter.IncludeVoided {
		builder.Where(qb.Ne("status", string(match.StatusVoided)))
	}
	return builder.ToSQL()
}

func (r *MatchRepository) ListBySeason(ctx context.Context, seasonID string, filter match.ListFilter) ([]match.Match, error) {
	query, args, err := seasonMatchesQuery(seasonID, filter)
	if err != nil {
		return nil, fmt.Errorf("build select matches by season query: %w", err)
	}

	matches, err := r.selectHeaders(ctx, "select matches by season", query, args)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return matches, nil
	}

	ids := make([]string, 0, len(matches))
	for _, item := range matches {
		ids = append(ids, item.ID)
	}
	participants, err := r.ListParticipants(ctx, ids, nil)
	if err != nil {
		return nil, err
	}

	byMatch := make(map[string][]match.Participant, len(matches))
	for _, participant := range participants {
		byMatch[participant.MatchID] = append(byMatch[participant.MatchID], participant)
	}
	for i := range matches {
		matches[i].Participants = byMatch[matches[i].ID]
	}

	return matches, nil
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID string) (match.Match, bool, error) {
	query, args, err := qb.Select(matchColumns...).From("matches").
		Where(qb.Eq("id", matchID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build select match by id query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, crerr.Wrapf(err, "select match %s", matchID)
	}

	item, err := matchFromRow(row)
	if err != nil {
		return match.Match{}, false, err
	}

	participants, err := r.ListParticipants(ctx, []string{matchID}, nil)
	if err != nil {
		return match.Match{}, false, err
	}
	item.Participants = participants

	return item, true, nil
}

func (r *MatchRepository) ListByIDs(ctx context.Context, matchIDs []string) ([]match.Match, error) {
	if len(matchIDs) == 0 {
		return []match.Match{}, nil
	}

	query, args, err := qb.Select(matchColumns...).From("matches").
		Where(qb.Any("id", pq.StringArray(matchIDs))).
		OrderBy(matchRecencyOrder...).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches by ids query: %w", err)
	}

	return r.selectHeaders(ctx, "select matches by ids", query, args)
}

func (r *MatchRepository) ListParticipants(ctx context.Context, matchIDs, userIDs []string) ([]match.Participant, error) {
	if len(matchIDs) == 0 {
		return []match.Participant{}, nil
	}

	builder := qb.Select(participantColumns...).From("match_participants").
		Where(qb.Any("match_id", pq.StringArray(matchIDs))).
		OrderBy("match_id", "points_awarded DESC", "user_id")
	if len(userIDs) > 0 {
		builder.Where(qb.Any("user_id", pq.StringArray(userIDs)))
	}
	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select match participants query: %w", err)
	}

	var rows []participantTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrap(err, "select match participants")
	}

	out := make([]match.Participant, 0, len(rows))
	for _, row := range rows {
		out = append(out, match.Participant{
			MatchID:       row.MatchID,
			UserID:        row.UserID,
			TeamID:        row.TeamID.String,
			PointsAwarded: row.PointsAwarded,
			Strokes:       intPtr(row.Strokes),
			Position:      intPtr(row.Position),
		})
	}
	return out, nil
}

func (r *MatchRepository) CountBySeason(ctx context.Context, seasonID string) (int, error) {
	query, args, err := qb.Select("COUNT(1)").From("matches").
		Where(qb.Eq("season_id", seasonID), qb.Ne("status", string(match.StatusVoided))).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count matches query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, crerr.Wrapf(err, "count matches for season %s", seasonID)
	}
	return count, nil
}

// Create stores the match header and participant rows in one transaction.
func (r *MatchRepository) Create(ctx context.Context, item match.Match) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return crerr.Wrap(err, "begin tx create match")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	headerQuery, headerArgs, err := qb.InsertModel("matches", matchTableModel{
		ID:        item.ID,
		SeasonID:  item.SeasonID,
		PlayedOn:  dateOnly(item.PlayedOn),
		Format:    string(item.Format),
		Status:    string(item.Status),
		Course:    item.Course,
		Notes:     item.Notes,
		CreatedBy: item.CreatedBy,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}, "")
	if err != nil {
		return fmt.Errorf("build insert match query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, headerQuery, headerArgs...); err != nil {
		return wrapWrite(err, "insert match")
	}

	rows := make([]participantTableModel, 0, len(item.Participants))
	for _, participant := range item.Participants {
		rows = append(rows, participantTableModel{
			MatchID:       item.ID,
			UserID:        participant.UserID,
			TeamID:        nullString(participant.TeamID),
			PointsAwarded: participant.PointsAwarded,
			Strokes:       nullInt(participant.Strokes),
			Position:      nullInt(participant.Position),
		})
	}
	participantQuery, participantArgs, err := qb.InsertModels("match_participants", rows, "")
	if err != nil {
		return fmt.Errorf("build insert match participants query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, participantQuery, participantArgs...); err != nil {
		return wrapWrite(err, "insert match participants")
	}

	if err := tx.Commit(); err != nil {
		return crerr.Wrap(err, "commit create match tx")
	}
	return nil
}

func (r *MatchRepository) UpdateStatus(ctx context.Context, matchID string, status match.Status, updatedAt time.Time) error {
	query, args, err := qb.Update("matches").
		Set("status", string(status)).
		Set("updated_at", updatedAt).
		Where(qb.Eq("id", matchID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update match status query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return crerr.Wrapf(err, "update match %s status", matchID)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return crerr.Wrap(err, "rows affected update match status")
	}
	if affected == 0 {
		return crerr.Newf("update match status: match %s not found", matchID)
	}
	return nil
}

func (r *MatchRepository) selectHeaders(ctx context.Context, op, query string, args []any) ([]match.Match, error) {
	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrap(err, op)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		item, err := matchFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

// matchFromRow parses stored enums strictly; an unknown value is a data
// error, not something to coerce.
func matchFromRow(row matchTableModel) (match.Match, error) {
	format, err := match.ParseFormat(row.Format)
	if err != nil {
		return match.Match{}, crerr.Wrapf(err, "match %s", row.ID)
	}
	status, err := match.ParseStatus(row.Status)
	if err != nil {
		return match.Match{}, crerr.Wrapf(err, "match %s", row.ID)
	}

	return match.Match{
		ID:        row.ID,
		SeasonID:  row.SeasonID,
		PlayedOn:  dateOnly(row.PlayedOn),
		Format:    format,
		Status:    status,
		Course:    row.Course,
		Notes:     row.Notes,
		CreatedBy: row.CreatedBy,
		CreatedAt: row.CreatedAt.UTC(),
		UpdatedAt: row.UpdatedAt.UTC(),
	}, nil
}
