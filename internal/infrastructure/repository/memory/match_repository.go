package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/riskibarqy/golf-league/internal/domain/headtohead"
	"github.com/riskibarqy/golf-league/internal/domain/match"
	"github.com/riskibarqy/golf-league/internal/domain/participation"
)

// MatchRepository also serves the two season views the SQL store exposes,
// player_season_totals and head_to_head_summary.
type MatchRepository struct {
	mu     sync.RWMutex
	items  map[string]match.Match
	orders []string
}

func NewMatchRepository(matches []match.Match) *MatchRepository {
	r := &MatchRepository{
		items:  make(map[string]match.Match, len(matches)),
		orders: make([]string, 0, len(matches)),
	}
	for _, m := range matches {
		r.items[m.ID] = cloneMatch(m)
		r.orders = append(r.orders, m.ID)
	}

	return r
}

func cloneMatch(m match.Match) match.Match {
	m.Participants = append([]match.Participant(nil), m.Participants...)
	return m
}

func (r *MatchRepository) seasonMatches(seasonID string, includeVoided bool) []match.Match {
	out := make([]match.Match, 0)
	for _, id := range r.orders {
		m := r.items[id]
		if m.SeasonID != seasonID {
			continue
		}
		if m.IsVoided() && !includeVoided {
			continue
		}
		out = append(out, cloneMatch(m))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PlayedOn.After(out[j].PlayedOn)
	})
	return out
}

func (r *MatchRepository) ListBySeason(_ context.Context, seasonID string, filter match.ListFilter) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := r.seasonMatches(seasonID, filter.IncludeVoided)
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}

	return out, nil
}

func (r *MatchRepository) GetByID(_ context.Context, matchID string) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.items[matchID]
	if !ok {
		return match.Match{}, false, nil
	}

	return cloneMatch(m), true, nil
}

func (r *MatchRepository) ListByIDs(_ context.Context, matchIDs []string) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0, len(matchIDs))
	for _, id := range matchIDs {
		m, ok := r.items[id]
		if !ok {
			continue
		}
		m.Participants = nil
		out = append(out, m)
	}

	return out, nil
}

func (r *MatchRepository) ListParticipants(_ context.Context, matchIDs, userIDs []string) ([]match.Participant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make(map[string]struct{}, len(userIDs))
	for _, id := range userIDs {
		users[id] = struct{}{}
	}

	out := make([]match.Participant, 0)
	for _, id := range matchIDs {
		m, ok := r.items[id]
		if !ok {
			continue
		}
		for _, p := range m.Participants {
			if len(users) > 0 {
				if _, wanted := users[p.UserID]; !wanted {
					continue
				}
			}
			out = append(out, p)
		}
	}

	return out, nil
}

func (r *MatchRepository) CountBySeason(_ context.Context, seasonID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.seasonMatches(seasonID, false)), nil
}

func (r *MatchRepository) Create(_ context.Context, item match.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; exists {
		return fmt.Errorf("match %s already exists", item.ID)
	}
	r.items[item.ID] = cloneMatch(item)
	r.orders = append(r.orders, item.ID)

	return nil
}

func (r *MatchRepository) UpdateStatus(_ context.Context, matchID string, status match.Status, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.items[matchID]
	if !ok {
		return fmt.Errorf("match %s not found", matchID)
	}
	m.Status = status
	m.UpdatedAt = updatedAt
	r.items[matchID] = m

	return nil
}

func (r *MatchRepository) GetSummary(_ context.Context, seasonID, playerID, opponentID string) (headtohead.Summary, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	summary, ok := headtohead.Summarize(seasonID, playerID, opponentID, r.seasonMatches(seasonID, false))
	return summary, ok, nil
}

func (r *MatchRepository) ListSeasonTotals(_ context.Context, seasonID string) ([]participation.SeasonTotal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	totals := make(map[string]*participation.SeasonTotal)
	order := make([]string, 0)
	for _, m := range r.seasonMatches(seasonID, false) {
		for _, p := range m.Participants {
			row, ok := totals[p.UserID]
			if !ok {
				row = &participation.SeasonTotal{PlayerID: p.UserID}
				totals[p.UserID] = row
				order = append(order, p.UserID)
			}
			row.MatchesPlayed++
			row.TotalPoints += p.PointsAwarded
		}
	}

	out := make([]participation.SeasonTotal, 0, len(order))
	for _, id := range order {
		out = append(out, *totals[id])
	}

	return out, nil
}
