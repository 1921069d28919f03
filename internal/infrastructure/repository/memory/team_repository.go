package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/riskibarqy/golf-league/internal/domain/team"
)

type TeamRepository struct {
	mu       sync.RWMutex
	items    map[string]team.Team
	bySeason map[string][]string
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	items := make(map[string]team.Team, len(teams))
	bySeason := make(map[string][]string)

	for _, t := range teams {
		items[t.ID] = t
		bySeason[t.SeasonID] = append(bySeason[t.SeasonID], t.ID)
	}

	return &TeamRepository{
		items:    items,
		bySeason: bySeason,
	}
}

func (r *TeamRepository) ListBySeason(_ context.Context, seasonID string) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.bySeason[seasonID]
	out := make([]team.Team, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.items[id])
	}

	return out, nil
}

func (r *TeamRepository) GetByID(_ context.Context, teamID string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.items[teamID]
	if !ok {
		return team.Team{}, false, nil
	}

	return t, true, nil
}

func (r *TeamRepository) Create(_ context.Context, item team.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; exists {
		return fmt.Errorf("%w: id %s", team.ErrDuplicate, item.ID)
	}
	for _, id := range r.bySeason[item.SeasonID] {
		if r.items[id].Slug == item.Slug {
			return fmt.Errorf("%w: slug %s in season %s", team.ErrDuplicate, item.Slug, item.SeasonID)
		}
	}

	r.items[item.ID] = item
	r.bySeason[item.SeasonID] = append(r.bySeason[item.SeasonID], item.ID)

	return nil
}
