package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/riskibarqy/golf-league/internal/domain/season"
)

type SeasonRepository struct {
	mu     sync.RWMutex
	items  map[string]season.Season
	orders []string
}

func NewSeasonRepository(seasons []season.Season) *SeasonRepository {
	items := make(map[string]season.Season, len(seasons))
	orders := make([]string, 0, len(seasons))

	for _, s := range seasons {
		items[s.ID] = s
		orders = append(orders, s.ID)
	}

	return &SeasonRepository{
		items:  items,
		orders: orders,
	}
}

func (r *SeasonRepository) List(_ context.Context) ([]season.Season, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]season.Season, 0, len(r.orders))
	for _, id := range r.orders {
		out = append(out, r.items[id])
	}

	return out, nil
}

func (r *SeasonRepository) GetByID(_ context.Context, seasonID string) (season.Season, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.items[seasonID]
	if !ok {
		return season.Season{}, false, nil
	}

	return s, true, nil
}

func (r *SeasonRepository) Create(_ context.Context, item season.Season) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; exists {
		return fmt.Errorf("season %s already exists", item.ID)
	}
	item.IsActive = false
	r.items[item.ID] = item
	r.orders = append(r.orders, item.ID)

	return nil
}

func (r *SeasonRepository) Activate(_ context.Context, seasonID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[seasonID]; !exists {
		return fmt.Errorf("season %s not found", seasonID)
	}
	for id, item := range r.items {
		item.IsActive = id == seasonID
		r.items[id] = item
	}

	return nil
}
