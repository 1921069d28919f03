package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/riskibarqy/golf-league/internal/domain/player"
)

type PlayerRepository struct {
	mu     sync.RWMutex
	items  map[string]player.Profile
	orders []string
}

func NewPlayerRepository(profiles []player.Profile) *PlayerRepository {
	items := make(map[string]player.Profile, len(profiles))
	orders := make([]string, 0, len(profiles))

	for _, p := range profiles {
		items[p.ID] = p
		orders = append(orders, p.ID)
	}

	return &PlayerRepository{
		items:  items,
		orders: orders,
	}
}

func (r *PlayerRepository) List(_ context.Context) ([]player.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Profile, 0, len(r.orders))
	for _, id := range r.orders {
		out = append(out, r.items[id])
	}

	return out, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID string) (player.Profile, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.items[playerID]
	if !ok {
		return player.Profile{}, false, nil
	}

	return p, true, nil
}

func (r *PlayerRepository) ListByIDs(_ context.Context, playerIDs []string) ([]player.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Profile, 0, len(playerIDs))
	seen := make(map[string]struct{}, len(playerIDs))
	for _, id := range playerIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if p, ok := r.items[id]; ok {
			out = append(out, p)
		}
	}

	return out, nil
}

func (r *PlayerRepository) AssignTeam(_ context.Context, playerID, teamID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.items[playerID]
	if !ok {
		return fmt.Errorf("player %s not found", playerID)
	}
	p.TeamID = teamID
	p.UpdatedAt = time.Now().UTC()
	r.items[playerID] = p

	return nil
}
