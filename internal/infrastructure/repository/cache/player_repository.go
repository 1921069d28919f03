package cache

import (
	"context"
	"slices"
	"strings"

	"github.com/riskibarqy/golf-league/internal/domain/player"
	basecache "github.com/riskibarqy/golf-league/internal/platform/cache"
)

const playerPrefix = "player:"

type PlayerRepository struct {
	next  player.Repository
	cache *basecache.Store
}

func NewPlayerRepository(next player.Repository, cache *basecache.Store) *PlayerRepository {
	return &PlayerRepository{next: next, cache: cache}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Profile, error) {
	items, err := basecache.Load(ctx, r.cache, playerPrefix+"list", func(ctx context.Context) ([]player.Profile, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]player.Profile(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	return append([]player.Profile(nil), items...), nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Profile, bool, error) {
	cached, err := basecache.Load(ctx, r.cache, playerPrefix+"id:"+playerID, func(ctx context.Context) (lookup[player.Profile], error) {
		item, exists, err := r.next.GetByID(ctx, playerID)
		if err != nil {
			return lookup[player.Profile]{}, err
		}
		return lookup[player.Profile]{value: item, exists: exists}, nil
	})
	if err != nil {
		return player.Profile{}, false, err
	}

	return cached.value, cached.exists, nil
}

func (r *PlayerRepository) ListByIDs(ctx context.Context, playerIDs []string) ([]player.Profile, error) {
	if len(playerIDs) == 0 {
		return []player.Profile{}, nil
	}

	ids := slices.Clone(playerIDs)
	slices.Sort(ids)
	ids = slices.Compact(ids)
	key := playerPrefix + "ids:" + strings.Join(ids, ",")

	items, err := basecache.Load(ctx, r.cache, key, func(ctx context.Context) ([]player.Profile, error) {
		items, err := r.next.ListByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		return append([]player.Profile(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	return append([]player.Profile(nil), items...), nil
}

func (r *PlayerRepository) AssignTeam(ctx context.Context, playerID, teamID string) error {
	if err := r.next.AssignTeam(ctx, playerID, teamID); err != nil {
		return err
	}

	r.cache.DeletePrefix(ctx, playerPrefix)
	return nil
}
