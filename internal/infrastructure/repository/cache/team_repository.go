package cache

import (
	"context"

	"github.com/riskibarqy/golf-league/internal/domain/team"
	basecache "github.com/riskibarqy/golf-league/internal/platform/cache"
)

const teamPrefix = "team:"

type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store
}

func NewTeamRepository(next team.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) ListBySeason(ctx context.Context, seasonID string) ([]team.Team, error) {
	items, err := basecache.Load(ctx, r.cache, teamPrefix+"season:"+seasonID, func(ctx context.Context) ([]team.Team, error) {
		items, err := r.next.ListBySeason(ctx, seasonID)
		if err != nil {
			return nil, err
		}
		return append([]team.Team(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	return append([]team.Team(nil), items...), nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	cached, err := basecache.Load(ctx, r.cache, teamPrefix+"id:"+teamID, func(ctx context.Context) (lookup[team.Team], error) {
		item, exists, err := r.next.GetByID(ctx, teamID)
		if err != nil {
			return lookup[team.Team]{}, err
		}
		return lookup[team.Team]{value: item, exists: exists}, nil
	})
	if err != nil {
		return team.Team{}, false, err
	}

	return cached.value, cached.exists, nil
}

func (r *TeamRepository) Create(ctx context.Context, item team.Team) error {
	if err := r.next.Create(ctx, item); err != nil {
		return err
	}

	r.cache.DeletePrefix(ctx, teamPrefix)
	return nil
}

// lookup keeps negative results cacheable alongside hits.
type lookup[T any] struct {
	value  T
	exists bool
}
