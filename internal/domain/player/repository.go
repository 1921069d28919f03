package player

import "context"

// Repository describes player profile persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Profile, error)
	GetByID(ctx context.Context, playerID string) (Profile, bool, error)
	ListByIDs(ctx context.Context, playerIDs []string) ([]Profile, error)
	// AssignTeam sets the profile team; an empty teamID unassigns the player.
	AssignTeam(ctx context.Context, playerID, teamID string) error
}
