package match

import (
	"context"
	"time"
)

type ListFilter struct {
	IncludeVoided bool
	Limit         int
}

// Repository describes match persistence needs from use cases.
type Repository interface {
	// ListBySeason returns matches ordered by PlayedOn desc with participants embedded.
	ListBySeason(ctx context.Context, seasonID string, filter ListFilter) ([]Match, error)
	GetByID(ctx context.Context, matchID string) (Match, bool, error)
	// ListByIDs returns match headers only; Participants is left nil.
	ListByIDs(ctx context.Context, matchIDs []string) ([]Match, error)
	// ListParticipants returns participant rows of matchIDs, narrowed to userIDs when non-empty.
	ListParticipants(ctx context.Context, matchIDs, userIDs []string) ([]Participant, error)
	// CountBySeason counts non-voided matches.
	CountBySeason(ctx context.Context, seasonID string) (int, error)
	Create(ctx context.Context, item Match) error
	UpdateStatus(ctx context.Context, matchID string, status Status, updatedAt time.Time) error
}
