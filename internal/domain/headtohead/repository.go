package headtohead

import "context"

// Repository reads the pairwise summary view.
type Repository interface {
	GetSummary(ctx context.Context, seasonID, playerID, opponentID string) (Summary, bool, error)
}
