package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/golf-league/internal/domain/player"
)

// Authorizer checks league roles stored on player profiles.
type Authorizer struct {
	playerRepo player.Repository
}

func NewAuthorizer(playerRepo player.Repository) *Authorizer {
	return &Authorizer{playerRepo: playerRepo}
}

func (a *Authorizer) RequireMember(ctx context.Context, userID string) (player.Profile, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return player.Profile{}, fmt.Errorf("%w: caller identity is required", ErrUnauthorized)
	}

	profile, exists, err := a.playerRepo.GetByID(ctx, userID)
	if err != nil {
		return player.Profile{}, fmt.Errorf("get caller profile: %w", err)
	}
	if !exists {
		return player.Profile{}, fmt.Errorf("%w: caller %s is not a league member", ErrForbidden, userID)
	}

	return profile, nil
}

func (a *Authorizer) RequireCommissioner(ctx context.Context, userID string) (player.Profile, error) {
	profile, err := a.RequireMember(ctx, userID)
	if err != nil {
		return player.Profile{}, err
	}
	if !profile.IsCommissioner() {
		return player.Profile{}, fmt.Errorf("%w: commissioner role required", ErrForbidden)
	}

	return profile, nil
}
