package season

import (
	"fmt"
	"strings"
)

// Resolve picks the season a request is scoped to.
//
// An explicit requestedID must match exactly. Without one the active season
// wins, then the most recently started season. An empty list yields
// ErrNotConfigured.
func Resolve(seasons []Season, requestedID string) (Season, error) {
	requestedID = strings.TrimSpace(requestedID)
	if requestedID != "" {
		for _, item := range seasons {
			if item.ID == requestedID {
				return item, nil
			}
		}
		return Season{}, fmt.Errorf("%w: %s", ErrNotFound, requestedID)
	}

	if len(seasons) == 0 {
		return Season{}, ErrNotConfigured
	}

	for _, item := range seasons {
		if item.IsActive {
			return item, nil
		}
	}

	latest := seasons[0]
	for _, item := range seasons[1:] {
		if item.StartDate.After(latest.StartDate) ||
			(item.StartDate.Equal(latest.StartDate) && item.ID < latest.ID) {
			latest = item
		}
	}

	return latest, nil
}
