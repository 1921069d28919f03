package announcement

import (
	"context"
	"fmt"
	"strings"
	"time"
)

type Announcement struct {
	ID          string
	SeasonID    string
	AuthorID    string
	Title       string
	Body        string
	Pinned      bool
	PublishedAt time.Time
}

func (a Announcement) Validate() error {
	if a.ID == "" {
		return fmt.Errorf("announcement id is required")
	}
	if a.AuthorID == "" {
		return fmt.Errorf("announcement author is required")
	}
	if strings.TrimSpace(a.Title) == "" {
		return fmt.Errorf("announcement title is required")
	}
	if strings.TrimSpace(a.Body) == "" {
		return fmt.Errorf("announcement body is required")
	}
	return nil
}

type Repository interface {
	// List returns pinned announcements first, then newest first. An empty
	// seasonID lists league-wide and season-scoped announcements alike.
	List(ctx context.Context, seasonID string, limit int) ([]Announcement, error)
	Create(ctx context.Context, item Announcement) error
}
