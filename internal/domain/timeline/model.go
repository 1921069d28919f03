package timeline

import (
	"context"
	"fmt"
	"time"
)

type Kind string

const (
	KindMatchRecorded      Kind = "match_recorded"
	KindMatchVoided        Kind = "match_voided"
	KindMatchRestored      Kind = "match_restored"
	KindSeasonActivated    Kind = "season_activated"
	KindTeamCreated        Kind = "team_created"
	KindRosterAssigned     Kind = "roster_assigned"
	KindAnnouncementPosted Kind = "announcement_posted"
)

// Entry is one activity feed item scoped to a season.
type Entry struct {
	ID        string
	SeasonID  string
	Kind      Kind
	ActorID   string
	SubjectID string
	Summary   string
	CreatedAt time.Time
}

func (e Entry) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("timeline entry id is required")
	}
	if e.SeasonID == "" {
		return fmt.Errorf("timeline entry season id is required")
	}
	if e.Kind == "" {
		return fmt.Errorf("timeline entry kind is required")
	}
	return nil
}

type Repository interface {
	Append(ctx context.Context, entry Entry) error
	// ListBySeason returns newest entries first.
	ListBySeason(ctx context.Context, seasonID string, limit int) ([]Entry, error)
}
