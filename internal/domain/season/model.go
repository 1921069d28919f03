package season

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrNotFound      = errors.New("season not found")
	ErrNotConfigured = errors.New("no season configured")
)

// Season bounds the teams, matches and stats of one league period.
type Season struct {
	ID        string
	Name      string
	Year      int
	IsActive  bool
	StartDate time.Time
	EndDate   *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (s Season) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("season id is required")
	}
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("season name is required")
	}
	if s.Year < 1900 || s.Year > 9999 {
		return fmt.Errorf("season year is out of range: %d", s.Year)
	}
	if s.StartDate.IsZero() {
		return fmt.Errorf("season start date is required")
	}
	if s.EndDate != nil && s.EndDate.Before(s.StartDate) {
		return fmt.Errorf("season end date must not be before start date")
	}

	return nil
}
