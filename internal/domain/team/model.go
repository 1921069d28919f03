package team

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// ErrDuplicate reports a team id or slug already taken in the season.
var ErrDuplicate = errors.New("team already exists in season")

var (
	colorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
	slugStrip    = regexp.MustCompile(`[^a-z0-9]+`)
)

// Team is a group of players competing inside one season.
// Points and records are never stored here; see standings.TeamSeasonStats.
type Team struct {
	ID        string
	SeasonID  string
	Name      string
	Slug      string
	Color     string
	CreatedAt time.Time
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.SeasonID == "" {
		return fmt.Errorf("team season id is required")
	}
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("team name is required")
	}
	if t.Slug == "" {
		return fmt.Errorf("team slug is required")
	}
	if t.Color != "" && !colorPattern.MatchString(t.Color) {
		return fmt.Errorf("team color must be a #RRGGBB hex value")
	}

	return nil
}

// Slugify lowercases name and collapses every run of non-alphanumerics into a hyphen.
func Slugify(name string) string {
	slug := slugStrip.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
	return strings.Trim(slug, "-")
}
