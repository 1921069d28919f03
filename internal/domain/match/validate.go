package match

import (
	"fmt"
	"math"
	"time"

	"github.com/riskibarqy/golf-league/internal/platform/id"
)

// Validate checks the invariants a match must satisfy before it is stored.
func (m Match) Validate(now time.Time) error {
	if !id.Valid(m.ID) {
		return fmt.Errorf("match id is malformed")
	}
	if !id.Valid(m.SeasonID) {
		return fmt.Errorf("match season id is malformed")
	}
	return m.ValidateSubmission(now)
}

// ValidateSubmission checks the submitted content of a match, ignoring the
// ids assigned on acceptance. now anchors the future-date check; only the
// calendar date is compared.
func (m Match) ValidateSubmission(now time.Time) error {
	if _, ok := AllFormats[m.Format]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, m.Format)
	}
	if _, err := ParseStatus(string(m.Status)); err != nil {
		return err
	}
	if m.PlayedOn.IsZero() {
		return fmt.Errorf("match date is required")
	}
	if dateOnly(m.PlayedOn).After(dateOnly(now)) {
		return fmt.Errorf("%w: %s", ErrFutureDated, m.PlayedOn.Format(time.DateOnly))
	}

	if len(m.Participants) < MinParticipants {
		return fmt.Errorf("%w: got %d", ErrTooFewParticipants, len(m.Participants))
	}

	seen := make(map[string]struct{}, len(m.Participants))
	for _, item := range m.Participants {
		if !id.Valid(item.UserID) {
			return fmt.Errorf("%w: user id %q", ErrInvalidParticipantRef, item.UserID)
		}
		if item.TeamID != "" && !id.Valid(item.TeamID) {
			return fmt.Errorf("%w: team id %q", ErrInvalidParticipantRef, item.TeamID)
		}
		if _, exists := seen[item.UserID]; exists {
			return fmt.Errorf("%w: %s", ErrDuplicateParticipant, item.UserID)
		}
		seen[item.UserID] = struct{}{}

		if math.IsNaN(item.PointsAwarded) || math.IsInf(item.PointsAwarded, 0) {
			return fmt.Errorf("points awarded must be a finite number for %s", item.UserID)
		}
		if item.PointsAwarded < 0 {
			return fmt.Errorf("%w: %s has %v", ErrNegativePoints, item.UserID, item.PointsAwarded)
		}
		if item.Strokes != nil && *item.Strokes <= 0 {
			return fmt.Errorf("strokes must be greater than zero for %s", item.UserID)
		}
		if item.Position != nil && *item.Position <= 0 {
			return fmt.Errorf("position must be greater than zero for %s", item.UserID)
		}
	}

	return nil
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
