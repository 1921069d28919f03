package match

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrUnknownFormat         = errors.New("unknown match format")
	ErrUnknownStatus         = errors.New("unknown match status")
	ErrTooFewParticipants    = errors.New("a match needs at least two participants")
	ErrDuplicateParticipant  = errors.New("duplicate participant in match")
	ErrNegativePoints        = errors.New("points awarded must not be negative")
	ErrFutureDated           = errors.New("match date must not be in the future")
	ErrInvalidTransition     = errors.New("invalid match status transition")
	ErrInvalidParticipantRef = errors.New("invalid participant reference")
)

const MinParticipants = 2

type Format string

const (
	FormatStrokePlay    Format = "stroke_play"
	FormatMatchPlay     Format = "match_play"
	FormatSkins         Format = "skins"
	FormatScramble      Format = "scramble"
	FormatBestBall      Format = "best_ball"
	FormatAlternateShot Format = "alternate_shot"
)

var AllFormats = map[Format]struct{}{
	FormatStrokePlay:    {},
	FormatMatchPlay:     {},
	FormatSkins:         {},
	FormatScramble:      {},
	FormatBestBall:      {},
	FormatAlternateShot: {},
}

func ParseFormat(raw string) (Format, error) {
	value := Format(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := AllFormats[value]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, raw)
	}
	return value, nil
}

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusSubmitted Status = "submitted"
	StatusValidated Status = "validated"
	StatusVoided    Status = "voided"
)

func ParseStatus(raw string) (Status, error) {
	switch value := Status(strings.ToLower(strings.TrimSpace(raw))); value {
	case StatusScheduled, StatusSubmitted, StatusValidated, StatusVoided:
		return value, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, raw)
	}
}

// Match is one recorded round with the points each participant was awarded.
type Match struct {
	ID           string
	SeasonID     string
	PlayedOn     time.Time
	Format       Format
	Status       Status
	Course       string
	Notes        string
	CreatedBy    string
	Participants []Participant
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Participant is a player's row within a match. TeamID is empty for unassigned players.
type Participant struct {
	MatchID       string
	UserID        string
	TeamID        string
	PointsAwarded float64
	Strokes       *int
	Position      *int
}

func (m Match) IsVoided() bool {
	return m.Status == StatusVoided
}

// Void returns the status a void request moves the match to.
func (m Match) Void() (Status, error) {
	switch m.Status {
	case StatusScheduled, StatusSubmitted, StatusValidated:
		return StatusVoided, nil
	default:
		return "", fmt.Errorf("%w: cannot void a %s match", ErrInvalidTransition, m.Status)
	}
}

// Restore returns the status a restore request moves the match to.
func (m Match) Restore() (Status, error) {
	if m.Status != StatusVoided {
		return "", fmt.Errorf("%w: cannot restore a %s match", ErrInvalidTransition, m.Status)
	}
	return StatusSubmitted, nil
}
