package player

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrUnknownRole = errors.New("unknown role")

type Role string

const (
	RolePlayer       Role = "player"
	RoleCommissioner Role = "commissioner"
)

// ParseRole maps a stored or submitted role onto the closed set.
func ParseRole(raw string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(raw))) {
	case RolePlayer:
		return RolePlayer, nil
	case RoleCommissioner:
		return RoleCommissioner, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, raw)
	}
}

// Profile is a league member. TeamID is empty while unassigned.
type Profile struct {
	ID        string
	Username  string
	FullName  string
	Role      Role
	TeamID    string
	Handicap  *float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (p Profile) DisplayName() string {
	if name := strings.TrimSpace(p.FullName); name != "" {
		return name
	}
	if name := strings.TrimSpace(p.Username); name != "" {
		return name
	}
	return p.ID
}

func (p Profile) IsCommissioner() bool {
	return p.Role == RoleCommissioner
}
