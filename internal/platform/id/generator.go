package id

import (
	"fmt"
	"regexp"

	"github.com/google/uuid"
)

const maxLength = 64

var pattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)

// Generator creates opaque IDs suitable for external references.
type Generator interface {
	NewID() (string, error)
}

type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) NewID() (string, error) {
	value, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate uuid: %w", err)
	}

	return value.String(), nil
}

// Valid reports whether value is a well-formed entity identifier.
// Generated UUIDs and short seeded slugs ("team-1") are both accepted.
func Valid(value string) bool {
	if value == "" || len(value) > maxLength {
		return false
	}
	return pattern.MatchString(value)
}
