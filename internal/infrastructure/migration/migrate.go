package migration

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

var defaultDirs = []string{"./db/migrations", "/app/db/migrations"}

// ResolveDir returns the first existing directory among the explicit
// candidates and the default locations.
func ResolveDir(candidates ...string) (string, error) {
	checked := make([]string, 0, len(candidates)+len(defaultDirs))
	for _, candidate := range append(candidates, defaultDirs...) {
		candidate = strings.TrimSpace(candidate)
		if candidate == "" {
			continue
		}
		checked = append(checked, candidate)
		abs, err := filepath.Abs(candidate)
		if err != nil {
			continue
		}
		info, err := os.Stat(abs)
		if err != nil || !info.IsDir() {
			continue
		}
		return abs, nil
	}

	return "", fmt.Errorf("migration directory not found (checked %s)", strings.Join(checked, ", "))
}

// Open builds a migrator for the SQL files under dir.
func Open(dbURL, dir string) (*migrate.Migrate, string, error) {
	sourceURL := "file://" + filepath.ToSlash(dir)
	m, err := migrate.New(sourceURL, dbURL)
	if err != nil {
		return nil, sourceURL, crerr.Wrap(err, "create migrator")
	}
	return m, sourceURL, nil
}

// Up applies all pending migrations. An already current schema is not an error.
func Up(m *migrate.Migrate) (bool, error) {
	err := m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		return false, nil
	}
	if err != nil {
		return false, crerr.Wrap(err, "apply migrations")
	}
	return true, nil
}

// Close releases the source and database handles held by m.
func Close(m *migrate.Migrate) error {
	srcErr, dbErr := m.Close()
	if srcErr != nil {
		return crerr.Wrap(srcErr, "close migration source")
	}
	if dbErr != nil {
		return crerr.Wrap(dbErr, "close migration db")
	}
	return nil
}
