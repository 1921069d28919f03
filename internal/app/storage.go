package app

import (
	"context"
	"fmt"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/golf-league/internal/config"
	"github.com/riskibarqy/golf-league/internal/domain/announcement"
	"github.com/riskibarqy/golf-league/internal/domain/headtohead"
	"github.com/riskibarqy/golf-league/internal/domain/match"
	"github.com/riskibarqy/golf-league/internal/domain/participation"
	"github.com/riskibarqy/golf-league/internal/domain/player"
	"github.com/riskibarqy/golf-league/internal/domain/season"
	"github.com/riskibarqy/golf-league/internal/domain/team"
	"github.com/riskibarqy/golf-league/internal/domain/timeline"
	"github.com/riskibarqy/golf-league/internal/infrastructure/migration"
	"github.com/riskibarqy/golf-league/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/golf-league/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/golf-league/internal/platform/logging"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

type repositories struct {
	seasons       season.Repository
	teams         team.Repository
	players       player.Repository
	matches       match.Repository
	headToHead    headtohead.Repository
	participation participation.Repository
	timeline      timeline.Repository
	announcements announcement.Repository
	pinger        pinger
	close         func() error
}

type pinger interface {
	PingContext(ctx context.Context) error
}

func openRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (repositories, error) {
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		return openPostgres(ctx, cfg, logger)
	case config.StorageMemory, "":
		return openMemory(logger), nil
	default:
		return repositories{}, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}

func openMemory(logger *logging.Logger) repositories {
	matches := memory.NewMatchRepository(memory.SeedMatches())
	logger.Info("storage ready", "driver", config.StorageMemory)

	return repositories{
		seasons:       memory.NewSeasonRepository(memory.SeedSeasons()),
		teams:         memory.NewTeamRepository(memory.SeedTeams()),
		players:       memory.NewPlayerRepository(memory.SeedPlayers()),
		matches:       matches,
		headToHead:    matches,
		participation: matches,
		timeline:      memory.NewTimelineRepository(nil),
		announcements: memory.NewAnnouncementRepository(memory.SeedAnnouncements()),
		close:         func() error { return nil },
	}
}

func openPostgres(ctx context.Context, cfg config.Config, logger *logging.Logger) (repositories, error) {
	dbURL := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	if cfg.DBAutoMigrate {
		if err := migrateUp(dbURL, logger); err != nil {
			return repositories{}, err
		}
	}

	db, err := otelsqlx.Open("postgres", dbURL,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(dbURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return repositories{}, crerr.Wrap(err, "open postgres")
	}
	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxIdleConns)
	db.SetConnMaxLifetime(cfg.DBConnMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return repositories{}, crerr.Wrap(err, "ping postgres")
	}

	if cfg.DBSeedDemo {
		if err := postgres.BootstrapSeed(ctx, db); err != nil {
			_ = db.Close()
			return repositories{}, err
		}
	}

	logger.Info("storage ready",
		"driver", config.StoragePostgres,
		"db_name", dbNameFromURL(dbURL),
		"max_open_conns", cfg.DBMaxOpenConns,
	)

	return postgresRepositories(db), nil
}

func postgresRepositories(db *sqlx.DB) repositories {
	stats := postgres.NewStatsRepository(db)
	return repositories{
		seasons:       postgres.NewSeasonRepository(db),
		teams:         postgres.NewTeamRepository(db),
		players:       postgres.NewPlayerRepository(db),
		matches:       postgres.NewMatchRepository(db),
		headToHead:    stats,
		participation: stats,
		timeline:      postgres.NewTimelineRepository(db),
		announcements: postgres.NewAnnouncementRepository(db),
		pinger:        db,
		close:         db.Close,
	}
}

func migrateUp(dbURL string, logger *logging.Logger) error {
	dir, err := migration.ResolveDir()
	if err != nil {
		return err
	}
	m, source, err := migration.Open(dbURL, dir)
	if err != nil {
		return err
	}
	defer func() {
		if err := migration.Close(m); err != nil {
			logger.Warn("close migrator failed", "error", err)
		}
	}()

	applied, err := migration.Up(m)
	if err != nil {
		return err
	}
	logger.Info("migrations checked", "source", source, "applied", applied)
	return nil
}
