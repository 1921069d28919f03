package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/riskibarqy/golf-league/internal/config"
	"github.com/riskibarqy/golf-league/internal/domain/player"
	"github.com/riskibarqy/golf-league/internal/domain/team"
	"github.com/riskibarqy/golf-league/internal/infrastructure/account/jwtauth"
	"github.com/riskibarqy/golf-league/internal/infrastructure/audit"
	"github.com/riskibarqy/golf-league/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/golf-league/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/golf-league/internal/platform/cache"
	idgen "github.com/riskibarqy/golf-league/internal/platform/id"
	"github.com/riskibarqy/golf-league/internal/platform/logging"
	"github.com/riskibarqy/golf-league/internal/usecase"
)

// App owns the HTTP server and the resources it must release on shutdown.
type App struct {
	Server *http.Server

	effects *usecase.SideEffects
	closeDB func() error
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	repos, err := openRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	verifier, err := jwtauth.NewVerifier(cfg.AuthJWTSecret, cfg.AuthJWTIssuer)
	if err != nil {
		_ = repos.close()
		return nil, fmt.Errorf("build token verifier: %w", err)
	}

	effects, err := usecase.NewSideEffects(cfg.SideEffectWorkers, logger.Named("side_effects"))
	if err != nil {
		_ = repos.close()
		return nil, fmt.Errorf("build side effect pool: %w", err)
	}

	var (
		teamRepo   team.Repository   = repos.teams
		playerRepo player.Repository = repos.players
	)
	if cfg.CacheEnabled {
		store := basecache.NewStore(cfg.CacheTTL)
		teamRepo = cache.NewTeamRepository(teamRepo, store)
		playerRepo = cache.NewPlayerRepository(playerRepo, store)
	}

	ids := idgen.NewUUIDGenerator()
	authorizer := usecase.NewAuthorizer(playerRepo)
	activity := usecase.NewActivityRecorder(repos.timeline, audit.NewLogSink(logger), effects, ids)

	handler := httpapi.NewHandler(
		usecase.NewSeasonService(repos.seasons, authorizer, activity, ids),
		usecase.NewTeamService(repos.seasons, teamRepo, playerRepo, repos.matches, authorizer, activity, ids),
		usecase.NewPlayerService(playerRepo, teamRepo, authorizer, activity),
		usecase.NewMatchService(repos.seasons, teamRepo, playerRepo, repos.matches, authorizer, activity, ids),
		usecase.NewStatsService(repos.seasons, teamRepo, playerRepo, repos.matches, repos.headToHead, repos.participation),
		usecase.NewTimelineService(repos.seasons, repos.timeline),
		usecase.NewAnnouncementService(repos.seasons, repos.announcements, authorizer, activity, ids),
		newStorageHealth(repos.pinger, cfg.DBHealthBreaker, logger),
		logger,
	)
	router := httpapi.NewRouter(handler, verifier, logger, httpapi.RouterOptions{
		SwaggerEnabled:     cfg.SwaggerEnabled,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	logger.Info("app wired",
		"storage_driver", cfg.StorageDriver,
		"cache_enabled", cfg.CacheEnabled,
		"swagger_enabled", cfg.SwaggerEnabled,
		"side_effect_workers", cfg.SideEffectWorkers,
	)

	return &App{Server: server, effects: effects, closeDB: repos.close}, nil
}

// Close drains queued side effects before releasing storage.
func (a *App) Close() error {
	if a == nil {
		return nil
	}
	a.effects.Close()
	if a.closeDB == nil {
		return nil
	}
	if err := a.closeDB(); err != nil {
		return fmt.Errorf("close storage: %w", err)
	}
	return nil
}
