package httpapi

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/golf-league/internal/platform/logging"
	"github.com/riskibarqy/golf-league/internal/usecase"
)

// HealthChecker reports whether the storage backend can serve requests.
type HealthChecker interface {
	Check(ctx context.Context) error
}

type Handler struct {
	seasonService       *usecase.SeasonService
	teamService         *usecase.TeamService
	playerService       *usecase.PlayerService
	matchService        *usecase.MatchService
	statsService        *usecase.StatsService
	timelineService     *usecase.TimelineService
	announcementService *usecase.AnnouncementService
	health              HealthChecker
	logger              *logging.Logger
	validator           *validator.Validate
}

func NewHandler(
	seasonService *usecase.SeasonService,
	teamService *usecase.TeamService,
	playerService *usecase.PlayerService,
	matchService *usecase.MatchService,
	statsService *usecase.StatsService,
	timelineService *usecase.TimelineService,
	announcementService *usecase.AnnouncementService,
	health HealthChecker,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		seasonService:       seasonService,
		teamService:         teamService,
		playerService:       playerService,
		matchService:        matchService,
		statsService:        statsService,
		timelineService:     timelineService,
		announcementService: announcementService,
		health:              health,
		logger:              logger,
		validator:           validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if h.health != nil {
		if err := h.health.Check(ctx); err != nil {
			h.logger.WarnContext(ctx, "health check failed", "error", err)
			writeError(ctx, w, err)
			return
		}
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}
