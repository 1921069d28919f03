package httpapi

import (
	"net/http"

	"github.com/riskibarqy/golf-league/internal/usecase"
)

func (h *Handler) ListTimeline(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTimeline")
	defer span.End()

	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	page, err := h.timelineService.List(ctx, queryString(r, "season_id"), limit)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, timelineToDTO(page))
}

func (h *Handler) ListAnnouncements(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListAnnouncements")
	defer span.End()

	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.announcementService.List(ctx, queryString(r, "season_id"), limit)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	out := make([]announcementDTO, 0, len(items))
	for _, item := range items {
		out = append(out, announcementToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) CreateAnnouncement(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateAnnouncement")
	defer span.End()

	actorID, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req createAnnouncementRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.announcementService.Create(ctx, actorID, usecase.CreateAnnouncementInput{
		SeasonID: req.SeasonID,
		Title:    req.Title,
		Body:     req.Body,
		Pinned:   req.Pinned,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create announcement failed", "actor_id", actorID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, announcementToDTO(item))
}
