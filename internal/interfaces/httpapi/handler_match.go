package httpapi

import (
	"net/http"

	"github.com/riskibarqy/golf-league/internal/usecase"
)

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	includeVoided, err := queryBool(r, "include_voided")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	list, err := h.matchService.List(ctx, usecase.MatchListQuery{
		SeasonID:      queryString(r, "season_id"),
		IncludeVoided: includeVoided,
		Limit:         limit,
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, matchListToDTO(list))
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	item, err := h.matchService.Get(ctx, r.PathValue("matchID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, matchToDTO(item))
}

func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateMatch")
	defer span.End()

	actorID, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req createMatchRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	playedOn, err := parseDate("playedOn", req.PlayedOn)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	participants := make([]usecase.ParticipantInput, 0, len(req.Participants))
	for _, p := range req.Participants {
		participants = append(participants, usecase.ParticipantInput{
			UserID:        p.UserID,
			TeamID:        p.TeamID,
			PointsAwarded: p.PointsAwarded,
			Strokes:       p.Strokes,
			Position:      p.Position,
		})
	}

	item, err := h.matchService.Create(ctx, actorID, usecase.CreateMatchInput{
		SeasonID:     req.SeasonID,
		PlayedOn:     playedOn,
		Format:       req.Format,
		Course:       req.Course,
		Notes:        req.Notes,
		Participants: participants,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create match failed", "actor_id", actorID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, matchToDTO(item))
}

func (h *Handler) VoidMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.VoidMatch")
	defer span.End()

	actorID, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	// The body is optional; a bare POST voids without a reason.
	var req voidMatchRequest
	if r.ContentLength != 0 {
		if err := decodeJSON(r, &req); err != nil {
			writeError(ctx, w, err)
			return
		}
		if err := h.validateRequest(ctx, req); err != nil {
			writeError(ctx, w, err)
			return
		}
	}

	matchID := r.PathValue("matchID")
	item, err := h.matchService.Void(ctx, actorID, matchID, req.Reason)
	if err != nil {
		h.logger.WarnContext(ctx, "void match failed", "match_id", matchID, "actor_id", actorID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, matchToDTO(item))
}

func (h *Handler) RestoreMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RestoreMatch")
	defer span.End()

	actorID, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	matchID := r.PathValue("matchID")
	item, err := h.matchService.Restore(ctx, actorID, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "restore match failed", "match_id", matchID, "actor_id", actorID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, matchToDTO(item))
}
