package httpapi

import (
	"net/http"

	"github.com/riskibarqy/golf-league/internal/usecase"
)

func (h *Handler) PlayerLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PlayerLeaderboard")
	defer span.End()

	minMatches, err := queryInt(r, "min_matches", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	board, err := h.statsService.PlayerLeaderboard(ctx, usecase.LeaderboardQuery{
		SeasonID:   queryString(r, "season_id"),
		MinMatches: minMatches,
		TeamID:     queryString(r, "team_id"),
		Limit:      limit,
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, leaderboardToDTO(board))
}

func (h *Handler) TeamStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.TeamStandings")
	defer span.End()

	table, err := h.statsService.TeamStandings(ctx, queryString(r, "season_id"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, teamStandingsToDTO(table))
}

func (h *Handler) HeadToHead(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.HeadToHead")
	defer span.End()

	report, err := h.statsService.HeadToHead(ctx, usecase.HeadToHeadQuery{
		SeasonID:   queryString(r, "season_id"),
		PlayerID:   queryString(r, "player_id"),
		OpponentID: queryString(r, "opponent_id"),
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, headToHeadToDTO(report))
}

func (h *Handler) Participation(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Participation")
	defer span.End()

	report, err := h.statsService.Participation(ctx, queryString(r, "season_id"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, participationToDTO(report))
}
