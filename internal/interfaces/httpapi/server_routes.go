package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/seasons", handler.ListSeasons)
	mux.HandleFunc("GET /v1/seasons/current", handler.GetCurrentSeason)
	mux.HandleFunc("GET /v1/seasons/{seasonID}", handler.GetSeason)
	mux.HandleFunc("GET /v1/seasons/{seasonID}/teams", handler.ListTeamsBySeason)
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/players/{playerID}", handler.GetPlayer)
	mux.HandleFunc("GET /v1/matches", handler.ListMatches)
	mux.HandleFunc("GET /v1/matches/{matchID}", handler.GetMatch)
	mux.HandleFunc("GET /v1/stats/players", handler.PlayerLeaderboard)
	mux.HandleFunc("GET /v1/stats/teams", handler.TeamStandings)
	mux.HandleFunc("GET /v1/stats/head-to-head", handler.HeadToHead)
	mux.HandleFunc("GET /v1/stats/participation", handler.Participation)
	mux.HandleFunc("GET /v1/timeline", handler.ListTimeline)
	mux.HandleFunc("GET /v1/announcements", handler.ListAnnouncements)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	registerAuthorizedSeasonRoutes(mux, handler, verifier)
	registerAuthorizedRosterRoutes(mux, handler, verifier)
	registerAuthorizedMatchRoutes(mux, handler, verifier)

	mux.Handle("POST /v1/announcements", RequireAuth(verifier, http.HandlerFunc(handler.CreateAnnouncement)))
}

func registerAuthorizedSeasonRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/seasons", RequireAuth(verifier, http.HandlerFunc(handler.CreateSeason)))
	mux.Handle("POST /v1/seasons/{seasonID}/activate", RequireAuth(verifier, http.HandlerFunc(handler.ActivateSeason)))
}

func registerAuthorizedRosterRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/seasons/{seasonID}/teams", RequireAuth(verifier, http.HandlerFunc(handler.CreateTeam)))
	mux.Handle("PUT /v1/players/{playerID}/team", RequireAuth(verifier, http.HandlerFunc(handler.AssignPlayerTeam)))
}

func registerAuthorizedMatchRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/matches", RequireAuth(verifier, http.HandlerFunc(handler.CreateMatch)))
	mux.Handle("POST /v1/matches/{matchID}/void", RequireAuth(verifier, http.HandlerFunc(handler.VoidMatch)))
	mux.Handle("POST /v1/matches/{matchID}/restore", RequireAuth(verifier, http.HandlerFunc(handler.RestoreMatch)))
}
