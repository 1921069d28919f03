package httpapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/riskibarqy/golf-league/internal/domain/season"
	"github.com/riskibarqy/golf-league/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/golf-league/internal/platform/id"
	"github.com/riskibarqy/golf-league/internal/platform/logging"
	"github.com/riskibarqy/golf-league/internal/usecase"
)

type fakeHealth struct{ err error }

func (f fakeHealth) Check(context.Context) error { return f.err }

type testServer struct {
	router  http.Handler
	effects *usecase.SideEffects
}

func newTestServer(t *testing.T, seasons []season.Season, health HealthChecker) testServer {
	t.Helper()

	logger := logging.NewNop()
	effects, err := usecase.NewSideEffects(2, logger)
	if err != nil {
		t.Fatalf("new side effects: %v", err)
	}
	t.Cleanup(effects.Close)

	seasonRepo := memory.NewSeasonRepository(seasons)
	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())
	matchRepo := memory.NewMatchRepository(memory.SeedMatches())
	timelineRepo := memory.NewTimelineRepository(nil)
	announcementRepo := memory.NewAnnouncementRepository(memory.SeedAnnouncements())

	idGen := id.NewUUIDGenerator()
	authorizer := usecase.NewAuthorizer(playerRepo)
	activity := usecase.NewActivityRecorder(timelineRepo, nil, effects, idGen)

	handler := NewHandler(
		usecase.NewSeasonService(seasonRepo, authorizer, activity, idGen),
		usecase.NewTeamService(seasonRepo, teamRepo, playerRepo, matchRepo, authorizer, activity, idGen),
		usecase.NewPlayerService(playerRepo, teamRepo, authorizer, activity),
		usecase.NewMatchService(seasonRepo, teamRepo, playerRepo, matchRepo, authorizer, activity, idGen),
		usecase.NewStatsService(seasonRepo, teamRepo, playerRepo, matchRepo, matchRepo, matchRepo),
		usecase.NewTimelineService(seasonRepo, timelineRepo),
		usecase.NewAnnouncementService(seasonRepo, announcementRepo, authorizer, activity, idGen),
		health,
		logger,
	)

	verifier := tokenTable{
		"commish": memory.PlayerIDCommissioner,
		"ana":     "player-ana",
	}

	return testServer{
		router:  NewRouter(handler, verifier, logger, RouterOptions{SwaggerEnabled: true}),
		effects: effects,
	}
}

func (s testServer) do(t *testing.T, method, target, token, body string) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	if rec.Header().Get("Content-Type") != "application/json" {
		return rec.Code, nil
	}
	return rec.Code, decodeEnvelope(t, rec)
}

func dataObject(t *testing.T, body map[string]any) map[string]any {
	t.Helper()
	data, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected object data, got %v", body)
	}
	return data
}

func dataList(t *testing.T, body map[string]any) []any {
	t.Helper()
	data, ok := body["data"].([]any)
	if !ok {
		t.Fatalf("expected list data, got %v", body)
	}
	return data
}

func TestHandler_PlayerLeaderboard(t *testing.T) {
	srv := newTestServer(t, memory.SeedSeasons(), nil)

	code, body := srv.do(t, http.MethodGet, "/v1/stats/players", "", "")
	if code != http.StatusOK {
		t.Fatalf("unexpected status: %d body=%v", code, body)
	}

	data := dataObject(t, body)
	seasonObj, _ := data["season"].(map[string]any)
	if seasonObj["id"] != memory.SeasonID2026 {
		t.Fatalf("expected the active season echoed, got %v", seasonObj)
	}
	if _, ok := data["generatedAt"]; !ok {
		t.Fatalf("expected generatedAt")
	}

	rows, _ := data["rows"].([]any)
	if len(rows) != len(memory.SeedPlayers()) {
		t.Fatalf("every roster player should appear, got %d rows", len(rows))
	}
	first, _ := rows[0].(map[string]any)
	if first["playerId"] != "player-ana" || first["pointsTotal"] != 5.0 {
		t.Fatalf("unexpected leader: %v", first)
	}
	second, _ := rows[1].(map[string]any)
	if second["playerId"] != "player-ben" {
		t.Fatalf("ties should break on display name, got %v", second)
	}
}

func TestHandler_LeaderboardFilters(t *testing.T) {
	srv := newTestServer(t, memory.SeedSeasons(), nil)

	code, body := srv.do(t, http.MethodGet, "/v1/stats/players?team_id="+memory.TeamIDEagles+"&min_matches=2&limit=1", "", "")
	if code != http.StatusOK {
		t.Fatalf("unexpected status: %d body=%v", code, body)
	}
	rows, _ := dataObject(t, body)["rows"].([]any)
	if len(rows) != 1 {
		t.Fatalf("expected one filtered row, got %v", rows)
	}
	row, _ := rows[0].(map[string]any)
	if row["playerId"] != "player-ben" {
		t.Fatalf("unexpected filtered row: %v", row)
	}

	if code, _ := srv.do(t, http.MethodGet, "/v1/stats/players?min_matches=two", "", ""); code != http.StatusBadRequest {
		t.Fatalf("bad integer should be 400, got %d", code)
	}
}

func TestHandler_TeamStandingsAndParticipation(t *testing.T) {
	srv := newTestServer(t, memory.SeedSeasons(), nil)

	code, body := srv.do(t, http.MethodGet, "/v1/stats/teams?season_id="+memory.SeasonID2026, "", "")
	if code != http.StatusOK {
		t.Fatalf("unexpected standings status: %d body=%v", code, body)
	}
	rows, _ := dataObject(t, body)["rows"].([]any)
	if len(rows) != len(memory.SeedTeams()) {
		t.Fatalf("every season team should appear, got %d rows", len(rows))
	}

	code, body = srv.do(t, http.MethodGet, "/v1/stats/participation", "", "")
	if code != http.StatusOK {
		t.Fatalf("unexpected participation status: %d body=%v", code, body)
	}
	data := dataObject(t, body)
	if data["seasonMatchCount"] != 3.0 {
		t.Fatalf("voided matches must not count, got %v", data["seasonMatchCount"])
	}
}

func TestHandler_HeadToHead(t *testing.T) {
	srv := newTestServer(t, memory.SeedSeasons(), nil)

	code, body := srv.do(t, http.MethodGet, "/v1/stats/head-to-head?player_id=player-ana&opponent_id=player-ben", "", "")
	if code != http.StatusOK {
		t.Fatalf("unexpected status: %d body=%v", code, body)
	}
	data := dataObject(t, body)
	if data["wins"] != 1.0 || data["losses"] != 1.0 || data["matchesPlayed"] != 2.0 {
		t.Fatalf("unexpected record: %v", data)
	}
	if data["pointsFor"] != 5.0 || data["pointsAgainst"] != 4.0 {
		t.Fatalf("unexpected points: %v", data)
	}
	matches, _ := data["matches"].([]any)
	latest, _ := matches[0].(map[string]any)
	if latest["matchId"] != "match-0615" || latest["outcome"] != "loss" {
		t.Fatalf("expected newest shared match first, got %v", latest)
	}

	code, _ = srv.do(t, http.MethodGet, "/v1/stats/head-to-head?player_id=player-ana&opponent_id=player-ana", "", "")
	if code != http.StatusBadRequest {
		t.Fatalf("self comparison should be 400, got %d", code)
	}
	code, _ = srv.do(t, http.MethodGet, "/v1/stats/head-to-head?player_id=player-ana&opponent_id=player-zed", "", "")
	if code != http.StatusNotFound {
		t.Fatalf("unknown opponent should be 404, got %d", code)
	}
}

func TestHandler_NoActiveSeason(t *testing.T) {
	srv := newTestServer(t, nil, nil)

	code, body := srv.do(t, http.MethodGet, "/v1/stats/players", "", "")
	if code != http.StatusConflict {
		t.Fatalf("expected 409, got %d body=%v", code, body)
	}
	errorObj, _ := body["error"].(map[string]any)
	if errorObj["status"] != "FAILED_PRECONDITION" {
		t.Fatalf("unexpected error body: %v", errorObj)
	}
}

func TestHandler_SeasonRoutes(t *testing.T) {
	srv := newTestServer(t, memory.SeedSeasons(), nil)

	code, body := srv.do(t, http.MethodGet, "/v1/seasons/current", "", "")
	if code != http.StatusOK || dataObject(t, body)["id"] != memory.SeasonID2026 {
		t.Fatalf("unexpected current season: %d %v", code, body)
	}

	code, body = srv.do(t, http.MethodGet, "/v1/seasons", "", "")
	if code != http.StatusOK || len(dataList(t, body)) != 2 {
		t.Fatalf("unexpected season list: %d %v", code, body)
	}

	if code, _ := srv.do(t, http.MethodGet, "/v1/seasons/season-1999", "", ""); code != http.StatusNotFound {
		t.Fatalf("missing season should be 404, got %d", code)
	}

	code, body = srv.do(t, http.MethodPost, "/v1/seasons/"+memory.SeasonID2025+"/activate", "commish", "")
	if code != http.StatusOK || dataObject(t, body)["isActive"] != true {
		t.Fatalf("unexpected activation: %d %v", code, body)
	}
	code, body = srv.do(t, http.MethodGet, "/v1/seasons/current", "", "")
	if code != http.StatusOK || dataObject(t, body)["id"] != memory.SeasonID2025 {
		t.Fatalf("activated season should resolve as current: %d %v", code, body)
	}

	if code, _ := srv.do(t, http.MethodPost, "/v1/seasons/"+memory.SeasonID2026+"/activate", "ana", ""); code != http.StatusForbidden {
		t.Fatalf("players cannot activate, got %d", code)
	}
}

func TestHandler_CreateMatchAndVoid(t *testing.T) {
	srv := newTestServer(t, memory.SeedSeasons(), nil)

	payload := `{"playedOn":"2026-06-20","format":"stroke_play","course":"Pine Valley Muni",` +
		`"participants":[{"userId":"player-ana","pointsAwarded":2},{"userId":"player-dev","pointsAwarded":1}]}`

	if code, _ := srv.do(t, http.MethodPost, "/v1/matches", "", payload); code != http.StatusUnauthorized {
		t.Fatalf("anonymous create should be 401, got %d", code)
	}

	code, body := srv.do(t, http.MethodPost, "/v1/matches", "ana", payload)
	if code != http.StatusCreated {
		t.Fatalf("unexpected create status: %d body=%v", code, body)
	}
	created := dataObject(t, body)
	matchID, _ := created["id"].(string)
	if created["winningTeamId"] != memory.TeamIDBirdies || created["totalPoints"] != 3.0 {
		t.Fatalf("unexpected computed result: %v", created)
	}

	if code, _ := srv.do(t, http.MethodPost, "/v1/matches/"+matchID+"/void", "ana", ""); code != http.StatusForbidden {
		t.Fatalf("players cannot void, got %d", code)
	}

	code, body = srv.do(t, http.MethodPost, "/v1/matches/"+matchID+"/void", "commish", `{"reason":"scorecard mix-up"}`)
	if code != http.StatusOK || dataObject(t, body)["status"] != "voided" {
		t.Fatalf("unexpected void: %d %v", code, body)
	}
	srv.effects.Wait()

	code, body = srv.do(t, http.MethodGet, "/v1/timeline", "", "")
	if code != http.StatusOK {
		t.Fatalf("unexpected timeline status: %d", code)
	}
	entries, _ := dataObject(t, body)["entries"].([]any)
	if len(entries) != 2 {
		t.Fatalf("expected recorded and voided entries, got %v", entries)
	}

	code, body = srv.do(t, http.MethodPost, "/v1/matches/"+matchID+"/restore", "commish", "")
	if code != http.StatusOK || dataObject(t, body)["status"] != "submitted" {
		t.Fatalf("unexpected restore: %d %v", code, body)
	}
}

func TestHandler_CreateMatchValidation(t *testing.T) {
	srv := newTestServer(t, memory.SeedSeasons(), nil)

	tests := []struct {
		name    string
		payload string
	}{
		{name: "unknown field", payload: `{"playedOn":"2026-06-20","format":"skins","participants":[],"extra":1}`},
		{name: "one participant", payload: `{"playedOn":"2026-06-20","format":"skins","participants":[{"userId":"player-ana","pointsAwarded":1}]}`},
		{name: "negative points", payload: `{"playedOn":"2026-06-20","format":"skins","participants":[{"userId":"player-ana","pointsAwarded":-1},{"userId":"player-ben","pointsAwarded":1}]}`},
		{name: "bad date", payload: `{"playedOn":"20/06/2026","format":"skins","participants":[{"userId":"player-ana","pointsAwarded":1},{"userId":"player-ben","pointsAwarded":1}]}`},
		{name: "unknown format", payload: `{"playedOn":"2026-06-20","format":"bingo","participants":[{"userId":"player-ana","pointsAwarded":1},{"userId":"player-ben","pointsAwarded":1}]}`},
		{name: "not json", payload: `{"playedOn":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := srv.do(t, http.MethodPost, "/v1/matches", "ana", tt.payload)
			if code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d body=%v", code, body)
			}
		})
	}
}

func TestHandler_RosterRoutes(t *testing.T) {
	srv := newTestServer(t, memory.SeedSeasons(), nil)

	code, body := srv.do(t, http.MethodGet, "/v1/players?q=bunk", "", "")
	list := dataList(t, body)
	if code != http.StatusOK || len(list) != 1 {
		t.Fatalf("unexpected search: %d %v", code, body)
	}

	code, body = srv.do(t, http.MethodPut, "/v1/players/player-eli/team", "commish", fmt.Sprintf(`{"teamId":%q}`, memory.TeamIDBogeys))
	if code != http.StatusOK || dataObject(t, body)["teamId"] != memory.TeamIDBogeys {
		t.Fatalf("unexpected assignment: %d %v", code, body)
	}

	code, body = srv.do(t, http.MethodPost, "/v1/seasons/"+memory.SeasonID2026+"/teams", "commish", `{"name":"Sand Savers","color":"#AABBCC"}`)
	if code != http.StatusCreated || dataObject(t, body)["slug"] != "sand-savers" {
		t.Fatalf("unexpected team create: %d %v", code, body)
	}

	code, body = srv.do(t, http.MethodGet, "/v1/seasons/"+memory.SeasonID2026+"/teams", "", "")
	if code != http.StatusOK || len(dataList(t, body)) != 4 {
		t.Fatalf("unexpected team list: %d %v", code, body)
	}
}

func TestHandler_Announcements(t *testing.T) {
	srv := newTestServer(t, memory.SeedSeasons(), nil)

	code, body := srv.do(t, http.MethodPost, "/v1/announcements", "commish", `{"title":"Rain date","body":"Saturday moves to Sunday."}`)
	if code != http.StatusCreated {
		t.Fatalf("unexpected create: %d %v", code, body)
	}

	code, body = srv.do(t, http.MethodGet, "/v1/announcements", "", "")
	items := dataList(t, body)
	if code != http.StatusOK || len(items) != 2 {
		t.Fatalf("unexpected list: %d %v", code, body)
	}
	first, _ := items[0].(map[string]any)
	if first["pinned"] != true {
		t.Fatalf("pinned announcements come first, got %v", first)
	}
}

func TestHandler_Healthz(t *testing.T) {
	healthy := newTestServer(t, nil, fakeHealth{})
	if code, _ := healthy.do(t, http.MethodGet, "/healthz", "", ""); code != http.StatusOK {
		t.Fatalf("expected healthy 200, got %d", code)
	}

	down := newTestServer(t, nil, fakeHealth{err: fmt.Errorf("%w: dial tcp 10.0.0.5:5432", usecase.ErrDependencyUnavailable)})
	code, body := down.do(t, http.MethodGet, "/healthz", "", "")
	if code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", code)
	}
	errorObj, _ := body["error"].(map[string]any)
	if msg, _ := errorObj["message"].(string); strings.Contains(msg, "10.0.0.5") {
		t.Fatalf("dependency detail leaked: %s", msg)
	}

	if code, _ := healthy.do(t, http.MethodGet, "/openapi.yaml", "", ""); code != http.StatusOK {
		t.Fatalf("expected openapi document, got %d", code)
	}
}
