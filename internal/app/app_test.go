package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/riskibarqy/golf-league/internal/config"
	"github.com/riskibarqy/golf-league/internal/infrastructure/account/jwtauth"
	"github.com/riskibarqy/golf-league/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/golf-league/internal/platform/logging"
	"github.com/riskibarqy/golf-league/internal/platform/resilience"
)

func memoryConfig() config.Config {
	return config.Config{
		AppEnv:             config.EnvDev,
		HTTPAddr:           ":0",
		StorageDriver:      config.StorageMemory,
		CacheEnabled:       true,
		CacheTTL:           time.Minute,
		AuthJWTSecret:      "test-secret",
		AuthJWTIssuer:      "golf-league-test",
		CORSAllowedOrigins: []string{"*"},
		SideEffectWorkers:  2,
		SwaggerEnabled:     true,
		DBHealthBreaker:    resilience.DefaultBreakerConfig(),
	}
}

func doRequest(t *testing.T, handler http.Handler, method, path, token string) (int, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var body map[string]any
	if rec.Body.Len() > 0 && rec.Header().Get("Content-Type") == "application/json" {
		if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode %s %s: %v", method, path, err)
		}
	}
	return rec.Code, body
}

func TestNew_MemoryStorageServesAPI(t *testing.T) {
	cfg := memoryConfig()
	application, err := New(context.Background(), cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	t.Cleanup(func() {
		if err := application.Close(); err != nil {
			t.Errorf("close app: %v", err)
		}
	})

	router := application.Server.Handler

	if code, _ := doRequest(t, router, http.MethodGet, "/healthz", ""); code != http.StatusOK {
		t.Fatalf("unexpected healthz status: got=%d want=%d", code, http.StatusOK)
	}

	code, body := doRequest(t, router, http.MethodGet, "/v1/seasons/current", "")
	if code != http.StatusOK {
		t.Fatalf("unexpected current season status: got=%d want=%d", code, http.StatusOK)
	}
	data, _ := body["data"].(map[string]any)
	if data["id"] != memory.SeasonID2026 {
		t.Fatalf("unexpected current season: %v", data)
	}

	verifier, err := jwtauth.NewVerifier(cfg.AuthJWTSecret, cfg.AuthJWTIssuer)
	if err != nil {
		t.Fatalf("new verifier: %v", err)
	}
	token, err := verifier.Issue(memory.PlayerIDCommissioner, "commish@golf-league.example.com", time.Hour)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	if code, _ := doRequest(t, router, http.MethodPost, "/v1/seasons/"+memory.SeasonID2025+"/activate", ""); code != http.StatusUnauthorized {
		t.Fatalf("unexpected unauthenticated activate status: got=%d want=%d", code, http.StatusUnauthorized)
	}
	if code, _ := doRequest(t, router, http.MethodPost, "/v1/seasons/"+memory.SeasonID2025+"/activate", token); code != http.StatusOK {
		t.Fatalf("unexpected activate status: got=%d want=%d", code, http.StatusOK)
	}

	_, body = doRequest(t, router, http.MethodGet, "/v1/seasons/current", "")
	data, _ = body["data"].(map[string]any)
	if data["id"] != memory.SeasonID2025 {
		t.Fatalf("activation not visible: %v", data)
	}
}

func TestNew_RejectsEmptyAddr(t *testing.T) {
	cfg := memoryConfig()
	cfg.HTTPAddr = ""
	if _, err := New(context.Background(), cfg, nil); err == nil {
		t.Fatalf("expected error for empty http addr")
	}
}

func TestNew_RejectsUnknownStorage(t *testing.T) {
	cfg := memoryConfig()
	cfg.StorageDriver = "sqlite"
	if _, err := New(context.Background(), cfg, nil); err == nil {
		t.Fatalf("expected error for unknown storage driver")
	}
}
