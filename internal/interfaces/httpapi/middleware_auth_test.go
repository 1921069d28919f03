package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/riskibarqy/golf-league/internal/domain/user"
	"github.com/riskibarqy/golf-league/internal/usecase"
)

// tokenTable resolves "token-<user>" style bearer tokens in tests.
type tokenTable map[string]string

func (t tokenTable) VerifyAccessToken(_ context.Context, token string) (user.Principal, error) {
	userID, ok := t[token]
	if !ok {
		return user.Principal{}, fmt.Errorf("%w: unknown token", usecase.ErrUnauthorized)
	}
	return user.Principal{UserID: userID}, nil
}

func TestRequireAuth(t *testing.T) {
	verifier := tokenTable{"good": "player-ana"}
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, _ := principalFromContext(r.Context())
		seen = principal.UserID
		w.WriteHeader(http.StatusNoContent)
	})

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{name: "missing header", header: "", want: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic abc", want: http.StatusUnauthorized},
		{name: "empty token", header: "Bearer   ", want: http.StatusUnauthorized},
		{name: "unknown token", header: "Bearer nope", want: http.StatusUnauthorized},
		{name: "valid token", header: "bearer good", want: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen = ""
			req := httptest.NewRequest(http.MethodPost, "/v1/matches", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			RequireAuth(verifier, next).ServeHTTP(rec, req)

			if rec.Code != tt.want {
				t.Fatalf("status got=%d want=%d body=%s", rec.Code, tt.want, rec.Body.String())
			}
			if tt.want == http.StatusNoContent && seen != "player-ana" {
				t.Fatalf("principal not propagated, got %q", seen)
			}
		})
	}
}

func TestRequireAuth_NoVerifier(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/v1/matches", nil)
	req.Header.Set("Authorization", "Bearer x")
	rec := httptest.NewRecorder()

	RequireAuth(nil, http.NotFoundHandler()).ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 without verifier, got %d", rec.Code)
	}
}

func TestRecoverPanic(t *testing.T) {
	handler := recoverPanic(nil, http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/seasons", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestStatusRecorder_DefaultsToOK(t *testing.T) {
	rec := &statusRecorder{ResponseWriter: httptest.NewRecorder()}
	_, _ = rec.Write([]byte("hi"))
	if rec.status != http.StatusOK || rec.bytes != 2 {
		t.Fatalf("unexpected recorder state: status=%d bytes=%d", rec.status, rec.bytes)
	}
}
