package jwtauth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/riskibarqy/golf-league/internal/usecase"
)

func newTestVerifier(t *testing.T, issuer string, now time.Time) *Verifier {
	t.Helper()

	v, err := NewVerifier("test-secret", issuer)
	if err != nil {
		t.Fatalf("new verifier: %v", err)
	}
	v.now = func() time.Time { return now }
	return v
}

func TestVerifier_RoundTrip(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	v := newTestVerifier(t, "golf-league", now)

	token, err := v.Issue("player-1", "ann@example.com", time.Hour)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	principal, err := v.VerifyAccessToken(context.Background(), token)
	if err != nil {
		t.Fatalf("verify token: %v", err)
	}
	if principal.UserID != "player-1" || principal.Email != "ann@example.com" {
		t.Fatalf("unexpected principal: %+v", principal)
	}
}

func TestVerifier_Rejects(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	v := newTestVerifier(t, "golf-league", now)

	expired, err := newTestVerifier(t, "golf-league", now.Add(-3*time.Hour)).Issue("player-1", "", time.Hour)
	if err != nil {
		t.Fatalf("issue expired token: %v", err)
	}
	otherIssuer, err := newTestVerifier(t, "someone-else", now).Issue("player-1", "", time.Hour)
	if err != nil {
		t.Fatalf("issue foreign token: %v", err)
	}
	noSubject, err := v.Issue("", "", time.Hour)
	if err != nil {
		t.Fatalf("issue token without subject: %v", err)
	}

	other, err := NewVerifier("another-secret", "golf-league")
	if err != nil {
		t.Fatalf("new verifier: %v", err)
	}
	other.now = v.now
	wrongKey, err := other.Issue("player-1", "", time.Hour)
	if err != nil {
		t.Fatalf("issue token with other key: %v", err)
	}

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   "player-1",
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none token: %v", err)
	}

	tests := map[string]string{
		"empty":      "",
		"garbage":    "not-a-token",
		"expired":    expired,
		"issuer":     otherIssuer,
		"no subject": noSubject,
		"wrong key":  wrongKey,
		"alg none":   unsigned,
	}
	for name, token := range tests {
		if _, err := v.VerifyAccessToken(context.Background(), token); !errors.Is(err, usecase.ErrUnauthorized) {
			t.Fatalf("%s: expected ErrUnauthorized, got %v", name, err)
		}
	}
}

func TestNewVerifier_RequiresSecret(t *testing.T) {
	t.Parallel()

	if _, err := NewVerifier("  ", ""); err == nil {
		t.Fatalf("expected error for empty secret")
	}
}
