package httpapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/golf-league/internal/usecase"
)

const (
	maxRequestBodyBytes = 1 << 20
	dateLayout          = "2006-01-02"
)

var strictJSON = sonic.Config{DisallowUnknownFields: true}.Froze()

// decodeJSON reads one JSON document into dst, rejecting unknown fields.
func decodeJSON(r *http.Request, dst any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBodyBytes+1))
	if err != nil {
		return fmt.Errorf("%w: read request body: %v", usecase.ErrInvalidInput, err)
	}
	if len(body) > maxRequestBodyBytes {
		return fmt.Errorf("%w: request body is too large", usecase.ErrInvalidInput)
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		return fmt.Errorf("%w: request body is required", usecase.ErrInvalidInput)
	}
	if err := strictJSON.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

func queryString(r *http.Request, key string) string {
	return strings.TrimSpace(r.URL.Query().Get(key))
}

// queryInt parses an optional integer parameter; absent means fallback.
func queryInt(r *http.Request, key string, fallback int) (int, error) {
	raw := queryString(r, key)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, key)
	}
	return value, nil
}

func queryBool(r *http.Request, key string) (bool, error) {
	raw := queryString(r, key)
	if raw == "" {
		return false, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: %s must be a boolean", usecase.ErrInvalidInput, key)
	}
	return value, nil
}

func parseDate(field, raw string) (time.Time, error) {
	value, err := time.Parse(dateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be a YYYY-MM-DD date", usecase.ErrInvalidInput, field)
	}
	return value, nil
}

func parseOptionalDate(field string, raw *string) (*time.Time, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	value, err := parseDate(field, *raw)
	if err != nil {
		return nil, err
	}
	return &value, nil
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

func requirePrincipal(ctx context.Context) (string, error) {
	principal, ok := principalFromContext(ctx)
	if !ok {
		return "", fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized)
	}
	return principal.UserID, nil
}

type createSeasonRequest struct {
	Name      string  `json:"name" validate:"required,max=120"`
	Year      int     `json:"year" validate:"required,min=1900,max=9999"`
	StartDate string  `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate   *string `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
	Activate  bool    `json:"activate"`
}

type createTeamRequest struct {
	Name  string `json:"name" validate:"required,max=80"`
	Color string `json:"color" validate:"omitempty,hexcolor,len=7"`
}

type assignTeamRequest struct {
	TeamID string `json:"teamId" validate:"omitempty,max=64"`
}

type createMatchRequest struct {
	SeasonID     string                    `json:"seasonId" validate:"omitempty,max=64"`
	PlayedOn     string                    `json:"playedOn" validate:"required,datetime=2006-01-02"`
	Format       string                    `json:"format" validate:"required,max=32"`
	Course       string                    `json:"course" validate:"max=120"`
	Notes        string                    `json:"notes" validate:"max=2000"`
	Participants []matchParticipantRequest `json:"participants" validate:"required,min=2,dive"`
}

type matchParticipantRequest struct {
	UserID        string  `json:"userId" validate:"required,max=64"`
	TeamID        string  `json:"teamId" validate:"omitempty,max=64"`
	PointsAwarded float64 `json:"pointsAwarded" validate:"gte=0"`
	Strokes       *int    `json:"strokes" validate:"omitempty,min=1,max=300"`
	Position      *int    `json:"position" validate:"omitempty,min=1"`
}

type voidMatchRequest struct {
	Reason string `json:"reason" validate:"max=500"`
}

type createAnnouncementRequest struct {
	SeasonID string `json:"seasonId" validate:"omitempty,max=64"`
	Title    string `json:"title" validate:"required,max=160"`
	Body     string `json:"body" validate:"required,max=5000"`
	Pinned   bool   `json:"pinned"`
}
