package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/golf-league/internal/domain/headtohead"
	"github.com/riskibarqy/golf-league/internal/domain/match"
	"github.com/riskibarqy/golf-league/internal/domain/player"
	"github.com/riskibarqy/golf-league/internal/domain/season"
	headtoheadmock "github.com/riskibarqy/golf-league/internal/mocks/domain/headtohead"
	matchmock "github.com/riskibarqy/golf-league/internal/mocks/domain/match"
	participationmock "github.com/riskibarqy/golf-league/internal/mocks/domain/participation"
	playermock "github.com/riskibarqy/golf-league/internal/mocks/domain/player"
	seasonmock "github.com/riskibarqy/golf-league/internal/mocks/domain/season"
	teammock "github.com/riskibarqy/golf-league/internal/mocks/domain/team"
	"github.com/stretchr/testify/mock"
)

type traceKey struct{}

func tracedContext() context.Context {
	return context.WithValue(context.Background(), traceKey{}, "trace-789")
}

// derivedFrom matches ctx or any context the fan-out derives from it.
func derivedFrom() any {
	return mock.MatchedBy(func(v context.Context) bool { return v.Value(traceKey{}) == "trace-789" })
}

func TestStatsService_TeamStandings_UpstreamFailureUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := tracedContext()
	seasonRepo := seasonmock.NewRepository(t)
	teamRepo := teammock.NewRepository(t)
	playerRepo := playermock.NewRepository(t)
	matchRepo := matchmock.NewRepository(t)

	service := NewStatsService(seasonRepo, teamRepo, playerRepo, matchRepo, headtoheadmock.NewRepository(t), participationmock.NewRepository(t))

	seasonRepo.
		On("List", mock.MatchedBy(func(v context.Context) bool { return v == ctx })).
		Return([]season.Season{{ID: "s1", Name: "2025", Year: 2025, IsActive: true, StartDate: day(0)}}, nil).
		Once()
	teamRepo.
		On("ListBySeason", derivedFrom(), "s1").
		Return(nil, errors.New("db timeout")).
		Once()
	playerRepo.
		On("List", derivedFrom()).
		Return([]player.Profile{}, nil).
		Maybe()
	matchRepo.
		On("ListBySeason", derivedFrom(), "s1", match.ListFilter{}).
		Return([]match.Match{}, nil).
		Maybe()

	if _, err := service.TeamStandings(ctx, ""); err == nil {
		t.Fatalf("expected upstream error")
	}
}

func TestStatsService_HeadToHead_ReadsSharedMatchesUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := tracedContext()
	seasonRepo := seasonmock.NewRepository(t)
	playerRepo := playermock.NewRepository(t)
	matchRepo := matchmock.NewRepository(t)
	headToHeadRepo := headtoheadmock.NewRepository(t)

	service := NewStatsService(seasonRepo, teammock.NewRepository(t), playerRepo, matchRepo, headToHeadRepo, participationmock.NewRepository(t))

	shared := pairMatch("m1", day(0), 3, 1.5)

	seasonRepo.
		On("List", mock.MatchedBy(func(v context.Context) bool { return v == ctx })).
		Return([]season.Season{{ID: "s1", Name: "2025", Year: 2025, IsActive: true, StartDate: day(0)}}, nil).
		Once()
	playerRepo.
		On("GetByID", derivedFrom(), "player-1").
		Return(player.Profile{ID: "player-1", FullName: "Ann Fairway"}, true, nil).
		Once()
	playerRepo.
		On("GetByID", derivedFrom(), "player-2").
		Return(player.Profile{ID: "player-2", FullName: "Ben Bunker"}, true, nil).
		Once()
	headToHeadRepo.
		On("GetSummary", derivedFrom(), "s1", "player-1", "player-2").
		Return(headtohead.Summary{
			SeasonID:       "s1",
			PlayerID:       "player-1",
			OpponentID:     "player-2",
			MatchesPlayed:  1,
			Wins:           1,
			PlayerPoints:   3,
			OpponentPoints: 1.5,
			AverageMargin:  1.5,
			MatchIDs:       []string{"m1"},
		}, true, nil).
		Once()
	matchRepo.
		On("ListByIDs", derivedFrom(), []string{"m1"}).
		Return([]match.Match{{ID: shared.ID, SeasonID: "s1", PlayedOn: shared.PlayedOn, Format: shared.Format, Status: shared.Status}}, nil).
		Once()
	matchRepo.
		On("ListParticipants", derivedFrom(), []string{"m1"}, []string{"player-1", "player-2"}).
		Return(shared.Participants, nil).
		Once()

	report, err := service.HeadToHead(ctx, HeadToHeadQuery{PlayerID: "player-1", OpponentID: "player-2"})
	if err != nil {
		t.Fatalf("head to head: %v", err)
	}
	if report.Result.Wins != 1 || len(report.Result.Matches) != 1 {
		t.Fatalf("unexpected result: %+v", report.Result)
	}
	if report.Result.Matches[0].PlayerPoints != 3 || report.Result.Matches[0].OpponentPoints != 1.5 {
		t.Fatalf("unexpected shared match: %+v", report.Result.Matches[0])
	}
}

func TestStatsService_HeadToHead_MissingProfileUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := tracedContext()
	seasonRepo := seasonmock.NewRepository(t)
	playerRepo := playermock.NewRepository(t)
	headToHeadRepo := headtoheadmock.NewRepository(t)

	service := NewStatsService(seasonRepo, teammock.NewRepository(t), playerRepo, matchmock.NewRepository(t), headToHeadRepo, participationmock.NewRepository(t))

	seasonRepo.
		On("List", mock.MatchedBy(func(v context.Context) bool { return v == ctx })).
		Return([]season.Season{{ID: "s1", Name: "2025", Year: 2025, IsActive: true, StartDate: day(0)}}, nil).
		Once()
	playerRepo.
		On("GetByID", derivedFrom(), "player-1").
		Return(player.Profile{ID: "player-1"}, true, nil).
		Maybe()
	playerRepo.
		On("GetByID", derivedFrom(), "ghost").
		Return(player.Profile{}, false, nil).
		Once()
	headToHeadRepo.
		On("GetSummary", derivedFrom(), "s1", "player-1", "ghost").
		Return(headtohead.Summary{}, false, nil).
		Maybe()

	_, err := service.HeadToHead(ctx, HeadToHeadQuery{PlayerID: "player-1", OpponentID: "ghost"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("unexpected error: got=%v want=%v", err, ErrNotFound)
	}
}
