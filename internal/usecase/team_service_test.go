package usecase

import (
	"context"
	"errors"
	"testing"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/golf-league/internal/domain/match"
	"github.com/riskibarqy/golf-league/internal/domain/team"
	"github.com/riskibarqy/golf-league/internal/domain/timeline"
	teammock "github.com/riskibarqy/golf-league/internal/mocks/domain/team"
	"github.com/stretchr/testify/mock"
)

func TestTeamService_ListBySeasonMergesRecords(t *testing.T) {
	t.Parallel()

	f := newFixture(t, scenarioSeasons(), []match.Match{pairMatch("m1", day(0), 3, 1.5)})

	views, err := f.teamService.ListBySeason(context.Background(), "s1")
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("unexpected team count: %d", len(views))
	}

	records := map[string]int{}
	for _, view := range views {
		records[view.Team.ID] = view.Record.Wins
	}
	if records["team-1"] != 1 || records["team-2"] != 0 {
		t.Fatalf("unexpected wins: %v", records)
	}

	if _, err := f.teamService.ListBySeason(context.Background(), ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("missing season: got=%v want=%v", err, ErrInvalidInput)
	}
}

func TestTeamService_Create(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newFixture(t, scenarioSeasons(), nil)

	created, err := f.teamService.Create(ctx, "commish", CreateTeamInput{SeasonID: "s1", Name: "Sand Savers", Color: "#00AA33"})
	if err != nil {
		t.Fatalf("create team: %v", err)
	}
	if created.Slug != "sand-savers" || created.SeasonID != "s1" {
		t.Fatalf("unexpected team: %+v", created)
	}

	f.effects.Wait()
	entries, err := f.timeline.ListBySeason(ctx, "s1", 10)
	if err != nil {
		t.Fatalf("list timeline: %v", err)
	}
	if len(entries) != 1 || entries[0].Kind != timeline.KindTeamCreated {
		t.Fatalf("unexpected timeline entries: %+v", entries)
	}

	tests := []struct {
		name      string
		actorID   string
		input     CreateTeamInput
		targetErr error
	}{
		{name: "duplicate slug", actorID: "commish", input: CreateTeamInput{SeasonID: "s1", Name: "BIRDIES"}, targetErr: ErrInvalidInput},
		{name: "bad color", actorID: "commish", input: CreateTeamInput{SeasonID: "s1", Name: "Pars", Color: "red"}, targetErr: ErrInvalidInput},
		{name: "no letters", actorID: "commish", input: CreateTeamInput{SeasonID: "s1", Name: "!!!"}, targetErr: ErrInvalidInput},
		{name: "unknown season", actorID: "commish", input: CreateTeamInput{SeasonID: "s9", Name: "Pars"}, targetErr: ErrNotFound},
		{name: "not commissioner", actorID: "player-1", input: CreateTeamInput{SeasonID: "s1", Name: "Pars"}, targetErr: ErrForbidden},
	}
	for _, tt := range tests {
		if _, err := f.teamService.Create(ctx, tt.actorID, tt.input); !errors.Is(err, tt.targetErr) {
			t.Fatalf("%s: got=%v want=%v", tt.name, err, tt.targetErr)
		}
	}
}

func TestTeamService_CreateConflictOnWriteUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newFixture(t, scenarioSeasons(), nil)
	teamRepo := teammock.NewRepository(t)

	activity := NewActivityRecorder(f.timeline, f.sink, f.effects, &sequenceGenerator{prefix: "gen"})
	service := NewTeamService(f.seasons, teamRepo, f.players, f.matches, NewAuthorizer(f.players), activity, &sequenceGenerator{prefix: "team"})

	// Another writer took the slug between the list and the insert.
	unique := crerr.Mark(crerr.Wrap(errors.New("duplicate key value violates unique constraint"), "insert team"), team.ErrDuplicate)
	teamRepo.
		On("ListBySeason", mock.Anything, "s1").
		Return([]team.Team{}, nil).
		Once()
	teamRepo.
		On("Create", mock.Anything, mock.AnythingOfType("team.Team")).
		Return(unique).
		Once()

	_, err := service.Create(ctx, "commish", CreateTeamInput{SeasonID: "s1", Name: "Sand Savers"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("unexpected error: got=%v want=%v", err, ErrInvalidInput)
	}

	f.effects.Wait()
	if got := f.sink.actions(); len(got) != 0 {
		t.Fatalf("failed create must not record activity: %v", got)
	}
}

func TestTeamService_CreateConflictFromMemoryStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newFixture(t, scenarioSeasons(), nil)

	err := f.teams.Create(ctx, team.Team{ID: "team-x", SeasonID: "s1", Name: "Birdies", Slug: "birdies"})
	if !crerr.Is(err, team.ErrDuplicate) {
		t.Fatalf("memory store should report team.ErrDuplicate, got %v", err)
	}
}
