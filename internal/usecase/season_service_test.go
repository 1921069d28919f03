package usecase

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/riskibarqy/golf-league/internal/domain/timeline"
)

func TestSeasonService_ListNewestFirst(t *testing.T) {
	t.Parallel()

	f := newFixture(t, scenarioSeasons(), nil)

	seasons, err := f.seasonService.List(context.Background())
	if err != nil {
		t.Fatalf("list seasons: %v", err)
	}
	if len(seasons) != 2 || seasons[0].ID != "s1" || seasons[1].ID != "s0" {
		t.Fatalf("unexpected season order: %+v", seasons)
	}
}

func TestSeasonService_CreateAndActivate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newFixture(t, scenarioSeasons(), nil)

	created, err := f.seasonService.Create(ctx, "commish", CreateSeasonInput{
		Name:      " 2026 Season ",
		Year:      2026,
		StartDate: day(300),
		Activate:  true,
	})
	if err != nil {
		t.Fatalf("create season: %v", err)
	}
	if created.ID != "gen-1" || created.Name != "2026 Season" || !created.IsActive {
		t.Fatalf("unexpected created season: %+v", created)
	}

	current, err := f.seasonService.Resolve(ctx, "")
	if err != nil {
		t.Fatalf("resolve season: %v", err)
	}
	if current.ID != "gen-1" {
		t.Fatalf("new season should be active, got %s", current.ID)
	}

	previous, err := f.seasonService.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("get previous season: %v", err)
	}
	if previous.IsActive {
		t.Fatalf("only one season may stay active")
	}

	f.effects.Wait()

	actions := f.sink.actions()
	slices.Sort(actions)
	if !slices.Equal(actions, []string{"season.activated", "season.created"}) {
		t.Fatalf("unexpected audit actions: %v", actions)
	}
	entries, err := f.timeline.ListBySeason(ctx, "gen-1", 10)
	if err != nil {
		t.Fatalf("list timeline: %v", err)
	}
	if len(entries) != 1 || entries[0].Kind != timeline.KindSeasonActivated {
		t.Fatalf("unexpected timeline entries: %+v", entries)
	}
}

func TestSeasonService_CreateErrors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newFixture(t, scenarioSeasons(), nil)

	if _, err := f.seasonService.Create(ctx, "player-1", CreateSeasonInput{Name: "x", Year: 2026, StartDate: day(1)}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("non commissioner: got=%v want=%v", err, ErrForbidden)
	}
	if _, err := f.seasonService.Create(ctx, "commish", CreateSeasonInput{Name: "", Year: 2026, StartDate: day(1)}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("missing name: got=%v want=%v", err, ErrInvalidInput)
	}
	end := day(0)
	if _, err := f.seasonService.Create(ctx, "commish", CreateSeasonInput{Name: "x", Year: 2026, StartDate: day(1), EndDate: &end}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("end before start: got=%v want=%v", err, ErrInvalidInput)
	}
}

func TestSeasonService_ActivateExisting(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newFixture(t, scenarioSeasons(), nil)

	activated, err := f.seasonService.Activate(ctx, "commish", "s0")
	if err != nil {
		t.Fatalf("activate season: %v", err)
	}
	if !activated.IsActive {
		t.Fatalf("season should be active")
	}

	current, err := f.seasonService.Resolve(ctx, "")
	if err != nil {
		t.Fatalf("resolve season: %v", err)
	}
	if current.ID != "s0" {
		t.Fatalf("unexpected current season: %s", current.ID)
	}

	if _, err := f.seasonService.Activate(ctx, "commish", "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown season: got=%v want=%v", err, ErrNotFound)
	}
}
