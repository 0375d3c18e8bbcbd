package usecase

import (
	"context"
	"errors"
	"testing"
	"time"
)

type stubBootstrapProvider struct {
	data BootstrapData
	err  error
}

func (s stubBootstrapProvider) FetchBootstrap(ctx context.Context) (BootstrapData, error) {
	return s.data, s.err
}

type stubFixtureProvider struct {
	fixtures []Fixture
	err      error
}

func (s stubFixtureProvider) FetchFixtures(ctx context.Context) ([]Fixture, error) {
	return s.fixtures, s.err
}

func TestResolveCurrentEvent(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	t.Run("current flag wins regardless of position", func(t *testing.T) {
		events := []Event{
			{ID: 1, Name: "Gameweek 1"},
			{ID: 2, Name: "Gameweek 2", IsNext: true},
			{ID: 3, Name: "Gameweek 3", IsCurrent: true},
		}
		got, ok := ResolveCurrentEvent(events, now)
		if !ok || got.ID != 3 {
			t.Fatalf("expected event 3, got %+v ok=%v", got, ok)
		}
	})

	t.Run("next flag when nothing is current", func(t *testing.T) {
		events := []Event{
			{ID: 1},
			{ID: 2, IsNext: true},
		}
		got, ok := ResolveCurrentEvent(events, now)
		if !ok || got.ID != 2 {
			t.Fatalf("expected event 2, got %+v ok=%v", got, ok)
		}
	})

	t.Run("first future deadline when no flags set", func(t *testing.T) {
		events := []Event{
			{ID: 1, DeadlineTime: "2026-01-01T11:00:00Z"},
			{ID: 2, DeadlineTime: "2026-01-17T11:00:00Z"},
			{ID: 3, DeadlineTime: "2026-01-24T11:00:00Z"},
		}
		got, ok := ResolveCurrentEvent(events, now)
		if !ok || got.ID != 2 {
			t.Fatalf("expected event 2, got %+v ok=%v", got, ok)
		}
	})

	t.Run("unparseable deadline is skipped", func(t *testing.T) {
		events := []Event{
			{ID: 1, DeadlineTime: "not-a-timestamp"},
			{ID: 2, DeadlineTime: "2026-01-17T11:00:00Z"},
		}
		got, ok := ResolveCurrentEvent(events, now)
		if !ok || got.ID != 2 {
			t.Fatalf("expected event 2, got %+v ok=%v", got, ok)
		}
	})

	t.Run("all deadlines past falls back to first event", func(t *testing.T) {
		events := []Event{
			{ID: 1, DeadlineTime: "2025-08-16T11:00:00Z"},
			{ID: 2, DeadlineTime: "2025-08-23T11:00:00Z"},
		}
		got, ok := ResolveCurrentEvent(events, now)
		if !ok || got.ID != 1 {
			t.Fatalf("expected event 1, got %+v ok=%v", got, ok)
		}
	})

	t.Run("no events", func(t *testing.T) {
		if _, ok := ResolveCurrentEvent(nil, now); ok {
			t.Fatalf("expected no event for empty snapshot")
		}
	})
}

func TestGameweekService_Overview(t *testing.T) {
	t.Parallel()

	average := 52
	highest := 121
	provider := stubBootstrapProvider{data: BootstrapData{
		Events: []Event{{
			ID:                20,
			Name:              "Gameweek 20",
			IsCurrent:         true,
			AverageEntryScore: &average,
			HighestScore:      &highest,
			ChipPlays: []ChipPlay{
				{ChipName: "bboost", NumPlayed: 144000},
			},
		}},
	}}

	service := NewGameweekService(provider, nil)
	got, err := service.Overview(context.Background())
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if got.ID != 20 || got.Name != "Gameweek 20" {
		t.Fatalf("unexpected gameweek: %+v", got)
	}
	if got.AverageEntryScore == nil || *got.AverageEntryScore != 52 {
		t.Fatalf("unexpected average score: %v", got.AverageEntryScore)
	}
	if len(got.ChipPlays) != 1 || got.ChipPlays[0].ChipName != "bboost" {
		t.Fatalf("unexpected chip plays: %+v", got.ChipPlays)
	}
}

func TestGameweekService_Overview_NilChipPlaysBecomeEmpty(t *testing.T) {
	t.Parallel()

	provider := stubBootstrapProvider{data: BootstrapData{
		Events: []Event{{ID: 1, Name: "Gameweek 1", IsCurrent: true}},
	}}

	service := NewGameweekService(provider, nil)
	got, err := service.Overview(context.Background())
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if got.ChipPlays == nil || len(got.ChipPlays) != 0 {
		t.Fatalf("expected empty chip plays slice, got %#v", got.ChipPlays)
	}
}

func TestGameweekService_Overview_NoEvents(t *testing.T) {
	t.Parallel()

	service := NewGameweekService(stubBootstrapProvider{}, nil)
	_, err := service.Overview(context.Background())
	if !errors.Is(err, ErrNoGameweekData) {
		t.Fatalf("expected ErrNoGameweekData, got %v", err)
	}
}

func TestGameweekService_Overview_BootstrapFailure(t *testing.T) {
	t.Parallel()

	upstreamErr := errors.New("boom")
	service := NewGameweekService(stubBootstrapProvider{err: upstreamErr}, nil)
	_, err := service.Overview(context.Background())
	if !errors.Is(err, upstreamErr) {
		t.Fatalf("expected wrapped upstream error, got %v", err)
	}
}
