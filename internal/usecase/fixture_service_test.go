package usecase

import (
	"context"
	"errors"
	"testing"
)

func intPtr(v int) *int { return &v }

func tickerBootstrap() BootstrapData {
	return BootstrapData{
		Events: []Event{{ID: 10, Name: "Gameweek 10", IsCurrent: true}},
		Teams: []Team{
			{ID: 1, Name: "Arsenal"},
			{ID: 2, Name: "Brentford"},
			{ID: 3, Name: "Chelsea"},
		},
	}
}

func TestFixtureService_Ticker(t *testing.T) {
	t.Parallel()

	fixtures := []Fixture{
		{Event: intPtr(10), HomeTeamID: 1, AwayTeamID: 2, HomeDifficulty: 2, AwayDifficulty: 4},
		{Event: intPtr(11), HomeTeamID: 3, AwayTeamID: 1, HomeDifficulty: 3, AwayDifficulty: 3},
		{Event: intPtr(12), HomeTeamID: 2, AwayTeamID: 3, HomeDifficulty: 5, AwayDifficulty: 2},
		{Event: nil, HomeTeamID: 1, AwayTeamID: 3},
	}
	service := NewFixtureService(stubBootstrapProvider{data: tickerBootstrap()}, stubFixtureProvider{fixtures: fixtures}, nil)

	got, err := service.Ticker(context.Background(), 2, 0)
	if err != nil {
		t.Fatalf("ticker: %v", err)
	}
	if len(got.Gameweeks) != 2 || got.Gameweeks[0] != 10 || got.Gameweeks[1] != 11 {
		t.Fatalf("unexpected gameweeks: %v", got.Gameweeks)
	}
	if len(got.Teams) != 3 {
		t.Fatalf("expected 3 teams, got %d", len(got.Teams))
	}
	if got.Teams[0].TeamName != "Arsenal" || got.Teams[1].TeamName != "Brentford" {
		t.Fatalf("expected bootstrap team order, got %q %q", got.Teams[0].TeamName, got.Teams[1].TeamName)
	}

	arsenal := got.Teams[0]
	if len(arsenal.Fixtures) != 2 {
		t.Fatalf("expected one slot per gameweek, got %d", len(arsenal.Fixtures))
	}
	if arsenal.Fixtures[0] == nil || arsenal.Fixtures[0].Opponent != "Brentford" || !arsenal.Fixtures[0].Home || arsenal.Fixtures[0].Difficulty != 2 {
		t.Fatalf("unexpected gw10 slot: %+v", arsenal.Fixtures[0])
	}
	if arsenal.Fixtures[1] == nil || arsenal.Fixtures[1].Opponent != "Chelsea" || arsenal.Fixtures[1].Home || arsenal.Fixtures[1].Difficulty != 3 {
		t.Fatalf("unexpected gw11 slot: %+v", arsenal.Fixtures[1])
	}

	// Brentford has no gw11 match: blank slot stays nil.
	if got.Teams[1].Fixtures[1] != nil {
		t.Fatalf("expected blank slot, got %+v", got.Teams[1].Fixtures[1])
	}
}

func TestFixtureService_Ticker_SingleColumnWithOffset(t *testing.T) {
	t.Parallel()

	fixtures := []Fixture{
		{Event: intPtr(12), HomeTeamID: 2, AwayTeamID: 3, HomeDifficulty: 5, AwayDifficulty: 2},
	}
	service := NewFixtureService(stubBootstrapProvider{data: tickerBootstrap()}, stubFixtureProvider{fixtures: fixtures}, nil)

	got, err := service.Ticker(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("ticker: %v", err)
	}
	if len(got.Gameweeks) != 1 || got.Gameweeks[0] != 12 {
		t.Fatalf("unexpected gameweeks: %v", got.Gameweeks)
	}
	if got.Teams[0].Fixtures[0] != nil {
		t.Fatalf("expected nil slot for team without a match")
	}
	if got.Teams[1].Fixtures[0] == nil || got.Teams[1].Fixtures[0].Opponent != "Chelsea" {
		t.Fatalf("unexpected slot: %+v", got.Teams[1].Fixtures[0])
	}
}

func TestFixtureService_Ticker_FixturesFailureDegradesToEmpty(t *testing.T) {
	t.Parallel()

	service := NewFixtureService(
		stubBootstrapProvider{data: tickerBootstrap()},
		stubFixtureProvider{err: errors.New("fixtures down")},
		nil,
	)

	got, err := service.Ticker(context.Background(), 6, 0)
	if err != nil {
		t.Fatalf("expected degraded success, got %v", err)
	}
	if got.Gameweeks == nil || len(got.Gameweeks) != 0 {
		t.Fatalf("expected empty gameweeks slice, got %#v", got.Gameweeks)
	}
	if got.Teams == nil || len(got.Teams) != 0 {
		t.Fatalf("expected empty teams slice, got %#v", got.Teams)
	}
}

func TestFixtureService_Ticker_BootstrapFailurePropagates(t *testing.T) {
	t.Parallel()

	upstreamErr := errors.New("bootstrap down")
	service := NewFixtureService(stubBootstrapProvider{err: upstreamErr}, stubFixtureProvider{}, nil)

	if _, err := service.Ticker(context.Background(), 6, 0); !errors.Is(err, upstreamErr) {
		t.Fatalf("expected wrapped bootstrap error, got %v", err)
	}
}

func TestFixtureService_Ticker_NoEvents(t *testing.T) {
	t.Parallel()

	service := NewFixtureService(stubBootstrapProvider{}, stubFixtureProvider{}, nil)

	if _, err := service.Ticker(context.Background(), 6, 0); !errors.Is(err, ErrNoGameweekData) {
		t.Fatalf("expected ErrNoGameweekData, got %v", err)
	}
}

func TestFixtureService_NextFixtures(t *testing.T) {
	t.Parallel()

	fixtures := []Fixture{
		{Event: intPtr(10), HomeTeamID: 1, AwayTeamID: 2, HomeDifficulty: 2, AwayDifficulty: 4, KickoffTime: "2026-01-17T15:00:00Z"},
		{Event: intPtr(10), HomeTeamID: 3, AwayTeamID: 99, HomeDifficulty: 3, AwayDifficulty: 3},
		{Event: intPtr(11), HomeTeamID: 2, AwayTeamID: 3},
		{Event: nil, HomeTeamID: 1, AwayTeamID: 3},
	}
	service := NewFixtureService(stubBootstrapProvider{data: tickerBootstrap()}, stubFixtureProvider{fixtures: fixtures}, nil)

	got, err := service.NextFixtures(context.Background())
	if err != nil {
		t.Fatalf("next fixtures: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 fixtures in current gameweek, got %d", len(got))
	}
	if got[0].HomeTeam != "Arsenal" || got[0].AwayTeam != "Brentford" || got[0].KickoffTime != "2026-01-17T15:00:00Z" {
		t.Fatalf("unexpected fixture: %+v", got[0])
	}
	// Unknown team id maps to an empty name.
	if got[1].AwayTeam != "" {
		t.Fatalf("expected empty name for unknown team, got %q", got[1].AwayTeam)
	}
}

func TestFixtureService_NextFixtures_FixturesFailureDegradesToEmpty(t *testing.T) {
	t.Parallel()

	service := NewFixtureService(
		stubBootstrapProvider{data: tickerBootstrap()},
		stubFixtureProvider{err: errors.New("fixtures down")},
		nil,
	)

	got, err := service.NextFixtures(context.Background())
	if err != nil {
		t.Fatalf("expected degraded success, got %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty fixture list, got %#v", got)
	}
}
