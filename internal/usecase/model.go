package usecase

import "context"

// Snapshot models decoded from the upstream bootstrap-static and fixtures
// payloads. Fields the upstream encodes as numeric strings (ownership, form,
// points per game) stay raw here; each view applies its own parse policy.

type BootstrapData struct {
	Events  []Event
	Teams   []Team
	Players []Player
}

type Event struct {
	ID                int
	Name              string
	IsCurrent         bool
	IsNext            bool
	DeadlineTime      string
	AverageEntryScore *int
	HighestScore      *int
	ChipPlays         []ChipPlay
}

type ChipPlay struct {
	ChipName  string
	NumPlayed int
}

type Team struct {
	ID   int
	Name string
}

type Player struct {
	ID                int
	FirstName         string
	SecondName        string
	TeamID            int
	Position          int
	NowCost           int
	CostChangeEvent   int
	SelectedByPercent string
	Form              string
	PointsPerGame     string
	TotalPoints       int
}

// Fixture is a single scheduled match. Event is nil for fixtures not yet
// assigned to a gameweek.
type Fixture struct {
	Event          *int
	HomeTeamID     int
	AwayTeamID     int
	HomeDifficulty int
	AwayDifficulty int
	KickoffTime    string
}

// BootstrapProvider fetches a fresh bootstrap snapshot on every call.
type BootstrapProvider interface {
	FetchBootstrap(ctx context.Context) (BootstrapData, error)
}

// FixtureProvider fetches the full-season fixture list on every call.
type FixtureProvider interface {
	FetchFixtures(ctx context.Context) ([]Fixture, error)
}
