package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/sourcegraph/conc"

	"github.com/fplpulse/fpl-pulse/internal/platform/logging"
)

const DefaultTickerCount = 6

// TickerEntry is one team's match in one gameweek column of the ticker.
type TickerEntry struct {
	Opponent   string
	Home       bool
	Difficulty int
}

// TeamTicker holds a team's slots for the requested gameweek window, one
// entry per gameweek, nil for a blank.
type TeamTicker struct {
	TeamName string
	Fixtures []*TickerEntry
}

type TickerView struct {
	Gameweeks []int
	Teams     []TeamTicker
}

type NextFixture struct {
	HomeTeam       string
	AwayTeam       string
	KickoffTime    string
	HomeDifficulty int
	AwayDifficulty int
}

// FixtureService derives the fixture-centric views. It needs both upstream
// datasets: bootstrap for teams and the current gameweek, fixtures for the
// schedule itself.
type FixtureService struct {
	bootstrap BootstrapProvider
	fixtures  FixtureProvider
	logger    *logging.Logger
	now       func() time.Time
}

func NewFixtureService(bootstrap BootstrapProvider, fixtures FixtureProvider, logger *logging.Logger) *FixtureService {
	if logger == nil {
		logger = logging.Default()
	}
	return &FixtureService{
		bootstrap: bootstrap,
		fixtures:  fixtures,
		logger:    logger,
		now:       time.Now,
	}
}

// Ticker builds the difficulty ticker for count gameweeks starting at the
// current gameweek plus offset. A fixtures fetch failure degrades to an empty
// ticker rather than an error; a bootstrap failure propagates.
func (s *FixtureService) Ticker(ctx context.Context, count, offset int) (TickerView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.Ticker")
	defer span.End()

	data, fixtures, bootErr, fixturesErr := s.fetchBoth(ctx)
	if bootErr != nil {
		return TickerView{}, fmt.Errorf("fetch bootstrap: %w", bootErr)
	}

	current, ok := ResolveCurrentEvent(data.Events, s.now().UTC())
	if !ok {
		return TickerView{}, fmt.Errorf("%w: bootstrap snapshot has no events", ErrNoGameweekData)
	}

	if fixturesErr != nil {
		s.logger.WarnContext(ctx, "fixtures fetch failed, serving empty ticker", "error", fixturesErr)
		return TickerView{Gameweeks: []int{}, Teams: []TeamTicker{}}, nil
	}

	start := current.ID + offset
	gameweeks := make([]int, count)
	for i := range gameweeks {
		gameweeks[i] = start + i
	}

	teamNames := make(map[int]string, len(data.Teams))
	slotsByTeam := make(map[int][]*TickerEntry, len(data.Teams))
	for _, team := range data.Teams {
		teamNames[team.ID] = team.Name
		slotsByTeam[team.ID] = make([]*TickerEntry, count)
	}

	for _, fixture := range fixtures {
		if fixture.Event == nil {
			continue
		}
		column := *fixture.Event - start
		if column < 0 || column >= count {
			continue
		}
		if slots, ok := slotsByTeam[fixture.HomeTeamID]; ok {
			slots[column] = &TickerEntry{
				Opponent:   teamNames[fixture.AwayTeamID],
				Home:       true,
				Difficulty: fixture.HomeDifficulty,
			}
		}
		if slots, ok := slotsByTeam[fixture.AwayTeamID]; ok {
			slots[column] = &TickerEntry{
				Opponent:   teamNames[fixture.HomeTeamID],
				Home:       false,
				Difficulty: fixture.AwayDifficulty,
			}
		}
	}

	// Teams keep the upstream bootstrap order.
	teams := make([]TeamTicker, 0, len(data.Teams))
	for _, team := range data.Teams {
		teams = append(teams, TeamTicker{
			TeamName: team.Name,
			Fixtures: slotsByTeam[team.ID],
		})
	}

	return TickerView{Gameweeks: gameweeks, Teams: teams}, nil
}

// NextFixtures lists the current gameweek's matches. Failure handling matches
// Ticker: fixtures failure degrades to an empty list, bootstrap failure
// propagates.
func (s *FixtureService) NextFixtures(ctx context.Context) ([]NextFixture, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.NextFixtures")
	defer span.End()

	data, fixtures, bootErr, fixturesErr := s.fetchBoth(ctx)
	if bootErr != nil {
		return nil, fmt.Errorf("fetch bootstrap: %w", bootErr)
	}

	current, ok := ResolveCurrentEvent(data.Events, s.now().UTC())
	if !ok {
		return nil, fmt.Errorf("%w: bootstrap snapshot has no events", ErrNoGameweekData)
	}

	if fixturesErr != nil {
		s.logger.WarnContext(ctx, "fixtures fetch failed, serving empty fixture list", "error", fixturesErr)
		return []NextFixture{}, nil
	}

	teamNames := make(map[int]string, len(data.Teams))
	for _, team := range data.Teams {
		teamNames[team.ID] = team.Name
	}

	out := make([]NextFixture, 0, 10)
	for _, fixture := range fixtures {
		if fixture.Event == nil || *fixture.Event != current.ID {
			continue
		}
		out = append(out, NextFixture{
			HomeTeam:       teamNames[fixture.HomeTeamID],
			AwayTeam:       teamNames[fixture.AwayTeamID],
			KickoffTime:    fixture.KickoffTime,
			HomeDifficulty: fixture.HomeDifficulty,
			AwayDifficulty: fixture.AwayDifficulty,
		})
	}
	return out, nil
}

// fetchBoth issues the two independent upstream fetches concurrently and
// returns their results with separate errors so callers can apply the
// asymmetric failure policy.
func (s *FixtureService) fetchBoth(ctx context.Context) (BootstrapData, []Fixture, error, error) {
	var (
		data        BootstrapData
		bootErr     error
		fixtures    []Fixture
		fixturesErr error
	)

	var wg conc.WaitGroup
	wg.Go(func() {
		data, bootErr = s.bootstrap.FetchBootstrap(ctx)
	})
	wg.Go(func() {
		fixtures, fixturesErr = s.fixtures.FetchFixtures(ctx)
	})
	wg.Wait()

	return data, fixtures, bootErr, fixturesErr
}
