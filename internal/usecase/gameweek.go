package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/fplpulse/fpl-pulse/internal/platform/logging"
)

// ResolveCurrentEvent picks the most relevant gameweek from a bootstrap
// snapshot. Priority order: the event flagged current, then the one flagged
// next, then the first event whose deadline is still in the future, then the
// first event (pre-season, before any flags are set). Returns false only when
// the snapshot carries no events at all.
func ResolveCurrentEvent(events []Event, now time.Time) (Event, bool) {
	for _, event := range events {
		if event.IsCurrent {
			return event, true
		}
	}
	for _, event := range events {
		if event.IsNext {
			return event, true
		}
	}
	for _, event := range events {
		if event.DeadlineTime == "" {
			continue
		}
		deadline, err := time.Parse(time.RFC3339, event.DeadlineTime)
		if err != nil {
			continue
		}
		if deadline.After(now) {
			return event, true
		}
	}
	if len(events) > 0 {
		return events[0], true
	}
	return Event{}, false
}

type GameweekOverview struct {
	ID                int
	Name              string
	AverageEntryScore *int
	HighestScore      *int
	ChipPlays         []ChipPlay
}

type GameweekService struct {
	bootstrap BootstrapProvider
	logger    *logging.Logger
	now       func() time.Time
}

func NewGameweekService(bootstrap BootstrapProvider, logger *logging.Logger) *GameweekService {
	if logger == nil {
		logger = logging.Default()
	}
	return &GameweekService{
		bootstrap: bootstrap,
		logger:    logger,
		now:       time.Now,
	}
}

// Overview returns the resolved gameweek's headline stats and chip usage.
func (s *GameweekService) Overview(ctx context.Context) (GameweekOverview, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameweekService.Overview")
	defer span.End()

	data, err := s.bootstrap.FetchBootstrap(ctx)
	if err != nil {
		return GameweekOverview{}, fmt.Errorf("fetch bootstrap: %w", err)
	}

	current, ok := ResolveCurrentEvent(data.Events, s.now().UTC())
	if !ok {
		return GameweekOverview{}, fmt.Errorf("%w: bootstrap snapshot has no events", ErrNoGameweekData)
	}

	chipPlays := current.ChipPlays
	if chipPlays == nil {
		chipPlays = []ChipPlay{}
	}

	return GameweekOverview{
		ID:                current.ID,
		Name:              current.Name,
		AverageEntryScore: current.AverageEntryScore,
		HighestScore:      current.HighestScore,
		ChipPlays:         chipPlays,
	}, nil
}
