package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/fplpulse/fpl-pulse/internal/platform/logging"
)

const (
	DefaultPriceChangeLimit  = 20
	DefaultDifferentialLimit = 20
	DefaultMaxOwnership      = 5.0
	DefaultTopPlayerLimit    = 10
)

type PriceChange struct {
	ID        int
	Name      string
	TeamID    int
	Position  int
	NowCost   float64
	Change    float64
	Ownership float64
}

type Differential struct {
	ID            int
	Name          string
	TeamID        int
	Position      int
	NowCost       float64
	Ownership     float64
	Form          float64
	PointsPerGame float64
}

type TopPlayer struct {
	ID          int
	Name        string
	TeamID      int
	Position    int
	NowCost     float64
	TotalPoints int
	Ownership   float64
}

// PlayerInsightsService derives the player-centric views from a fresh
// bootstrap snapshot.
type PlayerInsightsService struct {
	bootstrap BootstrapProvider
	logger    *logging.Logger
}

func NewPlayerInsightsService(bootstrap BootstrapProvider, logger *logging.Logger) *PlayerInsightsService {
	if logger == nil {
		logger = logging.Default()
	}
	return &PlayerInsightsService{
		bootstrap: bootstrap,
		logger:    logger,
	}
}

// PriceChanges lists players whose price moved this gameweek, biggest swings
// first. A rise outranks a fall of equal size; beyond that upstream order is
// preserved.
func (s *PlayerInsightsService) PriceChanges(ctx context.Context, limit int) ([]PriceChange, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerInsightsService.PriceChanges")
	defer span.End()

	data, err := s.bootstrap.FetchBootstrap(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch bootstrap: %w", err)
	}

	out := make([]PriceChange, 0, len(data.Players)/8)
	for _, player := range data.Players {
		if player.CostChangeEvent == 0 {
			continue
		}
		out = append(out, PriceChange{
			ID:        player.ID,
			Name:      playerName(player),
			TeamID:    player.TeamID,
			Position:  player.Position,
			NowCost:   tenthsToMillions(player.NowCost),
			Change:    tenthsToMillions(player.CostChangeEvent),
			Ownership: parseFloatOrZero(player.SelectedByPercent),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		absI, absJ := math.Abs(out[i].Change), math.Abs(out[j].Change)
		if absI != absJ {
			return absI > absJ
		}
		return out[i].Change > out[j].Change
	})

	return truncatePriceChanges(out, limit), nil
}

// Differentials lists low-owned players ranked by form. Players whose
// ownership string does not parse are excluded: without a readable ownership
// figure the low-ownership filter cannot vouch for them.
func (s *PlayerInsightsService) Differentials(ctx context.Context, limit int, maxOwnership float64) ([]Differential, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerInsightsService.Differentials")
	defer span.End()

	data, err := s.bootstrap.FetchBootstrap(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch bootstrap: %w", err)
	}

	out := make([]Differential, 0, len(data.Players)/4)
	for _, player := range data.Players {
		ownership, err := strconv.ParseFloat(strings.TrimSpace(player.SelectedByPercent), 64)
		if err != nil {
			continue
		}
		if ownership > maxOwnership {
			continue
		}
		out = append(out, Differential{
			ID:            player.ID,
			Name:          playerName(player),
			TeamID:        player.TeamID,
			Position:      player.Position,
			NowCost:       tenthsToMillions(player.NowCost),
			Ownership:     ownership,
			Form:          parseFloatOrZero(player.Form),
			PointsPerGame: parseFloatOrZero(player.PointsPerGame),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Form != out[j].Form {
			return out[i].Form > out[j].Form
		}
		return out[i].PointsPerGame > out[j].PointsPerGame
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// TopPlayers lists the season's highest scorers. An unreadable ownership
// string does not disqualify a player here; it is reported as 0.0.
func (s *PlayerInsightsService) TopPlayers(ctx context.Context, limit int) ([]TopPlayer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerInsightsService.TopPlayers")
	defer span.End()

	data, err := s.bootstrap.FetchBootstrap(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch bootstrap: %w", err)
	}

	players := append([]Player(nil), data.Players...)
	sort.SliceStable(players, func(i, j int) bool {
		return players[i].TotalPoints > players[j].TotalPoints
	})
	if limit > 0 && len(players) > limit {
		players = players[:limit]
	}

	out := make([]TopPlayer, 0, len(players))
	for _, player := range players {
		out = append(out, TopPlayer{
			ID:          player.ID,
			Name:        playerName(player),
			TeamID:      player.TeamID,
			Position:    player.Position,
			NowCost:     tenthsToMillions(player.NowCost),
			TotalPoints: player.TotalPoints,
			Ownership:   parseFloatOrZero(player.SelectedByPercent),
		})
	}
	return out, nil
}

func truncatePriceChanges(items []PriceChange, limit int) []PriceChange {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}

func playerName(player Player) string {
	return strings.TrimSpace(player.FirstName + " " + player.SecondName)
}

// tenthsToMillions converts the upstream integer price unit (tenths of a
// million) into the display unit.
func tenthsToMillions(tenths int) float64 {
	return float64(tenths) / 10.0
}

func parseFloatOrZero(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return value
}
