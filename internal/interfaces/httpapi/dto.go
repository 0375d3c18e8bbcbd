package httpapi

import "github.com/fplpulse/fpl-pulse/internal/usecase"

// DTO shapes mirror the JSON contract consumed by the bundled front end.

type priceChangeDTO struct {
	ID                int     `json:"id"`
	Name              string  `json:"name"`
	Team              int     `json:"team"`
	Position          int     `json:"position"`
	NowCost           float64 `json:"now_cost"`
	PriceChange       float64 `json:"price_change"`
	SelectedByPercent float64 `json:"selected_by_percent"`
}

type differentialDTO struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Team          int     `json:"team"`
	Position      int     `json:"position"`
	NowCost       float64 `json:"now_cost"`
	Ownership     float64 `json:"ownership"`
	Form          float64 `json:"form"`
	PointsPerGame float64 `json:"points_per_game"`
}

type topPlayerDTO struct {
	ID                int     `json:"id"`
	Name              string  `json:"name"`
	Team              int     `json:"team"`
	Position          int     `json:"position"`
	NowCost           float64 `json:"now_cost"`
	TotalPoints       int     `json:"total_points"`
	SelectedByPercent float64 `json:"selected_by_percent"`
}

type chipPlayDTO struct {
	ChipName  string `json:"chip_name"`
	NumPlayed int    `json:"num_played"`
}

type gameweekOverviewDTO struct {
	ID                int           `json:"id"`
	Name              string        `json:"name"`
	AverageEntryScore *int          `json:"average_entry_score"`
	HighestScore      *int          `json:"highest_score"`
	ChipPlays         []chipPlayDTO `json:"chip_plays"`
}

type tickerEntryDTO struct {
	Opponent   string `json:"opponent"`
	Home       bool   `json:"home"`
	Difficulty int    `json:"difficulty"`
}

type teamTickerDTO struct {
	TeamName string            `json:"team_name"`
	Fixtures []*tickerEntryDTO `json:"fixtures"`
}

type tickerDTO struct {
	GWs  []int           `json:"gws"`
	Data []teamTickerDTO `json:"data"`
}

type nextFixtureDTO struct {
	HomeTeam       string  `json:"home_team"`
	AwayTeam       string  `json:"away_team"`
	KickoffTime    *string `json:"kickoff_time"`
	HomeDifficulty int     `json:"home_difficulty"`
	AwayDifficulty int     `json:"away_difficulty"`
}

func priceChangeToDTO(item usecase.PriceChange) priceChangeDTO {
	return priceChangeDTO{
		ID:                item.ID,
		Name:              item.Name,
		Team:              item.TeamID,
		Position:          item.Position,
		NowCost:           item.NowCost,
		PriceChange:       item.Change,
		SelectedByPercent: item.Ownership,
	}
}

func differentialToDTO(item usecase.Differential) differentialDTO {
	return differentialDTO{
		ID:            item.ID,
		Name:          item.Name,
		Team:          item.TeamID,
		Position:      item.Position,
		NowCost:       item.NowCost,
		Ownership:     item.Ownership,
		Form:          item.Form,
		PointsPerGame: item.PointsPerGame,
	}
}

func topPlayerToDTO(item usecase.TopPlayer) topPlayerDTO {
	return topPlayerDTO{
		ID:                item.ID,
		Name:              item.Name,
		Team:              item.TeamID,
		Position:          item.Position,
		NowCost:           item.NowCost,
		TotalPoints:       item.TotalPoints,
		SelectedByPercent: item.Ownership,
	}
}

func gameweekOverviewToDTO(overview usecase.GameweekOverview) gameweekOverviewDTO {
	chipPlays := make([]chipPlayDTO, 0, len(overview.ChipPlays))
	for _, chip := range overview.ChipPlays {
		chipPlays = append(chipPlays, chipPlayDTO{ChipName: chip.ChipName, NumPlayed: chip.NumPlayed})
	}
	return gameweekOverviewDTO{
		ID:                overview.ID,
		Name:              overview.Name,
		AverageEntryScore: overview.AverageEntryScore,
		HighestScore:      overview.HighestScore,
		ChipPlays:         chipPlays,
	}
}

func tickerToDTO(view usecase.TickerView) tickerDTO {
	data := make([]teamTickerDTO, 0, len(view.Teams))
	for _, team := range view.Teams {
		fixtures := make([]*tickerEntryDTO, len(team.Fixtures))
		for i, entry := range team.Fixtures {
			if entry == nil {
				continue
			}
			fixtures[i] = &tickerEntryDTO{
				Opponent:   entry.Opponent,
				Home:       entry.Home,
				Difficulty: entry.Difficulty,
			}
		}
		data = append(data, teamTickerDTO{TeamName: team.TeamName, Fixtures: fixtures})
	}
	return tickerDTO{GWs: view.Gameweeks, Data: data}
}

func nextFixtureToDTO(fixture usecase.NextFixture) nextFixtureDTO {
	dto := nextFixtureDTO{
		HomeTeam:       fixture.HomeTeam,
		AwayTeam:       fixture.AwayTeam,
		HomeDifficulty: fixture.HomeDifficulty,
		AwayDifficulty: fixture.AwayDifficulty,
	}
	if fixture.KickoffTime != "" {
		kickoff := fixture.KickoffTime
		dto.KickoffTime = &kickoff
	}
	return dto
}
