package fpl

import "github.com/fplpulse/fpl-pulse/internal/usecase"

// Wire envelopes for the two public FPL endpoints. Field names follow the
// upstream payload; mapping functions translate into usecase models.

type bootstrapEnvelope struct {
	Events   []eventItem  `json:"events"`
	Teams    []teamItem   `json:"teams"`
	Elements []playerItem `json:"elements"`
}

type eventItem struct {
	ID                int            `json:"id"`
	Name              string         `json:"name"`
	IsCurrent         bool           `json:"is_current"`
	IsNext            bool           `json:"is_next"`
	DeadlineTime      string         `json:"deadline_time"`
	AverageEntryScore *int           `json:"average_entry_score"`
	HighestScore      *int           `json:"highest_score"`
	ChipPlays         []chipPlayItem `json:"chip_plays"`
}

type chipPlayItem struct {
	ChipName  string `json:"chip_name"`
	NumPlayed int    `json:"num_played"`
}

type teamItem struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type playerItem struct {
	ID                int    `json:"id"`
	FirstName         string `json:"first_name"`
	SecondName        string `json:"second_name"`
	Team              int    `json:"team"`
	ElementType       int    `json:"element_type"`
	NowCost           int    `json:"now_cost"`
	CostChangeEvent   int    `json:"cost_change_event"`
	SelectedByPercent string `json:"selected_by_percent"`
	Form              string `json:"form"`
	PointsPerGame     string `json:"points_per_game"`
	TotalPoints       int    `json:"total_points"`
}

type fixtureItem struct {
	Event           *int    `json:"event"`
	TeamH           int     `json:"team_h"`
	TeamA           int     `json:"team_a"`
	TeamHDifficulty int     `json:"team_h_difficulty"`
	TeamADifficulty int     `json:"team_a_difficulty"`
	KickoffTime     *string `json:"kickoff_time"`
}

func mapBootstrap(envelope bootstrapEnvelope) usecase.BootstrapData {
	data := usecase.BootstrapData{
		Events:  make([]usecase.Event, 0, len(envelope.Events)),
		Teams:   make([]usecase.Team, 0, len(envelope.Teams)),
		Players: make([]usecase.Player, 0, len(envelope.Elements)),
	}
	for _, item := range envelope.Events {
		data.Events = append(data.Events, mapEvent(item))
	}
	for _, item := range envelope.Teams {
		data.Teams = append(data.Teams, usecase.Team{ID: item.ID, Name: item.Name})
	}
	for _, item := range envelope.Elements {
		data.Players = append(data.Players, usecase.Player{
			ID:                item.ID,
			FirstName:         item.FirstName,
			SecondName:        item.SecondName,
			TeamID:            item.Team,
			Position:          item.ElementType,
			NowCost:           item.NowCost,
			CostChangeEvent:   item.CostChangeEvent,
			SelectedByPercent: item.SelectedByPercent,
			Form:              item.Form,
			PointsPerGame:     item.PointsPerGame,
			TotalPoints:       item.TotalPoints,
		})
	}
	return data
}

func mapEvent(item eventItem) usecase.Event {
	event := usecase.Event{
		ID:                item.ID,
		Name:              item.Name,
		IsCurrent:         item.IsCurrent,
		IsNext:            item.IsNext,
		DeadlineTime:      item.DeadlineTime,
		AverageEntryScore: item.AverageEntryScore,
		HighestScore:      item.HighestScore,
	}
	if len(item.ChipPlays) > 0 {
		event.ChipPlays = make([]usecase.ChipPlay, 0, len(item.ChipPlays))
		for _, chip := range item.ChipPlays {
			event.ChipPlays = append(event.ChipPlays, usecase.ChipPlay{
				ChipName:  chip.ChipName,
				NumPlayed: chip.NumPlayed,
			})
		}
	}
	return event
}

func mapFixtures(items []fixtureItem) []usecase.Fixture {
	out := make([]usecase.Fixture, 0, len(items))
	for _, item := range items {
		fixture := usecase.Fixture{
			Event:          item.Event,
			HomeTeamID:     item.TeamH,
			AwayTeamID:     item.TeamA,
			HomeDifficulty: item.TeamHDifficulty,
			AwayDifficulty: item.TeamADifficulty,
		}
		if item.KickoffTime != nil {
			fixture.KickoffTime = *item.KickoffTime
		}
		out = append(out, fixture)
	}
	return out
}
