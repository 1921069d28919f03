package standings

import (
	"github.com/riskibarqy/golf-league/internal/domain/player"
	"github.com/riskibarqy/golf-league/internal/domain/team"
)

// Index is the roster lookup shared by the reducers.
type Index struct {
	Teams   map[string]team.Team
	Players map[string]player.Profile

	teamOrder   []string
	playerOrder []string
}

func NewIndex(teams []team.Team, profiles []player.Profile) Index {
	idx := Index{
		Teams:       make(map[string]team.Team, len(teams)),
		Players:     make(map[string]player.Profile, len(profiles)),
		teamOrder:   make([]string, 0, len(teams)),
		playerOrder: make([]string, 0, len(profiles)),
	}
	for _, item := range teams {
		if _, exists := idx.Teams[item.ID]; !exists {
			idx.teamOrder = append(idx.teamOrder, item.ID)
		}
		idx.Teams[item.ID] = item
	}
	for _, item := range profiles {
		if _, exists := idx.Players[item.ID]; !exists {
			idx.playerOrder = append(idx.playerOrder, item.ID)
		}
		idx.Players[item.ID] = item
	}
	return idx
}

func (idx Index) PlayerName(playerID string) string {
	if item, ok := idx.Players[playerID]; ok {
		return item.DisplayName()
	}
	return playerID
}

func (idx Index) TeamName(teamID string) string {
	if item, ok := idx.Teams[teamID]; ok && item.Name != "" {
		return item.Name
	}
	return teamID
}
