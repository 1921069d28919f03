package participation

import (
	"math"
	"sort"
	"strings"

	"github.com/riskibarqy/golf-league/internal/domain/player"
)

// Build computes participation for every player, least engaged first.
func Build(players []player.Profile, totals []SeasonTotal, seasonMatchCount int) []Row {
	byPlayer := make(map[string]SeasonTotal, len(totals))
	for _, item := range totals {
		byPlayer[item.PlayerID] = item
	}

	rows := make([]Row, 0, len(players))
	for _, profile := range players {
		total := byPlayer[profile.ID]
		rows = append(rows, Row{
			PlayerID:          profile.ID,
			DisplayName:       profile.DisplayName(),
			TeamID:            profile.TeamID,
			MatchesPlayed:     total.MatchesPlayed,
			TotalPoints:       total.TotalPoints,
			ParticipationRate: Rate(total.MatchesPlayed, seasonMatchCount),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].MatchesPlayed != rows[j].MatchesPlayed {
			return rows[i].MatchesPlayed < rows[j].MatchesPlayed
		}
		nameI, nameJ := strings.ToLower(rows[i].DisplayName), strings.ToLower(rows[j].DisplayName)
		if nameI != nameJ {
			return nameI < nameJ
		}
		return rows[i].PlayerID < rows[j].PlayerID
	})

	return rows
}

// Rate is played/total rounded to three decimals, 0 for an empty season.
func Rate(played, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(played)/float64(total)*1000) / 1000
}
