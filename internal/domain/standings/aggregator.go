package standings

import (
	"sort"
	"strings"
	"time"

	"github.com/riskibarqy/golf-league/internal/domain/match"
)

type formEntry struct {
	playedOn time.Time
	points   float64
}

type accumulator struct {
	record Record
	form   []formEntry
}

func (a *accumulator) add(points float64, playedOn time.Time, outcome Outcome) {
	a.record.MatchesPlayed++
	a.record.PointsTotal += points
	a.record.PointsPerMatch = a.record.PointsTotal / float64(a.record.MatchesPlayed)
	switch outcome {
	case OutcomeWin:
		a.record.Wins++
	case OutcomeLoss:
		a.record.Losses++
	case OutcomeTie:
		a.record.Ties++
	}
	a.form = append(a.form, formEntry{playedOn: playedOn, points: points})
}

func (a *accumulator) finish() Record {
	out := a.record
	form := append([]formEntry(nil), a.form...)
	sort.SliceStable(form, func(i, j int) bool {
		return form[i].playedOn.After(form[j].playedOn)
	})
	if len(form) > RecentFormSize {
		form = form[:RecentFormSize]
	}
	out.RecentForm = make([]float64, 0, len(form))
	for _, item := range form {
		out.RecentForm = append(out.RecentForm, item.points)
	}
	return out
}

// ScoreMatch groups a match's points by team and determines its winner.
// A sole strict maximum wins; several teams at the maximum all tie and every
// other team loses. Participants without a team receive no outcome.
func ScoreMatch(item match.Match, idx Index) MatchResult {
	result := MatchResult{
		MatchID:  item.ID,
		SeasonID: item.SeasonID,
		PlayedOn: item.PlayedOn,
		Format:   item.Format,
		Status:   item.Status,
		Course:   item.Course,
		Notes:    item.Notes,
	}

	totals := make(map[string]float64)
	teamOrder := make([]string, 0, len(item.Participants))
	for _, participant := range item.Participants {
		if participant.TeamID == "" {
			continue
		}
		if _, exists := totals[participant.TeamID]; !exists {
			teamOrder = append(teamOrder, participant.TeamID)
		}
		totals[participant.TeamID] += participant.PointsAwarded
	}

	outcomes := make(map[string]Outcome, len(totals))
	if len(totals) > 0 {
		maxTotal := 0.0
		for i, teamID := range teamOrder {
			if i == 0 || totals[teamID] > maxTotal {
				maxTotal = totals[teamID]
			}
		}

		winners := make([]string, 0, 1)
		for _, teamID := range teamOrder {
			if totals[teamID] == maxTotal {
				winners = append(winners, teamID)
			}
		}

		topOutcome := OutcomeWin
		if len(winners) > 1 {
			topOutcome = OutcomeTie
			result.IsTie = true
		} else {
			result.WinningTeamID = winners[0]
		}
		for _, teamID := range teamOrder {
			if totals[teamID] == maxTotal {
				outcomes[teamID] = topOutcome
			} else {
				outcomes[teamID] = OutcomeLoss
			}
		}
	}

	result.Teams = make([]TeamTotal, 0, len(teamOrder))
	for _, teamID := range teamOrder {
		result.TotalPoints += totals[teamID]
		result.Teams = append(result.Teams, TeamTotal{
			TeamID:  teamID,
			Name:    idx.TeamName(teamID),
			Points:  totals[teamID],
			Outcome: outcomes[teamID],
		})
	}
	sort.SliceStable(result.Teams, func(i, j int) bool {
		if result.Teams[i].Points != result.Teams[j].Points {
			return result.Teams[i].Points > result.Teams[j].Points
		}
		return result.Teams[i].TeamID < result.Teams[j].TeamID
	})

	result.Participants = make([]ParticipantResult, 0, len(item.Participants))
	for _, participant := range item.Participants {
		outcome := OutcomeNone
		if participant.TeamID != "" {
			outcome = outcomes[participant.TeamID]
		}
		result.Participants = append(result.Participants, ParticipantResult{
			UserID:        participant.UserID,
			DisplayName:   idx.PlayerName(participant.UserID),
			TeamID:        participant.TeamID,
			PointsAwarded: participant.PointsAwarded,
			Strokes:       participant.Strokes,
			Position:      participant.Position,
			IsWinner:      outcome == OutcomeWin,
			Outcome:       outcome,
		})
	}

	return result
}

// Aggregate folds a season's matches into per-match results and season
// records for every player and team. Voided matches are skipped. Every
// indexed player and team appears in the output, including those with no
// matches; participants absent from the index are added as they appear.
func Aggregate(matches []match.Match, idx Index) SeasonAggregate {
	players := make(map[string]*accumulator, len(idx.playerOrder))
	playerOrder := append([]string(nil), idx.playerOrder...)
	for _, playerID := range idx.playerOrder {
		players[playerID] = &accumulator{}
	}

	teams := make(map[string]*accumulator, len(idx.teamOrder))
	teamOrder := append([]string(nil), idx.teamOrder...)
	for _, teamID := range idx.teamOrder {
		teams[teamID] = &accumulator{}
	}

	out := SeasonAggregate{Matches: make([]MatchResult, 0, len(matches))}
	for _, item := range matches {
		if item.IsVoided() {
			continue
		}

		result := ScoreMatch(item, idx)
		out.Matches = append(out.Matches, result)

		for _, participant := range result.Participants {
			acc, ok := players[participant.UserID]
			if !ok {
				acc = &accumulator{}
				players[participant.UserID] = acc
				playerOrder = append(playerOrder, participant.UserID)
			}
			acc.add(participant.PointsAwarded, result.PlayedOn, participant.Outcome)
		}

		for _, total := range result.Teams {
			acc, ok := teams[total.TeamID]
			if !ok {
				acc = &accumulator{}
				teams[total.TeamID] = acc
				teamOrder = append(teamOrder, total.TeamID)
			}
			acc.add(total.Points, result.PlayedOn, total.Outcome)
		}
	}

	out.Players = make([]PlayerSeasonStats, 0, len(playerOrder))
	for _, playerID := range playerOrder {
		profile := idx.Players[playerID]
		out.Players = append(out.Players, PlayerSeasonStats{
			PlayerID:    playerID,
			DisplayName: idx.PlayerName(playerID),
			Username:    profile.Username,
			TeamID:      profile.TeamID,
			Record:      players[playerID].finish(),
		})
	}
	sort.SliceStable(out.Players, func(i, j int) bool {
		return lessByPoints(out.Players[i].Record, out.Players[j].Record,
			out.Players[i].DisplayName, out.Players[j].DisplayName,
			out.Players[i].PlayerID, out.Players[j].PlayerID)
	})

	out.Teams = make([]TeamSeasonStats, 0, len(teamOrder))
	for _, teamID := range teamOrder {
		stored := idx.Teams[teamID]
		out.Teams = append(out.Teams, TeamSeasonStats{
			TeamID: teamID,
			Name:   idx.TeamName(teamID),
			Slug:   stored.Slug,
			Color:  stored.Color,
			Record: teams[teamID].finish(),
		})
	}
	sort.SliceStable(out.Teams, func(i, j int) bool {
		return lessByPoints(out.Teams[i].Record, out.Teams[j].Record,
			out.Teams[i].Name, out.Teams[j].Name,
			out.Teams[i].TeamID, out.Teams[j].TeamID)
	})

	return out
}

func lessByPoints(a, b Record, nameA, nameB, idA, idB string) bool {
	if a.PointsTotal != b.PointsTotal {
		return a.PointsTotal > b.PointsTotal
	}
	lowerA, lowerB := strings.ToLower(nameA), strings.ToLower(nameB)
	if lowerA != lowerB {
		return lowerA < lowerB
	}
	return idA < idB
}

// FilterPlayers narrows a sorted leaderboard without reordering it.
func FilterPlayers(items []PlayerSeasonStats, filter LeaderboardFilter) []PlayerSeasonStats {
	out := make([]PlayerSeasonStats, 0, len(items))
	for _, item := range items {
		if item.MatchesPlayed < filter.MinMatches {
			continue
		}
		if filter.TeamID != "" && item.TeamID != filter.TeamID {
			continue
		}
		out = append(out, item)
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
	}
	return out
}
