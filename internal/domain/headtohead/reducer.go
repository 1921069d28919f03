package headtohead

import (
	"fmt"
	"sort"

	"github.com/riskibarqy/golf-league/internal/domain/match"
	"github.com/riskibarqy/golf-league/internal/platform/id"
)

// ValidatePair rejects malformed ids and self-comparison.
func ValidatePair(playerID, opponentID string) error {
	if !id.Valid(playerID) {
		return fmt.Errorf("%w: player_id %q", ErrInvalidID, playerID)
	}
	if !id.Valid(opponentID) {
		return fmt.Errorf("%w: opponent_id %q", ErrInvalidID, opponentID)
	}
	if playerID == opponentID {
		return ErrSelfComparison
	}
	return nil
}

// Build reconstructs the shared match list for a pair. A nil summary is the
// valid "no history yet" result. A side missing its participant row for a
// match scores 0 for that match.
func Build(playerID, opponentID string, summary *Summary, matches []match.Match, participants []match.Participant) (Result, error) {
	if err := ValidatePair(playerID, opponentID); err != nil {
		return Result{}, err
	}

	result := Result{
		PlayerID:   playerID,
		OpponentID: opponentID,
		Matches:    []SharedMatch{},
	}
	if summary == nil {
		return result, nil
	}

	result.MatchesPlayed = summary.MatchesPlayed
	result.Wins = summary.Wins
	result.Losses = summary.Losses
	result.Ties = summary.Ties
	result.PointsFor = summary.PlayerPoints
	result.PointsAgainst = summary.OpponentPoints
	result.AverageMargin = summary.AverageMargin
	result.LastPlayedOn = summary.LastPlayedOn

	type pairPoints struct {
		player   float64
		opponent float64
	}
	points := make(map[string]pairPoints, len(summary.MatchIDs))
	for _, item := range participants {
		entry := points[item.MatchID]
		switch item.UserID {
		case playerID:
			entry.player = item.PointsAwarded
		case opponentID:
			entry.opponent = item.PointsAwarded
		default:
			continue
		}
		points[item.MatchID] = entry
	}

	byID := make(map[string]match.Match, len(matches))
	for _, item := range matches {
		byID[item.ID] = item
	}

	seen := make(map[string]struct{}, len(summary.MatchIDs))
	for _, matchID := range summary.MatchIDs {
		if _, dup := seen[matchID]; dup {
			continue
		}
		seen[matchID] = struct{}{}

		header, ok := byID[matchID]
		if !ok || header.IsVoided() {
			continue
		}
		entry := points[matchID]
		result.Matches = append(result.Matches, SharedMatch{
			MatchID:        matchID,
			PlayedOn:       header.PlayedOn,
			Format:         header.Format,
			Course:         header.Course,
			PlayerPoints:   entry.player,
			OpponentPoints: entry.opponent,
			Outcome:        compare(entry.player, entry.opponent),
		})
	}

	sort.SliceStable(result.Matches, func(i, j int) bool {
		if !result.Matches[i].PlayedOn.Equal(result.Matches[j].PlayedOn) {
			return result.Matches[i].PlayedOn.After(result.Matches[j].PlayedOn)
		}
		return result.Matches[i].MatchID < result.Matches[j].MatchID
	})

	return result, nil
}

func compare(player, opponent float64) Outcome {
	switch {
	case player == opponent:
		return OutcomeTie
	case player > opponent:
		return OutcomeWin
	default:
		return OutcomeLoss
	}
}

// Summarize derives the backing summary of a pair from raw matches. It is the
// in-process equivalent of the head_to_head_summary view.
func Summarize(seasonID, playerID, opponentID string, matches []match.Match) (Summary, bool) {
	summary := Summary{SeasonID: seasonID, PlayerID: playerID, OpponentID: opponentID}

	type shared struct {
		id       string
		playedOn int64
	}
	ordered := make([]shared, 0)
	marginTotal := 0.0
	for _, item := range matches {
		if item.IsVoided() || item.SeasonID != seasonID {
			continue
		}

		var playerRow, opponentRow *match.Participant
		for i := range item.Participants {
			switch item.Participants[i].UserID {
			case playerID:
				playerRow = &item.Participants[i]
			case opponentID:
				opponentRow = &item.Participants[i]
			}
		}
		if playerRow == nil || opponentRow == nil {
			continue
		}

		summary.MatchesPlayed++
		summary.PlayerPoints += playerRow.PointsAwarded
		summary.OpponentPoints += opponentRow.PointsAwarded
		marginTotal += playerRow.PointsAwarded - opponentRow.PointsAwarded
		switch compare(playerRow.PointsAwarded, opponentRow.PointsAwarded) {
		case OutcomeWin:
			summary.Wins++
		case OutcomeLoss:
			summary.Losses++
		default:
			summary.Ties++
		}
		if summary.LastPlayedOn == nil || item.PlayedOn.After(*summary.LastPlayedOn) {
			playedOn := item.PlayedOn
			summary.LastPlayedOn = &playedOn
		}
		ordered = append(ordered, shared{id: item.ID, playedOn: item.PlayedOn.Unix()})
	}

	if summary.MatchesPlayed == 0 {
		return Summary{}, false
	}

	summary.AverageMargin = marginTotal / float64(summary.MatchesPlayed)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].playedOn > ordered[j].playedOn })
	summary.MatchIDs = make([]string, 0, len(ordered))
	for _, item := range ordered {
		summary.MatchIDs = append(summary.MatchIDs, item.id)
	}

	return summary, true
}
