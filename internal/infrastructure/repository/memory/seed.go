package memory

import (
	"time"

	"github.com/riskibarqy/golf-league/internal/domain/announcement"
	"github.com/riskibarqy/golf-league/internal/domain/match"
	"github.com/riskibarqy/golf-league/internal/domain/player"
	"github.com/riskibarqy/golf-league/internal/domain/season"
	"github.com/riskibarqy/golf-league/internal/domain/team"
)

const (
	SeasonID2025 = "season-2025"
	SeasonID2026 = "season-2026"

	TeamIDBirdies = "team-birdies"
	TeamIDEagles  = "team-eagles"
	TeamIDBogeys  = "team-bogeys"

	PlayerIDCommissioner = "player-commish"
)

func seedDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func SeedSeasons() []season.Season {
	end2025 := seedDate(2025, time.September, 30)
	return []season.Season{
		{
			ID:        SeasonID2025,
			Name:      "2025 Summer Season",
			Year:      2025,
			StartDate: seedDate(2025, time.April, 1),
			EndDate:   &end2025,
		},
		{
			ID:        SeasonID2026,
			Name:      "2026 Summer Season",
			Year:      2026,
			IsActive:  true,
			StartDate: seedDate(2026, time.April, 1),
		},
	}
}

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: TeamIDBirdies, SeasonID: SeasonID2026, Name: "Birdie Brigade", Slug: "birdie-brigade", Color: "#1A7F37"},
		{ID: TeamIDEagles, SeasonID: SeasonID2026, Name: "Eagle Eyes", Slug: "eagle-eyes", Color: "#0969DA"},
		{ID: TeamIDBogeys, SeasonID: SeasonID2026, Name: "Bogey Men", Slug: "bogey-men", Color: "#CF222E"},
	}
}

func SeedPlayers() []player.Profile {
	return []player.Profile{
		{ID: PlayerIDCommissioner, Username: "commish", FullName: "Casey Commissioner", Role: player.RoleCommissioner, TeamID: TeamIDBirdies},
		{ID: "player-ana", Username: "ana", FullName: "Ana Fairway", Role: player.RolePlayer, TeamID: TeamIDBirdies},
		{ID: "player-ben", Username: "ben", FullName: "Ben Bunker", Role: player.RolePlayer, TeamID: TeamIDEagles},
		{ID: "player-cho", Username: "cho", FullName: "Cho Chip", Role: player.RolePlayer, TeamID: TeamIDEagles},
		{ID: "player-dev", Username: "dev", FullName: "Dev Divot", Role: player.RolePlayer, TeamID: TeamIDBogeys},
		{ID: "player-eli", Username: "eli", FullName: "Eli Eagle", Role: player.RolePlayer},
	}
}

func SeedMatches() []match.Match {
	strokes := func(v int) *int { return &v }

	return []match.Match{
		{
			ID:       "match-0601",
			SeasonID: SeasonID2026,
			PlayedOn: seedDate(2026, time.June, 1),
			Format:   match.FormatStrokePlay,
			Status:   match.StatusValidated,
			Course:   "Pine Valley Muni",
			Participants: []match.Participant{
				{MatchID: "match-0601", UserID: "player-ana", TeamID: TeamIDBirdies, PointsAwarded: 3, Strokes: strokes(78)},
				{MatchID: "match-0601", UserID: "player-ben", TeamID: TeamIDEagles, PointsAwarded: 1.5, Strokes: strokes(84)},
			},
		},
		{
			ID:       "match-0615",
			SeasonID: SeasonID2026,
			PlayedOn: seedDate(2026, time.June, 15),
			Format:   match.FormatBestBall,
			Status:   match.StatusSubmitted,
			Course:   "Cedar Ridge",
			Participants: []match.Participant{
				{MatchID: "match-0615", UserID: "player-ana", TeamID: TeamIDBirdies, PointsAwarded: 2},
				{MatchID: "match-0615", UserID: PlayerIDCommissioner, TeamID: TeamIDBirdies, PointsAwarded: 1},
				{MatchID: "match-0615", UserID: "player-ben", TeamID: TeamIDEagles, PointsAwarded: 2.5},
				{MatchID: "match-0615", UserID: "player-cho", TeamID: TeamIDEagles, PointsAwarded: 0.5},
			},
		},
		{
			ID:       "match-0702",
			SeasonID: SeasonID2026,
			PlayedOn: seedDate(2026, time.July, 2),
			Format:   match.FormatSkins,
			Status:   match.StatusSubmitted,
			Course:   "Pine Valley Muni",
			Participants: []match.Participant{
				{MatchID: "match-0702", UserID: "player-dev", TeamID: TeamIDBogeys, PointsAwarded: 4},
				{MatchID: "match-0702", UserID: "player-cho", TeamID: TeamIDEagles, PointsAwarded: 1},
				{MatchID: "match-0702", UserID: "player-eli", PointsAwarded: 2},
			},
		},
		{
			ID:       "match-0710",
			SeasonID: SeasonID2026,
			PlayedOn: seedDate(2026, time.July, 10),
			Format:   match.FormatMatchPlay,
			Status:   match.StatusVoided,
			Notes:    "Rained out after nine holes",
			Participants: []match.Participant{
				{MatchID: "match-0710", UserID: "player-ana", TeamID: TeamIDBirdies, PointsAwarded: 0},
				{MatchID: "match-0710", UserID: "player-dev", TeamID: TeamIDBogeys, PointsAwarded: 1},
			},
		},
	}
}

func SeedAnnouncements() []announcement.Announcement {
	return []announcement.Announcement{
		{
			ID:          "announcement-welcome",
			SeasonID:    SeasonID2026,
			AuthorID:    PlayerIDCommissioner,
			Title:       "Welcome to the 2026 season",
			Body:        "Tee times are posted every Monday. Submit scores within 48 hours of your round.",
			Pinned:      true,
			PublishedAt: seedDate(2026, time.March, 25),
		},
	}
}
