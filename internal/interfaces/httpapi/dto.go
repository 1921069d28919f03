package httpapi

import (
	"math"
	"time"

	"github.com/riskibarqy/golf-league/internal/domain/announcement"
	"github.com/riskibarqy/golf-league/internal/domain/headtohead"
	"github.com/riskibarqy/golf-league/internal/domain/participation"
	"github.com/riskibarqy/golf-league/internal/domain/player"
	"github.com/riskibarqy/golf-league/internal/domain/season"
	"github.com/riskibarqy/golf-league/internal/domain/standings"
	"github.com/riskibarqy/golf-league/internal/domain/team"
	"github.com/riskibarqy/golf-league/internal/domain/timeline"
	"github.com/riskibarqy/golf-league/internal/usecase"
)

type seasonDTO struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Year      int     `json:"year"`
	IsActive  bool    `json:"isActive"`
	StartDate string  `json:"startDate"`
	EndDate   *string `json:"endDate,omitempty"`
}

type teamDTO struct {
	ID       string `json:"id"`
	SeasonID string `json:"seasonId"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Color    string `json:"color,omitempty"`
}

type recordDTO struct {
	MatchesPlayed  int       `json:"matchesPlayed"`
	PointsTotal    float64   `json:"pointsTotal"`
	PointsPerMatch float64   `json:"pointsPerMatch"`
	Wins           int       `json:"wins"`
	Losses         int       `json:"losses"`
	Ties           int       `json:"ties"`
	RecentForm     []float64 `json:"recentForm"`
}

type teamViewDTO struct {
	teamDTO
	recordDTO
}

type playerDTO struct {
	ID          string   `json:"id"`
	Username    string   `json:"username"`
	FullName    string   `json:"fullName,omitempty"`
	DisplayName string   `json:"displayName"`
	Role        string   `json:"role"`
	TeamID      string   `json:"teamId,omitempty"`
	Handicap    *float64 `json:"handicap,omitempty"`
}

type teamTotalDTO struct {
	TeamID  string  `json:"teamId"`
	Name    string  `json:"name"`
	Points  float64 `json:"points"`
	Outcome string  `json:"outcome,omitempty"`
}

type participantResultDTO struct {
	UserID        string  `json:"userId"`
	DisplayName   string  `json:"displayName"`
	TeamID        string  `json:"teamId,omitempty"`
	PointsAwarded float64 `json:"pointsAwarded"`
	Strokes       *int    `json:"strokes,omitempty"`
	Position      *int    `json:"position,omitempty"`
	IsWinner      bool    `json:"isWinner"`
	Outcome       string  `json:"outcome,omitempty"`
}

type matchDTO struct {
	ID            string                 `json:"id"`
	SeasonID      string                 `json:"seasonId"`
	PlayedOn      string                 `json:"playedOn"`
	Format        string                 `json:"format"`
	Status        string                 `json:"status"`
	Course        string                 `json:"course,omitempty"`
	Notes         string                 `json:"notes,omitempty"`
	TotalPoints   float64                `json:"totalPoints"`
	WinningTeamID string                 `json:"winningTeamId,omitempty"`
	IsTie         bool                   `json:"isTie"`
	Teams         []teamTotalDTO         `json:"teams"`
	Participants  []participantResultDTO `json:"participants"`
}

type matchListDTO struct {
	Season  seasonDTO  `json:"season"`
	Matches []matchDTO `json:"matches"`
}

type playerStatsDTO struct {
	PlayerID    string `json:"playerId"`
	DisplayName string `json:"displayName"`
	Username    string `json:"username"`
	TeamID      string `json:"teamId,omitempty"`
	recordDTO
}

type teamStatsDTO struct {
	TeamID string `json:"teamId"`
	Name   string `json:"name"`
	Slug   string `json:"slug"`
	Color  string `json:"color,omitempty"`
	recordDTO
}

type leaderboardDTO struct {
	Season      seasonDTO        `json:"season"`
	Rows        []playerStatsDTO `json:"rows"`
	GeneratedAt time.Time        `json:"generatedAt"`
}

type teamStandingsDTO struct {
	Season      seasonDTO      `json:"season"`
	Rows        []teamStatsDTO `json:"rows"`
	GeneratedAt time.Time      `json:"generatedAt"`
}

type sharedMatchDTO struct {
	MatchID        string  `json:"matchId"`
	PlayedOn       string  `json:"playedOn"`
	Format         string  `json:"format"`
	Course         string  `json:"course,omitempty"`
	PlayerPoints   float64 `json:"playerPoints"`
	OpponentPoints float64 `json:"opponentPoints"`
	Outcome        string  `json:"outcome"`
}

type headToHeadDTO struct {
	Season        seasonDTO        `json:"season"`
	Player        playerDTO        `json:"player"`
	Opponent      playerDTO        `json:"opponent"`
	MatchesPlayed int              `json:"matchesPlayed"`
	Wins          int              `json:"wins"`
	Losses        int              `json:"losses"`
	Ties          int              `json:"ties"`
	PointsFor     float64          `json:"pointsFor"`
	PointsAgainst float64          `json:"pointsAgainst"`
	AverageMargin float64          `json:"averageMargin"`
	LastPlayedOn  *string          `json:"lastPlayedOn"`
	Matches       []sharedMatchDTO `json:"matches"`
	GeneratedAt   time.Time        `json:"generatedAt"`
}

type participationRowDTO struct {
	PlayerID          string  `json:"playerId"`
	DisplayName       string  `json:"displayName"`
	TeamID            string  `json:"teamId,omitempty"`
	MatchesPlayed     int     `json:"matchesPlayed"`
	TotalPoints       float64 `json:"totalPoints"`
	ParticipationRate float64 `json:"participationRate"`
}

type participationDTO struct {
	Season           seasonDTO             `json:"season"`
	SeasonMatchCount int                   `json:"seasonMatchCount"`
	Rows             []participationRowDTO `json:"rows"`
	GeneratedAt      time.Time             `json:"generatedAt"`
}

type timelineEntryDTO struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	ActorID   string    `json:"actorId,omitempty"`
	SubjectID string    `json:"subjectId,omitempty"`
	Summary   string    `json:"summary"`
	CreatedAt time.Time `json:"createdAt"`
}

type timelineDTO struct {
	Season  seasonDTO          `json:"season"`
	Entries []timelineEntryDTO `json:"entries"`
}

type announcementDTO struct {
	ID          string    `json:"id"`
	SeasonID    string    `json:"seasonId,omitempty"`
	AuthorID    string    `json:"authorId"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	Pinned      bool      `json:"pinned"`
	PublishedAt time.Time `json:"publishedAt"`
}

// round2 rounds presentation floats to two decimals.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func formatDate(t time.Time) string {
	return t.UTC().Format(dateLayout)
}

func formatOptionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	value := formatDate(*t)
	return &value
}

func seasonToDTO(v season.Season) seasonDTO {
	return seasonDTO{
		ID:        v.ID,
		Name:      v.Name,
		Year:      v.Year,
		IsActive:  v.IsActive,
		StartDate: formatDate(v.StartDate),
		EndDate:   formatOptionalDate(v.EndDate),
	}
}

func teamToDTO(v team.Team) teamDTO {
	return teamDTO{ID: v.ID, SeasonID: v.SeasonID, Name: v.Name, Slug: v.Slug, Color: v.Color}
}

func recordToDTO(v standings.Record) recordDTO {
	form := make([]float64, 0, len(v.RecentForm))
	for _, points := range v.RecentForm {
		form = append(form, round2(points))
	}
	return recordDTO{
		MatchesPlayed:  v.MatchesPlayed,
		PointsTotal:    round2(v.PointsTotal),
		PointsPerMatch: round2(v.PointsPerMatch),
		Wins:           v.Wins,
		Losses:         v.Losses,
		Ties:           v.Ties,
		RecentForm:     form,
	}
}

func teamViewToDTO(v usecase.TeamView) teamViewDTO {
	return teamViewDTO{teamDTO: teamToDTO(v.Team), recordDTO: recordToDTO(v.Record)}
}

func playerToDTO(v player.Profile) playerDTO {
	return playerDTO{
		ID:          v.ID,
		Username:    v.Username,
		FullName:    v.FullName,
		DisplayName: v.DisplayName(),
		Role:        string(v.Role),
		TeamID:      v.TeamID,
		Handicap:    v.Handicap,
	}
}

func matchToDTO(v standings.MatchResult) matchDTO {
	teams := make([]teamTotalDTO, 0, len(v.Teams))
	for _, t := range v.Teams {
		teams = append(teams, teamTotalDTO{
			TeamID:  t.TeamID,
			Name:    t.Name,
			Points:  round2(t.Points),
			Outcome: string(t.Outcome),
		})
	}

	participants := make([]participantResultDTO, 0, len(v.Participants))
	for _, p := range v.Participants {
		participants = append(participants, participantResultDTO{
			UserID:        p.UserID,
			DisplayName:   p.DisplayName,
			TeamID:        p.TeamID,
			PointsAwarded: round2(p.PointsAwarded),
			Strokes:       p.Strokes,
			Position:      p.Position,
			IsWinner:      p.IsWinner,
			Outcome:       string(p.Outcome),
		})
	}

	return matchDTO{
		ID:            v.MatchID,
		SeasonID:      v.SeasonID,
		PlayedOn:      formatDate(v.PlayedOn),
		Format:        string(v.Format),
		Status:        string(v.Status),
		Course:        v.Course,
		Notes:         v.Notes,
		TotalPoints:   round2(v.TotalPoints),
		WinningTeamID: v.WinningTeamID,
		IsTie:         v.IsTie,
		Teams:         teams,
		Participants:  participants,
	}
}

func matchListToDTO(v usecase.MatchList) matchListDTO {
	items := make([]matchDTO, 0, len(v.Matches))
	for _, m := range v.Matches {
		items = append(items, matchToDTO(m))
	}
	return matchListDTO{Season: seasonToDTO(v.Season), Matches: items}
}

func leaderboardToDTO(v usecase.PlayerLeaderboard) leaderboardDTO {
	rows := make([]playerStatsDTO, 0, len(v.Rows))
	for _, row := range v.Rows {
		rows = append(rows, playerStatsDTO{
			PlayerID:    row.PlayerID,
			DisplayName: row.DisplayName,
			Username:    row.Username,
			TeamID:      row.TeamID,
			recordDTO:   recordToDTO(row.Record),
		})
	}
	return leaderboardDTO{Season: seasonToDTO(v.Season), Rows: rows, GeneratedAt: v.GeneratedAt.UTC()}
}

func teamStandingsToDTO(v usecase.TeamStandings) teamStandingsDTO {
	rows := make([]teamStatsDTO, 0, len(v.Rows))
	for _, row := range v.Rows {
		rows = append(rows, teamStatsDTO{
			TeamID:    row.TeamID,
			Name:      row.Name,
			Slug:      row.Slug,
			Color:     row.Color,
			recordDTO: recordToDTO(row.Record),
		})
	}
	return teamStandingsDTO{Season: seasonToDTO(v.Season), Rows: rows, GeneratedAt: v.GeneratedAt.UTC()}
}

func headToHeadToDTO(v usecase.HeadToHeadReport) headToHeadDTO {
	matches := make([]sharedMatchDTO, 0, len(v.Result.Matches))
	for _, m := range v.Result.Matches {
		matches = append(matches, sharedMatchToDTO(m))
	}

	return headToHeadDTO{
		Season:        seasonToDTO(v.Season),
		Player:        playerToDTO(v.Player),
		Opponent:      playerToDTO(v.Opponent),
		MatchesPlayed: v.Result.MatchesPlayed,
		Wins:          v.Result.Wins,
		Losses:        v.Result.Losses,
		Ties:          v.Result.Ties,
		PointsFor:     round2(v.Result.PointsFor),
		PointsAgainst: round2(v.Result.PointsAgainst),
		AverageMargin: round2(v.Result.AverageMargin),
		LastPlayedOn:  formatOptionalDate(v.Result.LastPlayedOn),
		Matches:       matches,
		GeneratedAt:   v.GeneratedAt.UTC(),
	}
}

func sharedMatchToDTO(v headtohead.SharedMatch) sharedMatchDTO {
	return sharedMatchDTO{
		MatchID:        v.MatchID,
		PlayedOn:       formatDate(v.PlayedOn),
		Format:         string(v.Format),
		Course:         v.Course,
		PlayerPoints:   round2(v.PlayerPoints),
		OpponentPoints: round2(v.OpponentPoints),
		Outcome:        string(v.Outcome),
	}
}

func participationToDTO(v usecase.ParticipationReport) participationDTO {
	rows := make([]participationRowDTO, 0, len(v.Rows))
	for _, row := range v.Rows {
		rows = append(rows, participationRowToDTO(row))
	}
	return participationDTO{
		Season:           seasonToDTO(v.Season),
		SeasonMatchCount: v.SeasonMatchCount,
		Rows:             rows,
		GeneratedAt:      v.GeneratedAt.UTC(),
	}
}

// participationRowToDTO keeps the rate at its reducer precision of 3 decimals.
func participationRowToDTO(v participation.Row) participationRowDTO {
	return participationRowDTO{
		PlayerID:          v.PlayerID,
		DisplayName:       v.DisplayName,
		TeamID:            v.TeamID,
		MatchesPlayed:     v.MatchesPlayed,
		TotalPoints:       round2(v.TotalPoints),
		ParticipationRate: v.ParticipationRate,
	}
}

func timelineToDTO(v usecase.TimelinePage) timelineDTO {
	entries := make([]timelineEntryDTO, 0, len(v.Entries))
	for _, e := range v.Entries {
		entries = append(entries, timelineEntryToDTO(e))
	}
	return timelineDTO{Season: seasonToDTO(v.Season), Entries: entries}
}

func timelineEntryToDTO(v timeline.Entry) timelineEntryDTO {
	return timelineEntryDTO{
		ID:        v.ID,
		Kind:      string(v.Kind),
		ActorID:   v.ActorID,
		SubjectID: v.SubjectID,
		Summary:   v.Summary,
		CreatedAt: v.CreatedAt.UTC(),
	}
}

func announcementToDTO(v announcement.Announcement) announcementDTO {
	return announcementDTO{
		ID:          v.ID,
		SeasonID:    v.SeasonID,
		AuthorID:    v.AuthorID,
		Title:       v.Title,
		Body:        v.Body,
		Pinned:      v.Pinned,
		PublishedAt: v.PublishedAt.UTC(),
	}
}
