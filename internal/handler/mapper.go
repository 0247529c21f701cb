package handler

import (
	"time"

	"github.com/Mukul-only/emojileaderboard/internal/domain"
	"github.com/Mukul-only/emojileaderboard/internal/leaderboard"
	"github.com/Mukul-only/emojileaderboard/internal/service"
)

func membersToHTTP(members []domain.MemberRef) []MemberDTO {
	result := make([]MemberDTO, 0, len(members))
	for _, m := range members {
		result = append(result, MemberDTO{Name: m.Name, RollNumber: m.RollNumber})
	}
	return result
}

func domainTeamToHTTP(team *domain.TeamRecord) TeamResponse {
	return TeamResponse{
		ID:       team.ID,
		TeamName: team.TeamName,
		Score:    team.Score,
		Members:  membersToHTTP(team.Members),
	}
}

func domainTeamsToHTTP(teams []domain.TeamRecord) []TeamResponse {
	result := make([]TeamResponse, 0, len(teams))
	for i := range teams {
		result = append(result, domainTeamToHTTP(&teams[i]))
	}
	return result
}

func httpTeamToDomain(req TeamRequest) *domain.TeamRecord {
	members := make([]domain.MemberRef, 0, len(req.Members))
	for _, m := range req.Members {
		members = append(members, domain.MemberRef{Name: m.Name, RollNumber: m.RollNumber})
	}

	return &domain.TeamRecord{
		TeamName: req.TeamName,
		Score:    req.Score,
		Members:  members,
	}
}

func rankedTeamsToHTTP(teams []leaderboard.RankedTeam) []RankedTeamResponse {
	result := make([]RankedTeamResponse, 0, len(teams))
	for _, t := range teams {
		result = append(result, RankedTeamResponse{
			Rank:      t.Rank,
			Trend:     int(t.Trend),
			Direction: string(t.Trend.Direction()),
			ID:        t.ID,
			TeamName:  t.TeamName,
			Score:     t.Score,
			Members:   membersToHTTP(t.Members),
		})
	}
	return result
}

func formatTime(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

func boardMessage(board leaderboard.Board) string {
	if board.Err != nil {
		return domain.ErrDataSourceUnavailable.Message
	}
	return ""
}

func viewToHTTP(board leaderboard.Board, view leaderboard.View) RankedResponse {
	return RankedResponse{
		State:     string(view.State),
		Message:   boardMessage(board),
		UpdatedAt: formatTime(board.UpdatedAt),
		Total:     len(board.Teams),
		Teams:     rankedTeamsToHTTP(view.Teams),
	}
}

func statsToHTTP(board leaderboard.Board) StatsResponse {
	stats := board.Stats
	bins := make([]BinResponse, 0, len(stats.Bins))
	for _, b := range stats.Bins {
		bins = append(bins, BinResponse{Label: b.Label, Start: b.Start, End: b.End, Count: b.Count})
	}

	return StatsResponse{
		State:        string(board.State()),
		Message:      boardMessage(board),
		TeamCount:    stats.TeamCount,
		Average:      stats.Mean,
		Median:       stats.Median,
		Max:          stats.Max,
		Participants: stats.Participants,
		MaxBinCount:  stats.MaxBinCount(),
		Bins:         bins,
		Top:          rankedTeamsToHTTP(stats.Top),
	}
}

func settingsToHTTP(s service.RefreshSettings) SettingsResponse {
	return SettingsResponse{
		IntervalMS:  s.Interval.Milliseconds(),
		AutoRefresh: s.AutoRefresh,
	}
}
