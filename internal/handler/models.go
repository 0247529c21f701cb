package handler

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type MemberDTO struct {
	Name       string `json:"name"`
	RollNumber string `json:"rollNumber,omitempty"`
}

// TeamResponse повторяет формат записи GET /api/leaderboard.
type TeamResponse struct {
	ID       string      `json:"_id"`
	TeamName string      `json:"teamName"`
	Score    int         `json:"score"`
	Members  []MemberDTO `json:"members"`
}

type TeamRequest struct {
	TeamName string      `json:"teamName"`
	Score    int         `json:"score"`
	Members  []MemberDTO `json:"members"`
}

type UpdateScoreRequest struct {
	TeamName string `json:"teamName"`
	Score    *int   `json:"score"`
}

type RankedTeamResponse struct {
	Rank      int         `json:"rank"`
	Trend     int         `json:"trend"`
	Direction string      `json:"direction"`
	ID        string      `json:"_id"`
	TeamName  string      `json:"teamName"`
	Score     int         `json:"score"`
	Members   []MemberDTO `json:"members"`
}

type RankedResponse struct {
	State     string               `json:"state"`
	Message   string               `json:"message,omitempty"`
	UpdatedAt *string              `json:"updated_at,omitempty"`
	Total     int                  `json:"total"`
	Teams     []RankedTeamResponse `json:"teams"`
}

type BinResponse struct {
	Label string `json:"label"`
	Start int    `json:"start"`
	End   int    `json:"end"`
	Count int    `json:"count"`
}

type StatsResponse struct {
	State        string               `json:"state"`
	Message      string               `json:"message,omitempty"`
	TeamCount    int                  `json:"team_count"`
	Average      int                  `json:"average"`
	Median       float64              `json:"median"`
	Max          int                  `json:"max"`
	Participants int                  `json:"participants"`
	MaxBinCount  int                  `json:"max_bin_count"`
	Bins         []BinResponse        `json:"bins"`
	Top          []RankedTeamResponse `json:"top"`
}

type RefreshResponse struct {
	State     string  `json:"state"`
	Seq       uint64  `json:"seq"`
	UpdatedAt *string `json:"updated_at,omitempty"`
	Total     int     `json:"total"`
}

type SettingsRequest struct {
	IntervalMS  *int64 `json:"interval_ms"`
	AutoRefresh *bool  `json:"auto_refresh"`
}

type SettingsResponse struct {
	IntervalMS  int64 `json:"interval_ms"`
	AutoRefresh bool  `json:"auto_refresh"`
}
