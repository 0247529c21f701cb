// Package client - HTTP-источник таблицы для терминального дашборда.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/Mukul-only/emojileaderboard/internal/domain"
)

const leaderboardPath = "/api/leaderboard"

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// teamPayload - формат записи, который отдаёт GET /api/leaderboard.
// Необязательные поля - указатели, значения по умолчанию проставляет toDomain.
type teamPayload struct {
	ID       string          `json:"_id"`
	TeamName string          `json:"teamName"`
	Score    *float64        `json:"score"`
	Members  []memberPayload `json:"members"`
}

type memberPayload struct {
	Name       string `json:"name"`
	RollNumber string `json:"rollNumber,omitempty"`
}

func (p teamPayload) toDomain() domain.TeamRecord {
	team := domain.TeamRecord{
		ID:       p.ID,
		TeamName: p.TeamName,
	}
	if p.Score != nil {
		team.Score = scoreFromJSON(*p.Score)
	}
	for _, m := range p.Members {
		team.Members = append(team.Members, domain.MemberRef{Name: m.Name, RollNumber: m.RollNumber})
	}
	return team.Normalize()
}

// scoreFromJSON приводит число из JSON к счёту в диапазоне [0, math.MaxInt32].
func scoreFromJSON(f float64) int {
	switch {
	case math.IsNaN(f) || f <= 0:
		return 0
	case f >= math.MaxInt32:
		return math.MaxInt32
	default:
		return int(f)
	}
}

// FetchTeams загружает список команд. Любой сбой сети, статус не 2xx или
// неразборчивый ответ возвращаются как domain.ErrDataSourceUnavailable.
func (c *Client) FetchTeams(ctx context.Context) ([]domain.TeamRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+leaderboardPath, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.Unavailable(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, domain.Unavailable(fmt.Errorf("HTTP error! status: %d - %s", resp.StatusCode, strings.TrimSpace(string(body))))
	}

	var payload []teamPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, domain.Unavailable(fmt.Errorf("failed to decode leaderboard: %w", err))
	}

	teams := make([]domain.TeamRecord, 0, len(payload))
	for _, p := range payload {
		teams = append(teams, p.toDomain())
	}
	return teams, nil
}
