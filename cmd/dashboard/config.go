package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/Mukul-only/emojileaderboard/internal/leaderboard"
	"github.com/Mukul-only/emojileaderboard/internal/refresher"
	"github.com/fatih/color"
	"github.com/spf13/viper"
)

const (
	defaultAPIURL = "http://localhost:8080"
	defaultLocale = "en"
)

// dashboardConfig - проверенная конфигурация, собранная из флагов, env и файла.
type dashboardConfig struct {
	APIURL   string
	Timeout  time.Duration
	Query    string
	Category leaderboard.Category
	Sort     leaderboard.SortKey
	Interval time.Duration
	Color    bool
	Locale   string
	Output   string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api-url", defaultAPIURL)
	v.SetDefault("timeout", refresher.DefaultTimeout)
	v.SetDefault("category", string(leaderboard.CategoryAll))
	v.SetDefault("sort", string(leaderboard.SortScoreDesc))
	v.SetDefault("interval", refresher.DefaultInterval)
	v.SetDefault("color", "auto")
	v.SetDefault("locale", defaultLocale)
}

func loadConfig(v *viper.Viper) (*dashboardConfig, error) {
	category, err := leaderboard.ParseCategory(v.GetString("category"))
	if err != nil {
		return nil, err
	}
	sortKey, err := leaderboard.ParseSortKey(v.GetString("sort"))
	if err != nil {
		return nil, err
	}
	useColor, err := parseColor(v.GetString("color"))
	if err != nil {
		return nil, err
	}

	cfg := &dashboardConfig{
		APIURL:   strings.TrimSpace(v.GetString("api-url")),
		Timeout:  v.GetDuration("timeout"),
		Query:    v.GetString("query"),
		Category: category,
		Sort:     sortKey,
		Interval: v.GetDuration("interval"),
		Color:    useColor,
		Locale:   v.GetString("locale"),
		Output:   v.GetString("output"),
	}

	if cfg.APIURL == "" {
		return nil, fmt.Errorf("api-url must not be empty")
	}
	if cfg.Timeout <= 0 {
		return nil, fmt.Errorf("timeout must be positive, got %s", cfg.Timeout)
	}
	if cfg.Interval < refresher.MinInterval {
		return nil, fmt.Errorf("interval must be at least %s, got %s", refresher.MinInterval, cfg.Interval)
	}
	if cfg.Locale == "" {
		cfg.Locale = defaultLocale
	}
	return cfg, nil
}

// parseColor понимает auto, yes/no, true/false и 1/0.
func parseColor(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return !color.NoColor, nil
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid color value %q (use auto, yes or no)", s)
	}
}
