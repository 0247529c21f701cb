package leaderboard

import (
	"cmp"
	"slices"
	"strings"

	"github.com/Mukul-only/emojileaderboard/internal/domain"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type Category string

const (
	CategoryAll    Category = "all"
	CategoryTop3   Category = "top3"
	CategoryTop10  Category = "top10"
	CategoryTop20  Category = "top20"
	CategoryActive Category = "active"
	CategoryZero   Category = "zero"
)

var categoryLimits = map[Category]int{
	CategoryTop3:  3,
	CategoryTop10: 10,
	CategoryTop20: 20,
}

func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	switch c {
	case "":
		return CategoryAll, nil
	case CategoryAll, CategoryTop3, CategoryTop10, CategoryTop20, CategoryActive, CategoryZero:
		return c, nil
	default:
		return "", domain.NewBadRequestError("unknown category %q", s)
	}
}

// Matches сообщает, проходит ли команда фильтр категории.
// topN определяется по вычисленному месту, а не по позиции в срезе,
// поэтому порядок применения поиска и категории не важен.
func (c Category) Matches(t RankedTeam) bool {
	if limit, ok := categoryLimits[c]; ok {
		return t.Rank <= limit
	}
	switch c {
	case CategoryActive:
		return t.Score > 0
	case CategoryZero:
		return t.Score == 0
	default:
		return true
	}
}

type SortKey string

const (
	SortScoreDesc SortKey = "score_desc"
	SortScoreAsc  SortKey = "score_asc"
	SortNameAsc   SortKey = "name_asc"
	SortNameDesc  SortKey = "name_desc"
)

func ParseSortKey(s string) (SortKey, error) {
	k := SortKey(strings.ToLower(strings.TrimSpace(s)))
	switch k {
	case "":
		return SortScoreDesc, nil
	case SortScoreDesc, SortScoreAsc, SortNameAsc, SortNameDesc:
		return k, nil
	default:
		return "", domain.NewBadRequestError("unknown sort key %q", s)
	}
}

// State - состояние выдачи для слоя представления.
type State string

const (
	StateReady       State = "ready"
	StateLoading     State = "loading"
	StateEmpty       State = "empty"
	StateNoMatches   State = "no_matches"
	StateUnavailable State = "unavailable"
)

type View struct {
	Teams []RankedTeam
	State State
}

// ViewOptions настраивает проекцию.
type ViewOptions struct {
	// Locale - BCP 47 тег для сравнения имён. По умолчанию "en".
	Locale string
}

// ApplyView фильтрует уже ранжированный список по строке поиска и категории,
// затем сортирует результат для отображения. Место и тренд не меняются.
func ApplyView(all []RankedTeam, query string, category Category, sortKey SortKey) View {
	return ApplyViewWithOptions(all, query, category, sortKey, ViewOptions{})
}

func ApplyViewWithOptions(all []RankedTeam, query string, category Category, sortKey SortKey, opts ViewOptions) View {
	if len(all) == 0 {
		return View{Teams: []RankedTeam{}, State: StateEmpty}
	}

	q := strings.ToLower(strings.TrimSpace(query))
	filtered := make([]RankedTeam, 0, len(all))
	for _, t := range all {
		if !category.Matches(t) || !matchesQuery(t, q) {
			continue
		}
		filtered = append(filtered, t)
	}

	sortTeams(filtered, sortKey, opts.Locale)

	state := StateReady
	if len(filtered) == 0 {
		state = StateNoMatches
	}
	return View{Teams: filtered, State: state}
}

func matchesQuery(t RankedTeam, q string) bool {
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(t.TeamName), q) {
		return true
	}
	for _, m := range t.Members {
		if strings.Contains(strings.ToLower(m.Name), q) {
			return true
		}
	}
	return false
}

func sortTeams(teams []RankedTeam, key SortKey, locale string) {
	switch key {
	case SortScoreAsc:
		slices.SortStableFunc(teams, func(a, b RankedTeam) int {
			return cmp.Compare(a.Score, b.Score)
		})
	case SortNameAsc, SortNameDesc:
		c := newCollator(locale)
		slices.SortStableFunc(teams, func(a, b RankedTeam) int {
			if key == SortNameDesc {
				return c.CompareString(b.TeamName, a.TeamName)
			}
			return c.CompareString(a.TeamName, b.TeamName)
		})
	default:
		slices.SortStableFunc(teams, func(a, b RankedTeam) int {
			return cmp.Compare(b.Score, a.Score)
		})
	}
}

// newCollator создаётся на каждый вызов: collate.Collator не потокобезопасен.
func newCollator(locale string) *collate.Collator {
	tag := language.English
	if locale != "" {
		if parsed, err := language.Parse(locale); err == nil {
			tag = parsed
		}
	}
	return collate.New(tag)
}
