package leaderboard

import (
	"fmt"
	"slices"

	"github.com/Mukul-only/emojileaderboard/internal/domain"
)

const (
	// MinBinWidth - минимальная ширина корзины гистограммы.
	MinBinWidth = 50
	// BinsPerMax - на сколько частей делится максимальный счёт.
	BinsPerMax = 5
	// TopTeamsLimit - размер блока лучших команд.
	TopTeamsLimit = 5
)

// Bin - полуинтервал [Start, End) гистограммы счетов.
type Bin struct {
	Label string
	Start int
	End   int
	Count int
}

type SummaryStats struct {
	TeamCount    int
	Mean         int
	Median       float64
	Max          int
	Participants int
	Bins         []Bin
	Top          []RankedTeam
}

// MaxBinCount возвращает наибольшую частоту среди корзин (для масштабирования графика).
func (s SummaryStats) MaxBinCount() int {
	maxCount := 0
	for _, b := range s.Bins {
		maxCount = max(maxCount, b.Count)
	}
	return maxCount
}

// ComputeStats считает сводную статистику по счетам команд.
// Второе значение false означает отсутствие данных: в этом случае статистика
// нулевая и её не следует показывать как реальные нули.
func ComputeStats(teams []domain.TeamRecord) (SummaryStats, bool) {
	if len(teams) == 0 {
		return SummaryStats{}, false
	}

	scores := make([]int, 0, len(teams))
	total, participants := 0, 0
	for _, t := range teams {
		score := max(t.Score, 0)
		scores = append(scores, score)
		total += score
		participants += len(t.Members)
	}
	slices.Sort(scores)

	maxScore := scores[len(scores)-1]
	ranked, _ := ComputeRanks(teams, nil)

	return SummaryStats{
		TeamCount:    len(teams),
		Mean:         roundHalfUp(total, len(scores)),
		Median:       median(scores),
		Max:          maxScore,
		Participants: participants,
		Bins:         histogram(scores, BinWidth(maxScore)),
		Top:          ranked[:min(TopTeamsLimit, len(ranked))],
	}, true
}

// BinWidth возвращает ширину корзины: max(50, ceil(maxScore/5)).
func BinWidth(maxScore int) int {
	width := (maxScore + BinsPerMax - 1) / BinsPerMax
	return max(MinBinWidth, width)
}

// median ожидает отсортированный по возрастанию непустой срез.
func median(sorted []int) float64 {
	mid := len(sorted) / 2
	if len(sorted)%2 != 0 {
		return float64(sorted[mid])
	}
	return float64(sorted[mid-1]+sorted[mid]) / 2
}

func roundHalfUp(sum, count int) int {
	// счета неотрицательны, поэтому целочисленное деление с добавкой половины
	// эквивалентно floor(sum/count + 0.5)
	return (2*sum + count) / (2 * count)
}

// histogram раскладывает отсортированные по возрастанию счета по корзинам.
// Пустые корзины не выводятся; порядок - по возрастанию индекса корзины,
// что для возрастающего прохода совпадает с порядком первого появления.
func histogram(sorted []int, width int) []Bin {
	var bins []Bin
	for _, score := range sorted {
		idx := score / width
		start := idx * width
		if n := len(bins); n > 0 && bins[n-1].Start == start {
			bins[n-1].Count++
			continue
		}
		bins = append(bins, Bin{
			Label: fmt.Sprintf("%d-%d", start, start+width),
			Start: start,
			End:   start + width,
			Count: 1,
		})
	}
	return bins
}
