// Package leaderboard содержит расчёт мест, трендов, статистики и
// проекции таблицы для отображения.
package leaderboard

import (
	"cmp"
	"maps"
	"slices"

	"github.com/Mukul-only/emojileaderboard/internal/domain"
)

// Trend - изменение места между двумя циклами загрузки.
// Положительное значение - команда поднялась, отрицательное - опустилась.
type Trend int

type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
	DirectionSame Direction = "same"
)

func (t Trend) Direction() Direction {
	switch {
	case t > 0:
		return DirectionUp
	case t < 0:
		return DirectionDown
	default:
		return DirectionSame
	}
}

func (t Trend) Magnitude() int {
	if t < 0 {
		return int(-t)
	}
	return int(t)
}

// RankedTeam - команда с вычисленным местом и трендом.
type RankedTeam struct {
	domain.TeamRecord
	Rank  int
	Trend Trend
}

// RankSnapshot - места команд по имени на момент последней успешной загрузки.
type RankSnapshot map[string]int

func (s RankSnapshot) Clone() RankSnapshot {
	if s == nil {
		return RankSnapshot{}
	}
	return maps.Clone(s)
}

// ComputeRanks сортирует команды по убыванию счёта (стабильно, равные счета
// сохраняют входной порядок), присваивает места 1..N и считает тренд
// относительно previous. Имена команд должны быть уникальны.
//
// Для пустого входа возвращается пустой список и копия previous.
func ComputeRanks(teams []domain.TeamRecord, previous RankSnapshot) ([]RankedTeam, RankSnapshot) {
	if len(teams) == 0 {
		return []RankedTeam{}, previous.Clone()
	}

	sorted := slices.Clone(teams)
	slices.SortStableFunc(sorted, func(a, b domain.TeamRecord) int {
		return cmp.Compare(b.Score, a.Score)
	})

	ranked := make([]RankedTeam, len(sorted))
	next := make(RankSnapshot, len(sorted))
	for i, team := range sorted {
		rank := i + 1
		prevRank, ok := previous[team.TeamName]
		if !ok {
			prevRank = rank
		}
		ranked[i] = RankedTeam{
			TeamRecord: team,
			Rank:       rank,
			Trend:      Trend(prevRank - rank),
		}
		next[team.TeamName] = rank
	}

	return ranked, next
}
