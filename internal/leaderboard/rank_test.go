package leaderboard

import (
	"testing"

	"github.com/Mukul-only/emojileaderboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func teams(pairs ...any) []domain.TeamRecord {
	result := make([]domain.TeamRecord, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		result = append(result, domain.TeamRecord{
			TeamName: pairs[i].(string),
			Score:    pairs[i+1].(int),
			Members:  []domain.MemberRef{},
		})
	}
	return result
}

func ranksByName(ranked []RankedTeam) map[string]int {
	result := make(map[string]int, len(ranked))
	for _, t := range ranked {
		result[t.TeamName] = t.Rank
	}
	return result
}

func trendsByName(ranked []RankedTeam) map[string]Trend {
	result := make(map[string]Trend, len(ranked))
	for _, t := range ranked {
		result[t.TeamName] = t.Trend
	}
	return result
}

func TestComputeRanks(t *testing.T) {
	t.Run("равные счета сохраняют входной порядок", func(t *testing.T) {
		ranked, snapshot := ComputeRanks(teams("A", 100, "B", 80, "C", 100), nil)

		require.Len(t, ranked, 3)
		assert.Equal(t, "A", ranked[0].TeamName)
		assert.Equal(t, "C", ranked[1].TeamName)
		assert.Equal(t, "B", ranked[2].TeamName)
		assert.Equal(t, RankSnapshot{"A": 1, "C": 2, "B": 3}, snapshot)
	})

	t.Run("тренд по сравнению с предыдущими местами", func(t *testing.T) {
		previous := RankSnapshot{"A": 1, "B": 2}

		ranked, snapshot := ComputeRanks(teams("A", 10, "B", 20), previous)

		assert.Equal(t, map[string]int{"A": 2, "B": 1}, ranksByName(ranked))
		trends := trendsByName(ranked)
		assert.Equal(t, Trend(-1), trends["A"])
		assert.Equal(t, Trend(1), trends["B"])
		assert.Equal(t, DirectionDown, trends["A"].Direction())
		assert.Equal(t, DirectionUp, trends["B"].Direction())
		assert.Equal(t, 1, trends["A"].Magnitude())
		assert.Equal(t, RankSnapshot{"A": 1, "B": 2}, previous, "previous не должен изменяться")
		assert.Equal(t, RankSnapshot{"A": 2, "B": 1}, snapshot)
	})

	t.Run("новая команда получает нулевой тренд", func(t *testing.T) {
		ranked, _ := ComputeRanks(teams("New", 500, "A", 10), RankSnapshot{"A": 1})

		trends := trendsByName(ranked)
		assert.Equal(t, Trend(0), trends["New"])
		assert.Equal(t, Trend(-1), trends["A"])
	})

	t.Run("пустой вход возвращает прежний снимок", func(t *testing.T) {
		previous := RankSnapshot{"A": 1}

		ranked, snapshot := ComputeRanks(nil, previous)

		assert.NotNil(t, ranked)
		assert.Empty(t, ranked)
		assert.Equal(t, previous, snapshot)
		snapshot["B"] = 2
		assert.NotContains(t, previous, "B", "должна возвращаться копия")
	})

	t.Run("повторный расчёт с тем же снимком даёт нулевые тренды", func(t *testing.T) {
		input := teams("A", 5, "B", 50, "C", 25, "D", 25)

		first, snapshot := ComputeRanks(input, nil)
		second, again := ComputeRanks(input, snapshot)

		assert.Equal(t, ranksByName(first), ranksByName(second))
		assert.Equal(t, snapshot, again)
		for _, team := range second {
			assert.Equal(t, Trend(0), team.Trend, team.TeamName)
		}
	})

	t.Run("места занимают 1..N и счёт не растёт с местом", func(t *testing.T) {
		input := teams("A", 3, "B", 9, "C", 0, "D", 9, "E", 4, "F", 100, "G", 3)

		ranked, _ := ComputeRanks(input, nil)

		require.Len(t, ranked, len(input))
		for i, team := range ranked {
			assert.Equal(t, i+1, team.Rank)
			if i > 0 {
				assert.LessOrEqual(t, team.Score, ranked[i-1].Score)
			}
		}
	})

	t.Run("входной срез не сортируется на месте", func(t *testing.T) {
		input := teams("A", 1, "B", 2)

		ComputeRanks(input, nil)

		assert.Equal(t, "A", input[0].TeamName)
	})
}

func TestTrend_Direction(t *testing.T) {
	assert.Equal(t, DirectionSame, Trend(0).Direction())
	assert.Equal(t, 0, Trend(0).Magnitude())
	assert.Equal(t, 3, Trend(-3).Magnitude())
	assert.Equal(t, 3, Trend(3).Magnitude())
}
