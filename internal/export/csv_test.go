package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/Mukul-only/emojileaderboard/internal/domain"
	"github.com/Mukul-only/emojileaderboard/internal/leaderboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSV(t *testing.T) {
	t.Run("выгрузка в порядке мест", func(t *testing.T) {
		ranked, _ := leaderboard.ComputeRanks([]domain.TeamRecord{
			{TeamName: "Beta", Score: 20, Members: []domain.MemberRef{{Name: "Bob"}}},
			{TeamName: `Alpha "A", Team`, Score: 90, Members: []domain.MemberRef{{Name: "Ann"}, {Name: "Al"}}},
		}, nil)

		var buf bytes.Buffer
		require.NoError(t, WriteCSV(&buf, ranked))

		assert.Equal(t,
			"Rank,Team Name,Player 1,Player 2,Score\n"+
				"1,\"Alpha \"\"A\"\", Team\",Ann,Al,90\n"+
				"2,Beta,Bob,,20\n",
			buf.String())

		records, err := csv.NewReader(&buf).ReadAll()
		require.NoError(t, err)
		assert.Equal(t, `Alpha "A", Team`, records[1][1])
	})

	t.Run("пустая таблица - только заголовок", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteCSV(&buf, nil))
		assert.Equal(t, "Rank,Team Name,Player 1,Player 2,Score\n", buf.String())
	})
}
