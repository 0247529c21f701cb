// Package export выгружает таблицу лидеров в CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/Mukul-only/emojileaderboard/internal/leaderboard"
)

// Header - заголовок выгрузки. Игроков в команде не больше двух,
// отсутствующий игрок выгружается пустой ячейкой.
var Header = []string{"Rank", "Team Name", "Player 1", "Player 2", "Score"}

const missingPlayer = ""

// WriteCSV пишет команды в переданном порядке. Кавычки и запятые
// в именах экранирует encoding/csv.
func WriteCSV(w io.Writer, teams []leaderboard.RankedTeam) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, t := range teams {
		record := []string{
			strconv.Itoa(t.Rank),
			t.TeamName,
			t.MemberName(0, missingPlayer),
			t.MemberName(1, missingPlayer),
			strconv.Itoa(t.Score),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write team %q: %w", t.TeamName, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
