package leaderboard

import (
	"slices"
	"sync"
	"time"

	"github.com/Mukul-only/emojileaderboard/internal/domain"
)

// Board - неизменяемый снимок состояния таблицы, выдаваемый читателям.
type Board struct {
	Seq       uint64
	Teams     []RankedTeam
	Stats     SummaryStats
	HasStats  bool
	Loaded    bool
	Err       error
	UpdatedAt time.Time
}

// State возвращает состояние всей таблицы без учёта фильтров.
func (b Board) State() State {
	switch {
	case b.Err != nil:
		return StateUnavailable
	case !b.Loaded:
		return StateLoading
	case len(b.Teams) == 0:
		return StateEmpty
	default:
		return StateReady
	}
}

// View проецирует таблицу с учётом поиска, категории и сортировки.
// Ошибка загрузки и незагруженная таблица имеют приоритет над фильтрами.
func (b Board) View(query string, category Category, sortKey SortKey, opts ViewOptions) View {
	if state := b.State(); state == StateUnavailable || state == StateLoading {
		return View{Teams: []RankedTeam{}, State: state}
	}
	return ApplyViewWithOptions(b.Teams, query, category, sortKey, opts)
}

// Tracker владеет снимком мест между циклами загрузки.
// Снимок заменяется целиком и только после успешной загрузки.
type Tracker struct {
	mu       sync.RWMutex
	previous RankSnapshot
	board    Board
}

func NewTracker() *Tracker {
	return &Tracker{previous: RankSnapshot{}}
}

// Apply применяет результат загрузки с номером seq.
// Результаты с номером не больше последнего применённого отбрасываются (false).
// Пустой набор очищает список команд, но сохраняет прежний снимок мест.
func (t *Tracker) Apply(seq uint64, teams []domain.TeamRecord, at time.Time) (Board, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if seq <= t.board.Seq && t.board.Seq != 0 {
		return t.board, false
	}

	ranked, next := ComputeRanks(teams, t.previous)
	stats, ok := ComputeStats(teams)
	if ok {
		// лучшие команды берутся из отслеживаемых мест вместе с трендом
		stats.Top = slices.Clone(ranked[:min(TopTeamsLimit, len(ranked))])
	}

	t.previous = next
	t.board = Board{
		Seq:       seq,
		Teams:     ranked,
		Stats:     stats,
		HasStats:  ok,
		Loaded:    true,
		UpdatedAt: at,
	}
	return t.board, true
}

// Fail фиксирует неудачную загрузку. Снимок мест не трогается,
// поэтому следующий успешный цикл считает тренд от последних известных мест.
func (t *Tracker) Fail(seq uint64, err error, at time.Time) (Board, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if seq <= t.board.Seq && t.board.Seq != 0 {
		return t.board, false
	}

	t.board = Board{
		Seq:       seq,
		Loaded:    t.board.Loaded,
		Err:       err,
		UpdatedAt: at,
	}
	return t.board, true
}

// Board возвращает текущее состояние. Срез команд копируется.
func (t *Tracker) Board() Board {
	t.mu.RLock()
	defer t.mu.RUnlock()

	b := t.board
	b.Teams = slices.Clone(b.Teams)
	b.Stats.Bins = slices.Clone(b.Stats.Bins)
	b.Stats.Top = slices.Clone(b.Stats.Top)
	return b
}

// Snapshot возвращает копию текущего снимка мест.
func (t *Tracker) Snapshot() RankSnapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.previous.Clone()
}
