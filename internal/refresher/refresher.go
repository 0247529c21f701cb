// Package refresher выполняет циклы загрузки таблицы по таймеру:
// один цикл за раз, результаты применяются в трекер по порядку запуска.
package refresher

import (
	"context"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Mukul-only/emojileaderboard/internal/domain"
	"github.com/Mukul-only/emojileaderboard/internal/leaderboard"
)

const (
	DefaultInterval = 5 * time.Second
	DefaultTimeout  = 10 * time.Second
	MinInterval     = time.Second
)

// Source - источник списка команд.
type Source interface {
	FetchTeams(ctx context.Context) ([]domain.TeamRecord, error)
}

type SourceFunc func(ctx context.Context) ([]domain.TeamRecord, error)

func (f SourceFunc) FetchTeams(ctx context.Context) ([]domain.TeamRecord, error) {
	return f(ctx)
}

type Option func(*Refresher)

func WithInterval(d time.Duration) Option {
	return func(r *Refresher) {
		if d >= MinInterval {
			r.interval = d
		}
	}
}

func WithTimeout(d time.Duration) Option {
	return func(r *Refresher) {
		if d > 0 {
			r.timeout = d
		}
	}
}

func WithAutoRefresh(enabled bool) Option {
	return func(r *Refresher) {
		r.auto = enabled
	}
}

// WithOnBoard задаёт получателя каждого применённого состояния таблицы.
func WithOnBoard(fn func(leaderboard.Board)) Option {
	return func(r *Refresher) {
		r.onBoard = fn
	}
}

func WithClock(now func() time.Time) Option {
	return func(r *Refresher) {
		r.now = now
	}
}

type Refresher struct {
	source  Source
	tracker *leaderboard.Tracker
	onBoard func(leaderboard.Board)
	now     func() time.Time
	timeout time.Duration

	mu       sync.Mutex
	interval time.Duration
	auto     bool
	changed  chan struct{}

	inFlight atomic.Bool
	seq      atomic.Uint64
}

func New(source Source, tracker *leaderboard.Tracker, opts ...Option) *Refresher {
	r := &Refresher{
		source:   source,
		tracker:  tracker,
		now:      time.Now,
		timeout:  DefaultTimeout,
		interval: DefaultInterval,
		auto:     true,
		changed:  make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Refresh выполняет один цикл загрузки. Если цикл уже идёт, новый не
// запускается и возвращается domain.ErrRefreshInProgress.
// Если ctx отменён во время загрузки, результат не применяется.
func (r *Refresher) Refresh(ctx context.Context) (leaderboard.Board, error) {
	if !r.inFlight.CompareAndSwap(false, true) {
		return r.tracker.Board(), domain.ErrRefreshInProgress
	}
	defer r.inFlight.Store(false)

	seq := r.seq.Add(1)

	fetchCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	teams, err := r.source.FetchTeams(fetchCtx)
	if err != nil {
		// отмена вызывающим не является сбоем источника: таблица остаётся прежней
		if ctx.Err() != nil {
			return r.tracker.Board(), fmt.Errorf("refresh #%d: %w", seq, ctx.Err())
		}
		board, applied := r.tracker.Fail(seq, err, r.now())
		if applied {
			r.publish(board)
		}
		return board, fmt.Errorf("refresh #%d: %w", seq, err)
	}

	board, applied := r.tracker.Apply(seq, domain.NormalizeAll(teams), r.now())
	if applied {
		r.publish(board)
	}
	return board, nil
}

func (r *Refresher) publish(board leaderboard.Board) {
	if r.onBoard != nil {
		r.onBoard(board)
	}
}

// Run выполняет первую загрузку сразу, затем по таймеру до отмены ctx.
// Смена интервала и паузы применяются внутри этого цикла, поэтому
// одновременно существует только один тикер.
func (r *Refresher) Run(ctx context.Context) error {
	r.tick(ctx)

	interval, auto := r.settings()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	if !auto {
		ticker.Stop()
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-r.changed:
			interval, auto = r.settings()
			if auto {
				ticker.Reset(interval)
			} else {
				ticker.Stop()
			}
		case <-ticker.C:
			r.tick(ctx)
		}
	}
}

func (r *Refresher) tick(ctx context.Context) {
	if _, err := r.Refresh(ctx); err != nil && ctx.Err() == nil {
		log.Printf("Leaderboard refresh failed: %v", err)
	}
}

// SetInterval заменяет период обновления.
func (r *Refresher) SetInterval(d time.Duration) error {
	if d < MinInterval {
		return domain.NewBadRequestError("refresh interval must be at least %s", MinInterval)
	}

	r.mu.Lock()
	r.interval = d
	r.mu.Unlock()

	r.notify()
	return nil
}

// SetAutoRefresh включает или приостанавливает обновление по таймеру.
func (r *Refresher) SetAutoRefresh(enabled bool) {
	r.mu.Lock()
	r.auto = enabled
	r.mu.Unlock()

	r.notify()
}

func (r *Refresher) Interval() time.Duration {
	interval, _ := r.settings()
	return interval
}

func (r *Refresher) AutoRefresh() bool {
	_, auto := r.settings()
	return auto
}

func (r *Refresher) settings() (time.Duration, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.interval, r.auto
}

func (r *Refresher) notify() {
	select {
	case r.changed <- struct{}{}:
	default:
	}
}
