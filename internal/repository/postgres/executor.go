package postgres

import (
	"context"
	"database/sql"
	"strconv"
	"strings"
)

// DBExecutor - общий интерфейс *sql.DB и *sql.Tx
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// formatIntArray собирает литерал массива Postgres ("{1,2,3}").
// Используется вместе с приведением $N::integer[].
func formatIntArray(ids []int) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.Itoa(id))
	}
	return "{" + strings.Join(parts, ",") + "}"
}
