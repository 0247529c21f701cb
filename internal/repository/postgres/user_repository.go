package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/Mukul-only/emojileaderboard/internal/domain"
	"github.com/Mukul-only/emojileaderboard/internal/repository"
)

var _ repository.UserRepository = (*userRepository)(nil)

type userRepository struct {
	executor DBExecutor
}

func NewUserRepository(db *sql.DB) *userRepository {
	return &userRepository{executor: db}
}

func NewUserRepositoryWithTx(tx *sql.Tx) *userRepository {
	return &userRepository{executor: tx}
}

// Upsert реализует upsert по roll_number: если он указан и уже есть в users,
// обновляется имя, иначе создаётся новый пользователь.
func (r *userRepository) Upsert(ctx context.Context, member domain.MemberRef) (int, error) {
	now := time.Now()
	var id int

	if member.RollNumber == "" {
		query := `
			INSERT INTO users (name, created_at)
			VALUES ($1, $2)
			RETURNING id
		`
		err := r.executor.QueryRowContext(ctx, query, member.Name, now).Scan(&id)
		return id, err
	}

	query := `
		INSERT INTO users (name, roll_number, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (roll_number) DO UPDATE
		SET name = EXCLUDED.name, updated_at = CURRENT_TIMESTAMP
		RETURNING id
	`
	err := r.executor.QueryRowContext(ctx, query, member.Name, member.RollNumber, now).Scan(&id)
	return id, err
}
