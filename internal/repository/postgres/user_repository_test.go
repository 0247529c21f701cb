package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Mukul-only/emojileaderboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupUserRepo создает мок БД и репозиторий для User
func setupUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	db, mock := setupMockDB(t)
	return NewUserRepository(db), mock
}

// TestUserRepository_Upsert - тест для метода Upsert()
// С roll number выполняется upsert, без него - обычная вставка
func TestUserRepository_Upsert(t *testing.T) {
	t.Run("upsert по roll number", func(t *testing.T) {
		repo, mock := setupUserRepo(t)

		mock.ExpectQuery("ON CONFLICT \\(roll_number\\) DO UPDATE").
			WithArgs("Alice", "r1", sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

		id, err := repo.Upsert(context.Background(), domain.MemberRef{Name: "Alice", RollNumber: "r1"})

		require.NoError(t, err)
		assert.Equal(t, 5, id)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("вставка без roll number", func(t *testing.T) {
		repo, mock := setupUserRepo(t)

		mock.ExpectQuery("INSERT INTO users \\(name, created_at\\)").
			WithArgs("Bob", sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(6))

		id, err := repo.Upsert(context.Background(), domain.MemberRef{Name: "Bob"})

		require.NoError(t, err)
		assert.Equal(t, 6, id)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ошибка БД", func(t *testing.T) {
		repo, mock := setupUserRepo(t)

		mock.ExpectQuery("INSERT INTO users").WillReturnError(errors.New("db error"))

		_, err := repo.Upsert(context.Background(), domain.MemberRef{Name: "Bob"})

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
