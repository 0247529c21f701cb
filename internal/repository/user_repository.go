package repository

import (
	"context"

	"github.com/Mukul-only/emojileaderboard/internal/domain"
)

type UserRepository interface {
	// Upsert создаёт участника или обновляет имя по roll number и возвращает его id.
	Upsert(ctx context.Context, member domain.MemberRef) (int, error)
}
