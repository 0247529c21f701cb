package domain

import "fmt"

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Это позволяет использовать errors.Is()
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return false
}

const (
	CodeDataSourceUnavailable = "DATA_SOURCE_UNAVAILABLE"
	CodeBadRequest            = "BAD_REQUEST"
	CodeTeamExists            = "TEAM_EXISTS"
	CodeNotFound              = "NOT_FOUND"
	CodeRefreshInProgress     = "REFRESH_IN_PROGRESS"
	CodeInternal              = "INTERNAL_ERROR"
)

var (
	// ErrDataSourceUnavailable - источник данных недоступен (БД или HTTP)
	ErrDataSourceUnavailable = &DomainError{
		Code:    CodeDataSourceUnavailable,
		Message: "leaderboard data source is unavailable",
	}

	// ErrTeamExists - команда уже существует
	ErrTeamExists = &DomainError{
		Code:    CodeTeamExists,
		Message: "teamName already exists",
	}

	// ErrNotFound - ресурс не найден
	ErrNotFound = &DomainError{
		Code:    CodeNotFound,
		Message: "resource not found",
	}

	// ErrRefreshInProgress - цикл обновления уже выполняется
	ErrRefreshInProgress = &DomainError{
		Code:    CodeRefreshInProgress,
		Message: "refresh is already in progress",
	}
)

// NewNotFoundError создает ошибку NOT_FOUND с дополнительным контекстом
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewBadRequestError создает ошибку BAD_REQUEST
func NewBadRequestError(format string, args ...any) *DomainError {
	return &DomainError{
		Code:    CodeBadRequest,
		Message: fmt.Sprintf(format, args...),
	}
}

// Unavailable оборачивает причину в ErrDataSourceUnavailable.
func Unavailable(cause error) error {
	return fmt.Errorf("%w: %w", ErrDataSourceUnavailable, cause)
}
