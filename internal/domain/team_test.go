package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamRecord_Normalize(t *testing.T) {
	t.Run("отрицательный счёт приводится к нулю", func(t *testing.T) {
		team := TeamRecord{TeamName: "Alpha", Score: -5}

		result := team.Normalize()

		assert.Equal(t, 0, result.Score)
		assert.NotNil(t, result.Members, "список участников не должен быть nil")
		assert.Empty(t, result.Members)
	})

	t.Run("участники без имени отбрасываются", func(t *testing.T) {
		team := TeamRecord{
			TeamName: "Alpha",
			Score:    10,
			Members: []MemberRef{
				{Name: "  Alice ", RollNumber: "r1"},
				{Name: "   "},
			},
		}

		result := team.Normalize()

		require.Len(t, result.Members, 1)
		assert.Equal(t, "Alice", result.Members[0].Name)
		assert.Equal(t, "r1", result.Members[0].RollNumber)
		assert.Len(t, team.Members, 2, "исходная запись не должна меняться")
	})
}

func TestTeamRecord_MemberName(t *testing.T) {
	team := TeamRecord{Members: []MemberRef{{Name: "Alice"}}}

	assert.Equal(t, "Alice", team.MemberName(0, "-"))
	assert.Equal(t, "-", team.MemberName(1, "-"))
	assert.Equal(t, "-", team.MemberName(-1, "-"))
}

func TestDomainError_Is(t *testing.T) {
	err := Unavailable(errors.New("connection refused"))

	assert.True(t, errors.Is(err, ErrDataSourceUnavailable))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "connection refused")

	var domainErr *DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, CodeDataSourceUnavailable, domainErr.Code)

	assert.True(t, errors.Is(NewNotFoundError("team Alpha"), ErrNotFound))
	assert.True(t, errors.Is(NewBadRequestError("bad %s", "x"), &DomainError{Code: CodeBadRequest}))
}
