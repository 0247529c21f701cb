package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"github.com/Mukul-only/emojileaderboard/internal/domain"
	"github.com/Mukul-only/emojileaderboard/internal/repository"
)

var _ repository.TeamRepository = (*teamRepository)(nil)

type teamRepository struct {
	db *sql.DB
}

func NewTeamRepository(db *sql.DB) *teamRepository {
	return &teamRepository{db: db}
}

// Участники хранятся массивом id в leaderboards.member_ids и подтягиваются
// из users с сохранением порядка. Неразрешённые id отбрасываются.
const selectTeamsQuery = `
	SELECT l.id, l.team_name, l.score, u.name, u.roll_number
	FROM leaderboards l
	LEFT JOIN LATERAL unnest(l.member_ids) WITH ORDINALITY AS m(user_id, ord) ON TRUE
	LEFT JOIN users u ON u.id = m.user_id
`

func (r *teamRepository) List(ctx context.Context) ([]domain.TeamRecord, error) {
	query := selectTeamsQuery + `
		ORDER BY l.score DESC NULLS LAST, l.id, m.ord
	`
	return r.queryTeams(ctx, query)
}

func (r *teamRepository) GetByName(ctx context.Context, name string) (*domain.TeamRecord, error) {
	query := selectTeamsQuery + `
		WHERE l.team_name = $1
		ORDER BY m.ord
	`
	teams, err := r.queryTeams(ctx, query, name)
	if err != nil {
		return nil, err
	}
	if len(teams) == 0 {
		return nil, repository.ErrTeamNotFound
	}
	return &teams[0], nil
}

func (r *teamRepository) queryTeams(ctx context.Context, query string, args ...any) ([]domain.TeamRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teams := make([]domain.TeamRecord, 0)
	lastID := -1
	for rows.Next() {
		var (
			teamID     int
			teamName   string
			score      sql.NullInt64
			memberName sql.NullString
			rollNumber sql.NullString
		)
		if err := rows.Scan(&teamID, &teamName, &score, &memberName, &rollNumber); err != nil {
			return nil, err
		}

		if teamID != lastID {
			teams = append(teams, domain.TeamRecord{
				ID:       strconv.Itoa(teamID),
				TeamName: teamName,
				Score:    int(score.Int64),
				Members:  []domain.MemberRef{},
			})
			lastID = teamID
		}

		if memberName.Valid {
			current := &teams[len(teams)-1]
			current.Members = append(current.Members, domain.MemberRef{
				Name:       memberName.String,
				RollNumber: rollNumber.String,
			})
		}
	}

	return teams, rows.Err()
}

func (r *teamRepository) Create(ctx context.Context, team *domain.TeamRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	userRepo := NewUserRepositoryWithTx(tx)
	memberIDs := make([]int, 0, len(team.Members))
	for _, member := range team.Members {
		id, err := userRepo.Upsert(ctx, member)
		if err != nil {
			return err
		}
		memberIDs = append(memberIDs, id)
	}

	query := `
		INSERT INTO leaderboards (team_name, score, member_ids, created_at)
		VALUES ($1, $2, $3::integer[], $4)
		ON CONFLICT (team_name) DO NOTHING
		RETURNING id
	`

	var teamID int
	err = tx.QueryRowContext(ctx, query, team.TeamName, team.Score, formatIntArray(memberIDs), time.Now()).Scan(&teamID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return repository.ErrTeamExists
		}
		return err
	}
	team.ID = strconv.Itoa(teamID)

	return tx.Commit()
}

func (r *teamRepository) UpdateScore(ctx context.Context, name string, score int) error {
	query := `
		UPDATE leaderboards
		SET score = $2, updated_at = $3
		WHERE team_name = $1
	`

	result, err := r.db.ExecContext(ctx, query, name, score, time.Now())
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return repository.ErrTeamNotFound
	}

	return nil
}
