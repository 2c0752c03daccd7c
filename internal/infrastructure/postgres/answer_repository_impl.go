package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devoverflow/backend/internal/domain/entity"
	"github.com/devoverflow/backend/internal/domain/repository"
)

const answerColumns = `id, question_id, user_id, body, is_accepted, upvoters, downvoters, created_at, updated_at`

type AnswerRepository struct {
	pool *pgxpool.Pool
}

func NewAnswerRepository(pool *pgxpool.Pool) *AnswerRepository {
	return &AnswerRepository{pool: pool}
}

func scanAnswer(row pgx.Row) (*entity.Answer, error) {
	a := &entity.Answer{}
	if err := row.Scan(&a.ID, &a.QuestionID, &a.UserID, &a.Body, &a.IsAccepted,
		&a.Upvoters, &a.Downvoters, &a.CreatedAt, &a.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (r *AnswerRepository) Create(a *entity.Answer) error {
	row := r.pool.QueryRow(context.Background(), `
		INSERT INTO answers (question_id, user_id, body)
		VALUES ($1, $2, $3)
		RETURNING id, is_accepted, upvoters, downvoters, created_at, updated_at
	`, a.QuestionID, a.UserID, a.Body)
	return row.Scan(&a.ID, &a.IsAccepted, &a.Upvoters, &a.Downvoters, &a.CreatedAt, &a.UpdatedAt)
}

func (r *AnswerRepository) GetByID(id string) (*entity.Answer, error) {
	return scanAnswer(r.pool.QueryRow(context.Background(), `
		SELECT `+answerColumns+` FROM answers WHERE id = $1
	`, id))
}

func (r *AnswerRepository) Update(a *entity.Answer) error {
	a.UpdatedAt = time.Now()
	res, err := r.pool.Exec(context.Background(), `
		UPDATE answers SET body = $1, is_accepted = $2, updated_at = $3
		WHERE id = $4
	`, a.Body, a.IsAccepted, a.UpdatedAt, a.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *AnswerRepository) UpdateVotes(id string, votes entity.VoteState) error {
	res, err := r.pool.Exec(context.Background(), `
		UPDATE answers SET upvoters = $1, downvoters = $2, updated_at = now()
		WHERE id = $3
	`, votes.Upvoters, votes.Downvoters, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *AnswerRepository) Delete(id string) error {
	res, err := r.pool.Exec(context.Background(), `DELETE FROM answers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *AnswerRepository) ListByQuestion(questionID string) ([]*entity.Answer, error) {
	rows, err := r.pool.Query(context.Background(), `
		SELECT `+answerColumns+` FROM answers
		WHERE question_id = $1
		ORDER BY is_accepted DESC, created_at ASC
	`, questionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.Answer
	for rows.Next() {
		a, err := scanAnswer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *AnswerRepository) Count() (int, error) {
	var n int
	err := r.pool.QueryRow(context.Background(), `SELECT count(*) FROM answers`).Scan(&n)
	return n, err
}

var _ repository.AnswerRepository = (*AnswerRepository)(nil)
