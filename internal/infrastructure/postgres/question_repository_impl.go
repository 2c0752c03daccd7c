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

const questionColumns = `id, title, body, tags, user_id, upvoters, downvoters, created_at, updated_at`

type QuestionRepository struct {
	pool *pgxpool.Pool
}

func NewQuestionRepository(pool *pgxpool.Pool) *QuestionRepository {
	return &QuestionRepository{pool: pool}
}

func scanQuestion(row pgx.Row) (*entity.Question, error) {
	q := &entity.Question{}
	if err := row.Scan(&q.ID, &q.Title, &q.Body, &q.Tags, &q.UserID,
		&q.Upvoters, &q.Downvoters, &q.CreatedAt, &q.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return q, nil
}

func (r *QuestionRepository) Create(q *entity.Question) error {
	row := r.pool.QueryRow(context.Background(), `
		INSERT INTO questions (title, body, tags, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, upvoters, downvoters, created_at, updated_at
	`, q.Title, q.Body, q.Tags, q.UserID)
	return row.Scan(&q.ID, &q.Upvoters, &q.Downvoters, &q.CreatedAt, &q.UpdatedAt)
}

func (r *QuestionRepository) GetByID(id string) (*entity.Question, error) {
	return scanQuestion(r.pool.QueryRow(context.Background(), `
		SELECT `+questionColumns+` FROM questions WHERE id = $1
	`, id))
}

func (r *QuestionRepository) Update(q *entity.Question) error {
	q.UpdatedAt = time.Now()
	res, err := r.pool.Exec(context.Background(), `
		UPDATE questions
		SET title = $1, body = $2, tags = $3, updated_at = $4
		WHERE id = $5
	`, q.Title, q.Body, q.Tags, q.UpdatedAt, q.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *QuestionRepository) UpdateVotes(id string, votes entity.VoteState) error {
	res, err := r.pool.Exec(context.Background(), `
		UPDATE questions SET upvoters = $1, downvoters = $2, updated_at = now()
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

func (r *QuestionRepository) Delete(id string) error {
	res, err := r.pool.Exec(context.Background(), `DELETE FROM questions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *QuestionRepository) List(limit, offset int) ([]*entity.Question, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	rows, err := r.pool.Query(context.Background(), `
		SELECT `+questionColumns+` FROM questions
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.Question
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

func (r *QuestionRepository) TagCounts(limit int) ([]entity.TagCount, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := r.pool.Query(context.Background(), `
		SELECT tag, count(*) AS uses
		FROM questions, unnest(tags) AS tag
		GROUP BY tag
		ORDER BY uses DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.TagCount, 0, limit)
	for rows.Next() {
		var tc entity.TagCount
		if err := rows.Scan(&tc.Tag, &tc.Count); err != nil {
			return nil, err
		}
		out = append(out, tc)
	}
	return out, rows.Err()
}

func (r *QuestionRepository) Count() (int, error) {
	var n int
	err := r.pool.QueryRow(context.Background(), `SELECT count(*) FROM questions`).Scan(&n)
	return n, err
}

var _ repository.QuestionRepository = (*QuestionRepository)(nil)
