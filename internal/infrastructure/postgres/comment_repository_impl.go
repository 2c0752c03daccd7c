package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devoverflow/backend/internal/domain/entity"
	"github.com/devoverflow/backend/internal/domain/repository"
)

const commentColumns = `id, body, user_id, COALESCE(question_id::text, ''), COALESCE(answer_id::text, ''),
		upvoters, downvoters, created_at`

type CommentRepository struct {
	pool *pgxpool.Pool
}

func NewCommentRepository(pool *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{pool: pool}
}

func scanComment(row pgx.Row) (*entity.Comment, error) {
	c := &entity.Comment{}
	if err := row.Scan(&c.ID, &c.Body, &c.UserID, &c.QuestionID, &c.AnswerID,
		&c.Upvoters, &c.Downvoters, &c.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *CommentRepository) Create(c *entity.Comment) error {
	row := r.pool.QueryRow(context.Background(), `
		INSERT INTO comments (body, user_id, question_id, answer_id)
		VALUES ($1, $2, NULLIF($3, '')::uuid, NULLIF($4, '')::uuid)
		RETURNING id, upvoters, downvoters, created_at
	`, c.Body, c.UserID, c.QuestionID, c.AnswerID)
	return row.Scan(&c.ID, &c.Upvoters, &c.Downvoters, &c.CreatedAt)
}

func (r *CommentRepository) GetByID(id string) (*entity.Comment, error) {
	return scanComment(r.pool.QueryRow(context.Background(), `
		SELECT `+commentColumns+` FROM comments WHERE id = $1
	`, id))
}

func (r *CommentRepository) Update(c *entity.Comment) error {
	res, err := r.pool.Exec(context.Background(), `
		UPDATE comments SET body = $1 WHERE id = $2
	`, c.Body, c.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *CommentRepository) UpdateVotes(id string, votes entity.VoteState) error {
	res, err := r.pool.Exec(context.Background(), `
		UPDATE comments SET upvoters = $1, downvoters = $2 WHERE id = $3
	`, votes.Upvoters, votes.Downvoters, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *CommentRepository) Delete(id string) error {
	res, err := r.pool.Exec(context.Background(), `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *CommentRepository) ListByQuestion(questionID string) ([]*entity.Comment, error) {
	return r.list(`question_id = $1`, questionID)
}

func (r *CommentRepository) ListByAnswer(answerID string) ([]*entity.Comment, error) {
	return r.list(`answer_id = $1`, answerID)
}

func (r *CommentRepository) list(where string, arg any) ([]*entity.Comment, error) {
	rows, err := r.pool.Query(context.Background(), `
		SELECT `+commentColumns+` FROM comments WHERE `+where+`
		ORDER BY created_at ASC
	`, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.Comment
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

var _ repository.CommentRepository = (*CommentRepository)(nil)
