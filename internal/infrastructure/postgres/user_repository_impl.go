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

const userColumns = `id, name, lastname, email, password_hash, role, is_verified,
		COALESCE(verification_token_hash, ''), verification_expires_at,
		COALESCE(reset_token_hash, ''), reset_expires_at,
		COALESCE(gemini_api_key, ''), profile_picture, created_at, updated_at`

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func scanUser(row pgx.Row) (*entity.User, error) {
	u := &entity.User{}
	var vexp, rexp *time.Time
	if err := row.Scan(&u.ID, &u.Name, &u.Lastname, &u.Email, &u.Password, &u.Role,
		&u.IsVerified, &u.VerificationTokenHash, &vexp,
		&u.ResetTokenHash, &rexp, &u.GeminiAPIKey, &u.ProfilePicture,
		&u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	if vexp != nil {
		u.VerificationExpiresAt = *vexp
	}
	if rexp != nil {
		u.ResetExpiresAt = *rexp
	}
	return u, nil
}

func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func nullableText(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (r *UserRepository) Create(u *entity.User) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (name, lastname, email, password_hash, role, is_verified, profile_picture)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`, u.Name, u.Lastname, u.Email, u.Password, u.Role, u.IsVerified, u.ProfilePicture)

	return row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
}

func (r *UserRepository) GetByID(id string) (*entity.User, error) {
	return scanUser(r.pool.QueryRow(context.Background(), `
		SELECT `+userColumns+` FROM users WHERE id = $1
	`, id))
}

func (r *UserRepository) GetByEmail(email string) (*entity.User, error) {
	return scanUser(r.pool.QueryRow(context.Background(), `
		SELECT `+userColumns+` FROM users WHERE email = $1
	`, email))
}

func (r *UserRepository) GetByVerificationToken(digest string) (*entity.User, error) {
	return scanUser(r.pool.QueryRow(context.Background(), `
		SELECT `+userColumns+` FROM users WHERE verification_token_hash = $1
	`, digest))
}

func (r *UserRepository) GetByResetToken(digest string) (*entity.User, error) {
	return scanUser(r.pool.QueryRow(context.Background(), `
		SELECT `+userColumns+` FROM users WHERE reset_token_hash = $1
	`, digest))
}

func (r *UserRepository) Update(u *entity.User) error {
	ctx := context.Background()
	u.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE users
		SET name = $1, lastname = $2, email = $3, password_hash = $4, role = $5,
		    is_verified = $6, verification_token_hash = $7, verification_expires_at = $8,
		    reset_token_hash = $9, reset_expires_at = $10, gemini_api_key = $11,
		    profile_picture = $12, updated_at = $13
		WHERE id = $14
	`, u.Name, u.Lastname, u.Email, u.Password, u.Role,
		u.IsVerified, nullableText(u.VerificationTokenHash), nullableTime(u.VerificationExpiresAt),
		nullableText(u.ResetTokenHash), nullableTime(u.ResetExpiresAt), nullableText(u.GeminiAPIKey),
		u.ProfilePicture, u.UpdatedAt, u.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *UserRepository) Delete(id string) error {
	res, err := r.pool.Exec(context.Background(), `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *UserRepository) List() ([]*entity.User, error) {
	rows, err := r.pool.Query(context.Background(), `
		SELECT `+userColumns+` FROM users ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *UserRepository) Count() (int, error) {
	var n int
	err := r.pool.QueryRow(context.Background(), `SELECT count(*) FROM users`).Scan(&n)
	return n, err
}

var _ repository.UserRepository = (*UserRepository)(nil)
