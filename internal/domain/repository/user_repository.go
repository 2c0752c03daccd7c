package repository

import "github.com/devoverflow/backend/internal/domain/entity"

// UserRepository defines user persistence operations.
type UserRepository interface {
	Create(u *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	// GetByVerificationToken looks a user up by the sha256 digest of a
	// verification token. Expiry is checked by the caller.
	GetByVerificationToken(digest string) (*entity.User, error)
	GetByResetToken(digest string) (*entity.User, error)
	Update(u *entity.User) error
	Delete(id string) error
	List() ([]*entity.User, error)
	Count() (int, error)
}
