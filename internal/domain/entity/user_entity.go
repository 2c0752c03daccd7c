package entity

import (
	"time"
)

// Roles a user can hold.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is the aggregate root for the account domain.
// Password holds a bcrypt hash; the token-hash fields hold sha256 digests of
// out-of-band action tokens, never the cleartext.
type User struct {
	ID             string
	Name           string
	Lastname       string
	Email          string
	Password       string
	Role           string
	IsVerified     bool
	ProfilePicture string

	VerificationTokenHash string
	VerificationExpiresAt time.Time
	ResetTokenHash        string
	ResetExpiresAt        time.Time

	// Optional third-party key for the AI endpoint. Never serialized outward.
	GeminiAPIKey string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ClearVerificationToken drops the pending verification token slot.
func (u *User) ClearVerificationToken() {
	u.VerificationTokenHash = ""
	u.VerificationExpiresAt = time.Time{}
}

// ClearResetToken drops the pending password-reset token slot.
func (u *User) ClearResetToken() {
	u.ResetTokenHash = ""
	u.ResetExpiresAt = time.Time{}
}
