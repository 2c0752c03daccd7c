package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/devoverflow/backend/config"
	"github.com/devoverflow/backend/internal/domain/entity"
	repo "github.com/devoverflow/backend/internal/domain/repository"
	"github.com/devoverflow/backend/pkg/helpers"
	"github.com/devoverflow/backend/pkg/mailer"
	tpl "github.com/devoverflow/backend/pkg/mailer/templates"
)

var (
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrNotVerified           = errors.New("please verify your email address before logging in")
	ErrDuplicateAccount      = errors.New("an account with this email is already verified")
	ErrInvalidOrExpiredToken = errors.New("invalid or expired token")
	ErrNoSuchVerifiedUser    = errors.New("there is no verified user with that email")
	ErrPasswordMismatch      = errors.New("passwords do not match")
	ErrDeliveryFailure       = errors.New("email could not be sent, please try again")
	ErrUserNotFound          = errors.New("user not found")
)

// AuthService owns the credential lifecycle:
// Unregistered -> PendingVerification -> Verified, plus login and the
// forgot/reset flow. Verification and reset tokens occupy independent slots
// on the user row; only digests are persisted.
type AuthService struct {
	Repo   repo.UserRepository
	JWT    *helpers.JWTManager
	Mail   mailer.Sender
	Logger *logrus.Logger
	Cfg    *config.Config
}

func NewAuthService(r repo.UserRepository, jwt *helpers.JWTManager, mail mailer.Sender, logger *logrus.Logger, cfg *config.Config) *AuthService {
	return &AuthService{Repo: r, JWT: jwt, Mail: mail, Logger: logger, Cfg: cfg}
}

// Session is an issued session token with its expiry.
type Session struct {
	Token     string
	ExpiresAt time.Time
}

func (s *AuthService) issueSession(u *entity.User) (Session, error) {
	token, exp, err := s.JWT.GenerateToken(u.ID, u.Role)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate session token failed")
		}
		return Session{}, err
	}
	return Session{Token: token, ExpiresAt: exp}, nil
}

// Register creates a new pending account and sends a verification email.
// A still-unverified account with the same email is replaced; a verified one
// is a conflict. If delivery fails the token slot is cleared but the pending
// row is kept, so the caller must re-register to get a fresh token.
func (s *AuthService) Register(ctx context.Context, name, lastname, email, password string) (*entity.User, error) {
	existing, err := s.Repo.GetByEmail(email)
	switch {
	case err == nil:
		if existing.IsVerified {
			return nil, ErrDuplicateAccount
		}
		if err := s.Repo.Delete(existing.ID); err != nil {
			return nil, err
		}
	case errors.Is(err, repo.ErrNotFound):
		// fresh registration
	default:
		return nil, err
	}

	role := entity.RoleUser
	if s.Cfg.AdminEmail != "" && email == s.Cfg.AdminEmail {
		role = entity.RoleAdmin
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, err
	}

	u := &entity.User{
		Name:           name,
		Lastname:       lastname,
		Email:          email,
		Password:       hash,
		Role:           role,
		IsVerified:     false,
		ProfilePicture: s.Cfg.DefaultAvatar,
	}
	if err := s.Repo.Create(u); err != nil {
		return nil, err
	}

	tok, err := helpers.IssueActionToken(s.Cfg.ActionTokenTTL)
	if err != nil {
		return nil, err
	}
	u.VerificationTokenHash = tok.Digest
	u.VerificationExpiresAt = tok.ExpiresAt
	if err := s.Repo.Update(u); err != nil {
		return nil, err
	}

	if err := s.deliver(ctx, u, tpl.VerifyEmail, s.Cfg.VerifyEmailURL(tok.Cleartext)); err != nil {
		// Token rollback only; the pending account row stays.
		u.ClearVerificationToken()
		_ = s.Repo.Update(u)
		return nil, ErrDeliveryFailure
	}
	return u, nil
}

// VerifyEmail flips a pending account to verified and logs the user in.
func (s *AuthService) VerifyEmail(ctx context.Context, tokenCleartext string) (*entity.User, Session, error) {
	digest := helpers.HashActionToken(tokenCleartext)
	u, err := s.Repo.GetByVerificationToken(digest)
	if err != nil {
		return nil, Session{}, ErrInvalidOrExpiredToken
	}
	if !helpers.ValidateActionToken(tokenCleartext, u.VerificationTokenHash, u.VerificationExpiresAt, time.Now()) {
		return nil, Session{}, ErrInvalidOrExpiredToken
	}

	u.IsVerified = true
	u.ClearVerificationToken()
	if err := s.Repo.Update(u); err != nil {
		return nil, Session{}, err
	}

	sess, err := s.issueSession(u)
	if err != nil {
		return nil, Session{}, err
	}
	return u, sess, nil
}

// Login authenticates a verified account. Unknown email and wrong password
// are indistinguishable to the caller; an unverified account is reported as
// such regardless of password correctness.
func (s *AuthService) Login(ctx context.Context, email, password string) (*entity.User, Session, error) {
	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, Session{}, ErrInvalidCredentials
	}
	if !u.IsVerified {
		return nil, Session{}, ErrNotVerified
	}
	if !helpers.CheckPassword(u.Password, password) {
		return nil, Session{}, ErrInvalidCredentials
	}

	sess, err := s.issueSession(u)
	if err != nil {
		return nil, Session{}, err
	}
	return u, sess, nil
}

// ForgotPassword issues a reset token for a verified account and mails it.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	u, err := s.Repo.GetByEmail(email)
	if err != nil || !u.IsVerified {
		return ErrNoSuchVerifiedUser
	}

	tok, err := helpers.IssueActionToken(s.Cfg.ActionTokenTTL)
	if err != nil {
		return err
	}
	u.ResetTokenHash = tok.Digest
	u.ResetExpiresAt = tok.ExpiresAt
	if err := s.Repo.Update(u); err != nil {
		return err
	}

	if err := s.deliver(ctx, u, tpl.ResetPassword, s.Cfg.ResetPasswordURL+"?token="+tok.Cleartext); err != nil {
		u.ClearResetToken()
		_ = s.Repo.Update(u)
		return ErrDeliveryFailure
	}
	return nil
}

// ResetPassword validates a reset token and stores a freshly hashed
// password, then logs the user in.
func (s *AuthService) ResetPassword(ctx context.Context, tokenCleartext, newPassword, confirmPassword string) (*entity.User, Session, error) {
	if newPassword != confirmPassword {
		return nil, Session{}, ErrPasswordMismatch
	}

	digest := helpers.HashActionToken(tokenCleartext)
	u, err := s.Repo.GetByResetToken(digest)
	if err != nil {
		return nil, Session{}, ErrInvalidOrExpiredToken
	}
	if !helpers.ValidateActionToken(tokenCleartext, u.ResetTokenHash, u.ResetExpiresAt, time.Now()) {
		return nil, Session{}, ErrInvalidOrExpiredToken
	}

	hash, err := helpers.HashPassword(newPassword)
	if err != nil {
		return nil, Session{}, err
	}
	u.Password = hash
	u.ClearResetToken()
	if err := s.Repo.Update(u); err != nil {
		return nil, Session{}, err
	}

	sess, err := s.issueSession(u)
	if err != nil {
		return nil, Session{}, err
	}
	return u, sess, nil
}

// GetProfile loads a user by id.
func (s *AuthService) GetProfile(id string) (*entity.User, error) {
	u, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (s *AuthService) deliver(ctx context.Context, u *entity.User, template, actionURL string) error {
	if !s.Cfg.MailSendEnabled {
		if s.Logger != nil {
			s.Logger.WithFields(logrus.Fields{"to": u.Email, "template": template}).
				Info("mail sending disabled; skipping delivery")
		}
		return nil
	}
	// The job carries the template name and its data; rendering happens on
	// the consuming side.
	return s.Mail.Send(ctx, mailer.EmailJob{
		To:       u.Email,
		Template: template,
		Data: tpl.ToMap(tpl.EmailData{
			Name:      u.Name,
			ActionURL: actionURL,
			ExpiresIn: s.Cfg.ActionTokenTTL,
			AppName:   s.Cfg.AppName,
		}),
	})
}
