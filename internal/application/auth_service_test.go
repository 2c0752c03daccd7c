package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devoverflow/backend/config"
	"github.com/devoverflow/backend/internal/domain/entity"
	repo "github.com/devoverflow/backend/internal/domain/repository"
	"github.com/devoverflow/backend/pkg/helpers"
	"github.com/devoverflow/backend/pkg/mailer"
	tpl "github.com/devoverflow/backend/pkg/mailer/templates"
)

// memUserRepo is an in-memory UserRepository for service tests.
type memUserRepo struct {
	users map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*entity.User{}}
}

func (r *memUserRepo) Create(u *entity.User) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	u.CreatedAt = time.Now()
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (r *memUserRepo) GetByVerificationToken(digest string) (*entity.User, error) {
	for _, u := range r.users {
		if digest != "" && u.VerificationTokenHash == digest {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (r *memUserRepo) GetByResetToken(digest string) (*entity.User, error) {
	for _, u := range r.users {
		if digest != "" && u.ResetTokenHash == digest {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (r *memUserRepo) Update(u *entity.User) error {
	if _, ok := r.users[u.ID]; !ok {
		return repo.ErrNotFound
	}
	u.UpdatedAt = time.Now()
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) Delete(id string) error {
	delete(r.users, id)
	return nil
}

func (r *memUserRepo) List() ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memUserRepo) Count() (int, error) { return len(r.users), nil }

// captureSender records outbound mail jobs instead of queueing them.
type captureSender struct {
	sent []mailer.EmailJob
	fail bool
}

func (s *captureSender) Send(ctx context.Context, job mailer.EmailJob) error {
	if s.fail {
		return errors.New("smtp down")
	}
	s.sent = append(s.sent, job)
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		AppName:          "devoverflow",
		AdminEmail:       "root@devoverflow.local",
		ActionTokenTTL:   time.Hour,
		BaseURL:          "http://localhost:8080",
		VerifyEmailPath:  "/api/auth/verify",
		ResetPasswordURL: "http://localhost:8080/reset-password",
		MailSendEnabled:  true,
		DefaultAvatar:    "https://cdn.example.com/default.png",
	}
}

func newTestAuthService() (*AuthService, *memUserRepo, *captureSender) {
	users := newMemUserRepo()
	mail := &captureSender{}
	svc := NewAuthService(users, helpers.NewJWTManager("test-secret", time.Hour), mail, nil, testConfig())
	return svc, users, mail
}

func registeredUser(t *testing.T, svc *AuthService, mail *captureSender, email string) (*entity.User, string) {
	t.Helper()
	u, err := svc.Register(context.Background(), "Ada", "Lovelace", email, "difference-engine")
	require.NoError(t, err)
	require.NotEmpty(t, mail.sent)
	// the cleartext is the last path segment of the action URL
	token := lastPathSegment(t, actionURL(t, mail.sent[len(mail.sent)-1]))
	return u, token
}

// actionURL pulls the action link out of a captured mail job.
func actionURL(t *testing.T, job mailer.EmailJob) string {
	t.Helper()
	link, ok := job.Data["ActionURL"].(string)
	require.True(t, ok, "mail job carries no action URL")
	return link
}

// lastPathSegment pulls the 40-hex-char token out of a delivered action
// link, either .../verify/<token> or ...?token=<token>.
func lastPathSegment(t *testing.T, html string) string {
	t.Helper()
	const hexLen = 40
	for i := 1; i+hexLen <= len(html); i++ {
		seg := html[i : i+hexLen]
		if !isHex(seg) {
			continue
		}
		if i+hexLen < len(html) && isHexByte(html[i+hexLen]) {
			continue
		}
		if html[i-1] == '/' || html[i-1] == '=' {
			return seg
		}
	}
	t.Fatal("no token found in mail body")
	return ""
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isHexByte(s[i]) {
			return false
		}
	}
	return len(s) > 0
}

func isHexByte(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f')
}

func TestRegisterVerifyLogin(t *testing.T) {
	svc, users, mail := newTestAuthService()
	ctx := context.Background()

	u, token := registeredUser(t, svc, mail, "ada@example.com")
	assert.False(t, u.IsVerified)
	assert.Equal(t, entity.RoleUser, u.Role)

	// stored row holds the digest, never the cleartext
	stored, err := users.GetByID(u.ID)
	require.NoError(t, err)
	assert.Equal(t, helpers.HashActionToken(token), stored.VerificationTokenHash)
	assert.NotContains(t, stored.VerificationTokenHash, token)

	// login before verification is refused with the dedicated error
	_, _, err = svc.Login(ctx, "ada@example.com", "difference-engine")
	assert.ErrorIs(t, err, ErrNotVerified)

	// verification flips the flag, clears the slot, and logs in
	verified, sess, err := svc.VerifyEmail(ctx, token)
	require.NoError(t, err)
	assert.True(t, verified.IsVerified)
	assert.Empty(t, verified.VerificationTokenHash)
	assert.NotEmpty(t, sess.Token)

	// the token is single-use
	_, _, err = svc.VerifyEmail(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidOrExpiredToken)

	// password login now works
	_, sess, err = svc.Login(ctx, "ada@example.com", "difference-engine")
	require.NoError(t, err)
	claims, err := svc.JWT.ParseToken(sess.Token)
	require.NoError(t, err)
	assert.Equal(t, verified.ID, claims.UserID)
	assert.Equal(t, entity.RoleUser, claims.Role)
}

func TestRegister_AdminEmailGetsAdminRole(t *testing.T) {
	svc, _, mail := newTestAuthService()

	u, _ := registeredUser(t, svc, mail, "root@devoverflow.local")
	assert.Equal(t, entity.RoleAdmin, u.Role)
}

func TestRegister_ReplacesUnverifiedAccount(t *testing.T) {
	svc, users, mail := newTestAuthService()
	ctx := context.Background()

	first, firstToken := registeredUser(t, svc, mail, "ada@example.com")
	second, err := svc.Register(ctx, "Ada", "Lovelace", "ada@example.com", "new-password")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	_, err = users.GetByID(first.ID)
	assert.ErrorIs(t, err, repo.ErrNotFound)

	// the first token died with the first row
	_, _, err = svc.VerifyEmail(ctx, firstToken)
	assert.ErrorIs(t, err, ErrInvalidOrExpiredToken)
}

func TestRegister_VerifiedAccountConflicts(t *testing.T) {
	svc, _, mail := newTestAuthService()
	ctx := context.Background()

	_, token := registeredUser(t, svc, mail, "ada@example.com")
	_, _, err := svc.VerifyEmail(ctx, token)
	require.NoError(t, err)

	_, err = svc.Register(ctx, "Eve", "Impostor", "ada@example.com", "whatever")
	assert.ErrorIs(t, err, ErrDuplicateAccount)
}

func TestRegister_DeliveryFailureClearsTokenSlot(t *testing.T) {
	svc, users, mail := newTestAuthService()
	mail.fail = true

	_, err := svc.Register(context.Background(), "Ada", "Lovelace", "ada@example.com", "pw123456")
	assert.ErrorIs(t, err, ErrDeliveryFailure)

	// account row survives but the token slot is cleared
	u, err := users.GetByEmail("ada@example.com")
	require.NoError(t, err)
	assert.False(t, u.IsVerified)
	assert.Empty(t, u.VerificationTokenHash)
	assert.True(t, u.VerificationExpiresAt.IsZero())
}

func TestVerifyEmail_ExpiredToken(t *testing.T) {
	svc, users, mail := newTestAuthService()
	ctx := context.Background()

	u, token := registeredUser(t, svc, mail, "ada@example.com")

	stored, err := users.GetByID(u.ID)
	require.NoError(t, err)
	stored.VerificationExpiresAt = time.Now().Add(-time.Minute)
	require.NoError(t, users.Update(stored))

	_, _, err = svc.VerifyEmail(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidOrExpiredToken)
}

func TestLogin_UnknownAndWrongPasswordIndistinguishable(t *testing.T) {
	svc, _, mail := newTestAuthService()
	ctx := context.Background()

	_, token := registeredUser(t, svc, mail, "ada@example.com")
	_, _, err := svc.VerifyEmail(ctx, token)
	require.NoError(t, err)

	_, _, errUnknown := svc.Login(ctx, "nobody@example.com", "difference-engine")
	_, _, errWrongPw := svc.Login(ctx, "ada@example.com", "analytical-engine")

	assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPw, ErrInvalidCredentials)
	assert.Equal(t, errUnknown, errWrongPw)
}

func TestForgotAndResetPassword(t *testing.T) {
	svc, users, mail := newTestAuthService()
	ctx := context.Background()

	u, token := registeredUser(t, svc, mail, "ada@example.com")
	_, _, err := svc.VerifyEmail(ctx, token)
	require.NoError(t, err)

	require.NoError(t, svc.ForgotPassword(ctx, "ada@example.com"))
	require.Len(t, mail.sent, 2)
	resetToken := lastPathSegment(t, actionURL(t, mail.sent[1]))

	stored, err := users.GetByID(u.ID)
	require.NoError(t, err)
	assert.Equal(t, helpers.HashActionToken(resetToken), stored.ResetTokenHash)

	// mismatched confirmation is rejected before any state change
	_, _, err = svc.ResetPassword(ctx, resetToken, "new-password", "other-password")
	assert.ErrorIs(t, err, ErrPasswordMismatch)

	// the reset succeeds and auto-logs-in
	_, sess, err := svc.ResetPassword(ctx, resetToken, "new-password", "new-password")
	require.NoError(t, err)
	assert.NotEmpty(t, sess.Token)

	// old password is dead, new one works
	_, _, err = svc.Login(ctx, "ada@example.com", "difference-engine")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, _, err = svc.Login(ctx, "ada@example.com", "new-password")
	assert.NoError(t, err)

	// the reset token is single-use
	_, _, err = svc.ResetPassword(ctx, resetToken, "again", "again")
	assert.ErrorIs(t, err, ErrInvalidOrExpiredToken)
}

func TestRegister_QueuesRenderableTemplateJob(t *testing.T) {
	svc, _, mail := newTestAuthService()

	_, err := svc.Register(context.Background(), "Ada", "Lovelace", "ada@example.com", "difference-engine")
	require.NoError(t, err)
	require.Len(t, mail.sent, 1)

	// the job ships template name plus data, not a pre-rendered body
	job := mail.sent[0]
	assert.Equal(t, "ada@example.com", job.To)
	assert.Equal(t, tpl.VerifyEmail, job.Template)
	assert.Empty(t, job.HTML)

	// the consuming side renders it to a complete message
	subject, html, err := mailer.Render(job)
	require.NoError(t, err)
	assert.Equal(t, tpl.SubjectFor(tpl.VerifyEmail), subject)
	assert.Contains(t, html, actionURL(t, job))
	assert.Contains(t, html, "Ada")
}

func TestForgotPassword_RequiresVerifiedAccount(t *testing.T) {
	svc, _, mail := newTestAuthService()
	ctx := context.Background()

	registeredUser(t, svc, mail, "ada@example.com")

	assert.ErrorIs(t, svc.ForgotPassword(ctx, "ada@example.com"), ErrNoSuchVerifiedUser)
	assert.ErrorIs(t, svc.ForgotPassword(ctx, "nobody@example.com"), ErrNoSuchVerifiedUser)
}
