package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devoverflow/backend/internal/domain/entity"
	repo "github.com/devoverflow/backend/internal/domain/repository"
	"github.com/devoverflow/backend/pkg/helpers"
)

type stubUserRepo struct {
	users map[string]*entity.User
}

func (r *stubUserRepo) Create(u *entity.User) error { return nil }
func (r *stubUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return u, nil
}
func (r *stubUserRepo) GetByEmail(string) (*entity.User, error) { return nil, repo.ErrNotFound }
func (r *stubUserRepo) GetByVerificationToken(string) (*entity.User, error) {
	return nil, repo.ErrNotFound
}
func (r *stubUserRepo) GetByResetToken(string) (*entity.User, error) { return nil, repo.ErrNotFound }
func (r *stubUserRepo) Update(u *entity.User) error                  { return nil }
func (r *stubUserRepo) Delete(id string) error                       { return nil }
func (r *stubUserRepo) List() ([]*entity.User, error)                { return nil, nil }
func (r *stubUserRepo) Count() (int, error)                          { return len(r.users), nil }

func protectedRouter(users repo.UserRepository, jwt *helpers.JWTManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", Protect(users, jwt), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetString(CtxUserIDKey),
			"role":    c.GetString(CtxRoleKey),
		})
	})
	r.GET("/admin", Protect(users, jwt), AdminOnly(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func doGet(r *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestProtect_MissingHeader(t *testing.T) {
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	r := protectedRouter(&stubUserRepo{}, jwt)

	assert.Equal(t, http.StatusUnauthorized, doGet(r, "/protected", "").Code)
	assert.Equal(t, http.StatusUnauthorized, doGet(r, "/protected", "Basic abc").Code)
}

func TestProtect_InvalidToken(t *testing.T) {
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	r := protectedRouter(&stubUserRepo{}, jwt)

	w := doGet(r, "/protected", "Bearer not.a.jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "token failed")
}

func TestProtect_ExpiredToken(t *testing.T) {
	jwt := helpers.NewJWTManager("test-secret", -time.Minute)
	tok, _, err := jwt.GenerateToken("u1", entity.RoleUser)
	require.NoError(t, err)

	users := &stubUserRepo{users: map[string]*entity.User{"u1": {ID: "u1", Role: entity.RoleUser}}}
	r := protectedRouter(users, jwt)

	assert.Equal(t, http.StatusUnauthorized, doGet(r, "/protected", "Bearer "+tok).Code)
}

func TestProtect_StaleIdentity(t *testing.T) {
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	tok, _, err := jwt.GenerateToken("deleted-user", entity.RoleUser)
	require.NoError(t, err)

	r := protectedRouter(&stubUserRepo{}, jwt)

	w := doGet(r, "/protected", "Bearer "+tok)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "user no longer exists")
}

func TestProtect_ValidToken(t *testing.T) {
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	tok, _, err := jwt.GenerateToken("u1", entity.RoleUser)
	require.NoError(t, err)

	users := &stubUserRepo{users: map[string]*entity.User{"u1": {ID: "u1", Role: entity.RoleUser}}}
	r := protectedRouter(users, jwt)

	w := doGet(r, "/protected", "Bearer "+tok)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":"u1"`)
	assert.Contains(t, w.Body.String(), `"role":"user"`)
}

func TestProtect_RoleFromRecordNotClaims(t *testing.T) {
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	// token claims admin but the stored record was demoted to user
	tok, _, err := jwt.GenerateToken("u1", entity.RoleAdmin)
	require.NoError(t, err)

	users := &stubUserRepo{users: map[string]*entity.User{"u1": {ID: "u1", Role: entity.RoleUser}}}
	r := protectedRouter(users, jwt)

	assert.Equal(t, http.StatusForbidden, doGet(r, "/admin", "Bearer "+tok).Code)
}

func TestAdminOnly_AllowsAdmin(t *testing.T) {
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	tok, _, err := jwt.GenerateToken("a1", entity.RoleAdmin)
	require.NoError(t, err)

	users := &stubUserRepo{users: map[string]*entity.User{"a1": {ID: "a1", Role: entity.RoleAdmin}}}
	r := protectedRouter(users, jwt)

	assert.Equal(t, http.StatusOK, doGet(r, "/admin", "Bearer "+tok).Code)
}
