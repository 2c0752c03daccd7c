package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	c := Load()
	require.NotNil(t, c)

	assert.Equal(t, "devoverflow", c.AppName)
	assert.Equal(t, "8080", c.Port)
	assert.Equal(t, 720*time.Hour, c.JWTTTL)
	assert.Equal(t, time.Hour, c.ActionTokenTTL)
	assert.Equal(t, int64(5*1024*1024), c.MaxFileSize)
	assert.True(t, c.MailSendEnabled)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("ACTION_TOKEN_TTL", "30m")
	t.Setenv("AI_ENABLED", "true")
	t.Setenv("DB_MAX_CONNS", "25")

	c := Load()
	assert.Equal(t, "9999", c.Port)
	assert.Equal(t, 30*time.Minute, c.ActionTokenTTL)
	assert.True(t, c.AIEnabled)
	assert.Equal(t, int32(25), c.DBMaxConns)
}

func TestPostgresDSN(t *testing.T) {
	c := &Config{DBUser: "u", DBPassword: "p", DBHost: "db", DBPort: "5432", DBName: "devoverflow", DBSSLMode: "disable"}
	assert.Equal(t, "postgres://u:p@db:5432/devoverflow?sslmode=disable", c.PostgresDSN())
}

func TestVerifyEmailURL(t *testing.T) {
	c := &Config{BaseURL: "https://api.example.com", VerifyEmailPath: "/api/auth/verify"}
	assert.Equal(t, "https://api.example.com/api/auth/verify/abc123", c.VerifyEmailURL("abc123"))
}

func TestSplitCSVHelpers(t *testing.T) {
	c := &Config{
		CORSAllowedOrigins: "https://a.com, https://b.com,",
		ElasticsearchAddrs: "http://es1:9200",
		AllowedTypes:       "image/png,image/jpeg",
	}
	assert.Equal(t, []string{"https://a.com", "https://b.com"}, c.CORSOrigins())
	assert.Equal(t, []string{"http://es1:9200"}, c.ESAddrs())
	assert.Equal(t, []string{"image/png", "image/jpeg"}, c.AllowedMIMETypes())
}
