package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubModule struct{}

func (stubModule) Register(rg *gin.RouterGroup) {
	ok := func(c *gin.Context) { c.Status(http.StatusNoContent) }
	rg.GET("/questions", ok)
	rg.POST("/questions", ok)
	rg.GET("/questions/:id", ok)
	rg.POST("/auth/login", ok)
}

func TestIndex_ListsRegisteredRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })

	r := NewRegistry(engine)
	r.Add(stubModule{})
	r.RegisterAll()

	req := httptest.NewRequest(http.MethodGet, "/api", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Success bool `json:"success"`
		Data    struct {
			Name      string             `json:"name"`
			Endpoints map[string][]Route `json:"endpoints"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.True(t, envelope.Success)
	assert.Equal(t, "DevOverflow API", envelope.Data.Name)

	// grouped by feature area, sorted by path then method
	require.Contains(t, envelope.Data.Endpoints, "questions")
	assert.Equal(t, []Route{
		{Method: http.MethodGet, Path: "/api/questions"},
		{Method: http.MethodPost, Path: "/api/questions"},
		{Method: http.MethodGet, Path: "/api/questions/:id"},
	}, envelope.Data.Endpoints["questions"])
	assert.Equal(t, []Route{{Method: http.MethodPost, Path: "/api/auth/login"}}, envelope.Data.Endpoints["auth"])

	// routes outside /api stay out of the catalogue
	assert.NotContains(t, envelope.Data.Endpoints, "healthz")
}
