package router

import (
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/devoverflow/backend/pkg/response"
)

// Route is one entry of the self-describing API catalogue.
type Route struct {
	Method string `json:"method"`
	Path   string `json:"path"`
}

// index serves GET /api: the endpoint catalogue, grouped by feature area,
// built from whatever the modules actually registered.
func (r *Registry) index(c *gin.Context) {
	grouped := map[string][]Route{}
	for _, rt := range r.Engine.Routes() {
		rest, ok := strings.CutPrefix(rt.Path, "/api/")
		if !ok {
			continue
		}
		section := rest
		if i := strings.IndexByte(rest, '/'); i >= 0 {
			section = rest[:i]
		}
		grouped[section] = append(grouped[section], Route{Method: rt.Method, Path: rt.Path})
	}
	for _, routes := range grouped {
		sort.Slice(routes, func(i, j int) bool {
			if routes[i].Path != routes[j].Path {
				return routes[i].Path < routes[j].Path
			}
			return routes[i].Method < routes[j].Method
		})
	}

	response.Success(c, http.StatusOK, gin.H{
		"name":        "DevOverflow API",
		"version":     "1.0",
		"description": "A Q&A platform for developers",
		"endpoints":   grouped,
	}, "api index")
}
