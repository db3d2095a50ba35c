package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"agentcrm-backend/internal/recommendations"
	"agentcrm-backend/internal/shared/config"
	"agentcrm-backend/internal/shared/metrics"
	"agentcrm-backend/internal/shared/server/middleware"
	"agentcrm-backend/internal/shared/server/respond"
	"agentcrm-backend/internal/users"
)

// RouterDeps lists the handlers the router wires up.
type RouterDeps struct {
	Config                 config.Config
	UserHandler            *users.Handler
	RecommendationsHandler *recommendations.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	// Unauthenticated surface.
	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})

	authed := api.Group("")
	authed.Use(middleware.Auth(deps.Config.Env))
	// Resolution hits four collaborators per call; keep bursts per user in check.
	authed.Use(middleware.RateLimit(middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			"resolve": {Rate: 2, Burst: 10},
		},
		GroupFor: func(c *gin.Context) string {
			if strings.HasSuffix(c.FullPath(), "/bna/next") {
				return "resolve"
			}
			return ""
		},
	}))
	if deps.UserHandler != nil {
		deps.UserHandler.RegisterRoutes(authed)
	}
	if deps.RecommendationsHandler != nil {
		deps.RecommendationsHandler.RegisterRoutes(authed)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
