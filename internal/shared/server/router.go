package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"staffing-backend/internal/assignments"
	"staffing-backend/internal/employees"
	"staffing-backend/internal/rankings"
	"staffing-backend/internal/shared/config"
	"staffing-backend/internal/shared/metrics"
	"staffing-backend/internal/shared/server/middleware"
	"staffing-backend/internal/shared/server/respond"
)

// RouterDeps carries the handlers the router mounts.
type RouterDeps struct {
	Config             config.Config
	EmployeesHandler   *employees.Handler
	RankingsHandler    *rankings.Handler
	AssignmentsHandler *assignments.Handler
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
		middleware.Session(),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	deps.EmployeesHandler.RegisterRoutes(api)
	deps.RankingsHandler.RegisterRoutes(api)
	deps.AssignmentsHandler.RegisterRoutes(api)

	r.GET("/metrics", metrics.Handler())

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
