package assignments

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"staffing-backend/internal/employees"
	"staffing-backend/internal/roster"
	"staffing-backend/internal/shared/server/middleware"
	"staffing-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches assignment routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/assignments", h.distribute)
}

type distributeRequest struct {
	Tasks []string `json:"tasks"`
}

func (h *Handler) distribute(c *gin.Context) {
	sessionID := middleware.SessionIDFromContext(c)

	var req distributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	tasks := make([]string, 0, len(req.Tasks))
	for _, task := range req.Tasks {
		if trimmed := strings.TrimSpace(task); trimmed != "" {
			tasks = append(tasks, trimmed)
		}
	}
	if len(tasks) == 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "tasks is required", nil)
		return
	}

	snap, err := h.Svc.DistributeTasks(c.Request.Context(), sessionID, tasks)
	if err != nil {
		switch {
		case errors.Is(err, roster.ErrNotRanked):
			respond.Error(c, http.StatusConflict, "ranking_required", "rank the roster before distributing tasks", nil)
		case errors.Is(err, roster.ErrStaleRoster):
			respond.Error(c, http.StatusConflict, "roster_changed", "The roster changed while distributing; please rank and distribute again", nil)
		case errors.Is(err, ErrDistributionFailed):
			respond.Error(c, http.StatusBadGateway, "distribution_failed", "Task distribution failed; please try again", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal", "failed to distribute tasks", nil)
		}
		return
	}

	c.Set("rosterVersion", snap.Version)
	respond.OK(c, employees.ToSnapshotResponse(snap))
}
