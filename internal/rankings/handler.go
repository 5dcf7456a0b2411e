package rankings

import (
	"errors"
	"net/http"

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

// RegisterRoutes attaches ranking routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/rankings", h.rank)
}

func (h *Handler) rank(c *gin.Context) {
	sessionID := middleware.SessionIDFromContext(c)

	snap, err := h.Svc.RankRoster(c.Request.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, roster.ErrEmptyRoster):
			respond.Error(c, http.StatusBadRequest, "validation_error", "add at least one employee before ranking", nil)
		case errors.Is(err, roster.ErrStaleRoster):
			respond.Error(c, http.StatusConflict, "roster_changed", "The roster changed while ranking; please rank again", nil)
		case errors.Is(err, ErrRankingFailed):
			respond.Error(c, http.StatusBadGateway, "ranking_failed", "Ranking failed; please try again", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal", "failed to rank roster", nil)
		}
		return
	}

	c.Set("rosterVersion", snap.Version)
	respond.OK(c, employees.ToSnapshotResponse(snap))
}
