package employees

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"staffing-backend/internal/render"
	"staffing-backend/internal/shared/server/middleware"
	"staffing-backend/internal/shared/server/respond"
)

const maxUploadSize = 10 << 20 // 10MB

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches employee routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/employees", h.add)
	rg.GET("/employees", h.list)
}

func (h *Handler) add(c *gin.Context) {
	sessionID := middleware.SessionIDFromContext(c)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	name := strings.TrimSpace(c.PostForm("name"))
	if name == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "name is required", nil)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}
	if !strings.EqualFold(strings.TrimSpace(fileHeader.Header.Get("Content-Type")), "application/pdf") {
		respond.Error(c, http.StatusBadRequest, "invalid_upload", "Please select a PDF file", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}

	snap, emp, err := h.Svc.AddEmployee(c.Request.Context(), sessionID, name, data)
	if err != nil {
		switch {
		case errors.Is(err, render.ErrUnsupportedDocument):
			respond.Error(c, http.StatusUnprocessableEntity, "unsupported_document", "This PDF is password protected; please upload an unprotected copy", nil)
		case errors.Is(err, render.ErrCorruptDocument):
			respond.Error(c, http.StatusUnprocessableEntity, "corrupt_document", "This PDF could not be read", nil)
		case errors.Is(err, render.ErrUnavailable):
			respond.Error(c, http.StatusServiceUnavailable, "renderer_unavailable", "PDF rendering is not available right now", nil)
		case errors.Is(err, ErrAnalysisFailed):
			respond.Error(c, http.StatusBadGateway, "analysis_failed", "Resume analysis failed; please try again", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal", "failed to add employee", nil)
		}
		return
	}

	c.Set("employeeId", emp.ID)
	c.Set("rosterVersion", snap.Version)
	respond.Created(c, ToSnapshotResponse(snap))
}

func (h *Handler) list(c *gin.Context) {
	sessionID := middleware.SessionIDFromContext(c)

	snap, err := h.Svc.Snapshot(c.Request.Context(), sessionID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to fetch roster", nil)
		return
	}

	respond.OK(c, ToSnapshotResponse(snap))
}
