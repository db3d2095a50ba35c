package recommendations

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"agentcrm-backend/internal/shared/server/middleware"
	"agentcrm-backend/internal/shared/server/respond"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/bna/next", h.next)
	rg.GET("/recommendations", h.list)
	rg.PATCH("/recommendations/:id/status", h.updateStatus)
}

func (h *Handler) next(c *gin.Context) {
	if h.Svc == nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "service unavailable", nil)
		return
	}
	userID := middleware.UserIDFromContext(c)
	uiContext := c.Query("context")
	requestID := middleware.RequestIDFromContext(c)

	record, rec, err := h.Svc.Next(c.Request.Context(), userID, uiContext, requestID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "resolve_failed", "could not resolve next action", nil)
		return
	}

	c.Set("recommendationId", record.ID)
	c.Set("recommendationKind", string(rec.Kind))

	respond.JSON(c, http.StatusOK, gin.H{
		"recommendationId": record.ID,
		"recommendation":   rec,
		"presentedAt":      record.PresentedAt,
	})
}

func (h *Handler) list(c *gin.Context) {
	if h.Svc == nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "service unavailable", nil)
		return
	}
	userID := middleware.UserIDFromContext(c)
	limit := parseQueryInt(c, "limit", 20)
	offset := parseQueryInt(c, "offset", 0)

	records, err := h.Svc.ListByUser(c.Request.Context(), userID, limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list recommendations", nil)
		return
	}
	if records == nil {
		records = []Record{}
	}
	respond.JSON(c, http.StatusOK, gin.H{
		"items":  records,
		"limit":  limit,
		"offset": offset,
	})
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) updateStatus(c *gin.Context) {
	if h.Svc == nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "service unavailable", nil)
		return
	}
	userID := middleware.UserIDFromContext(c)
	id := c.Param("id")
	requestID := middleware.RequestIDFromContext(c)

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "invalid JSON body", nil)
		return
	}
	status, ok := ParseStatus(req.Status)
	if !ok || status == StatusPresented {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "status must be accepted, dismissed, or completed", nil)
		return
	}

	record, err := h.Svc.UpdateStatus(c.Request.Context(), userID, id, status, requestID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "recommendation not found", nil)
		case errors.Is(err, ErrInvalidTransition):
			respond.Error(c, http.StatusConflict, "invalid_transition", "status transition not allowed", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to update status", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, record)
}

func parseQueryInt(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val < 0 {
		return def
	}
	return val
}
