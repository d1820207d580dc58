// internal/api/session_handler.go
package api

import (
	"alcyxob/sportplan/internal/service"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SessionHandler struct {
	adjustmentService service.AdjustmentService
}

func NewSessionHandler(adjustmentService service.AdjustmentService) *SessionHandler {
	return &SessionHandler{adjustmentService: adjustmentService}
}

// --- DTOs for Schedule Adjustment ---

type AdjustScheduleRequest struct {
	ChangedSessionID string `json:"changedSessionId" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=completed skipped pending"`
}

type AdjustScheduleResponse struct {
	Strategy     string `json:"strategy"`
	UpdatedCount int    `json:"updatedCount"`
	Message      string `json:"message"`
}

// AdjustSchedule godoc
// @Summary Re-balance upcoming sessions after a status change
// @Description Selects an adjustment strategy for the changed session and mutates a bounded window of upcoming sessions of the same sport.
// @Tags Schedule
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param change body AdjustScheduleRequest true "Changed session"
// @Success 200 {object} AdjustScheduleResponse "Adjustment applied"
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 403 {object} gin.H "Session belongs to another user"
// @Failure 404 {object} gin.H "Session not found"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /schedule/adjust [post]
func (h *SessionHandler) AdjustSchedule(c *gin.Context) {
	var req AdjustScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	userID, ok := actingUserID(c)
	if !ok {
		return
	}
	sessionID, err := primitive.ObjectIDFromHex(req.ChangedSessionID)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid session ID format.")
		return
	}

	result, err := h.adjustmentService.AdjustSchedule(c.Request.Context(), userID, sessionID)
	if err != nil {
		h.mapAdjustmentError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapAdjustmentResult(result))
}

// UpdateSessionStatus godoc
// @Summary Complete, skip or undo a session
// @Description Updates the session's status flags and runs the schedule adjustment engine against the new state.
// @Tags Sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Param status body UpdateStatusRequest true "New status"
// @Success 200 {object} AdjustScheduleResponse "Status updated, adjustment applied"
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 403 {object} gin.H "Session belongs to another user"
// @Failure 404 {object} gin.H "Session not found"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /sessions/{id}/status [patch]
func (h *SessionHandler) UpdateSessionStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	userID, ok := actingUserID(c)
	if !ok {
		return
	}
	sessionID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid session ID format.")
		return
	}

	result, err := h.adjustmentService.SetSessionStatus(c.Request.Context(), userID, sessionID, service.SessionStatus(req.Status))
	if err != nil {
		h.mapAdjustmentError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapAdjustmentResult(result))
}

func (h *SessionHandler) mapAdjustmentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrNotSessionOwner):
		abortWithError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrInvalidStatus):
		abortWithError(c, http.StatusBadRequest, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, "Failed to adjust schedule.")
	}
}

func mapAdjustmentResult(result *service.AdjustmentResult) AdjustScheduleResponse {
	message := buildAdjustmentMessage(result)
	return AdjustScheduleResponse{
		Strategy:     string(result.Strategy),
		UpdatedCount: result.UpdatedCount,
		Message:      message,
	}
}

func buildAdjustmentMessage(result *service.AdjustmentResult) string {
	msg := "Applied " + string(result.Strategy) + " strategy"
	if result.MakeupCreated {
		msg += ", added one makeup session"
	}
	return msg
}
