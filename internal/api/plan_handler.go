// internal/api/plan_handler.go
package api

import (
	"alcyxob/sportplan/internal/domain"
	"alcyxob/sportplan/internal/service"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// dateLayout is the wire format for plain calendar dates.
const dateLayout = "2006-01-02"

type PlanHandler struct {
	planService service.PlanService
}

func NewPlanHandler(planService service.PlanService) *PlanHandler {
	return &PlanHandler{planService: planService}
}

// --- DTOs for Plan Generation ---

type SportPreferenceRequest struct {
	Sport                  string   `json:"sport" binding:"required"`
	FrequencyPerWeek       int      `json:"frequencyPerWeek" binding:"required"`
	PreferredDays          []string `json:"preferredDays"`
	SessionDurationMinutes int      `json:"sessionDurationMinutes" binding:"required"`
	Equipment              []string `json:"equipment"`
}

type GeneratePlanRequest struct {
	PlanID                 string                   `json:"planId" binding:"required"`
	StartDate              string                   `json:"startDate" binding:"required"`
	EndDate                string                   `json:"endDate" binding:"required"`
	SportPreferences       []SportPreferenceRequest `json:"sportPreferences" binding:"required"`
	MultipleSessionsPerDay bool                     `json:"multipleSessionsPerDay"`
	IncludesStrength       bool                     `json:"includesStrength"`
}

type GeneratePlanResponse struct {
	ScheduledCount int    `json:"scheduledCount"`
	Message        string `json:"message"`
}

// SessionResponse is the DTO for returning a scheduled session.
type SessionResponse struct {
	ID              string  `json:"id"`
	PlanID          *string `json:"planId,omitempty"`
	ScheduledDate   string  `json:"scheduledDate"`
	TimeOfDay       string  `json:"timeOfDay"`
	Sport           string  `json:"sport"`
	WorkoutType     string  `json:"workoutType"`
	Title           string  `json:"title"`
	DurationMinutes int     `json:"durationMinutes,omitempty"`
	Intensity       string  `json:"intensity"`
	Completed       bool    `json:"completed"`
	Skipped         bool    `json:"skipped"`
	ContentRef      *string `json:"contentRef,omitempty"`
}

// GeneratePlan godoc
// @Summary Generate the full session schedule for a plan
// @Description Builds and stores every training session across the plan's date range.
// @Tags Plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param plan body GeneratePlanRequest true "Plan specification"
// @Success 200 {object} GeneratePlanResponse "Schedule generated"
// @Failure 400 {object} gin.H "Invalid input (validation error)"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 409 {object} gin.H "Plan already generated"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /plans/generate [post]
func (h *PlanHandler) GeneratePlan(c *gin.Context) {
	var req GeneratePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	userID, ok := actingUserID(c)
	if !ok {
		return
	}

	spec, err := mapGenerateRequest(req, userID)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.planService.GeneratePlan(c.Request.Context(), spec)
	if err != nil {
		if errors.Is(err, service.ErrPlanValidation) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else if errors.Is(err, service.ErrPlanAlreadyGenerated) {
			abortWithError(c, http.StatusConflict, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to generate plan.")
		}
		return
	}

	c.JSON(http.StatusOK, GeneratePlanResponse{
		ScheduledCount: result.ScheduledCount,
		Message:        result.Message,
	})
}

// ListSessions godoc
// @Summary List the caller's sessions in a date range
// @Tags Sessions
// @Produce json
// @Security BearerAuth
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Success 200 {array} SessionResponse
// @Failure 400 {object} gin.H "Invalid range"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /sessions [get]
func (h *PlanHandler) ListSessions(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}

	from, err := time.Parse(dateLayout, c.Query("from"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid 'from' date, expected YYYY-MM-DD.")
		return
	}
	to, err := time.Parse(dateLayout, c.Query("to"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid 'to' date, expected YYYY-MM-DD.")
		return
	}

	sessions, err := h.planService.GetSessions(c.Request.Context(), userID, from, to)
	if err != nil {
		if errors.Is(err, service.ErrPlanValidation) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve sessions.")
		}
		return
	}

	c.JSON(http.StatusOK, MapSessionsToResponse(sessions))
}

func mapGenerateRequest(req GeneratePlanRequest, userID primitive.ObjectID) (domain.PlanSpecification, error) {
	planID, err := primitive.ObjectIDFromHex(req.PlanID)
	if err != nil {
		return domain.PlanSpecification{}, errors.New("invalid plan ID format")
	}
	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return domain.PlanSpecification{}, errors.New("invalid start date, expected YYYY-MM-DD")
	}
	endDate, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return domain.PlanSpecification{}, errors.New("invalid end date, expected YYYY-MM-DD")
	}

	spec := domain.PlanSpecification{
		PlanID:                 planID,
		UserID:                 userID,
		StartDate:              startDate,
		EndDate:                endDate,
		MultipleSessionsPerDay: req.MultipleSessionsPerDay,
		IncludesStrength:       req.IncludesStrength,
	}
	for _, prefReq := range req.SportPreferences {
		pref := domain.SportPreference{
			Sport:                  prefReq.Sport,
			FrequencyPerWeek:       prefReq.FrequencyPerWeek,
			SessionDurationMinutes: prefReq.SessionDurationMinutes,
			Equipment:              prefReq.Equipment,
		}
		for _, dayStr := range prefReq.PreferredDays {
			day, err := domain.ParseDayOfWeek(dayStr)
			if err != nil {
				return domain.PlanSpecification{}, fmt.Errorf("preference %s: %v", prefReq.Sport, err)
			}
			pref.PreferredDays = append(pref.PreferredDays, day)
		}
		spec.SportPreferences = append(spec.SportPreferences, pref)
	}
	return spec, nil
}

// MapSessionToResponse converts a domain session to its DTO.
func MapSessionToResponse(s *domain.ScheduledSession) SessionResponse {
	resp := SessionResponse{
		ID:              s.ID.Hex(),
		ScheduledDate:   s.ScheduledDate.Format(dateLayout),
		TimeOfDay:       string(s.TimeOfDay),
		Sport:           s.Sport,
		WorkoutType:     string(s.WorkoutType),
		Title:           s.DisplayTitle(),
		DurationMinutes: s.DurationMinutes,
		Intensity:       string(s.Intensity),
		Completed:       s.Completed,
		Skipped:         s.Skipped,
	}
	if s.PlanID != nil && *s.PlanID != primitive.NilObjectID {
		hex := s.PlanID.Hex()
		resp.PlanID = &hex
	}
	if s.ContentRef != nil && *s.ContentRef != primitive.NilObjectID {
		hex := s.ContentRef.Hex()
		resp.ContentRef = &hex
	}
	return resp
}

// MapSessionsToResponse converts a slice of domain sessions.
func MapSessionsToResponse(sessions []domain.ScheduledSession) []SessionResponse {
	responses := make([]SessionResponse, len(sessions))
	for i := range sessions {
		responses[i] = MapSessionToResponse(&sessions[i])
	}
	return responses
}
