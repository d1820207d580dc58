package api

import (
	"alcyxob/sportplan/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	planService service.PlanService,
	adjustmentService service.AdjustmentService,
) {
	planHandler := NewPlanHandler(planService)
	sessionHandler := NewSessionHandler(adjustmentService)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		// --- Plan Generation ---
		// POST /api/v1/plans/generate
		protected.POST("/plans/generate", planHandler.GeneratePlan)

		// --- Schedule Adjustment ---
		// POST /api/v1/schedule/adjust
		protected.POST("/schedule/adjust", sessionHandler.AdjustSchedule)

		// --- Sessions ---
		sessionGroup := protected.Group("/sessions")
		{
			// GET /api/v1/sessions?from=YYYY-MM-DD&to=YYYY-MM-DD
			sessionGroup.GET("", planHandler.ListSessions)
			// PATCH /api/v1/sessions/{id}/status
			sessionGroup.PATCH("/:id/status", sessionHandler.UpdateSessionStatus)
		}
	}
}
