// Package controllers holds the gin handlers for the JSON API. Controllers
// bind and validate requests, delegate to services, and map service errors
// to HTTP responses; they carry no application logic of their own.
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wander/internal/models/request_models"
	"wander/internal/services"
	"wander/pkg/utils"
)

type PlanController struct {
	planService services.PlanService
}

func NewPlanController(planService services.PlanService) *PlanController {
	return &PlanController{planService: planService}
}

// PlanTrip godoc
// @Summary Generate a trip plan
// @Description Runs the planning pipeline and returns itinerary, budget, bookings, map, weather and news sections
// @Tags Planning
// @Accept json
// @Produce json
// @Param request body request_models.PlanRequest true "Trip planning payload"
// @Success 200 {object} response_models.TripResponse
// @Failure 400 {object} map[string]string
// @Router /plan-trip [post]
func (p *PlanController) PlanTrip(c *gin.Context) {
	var req request_models.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := p.planService.Plan(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
