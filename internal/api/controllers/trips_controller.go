package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wander/internal/models/request_models"
	"wander/internal/services"
	"wander/pkg/utils"
)

type TripsController struct {
	tripService services.TripService
}

func NewTripsController(tripService services.TripService) *TripsController {
	return &TripsController{tripService: tripService}
}

// SaveTrip godoc
// @Summary Save a trip snapshot
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body request_models.SaveTripRequest true "Trip snapshot"
// @Success 201 {object} response_models.SavedTripResponse
// @Security BearerAuth
// @Router /trips [post]
func (t *TripsController) SaveTrip(c *gin.Context) {
	var req request_models.SaveTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := t.tripService.Save(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListTrips godoc
// @Summary List the user's saved trips, favorites first
// @Tags Trips
// @Produce json
// @Success 200 {array} response_models.SavedTripResponse
// @Security BearerAuth
// @Router /trips [get]
func (t *TripsController) ListTrips(c *gin.Context) {
	resp, err := t.tripService.List(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetTrip godoc
// @Summary Fetch one saved trip with its full data
// @Tags Trips
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} response_models.SavedTripResponse
// @Security BearerAuth
// @Router /trips/{id} [get]
func (t *TripsController) GetTrip(c *gin.Context) {
	resp, err := t.tripService.Get(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateTrip godoc
// @Summary Rename, annotate or favorite a saved trip
// @Tags Trips
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param request body request_models.UpdateTripRequest true "Fields to change"
// @Success 200 {object} response_models.SavedTripResponse
// @Security BearerAuth
// @Router /trips/{id} [patch]
func (t *TripsController) UpdateTrip(c *gin.Context) {
	var req request_models.UpdateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := t.tripService.Update(c.Request.Context(), c.GetString("user_id"), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteTrip godoc
// @Summary Delete a saved trip
// @Tags Trips
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /trips/{id} [delete]
func (t *TripsController) DeleteTrip(c *gin.Context) {
	if err := t.tripService.Delete(c.Request.Context(), c.GetString("user_id"), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Trip deleted"})
}
