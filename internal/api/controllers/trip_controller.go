package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"roamio/internal/models/request_models"
	"roamio/internal/services"
	"roamio/pkg/utils"
)

type TripController struct {
	tripService services.TripServiceInterface
}

func NewTripController(tripService services.TripServiceInterface) *TripController {
	return &TripController{tripService: tripService}
}

func (tc *TripController) ListTrips(c *gin.Context) {
	var userID *int
	if raw := c.Query("userId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid user ID")
			return
		}
		userID = &id
	}

	trips, err := tc.tripService.ListTrips(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, trips, "Trips fetched successfully")
}

func (tc *TripController) GetTrip(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid trip ID")
		return
	}

	trip, err := tc.tripService.GetTrip(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, trip, "Trip fetched successfully")
}

func (tc *TripController) CreateTrip(c *gin.Context) {
	var req request_models.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid trip payload")
		return
	}

	trip, err := tc.tripService.CreateTrip(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, trip, "Trip created successfully")
}

func (tc *TripController) UpdateTrip(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid trip ID")
		return
	}

	var req request_models.UpdateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid trip payload")
		return
	}

	trip, err := tc.tripService.UpdateTrip(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, trip, "Trip updated successfully")
}

func (tc *TripController) DeleteTrip(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid trip ID")
		return
	}

	if err := tc.tripService.DeleteTrip(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondNoContent(c)
}

func (tc *TripController) GetTripDetails(c *gin.Context) {
	tripID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid trip ID")
		return
	}

	details, err := tc.tripService.GetTripDetails(c.Request.Context(), tripID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, details, "Trip details fetched successfully")
}

func (tc *TripController) AddTripDetail(c *gin.Context) {
	tripID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid trip ID")
		return
	}

	var req request_models.CreateTripDetailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid trip detail payload")
		return
	}

	detail, err := tc.tripService.AddTripDetail(c.Request.Context(), tripID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, detail, "Trip detail created successfully")
}

func (tc *TripController) GetBudget(c *gin.Context) {
	tripID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid trip ID")
		return
	}

	budget, err := tc.tripService.GetBudget(c.Request.Context(), tripID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, budget, "Budget allocation fetched successfully")
}

func (tc *TripController) UpdateBudget(c *gin.Context) {
	tripID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid trip ID")
		return
	}

	var req request_models.UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid budget payload")
		return
	}

	budget, err := tc.tripService.UpdateBudget(c.Request.Context(), tripID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, budget, "Budget allocation updated successfully")
}
