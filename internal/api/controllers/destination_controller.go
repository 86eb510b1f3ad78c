package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"roamio/internal/models/request_models"
	"roamio/internal/services"
	"roamio/pkg/utils"
)

type DestinationController struct {
	destinationService services.DestinationServiceInterface
}

func NewDestinationController(destinationService services.DestinationServiceInterface) *DestinationController {
	return &DestinationController{destinationService: destinationService}
}

func (dc *DestinationController) ListDestinations(c *gin.Context) {
	destinations, err := dc.destinationService.GetDestinations(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, destinations, "Destinations fetched successfully")
}

func (dc *DestinationController) GetDestination(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid destination ID")
		return
	}

	destination, err := dc.destinationService.GetDestination(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, destination, "Destination fetched successfully")
}

func (dc *DestinationController) SearchDestinations(c *gin.Context) {
	var req request_models.DestinationSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid search parameters")
		return
	}

	destinations, err := dc.destinationService.SearchDestinations(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, destinations, "Destinations searched successfully")
}
