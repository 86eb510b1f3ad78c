package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"roamio/internal/services"
	"roamio/pkg/utils"
)

type AttractionController struct {
	attractionService services.AttractionServiceInterface
}

func NewAttractionController(attractionService services.AttractionServiceInterface) *AttractionController {
	return &AttractionController{attractionService: attractionService}
}

func (ac *AttractionController) ListAttractionsByDestination(c *gin.Context) {
	destinationID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid destination ID")
		return
	}

	attractions, err := ac.attractionService.GetAttractionsByDestination(c.Request.Context(), destinationID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, attractions, "Attractions fetched successfully")
}

func (ac *AttractionController) ListAllAttractions(c *gin.Context) {
	attractions, err := ac.attractionService.GetAllAttractions(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, attractions, "Attractions fetched successfully")
}

func (ac *AttractionController) GetAttraction(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid attraction ID")
		return
	}

	attraction, err := ac.attractionService.GetAttraction(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, attraction, "Attraction fetched successfully")
}
