package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"roamio/internal/services"
	"roamio/pkg/utils"
)

type HotelController struct {
	hotelService services.HotelServiceInterface
}

func NewHotelController(hotelService services.HotelServiceInterface) *HotelController {
	return &HotelController{hotelService: hotelService}
}

func (hc *HotelController) ListHotelsByDestination(c *gin.Context) {
	destinationID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid destination ID")
		return
	}

	hotels, err := hc.hotelService.GetHotelsByDestination(c.Request.Context(), destinationID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, hotels, "Hotels fetched successfully")
}

func (hc *HotelController) ListAllHotels(c *gin.Context) {
	hotels, err := hc.hotelService.GetAllHotels(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, hotels, "Hotels fetched successfully")
}

func (hc *HotelController) GetHotel(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid hotel ID")
		return
	}

	hotel, err := hc.hotelService.GetHotel(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, hotel, "Hotel fetched successfully")
}
