package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"roamio/internal/services"
	"roamio/pkg/utils"
)

type CountryController struct {
	countryService services.CountryServiceInterface
}

func NewCountryController(countryService services.CountryServiceInterface) *CountryController {
	return &CountryController{countryService: countryService}
}

func (cc *CountryController) ListCountries(c *gin.Context) {
	countries, err := cc.countryService.GetCountries(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, countries, "Countries fetched successfully")
}

func (cc *CountryController) GetCountryByCode(c *gin.Context) {
	code := c.Param("code")
	if code == "" {
		utils.RespondError(c, http.StatusBadRequest, "Country code is required")
		return
	}

	country, err := cc.countryService.GetCountryByCode(c.Request.Context(), code)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, country, "Country fetched successfully")
}
