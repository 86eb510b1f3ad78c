package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"roamio/internal/models/request_models"
	"roamio/internal/services"
	"roamio/pkg/utils"
)

type GuideController struct {
	guideService services.GuideServiceInterface
}

func NewGuideController(guideService services.GuideServiceInterface) *GuideController {
	return &GuideController{guideService: guideService}
}

func (gc *GuideController) ListTourGuides(c *gin.Context) {
	guides, err := gc.guideService.GetTourGuides(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, guides, "Tour guides fetched successfully")
}

func (gc *GuideController) GetTourGuide(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid tour guide ID")
		return
	}

	guide, err := gc.guideService.GetTourGuide(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, guide, "Tour guide fetched successfully")
}

func (gc *GuideController) CreateTourGuide(c *gin.Context) {
	var req request_models.CreateTourGuideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid tour guide payload")
		return
	}

	guide, err := gc.guideService.CreateTourGuide(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, guide, "Tour guide created successfully")
}

func (gc *GuideController) ListReviews(c *gin.Context) {
	guideID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid tour guide ID")
		return
	}

	reviews, err := gc.guideService.GetReviews(c.Request.Context(), guideID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, reviews, "Reviews fetched successfully")
}

func (gc *GuideController) AddReview(c *gin.Context) {
	guideID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid tour guide ID")
		return
	}

	var req request_models.CreateGuideReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid review payload")
		return
	}

	review, err := gc.guideService.AddReview(c.Request.Context(), guideID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, review, "Review created successfully")
}

func (gc *GuideController) ListPhotos(c *gin.Context) {
	guideID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid tour guide ID")
		return
	}

	photos, err := gc.guideService.GetPhotos(c.Request.Context(), guideID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, photos, "Photos fetched successfully")
}

func (gc *GuideController) AddPhoto(c *gin.Context) {
	guideID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid tour guide ID")
		return
	}

	var req request_models.CreateGuidePhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid photo payload")
		return
	}

	photo, err := gc.guideService.AddPhoto(c.Request.Context(), guideID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, photo, "Photo created successfully")
}
