package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sairaj2832-star/DISHANVESHI/internal/models/request_models"
	"github.com/sairaj2832-star/DISHANVESHI/internal/services"
	"github.com/sairaj2832-star/DISHANVESHI/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

// Generate godoc
// @Summary Generate a travel itinerary
// @Description Generate a day-by-day itinerary for a destination, optionally enriched with points of interest
// @Tags Itineraries
// @Accept json
// @Produce json
// @Param request body request_models.ItineraryRequest true "Itinerary generation payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/generate [post]
func (i *ItineraryController) Generate(c *gin.Context) {
	var req request_models.ItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	itinerary, err := i.itineraryService.GenerateItinerary(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary generated successfully")
}

// Save godoc
// @Summary Save a finished itinerary
// @Tags Itineraries
// @Accept json
// @Produce json
// @Param request body request_models.SaveItineraryRequest true "Itinerary save payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries [post]
func (i *ItineraryController) Save(c *gin.Context) {
	var req request_models.SaveItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	saved, err := i.itineraryService.SaveItinerary(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, saved, "Itinerary saved successfully")
}

// List godoc
// @Summary List the caller's saved itineraries
// @Tags Itineraries
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries [get]
func (i *ItineraryController) List(c *gin.Context) {
	itineraries, err := i.itineraryService.ListItineraries(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itineraries, "Itineraries fetched successfully")
}

// Recommend godoc
// @Summary Recommend places for a mood
// @Description Pick one or two places from a list that best suit the caller's mood
// @Tags Itineraries
// @Accept json
// @Produce json
// @Param request body request_models.RecommendationRequest true "Recommendation payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/recommendation [post]
func (i *ItineraryController) Recommend(c *gin.Context) {
	var req request_models.RecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	recommendation, err := i.itineraryService.RecommendFromMood(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, recommendation, "Recommendation generated successfully")
}
