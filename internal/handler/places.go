package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SanthiIla22/Ai-travel-mate-project/internal/places"
	"github.com/SanthiIla22/Ai-travel-mate-project/internal/service"
)

// PlacesHandler handles HTTP requests for direct place lookups.
type PlacesHandler struct {
	planner *service.TripPlannerService
}

// NewPlacesHandler creates a new PlacesHandler.
func NewPlacesHandler(planner *service.TripPlannerService) *PlacesHandler {
	return &PlacesHandler{planner: planner}
}

// NearbyPlacesResponse is the HTTP response for a nearby lookup.
type NearbyPlacesResponse struct {
	Count   int            `json:"count"`
	Results []places.Place `json:"results"`
}

// NearbyPlaces handles GET /v1/places/nearby
func (h *PlacesHandler) NearbyPlaces(c *gin.Context) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		respondError(c, service.ErrInvalidLocation)
		return
	}
	lng, err := strconv.ParseFloat(c.Query("lng"), 64)
	if err != nil {
		respondError(c, service.ErrInvalidLocation)
		return
	}
	category := c.DefaultQuery("type", "restaurant")

	results, err := h.planner.NearbyPlaces(c.Request.Context(), lat, lng, category)
	if err != nil {
		respondError(c, err)
		return
	}
	if results == nil {
		results = []places.Place{}
	}

	respondJSON(c, http.StatusOK, NearbyPlacesResponse{
		Count:   len(results),
		Results: results,
	})
}
