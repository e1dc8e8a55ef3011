package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SanthiIla22/Ai-travel-mate-project/internal/domain"
	"github.com/SanthiIla22/Ai-travel-mate-project/internal/places"
	"github.com/SanthiIla22/Ai-travel-mate-project/internal/service"
)

// TripHandler handles HTTP requests for trip planning.
type TripHandler struct {
	planner *service.TripPlannerService
}

// NewTripHandler creates a new TripHandler.
func NewTripHandler(planner *service.TripPlannerService) *TripHandler {
	return &TripHandler{planner: planner}
}

// PlanTripRequest is the HTTP request body for planning a trip.
type PlanTripRequest struct {
	From            string           `json:"from"`
	To              string           `json:"to"`
	Vehicle         string           `json:"vehicle"`
	UserID          string           `json:"userId"`
	CurrentLocation *CurrentLocation `json:"currentLocation"`
}

// CurrentLocation carries the requester's coordinates. Pointer fields
// distinguish an absent value from a legitimate zero coordinate.
type CurrentLocation struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}

// PlanTripResponse is the HTTP response for a planned trip. POIs carries
// the raw provider results, not the trimmed stored projection.
type PlanTripResponse struct {
	Message    string         `json:"message"`
	AIResponse string         `json:"ai_response"`
	POIs       []places.Place `json:"pois"`
}

// PlanTrip handles POST /v1/trips
func (h *TripHandler) PlanTrip(c *gin.Context) {
	var req PlanTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, MessageResponse{Message: "Invalid JSON format"})
		return
	}

	if req.CurrentLocation == nil || req.CurrentLocation.Lat == nil || req.CurrentLocation.Lng == nil {
		c.JSON(http.StatusBadRequest, MessageResponse{Message: "Missing current location."})
		return
	}

	result := h.planner.PlanTrip(c.Request.Context(), domain.TripRequest{
		From:    req.From,
		To:      req.To,
		Vehicle: req.Vehicle,
		UserID:  req.UserID,
		CurrentLocation: domain.LatLng{
			Lat: *req.CurrentLocation.Lat,
			Lng: *req.CurrentLocation.Lng,
		},
	})

	respondJSON(c, http.StatusOK, PlanTripResponse{
		Message:    "Trip processed successfully.",
		AIResponse: result.Summary,
		POIs:       result.POIs,
	})
}

// GetTrip handles GET /v1/trips/:id
func (h *TripHandler) GetTrip(c *gin.Context) {
	record, err := h.planner.GetTrip(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, record)
}

// GetAll handles GET /v1/trips
func (h *TripHandler) GetAll(c *gin.Context) {
	records, err := h.planner.ListTrips(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, records)
}
