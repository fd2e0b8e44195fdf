// README: Results consumer: stored request -> gateway -> normalized destinations.
package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Rdrudra99/tripplanner/internal/modules/intake"
	"github.com/Rdrudra99/tripplanner/internal/modules/planner"
)

type ResultsHandler struct {
	intake  *intake.Service
	planner *planner.Service
}

func NewResultsHandler(intakeSvc *intake.Service, plannerSvc *planner.Service) *ResultsHandler {
	return &ResultsHandler{intake: intakeSvc, planner: plannerSvc}
}

type resultsResponse struct {
	TripRequest  intake.TripRequest    `json:"tripRequest"`
	Destinations []planner.Destination `json:"destinations"`
}

// Results handles GET /api/trip-results. It reads the stored request (no
// upstream call is attempted when it is absent), invokes the gateway once,
// and defensively normalizes every destination before replying.
func (h *ResultsHandler) Results(c *gin.Context) {
	clientID := c.Query("clientId")
	if clientID == "" {
		clientID = c.GetHeader(clientIDHeader)
	}
	if clientID == "" {
		writeError(c, http.StatusBadRequest, "missing client id")
		return
	}

	req, err := h.intake.Load(c.Request.Context(), clientID)
	if err != nil {
		if errors.Is(err, intake.ErrNoTripData) {
			writeError(c, http.StatusNotFound, "No trip data found. Please fill the form again.")
			return
		}
		log.Printf("trip-results: store read failed: %v", err)
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), plannerTimeout)
	defer cancel()

	resp, err := h.planner.Plan(ctx, req)
	if err != nil {
		log.Printf("trip-results: %v", err)
		writeError(c, http.StatusInternalServerError, "Failed to fetch destination suggestions. Please try again.")
		return
	}

	writeJSON(c, http.StatusOK, resultsResponse{
		TripRequest:  req,
		Destinations: planner.Normalize(resp.Destinations),
	})
}
