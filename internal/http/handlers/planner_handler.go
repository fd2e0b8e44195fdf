// README: Planning gateway handler (single-shot model round-trip).
package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Rdrudra99/tripplanner/internal/modules/intake"
	"github.com/Rdrudra99/tripplanner/internal/modules/planner"
)

// plannerTimeout bounds the outbound model call; it is derived from the
// inbound request's context so a dropped client connection cancels the
// upstream call too.
const plannerTimeout = 90 * time.Second

// plannerErrMsg is the fixed failure body. Auth, quota, network, and
// malformed-output failures all collapse to it on the wire; the distinction
// lives in the logs only.
const plannerErrMsg = "Failed to process trip planning request"

type PlannerHandler struct {
	planner *planner.Service
}

func NewPlannerHandler(plannerSvc *planner.Service) *PlannerHandler {
	return &PlannerHandler{planner: plannerSvc}
}

// Plan handles POST /api/trip-planner.
func (h *PlannerHandler) Plan(c *gin.Context) {
	var req intake.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// Missing or unreadable bodies get the same fixed 500 shape; the
		// endpoint never surfaces a raw failure.
		log.Printf("trip-planner: bad request body: %v", err)
		writeError(c, http.StatusInternalServerError, plannerErrMsg)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), plannerTimeout)
	defer cancel()

	resp, err := h.planner.Plan(ctx, req)
	if err != nil {
		if errors.Is(err, planner.ErrMalformedOutput) {
			log.Printf("trip-planner: upstream contract violation: %v", err)
		} else {
			log.Printf("trip-planner: %v", err)
		}
		writeError(c, http.StatusInternalServerError, plannerErrMsg)
		return
	}

	writeJSON(c, http.StatusOK, resp)
}
