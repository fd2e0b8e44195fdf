// README: Trip form intake handler (validation + stored canonical request).
package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Rdrudra99/tripplanner/internal/modules/intake"
)

// clientIDHeader carries the caller's stable identity for the form store.
// Absent, a fresh id is minted and returned so the results view can read the
// stored request back.
const clientIDHeader = "X-Client-ID"

type IntakeHandler struct {
	intake *intake.Service
}

func NewIntakeHandler(intakeSvc *intake.Service) *IntakeHandler {
	return &IntakeHandler{intake: intakeSvc}
}

type submitResponse struct {
	ClientID    string             `json:"clientId"`
	TripRequest intake.TripRequest `json:"tripRequest"`
}

// Submit handles POST /api/trip-form.
func (h *IntakeHandler) Submit(c *gin.Context) {
	var in intake.FormInput
	if err := c.ShouldBindJSON(&in); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	clientID := c.GetHeader(clientIDHeader)
	if clientID == "" {
		clientID = uuid.NewString()
	}

	req, err := h.intake.Submit(c.Request.Context(), clientID, in)
	if err != nil {
		var fieldErrs intake.FieldErrors
		if errors.As(err, &fieldErrs) {
			writeJSON(c, http.StatusUnprocessableEntity, fieldErrorResponse{Errors: fieldErrs})
			return
		}
		log.Printf("trip-form: store write failed: %v", err)
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(c, http.StatusOK, submitResponse{ClientID: clientID, TripRequest: req})
}
