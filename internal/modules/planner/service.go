// README: Planning gateway service: one fresh model round-trip per request.
package planner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Rdrudra99/tripplanner/internal/ai"
	"github.com/Rdrudra99/tripplanner/internal/modules/intake"
)

// ErrMalformedOutput marks an upstream contract violation: the model returned
// non-empty content that is not valid JSON despite JSON mode being requested.
// It is kept distinct from transport errors so the boundary can log it with
// the offending payload instead of losing the diagnostic.
var ErrMalformedOutput = errors.New("upstream returned malformed trip plan")

// Service proxies a canonical trip request to the external model and decodes
// the structured reply. No retry, no response caching; every call is a fresh
// round-trip.
type Service struct {
	provider ai.Provider
}

func NewService(provider ai.Provider) *Service {
	return &Service{provider: provider}
}

// Plan submits the request and parses the completion.
//   - Empty completion content yields an empty destinations list, not an error.
//   - Malformed non-empty content yields ErrMalformedOutput (wrapped with the
//     decode failure).
//   - Transport and auth failures are wrapped and returned as-is.
func (s *Service) Plan(ctx context.Context, req intake.TripRequest) (*Response, error) {
	payload, err := json.MarshalIndent(req, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode trip request: %w", err)
	}

	raw, err := s.provider.GenerateTripPlan(ctx, string(payload))
	if err != nil {
		return nil, fmt.Errorf("trip generation: %w", err)
	}

	if strings.TrimSpace(raw) == "" {
		return &Response{Destinations: []Destination{}}, nil
	}

	var resp Response
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}
	if resp.Destinations == nil {
		resp.Destinations = []Destination{}
	}
	return &resp, nil
}
