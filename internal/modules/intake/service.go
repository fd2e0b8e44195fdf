// README: Intake service: validate a submission, persist the canonical request.
package intake

import "context"

// Service ties validation to the form store.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Submit validates a raw form submission and, only when every field passes,
// writes the canonical request under the client's fixed key, replacing any
// prior value. Validation failures are returned as FieldErrors and nothing
// is written.
func (s *Service) Submit(ctx context.Context, clientID string, in FormInput) (TripRequest, error) {
	req, errs := Validate(in)
	if errs != nil {
		return TripRequest{}, errs
	}
	if err := s.store.SaveTripRequest(ctx, clientID, req); err != nil {
		return TripRequest{}, err
	}
	return req, nil
}

// Load reads the stored request back. The value is not deleted on read; it
// lives until the next submission overwrites it.
func (s *Service) Load(ctx context.Context, clientID string) (TripRequest, error) {
	return s.store.LoadTripRequest(ctx, clientID)
}
