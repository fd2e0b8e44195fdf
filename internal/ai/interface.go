package ai

import (
	"context"
)

// Provider defines the contract for the external trip-generation model.
// This interface allows for swapping different AI providers (Gemini, Groq, etc.) in the future.
type Provider interface {
	// GenerateTripPlan submits the serialized trip request to the model and
	// returns the raw completion content. The content is expected to be a
	// single JSON object but is returned unparsed; callers own the decoding
	// and must treat it as untrusted. Empty content is returned as "", nil.
	GenerateTripPlan(ctx context.Context, tripJSON string) (string, error)
}
