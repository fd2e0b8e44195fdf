package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// maxOutputTokens bounds the completion size for a 3-5 destination plan.
const maxOutputTokens = 8192

// GeminiProvider implements Provider using Google's Gemini models.
type GeminiProvider struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiProvider initializes a new Gemini client.
// apiKey should be provided from environment variables; modelName falls back
// to a low-latency default when empty.
func NewGeminiProvider(ctx context.Context, apiKey, modelName string) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	if modelName == "" {
		modelName = "gemini-2.0-flash"
	}
	model := client.GenerativeModel(modelName)

	// Force JSON response for structured parsing.
	model.ResponseMIMEType = "application/json"

	// High temperature: the planner embraces variability, so identical
	// requests may legitimately produce different destination sets.
	model.SetTemperature(1)
	model.SetMaxOutputTokens(maxOutputTokens)

	// The instruction is fixed; the serialized trip request is the only
	// variable input per call.
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt)},
	}

	return &GeminiProvider{
		client: client,
		model:  model,
	}, nil
}

// Close cleans up the Gemini client resources.
func (p *GeminiProvider) Close() {
	p.client.Close()
}

// GenerateTripPlan sends the serialized trip request as the user turn of a
// two-message exchange (system instruction + data) and returns the raw
// completion content.
func (p *GeminiProvider) GenerateTripPlan(ctx context.Context, tripJSON string) (string, error) {
	resp, err := p.model.GenerateContent(ctx, genai.Text(tripJSON))
	if err != nil {
		return "", fmt.Errorf("gemini generation error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", nil
	}

	var responseText strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			responseText.WriteString(string(txt))
		}
	}

	// Strip markdown fences if the model wrapped the object despite JSON mode.
	return cleanJSONString(responseText.String()), nil
}

// systemPrompt instructs the model to act as the travel-planning portal and
// return a single JSON object with a destinations array.
const systemPrompt = `You are an API that simulates a Smart Travel Planning Portal for West Airlines.
You will receive JSON input with the following fields:
- startDate: string (YYYY-MM-DD)
- endDate: string (YYYY-MM-DD)
- budget: number (total trip budget in INR)
- vacationType: string (e.g., Beach, City, Mountain, Cultural, Adventure)
- numberOfPeople: number
- destination: string (optional hint; absent means you choose)

Your task:
1. Generate 3-5 mock travel destinations that West Airlines serves.
2. For each destination, include:
   - name (string)
   - flight (airline, departure ISO datetime, arrival ISO datetime, pricePerPerson)
   - hotel (name, checkIn, checkOut, pricePerNight)
   - activities (array of { name, pricePerPerson })
   - totalCost (sum of flights + hotels + activities for all travelers)
   - perPersonCost (totalCost / numberOfPeople)
   - image (string URL to a relevant image of the destination - use only freely usable Unsplash images with URLs like https://images.unsplash.com/...)
   - description (a brief 1-2 sentence description of the destination)
3. Ensure that the total cost does not exceed the given budget, unless unavoidable.
4. Keep dates consistent with the startDate and endDate from input.
5. Return the result as valid JSON:
{
  "destinations": [
    {
      "name": "...",
      "flight": { ... },
      "hotel": { ... },
      "activities": [ ... ],
      "totalCost": ...,
      "perPersonCost": ...,
      "image": "https://images.unsplash.com/...",
      "description": "..."
    }
  ]
}`

// cleanJSONString removes markdown code blocks if present (e.g. ```json ... ```)
func cleanJSONString(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}
