package intake

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() FormInput {
	return FormInput{
		Destination:    "Goa",
		StartDate:      "2025-09-01",
		EndDate:        "2025-09-07",
		NumberOfPeople: "2",
		VacationType:   "Beach",
		Budget:         "50000",
	}
}

func TestValidateSuccess(t *testing.T) {
	req, errs := Validate(validInput())
	require.Nil(t, errs)

	assert.Equal(t, TripRequest{
		StartDate:      "2025-09-01",
		EndDate:        "2025-09-07",
		Budget:         50000,
		VacationType:   "Beach",
		NumberOfPeople: 2,
		Destination:    "Goa",
	}, req)
}

func TestValidateDestinationOptional(t *testing.T) {
	in := validInput()
	in.Destination = ""
	req, errs := Validate(in)
	require.Nil(t, errs)
	assert.Empty(t, req.Destination)
}

func TestValidateDestinationTooShort(t *testing.T) {
	in := validInput()
	in.Destination = "G"
	_, errs := Validate(in)
	require.NotNil(t, errs)
	assert.Contains(t, errs, "destination")
}

func TestValidateWindowViolationAttachesToEndDate(t *testing.T) {
	for _, end := range []string{"2025-09-01", "2025-08-25"} {
		in := validInput()
		in.EndDate = end
		_, errs := Validate(in)
		require.NotNil(t, errs, "endDate=%s must be rejected", end)
		assert.Equal(t, "Return date must be after departure date", errs["endDate"])
		assert.NotContains(t, errs, "startDate")
	}
}

func TestValidateMissingDates(t *testing.T) {
	in := validInput()
	in.StartDate = ""
	in.EndDate = "not-a-date"
	_, errs := Validate(in)
	require.NotNil(t, errs)
	assert.Contains(t, errs, "startDate")
	assert.Contains(t, errs, "endDate")
}

func TestValidateNumericCoercion(t *testing.T) {
	cases := []struct {
		name  string
		mut   func(*FormInput)
		field string
	}{
		{"empty budget", func(in *FormInput) { in.Budget = "" }, "budget"},
		{"non-numeric budget", func(in *FormInput) { in.Budget = "lots" }, "budget"},
		{"zero budget", func(in *FormInput) { in.Budget = "0" }, "budget"},
		{"negative budget", func(in *FormInput) { in.Budget = "-100" }, "budget"},
		{"empty travelers", func(in *FormInput) { in.NumberOfPeople = "" }, "numberOfPeople"},
		{"zero travelers", func(in *FormInput) { in.NumberOfPeople = "0" }, "numberOfPeople"},
		{"empty vacation type", func(in *FormInput) { in.VacationType = " " }, "vacationType"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mut(&in)
			_, errs := Validate(in)
			require.NotNil(t, errs)
			assert.Contains(t, errs, tc.field)
		})
	}
}

// TestTripRequestRoundTrip guards the storage contract: serialize then
// deserialize must yield an equal value with integer fields intact.
func TestTripRequestRoundTrip(t *testing.T) {
	req, errs := Validate(validInput())
	require.Nil(t, errs)

	payload, err := json.Marshal(req)
	require.NoError(t, err)

	var back TripRequest
	require.NoError(t, json.Unmarshal(payload, &back))
	assert.Equal(t, req, back)
	assert.Equal(t, 50000, back.Budget)
	assert.Equal(t, 2, back.NumberOfPeople)
}
