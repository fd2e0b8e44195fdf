// README: Pure validation of raw form input into a canonical TripRequest.
package intake

import (
	"strconv"
	"strings"
	"time"
)

// Validate applies the intake schema to a raw form submission. On success it
// returns the canonical TripRequest with dates formatted as YYYY-MM-DD and
// numeric strings coerced to integers. On failure it returns field-scoped
// errors; a request is only produced when every field passes.
func Validate(in FormInput) (TripRequest, FieldErrors) {
	errs := FieldErrors{}

	destination := strings.TrimSpace(in.Destination)
	if destination != "" && len([]rune(destination)) < 2 {
		errs["destination"] = "Destination must be at least 2 characters."
	}

	start, startOK := parseDate(in.StartDate)
	if !startOK {
		errs["startDate"] = "Please select a departure date."
	}

	end, endOK := parseDate(in.EndDate)
	if !endOK {
		errs["endDate"] = "Please select a return date."
	}

	// The window violation is attached to the return date field.
	if startOK && endOK && !end.After(start) {
		errs["endDate"] = "Return date must be after departure date"
	}

	people, peopleOK := parsePositiveInt(in.NumberOfPeople)
	if !peopleOK {
		errs["numberOfPeople"] = "Please select number of travelers."
	}

	if strings.TrimSpace(in.VacationType) == "" {
		errs["vacationType"] = "Please select a vacation type."
	}

	budget, budgetOK := parsePositiveInt(in.Budget)
	if !budgetOK {
		errs["budget"] = "Budget is required."
	}

	if len(errs) > 0 {
		return TripRequest{}, errs
	}

	return TripRequest{
		StartDate:      start.Format(DateLayout),
		EndDate:        end.Format(DateLayout),
		Budget:         budget,
		VacationType:   strings.TrimSpace(in.VacationType),
		NumberOfPeople: people,
		Destination:    destination,
	}, nil
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func parsePositiveInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
