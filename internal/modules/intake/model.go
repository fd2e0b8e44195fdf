// README: Canonical trip request model and raw form input for the intake adapter.
package intake

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// VacationTypes is the fixed set the form presents. The planning gateway
// forwards whatever it receives without enforcing membership.
var VacationTypes = []string{"Beach", "City", "Mountain", "Cultural", "Adventure"}

// TripRequest is the canonical, validated trip-parameter object passed from
// intake to the planning gateway. Dates are YYYY-MM-DD strings; budget and
// numberOfPeople are integers after coercion.
type TripRequest struct {
	StartDate      string `json:"startDate"`
	EndDate        string `json:"endDate"`
	Budget         int    `json:"budget"`
	VacationType   string `json:"vacationType"`
	NumberOfPeople int    `json:"numberOfPeople"`
	Destination    string `json:"destination,omitempty"`
}

// FormInput is the raw, unvalidated form submission. Numeric fields arrive as
// strings, matching what a select/input control produces.
type FormInput struct {
	Destination    string `json:"destination"`
	StartDate      string `json:"startDate"`
	EndDate        string `json:"endDate"`
	NumberOfPeople string `json:"numberOfPeople"`
	VacationType   string `json:"vacationType"`
	Budget         string `json:"budget"`
}

// FieldErrors maps a form field name to its validation message. Errors are
// field-local and block submission; nothing reaches the network while any
// field fails.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	for field, msg := range e {
		return field + ": " + msg
	}
	return "validation failed"
}
