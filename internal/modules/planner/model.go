// README: Destination records returned by the planning gateway.
package planner

// Every numeric field below is produced by the external model and is
// untrusted: consumers must treat costs as possibly inconsistent or missing
// and apply their own fallbacks rather than relying on the model's
// arithmetic.

type Activity struct {
	Name           string  `json:"name"`
	PricePerPerson float64 `json:"pricePerPerson"`
}

type Flight struct {
	Airline        string  `json:"airline"`
	Departure      string  `json:"departure"`
	Arrival        string  `json:"arrival"`
	PricePerPerson float64 `json:"pricePerPerson"`
}

type Hotel struct {
	Name          string  `json:"name"`
	CheckIn       string  `json:"checkIn"`
	CheckOut      string  `json:"checkOut"`
	PricePerNight float64 `json:"pricePerNight"`
}

// Destination is one candidate trip package: flight + hotel + activities and
// the model's derived costs.
type Destination struct {
	Name          string     `json:"name"`
	Flight        Flight     `json:"flight"`
	Hotel         Hotel      `json:"hotel"`
	Activities    []Activity `json:"activities"`
	TotalCost     float64    `json:"totalCost"`
	PerPersonCost float64    `json:"perPersonCost"`
	Image         string     `json:"image,omitempty"`
	Description   string     `json:"description,omitempty"`
}

// Response is the gateway's success payload. Each response is ephemeral,
// scoped to a single request/response cycle; nothing is persisted.
type Response struct {
	Destinations []Destination `json:"destinations"`
}
