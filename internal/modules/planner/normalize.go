// README: Defensive post-processing of model output: fallbacks and cost checks.
package planner

import (
	"fmt"
	"math"
)

// DefaultImageURL is substituted when the model omits a destination image.
const DefaultImageURL = "https://images.unsplash.com/photo-1488085061387-422e29b40080?q=80&w=2531&auto=format&fit=crop&ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D"

// DefaultDescription synthesizes a description for destinations the model
// left undescribed.
func DefaultDescription(name string) string {
	return fmt.Sprintf("Explore the beauty of %s with our exclusive travel package.", name)
}

// Normalize fills the fallback image and a synthesized description on every
// destination missing them, leaving all other fields untouched. The gateway's
// output is not guaranteed complete; this step is part of the data contract.
func Normalize(dests []Destination) []Destination {
	for i := range dests {
		if dests[i].Image == "" {
			dests[i].Image = DefaultImageURL
		}
		if dests[i].Description == "" {
			dests[i].Description = DefaultDescription(dests[i].Name)
		}
	}
	return dests
}

// CostTolerance is the relative drift accepted before a destination's
// arithmetic is flagged inconsistent.
const CostTolerance = 0.05

// CostReport is the advisory arithmetic check on a single destination. The
// gateway requests consistent numbers but cannot enforce them, so consumers
// decide what to do with a failing report.
type CostReport struct {
	ExpectedTotal     float64
	TotalConsistent   bool
	PerPersonExpected float64
	PerPersonOK       bool
}

// Consistent reports whether both derived figures are inside tolerance.
func (r CostReport) Consistent() bool {
	return r.TotalConsistent && r.PerPersonOK
}

// VerifyCosts recomputes the cost breakdown for a party of the given size
// over the given number of hotel nights:
//
//	total = flight.pricePerPerson*n + hotel.pricePerNight*nights + sum(activities.pricePerPerson)*n
//	perPerson = total / n
func VerifyCosts(d Destination, people, nights int) CostReport {
	var report CostReport
	if people <= 0 {
		return report
	}

	var activities float64
	for _, a := range d.Activities {
		activities += a.PricePerPerson
	}
	n := float64(people)
	report.ExpectedTotal = d.Flight.PricePerPerson*n + d.Hotel.PricePerNight*float64(nights) + activities*n
	report.TotalConsistent = withinTolerance(d.TotalCost, report.ExpectedTotal)

	report.PerPersonExpected = d.TotalCost / n
	report.PerPersonOK = withinTolerance(d.PerPersonCost, report.PerPersonExpected)
	return report
}

func withinTolerance(got, want float64) bool {
	if want == 0 {
		return got == 0
	}
	return math.Abs(got-want)/math.Abs(want) <= CostTolerance
}
