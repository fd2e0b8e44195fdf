// README: Pure date-window defaulting rules, callable outside any UI event loop.
package intake

import "time"

// DefaultTripDays is the length of the default one-week trip window.
const DefaultTripDays = 6

// DefaultEndDate returns the return date implied by a departure date when the
// traveler has not picked one: departure + 6 days.
func DefaultEndDate(start time.Time) time.Time {
	return start.AddDate(0, 0, DefaultTripDays)
}

// DeriveEndDate applies the reactive end-date rule for a departure-date
// change: if the current return date is unset or not strictly after the new
// departure date, it is replaced with the default window. The boolean reports
// whether the return date was changed.
func DeriveEndDate(start, end time.Time, endSet bool) (time.Time, bool) {
	if !endSet || !end.After(start) {
		return DefaultEndDate(start), true
	}
	return end, false
}

// AdjustReturnDate handles the calendar edge case where the traveler
// explicitly picks a return date equal to the departure date: the selection
// is silently advanced by one day rather than rejected.
func AdjustReturnDate(start, picked time.Time) time.Time {
	if sameDay(start, picked) {
		return picked.AddDate(0, 0, 1)
	}
	return picked
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
