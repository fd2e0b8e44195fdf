package intake

import (
	"testing"
	"time"
)

func date(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestDefaultEndDate(t *testing.T) {
	got := DefaultEndDate(date("2025-09-01"))
	if want := date("2025-09-07"); !got.Equal(want) {
		t.Errorf("DefaultEndDate = %s, want %s", got.Format(DateLayout), want.Format(DateLayout))
	}
}

func TestDeriveEndDate(t *testing.T) {
	cases := []struct {
		name    string
		start   string
		end     string
		endSet  bool
		want    string
		changed bool
	}{
		{"unset return date gets default window", "2025-09-01", "", false, "2025-09-07", true},
		{"return date equal to departure gets default window", "2025-09-01", "2025-09-01", true, "2025-09-07", true},
		{"return date before departure gets default window", "2025-09-10", "2025-09-05", true, "2025-09-16", true},
		{"later return date kept", "2025-09-01", "2025-09-03", true, "2025-09-03", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var end time.Time
			if tc.endSet {
				end = date(tc.end)
			}
			got, changed := DeriveEndDate(date(tc.start), end, tc.endSet)
			if !got.Equal(date(tc.want)) {
				t.Errorf("DeriveEndDate = %s, want %s", got.Format(DateLayout), tc.want)
			}
			if changed != tc.changed {
				t.Errorf("changed = %v, want %v", changed, tc.changed)
			}
		})
	}
}

func TestAdjustReturnDateSameDayBump(t *testing.T) {
	start := date("2025-09-01")

	got := AdjustReturnDate(start, date("2025-09-01"))
	if want := date("2025-09-02"); !got.Equal(want) {
		t.Errorf("same-day pick should advance one day, got %s", got.Format(DateLayout))
	}

	// A distinct pick is left alone, even when it is before the departure
	// (validation still rejects that window later).
	got = AdjustReturnDate(start, date("2025-09-05"))
	if want := date("2025-09-05"); !got.Equal(want) {
		t.Errorf("distinct pick should be untouched, got %s", got.Format(DateLayout))
	}
}
