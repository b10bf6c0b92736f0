package helper

import (
	"testing"
	"time"
)

func TestAgeYears(t *testing.T) {
	at := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		dob  time.Time
		want int
	}{
		{"exactly twelve", time.Date(2014, 7, 1, 0, 0, 0, 0, time.UTC), 12},
		{"day before birthday", time.Date(2014, 7, 2, 0, 0, 0, 0, time.UTC), 11},
		{"newborn", time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC), 0},
		{"future dob clamps to zero", time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), 0},
	}
	for _, tc := range cases {
		if got := AgeYears(tc.dob, at); got != tc.want {
			t.Errorf("%s: expected %d, got %d", tc.name, tc.want, got)
		}
	}
}

func TestAgeYearsPtr_Nil(t *testing.T) {
	if got := AgeYearsPtr(nil, time.Now()); got != nil {
		t.Errorf("nil DOB should yield nil age")
	}
}
