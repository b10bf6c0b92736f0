package helper

import (
	"math"
	"time"
)

// AgeYears menghitung umur (tahun penuh) dari tanggal lahir.
// Rumus: floor(selisih_hari / 365.25) — konsisten dengan tahun kabisat.
func AgeYears(dob time.Time, at time.Time) int {
	days := at.Sub(dob).Hours() / 24
	if days < 0 {
		return 0
	}
	return int(math.Floor(days / 365.25))
}

// AgeYearsPtr versi nullable: nil masuk, nil keluar.
func AgeYearsPtr(dob *time.Time, at time.Time) *int {
	if dob == nil {
		return nil
	}
	a := AgeYears(*dob, at)
	return &a
}
