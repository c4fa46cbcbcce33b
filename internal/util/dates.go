package util

import "time"

// GetMonthDates returns the first and last instant of the given month.
// A non-positive year means the current year.
func GetMonthDates(month int, year int) (time.Time, time.Time) {
	today := time.Now()
	location := today.Location()

	y := year
	if y <= 0 {
		y = today.Year()
	}

	firstOfMonth := time.Date(y, time.Month(month), 1, 0, 0, 0, 0, location)
	lastOfMonth := firstOfMonth.AddDate(0, 1, 0).Add(time.Nanosecond * -1)

	return firstOfMonth, lastOfMonth
}

// GetYearDates returns the first and last instant of the given year.
func GetYearDates(year int) (time.Time, time.Time) {
	location := time.Now().Location()

	firstOfYear := time.Date(year, 1, 1, 0, 0, 0, 0, location)
	lastOfYear := time.Date(year+1, 1, 1, 0, 0, 0, 0, location).Add(time.Nanosecond * -1)

	return firstOfYear, lastOfYear
}
