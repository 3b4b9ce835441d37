package soc

import (
	"fmt"
	"time"
)

// IsSpring reports whether registration for the fall term is open. The SOC
// publishes the fall listing from late February through late September, and
// the spring listing for the rest of the year.
func IsSpring(date time.Time) bool {
	month := int(date.Month())
	day := date.Day()

	return (month > 2 && month < 9) ||
		(month == 2 && day >= 21) ||
		(month == 9 && day <= 21)
}

// ClosestTermID returns the term ID whose schedule is available on the given
// date: the fall term ("YYYY08") during spring, the spring term ("YYYY01")
// otherwise.
func ClosestTermID(date time.Time) string {
	if IsSpring(date) {
		return fmt.Sprintf("%d08", date.Year())
	}
	return fmt.Sprintf("%d01", date.Year())
}
