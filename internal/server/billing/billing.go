// Package billing derives late fees from how long a rental has been out.
//
// The fee schedule charges per started day, counting the day of rental
// itself: the first three days cost 1.00 each and every further day 0.50.
// Amounts are integer euro cents so sums are exact.
package billing

import (
	"time"

	"github.com/dmitrijs2005/videoclub/internal/timex"
)

// Amount is a sum of money in euro cents.
type Amount int64

const (
	fullRateDays  = 3
	fullRateCents = Amount(100)
	lateRateCents = Amount(50)
)

// Euros returns the amount as a float for display.
func (a Amount) Euros() float64 {
	return float64(a) / 100
}

// Charge returns the fee for a rental that has been out for days whole
// calendar days. Negative values (clock skew) charge nothing.
//
//	0 days -> 1.00, 2 days -> 3.00, 4 days -> 4.00
func Charge(days int) Amount {
	if days < 0 {
		return 0
	}

	billed := Amount(days + 1)
	full := min(billed, fullRateDays)
	late := max(billed-fullRateDays, 0)

	return full*fullRateCents + late*lateRateCents
}

// ElapsedDays counts calendar days between the UTC dates of start and asOf.
// Time of day is ignored, so 23:59 to 00:01 the next day is one day.
func ElapsedDays(start, asOf time.Time) int {
	d := timex.StartOfDayUTC(asOf).Sub(timex.StartOfDayUTC(start))
	return int(d / (24 * time.Hour))
}

// ChargeAt is the fee for a rental started at start, evaluated at asOf.
func ChargeAt(start, asOf time.Time) Amount {
	return Charge(ElapsedDays(start, asOf))
}
