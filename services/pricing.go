package services

import (
	"math"
	"time"
)

// Nights returns the billable night count for a stay, rounding partial
// days up. A zero or negative range is rejected: no zero-night bookings.
func Nights(checkIn, checkOut time.Time) (int, error) {
	diff := checkOut.Sub(checkIn)
	if diff <= 0 {
		return 0, ErrInvalidDateRange
	}
	nights := int(math.Ceil(diff.Hours() / 24))
	if nights < 1 {
		return 0, ErrInvalidDateRange
	}
	return nights, nil
}

// TotalPrice is the nightly rate times the night count.
func TotalPrice(pricePerNight float64, nights int) float64 {
	return pricePerNight * float64(nights)
}
