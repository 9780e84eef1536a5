// Package models defines server-side data models persisted in the database.
package models

import "time"

// Rental is one rent/return cycle of a movie by a user.
//
// A rental is open while Paid is false and DateEnd is nil. Return closes
// it exactly once by setting both; a closed rental is never modified again.
type Rental struct {
	ID        int64      `json:"rental_id"`
	MovieID   int64      `json:"movie_id"`
	UserID    int64      `json:"user_id"`
	DateStart time.Time  `json:"date_start"`
	DateEnd   *time.Time `json:"date_end"`
	Paid      bool       `json:"paid"`
}

// Open reports whether the rental has not been returned yet.
func (r *Rental) Open() bool {
	return !r.Paid
}
