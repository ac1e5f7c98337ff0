package helpers

import (
	"time"

	"go-restaurant-reservation/models"
)

// DefaultBookingDuration is applied when a booking request carries no
// duration of its own, both to the requested slot and to stored bookings
// saved before duration became a field.
const DefaultBookingDuration = 90

// MaxBookingDuration bounds user-supplied durations to one day. The
// candidate-booking queries look back exactly this far, so a stored booking
// can never start earlier than the window and still overlap a requested
// slot.
const MaxBookingDuration = 1440

// ValidDuration checks a user-supplied duration in minutes.
func ValidDuration(minutes int) bool {
	return minutes >= 1 && minutes <= MaxBookingDuration
}

const (
	StatusPending   = "PENDING"
	StatusConfirmed = "CONFIRMED"
	StatusCancelled = "CANCELLED"
	StatusCompleted = "COMPLETED"
)

func BookingDuration(b models.Booking) int {
	if b.Duration != nil && *b.Duration > 0 {
		return *b.Duration
	}
	return DefaultBookingDuration
}

// IsActiveStatus reports whether a booking still holds its table. Only
// cancelled bookings release the slot.
func IsActiveStatus(status string) bool {
	return status != StatusCancelled
}

// Overlaps checks two half-open intervals [a, a+aDur) and [b, b+bDur),
// durations in minutes. An exact boundary touch (one ends where the other
// starts) is not a conflict.
func Overlaps(a time.Time, aDur int, b time.Time, bDur int) bool {
	aEnd := a.Add(time.Duration(aDur) * time.Minute)
	bEnd := b.Add(time.Duration(bDur) * time.Minute)
	return a.Before(bEnd) && b.Before(aEnd)
}

// CanTransition encodes the booking lifecycle:
// PENDING -> CONFIRMED -> COMPLETED, with PENDING and CONFIRMED also able to
// go to CANCELLED. CANCELLED and COMPLETED are terminal.
func CanTransition(from string, to string) bool {
	switch from {
	case StatusPending:
		return to == StatusConfirmed || to == StatusCancelled
	case StatusConfirmed:
		return to == StatusCompleted || to == StatusCancelled
	case StatusCancelled, StatusCompleted:
		return false
	default:
		return false
	}
}

// StatusLabel is the human wording used in notification emails and list
// responses.
func StatusLabel(status string) string {
	switch status {
	case StatusPending:
		return "Pending confirmation"
	case StatusConfirmed:
		return "Confirmed"
	case StatusCancelled:
		return "Cancelled"
	case StatusCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}

// TableIsFree reports whether none of the given bookings holds the table for
// the requested slot. Cancelled bookings never block.
func TableIsFree(tableId string, bookings []models.Booking, start time.Time, duration int) bool {
	for _, b := range bookings {
		if b.Table_id == nil || *b.Table_id != tableId {
			continue
		}
		if !IsActiveStatus(b.Status) {
			continue
		}
		if Overlaps(b.Date_time, BookingDuration(b), start, duration) {
			return false
		}
	}
	return true
}

// FilterFreeTables resolves availability in memory over rows already fetched
// for the requested window: seats enough guests, not manually switched off,
// and no active booking overlapping the slot.
func FilterFreeTables(tables []models.Table, bookings []models.Booking, guestCount int, start time.Time, duration int) []models.Table {
	free := []models.Table{}
	for _, t := range tables {
		if t.Capacity == nil || *t.Capacity < guestCount {
			continue
		}
		if t.Availiable == nil || !*t.Availiable {
			continue
		}
		if TableIsFree(t.Table_id, bookings, start, duration) {
			free = append(free, t)
		}
	}
	return free
}

// ParseBookingSlot combines the date and time query parameters into the
// requested start instant.
func ParseBookingSlot(date string, clock string) (time.Time, error) {
	return time.Parse("2006-01-02 15:04", date+" "+clock)
}
