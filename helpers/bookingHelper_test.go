package helpers

import (
	"testing"
	"time"

	"go-restaurant-reservation/models"

	"gopkg.in/go-playground/assert.v1"
)

func mustSlot(t *testing.T, value string) time.Time {
	t.Helper()
	slot, err := time.Parse("2006-01-02 15:04", value)
	if err != nil {
		t.Fatal(err)
	}
	return slot
}

func activeBooking(tableId string, start time.Time, duration int, status string) models.Booking {
	return models.Booking{
		Table_id:  &tableId,
		Date_time: start,
		Duration:  &duration,
		Status:    status,
	}
}

func TestOverlaps(t *testing.T) {
	base := mustSlot(t, "2026-03-01 19:00")

	tests := []struct {
		name     string
		a        time.Time
		aDur     int
		b        time.Time
		bDur     int
		conflict bool
	}{
		{"same slot", base, 90, base, 90, true},
		{"contained", base, 120, base.Add(30 * time.Minute), 30, true},
		{"partial overlap", base, 90, base.Add(60 * time.Minute), 90, true},
		{"exact boundary touch", base, 90, base.Add(90 * time.Minute), 90, false},
		{"disjoint", base, 90, base.Add(3 * time.Hour), 90, false},
		{"earlier disjoint", base, 60, base.Add(-2 * time.Hour), 60, false},
		{"earlier touching", base, 60, base.Add(-60 * time.Minute), 60, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, Overlaps(tt.a, tt.aDur, tt.b, tt.bDur), tt.conflict)
			// overlap is symmetric
			assert.Equal(t, Overlaps(tt.b, tt.bDur, tt.a, tt.aDur), tt.conflict)
		})
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from    string
		to      string
		allowed bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusCompleted, false},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusPending, false},
		{StatusCancelled, StatusPending, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusCancelled, StatusCancelled, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCompleted, StatusCompleted, false},
		{"garbage", StatusConfirmed, false},
	}
	for _, tt := range tests {
		assert.Equal(t, CanTransition(tt.from, tt.to), tt.allowed)
	}
}

func TestTableIsFreeExcludesCancelled(t *testing.T) {
	start := mustSlot(t, "2026-03-01 19:00")
	bookings := []models.Booking{
		activeBooking("t1", start, 90, StatusCancelled),
	}
	assert.Equal(t, TableIsFree("t1", bookings, start, 90), true)

	bookings[0].Status = StatusConfirmed
	assert.Equal(t, TableIsFree("t1", bookings, start, 90), false)
}

func TestTableIsFreeBoundaryScenario(t *testing.T) {
	// table booked 19:00-20:30
	booked := mustSlot(t, "2026-03-01 19:00")
	bookings := []models.Booking{
		activeBooking("table4", booked, 90, StatusConfirmed),
	}

	// 20:30-22:00 abuts the existing booking and succeeds
	assert.Equal(t, TableIsFree("table4", bookings, mustSlot(t, "2026-03-01 20:30"), 90), true)
	// 20:00-21:00 overlaps and fails
	assert.Equal(t, TableIsFree("table4", bookings, mustSlot(t, "2026-03-01 20:00"), 60), false)
	// another table is unaffected
	assert.Equal(t, TableIsFree("table5", bookings, mustSlot(t, "2026-03-01 20:00"), 60), true)
}

func TestBookingDurationDefault(t *testing.T) {
	var b models.Booking
	assert.Equal(t, BookingDuration(b), DefaultBookingDuration)

	short := 45
	b.Duration = &short
	assert.Equal(t, BookingDuration(b), 45)

	zero := 0
	b.Duration = &zero
	assert.Equal(t, BookingDuration(b), DefaultBookingDuration)
}

func TestValidDuration(t *testing.T) {
	tests := []struct {
		minutes int
		valid   bool
	}{
		{1, true},
		{DefaultBookingDuration, true},
		{MaxBookingDuration, true},
		{0, false},
		{-90, false},
		{MaxBookingDuration + 1, false},
		{2880, false},
	}
	for _, tt := range tests {
		assert.Equal(t, ValidDuration(tt.minutes), tt.valid)
	}
}

// A booking capped at MaxBookingDuration that starts exactly one cap before
// a requested slot ends right at the slot's start, so a lookback of one cap
// can never hide a booking that still overlaps.
func TestMaxDurationLookbackIsSufficient(t *testing.T) {
	start := mustSlot(t, "2026-03-02 10:00")
	earliest := start.Add(-time.Duration(MaxBookingDuration) * time.Minute)

	assert.Equal(t, Overlaps(earliest, MaxBookingDuration, start, 90), false)
	// one minute later and it reaches into the slot
	assert.Equal(t, Overlaps(earliest.Add(time.Minute), MaxBookingDuration, start, 90), true)
}

func TestFilterFreeTables(t *testing.T) {
	start := mustSlot(t, "2026-03-01 19:00")
	yes := true
	no := false
	two := 2
	four := 4
	six := 6

	tables := []models.Table{
		{Table_id: "small", Capacity: &two, Availiable: &yes},
		{Table_id: "booked", Capacity: &four, Availiable: &yes},
		{Table_id: "offline", Capacity: &six, Availiable: &no},
		{Table_id: "free", Capacity: &four, Availiable: &yes},
	}
	bookings := []models.Booking{
		activeBooking("booked", start.Add(30*time.Minute), 90, StatusPending),
	}

	free := FilterFreeTables(tables, bookings, 3, start, 90)
	assert.Equal(t, len(free), 1)
	assert.Equal(t, free[0].Table_id, "free")
}

func TestFilterFreeTablesEmptyResult(t *testing.T) {
	start := mustSlot(t, "2026-03-01 19:00")
	free := FilterFreeTables(nil, nil, 2, start, 90)
	// empty set, never nil
	assert.Equal(t, len(free), 0)
	if free == nil {
		t.Fatal("expected an empty slice, got nil")
	}
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, StatusLabel(StatusPending), "Pending confirmation")
	assert.Equal(t, StatusLabel(StatusConfirmed), "Confirmed")
	assert.Equal(t, StatusLabel(StatusCancelled), "Cancelled")
	assert.Equal(t, StatusLabel(StatusCompleted), "Completed")
	assert.Equal(t, StatusLabel("whatever"), "Unknown")
}

func TestParseBookingSlot(t *testing.T) {
	slot, err := ParseBookingSlot("2026-03-01", "19:30")
	assert.Equal(t, err, nil)
	assert.Equal(t, slot, mustSlot(t, "2026-03-01 19:30"))

	_, err = ParseBookingSlot("01-03-2026", "19:30")
	if err == nil {
		t.Fatal("expected an error for a malformed date")
	}
	_, err = ParseBookingSlot("2026-03-01", "7pm")
	if err == nil {
		t.Fatal("expected an error for a malformed time")
	}
}
