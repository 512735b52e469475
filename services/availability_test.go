package services

import (
	"testing"
	"time"

	"rental-backend/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestOccupancyHalfOpenInterval(t *testing.T) {
	bookings := []models.Booking{
		{
			ID:        1,
			UnitID:    1,
			StartDate: day(2025, time.June, 10),
			EndDate:   day(2025, time.June, 12),
			Status:    models.StatusConfirmed,
		},
	}

	cases := []struct {
		date time.Time
		kind string
	}{
		{day(2025, time.June, 9), OccupancyFree},
		{day(2025, time.June, 10), OccupancyBooked},
		{day(2025, time.June, 11), OccupancyBooked},
		{day(2025, time.June, 12), OccupancyFree}, // checkout day stays free
		{day(2025, time.June, 13), OccupancyFree},
	}

	for _, tc := range cases {
		got := OccupancyOf(bookings, nil, 1, tc.date)
		if got.Kind != tc.kind {
			t.Errorf("occupancy on %s: got %s, want %s", tc.date.Format("2006-01-02"), got.Kind, tc.kind)
		}
	}
}

func TestOccupancyIgnoresTimeOfDay(t *testing.T) {
	bookings := []models.Booking{
		{
			ID:        1,
			UnitID:    1,
			StartDate: time.Date(2025, time.June, 10, 15, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2025, time.June, 12, 11, 0, 0, 0, time.UTC),
		},
	}

	late := time.Date(2025, time.June, 10, 23, 59, 0, 0, time.UTC)
	if got := OccupancyOf(bookings, nil, 1, late); got.Kind != OccupancyBooked {
		t.Errorf("late evening on start day: got %s, want booked", got.Kind)
	}
	checkoutMorning := time.Date(2025, time.June, 12, 0, 30, 0, 0, time.UTC)
	if got := OccupancyOf(bookings, nil, 1, checkoutMorning); got.Kind != OccupancyFree {
		t.Errorf("checkout day morning: got %s, want free", got.Kind)
	}
}

func TestOccupancyComparesWallClockDatesAcrossZones(t *testing.T) {
	// Rows loaded in server-local time must line up with UTC cell dates.
	serverLocal := time.FixedZone("UTC-5", -5*60*60)
	bookings := []models.Booking{
		{
			ID:        1,
			UnitID:    1,
			StartDate: time.Date(2025, time.June, 10, 0, 0, 0, 0, serverLocal),
			EndDate:   time.Date(2025, time.June, 12, 0, 0, 0, 0, serverLocal),
		},
	}

	got := OccupancyOf(bookings, nil, 1, day(2025, time.June, 10))
	if got.Kind != OccupancyBooked {
		t.Errorf("check-in day: got %s, want booked", got.Kind)
	}
	if !got.IsStart {
		t.Error("check-in day should carry IsStart despite the zone offset")
	}
	if got := OccupancyOf(bookings, nil, 1, day(2025, time.June, 12)); got.Kind != OccupancyFree {
		t.Errorf("checkout day: got %s, want free", got.Kind)
	}

	// And the mirror case: UTC rows against local cell dates.
	localCell := time.Date(2025, time.June, 10, 0, 0, 0, 0, serverLocal)
	utcBookings := []models.Booking{
		{ID: 2, UnitID: 1, StartDate: day(2025, time.June, 10), EndDate: day(2025, time.June, 12)},
	}
	if got := OccupancyOf(utcBookings, nil, 1, localCell); got.Kind != OccupancyBooked {
		t.Errorf("local cell on utc span: got %s, want booked", got.Kind)
	}
}

func TestOccupancyScopedToUnit(t *testing.T) {
	bookings := []models.Booking{
		{ID: 1, UnitID: 1, StartDate: day(2025, time.June, 10), EndDate: day(2025, time.June, 12)},
	}

	if got := OccupancyOf(bookings, nil, 2, day(2025, time.June, 10)); got.Kind != OccupancyFree {
		t.Errorf("other unit: got %s, want free", got.Kind)
	}
}

func TestOccupancyBookingWinsOverBlocked(t *testing.T) {
	bookings := []models.Booking{
		{ID: 1, UnitID: 1, StartDate: day(2025, time.June, 10), EndDate: day(2025, time.June, 12)},
	}
	blocked := []models.BlockedDate{
		{ID: 7, UnitID: 1, StartDate: day(2025, time.June, 9), EndDate: day(2025, time.June, 14), Reason: "שיפוצים"},
	}

	got := OccupancyOf(bookings, blocked, 1, day(2025, time.June, 11))
	if got.Kind != OccupancyBooked {
		t.Fatalf("overlap day: got %s, want booked", got.Kind)
	}
	if got.Booking == nil || got.Booking.ID != 1 {
		t.Errorf("overlap day: expected booking 1 attached, got %+v", got.Booking)
	}

	got = OccupancyOf(bookings, blocked, 1, day(2025, time.June, 9))
	if got.Kind != OccupancyBlocked {
		t.Errorf("blocked-only day: got %s, want blocked", got.Kind)
	}
	if got.BlockedDate == nil || got.BlockedDate.Reason != "שיפוצים" {
		t.Errorf("blocked-only day: expected blocked record attached")
	}
}

func TestOccupancyIsStartFlag(t *testing.T) {
	bookings := []models.Booking{
		{ID: 1, UnitID: 1, StartDate: day(2025, time.June, 10), EndDate: day(2025, time.June, 12)},
	}

	if got := OccupancyOf(bookings, nil, 1, day(2025, time.June, 10)); !got.IsStart {
		t.Error("first day of span should carry IsStart")
	}
	if got := OccupancyOf(bookings, nil, 1, day(2025, time.June, 11)); got.IsStart {
		t.Error("second day of span should not carry IsStart")
	}
}

func TestBuildCalendarMonth(t *testing.T) {
	units := []models.Unit{{ID: 1, Name: "סוויטת הגפן"}, {ID: 2, Name: "סוויטת הזית"}}
	bookings := []models.Booking{
		{ID: 1, UnitID: 1, StartDate: day(2025, time.June, 10), EndDate: day(2025, time.June, 12)},
	}
	blocked := []models.BlockedDate{
		{ID: 1, UnitID: 2, StartDate: day(2025, time.June, 1), EndDate: day(2025, time.July, 1)},
	}

	grid := BuildCalendarMonth(units, bookings, blocked, 2025, time.June)

	if grid.Days != 30 {
		t.Fatalf("june has 30 days, got %d", grid.Days)
	}
	if len(grid.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(grid.Rows))
	}
	for _, row := range grid.Rows {
		if len(row.Days) != 30 {
			t.Fatalf("unit %d: expected 30 cells, got %d", row.Unit.ID, len(row.Days))
		}
	}

	unit1 := grid.Rows[0].Days
	if unit1[9].Kind != OccupancyBooked || unit1[11].Kind != OccupancyFree {
		t.Errorf("unit 1: expected booked on the 10th and free on the 12th")
	}

	for i, cell := range grid.Rows[1].Days {
		if cell.Kind != OccupancyBlocked {
			t.Fatalf("unit 2 day %d: expected blocked, got %s", i+1, cell.Kind)
		}
	}
	if !grid.Rows[1].Days[0].IsStart || grid.Rows[1].Days[1].IsStart {
		t.Error("unit 2: only the first cell of the blocked span should carry IsStart")
	}
}

func TestDaysInMonthFebruary(t *testing.T) {
	if got := daysInMonth(2024, time.February); got != 29 {
		t.Errorf("feb 2024: got %d, want 29", got)
	}
	if got := daysInMonth(2025, time.February); got != 28 {
		t.Errorf("feb 2025: got %d, want 28", got)
	}
}
