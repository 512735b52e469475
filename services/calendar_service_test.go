package services

import (
	"testing"
	"time"

	"rental-backend/models"
)

func TestCalendarMonthExcludesCancelledBookings(t *testing.T) {
	db := openTestDB(t)
	unitSvc := NewUnitService(db)
	calSvc := NewCalendarService(db)

	units := seedUnits(t, unitSvc, "סוויטת הגפן")

	active := models.Booking{
		UnitID:    units[0].ID,
		StartDate: day(2025, time.June, 10),
		EndDate:   day(2025, time.June, 12),
		Status:    models.StatusConfirmed,
	}
	cancelled := models.Booking{
		UnitID:    units[0].ID,
		StartDate: day(2025, time.June, 20),
		EndDate:   day(2025, time.June, 25),
		Status:    models.StatusCancelled,
	}
	if err := db.Create(&active).Error; err != nil {
		t.Fatal(err)
	}
	if err := db.Create(&cancelled).Error; err != nil {
		t.Fatal(err)
	}

	grid, err := calSvc.GetMonth(2025, 6)
	if err != nil {
		t.Fatalf("calendar failed: %v", err)
	}
	row := grid.Rows[0].Days

	if row[9].Kind != OccupancyBooked {
		t.Errorf("june 10: got %s, want booked", row[9].Kind)
	}
	if row[20].Kind != OccupancyFree {
		t.Errorf("june 21 (cancelled booking): got %s, want free", row[20].Kind)
	}
}

func TestCalendarMonthIncludesSpansCrossingMonthEdge(t *testing.T) {
	db := openTestDB(t)
	unitSvc := NewUnitService(db)
	calSvc := NewCalendarService(db)

	units := seedUnits(t, unitSvc, "סוויטת הזית")

	crossing := models.Booking{
		UnitID:    units[0].ID,
		StartDate: day(2025, time.May, 30),
		EndDate:   day(2025, time.June, 2),
		Status:    models.StatusPending,
	}
	if err := db.Create(&crossing).Error; err != nil {
		t.Fatal(err)
	}

	grid, err := calSvc.GetMonth(2025, 6)
	if err != nil {
		t.Fatalf("calendar failed: %v", err)
	}
	row := grid.Rows[0].Days

	if row[0].Kind != OccupancyBooked {
		t.Errorf("june 1: got %s, want booked (span started in may)", row[0].Kind)
	}
	if row[0].IsStart {
		t.Error("june 1 is mid-span, IsStart must be false")
	}
	if row[1].Kind != OccupancyFree {
		t.Errorf("june 2 (checkout): got %s, want free", row[1].Kind)
	}
}

func TestCalendarMonthRejectsInvalidMonth(t *testing.T) {
	calSvc := NewCalendarService(openTestDB(t))
	if _, err := calSvc.GetMonth(2025, 13); err == nil || err.Error() != "invalid_month" {
		t.Fatalf("expected invalid_month, got %v", err)
	}
}
