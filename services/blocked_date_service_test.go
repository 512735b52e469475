package services

import (
	"testing"
	"time"

	"rental-backend/models"
)

func seedUnits(t *testing.T, svc *UnitService, names ...string) []models.Unit {
	t.Helper()
	units := make([]models.Unit, 0, len(names))
	for _, name := range names {
		unit, err := svc.CreateUnit(name)
		if err != nil {
			t.Fatalf("failed to seed unit %q: %v", name, err)
		}
		units = append(units, *unit)
	}
	return units
}

func TestBlockAllUnitsFansOut(t *testing.T) {
	db := openTestDB(t)
	unitSvc := NewUnitService(db)
	blockedSvc := NewBlockedDateService(db)

	seedUnits(t, unitSvc, "סוויטת הגפן", "סוויטת הזית", "סוויטת הרימון")

	created, err := blockedSvc.BlockAllUnits(models.BlockedDate{
		StartDate: day(2025, time.August, 1),
		EndDate:   day(2025, time.August, 5),
		Reason:    "תחזוקה שנתית",
	})
	if err != nil {
		t.Fatalf("block all failed: %v", err)
	}
	if len(created) != 3 {
		t.Fatalf("expected one record per unit, got %d", len(created))
	}

	seen := map[uint]bool{}
	for _, record := range created {
		if record.ID == 0 {
			t.Error("expected store-assigned id on each record")
		}
		if record.Reason != "תחזוקה שנתית" {
			t.Errorf("reason not carried to unit %d", record.UnitID)
		}
		seen[record.UnitID] = true
	}
	if len(seen) != 3 {
		t.Errorf("records must target distinct units, got %v", seen)
	}

	// Deleting one unit's record leaves the others in place.
	if err := blockedSvc.DeleteBlockedDate(created[0].ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	remaining, err := blockedSvc.GetAllBlockedDates()
	if err != nil {
		t.Fatal(err)
	}
	if len(remaining) != 2 {
		t.Errorf("expected 2 remaining records, got %d", len(remaining))
	}
}

func TestBlockAllUnitsRequiresUnits(t *testing.T) {
	blockedSvc := NewBlockedDateService(openTestDB(t))

	_, err := blockedSvc.BlockAllUnits(models.BlockedDate{
		StartDate: day(2025, time.August, 1),
		EndDate:   day(2025, time.August, 5),
	})
	if err == nil || err.Error() != "no_units" {
		t.Fatalf("expected no_units, got %v", err)
	}
}

func TestCreateBlockedDateValidatesRange(t *testing.T) {
	blockedSvc := NewBlockedDateService(openTestDB(t))

	err := blockedSvc.CreateBlockedDate(&models.BlockedDate{
		UnitID:    1,
		StartDate: day(2025, time.August, 5),
		EndDate:   day(2025, time.August, 5),
	})
	if err == nil || err.Error() != "invalid_range" {
		t.Fatalf("zero-length range: got %v, want invalid_range", err)
	}

	err = blockedSvc.CreateBlockedDate(&models.BlockedDate{
		StartDate: day(2025, time.August, 1),
		EndDate:   day(2025, time.August, 5),
	})
	if err == nil || err.Error() != "missing_unit" {
		t.Fatalf("missing unit: got %v, want missing_unit", err)
	}
}
