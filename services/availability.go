package services

import (
	"time"

	"rental-backend/models"
)

// Occupancy kinds for a unit/day cell. The variant is decided once when the
// cell is built; callers never re-inspect the underlying records.
const (
	OccupancyFree    = "free"
	OccupancyBooked  = "booked"
	OccupancyBlocked = "blocked"
)

// Occupancy is the tagged result of OccupancyOf: exactly one of Booking or
// BlockedDate is set when Kind is not Free. IsStart marks the first calendar
// day of the occupying span (the dashboard labels only that cell).
type Occupancy struct {
	Kind        string              `json:"kind"`
	Booking     *models.Booking     `json:"booking,omitempty"`
	BlockedDate *models.BlockedDate `json:"blockedDate,omitempty"`
	IsStart     bool                `json:"isStart,omitempty"`
}

// floorDay reduces a timestamp to its wall-clock calendar date, dropping the
// zone. Rows come back from MySQL in server-local time while cell dates are
// built in UTC; comparing instants would shift days on any server west of
// UTC, so only the date components may participate.
func floorDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sameDay(a, b time.Time) bool {
	return floorDay(a).Equal(floorDay(b))
}

// covers reports whether day falls in the half-open span [start, end) by
// calendar day. A span from the 10th to the 12th covers the 10th and the
// 11th; the 12th (checkout day) is free.
func covers(start, end, day time.Time) bool {
	d := floorDay(day)
	return !d.Before(floorDay(start)) && d.Before(floorDay(end))
}

// OccupancyOf scans the collections for the entity occupying unitID on the
// given date. Bookings are scanned before blocked dates, so if both cover the
// same unit/day (nothing prevents creating that overlap) the booking wins.
// Pure function over in-memory data; always defined.
func OccupancyOf(bookings []models.Booking, blocked []models.BlockedDate, unitID uint, date time.Time) Occupancy {
	for i := range bookings {
		b := &bookings[i]
		if b.UnitID == unitID && covers(b.StartDate, b.EndDate, date) {
			return Occupancy{
				Kind:    OccupancyBooked,
				Booking: b,
				IsStart: sameDay(b.StartDate, date),
			}
		}
	}
	for i := range blocked {
		bd := &blocked[i]
		if bd.UnitID == unitID && covers(bd.StartDate, bd.EndDate, date) {
			return Occupancy{
				Kind:        OccupancyBlocked,
				BlockedDate: bd,
				IsStart:     sameDay(bd.StartDate, date),
			}
		}
	}
	return Occupancy{Kind: OccupancyFree}
}

// CalendarRow is one unit's cells for the requested month, one per day.
type CalendarRow struct {
	Unit models.Unit `json:"unit"`
	Days []Occupancy `json:"days"`
}

// CalendarMonth is the dashboard grid: units by rows, days of the month by
// columns, each cell already tagged.
type CalendarMonth struct {
	Year  int           `json:"year"`
	Month int           `json:"month"`
	Days  int           `json:"days"`
	Rows  []CalendarRow `json:"rows"`
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// BuildCalendarMonth evaluates every unit/day cell of the month once.
func BuildCalendarMonth(units []models.Unit, bookings []models.Booking, blocked []models.BlockedDate, year int, month time.Month) CalendarMonth {
	n := daysInMonth(year, month)
	grid := CalendarMonth{
		Year:  year,
		Month: int(month),
		Days:  n,
		Rows:  make([]CalendarRow, 0, len(units)),
	}

	for _, unit := range units {
		row := CalendarRow{Unit: unit, Days: make([]Occupancy, 0, n)}
		for day := 1; day <= n; day++ {
			date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
			row.Days = append(row.Days, OccupancyOf(bookings, blocked, unit.ID, date))
		}
		grid.Rows = append(grid.Rows, row)
	}
	return grid
}
