package models

import "time"

// BlockedDate is an operator-imposed unavailability window, always scoped to
// exactly one unit. Blocking "all units" creates one record per unit.
// Same half-open [StartDate, EndDate) day semantics as Booking.
type BlockedDate struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UnitID    uint      `gorm:"column:unit_id;index" json:"unitId"`
	StartDate time.Time `gorm:"column:start_date" json:"startDate"`
	EndDate   time.Time `gorm:"column:end_date" json:"endDate"`
	Reason    string    `gorm:"column:reason;size:255" json:"reason"`
}
