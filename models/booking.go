package models

import (
	"time"

	"gorm.io/datatypes"
)

// Booking status values. The user-facing strings are Hebrew; they are stored
// as-is so the dashboard renders them without a translation table.
const (
	StatusPending   = "בהמתנה"
	StatusConfirmed = "מאושרת"
	StatusCancelled = "מבוטלת"
)

// Customer is a value embedded in Booking, not a standalone entity. The
// embedded struct maps the nested entity onto the flat snake_case row.
type Customer struct {
	FullName string `gorm:"column:full_name;size:255" json:"fullName"`
	Phone    string `gorm:"column:phone;size:50" json:"phone"`
	Email    string `gorm:"column:email;size:150" json:"email"`
	IDNumber string `gorm:"column:id_number;size:64" json:"idNumber"`
}

// Booking occupies the half-open day interval [StartDate, EndDate): the
// checkout day is free for a new check-in. Time-of-day is ignored everywhere.
type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UnitID   uint     `gorm:"column:unit_id;index" json:"unitId"`
	Customer Customer `gorm:"embedded" json:"customer"`

	StartDate time.Time `gorm:"column:start_date" json:"startDate"`
	EndDate   time.Time `gorm:"column:end_date" json:"endDate"`

	Adults   int     `gorm:"column:adults;default:2" json:"adults"`
	Children int     `gorm:"column:children;default:0" json:"children"`
	Price    float64 `gorm:"column:price" json:"price"`

	Status        string `gorm:"column:status;size:64" json:"status"`
	InternalNotes string `gorm:"column:internal_notes;type:text" json:"internalNotes,omitempty"`

	// Signature is a base64 data URL of the handwritten signature raster.
	// It is set together with SignedDate, and only when Status is Confirmed.
	Signature  string     `gorm:"column:signature;type:mediumtext" json:"signature,omitempty"`
	SignedDate *time.Time `gorm:"column:signed_date" json:"signedDate,omitempty"`

	// Confirmation holds the outcome summary of the last confirm pipeline run
	// (confirmed / document / email flags), persisted as JSON.
	Confirmation datatypes.JSON `gorm:"column:confirmation" json:"confirmation,omitempty"`
}
