package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"rental-backend/models"
)

// CalendarService loads the month's records and evaluates the grid. Only
// records overlapping the month are fetched; cancelled bookings never
// occupy days and are filtered at the query.
type CalendarService struct {
	DB *gorm.DB
}

func NewCalendarService(db *gorm.DB) *CalendarService {
	return &CalendarService{DB: db}
}

// GetMonth builds the dashboard grid for one month.
func (s *CalendarService) GetMonth(year, month int) (*CalendarMonth, error) {
	if month < 1 || month > 12 {
		return nil, errors.New("invalid_month")
	}

	monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)

	var units []models.Unit
	if err := s.DB.Order("id ASC").Find(&units).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve units: %w", err)
	}

	var bookings []models.Booking
	if err := s.DB.
		Where("status <> ?", models.StatusCancelled).
		Where("start_date < ? AND end_date > ?", monthEnd, monthStart).
		Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}

	var blocked []models.BlockedDate
	if err := s.DB.
		Where("start_date < ? AND end_date > ?", monthEnd, monthStart).
		Find(&blocked).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve blocked dates: %w", err)
	}

	grid := BuildCalendarMonth(units, bookings, blocked, year, time.Month(month))
	return &grid, nil
}
