package services

import (
	"errors"
	"fmt"
	"strings"

	"rental-backend/models"

	"gorm.io/gorm"
)

// UnitService wraps *gorm.DB for unit management. Deleting a unit leaves its
// bookings and blocked ranges in place; the calendar simply stops showing a
// row for it.
type UnitService struct {
	DB *gorm.DB
}

func NewUnitService(db *gorm.DB) *UnitService {
	return &UnitService{DB: db}
}

func (s *UnitService) GetAllUnits() ([]models.Unit, error) {
	var units []models.Unit
	if err := s.DB.Order("id ASC").Find(&units).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve units: %w", err)
	}
	return units, nil
}

func (s *UnitService) CreateUnit(name string) (*models.Unit, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.New("missing_name")
	}
	unit := &models.Unit{Name: strings.TrimSpace(name)}
	if err := s.DB.Create(unit).Error; err != nil {
		return nil, fmt.Errorf("failed to create unit: %w", err)
	}
	return unit, nil
}

func (s *UnitService) RenameUnit(id uint, name string) (*models.Unit, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.New("missing_name")
	}

	var unit models.Unit
	if err := s.DB.First(&unit, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("unit_not_found")
		}
		return nil, fmt.Errorf("failed to retrieve unit: %w", err)
	}

	if err := s.DB.Model(&unit).Update("name", strings.TrimSpace(name)).Error; err != nil {
		return nil, fmt.Errorf("failed to rename unit: %w", err)
	}
	return &unit, nil
}

func (s *UnitService) DeleteUnit(id uint) error {
	result := s.DB.Delete(&models.Unit{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete unit: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("unit_not_found")
	}
	return nil
}
