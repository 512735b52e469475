package services

import (
	"errors"
	"fmt"

	"rental-backend/models"

	"gorm.io/gorm"
)

// BlockedDateService wraps *gorm.DB for operator-imposed unavailability.
type BlockedDateService struct {
	DB *gorm.DB
}

func NewBlockedDateService(db *gorm.DB) *BlockedDateService {
	return &BlockedDateService{DB: db}
}

func (s *BlockedDateService) GetAllBlockedDates() ([]models.BlockedDate, error) {
	var list []models.BlockedDate
	if err := s.DB.Order("start_date ASC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve blocked dates: %w", err)
	}
	return list, nil
}

// CreateBlockedDate blocks one unit for the given range.
func (s *BlockedDateService) CreateBlockedDate(blocked *models.BlockedDate) error {
	if blocked.UnitID == 0 {
		return errors.New("missing_unit")
	}
	if !blocked.EndDate.After(blocked.StartDate) {
		return errors.New("invalid_range")
	}
	if err := s.DB.Create(blocked).Error; err != nil {
		return fmt.Errorf("failed to create blocked date: %w", err)
	}
	return nil
}

// BlockAllUnits fans one requested range out to a separate record per unit,
// so later edits and deletions stay per-unit.
func (s *BlockedDateService) BlockAllUnits(template models.BlockedDate) ([]models.BlockedDate, error) {
	if !template.EndDate.After(template.StartDate) {
		return nil, errors.New("invalid_range")
	}

	var units []models.Unit
	if err := s.DB.Find(&units).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve units: %w", err)
	}
	if len(units) == 0 {
		return nil, errors.New("no_units")
	}

	created := make([]models.BlockedDate, 0, len(units))
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		for _, unit := range units {
			record := models.BlockedDate{
				UnitID:    unit.ID,
				StartDate: template.StartDate,
				EndDate:   template.EndDate,
				Reason:    template.Reason,
			}
			if err := tx.Create(&record).Error; err != nil {
				return fmt.Errorf("failed to block unit %d: %w", unit.ID, err)
			}
			created = append(created, record)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *BlockedDateService) UpdateBlockedDate(id uint, updated *models.BlockedDate) (*models.BlockedDate, error) {
	var existing models.BlockedDate
	if err := s.DB.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("blocked_date_not_found")
		}
		return nil, fmt.Errorf("failed to retrieve blocked date: %w", err)
	}
	if !updated.EndDate.After(updated.StartDate) {
		return nil, errors.New("invalid_range")
	}

	updated.ID = existing.ID
	if err := s.DB.Save(updated).Error; err != nil {
		return nil, fmt.Errorf("failed to update blocked date: %w", err)
	}
	return updated, nil
}

func (s *BlockedDateService) DeleteBlockedDate(id uint) error {
	result := s.DB.Delete(&models.BlockedDate{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete blocked date: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("blocked_date_not_found")
	}
	return nil
}
