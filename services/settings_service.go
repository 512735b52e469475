package services

import (
	"errors"
	"fmt"
	"strings"

	"rental-backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SettingsService wraps *gorm.DB for app settings. Currently the only
// setting is the externally reachable base URL for signature links.
type SettingsService struct {
	DB *gorm.DB
}

func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{DB: db}
}

// GetAppURL returns the stored base URL, empty when none was ever set.
func (s *SettingsService) GetAppURL() (string, error) {
	var setting models.AppSetting
	err := s.DB.Where("`key` = ?", models.AppSettingKeyAppURL).First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to retrieve app url: %w", err)
	}
	return setting.Value, nil
}

// UpdateAppURL upserts the base URL setting.
func (s *SettingsService) UpdateAppURL(appURL string) error {
	appURL = strings.TrimRight(strings.TrimSpace(appURL), "/")
	if appURL == "" {
		return errors.New("missing_app_url")
	}
	if !(strings.HasPrefix(appURL, "http://") || strings.HasPrefix(appURL, "https://")) {
		return errors.New("invalid_app_url")
	}

	setting := models.AppSetting{Key: models.AppSettingKeyAppURL, Value: appURL}
	err := s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&setting).Error
	if err != nil {
		return fmt.Errorf("failed to update app url: %w", err)
	}
	return nil
}
