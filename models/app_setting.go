package models

import "time"

// AppSettingKeyAppURL is the externally reachable base URL used to build
// shareable signature links.
const AppSettingKeyAppURL = "app_url"

// AppSetting is a process-wide key/value row.
type AppSetting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"column:key;size:64;uniqueIndex" json:"key"`
	Value     string    `gorm:"column:value;type:text" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
