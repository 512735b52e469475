package controllers

import (
	"log"
	"net/http"

	"rental-backend/services"
	"rental-backend/utils"

	"github.com/gin-gonic/gin"
)

type SettingsController struct {
	SettingsSvc *services.SettingsService
}

func NewSettingsController(svc *services.SettingsService) *SettingsController {
	return &SettingsController{SettingsSvc: svc}
}

type appURLPayload struct {
	AppURL string `json:"appUrl" binding:"required"`
}

// GET /api/settings/app-url
func (ctrl *SettingsController) GetAppURL(c *gin.Context) {
	appURL, err := ctrl.SettingsSvc.GetAppURL()
	if err != nil {
		log.Printf("settings request failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "internal_error", "אירעה שגיאה, נסו שוב מאוחר יותר")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"appUrl": appURL})
}

// PUT /api/settings/app-url
func (ctrl *SettingsController) UpdateAppURL(c *gin.Context) {
	var payload appURLPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid_payload", "יש למלא כתובת אתר")
		return
	}

	if err := ctrl.SettingsSvc.UpdateAppURL(payload.AppURL); err != nil {
		switch err.Error() {
		case "missing_app_url", "invalid_app_url":
			utils.JSONError(c, http.StatusBadRequest, err.Error(), "כתובת האתר אינה תקינה, יש לכלול http או https")
		default:
			log.Printf("settings update failed: %v", err)
			utils.JSONError(c, http.StatusInternalServerError, "internal_error", "אירעה שגיאה, נסו שוב מאוחר יותר")
		}
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"appUrl": payload.AppURL})
}
