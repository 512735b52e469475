package controllers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"rental-backend/services"
	"rental-backend/utils"

	"github.com/gin-gonic/gin"
)

type CalendarController struct {
	CalendarSvc *services.CalendarService
}

func NewCalendarController(svc *services.CalendarService) *CalendarController {
	return &CalendarController{CalendarSvc: svc}
}

// GET /api/calendar?year=2025&month=6
// Defaults to the current month when parameters are absent.
func (ctrl *CalendarController) GetMonth(c *gin.Context) {
	now := time.Now()
	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(now.Year())))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid_year", "שנה אינה תקינה")
		return
	}
	month, err := strconv.Atoi(c.DefaultQuery("month", strconv.Itoa(int(now.Month()))))
	if err != nil || month < 1 || month > 12 {
		utils.JSONError(c, http.StatusBadRequest, "invalid_month", "חודש אינו תקין")
		return
	}

	grid, err := ctrl.CalendarSvc.GetMonth(year, month)
	if err != nil {
		log.Printf("calendar request failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "internal_error", "אירעה שגיאה, נסו שוב מאוחר יותר")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, grid)
}
