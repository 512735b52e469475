package controllers

import (
	"log"
	"net/http"
	"time"

	"rental-backend/models"
	"rental-backend/services"
	"rental-backend/utils"

	"github.com/gin-gonic/gin"
)

type BlockedDateController struct {
	BlockedSvc *services.BlockedDateService
}

func NewBlockedDateController(svc *services.BlockedDateService) *BlockedDateController {
	return &BlockedDateController{BlockedSvc: svc}
}

// blockedDatePayload accepts dates as "2006-01-02". AllUnits fans the range
// out to every unit instead of targeting one.
type blockedDatePayload struct {
	UnitID    uint   `json:"unitId"`
	AllUnits  bool   `json:"allUnits"`
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
	Reason    string `json:"reason"`
}

func (p *blockedDatePayload) toModel(c *gin.Context) (*models.BlockedDate, bool) {
	start, err := time.Parse("2006-01-02", p.StartDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid_date", "תאריך התחלה אינו תקין")
		return nil, false
	}
	end, err := time.Parse("2006-01-02", p.EndDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid_date", "תאריך סיום אינו תקין")
		return nil, false
	}
	return &models.BlockedDate{
		UnitID:    p.UnitID,
		StartDate: start,
		EndDate:   end,
		Reason:    p.Reason,
	}, true
}

func respondBlockedError(c *gin.Context, err error) {
	switch err.Error() {
	case "blocked_date_not_found":
		utils.JSONError(c, http.StatusNotFound, "blocked_date_not_found", "החסימה לא נמצאה")
	case "invalid_range":
		utils.JSONError(c, http.StatusBadRequest, "invalid_range", "תאריך הסיום חייב להיות אחרי תאריך ההתחלה")
	case "missing_unit":
		utils.JSONError(c, http.StatusBadRequest, "missing_unit", "יש לבחור יחידת אירוח")
	case "no_units":
		utils.JSONError(c, http.StatusConflict, "no_units", "לא הוגדרו יחידות אירוח")
	default:
		log.Printf("blocked date request failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "internal_error", "אירעה שגיאה, נסו שוב מאוחר יותר")
	}
}

// GET /api/blocked-dates
func (ctrl *BlockedDateController) GetAll(c *gin.Context) {
	list, err := ctrl.BlockedSvc.GetAllBlockedDates()
	if err != nil {
		respondBlockedError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

// POST /api/blocked-dates
func (ctrl *BlockedDateController) Create(c *gin.Context) {
	var payload blockedDatePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid_payload", "נתוני החסימה אינם תקינים")
		return
	}

	blocked, ok := payload.toModel(c)
	if !ok {
		return
	}

	if payload.AllUnits {
		created, err := ctrl.BlockedSvc.BlockAllUnits(*blocked)
		if err != nil {
			respondBlockedError(c, err)
			return
		}
		utils.JSONSuccess(c, http.StatusCreated, created)
		return
	}

	if err := ctrl.BlockedSvc.CreateBlockedDate(blocked); err != nil {
		respondBlockedError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, blocked)
}

// PUT /api/blocked-dates/:id
func (ctrl *BlockedDateController) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var payload blockedDatePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid_payload", "נתוני החסימה אינם תקינים")
		return
	}
	blocked, pOK := payload.toModel(c)
	if !pOK {
		return
	}

	updated, err := ctrl.BlockedSvc.UpdateBlockedDate(id, blocked)
	if err != nil {
		respondBlockedError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, updated)
}

// DELETE /api/blocked-dates/:id
func (ctrl *BlockedDateController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := ctrl.BlockedSvc.DeleteBlockedDate(id); err != nil {
		respondBlockedError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
