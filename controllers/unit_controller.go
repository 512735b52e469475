package controllers

import (
	"log"
	"net/http"

	"rental-backend/services"
	"rental-backend/utils"

	"github.com/gin-gonic/gin"
)

type UnitController struct {
	UnitSvc *services.UnitService
}

func NewUnitController(svc *services.UnitService) *UnitController {
	return &UnitController{UnitSvc: svc}
}

type unitPayload struct {
	Name string `json:"name" binding:"required"`
}

func respondUnitError(c *gin.Context, err error) {
	switch err.Error() {
	case "unit_not_found":
		utils.JSONError(c, http.StatusNotFound, "unit_not_found", "יחידת האירוח לא נמצאה")
	case "missing_name":
		utils.JSONError(c, http.StatusBadRequest, "missing_name", "יש למלא שם ליחידה")
	default:
		log.Printf("unit request failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "internal_error", "אירעה שגיאה, נסו שוב מאוחר יותר")
	}
}

// GET /api/units
func (ctrl *UnitController) GetAll(c *gin.Context) {
	units, err := ctrl.UnitSvc.GetAllUnits()
	if err != nil {
		respondUnitError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, units)
}

// POST /api/units
func (ctrl *UnitController) Create(c *gin.Context) {
	var payload unitPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid_payload", "יש למלא שם ליחידה")
		return
	}
	unit, err := ctrl.UnitSvc.CreateUnit(payload.Name)
	if err != nil {
		respondUnitError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, unit)
}

// PUT /api/units/:id
func (ctrl *UnitController) Rename(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var payload unitPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid_payload", "יש למלא שם ליחידה")
		return
	}
	unit, err := ctrl.UnitSvc.RenameUnit(id, payload.Name)
	if err != nil {
		respondUnitError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, unit)
}

// DELETE /api/units/:id
func (ctrl *UnitController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := ctrl.UnitSvc.DeleteUnit(id); err != nil {
		respondUnitError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
