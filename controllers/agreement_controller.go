package controllers

import (
	"fmt"
	"log"
	"net/http"
	"net/url"

	"rental-backend/utils"

	"github.com/gin-gonic/gin"
)

// AgreementController is the storage boundary for rendered agreements:
// clients can push an already-rendered PDF in and fetch stored copies back.
type AgreementController struct {
	Store *utils.FileAgreementStore
}

func NewAgreementController(store *utils.FileAgreementStore) *AgreementController {
	return &AgreementController{Store: store}
}

type saveAgreementPayload struct {
	BookingID    string `json:"bookingId" binding:"required"`
	CustomerName string `json:"customerName" binding:"required"`
	PDFData      string `json:"pdfData" binding:"required"`
}

// POST /api/agreements
// PDFData is a base64 payload, with or without a data URI prefix.
func (ctrl *AgreementController) Save(c *gin.Context) {
	var payload saveAgreementPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid_payload", "נתוני המסמך אינם תקינים")
		return
	}

	pdf, err := utils.DecodeDataURL(payload.PDFData)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid_pdf_data", "קובץ ההסכם אינו תקין")
		return
	}

	downloadURL, err := ctrl.Store.Save(payload.BookingID, payload.CustomerName, pdf)
	if err != nil {
		log.Printf("agreement save failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "internal_error", "שמירת ההסכם נכשלה")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, gin.H{"url": downloadURL})
}

// GET /api/agreements/download?bookingId=...&customerName=...
func (ctrl *AgreementController) Download(c *gin.Context) {
	bookingID := c.Query("bookingId")
	customerName := c.Query("customerName")
	if bookingID == "" || customerName == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing_params", "חסרים פרטי הזמנה להורדת ההסכם")
		return
	}

	pdf, err := ctrl.Store.Load(bookingID, customerName)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "agreement_not_found", "ההסכם המבוקש לא נמצא")
		return
	}

	filename := utils.AgreementFileName(customerName, bookingID)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename*=utf-8''%s", url.PathEscape(filename)))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
