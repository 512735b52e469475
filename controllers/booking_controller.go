package controllers

import (
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"rental-backend/models"
	"rental-backend/services"
	"rental-backend/utils"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"
)

type BookingController struct {
	BookingSvc  *services.BookingService
	SettingsSvc *services.SettingsService
}

func NewBookingController(bookingSvc *services.BookingService, settingsSvc *services.SettingsService) *BookingController {
	return &BookingController{BookingSvc: bookingSvc, SettingsSvc: settingsSvc}
}

// respondBookingError maps service sentinel errors onto HTTP statuses with
// Hebrew user-facing messages.
func respondBookingError(c *gin.Context, err error) {
	switch err.Error() {
	case "booking_not_found":
		utils.JSONError(c, http.StatusNotFound, "booking_not_found", "ההזמנה לא נמצאה")
	case "booking_cancelled":
		utils.JSONError(c, http.StatusConflict, "booking_cancelled", "ההזמנה בוטלה ולא ניתן לחתום עליה")
	case "booking_already_signed":
		utils.JSONError(c, http.StatusConflict, "booking_already_signed", "ההזמנה כבר נחתמה ואושרה")
	case "booking_not_pending":
		utils.JSONError(c, http.StatusConflict, "booking_not_pending", "ניתן לבטל רק הזמנה שבהמתנה")
	case "agreement_not_accepted":
		utils.JSONError(c, http.StatusBadRequest, "agreement_not_accepted", "יש לאשר את תנאי ההסכם לפני החתימה")
	case "missing_name":
		utils.JSONError(c, http.StatusBadRequest, "missing_name", "יש למלא שם מלא")
	case "missing_signature":
		utils.JSONError(c, http.StatusBadRequest, "missing_signature", "יש לחתום על ההסכם")
	default:
		log.Printf("booking request failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "internal_error", "אירעה שגיאה, נסו שוב מאוחר יותר")
	}
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid_id", "מזהה הזמנה לא תקין")
		return 0, false
	}
	return uint(id), true
}

// GET /api/bookings
func (ctrl *BookingController) GetAll(c *gin.Context) {
	bookings, err := ctrl.BookingSvc.GetAllBookings()
	if err != nil {
		respondBookingError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

// GET /api/bookings/:id
func (ctrl *BookingController) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	booking, err := ctrl.BookingSvc.GetBookingByID(id)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// POST /api/bookings
func (ctrl *BookingController) Create(c *gin.Context) {
	var booking models.Booking
	if err := c.ShouldBindJSON(&booking); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid_payload", "נתוני ההזמנה אינם תקינים")
		return
	}
	if !booking.EndDate.After(booking.StartDate) {
		utils.JSONError(c, http.StatusBadRequest, "invalid_range", "תאריך היציאה חייב להיות אחרי תאריך הכניסה")
		return
	}

	if err := ctrl.BookingSvc.CreateBooking(&booking); err != nil {
		respondBookingError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, booking)
}

// PUT /api/bookings/:id
func (ctrl *BookingController) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var booking models.Booking
	if err := c.ShouldBindJSON(&booking); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid_payload", "נתוני ההזמנה אינם תקינים")
		return
	}

	updated, err := ctrl.BookingSvc.UpdateBooking(id, &booking)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, updated)
}

// DELETE /api/bookings/:id
func (ctrl *BookingController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := ctrl.BookingSvc.DeleteBooking(id); err != nil {
		respondBookingError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}

// POST /api/bookings/:id/cancel
func (ctrl *BookingController) Cancel(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	booking, err := ctrl.BookingSvc.CancelBooking(id)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// GET /api/bookings/:id/signature-link
// Returns the shareable signing URL for the booking plus a QR code of it,
// as a PNG data URL.
func (ctrl *BookingController) SignatureLink(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	booking, err := ctrl.BookingSvc.GetBookingByID(id)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	appURL, err := ctrl.SettingsSvc.GetAppURL()
	if err != nil {
		respondBookingError(c, err)
		return
	}
	if appURL == "" {
		appURL = utils.EnvOrDefault("APP_URL", "http://localhost:5173")
	}

	link := fmt.Sprintf("%s/#/sign/%d", appURL, booking.ID)

	png, err := qrcode.Encode(link, qrcode.Medium, 256)
	if err != nil {
		log.Printf("qr encode failed for booking %d: %v", booking.ID, err)
		utils.JSONSuccess(c, http.StatusOK, gin.H{"link": link})
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"link": link,
		"qr":   utils.EncodePNGDataURL(png),
	})
}

// GET /api/bookings/:id/agreement
// Renders the agreement for the booking's current state and streams it, so
// staff can preview or reprint without going through the confirm chain.
func (ctrl *BookingController) Agreement(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	pdf, booking, err := ctrl.BookingSvc.RenderAgreement(id)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	filename := utils.AgreementFileName(booking.Customer.FullName, fmt.Sprintf("%d", booking.ID))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename*=utf-8''%s", url.PathEscape(filename)))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// publicBookingView is the signing page's projection of a booking: internal
// notes and the confirmation summary never leave the office.
type publicBookingView struct {
	ID         uint             `json:"id"`
	UnitID     uint             `json:"unitId"`
	Customer   models.Customer  `json:"customer"`
	StartDate  string           `json:"startDate"`
	EndDate    string           `json:"endDate"`
	Adults     int              `json:"adults"`
	Children   int              `json:"children"`
	Price      float64          `json:"price"`
	Status     string           `json:"status"`
	SignedDate *string          `json:"signedDate,omitempty"`
}

func toPublicView(booking *models.Booking) publicBookingView {
	view := publicBookingView{
		ID:        booking.ID,
		UnitID:    booking.UnitID,
		Customer:  booking.Customer,
		StartDate: booking.StartDate.Format("2006-01-02"),
		EndDate:   booking.EndDate.Format("2006-01-02"),
		Adults:    booking.Adults,
		Children:  booking.Children,
		Price:     booking.Price,
		Status:    booking.Status,
	}
	if booking.SignedDate != nil {
		s := booking.SignedDate.Format("2006-01-02")
		view.SignedDate = &s
	}
	return view
}

// GET /api/public/bookings/:id/sign
func (ctrl *BookingController) GetForSigning(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	booking, err := ctrl.BookingSvc.GetBookingByID(id)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, toPublicView(booking))
}

// POST /api/public/bookings/:id/sign
func (ctrl *BookingController) Sign(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req services.SignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid_payload", "נתוני החתימה אינם תקינים")
		return
	}

	booking, outcome, err := ctrl.BookingSvc.SignBooking(id, req)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"booking":      toPublicView(booking),
		"confirmation": outcome,
	})
}
