package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"rental-backend/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AgreementRenderer produces the agreement PDF for a booking.
type AgreementRenderer interface {
	Render(booking *models.Booking, unitName string) ([]byte, error)
}

// ConfirmationMailer delivers the confirmation email. Delivery is best
// effort and reports success as a bool, never an error.
type ConfirmationMailer interface {
	SendConfirmation(booking *models.Booking, unitName string, agreementPDF []byte) bool
}

// AgreementStore persists rendered agreements and returns a fetch URL.
type AgreementStore interface {
	Save(bookingID, customerName string, pdf []byte) (string, error)
}

// ConfirmationOutcome summarizes the best-effort steps that run after a
// booking is signed. It is persisted on the booking as JSON.
type ConfirmationOutcome struct {
	PDFGenerated bool      `json:"pdfGenerated"`
	PDFSaved     bool      `json:"pdfSaved"`
	PDFURL       string    `json:"pdfUrl,omitempty"`
	EmailSent    bool      `json:"emailSent"`
	CompletedAt  time.Time `json:"completedAt"`
}

// SignRequest carries the guest's input from the signature page.
type SignRequest struct {
	AgreementAccepted bool   `json:"agreementAccepted"`
	SignerName        string `json:"signerName"`
	Signature         string `json:"signature"`
}

// BookingService wraps *gorm.DB for the booking lifecycle. Renderer, Mailer
// and Store run only after the signature is already persisted, so their
// failures never roll a confirmation back.
type BookingService struct {
	DB       *gorm.DB
	Renderer AgreementRenderer
	Mailer   ConfirmationMailer
	Store    AgreementStore
}

func NewBookingService(db *gorm.DB, renderer AgreementRenderer, mailer ConfirmationMailer, store AgreementStore) *BookingService {
	return &BookingService{DB: db, Renderer: renderer, Mailer: mailer, Store: store}
}

// CreateBooking stores a new booking. Whatever the caller sent, a new
// booking always starts pending and unsigned.
func (s *BookingService) CreateBooking(booking *models.Booking) error {
	booking.ID = 0
	booking.Status = models.StatusPending
	booking.Signature = ""
	booking.SignedDate = nil
	booking.Confirmation = nil

	if err := s.DB.Create(booking).Error; err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

func (s *BookingService) GetAllBookings() ([]models.Booking, error) {
	var list []models.Booking
	if err := s.DB.Order("start_date ASC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	return list, nil
}

func (s *BookingService) GetBookingByID(id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.DB.First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("booking_not_found")
		}
		return nil, fmt.Errorf("failed to retrieve booking: %w", err)
	}
	return &booking, nil
}

// UpdateBooking replaces the stored booking with the given one. The update
// is a full replace: fields absent from the payload end up zeroed, matching
// what the caller sees. Saving identical data twice is a no-op.
func (s *BookingService) UpdateBooking(id uint, updated *models.Booking) (*models.Booking, error) {
	existing, err := s.GetBookingByID(id)
	if err != nil {
		return nil, err
	}

	updated.ID = existing.ID
	if err := s.DB.Save(updated).Error; err != nil {
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}
	return updated, nil
}

func (s *BookingService) DeleteBooking(id uint) error {
	result := s.DB.Delete(&models.Booking{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete booking: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("booking_not_found")
	}
	return nil
}

// CancelBooking moves a pending booking to cancelled. Confirmed bookings
// cannot be cancelled through this path.
func (s *BookingService) CancelBooking(id uint) (*models.Booking, error) {
	booking, err := s.GetBookingByID(id)
	if err != nil {
		return nil, err
	}
	if booking.Status != models.StatusPending {
		return nil, errors.New("booking_not_pending")
	}

	if err := s.DB.Model(booking).Update("status", models.StatusCancelled).Error; err != nil {
		return nil, fmt.Errorf("failed to cancel booking: %w", err)
	}
	booking.Status = models.StatusCancelled
	return booking, nil
}

// SignBooking confirms a pending booking with the guest's signature, then
// runs the confirmation chain (render, store, email) best-effort. The
// returned outcome reports which of those steps succeeded.
func (s *BookingService) SignBooking(id uint, req SignRequest) (*models.Booking, *ConfirmationOutcome, error) {
	if !req.AgreementAccepted {
		return nil, nil, errors.New("agreement_not_accepted")
	}
	if strings.TrimSpace(req.SignerName) == "" {
		return nil, nil, errors.New("missing_name")
	}
	if strings.TrimSpace(req.Signature) == "" {
		return nil, nil, errors.New("missing_signature")
	}

	now := time.Now()
	var booking models.Booking

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&booking, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("booking_not_found")
			}
			return err
		}

		switch booking.Status {
		case models.StatusCancelled:
			return errors.New("booking_cancelled")
		case models.StatusConfirmed:
			return errors.New("booking_already_signed")
		}

		return tx.Model(&booking).Updates(map[string]interface{}{
			"status":      models.StatusConfirmed,
			"signature":   req.Signature,
			"signed_date": now,
		}).Error
	})
	if err != nil {
		return nil, nil, err
	}

	booking.Status = models.StatusConfirmed
	booking.Signature = req.Signature
	booking.SignedDate = &now

	outcome := s.runConfirmationChain(&booking)

	if raw, marshalErr := json.Marshal(outcome); marshalErr == nil {
		if err := s.DB.Model(&booking).Update("confirmation", datatypes.JSON(raw)).Error; err != nil {
			log.Printf("failed to persist confirmation outcome for booking %d: %v", booking.ID, err)
		} else {
			booking.Confirmation = datatypes.JSON(raw)
		}
	}

	return &booking, outcome, nil
}

// RenderAgreement produces the agreement PDF on demand, for any booking
// regardless of status. Unsigned bookings render with an empty signature box.
func (s *BookingService) RenderAgreement(id uint) ([]byte, *models.Booking, error) {
	booking, err := s.GetBookingByID(id)
	if err != nil {
		return nil, nil, err
	}

	pdf, err := s.Renderer.Render(booking, s.unitNameFor(booking.UnitID))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to render agreement: %w", err)
	}
	return pdf, booking, nil
}

// runConfirmationChain renders, stores and emails the signed agreement.
// Each step is attempted even when an earlier one failed, except that
// storage and email need the rendered bytes.
func (s *BookingService) runConfirmationChain(booking *models.Booking) *ConfirmationOutcome {
	outcome := &ConfirmationOutcome{CompletedAt: time.Now()}
	unitName := s.unitNameFor(booking.UnitID)

	pdf, err := s.Renderer.Render(booking, unitName)
	if err != nil {
		log.Printf("agreement render failed for booking %d: %v", booking.ID, err)
		return outcome
	}
	outcome.PDFGenerated = true

	url, err := s.Store.Save(fmt.Sprintf("%d", booking.ID), booking.Customer.FullName, pdf)
	if err != nil {
		log.Printf("agreement save failed for booking %d: %v", booking.ID, err)
	} else {
		outcome.PDFSaved = true
		outcome.PDFURL = url
	}

	outcome.EmailSent = s.Mailer.SendConfirmation(booking, unitName, pdf)
	return outcome
}

func (s *BookingService) unitNameFor(unitID uint) string {
	var unit models.Unit
	if err := s.DB.First(&unit, unitID).Error; err != nil {
		return fmt.Sprintf("יחידה %d", unitID)
	}
	return unit.Name
}
