package utils

import (
	"encoding/base64"
	"errors"
	"net/smtp"
	"strings"
	"testing"
	"time"

	"rental-backend/models"
)

var errSend = errors.New("smtp: connection refused")

type capturedMail struct {
	addr string
	from string
	to   []string
	msg  string
}

func testMailer(capture *capturedMail, sendErr error) *ConfirmMailer {
	return &ConfirmMailer{
		host: "smtp.example.com",
		port: "587",
		user: "noreply@example.com",
		pass: "secret",
		send: func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
			if capture != nil {
				capture.addr = addr
				capture.from = from
				capture.to = to
				capture.msg = string(msg)
			}
			return sendErr
		},
	}
}

// decodeFirstPart extracts and decodes the base64 text body of the first
// MIME part.
func decodeFirstPart(t *testing.T, msg string) string {
	t.Helper()
	parts := strings.Split(msg, "------=_CONFIRM_EMAIL_BOUNDARY")
	if len(parts) < 2 {
		t.Fatalf("message has no MIME parts:\n%s", msg)
	}
	sections := strings.SplitN(parts[1], "\r\n\r\n", 2)
	if len(sections) != 2 {
		t.Fatalf("first part has no body:\n%s", parts[1])
	}
	payload := strings.ReplaceAll(strings.TrimSpace(sections[1]), "\r\n", "")
	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		t.Fatalf("body is not valid base64: %v", err)
	}
	return string(decoded)
}

func confirmedBooking() *models.Booking {
	signed := time.Date(2025, time.June, 8, 10, 0, 0, 0, time.UTC)
	return &models.Booking{
		ID: 7,
		Customer: models.Customer{
			FullName: "ישראל ישראלי",
			Email:    "guest@example.com",
		},
		StartDate:  time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, time.June, 12, 0, 0, 0, 0, time.UTC),
		Price:      2400,
		Status:     models.StatusConfirmed,
		SignedDate: &signed,
	}
}

func TestSendConfirmationAttachesSmallPDF(t *testing.T) {
	var captured capturedMail
	mailer := testMailer(&captured, nil)

	pdf := []byte("%PDF-1.4 small")
	if ok := mailer.SendConfirmation(confirmedBooking(), "סוויטת הגפן", pdf); !ok {
		t.Fatal("expected delivered=true")
	}

	if captured.addr != "smtp.example.com:587" {
		t.Errorf("addr: got %q", captured.addr)
	}
	if len(captured.to) != 2 || captured.to[0] != "guest@example.com" || captured.to[1] != BusinessEmail {
		t.Errorf("recipients should be guest plus business copy, got %v", captured.to)
	}
	if strings.Contains(captured.msg, "Bcc:") {
		t.Error("the blind copy must stay out of the message headers")
	}
	body := decodeFirstPart(t, captured.msg)
	if !strings.Contains(body, "10.6.2025") || !strings.Contains(body, "12.6.2025") {
		t.Errorf("body should carry short-form dates, got:\n%s", body)
	}
	if !strings.Contains(captured.msg, "Content-Type: application/pdf") {
		t.Error("small pdf should be attached")
	}
}

func TestSendConfirmationDropsOversizedAttachment(t *testing.T) {
	var captured capturedMail
	mailer := testMailer(&captured, nil)

	big := make([]byte, (maxAttachmentKB+1)*1024)
	if ok := mailer.SendConfirmation(confirmedBooking(), "סוויטת הגפן", big); !ok {
		t.Fatal("expected delivered=true even without attachment")
	}

	if strings.Contains(captured.msg, "Content-Type: application/pdf") {
		t.Error("oversized pdf must not be attached")
	}
}

func TestSendConfirmationReportsFailure(t *testing.T) {
	mailer := testMailer(nil, errSend)
	if ok := mailer.SendConfirmation(confirmedBooking(), "סוויטת הגפן", []byte("%PDF-")); ok {
		t.Fatal("smtp failure must report delivered=false")
	}
}

func TestSendConfirmationUnconfiguredIsMock(t *testing.T) {
	mailer := &ConfirmMailer{send: func(string, smtp.Auth, string, []string, []byte) error {
		t.Fatal("unconfigured mailer must never hit smtp")
		return nil
	}}
	if ok := mailer.SendConfirmation(confirmedBooking(), "סוויטת הגפן", []byte("%PDF-")); ok {
		t.Fatal("unconfigured mailer must report delivered=false")
	}
}

func TestSendConfirmationSkipsWithoutGuestEmail(t *testing.T) {
	mailer := testMailer(nil, nil)
	booking := confirmedBooking()
	booking.Customer.Email = ""
	if ok := mailer.SendConfirmation(booking, "סוויטת הגפן", []byte("%PDF-")); ok {
		t.Fatal("no guest email must report delivered=false")
	}
}
