package utils

import (
	"encoding/base64"
	"fmt"
	"log"
	"mime"
	"net/smtp"
	"net/url"
	"os"
	"strings"

	"rental-backend/models"
)

// Attachments above this size are dropped and replaced with a note asking
// the guest to contact the business for the signed copy.
const maxAttachmentKB = 45

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// ConfirmMailer sends the signed agreement to the guest, with a blind copy
// to the business mailbox. Delivery is best effort: every failure path logs
// and reports delivered=false, nothing escalates to the caller.
type ConfirmMailer struct {
	host string
	port string
	user string
	pass string

	send sendFunc
}

// NewConfirmMailer reads SMTP settings from the environment. When any of
// them is missing the mailer stays in mock mode and only logs.
func NewConfirmMailer() *ConfirmMailer {
	return &ConfirmMailer{
		host: os.Getenv("EMAIL_HOST"),
		port: os.Getenv("EMAIL_PORT"),
		user: os.Getenv("EMAIL_USER"),
		pass: os.Getenv("EMAIL_PASS"),
		send: smtp.SendMail,
	}
}

func (m *ConfirmMailer) IsConfigured() bool {
	return m.host != "" && m.port != "" && m.user != "" && m.pass != ""
}

// SendConfirmation emails the confirmation to the booking's guest and
// returns whether delivery succeeded.
func (m *ConfirmMailer) SendConfirmation(booking *models.Booking, unitName string, agreementPDF []byte) bool {
	if booking.Customer.Email == "" {
		log.Printf("booking %d has no guest email, skipping confirmation", booking.ID)
		return false
	}
	if !m.IsConfigured() {
		log.Printf("[MOCK EMAIL] confirmation to:%s booking:%d unit:%s pdf:%dB",
			booking.Customer.Email, booking.ID, unitName, len(agreementPDF))
		return false
	}

	encoded := base64.StdEncoding.EncodeToString(agreementPDF)
	withAttachment := len(encoded)*3/4/1024 <= maxAttachmentKB

	attachmentNote := "במצורף תמצאו את ההסכם החתום."
	if !withAttachment {
		attachmentNote = "עקב גודל המסמך, אנא פנו אלינו לקבלת ההסכם החתום."
		log.Printf("agreement for booking %d exceeds %dKB, sending without attachment", booking.ID, maxAttachmentKB)
	}

	subject := fmt.Sprintf("אישור הזמנה - %s - %s", BusinessName, booking.Customer.FullName)
	body := fmt.Sprintf(
		"שלום %s,\n\n"+
			"הזמנתכם ליחידת האירוח %s אושרה.\n"+
			"תאריך כניסה: %s\n"+
			"תאריך יציאה: %s\n"+
			"סה\"כ לתשלום: %s\n\n"+
			"%s\n\n"+
			"נשמח לראותכם,\n%s\n%s | %s\n",
		booking.Customer.FullName, unitName,
		FormatHebrewDateShort(booking.StartDate), FormatHebrewDateShort(booking.EndDate),
		FormatPrice(booking.Price),
		attachmentNote,
		BusinessName, BusinessEmail, BusinessPhone,
	)

	boundary := "----=_CONFIRM_EMAIL_BOUNDARY"

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("From: %s <%s>\r\n", mime.BEncoding.Encode("utf-8", BusinessName), m.user))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", booking.Customer.Email))
	sb.WriteString(fmt.Sprintf("Subject: %s\r\n", mime.BEncoding.Encode("utf-8", subject)))
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString(fmt.Sprintf("Content-Type: multipart/mixed; boundary=\"%s\"\r\n\r\n", boundary))

	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	sb.WriteString("Content-Transfer-Encoding: base64\r\n\r\n")
	sb.WriteString(wrap76(base64.StdEncoding.EncodeToString([]byte(body))) + "\r\n")

	if withAttachment && len(agreementPDF) > 0 {
		filename := AgreementFileName(booking.Customer.FullName, fmt.Sprintf("%d", booking.ID))
		sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
		sb.WriteString("Content-Type: application/pdf\r\n")
		sb.WriteString(fmt.Sprintf("Content-Disposition: attachment; filename*=utf-8''%s\r\n", url.PathEscape(filename)))
		sb.WriteString("Content-Transfer-Encoding: base64\r\n\r\n")
		sb.WriteString(wrap76(encoded) + "\r\n")
	}

	sb.WriteString(fmt.Sprintf("--%s--\r\n", boundary))

	addr := fmt.Sprintf("%s:%s", m.host, m.port)
	auth := smtp.PlainAuth("", m.user, m.pass, m.host)
	// Business copy rides the envelope only; no Bcc header reaches the guest.
	to := []string{booking.Customer.Email, BusinessEmail}

	if err := m.send(addr, auth, m.user, to, []byte(sb.String())); err != nil {
		log.Printf("failed to send confirmation for booking %d to %s: %v", booking.ID, booking.Customer.Email, err)
		return false
	}

	log.Printf("confirmation email sent for booking %d to %s (attachment=%t)", booking.ID, booking.Customer.Email, withAttachment)
	return true
}

func wrap76(s string) string {
	var sb strings.Builder
	for len(s) > 76 {
		sb.WriteString(s[:76] + "\r\n")
		s = s[76:]
	}
	sb.WriteString(s)
	return sb.String()
}
