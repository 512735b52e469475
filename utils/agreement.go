package utils

import (
	"fmt"
	"strings"
	"time"

	"rental-backend/models"
)

// Business identity shown on every agreement document and email.
const (
	BusinessName  = "אחוזת שטרן"
	BusinessEmail = "info@stern-mansion.co.il"
	BusinessPhone = "052-1234567"
)

var hebrewMonths = [...]string{
	"ינואר", "פברואר", "מרץ", "אפריל", "מאי", "יוני",
	"יולי", "אוגוסט", "ספטמבר", "אוקטובר", "נובמבר", "דצמבר",
}

// FormatHebrewDate renders a date the way the he-IL long format does,
// e.g. "10 ביוני 2025".
func FormatHebrewDate(t time.Time) string {
	return fmt.Sprintf("%d ב%s %d", t.Day(), hebrewMonths[t.Month()-1], t.Year())
}

// FormatHebrewDateShort renders the he-IL numeric form, e.g. "10.6.2025".
func FormatHebrewDateShort(t time.Time) string {
	return fmt.Sprintf("%d.%d.%d", t.Day(), int(t.Month()), t.Year())
}

// FormatPrice groups thousands and appends the shekel sign: "12,500 ₪".
func FormatPrice(price float64) string {
	n := int64(price + 0.5)
	s := fmt.Sprintf("%d", n)
	if len(s) > 3 {
		var parts []string
		for len(s) > 3 {
			parts = append([]string{s[len(s)-3:]}, parts...)
			s = s[:len(s)-3]
		}
		parts = append([]string{s}, parts...)
		s = strings.Join(parts, ",")
	}
	return s + " ₪"
}

// AgreementContent is the fixed-order content of the agreement document,
// built before any rasterization so completeness can be checked on the
// structure itself. Section order never changes: title block, greeting,
// booking detail grid, payment terms, house rules, cancellation policy,
// signature declaration, footer.
type AgreementContent struct {
	Title    string
	Subtitle string

	Greeting string
	Intro    string

	DetailsHeading string
	Details        []string

	PaymentHeading string
	PaymentTotal   string
	PaymentNote    string

	RulesHeading string
	Rules        []string

	CancellationHeading string
	CancellationRules   []string

	DeclarationHeading string
	Declaration        string
	SignerName         string
	SignedDateLine     string
	SignatureCaption   string
	SignatureImage     []byte

	FooterLines []string
}

// BuildAgreementContent assembles the document content for a booking.
// SignatureImage is left nil when the booking carries no signature (the
// renderers draw a placeholder instead).
func BuildAgreementContent(booking *models.Booking, unitName string) AgreementContent {
	signedAt := time.Now()
	if booking.SignedDate != nil {
		signedAt = *booking.SignedDate
	}

	content := AgreementContent{
		Title:    "אישור הזמנה והסכם אירוח",
		Subtitle: BusinessName,

		Greeting: fmt.Sprintf("שלום %s,", booking.Customer.FullName),
		Intro:    "שמחנו לקבל את הזמנתכם לאירוח באחוזת שטרן. להלן פרטי ההזמנה והתנאים:",

		DetailsHeading: "פרטי ההזמנה:",
		Details: []string{
			fmt.Sprintf("מספר הזמנה: %d", booking.ID),
			fmt.Sprintf("שם האורח: %s", booking.Customer.FullName),
			fmt.Sprintf("יחידת האירוח: %s", unitName),
			fmt.Sprintf("תאריך כניסה: %s (החל מ-15:00)", FormatHebrewDate(booking.StartDate)),
			fmt.Sprintf("תאריך יציאה: %s (עד 11:00)", FormatHebrewDate(booking.EndDate)),
			fmt.Sprintf("מספר אורחים: %d מבוגרים, %d ילדים", booking.Adults, booking.Children),
		},

		PaymentHeading: "תנאי התשלום:",
		PaymentTotal:   fmt.Sprintf("סה\"כ עלות האירוח: %s", FormatPrice(booking.Price)),
		PaymentNote:    "יתרת התשלום תתבצע עם ההגעה למתחם באמצעי התשלום: אשראי / מזומן / העברה בנקאית.",

		RulesHeading: "כללי אירוח והתנהלות במתחם:",
		Rules: []string{
			"הכניסה החל מהשעה 15:00 והיציאה עד השעה 11:00.",
			"העישון בתוך הסוויטות אסור בהחלט.",
			"השימוש במתקני הבריכה והג'קוזי הינו באחריות האורחים בלבד.",
			"אין להשמיע מוזיקה רועשת או להקים רעש בשעות המנוחה.",
			"לא תתאפשר כניסת אורחים נוספים למתחם מעבר למצוין בהזמנה.",
		},

		CancellationHeading: "מדיניות ביטולים:",
		CancellationRules: []string{
			"הודעת ביטול עד 14 ימים לפני מועד האירוח: ללא דמי ביטול.",
			"הודעת ביטול בין 14 ל-7 ימים לפני מועד האירוח: חיוב של 50% מעלות ההזמנה.",
			"הודעת ביטול בפחות מ-7 ימים לפני מועד האירוח או אי-הגעה: חיוב מלא.",
		},

		DeclarationHeading: "הצהרת האורח וחתימה:",
		Declaration:        "אני מאשר/ת שקראתי והבנתי את כל תנאי ההסכם.",
		SignerName:         fmt.Sprintf("שם מלא: %s", booking.Customer.FullName),
		SignedDateLine:     fmt.Sprintf("תאריך חתימה: %s", FormatHebrewDate(signedAt)),
		SignatureCaption:   "חתימת האורח",

		FooterLines: []string{
			"מסמך זה נוצר אוטומטית על ידי מערכת ניהול אחוזת שטרן",
			fmt.Sprintf("לפניות: %s | %s", BusinessEmail, BusinessPhone),
		},
	}

	if booking.Signature != "" {
		if img, err := DecodeDataURL(booking.Signature); err == nil {
			content.SignatureImage = img
		}
	}

	return content
}
