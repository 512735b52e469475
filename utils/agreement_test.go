package utils

import (
	"strings"
	"testing"
	"time"

	"rental-backend/models"
)

func sampleBooking() *models.Booking {
	signed := time.Date(2025, time.June, 8, 14, 30, 0, 0, time.UTC)
	return &models.Booking{
		ID: 42,
		Customer: models.Customer{
			FullName: "ישראל ישראלי",
			Email:    "israel@example.com",
		},
		StartDate:  time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, time.June, 12, 0, 0, 0, 0, time.UTC),
		Adults:     2,
		Children:   3,
		Price:      12500,
		SignedDate: &signed,
	}
}

func TestBuildAgreementContentDetails(t *testing.T) {
	content := BuildAgreementContent(sampleBooking(), "סוויטת הגפן")

	if len(content.Details) != 6 {
		t.Fatalf("expected 6 detail lines, got %d", len(content.Details))
	}

	wantFragments := []string{
		"42",            // order number
		"ישראל ישראלי",  // guest name
		"סוויטת הגפן",   // unit name
		"10 ביוני 2025", // check-in
		"11:00",         // check-out time bound
		"3 ילדים",       // guest counts
	}
	joined := strings.Join(content.Details, "\n")
	for _, fragment := range wantFragments {
		if !strings.Contains(joined, fragment) {
			t.Errorf("details missing %q:\n%s", fragment, joined)
		}
	}

	if !strings.Contains(content.PaymentTotal, "12,500 ₪") {
		t.Errorf("payment total should carry the formatted price, got %q", content.PaymentTotal)
	}
	if !strings.Contains(content.SignedDateLine, "8 ביוני 2025") {
		t.Errorf("signed date line should use the recorded date, got %q", content.SignedDateLine)
	}
	if len(content.Rules) != 5 || len(content.CancellationRules) != 3 {
		t.Errorf("rules blocks incomplete: %d rules, %d cancellation rules",
			len(content.Rules), len(content.CancellationRules))
	}
}

func TestBuildAgreementContentSignature(t *testing.T) {
	booking := sampleBooking()
	content := BuildAgreementContent(booking, "סוויטת הגפן")
	if content.SignatureImage != nil {
		t.Error("no signature on booking, content must not carry image bytes")
	}

	booking.Signature = "data:image/png;base64,aGVsbG8="
	content = BuildAgreementContent(booking, "סוויטת הגפן")
	if string(content.SignatureImage) != "hello" {
		t.Errorf("signature data url should be decoded, got %q", content.SignatureImage)
	}
}

func TestFormatHebrewDate(t *testing.T) {
	d := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	if got := FormatHebrewDate(d); got != "10 ביוני 2025" {
		t.Errorf("long format: got %q", got)
	}
	if got := FormatHebrewDateShort(d); got != "10.6.2025" {
		t.Errorf("short format: got %q", got)
	}
}

func TestFormatPrice(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0 ₪"},
		{950, "950 ₪"},
		{12500, "12,500 ₪"},
		{1234567, "1,234,567 ₪"},
		{2499.6, "2,500 ₪"},
	}
	for _, tc := range cases {
		if got := FormatPrice(tc.in); got != tc.want {
			t.Errorf("FormatPrice(%v): got %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestPagesNeeded(t *testing.T) {
	cases := []struct {
		imageH float64
		want   int
	}{
		{100, 1},
		{297, 1},
		{297.5, 2},
		{594, 2},
		{900, 4},
		{0, 1},
	}
	for _, tc := range cases {
		if got := PagesNeeded(tc.imageH, 297); got != tc.want {
			t.Errorf("PagesNeeded(%v): got %d, want %d", tc.imageH, got, tc.want)
		}
	}
}
