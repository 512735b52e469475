package utils

import (
	"fmt"
	"log"
	"strings"

	"github.com/signintech/gopdf"
)

// A4 layout in millimeters.
const (
	pageWidthMM   = 210.0
	pageHeightMM  = 297.0
	pageMarginMM  = 20.0
	contentWidth  = pageWidthMM - 2*pageMarginMM
	agreementFont = "agreement"
)

// DefaultFontPath is where the Hebrew TTF is looked up when
// AGREEMENT_FONT_PATH is unset.
const DefaultFontPath = "fonts/NotoSansHebrew-Regular.ttf"

// agreementWriter tracks a running vertical cursor in document coordinates.
type agreementWriter struct {
	pdf *gopdf.GoPdf
	y   float64
}

func (w *agreementWriter) ensureSpace(h float64) {
	if w.y+h > pageHeightMM-pageMarginMM {
		w.pdf.AddPage()
		w.y = pageMarginMM
	}
}

func (w *agreementWriter) setSize(size float64) error {
	return w.pdf.SetFont(agreementFont, "", size)
}

func (w *agreementWriter) textWidth(s string) float64 {
	width, err := w.pdf.MeasureTextWidth(s)
	if err != nil {
		return 0
	}
	return width
}

// wrap splits logical-order text into lines no wider than maxWidth. Shaping
// happens per line at draw time, so wrapping measures the logical string.
func (w *agreementWriter) wrap(s string, maxWidth float64) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if w.textWidth(candidate) > maxWidth {
			lines = append(lines, current)
			current = word
			continue
		}
		current = candidate
	}
	return append(lines, current)
}

func (w *agreementWriter) drawCentered(s string, lineH float64) {
	w.ensureSpace(lineH)
	shaped := ShapeRTL(s)
	x := (pageWidthMM - w.textWidth(shaped)) / 2
	w.pdf.SetXY(x, w.y)
	_ = w.pdf.Cell(nil, shaped)
	w.y += lineH
}

// drawRight draws one line aligned to the right margin, the natural edge for
// RTL content. indent shifts the line further in (used for bullets).
func (w *agreementWriter) drawRight(s string, lineH, indent float64) {
	w.ensureSpace(lineH)
	shaped := ShapeRTL(s)
	x := pageWidthMM - pageMarginMM - indent - w.textWidth(shaped)
	if x < pageMarginMM {
		x = pageMarginMM
	}
	w.pdf.SetXY(x, w.y)
	_ = w.pdf.Cell(nil, shaped)
	w.y += lineH
}

func (w *agreementWriter) drawWrapped(s string, lineH, maxWidth float64) {
	for _, line := range w.wrap(s, maxWidth) {
		w.drawRight(line, lineH, 0)
	}
}

func (w *agreementWriter) drawBullets(items []string, lineH float64) {
	for _, item := range items {
		lines := w.wrap("• "+item, contentWidth-10)
		for i, line := range lines {
			indent := 0.0
			if i > 0 {
				indent = 4.0
			}
			w.drawRight(line, lineH, indent)
		}
		w.y += 1
	}
}

func (w *agreementWriter) drawRule() {
	w.ensureSpace(4)
	w.pdf.SetStrokeColor(0, 0, 0)
	w.pdf.Line(pageMarginMM, w.y, pageWidthMM-pageMarginMM, w.y)
	w.y += 4
}

// RenderAgreementNative emits the agreement as text and shapes directly in
// document coordinates (the vector strategy). compress selects the
// smaller-output encoding mode.
func RenderAgreementNative(content AgreementContent, fontPath string, compress bool) ([]byte, error) {
	pdf := &gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: gopdf.Rect{W: pageWidthMM, H: pageHeightMM}, Unit: gopdf.UnitMM})
	if compress {
		pdf.SetCompressLevel(9)
	} else {
		pdf.SetCompressLevel(0)
	}
	pdf.AddPage()

	if err := pdf.AddTTFFont(agreementFont, fontPath); err != nil {
		return nil, fmt.Errorf("agreement font unavailable (%s): %w", fontPath, err)
	}

	w := &agreementWriter{pdf: pdf, y: pageMarginMM}

	// Title block
	if err := w.setSize(24); err != nil {
		return nil, err
	}
	w.drawCentered(content.Title, 10)
	_ = w.setSize(18)
	w.drawCentered(content.Subtitle, 8)
	w.y += 10

	// Greeting
	_ = w.setSize(14)
	w.drawRight(content.Greeting, 7, 0)
	w.drawWrapped(content.Intro, 7, contentWidth-10)
	w.y += 6

	// Booking detail grid (boxed)
	boxTop := w.y
	_ = w.setSize(16)
	w.y += 4
	w.drawRight(content.DetailsHeading, 8, 2)
	_ = w.setSize(12)
	for _, detail := range content.Details {
		w.drawRight(detail, 6, 2)
	}
	w.y += 2
	pdf.SetStrokeColor(200, 200, 200)
	pdf.RectFromUpperLeftWithStyle(pageMarginMM, boxTop, contentWidth, w.y-boxTop, "D")
	w.y += 8

	// Payment terms
	_ = w.setSize(14)
	w.drawRight(content.PaymentHeading, 8, 0)
	_ = w.setSize(12)
	w.drawRight(content.PaymentTotal, 6, 0)
	w.drawWrapped(content.PaymentNote, 6, contentWidth-10)
	w.y += 6

	// House rules
	_ = w.setSize(14)
	w.drawRight(content.RulesHeading, 8, 0)
	_ = w.setSize(12)
	w.drawBullets(content.Rules, 6)
	w.y += 4

	// Cancellation policy
	_ = w.setSize(14)
	w.drawRight(content.CancellationHeading, 8, 0)
	_ = w.setSize(12)
	w.drawBullets(content.CancellationRules, 6)
	w.y += 6

	// Signature declaration
	w.drawRule()
	_ = w.setSize(14)
	w.drawRight(content.DeclarationHeading, 8, 0)
	_ = w.setSize(12)
	w.drawRight(content.Declaration, 7, 0)
	w.y += 4

	sigBoxW, sigBoxH := 60.0, 20.0
	w.ensureSpace(sigBoxH + 14)
	nameY := w.y
	w.drawRight(content.SignerName, 7, 0)
	w.drawRight(content.SignedDateLine, 7, 0)

	sigX := pageMarginMM
	pdf.SetStrokeColor(0, 0, 0)
	pdf.RectFromUpperLeftWithStyle(sigX, nameY, sigBoxW, sigBoxH, "D")
	if len(content.SignatureImage) > 0 {
		if holder, err := gopdf.ImageHolderByBytes(content.SignatureImage); err == nil {
			_ = pdf.ImageByHolder(holder, sigX+2, nameY+2, &gopdf.Rect{W: sigBoxW - 4, H: sigBoxH - 4})
		}
	}
	_ = w.setSize(10)
	capW := w.textWidth(ShapeRTL(content.SignatureCaption))
	pdf.SetXY(sigX+(sigBoxW-capW)/2, nameY+sigBoxH+2)
	_ = pdf.Cell(nil, ShapeRTL(content.SignatureCaption))
	w.y = nameY + sigBoxH + 12

	// Footer
	pdf.SetStrokeColor(200, 200, 200)
	w.drawRule()
	_ = w.setSize(10)
	for _, line := range content.FooterLines {
		w.drawCentered(line, 5)
	}

	return pdf.GetBytesPdf(), nil
}

// RenderAgreementNativeWithFallback tries the smaller-output mode first and
// retries uncompressed before reporting a hard failure.
func RenderAgreementNativeWithFallback(content AgreementContent, fontPath string) ([]byte, error) {
	data, err := RenderAgreementNative(content, fontPath, true)
	if err == nil {
		return data, nil
	}
	log.Printf("compressed agreement render failed, retrying uncompressed: %v", err)

	data, retryErr := RenderAgreementNative(content, fontPath, false)
	if retryErr != nil {
		return nil, fmt.Errorf("agreement rendering failed: %v (compressed attempt: %v)", retryErr, err)
	}
	return data, nil
}
