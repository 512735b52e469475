package utils

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"math"

	"github.com/fogleman/gg"
	"github.com/signintech/gopdf"
)

// Rasterized strategy: the agreement is drawn into a single canvas at 2x
// scale for print quality, and that one image is tiled across successive A4
// pages by shifting its placement origin up one page height per page. Every
// page places the entire image; page clipping reveals the relevant band.

const (
	rasterScale  = 2
	rasterWidth  = 794 * rasterScale // A4 width in pixels at 96 DPI
	rasterHeight = 1123 * rasterScale
	rasterMargin = 75.0 * rasterScale
)

type rasterCanvas struct {
	ctx *gg.Context
	y   float64
}

func (c *rasterCanvas) setFace(fontPath string, points float64) error {
	return c.ctx.LoadFontFace(fontPath, points*rasterScale)
}

func (c *rasterCanvas) drawCentered(s string, lineH float64) {
	c.ctx.DrawStringAnchored(ShapeRTL(s), rasterWidth/2, c.y, 0.5, 1)
	c.y += lineH * rasterScale
}

func (c *rasterCanvas) drawRight(s string, lineH float64) {
	c.ctx.DrawStringAnchored(ShapeRTL(s), rasterWidth-rasterMargin, c.y, 1, 1)
	c.y += lineH * rasterScale
}

func (c *rasterCanvas) drawWrapped(s string, lineH float64) {
	for _, line := range c.ctx.WordWrap(s, rasterWidth-2*rasterMargin) {
		c.drawRight(line, lineH)
	}
}

func (c *rasterCanvas) drawBullets(items []string, lineH float64) {
	for _, item := range items {
		c.drawWrapped("• "+item, lineH)
		c.y += 4 * rasterScale
	}
}

func (c *rasterCanvas) drawRule(gray float64) {
	c.ctx.SetRGB(gray, gray, gray)
	c.ctx.SetLineWidth(1.5 * rasterScale)
	c.ctx.DrawLine(rasterMargin, c.y, rasterWidth-rasterMargin, c.y)
	c.ctx.Stroke()
	c.ctx.SetRGB(0.2, 0.2, 0.2)
	c.y += 12 * rasterScale
}

// rasterizeAgreement draws the full document into one tall image.
func rasterizeAgreement(content AgreementContent, fontPath string) (image.Image, error) {
	ctx := gg.NewContext(rasterWidth, rasterHeight)
	ctx.SetRGB(1, 1, 1)
	ctx.Clear()
	ctx.SetRGB(0.2, 0.2, 0.2)

	c := &rasterCanvas{ctx: ctx, y: rasterMargin}

	if err := c.setFace(fontPath, 28); err != nil {
		return nil, fmt.Errorf("agreement font unavailable (%s): %w", fontPath, err)
	}
	c.drawCentered(content.Title, 38)
	if err := c.setFace(fontPath, 20); err != nil {
		return nil, err
	}
	c.drawCentered(content.Subtitle, 30)
	c.drawRule(0.2)

	_ = c.setFace(fontPath, 16)
	c.drawRight(content.Greeting, 24)
	c.drawWrapped(content.Intro, 24)
	c.y += 16 * rasterScale

	_ = c.setFace(fontPath, 18)
	c.drawRight(content.DetailsHeading, 28)
	_ = c.setFace(fontPath, 14)
	for _, detail := range content.Details {
		c.drawRight(detail, 22)
	}
	c.y += 16 * rasterScale

	_ = c.setFace(fontPath, 16)
	c.drawRight(content.PaymentHeading, 26)
	_ = c.setFace(fontPath, 14)
	c.drawRight(content.PaymentTotal, 22)
	c.drawWrapped(content.PaymentNote, 22)
	c.y += 12 * rasterScale

	_ = c.setFace(fontPath, 16)
	c.drawRight(content.RulesHeading, 26)
	_ = c.setFace(fontPath, 14)
	c.drawBullets(content.Rules, 20)

	_ = c.setFace(fontPath, 16)
	c.drawRight(content.CancellationHeading, 26)
	_ = c.setFace(fontPath, 14)
	c.drawBullets(content.CancellationRules, 20)
	c.y += 8 * rasterScale

	c.drawRule(0.2)
	_ = c.setFace(fontPath, 16)
	c.drawRight(content.DeclarationHeading, 26)
	_ = c.setFace(fontPath, 14)
	c.drawRight(content.Declaration, 22)
	c.drawRight(content.SignerName, 22)
	c.drawRight(content.SignedDateLine, 22)

	// Signature box on the left, mirroring the document layout.
	boxW, boxH := 200.0*rasterScale, 80.0*rasterScale
	boxX, boxY := rasterMargin, c.y
	ctx.SetLineWidth(1.5 * rasterScale)
	ctx.DrawRectangle(boxX, boxY, boxW, boxH)
	ctx.Stroke()

	if len(content.SignatureImage) > 0 {
		if sig, _, err := image.Decode(bytes.NewReader(content.SignatureImage)); err == nil {
			sw, sh := float64(sig.Bounds().Dx()), float64(sig.Bounds().Dy())
			scale := math.Min((boxW-8)/sw, (boxH-8)/sh)
			ctx.Push()
			ctx.Translate(boxX+4, boxY+4)
			ctx.Scale(scale, scale)
			ctx.DrawImage(sig, 0, 0)
			ctx.Pop()
		}
	}

	_ = c.setFace(fontPath, 12)
	ctx.DrawStringAnchored(ShapeRTL(content.SignatureCaption), boxX+boxW/2, boxY+boxH+14*rasterScale, 0.5, 1)
	c.y = boxY + boxH + 30*rasterScale

	c.drawRule(0.7)
	_ = c.setFace(fontPath, 12)
	for _, line := range content.FooterLines {
		c.drawCentered(line, 18)
	}

	return ctx.Image(), nil
}

// RenderAgreementRaster rasterizes the agreement and tiles the image across
// fixed-size pages: pagesNeeded = ceil(imageHeight / pageHeight), with the
// same source image placed at a decreasing vertical offset on each page.
func RenderAgreementRaster(content AgreementContent, fontPath string) ([]byte, error) {
	img, err := rasterizeAgreement(content, fontPath)
	if err != nil {
		return nil, err
	}

	imgW := pageWidthMM
	imgH := float64(img.Bounds().Dy()) * imgW / float64(img.Bounds().Dx())
	pages := PagesNeeded(imgH, pageHeightMM)

	pdf := &gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: gopdf.Rect{W: pageWidthMM, H: pageHeightMM}, Unit: gopdf.UnitMM})
	for page := 0; page < pages; page++ {
		pdf.AddPage()
		offset := -float64(page) * pageHeightMM
		if err := pdf.ImageFrom(img, 0, offset, &gopdf.Rect{W: imgW, H: imgH}); err != nil {
			return nil, fmt.Errorf("failed to place agreement image on page %d: %w", page+1, err)
		}
	}
	return pdf.GetBytesPdf(), nil
}

// PagesNeeded computes how many fixed-height pages a rendered image spans.
func PagesNeeded(imageHeight, pageHeight float64) int {
	pages := int(math.Ceil(imageHeight / pageHeight))
	if pages < 1 {
		pages = 1
	}
	return pages
}
