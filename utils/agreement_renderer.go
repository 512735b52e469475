package utils

import (
	"fmt"
	"log"
	"os"

	"rental-backend/models"
)

// AgreementPDFRenderer produces the signed-agreement PDF for a booking. Two
// strategies exist: the native one draws text directly into the document,
// the raster one paints a canvas and tiles the image across pages. The
// configured primary runs first and the other is the fallback.
type AgreementPDFRenderer struct {
	fontPath    string
	rasterFirst bool
}

func NewAgreementRenderer() *AgreementPDFRenderer {
	return &AgreementPDFRenderer{
		fontPath:    EnvOrDefault("AGREEMENT_FONT_PATH", DefaultFontPath),
		rasterFirst: EnvOrDefault("AGREEMENT_RENDERER", "native") == "raster",
	}
}

// CheckFont verifies the configured TTF exists. Called once at startup so a
// missing font fails the process immediately instead of failing every
// booking inside the best-effort confirm chain.
func (r *AgreementPDFRenderer) CheckFont() error {
	if _, err := os.Stat(r.fontPath); err != nil {
		return fmt.Errorf("agreement font not found at %s: %w (set AGREEMENT_FONT_PATH or fetch the font, see fonts/README.md)", r.fontPath, err)
	}
	return nil
}

func (r *AgreementPDFRenderer) Render(booking *models.Booking, unitName string) ([]byte, error) {
	content := BuildAgreementContent(booking, unitName)

	primary, secondary := "native", "raster"
	first := func() ([]byte, error) { return RenderAgreementNativeWithFallback(content, r.fontPath) }
	second := func() ([]byte, error) { return RenderAgreementRaster(content, r.fontPath) }
	if r.rasterFirst {
		primary, secondary = secondary, primary
		first, second = second, first
	}

	data, err := first()
	if err == nil {
		return data, nil
	}
	log.Printf("%s agreement render failed for booking %d, trying %s: %v", primary, booking.ID, secondary, err)

	data, retryErr := second()
	if retryErr != nil {
		return nil, fmt.Errorf("all agreement render strategies failed: %v (%s attempt: %v)", retryErr, primary, err)
	}
	return data, nil
}
