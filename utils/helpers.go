package utils

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// EnvOrDefault returns ENV value or fallback default.
func EnvOrDefault(key, def string) string {
	v := os.Getenv(key)
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

// DecodeDataURL decodes a base64 payload that may carry a data URI prefix
// like "data:image/png;base64,...." or "data:application/pdf;base64,....".
func DecodeDataURL(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.New("empty data url")
	}
	s = StripDataURLPrefix(s)

	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		data, err = base64.URLEncoding.DecodeString(s)
		if err != nil {
			return nil, fmt.Errorf("base64 decode failed: %v", err)
		}
	}
	return data, nil
}

// EncodePNGDataURL wraps raw PNG bytes as an inline data URI.
func EncodePNGDataURL(png []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)
}

// StripDataURLPrefix returns the bare base64 payload of a data URI.
func StripDataURLPrefix(s string) string {
	if idx := strings.Index(s, ","); idx != -1 && strings.HasPrefix(s, "data:") {
		return s[idx+1:]
	}
	return s
}

var filenameAllowed = regexp.MustCompile(`[^א-ת\x{0590}-\x{05FF}\w\s-]`)
var idAllowed = regexp.MustCompile(`[^\w-]`)

// SanitizeCustomerName keeps word characters, hyphens, spaces and Hebrew
// letters so derived filenames stay filesystem-safe.
func SanitizeCustomerName(name string) string {
	return filenameAllowed.ReplaceAllString(strings.TrimSpace(name), "")
}

// SanitizeBookingID keeps only word characters and hyphens.
func SanitizeBookingID(id string) string {
	return idAllowed.ReplaceAllString(strings.TrimSpace(id), "")
}

// AgreementFileName derives the stored agreement filename from a sanitized
// customer name and booking id.
func AgreementFileName(customerName, bookingID string) string {
	return fmt.Sprintf("הזמנה_%s_%s.pdf", SanitizeCustomerName(customerName), SanitizeBookingID(bookingID))
}
