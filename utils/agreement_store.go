package utils

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
)

// AgreementDir is where signed agreement PDFs are kept on disk.
const AgreementDir = "uploads/agreements"

// FileAgreementStore persists signed agreements under AgreementDir and
// serves them back by booking id and customer name.
type FileAgreementStore struct {
	dir string
}

func NewAgreementStore() *FileAgreementStore {
	return &FileAgreementStore{dir: AgreementDir}
}

// Save writes the PDF and returns the API path it can be fetched from.
func (s *FileAgreementStore) Save(bookingID, customerName string, pdf []byte) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create agreement directory: %v", err)
	}

	name := AgreementFileName(customerName, bookingID)
	if err := os.WriteFile(filepath.Join(s.dir, name), pdf, 0o644); err != nil {
		return "", fmt.Errorf("failed to write agreement file: %v", err)
	}

	return fmt.Sprintf("/api/agreements/download?bookingId=%s&customerName=%s",
		url.QueryEscape(SanitizeBookingID(bookingID)),
		url.QueryEscape(SanitizeCustomerName(customerName))), nil
}

// Path returns the on-disk location of a stored agreement without checking
// that it exists.
func (s *FileAgreementStore) Path(bookingID, customerName string) string {
	return filepath.Join(s.dir, AgreementFileName(customerName, bookingID))
}

// Load reads a stored agreement back.
func (s *FileAgreementStore) Load(bookingID, customerName string) ([]byte, error) {
	data, err := os.ReadFile(s.Path(bookingID, customerName))
	if err != nil {
		return nil, fmt.Errorf("agreement_not_found")
	}
	return data, nil
}
