package utils

import (
	"strings"
	"testing"
)

func TestAgreementStoreRoundTrip(t *testing.T) {
	store := &FileAgreementStore{dir: t.TempDir()}

	pdf := []byte("%PDF-1.4 test")
	url, err := store.Save("42", "ישראל ישראלי", pdf)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if !strings.HasPrefix(url, "/api/agreements/download?") {
		t.Errorf("unexpected download url: %q", url)
	}
	if !strings.Contains(url, "bookingId=42") {
		t.Errorf("url missing booking id: %q", url)
	}

	loaded, err := store.Load("42", "ישראל ישראלי")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if string(loaded) != string(pdf) {
		t.Error("loaded bytes differ from saved bytes")
	}
}

func TestAgreementStoreMissingFile(t *testing.T) {
	store := &FileAgreementStore{dir: t.TempDir()}
	if _, err := store.Load("404", "אין כזה"); err == nil {
		t.Fatal("expected error for missing agreement")
	}
}

func TestAgreementStoreSanitizesNames(t *testing.T) {
	store := &FileAgreementStore{dir: t.TempDir()}

	if _, err := store.Save("42/../7", "../../etc", []byte("x")); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	// The traversal attempt lands inside the store directory.
	if _, err := store.Load("42/../7", "../../etc"); err != nil {
		t.Fatalf("load with the same raw inputs failed: %v", err)
	}
}
