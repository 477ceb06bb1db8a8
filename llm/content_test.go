package llm

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"
)

func TestImageFromFile(t *testing.T) {
	dir := t.TempDir()
	raw := []byte{0x89, 0x50, 0x4e, 0x47}
	path := filepath.Join(dir, "pixel.PNG")
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		t.Fatal(err)
	}

	item, err := ImageFromFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.Type != ContentItemTypeImage {
		t.Errorf("type = %q, want image", item.Type)
	}
	if item.MediaType != "png" {
		t.Errorf("media type = %q, want png (case-insensitive extension)", item.MediaType)
	}
	if item.Data != base64.StdEncoding.EncodeToString(raw) {
		t.Error("data is not the base64 of the file contents")
	}
}

func TestImageFromFileJPGAlias(t *testing.T) {
	path := filepath.Join(t.TempDir(), "photo.jpg")
	if err := os.WriteFile(path, []byte{0xff, 0xd8}, 0o600); err != nil {
		t.Fatal(err)
	}
	item, err := ImageFromFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.MediaType != "jpeg" {
		t.Errorf("media type = %q, want jpeg", item.MediaType)
	}
}

func TestImageFromFileRejectsUnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.pdf")
	if err := os.WriteFile(path, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := ImageFromFile(path); !IsValidationError(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestImageFromFileMissing(t *testing.T) {
	if _, err := ImageFromFile(filepath.Join(t.TempDir(), "nope.png")); !IsValidationError(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}
