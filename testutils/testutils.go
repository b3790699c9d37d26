// Package testutils provides helper functions for testing sidecar scanning and orientation.
package testutils

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
)

// CreateTestJPEG creates a white JPEG of the given size at path,
// creating parent directories as needed.
func CreateTestJPEG(t *testing.T, path string, width, height int) error {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("Error creating directory: %v", err)
	}
	img := imaging.New(width, height, color.White)
	return imaging.Save(img, path, imaging.JPEGQuality(90))
}

// CreateTestPNG creates a white PNG of the given size at path.
func CreateTestPNG(t *testing.T, path string, width, height int) error {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("Error creating directory: %v", err)
	}
	img := imaging.New(width, height, color.White)
	return imaging.Save(img, path)
}

// CreateCorruptImage writes bytes that no image decoder accepts.
func CreateCorruptImage(t *testing.T, path string) error {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("Error creating directory: %v", err)
	}
	return os.WriteFile(path, []byte("this is not an image"), 0644)
}

// CreateSidecar writes a .picasa.ini into dir. Each entry of starred becomes a
// section with star=yes, each entry of plain a section with other keys only.
func CreateSidecar(t *testing.T, dir string, starred []string, plain []string) error {
	t.Helper()

	var b strings.Builder
	b.WriteString("[Picasa]\nname=Test album\n")
	for _, name := range plain {
		fmt.Fprintf(&b, "[%s]\nrotate=rotate(0)\n", name)
	}
	for _, name := range starred {
		fmt.Fprintf(&b, "[%s]\nstar=yes\n", name)
	}
	return WriteSidecar(t, dir, b.String())
}

// WriteSidecar writes raw sidecar content into dir.
func WriteSidecar(t *testing.T, dir string, content string) error {
	t.Helper()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("Error creating directory: %v", err)
	}
	return os.WriteFile(filepath.Join(dir, ".picasa.ini"), []byte(content), 0644)
}

// ReadLines returns the lines of a written output file.
func ReadLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Error reading %s: %v", path, err)
	}
	text := strings.TrimRight(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// CreateTestJPEGWithExifOrientation creates a white JPEG of the given size
// carrying an EXIF APP1 segment whose only tag is Orientation.
func CreateTestJPEGWithExifOrientation(t *testing.T, path string, width, height int, orientation uint16) error {
	t.Helper()

	if err := CreateTestJPEG(t, path, width, height); err != nil {
		return fmt.Errorf("Error creating JPEG: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("Error reading JPEG: %v", err)
	}

	// Big-endian TIFF header followed by IFD0 with one SHORT entry (tag 0x0112)
	exifData := []byte("Exif\x00\x00")
	exifData = append(exifData, 'M', 'M', 0x00, 0x2A, 0x00, 0x00, 0x00, 0x08)
	exifData = append(exifData, 0x00, 0x01)
	exifData = append(exifData, 0x01, 0x12, 0x00, 0x03, 0x00, 0x00, 0x00, 0x01)
	exifData = append(exifData, byte(orientation>>8), byte(orientation&0xFF), 0x00, 0x00)
	exifData = append(exifData, 0x00, 0x00, 0x00, 0x00)

	// Rebuild JPEG
	newData := make([]byte, 0, len(data)+len(exifData)+4)
	newData = append(newData, 0xFF, 0xD8)                                               // JPEG SOI marker
	newData = append(newData, 0xFF, 0xE1)                                               // APP1 marker
	newData = append(newData, byte((len(exifData)+2)>>8), byte((len(exifData)+2)&0xFF)) // Length
	newData = append(newData, exifData...)
	newData = append(newData, data[2:]...) // Rest of JPEG data

	if err := os.WriteFile(path, newData, 0644); err != nil {
		return fmt.Errorf("Error writing JPEG: %v", err)
	}

	return nil
}
