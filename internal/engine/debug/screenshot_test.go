package debug

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCaptureFromPixelsFlipsRows(t *testing.T) {
	dir := t.TempDir()
	sc := NewScreenshotCapture(dir, "orrery")

	// 2x2 image: bottom row red, top row blue (GL bottom-up order).
	pixels := []byte{
		255, 0, 0, 255, 255, 0, 0, 255,
		0, 0, 255, 255, 0, 0, 255, 255,
	}

	path, err := sc.CaptureFromPixels(pixels, 2, 2)
	if err != nil {
		t.Fatalf("CaptureFromPixels: %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Errorf("capture written to %q, want directory %q", path, dir)
	}
	if !strings.HasPrefix(filepath.Base(path), "orrery_") {
		t.Errorf("filename %q missing prefix", filepath.Base(path))
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open capture: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode capture: %v", err)
	}

	// After the flip the top-left pixel is blue and bottom-left red.
	r, g, b, _ := img.At(0, 0).RGBA()
	if r>>8 != 0 || g>>8 != 0 || b>>8 != 255 {
		t.Errorf("top-left = (%d,%d,%d), want blue", r>>8, g>>8, b>>8)
	}
	r, _, b, _ = img.At(0, 1).RGBA()
	if r>>8 != 255 || b>>8 != 0 {
		t.Errorf("bottom-left = (%d,_,%d), want red", r>>8, b>>8)
	}
}

func TestCaptureFromPixelsSizeMismatch(t *testing.T) {
	sc := NewScreenshotCapture(t.TempDir(), "orrery")
	if _, err := sc.CaptureFromPixels(make([]byte, 10), 2, 2); err == nil {
		t.Fatal("expected error for short pixel buffer")
	}
}
