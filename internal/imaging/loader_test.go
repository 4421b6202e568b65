package imaging

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// createInMemoryImage creates an in-memory test image filled with c
func createInMemoryImage(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// encodePNG encodes img as PNG bytes
func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode png: %v", err)
	}
	return buf.Bytes()
}

func TestDecode_PNG(t *testing.T) {
	data := encodePNG(t, createInMemoryImage(40, 30, color.White))

	img, format, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if format != "png" {
		t.Errorf("format: got %s, want png", format)
	}
	if img.Bounds().Dx() != 40 || img.Bounds().Dy() != 30 {
		t.Errorf("dimensions: got %dx%d, want 40x30", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestDecode_JPEG(t *testing.T) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, createInMemoryImage(16, 16, color.Black), nil); err != nil {
		t.Fatalf("failed to encode jpeg: %v", err)
	}

	_, format, err := Decode(buf.Bytes())
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if format != "jpeg" {
		t.Errorf("format: got %s, want jpeg", format)
	}
}

func TestDecode_Empty(t *testing.T) {
	_, _, err := Decode(nil)
	if !errors.Is(err, ErrEmptyImage) {
		t.Errorf("expected ErrEmptyImage, got %v", err)
	}
}

func TestDecode_Corrupt(t *testing.T) {
	_, _, err := Decode([]byte("definitely not an image"))
	if err == nil {
		t.Error("Decode should fail for corrupt data")
	}
}

func TestInfo(t *testing.T) {
	data := encodePNG(t, createInMemoryImage(64, 32, color.RGBA{10, 20, 30, 255}))

	info, err := Info(data)
	if err != nil {
		t.Fatalf("Info failed: %v", err)
	}
	if info.Width != 64 || info.Height != 32 {
		t.Errorf("dimensions: got %dx%d, want 64x32", info.Width, info.Height)
	}
	if info.Format != "png" {
		t.Errorf("Format: got %s, want png", info.Format)
	}
	if info.ColorDepth != "8-bit" {
		t.Errorf("ColorDepth: got %s, want 8-bit", info.ColorDepth)
	}
	if info.SizeBytes != len(data) {
		t.Errorf("SizeBytes: got %d, want %d", info.SizeBytes, len(data))
	}
}

func TestReadFile(t *testing.T) {
	data := encodePNG(t, createInMemoryImage(8, 8, color.White))
	path := filepath.Join(t.TempDir(), "shot.png")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Error("ReadFile returned different bytes")
	}

	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("ReadFile should fail for a missing file")
	}
}
