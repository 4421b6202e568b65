package imaging

import (
	"context"
	"image"
	"image/color"
	"testing"

	"github.com/Dadaauditux/ux-audit-tool/internal/model"
)

// createPatternImage creates an image with different colors in each quadrant
func createPatternImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var c color.Color
			if x < width/2 && y < height/2 {
				c = color.RGBA{255, 0, 0, 255} // Red top-left
			} else if x >= width/2 && y < height/2 {
				c = color.RGBA{0, 255, 0, 255} // Green top-right
			} else if x < width/2 && y >= height/2 {
				c = color.RGBA{0, 0, 255, 255} // Blue bottom-left
			} else {
				c = color.RGBA{255, 255, 255, 255} // White bottom-right
			}
			img.Set(x, y, c)
		}
	}
	return img
}

func TestNewRaster(t *testing.T) {
	r, err := NewRaster(encodePNG(t, createPatternImage(100, 80)))
	if err != nil {
		t.Fatalf("NewRaster failed: %v", err)
	}

	w, h := r.Dimensions()
	if w != 100 || h != 80 {
		t.Errorf("Dimensions: got %dx%d, want 100x80", w, h)
	}
	if r.Format() != "png" {
		t.Errorf("Format: got %s, want png", r.Format())
	}
}

func TestNewRaster_Invalid(t *testing.T) {
	if _, err := NewRaster(nil); err == nil {
		t.Error("NewRaster should fail for empty data")
	}
	if _, err := NewRaster([]byte{0x89, 'P', 'N', 'G'}); err == nil {
		t.Error("NewRaster should fail for truncated data")
	}
}

func TestRaster_Extract(t *testing.T) {
	r := FromImage(createPatternImage(100, 100))

	tests := []struct {
		name    string
		rect    model.Rect
		wantRGB [3]byte
	}{
		{"top-left quadrant", model.Rect{X: 0, Y: 0, W: 10, H: 10}, [3]byte{255, 0, 0}},
		{"top-right quadrant", model.Rect{X: 60, Y: 5, W: 10, H: 10}, [3]byte{0, 255, 0}},
		{"bottom-left quadrant", model.Rect{X: 10, Y: 70, W: 5, H: 5}, [3]byte{0, 0, 255}},
		{"bottom-right quadrant", model.Rect{X: 90, Y: 90, W: 10, H: 10}, [3]byte{255, 255, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pix, err := r.Extract(context.Background(), tt.rect)
			if err != nil {
				t.Fatalf("Extract failed: %v", err)
			}
			if len(pix) != tt.rect.W*tt.rect.H*4 {
				t.Fatalf("length: got %d, want %d", len(pix), tt.rect.W*tt.rect.H*4)
			}
			if pix[0] != tt.wantRGB[0] || pix[1] != tt.wantRGB[1] || pix[2] != tt.wantRGB[2] {
				t.Errorf("first pixel: got (%d,%d,%d), want %v", pix[0], pix[1], pix[2], tt.wantRGB)
			}
		})
	}
}

func TestRaster_Extract_NonZeroOrigin(t *testing.T) {
	img := image.NewRGBA(image.Rect(10, 10, 30, 30))
	img.Set(10, 10, color.RGBA{1, 2, 3, 255})

	pix, err := FromImage(img).Extract(context.Background(), model.Rect{X: 0, Y: 0, W: 1, H: 1})
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if pix[0] != 1 || pix[1] != 2 || pix[2] != 3 {
		t.Errorf("got (%d,%d,%d), want (1,2,3)", pix[0], pix[1], pix[2])
	}
}

func TestRaster_Extract_Invalid(t *testing.T) {
	r := FromImage(createPatternImage(50, 50))

	tests := []struct {
		name string
		rect model.Rect
	}{
		{"negative x", model.Rect{X: -1, Y: 0, W: 10, H: 10}},
		{"past right", model.Rect{X: 45, Y: 0, W: 10, H: 10}},
		{"past bottom", model.Rect{X: 0, Y: 45, W: 10, H: 10}},
		{"zero width", model.Rect{X: 0, Y: 0, W: 0, H: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := r.Extract(context.Background(), tt.rect); err == nil {
				t.Error("Extract should fail")
			}
		})
	}
}

func TestRaster_Extract_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := FromImage(createPatternImage(10, 10)).Extract(ctx, model.Rect{W: 1, H: 1}); err == nil {
		t.Error("Extract should fail on a canceled context")
	}
}
