package imaging

import (
	"fmt"
	"image"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBColor represents an RGB color with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ColorResult contains a sampled color in several representations.
type ColorResult struct {
	Hex   string   `json:"hex"`   // Hex format "#rrggbb" (no alpha)
	RGB   RGBColor `json:"rgb"`   // RGB components
	Alpha uint8    `json:"alpha"` // Alpha/opacity (0-255)
	HSL   HSLColor `json:"hsl"`   // HSL representation
}

// SampleColor extracts the color value at a specific pixel coordinate.
//
// Coordinates are 0-based from the image's top-left corner:
//   - Valid X range: 0 to width-1
//   - Valid Y range: 0 to height-1
//
// For 16-bit images, values are scaled down by right-shifting 8 bits.
func SampleColor(img image.Image, x, y int) (*ColorResult, error) {
	bounds := img.Bounds()
	if x < 0 || x >= bounds.Dx() || y < 0 || y >= bounds.Dy() {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
	r8, g8, b8, a8 := uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8)

	c := colorful.Color{R: float64(r8) / 255, G: float64(g8) / 255, B: float64(b8) / 255}
	h, s, l := c.Hsl()
	if math.IsNaN(h) {
		h = 0
	}

	return &ColorResult{
		Hex:   c.Hex(),
		RGB:   RGBColor{R: r8, G: g8, B: b8},
		Alpha: a8,
		HSL:   HSLColor{H: int(h), S: int(s * 100), L: int(l * 100)},
	}, nil
}
