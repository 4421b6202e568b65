package imaging

import (
	"context"
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/Dadaauditux/ux-audit-tool/internal/model"
)

// Raster is a decoded image that hands out raw pixel data for regions.
// It satisfies contrast.PixelSource.
type Raster struct {
	img    image.Image
	format string
}

// NewRaster decodes data into a Raster.
func NewRaster(data []byte) (*Raster, error) {
	img, format, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return &Raster{img: img, format: format}, nil
}

// FromImage wraps an already decoded image.
func FromImage(img image.Image) *Raster {
	return &Raster{img: img}
}

// Format returns the detected format, or "" for a wrapped image.
func (r *Raster) Format() string { return r.format }

// Dimensions returns the image width and height in pixels.
func (r *Raster) Dimensions() (int, int) {
	b := r.img.Bounds()
	return b.Dx(), b.Dy()
}

// Extract returns the region as non-premultiplied RGBA bytes, row-major,
// four bytes per pixel. Coordinates are relative to the image's top-left
// corner even when the decoded bounds do not start at (0,0).
//
// # Errors
//
//   - the region has no area
//   - the region extends outside the image
//   - ctx is already done
func (r *Raster) Extract(ctx context.Context, rect model.Rect) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if rect.Empty() {
		return nil, fmt.Errorf("invalid extract region %dx%d", rect.W, rect.H)
	}

	width, height := r.Dimensions()
	if !rect.Within(width, height) {
		return nil, fmt.Errorf("extract region (%d,%d)-(%d,%d) outside image bounds %dx%d",
			rect.X, rect.Y, rect.Right(), rect.Bottom(), width, height)
	}

	origin := r.img.Bounds().Min
	area := image.Rect(rect.X, rect.Y, rect.Right(), rect.Bottom()).Add(origin)

	// imaging.Crop returns a fresh NRGBA whose Pix is tightly packed.
	cropped := imaging.Crop(r.img, area)
	return cropped.Pix, nil
}
