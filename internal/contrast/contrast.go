package contrast

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/Dadaauditux/ux-audit-tool/internal/model"
)

const (
	// DefaultMinRatio is the WCAG AA minimum for normal-size text.
	DefaultMinRatio = 4.5

	// BackgroundBandPx is the height of the strip above a box used as its
	// background sample.
	BackgroundBandPx = 5
)

// ErrShortSample is returned when an extraction yields fewer than three bytes.
var ErrShortSample = errors.New("pixel sample shorter than one RGB triple")

// PixelSource gives read access to the pixels of one decoded image.
type PixelSource interface {
	// Dimensions returns the image width and height in pixels.
	Dimensions() (width, height int)

	// Extract returns the interleaved channel bytes of r, row-major, starting
	// with the top-left pixel. The first three bytes are its R, G and B.
	Extract(ctx context.Context, r model.Rect) ([]byte, error)
}

// Luminance returns the WCAG relative luminance of c.
func Luminance(c colorful.Color) float64 {
	return 0.2126*linearize(c.R) + 0.7152*linearize(c.G) + 0.0722*linearize(c.B)
}

// linearize applies the sRGB transfer function with the 0.03928 breakpoint
// used by WCAG 2.x.
func linearize(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// Ratio returns the contrast ratio between a and b, from 1 to 21.
// The result does not depend on argument order.
func Ratio(a, b colorful.Color) float64 {
	la, lb := Luminance(a), Luminance(b)
	return (math.Max(la, lb) + 0.05) / (math.Min(la, lb) + 0.05)
}

// Round2 rounds a ratio to two decimals for reporting.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Sampler flags text boxes whose sampled contrast is below MinRatio.
type Sampler struct {
	MinRatio float64
	Logger   *slog.Logger
}

// NewSampler creates a sampler. A non-positive minRatio uses DefaultMinRatio
// and a nil logger discards output.
func NewSampler(minRatio float64, logger *slog.Logger) *Sampler {
	if minRatio <= 0 {
		minRatio = DefaultMinRatio
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Sampler{MinRatio: minRatio, Logger: logger}
}

// Check samples every box in order and returns the contrast issues found.
//
// Boxes outside the image, and boxes too close to the bottom edge for a
// background band, are skipped. Extraction failures are logged and the box is
// skipped. The only error returned is the context's, checked between boxes.
func (s *Sampler) Check(ctx context.Context, src PixelSource, boxes []model.TextBox) ([]model.Issue, error) {
	width, height := src.Dimensions()
	issues := make([]model.Issue, 0)

	for _, b := range boxes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !b.Within(width, height) {
			continue
		}

		bgTop := max(b.Y-BackgroundBandPx, 0)
		if bgTop+BackgroundBandPx > height {
			continue
		}

		fg, err := firstPixel(ctx, src, b.Rect)
		if err != nil {
			s.Logger.Warn("contrast.sample_failed", "region", "text", "box", b.Rect, "error", err)
			continue
		}
		bg, err := firstPixel(ctx, src, model.Rect{X: b.X, Y: bgTop, W: b.W, H: BackgroundBandPx})
		if err != nil {
			s.Logger.Warn("contrast.sample_failed", "region", "background", "box", b.Rect, "error", err)
			continue
		}

		ratio := Ratio(fg, bg)
		s.Logger.Debug("contrast.sampled",
			"text", b.Text, "fg", fg.Hex(), "bg", bg.Hex(), "ratio", Round2(ratio))

		if ratio < s.MinRatio {
			issues = append(issues, model.Issue{
				BoundingBox:   b.Rect,
				Type:          model.IssueContrast,
				Message:       fmt.Sprintf("Insufficient contrast: %.2f (min %g)", ratio, s.MinRatio),
				Severity:      model.SeverityHigh,
				Text:          b.Text,
				ContrastRatio: Round2(ratio),
			})
		}
	}

	return issues, nil
}

// firstPixel extracts r and returns the color of its top-left pixel.
func firstPixel(ctx context.Context, src PixelSource, r model.Rect) (colorful.Color, error) {
	pix, err := src.Extract(ctx, r)
	if err != nil {
		return colorful.Color{}, err
	}
	if len(pix) < 3 {
		return colorful.Color{}, ErrShortSample
	}
	return FromRGB8(pix[0], pix[1], pix[2]), nil
}

// FromRGB8 converts 8-bit channel values to a colorful.Color.
func FromRGB8(r, g, b uint8) colorful.Color {
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}
