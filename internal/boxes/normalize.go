package boxes

import (
	"math"
	"strings"

	"github.com/Dadaauditux/ux-audit-tool/internal/model"
)

// Stats counts what Normalize kept and why it dropped the rest.
type Stats struct {
	Kept           int `json:"kept"`
	MissingCoords  int `json:"missing_coords"`
	EmptyText      int `json:"empty_text"`
	DegenerateSize int `json:"degenerate_size"`
}

// Dropped returns the total number of discarded records.
func (s Stats) Dropped() int {
	return s.MissingCoords + s.EmptyText + s.DegenerateSize
}

// Normalize validates raw detections and converts them to text boxes.
//
// Records are dropped silently when a corner is missing or not finite, when
// the trimmed text is empty, or when the box has no positive width and height.
// Negative x0/y0 are clamped to zero. Width and height are taken from the raw
// corners, so a clamped box keeps its original extent. Overlapping or
// duplicate boxes are passed through unchanged.
func Normalize(words []model.RawWord) []model.TextBox {
	out, _ := NormalizeWithStats(words)
	return out
}

// NormalizeWithStats is Normalize plus a breakdown of dropped records.
func NormalizeWithStats(words []model.RawWord) ([]model.TextBox, Stats) {
	var stats Stats
	out := make([]model.TextBox, 0, len(words))

	for _, w := range words {
		x0, ok0 := coord(w.X0)
		y0, ok1 := coord(w.Y0)
		x1, ok2 := coord(w.X1)
		y1, ok3 := coord(w.Y1)
		if !ok0 || !ok1 || !ok2 || !ok3 {
			stats.MissingCoords++
			continue
		}

		text := strings.TrimSpace(w.Text)
		if text == "" {
			stats.EmptyText++
			continue
		}

		width, height := x1-x0, y1-y0
		if width <= 0 || height <= 0 {
			stats.DegenerateSize++
			continue
		}

		out = append(out, model.TextBox{
			Rect: model.Rect{
				X: max(0, x0),
				Y: max(0, y0),
				W: width,
				H: height,
			},
			Text: text,
		})
		stats.Kept++
	}

	return out, stats
}

// coord rounds a raw coordinate to a whole pixel.
func coord(v *float64) (int, bool) {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return 0, false
	}
	return int(math.Round(*v)), true
}
