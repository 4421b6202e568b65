package model

// Rect is an axis-aligned rectangle in image pixel coordinates.
type Rect struct {
	X int `json:"x"` // Left edge (inclusive)
	Y int `json:"y"` // Top edge (inclusive)
	W int `json:"w"` // Width in pixels
	H int `json:"h"` // Height in pixels
}

// Right returns the exclusive right edge (X + W).
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the exclusive bottom edge (Y + H).
func (r Rect) Bottom() int { return r.Y + r.H }

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Union returns the smallest rectangle containing both r and o.
func (r Rect) Union(o Rect) Rect {
	x := min(r.X, o.X)
	y := min(r.Y, o.Y)
	return Rect{
		X: x,
		Y: y,
		W: max(r.Right(), o.Right()) - x,
		H: max(r.Bottom(), o.Bottom()) - y,
	}
}

// Within reports whether r lies entirely inside a width x height image.
func (r Rect) Within(width, height int) bool {
	return r.W > 0 && r.H > 0 &&
		r.X >= 0 && r.Y >= 0 &&
		r.Right() <= width && r.Bottom() <= height
}
