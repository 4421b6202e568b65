package model

import "encoding/json"

// RawWord is one word as reported by a text-detection engine, before any
// validation. Coordinates are pointers because external detections may omit
// them; the box normalizer drops such records.
type RawWord struct {
	Text       string   `json:"text"`
	X0         *float64 `json:"x0"`
	Y0         *float64 `json:"y0"`
	X1         *float64 `json:"x1"`
	Y1         *float64 `json:"y1"`
	Confidence float64  `json:"confidence,omitempty"`
}

// rawWordJSON accepts both the flat shape and the tesseract.js shape where the
// corners live under "bbox".
type rawWordJSON struct {
	Text       string   `json:"text"`
	X0         *float64 `json:"x0"`
	Y0         *float64 `json:"y0"`
	X1         *float64 `json:"x1"`
	Y1         *float64 `json:"y1"`
	Confidence float64  `json:"confidence"`
	BBox       *struct {
		X0 *float64 `json:"x0"`
		Y0 *float64 `json:"y0"`
		X1 *float64 `json:"x1"`
		Y1 *float64 `json:"y1"`
	} `json:"bbox"`
}

// UnmarshalJSON decodes either {"text","x0","y0","x1","y1"} or
// {"text","bbox":{"x0","y0","x1","y1"}}.
func (w *RawWord) UnmarshalJSON(data []byte) error {
	var raw rawWordJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*w = RawWord{
		Text:       raw.Text,
		X0:         raw.X0,
		Y0:         raw.Y0,
		X1:         raw.X1,
		Y1:         raw.Y1,
		Confidence: raw.Confidence,
	}
	if raw.BBox != nil {
		w.X0, w.Y0, w.X1, w.Y1 = raw.BBox.X0, raw.BBox.Y0, raw.BBox.X1, raw.BBox.Y1
	}
	return nil
}

// NewRawWord builds a RawWord with every corner present.
func NewRawWord(text string, x0, y0, x1, y1 float64) RawWord {
	return RawWord{Text: text, X0: &x0, Y0: &y0, X1: &x1, Y1: &y1}
}

// TextBox is a validated, normalized text detection.
type TextBox struct {
	Rect
	Text string `json:"text"`
}
