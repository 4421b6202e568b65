package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/Dadaauditux/ux-audit-tool/internal/model"
)

// WordFile is a detector that returns a fixed list of words regardless of the
// image. It lets an audit run from recorded detections.
type WordFile struct {
	Words []model.RawWord
}

// LoadWordFile reads recorded words from a JSON file. See ParseWords for the
// accepted shapes.
func LoadWordFile(path string) (*WordFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read word file: %w", err)
	}
	words, err := ParseWords(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse word file %s: %w", path, err)
	}
	return &WordFile{Words: words}, nil
}

// Detect returns the recorded words.
func (f *WordFile) Detect(_ context.Context, _ []byte) ([]model.RawWord, error) {
	out := make([]model.RawWord, len(f.Words))
	copy(out, f.Words)
	return out, nil
}

// ParseWords decodes recorded words. It accepts a bare array of words, an
// object with a "words" array, or a tesseract.js result with "data.words".
// Each word may carry flat x0/y0/x1/y1 fields or a nested "bbox".
func ParseWords(r io.Reader) ([]model.RawWord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, nil
	}

	if data[0] == '[' {
		var words []model.RawWord
		if err := json.Unmarshal(data, &words); err != nil {
			return nil, err
		}
		return words, nil
	}

	var doc struct {
		Words []model.RawWord `json:"words"`
		Data  *struct {
			Words []model.RawWord `json:"words"`
		} `json:"data"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Data != nil && len(doc.Data.Words) > 0 {
		return doc.Data.Words, nil
	}
	return doc.Words, nil
}
