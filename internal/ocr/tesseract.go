package ocr

import (
	"context"
	"fmt"

	"github.com/otiai10/gosseract/v2"

	"github.com/Dadaauditux/ux-audit-tool/internal/imaging"
	"github.com/Dadaauditux/ux-audit-tool/internal/model"
)

// DefaultLanguage is the Tesseract language used when none is configured.
const DefaultLanguage = "eng"

// Tesseract detects words with the Tesseract OCR engine.
type Tesseract struct {
	// Language is a Tesseract language code such as "eng" or "fra".
	Language string

	// TessdataPrefix overrides the directory holding *.traineddata files.
	TessdataPrefix string

	// Preprocess converts the image to high-contrast grayscale before OCR.
	Preprocess bool

	// MinConfidence drops words below this confidence (0-100). Zero keeps all.
	MinConfidence float64
}

// NewTesseract returns a detector for language, defaulting to English.
func NewTesseract(language string) *Tesseract {
	if language == "" {
		language = DefaultLanguage
	}
	return &Tesseract{Language: language}
}

// Detect runs word-level OCR on an encoded image.
//
// Empty input yields no words and no error. Undecodable input returns an
// error; the audit treats that as "no text found".
func (t *Tesseract) Detect(ctx context.Context, data []byte) ([]model.RawWord, error) {
	if len(data) == 0 {
		return nil, nil
	}

	img, _, err := imaging.Decode(data)
	if err != nil {
		return nil, err
	}

	input := data
	if t.Preprocess {
		input, err = encodePNG(Preprocess(img))
		if err != nil {
			return nil, err
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	client := gosseract.NewClient()
	defer client.Close()

	if t.TessdataPrefix != "" {
		if err := client.SetTessdataPrefix(t.TessdataPrefix); err != nil {
			return nil, fmt.Errorf("failed to set tessdata path: %w", err)
		}
	}

	language := t.Language
	if language == "" {
		language = DefaultLanguage
	}
	if err := client.SetLanguage(language); err != nil {
		return nil, fmt.Errorf("failed to set language: %w", err)
	}

	if err := client.SetImageFromBytes(input); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, fmt.Errorf("failed to get bounding boxes: %w", err)
	}

	words := make([]model.RawWord, 0, len(boxes))
	for _, box := range boxes {
		if box.Confidence < t.MinConfidence {
			continue
		}
		w := model.NewRawWord(box.Word,
			float64(box.Box.Min.X), float64(box.Box.Min.Y),
			float64(box.Box.Max.X), float64(box.Box.Max.Y))
		w.Confidence = box.Confidence
		words = append(words, w)
	}

	return words, nil
}

// Version returns the version string of the linked Tesseract library.
func Version() string {
	client := gosseract.NewClient()
	defer client.Close()
	return client.Version()
}
