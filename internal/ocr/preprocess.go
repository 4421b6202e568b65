package ocr

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/anthonynsimon/bild/effect"
)

// contrastBoost is the relative contrast change applied before OCR.
const contrastBoost = 0.4

// Preprocess returns a grayscale, contrast-boosted copy of img with the same
// bounds size. Low-contrast UI text is recognized more reliably this way.
func Preprocess(img image.Image) image.Image {
	gray := effect.Grayscale(img)
	return adjust.Contrast(gray, contrastBoost)
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode preprocessed image: %w", err)
	}
	return buf.Bytes(), nil
}
