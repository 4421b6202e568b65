// Package ocr supplies the text-detection side of the audit: word boxes for
// an uploaded screenshot.
//
// Two detectors are provided:
//
//   - Tesseract: runs the Tesseract engine through gosseract/v2 on the image
//     bytes and reports one word per RIL_WORD box
//   - WordFile: replays word boxes recorded earlier (for example the
//     "words" array produced by tesseract.js), ignoring the image
//
// Both return model.RawWord values. Validation and clean-up happen later in
// the box normalizer, so detectors pass through whatever the engine produced.
//
// # Prerequisites
//
// Tesseract must be installed on the system for the Tesseract detector:
//   - Ubuntu/Debian: apt-get install tesseract-ocr tesseract-ocr-eng
//   - macOS: brew install tesseract
//
// Set TESSDATA_PREFIX or Tesseract.TessdataPrefix when the language data is
// not in the default location.
//
// # Pre-processing
//
// With Preprocess enabled the image is converted to grayscale and its
// contrast boosted (via bild) before recognition. Geometry is unchanged, so
// word coordinates still refer to the original screenshot.
package ocr
