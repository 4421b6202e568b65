// Package contrast measures text/background contrast on a screenshot.
//
// Luminance and Ratio implement the WCAG 2.x relative-luminance and
// contrast-ratio formulas. Sampler walks a list of text boxes and, for each
// one, reads a representative text color and a representative background
// color through a PixelSource, then reports boxes whose ratio falls below the
// configured minimum.
//
// # Sampling
//
// The text color is the top-left pixel of the box. The background color is
// the top-left pixel of the 5-pixel band directly above the box (clamped to
// the top of the image). A single pixel per region keeps the cost per box
// constant, but it is sensitive to anti-aliasing and noise: a box whose
// corner pixel is background will report a ratio near 1.
//
// Boxes are sampled one after another. A failed extraction is logged and the
// box is skipped; it never fails the whole check.
package contrast
