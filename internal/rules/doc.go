// Package rules implements the visual-design detectors of the audit.
//
// Each detector is a pure function of a list of normalized text boxes and a
// single threshold. Detectors hold no state and never depend on each other's
// output, so callers may run them in any order or in parallel.
//
// Every comparison against a threshold is strict: a value exactly equal to
// the threshold is never flagged.
//
// # Detectors
//
//   - TextSize: text shorter than the minimum legible height
//   - TargetSize: candidate tap targets narrower or shorter than the minimum
//   - HeadingHierarchy: ordering of large text by height
//   - Spacing: vertical gaps between consecutive lines that are too tight
//   - Alignment: lines whose boxes start at inconsistent x positions
//
// Because only rendered pixels are available, TargetCandidates uses the
// length of the detected text as a stand-in for "this is a control".
package rules
