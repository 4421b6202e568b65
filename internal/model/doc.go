// Package model defines the request-scoped records that flow through an audit.
//
// A raw detection (RawWord) is normalized into a TextBox, rule detectors and
// the contrast sampler turn TextBoxes into Issues, and the line grouper merges
// Issues into LineGroups for reporting. Nothing in this package holds state
// across audits; values are created for one audit and then discarded.
//
// # Coordinate System
//
// All rectangles use image pixel coordinates with (0,0) at the top-left
// corner, X increasing rightward and Y increasing downward. A Rect covers
// the half-open ranges [X, X+W) and [Y, Y+H).
package model
