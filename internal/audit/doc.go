// Package audit sequences one screenshot audit.
//
// An Auditor takes encoded image bytes and produces a Report:
//
//  1. detect words through the Detector port
//  2. normalize them into text boxes
//  3. run the five rule detectors (in parallel, they share no state)
//  4. sample contrast for every box, one box at a time
//  5. merge each issue category by line
//
// Detection problems never fail an audit: an empty upload, an undecodable
// image or a detector error all lead to an empty report. Only failures after
// text was found (for example the image cannot be opened for pixel sampling)
// are returned as errors, and then no partial report is produced.
package audit
