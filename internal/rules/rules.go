package rules

import (
	"fmt"
	"math"
	"sort"
	"unicode/utf8"

	"github.com/Dadaauditux/ux-audit-tool/internal/model"
)

// Default thresholds, in pixels unless noted.
const (
	DefaultMinTextPx          = 16
	DefaultMinTargetPx        = 44
	DefaultMinHeadingPx       = 20
	DefaultMinSpacingPx       = 8
	DefaultAlignTolerancePx   = 5
	DefaultTargetMinTextChars = 3
)

// TextSize flags every box whose height is below minTextPx.
func TextSize(boxes []model.TextBox, minTextPx int) []model.Issue {
	issues := make([]model.Issue, 0)
	for _, b := range boxes {
		if b.H < minTextPx {
			issues = append(issues, model.Issue{
				BoundingBox: b.Rect,
				Type:        model.IssueTextSize,
				Message:     fmt.Sprintf("Text too small (%dpx < %dpx)", b.H, minTextPx),
				Severity:    model.SeverityHigh,
				Text:        b.Text,
			})
		}
	}
	return issues
}

// TargetCandidates keeps the boxes whose text is longer than minChars
// characters. These are treated as tappable controls by TargetSize.
func TargetCandidates(boxes []model.TextBox, minChars int) []model.TextBox {
	out := make([]model.TextBox, 0, len(boxes))
	for _, b := range boxes {
		if utf8.RuneCountInString(b.Text) > minChars {
			out = append(out, b)
		}
	}
	return out
}

// TargetSize flags candidates narrower or shorter than minTargetPx.
func TargetSize(candidates []model.TextBox, minTargetPx int) []model.Issue {
	issues := make([]model.Issue, 0)
	for _, b := range candidates {
		if b.W < minTargetPx || b.H < minTargetPx {
			issues = append(issues, model.Issue{
				BoundingBox: b.Rect,
				Type:        model.IssueButtonSize,
				Message:     fmt.Sprintf("Target too small (%dx%dpx, min %dpx)", b.W, b.H, minTargetPx),
				Severity:    model.SeverityHigh,
				Text:        b.Text,
			})
		}
	}
	return issues
}

// HeadingHierarchy checks boxes taller than minHeadingPx, ordered by height
// descending, and flags an entry that is shorter than the one after it.
//
// The ordering comes from a stable sort on the very height being compared, so
// the flag condition cannot hold and this detector reports nothing for any
// input. A reading-order hierarchy check would compare neighbours by Y
// instead.
func HeadingHierarchy(boxes []model.TextBox, minHeadingPx int) []model.Issue {
	headings := make([]model.TextBox, 0)
	for _, b := range boxes {
		if b.H > minHeadingPx {
			headings = append(headings, b)
		}
	}
	sort.SliceStable(headings, func(i, j int) bool {
		return headings[i].H > headings[j].H
	})

	issues := make([]model.Issue, 0)
	for i := 0; i+1 < len(headings); i++ {
		cur, next := headings[i], headings[i+1]
		if cur.H < next.H {
			issues = append(issues, model.Issue{
				BoundingBox: cur.Rect,
				Type:        model.IssueHeadingHierarchy,
				Message: fmt.Sprintf("Inconsistent heading hierarchy: %q (%dpx) < %q (%dpx)",
					cur.Text, cur.H, next.Text, next.H),
				Severity: model.SeverityMedium,
				Text:     cur.Text,
			})
		}
	}
	return issues
}

// Spacing walks the boxes top to bottom and flags a box when the vertical gap
// to the next one is positive but below minSpacingPx. Overlapping or touching
// boxes (gap <= 0) are not flagged.
func Spacing(boxes []model.TextBox, minSpacingPx int) []model.Issue {
	sorted := make([]model.TextBox, len(boxes))
	copy(sorted, boxes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Y < sorted[j].Y
	})

	issues := make([]model.Issue, 0)
	for i := 0; i+1 < len(sorted); i++ {
		cur, next := sorted[i], sorted[i+1]
		gap := next.Y - cur.Bottom()
		if gap > 0 && gap < minSpacingPx {
			issues = append(issues, model.Issue{
				BoundingBox: cur.Rect,
				Type:        model.IssueSpacing,
				Message:     fmt.Sprintf("Insufficient spacing (%dpx < %dpx)", gap, minSpacingPx),
				Severity:    model.SeverityLow,
				Text:        cur.Text,
			})
		}
	}
	return issues
}

// Alignment buckets boxes by y rounded to the nearest multiple of tolerancePx
// and flags every member of a bucket whose left edges spread by more than tolerancePx.
// Buckets are reported top to bottom; members keep their input order.
// A non-positive tolerance disables the check.
func Alignment(boxes []model.TextBox, tolerancePx int) []model.Issue {
	issues := make([]model.Issue, 0)
	if tolerancePx <= 0 {
		return issues
	}

	buckets := make(map[int][]model.TextBox)
	for _, b := range boxes {
		key := lineKey(b.Y, tolerancePx)
		buckets[key] = append(buckets[key], b)
	}

	keys := make([]int, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	for _, k := range keys {
		line := buckets[k]
		minX, maxX := line[0].X, line[0].X
		for _, b := range line[1:] {
			minX = min(minX, b.X)
			maxX = max(maxX, b.X)
		}
		if maxX-minX <= tolerancePx {
			continue
		}
		for _, b := range line {
			issues = append(issues, model.Issue{
				BoundingBox: b.Rect,
				Type:        model.IssueAlignment,
				Message:     "Inconsistent alignment on line",
				Severity:    model.SeverityLow,
				Text:        b.Text,
			})
		}
	}
	return issues
}

// lineKey rounds y to the nearest multiple of tolerance. Halves round up.
func lineKey(y, tolerance int) int {
	return int(math.Round(float64(y)/float64(tolerance))) * tolerance
}
