package grouping

import (
	"sort"

	"github.com/Dadaauditux/ux-audit-tool/internal/model"
)

// DefaultLineThresholdPx is the default maximum vertical distance between an
// issue and a group's representative y.
const DefaultLineThresholdPx = 20

// GroupByLine clusters issues into line groups. The input slice is not
// modified.
func GroupByLine(issues []model.Issue, yThreshold int) []model.LineGroup {
	sorted := make([]model.Issue, len(issues))
	copy(sorted, issues)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].BoundingBox.Y < sorted[j].BoundingBox.Y
	})

	groups := make([]model.LineGroup, 0)
	for _, is := range sorted {
		y := is.BoundingBox.Y
		idx := -1
		for i := range groups {
			if abs(groups[i].RepresentativeY-y) <= yThreshold {
				idx = i
				break
			}
		}
		if idx < 0 {
			groups = append(groups, model.LineGroup{RepresentativeY: y})
			idx = len(groups) - 1
		}
		groups[idx].Items = append(groups[idx].Items, is)
	}

	for i := range groups {
		merged := groups[i].Items[0].BoundingBox
		for _, is := range groups[i].Items[1:] {
			merged = merged.Union(is.BoundingBox)
		}
		groups[i].MergedBox = merged
	}

	return groups
}

// MergeByLine groups issues and returns one merged record per group, in
// group order.
func MergeByLine(issues []model.Issue, yThreshold int) []model.Issue {
	groups := GroupByLine(issues, yThreshold)
	out := make([]model.Issue, 0, len(groups))
	for _, g := range groups {
		out = append(out, g.Merged())
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
