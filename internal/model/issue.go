package model

// IssueType names the rule category an Issue belongs to.
type IssueType string

const (
	IssueTextSize         IssueType = "text-size"
	IssueButtonSize       IssueType = "button-size"
	IssueHeadingHierarchy IssueType = "heading-hierarchy"
	IssueSpacing          IssueType = "spacing"
	IssueAlignment        IssueType = "alignment"
	IssueContrast         IssueType = "contrast"
)

// Severity ranks how much an Issue is likely to hurt usability.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Issue is one flagged rule violation. Issues are never mutated after a
// detector creates them.
type Issue struct {
	BoundingBox Rect      `json:"boundingBox"`
	Type        IssueType `json:"type"`
	Message     string    `json:"message"`
	Severity    Severity  `json:"severity"`

	// Text is the detected text of the flagged box, when the detector keeps it.
	Text string `json:"text,omitempty"`

	// ContrastRatio is set on contrast issues, rounded to two decimals.
	ContrastRatio float64 `json:"contrastRatio,omitempty"`
}

// LineGroup is a cluster of same-category issues lying on roughly the same
// horizontal line.
type LineGroup struct {
	// RepresentativeY is the y of the first member. It is fixed when the
	// group is opened and never recomputed.
	RepresentativeY int     `json:"representativeY"`
	Items           []Issue `json:"items"`
	MergedBox       Rect    `json:"mergedBox"`
}

// Merged returns the group as a single reporting record: the metadata of the
// first member with the merged bounding box.
func (g LineGroup) Merged() Issue {
	if len(g.Items) == 0 {
		return Issue{BoundingBox: g.MergedBox}
	}
	out := g.Items[0]
	out.BoundingBox = g.MergedBox
	return out
}
