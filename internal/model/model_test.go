package model

import (
	"encoding/json"
	"testing"
)

func TestRect_Union(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{"disjoint", Rect{0, 0, 10, 10}, Rect{20, 5, 10, 10}, Rect{0, 0, 30, 15}},
		{"contained", Rect{0, 0, 50, 50}, Rect{10, 10, 5, 5}, Rect{0, 0, 50, 50}},
		{"same", Rect{3, 4, 5, 6}, Rect{3, 4, 5, 6}, Rect{3, 4, 5, 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Union(tt.b); got != tt.want {
				t.Errorf("Union: got %+v, want %+v", got, tt.want)
			}
			if got := tt.b.Union(tt.a); got != tt.want {
				t.Errorf("Union (swapped): got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRect_Within(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"inside", Rect{10, 10, 20, 20}, true},
		{"touches edges", Rect{0, 0, 100, 50}, true},
		{"past right", Rect{90, 0, 11, 10}, false},
		{"past bottom", Rect{0, 45, 10, 6}, false},
		{"negative x", Rect{-1, 0, 10, 10}, false},
		{"zero width", Rect{0, 0, 0, 10}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Within(100, 50); got != tt.want {
				t.Errorf("Within(100,50) for %+v: got %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestRawWord_UnmarshalJSON(t *testing.T) {
	t.Run("flat", func(t *testing.T) {
		var w RawWord
		if err := json.Unmarshal([]byte(`{"text":"Hi","x0":1,"y0":2,"x1":3,"y1":4}`), &w); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		if w.X0 == nil || *w.X0 != 1 || w.Y1 == nil || *w.Y1 != 4 {
			t.Errorf("unexpected corners: %+v", w)
		}
	})

	t.Run("bbox", func(t *testing.T) {
		var w RawWord
		data := `{"text":"Hi","confidence":91.5,"bbox":{"x0":5,"y0":6,"x1":7,"y1":8}}`
		if err := json.Unmarshal([]byte(data), &w); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		if w.X0 == nil || *w.X0 != 5 || w.X1 == nil || *w.X1 != 7 {
			t.Errorf("unexpected corners: %+v", w)
		}
		if w.Confidence != 91.5 {
			t.Errorf("Confidence: got %v, want 91.5", w.Confidence)
		}
	})

	t.Run("missing corner", func(t *testing.T) {
		var w RawWord
		if err := json.Unmarshal([]byte(`{"text":"Hi","x0":1,"y0":2,"x1":3}`), &w); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		if w.Y1 != nil {
			t.Errorf("Y1 should be nil, got %v", *w.Y1)
		}
	})
}

func TestLineGroup_Merged(t *testing.T) {
	g := LineGroup{
		RepresentativeY: 0,
		Items: []Issue{
			{BoundingBox: Rect{0, 0, 10, 10}, Type: IssueSpacing, Message: "first", Severity: SeverityLow},
			{BoundingBox: Rect{20, 5, 10, 10}, Type: IssueSpacing, Message: "second", Severity: SeverityLow},
		},
		MergedBox: Rect{0, 0, 30, 15},
	}

	got := g.Merged()
	if got.Message != "first" {
		t.Errorf("Message: got %q, want first member's message", got.Message)
	}
	if got.BoundingBox != g.MergedBox {
		t.Errorf("BoundingBox: got %+v, want %+v", got.BoundingBox, g.MergedBox)
	}
	if g.Items[0].BoundingBox != (Rect{0, 0, 10, 10}) {
		t.Error("Merged must not modify the group's items")
	}
}
