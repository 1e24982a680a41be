// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package graph

import (
	"encoding/json"
	"math"
	"testing"
	"time"
)

func TestEndpointResolve(t *testing.T) {
	a := &Node{ID: "a"}
	b := &Node{ID: "b"}
	lookup := NewLookup([]*Node{a, b, nil})

	stale := &Node{ID: "gone"}
	tests := []struct {
		name string
		ep   Endpoint
		want *Node
	}{
		{"by id", ID("a"), a},
		{"by ref", Ref(b), b},
		{"missing id", ID("zzz"), nil},
		{"stale ref", Ref(stale), nil},
		{"zero", Endpoint{}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ep.Resolve(lookup); got != tt.want {
				t.Errorf("Resolve() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEndpointJSON(t *testing.T) {
	var e Edge
	in := `{"id":"e1","source":"d1","target":{"id":"m1","x":3},"similarity":0.5,"edgeType":"doc-memory","visualProps":{"opacity":0.4}}`
	if err := json.Unmarshal([]byte(in), &e); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if e.Source.Key() != "d1" || e.Target.Key() != "m1" {
		t.Errorf("endpoints = %q, %q, want d1, m1", e.Source, e.Target)
	}
	if e.Type != EdgeDocMemory {
		t.Errorf("Type = %q, want %q", e.Type, EdgeDocMemory)
	}
	out, err := json.Marshal(Ref(&Node{ID: "x"}))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(out) != `"x"` {
		t.Errorf("Marshal(Ref) = %s, want %q", out, `"x"`)
	}
	if err := json.Unmarshal([]byte(`42`), &e.Source); err == nil {
		t.Error("Unmarshal(42) error = nil, want error")
	}
}

func TestViewportRoundTrip(t *testing.T) {
	v := Viewport{PanX: 40, PanY: -10, Zoom: 2}
	sx, sy := v.ToScreen(5, 7)
	if sx != 50 || sy != 4 {
		t.Fatalf("ToScreen(5, 7) = (%v, %v), want (50, 4)", sx, sy)
	}
	x, y := v.ToWorld(sx, sy)
	if x != 5 || y != 7 {
		t.Errorf("ToWorld() = (%v, %v), want (5, 7)", x, y)
	}
	if x, y := (Viewport{}).ToWorld(3, 3); x != 0 || y != 0 {
		t.Errorf("zero zoom ToWorld() = (%v, %v), want (0, 0)", x, y)
	}
}

func TestViewportValid(t *testing.T) {
	if !(Viewport{Zoom: 1}).Valid() {
		t.Error("Valid() = false for unit zoom")
	}
	for _, v := range []Viewport{{}, {Zoom: -1}, {Zoom: math.NaN()}, {Zoom: 1, PanX: math.Inf(1)}} {
		if v.Valid() {
			t.Errorf("Valid(%+v) = true, want false", v)
		}
	}
}

func TestMemoryStatus(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	at := func(d time.Duration) *time.Time { ts := now.Add(d); return &ts }

	tests := []struct {
		name    string
		m       MemoryData
		want    MemoryStatus
		wantNew bool
	}{
		{"default", MemoryData{CreatedAt: now.Add(-72 * time.Hour)}, StatusDefault, false},
		{"new", MemoryData{CreatedAt: now.Add(-time.Hour)}, StatusNew, true},
		{"flag forgotten", MemoryData{IsForgotten: true, CreatedAt: now}, StatusForgotten, false},
		{"expired", MemoryData{ForgetAfter: at(-time.Minute)}, StatusForgotten, false},
		{"expiring", MemoryData{ForgetAfter: at(48 * time.Hour)}, StatusExpiring, false},
		{"expiring and new", MemoryData{ForgetAfter: at(time.Hour), CreatedAt: now}, StatusExpiring, true},
		{"far expiry", MemoryData{ForgetAfter: at(30 * 24 * time.Hour)}, StatusDefault, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.Status(now); got != tt.want {
				t.Errorf("Status() = %v, want %v", got, tt.want)
			}
			if got := tt.m.IsNew(now); got != tt.wantNew {
				t.Errorf("IsNew() = %v, want %v", got, tt.wantNew)
			}
		})
	}
}

func TestDocumentKind(t *testing.T) {
	tests := map[string]DocumentKind{
		"pdf": KindPDF, "PDF": KindPDF, "markdown": KindMarkdown, "md": KindMarkdown,
		"docx": KindWord, "rtf": KindRTF, "csv": KindCSV, "json": KindJSON,
		"txt": KindText, "": KindText, "webpage": KindText,
	}
	for in, want := range tests {
		d := DocumentData{Type: in}
		if got := d.Kind(); got != want {
			t.Errorf("Kind(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestHighlightSet(t *testing.T) {
	if (Interaction{}).HighlightSet() != nil {
		t.Error("HighlightSet() of empty interaction should be nil")
	}
	set := Interaction{HighlightDocumentIDs: []string{"a", "b", "a"}}.HighlightSet()
	if len(set) != 2 {
		t.Errorf("len(HighlightSet()) = %d, want 2", len(set))
	}
}
