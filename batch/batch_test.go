// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package batch

import (
	"math"
	"testing"

	"github.com/gogpu/memgraph/graph"
	"github.com/gogpu/memgraph/style"
)

func node(id string, typ graph.NodeType, x, y float64) *graph.Node {
	return &graph.Node{ID: id, Type: typ, X: x, Y: y, Size: 20}
}

func ids(rs []Resolved) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Edge.ID
	}
	return out
}

func TestCategorizeSplitsByType(t *testing.T) {
	st := style.Default()
	nodes := []*graph.Node{
		node("d1", graph.NodeDocument, 100, 100),
		node("d2", graph.NodeDocument, 300, 100),
		node("m1", graph.NodeMemory, 200, 200),
		node("m2", graph.NodeMemory, 250, 250),
	}
	lookup := graph.NewLookup(nodes)
	edges := []graph.Edge{
		{ID: "dm", Source: graph.ID("d1"), Target: graph.ID("m1"), Type: graph.EdgeDocMemory, Visual: graph.VisualProps{Opacity: 1}},
		{ID: "dd", Source: graph.ID("d1"), Target: graph.Ref(nodes[1]), Type: graph.EdgeDocDoc, Similarity: 0.9},
		{ID: "v", Source: graph.ID("m1"), Target: graph.ID("m2"), Type: graph.EdgeVersion, Relation: graph.RelationUpdates},
		{ID: "dm2", Source: graph.ID("d2"), Target: graph.ID("m2"), Type: graph.EdgeDocMemory, Visual: graph.VisualProps{Opacity: 1}},
		{ID: "missing", Source: graph.ID("d1"), Target: graph.ID("nope"), Type: graph.EdgeDocMemory},
		{ID: "weird", Source: graph.ID("d1"), Target: graph.ID("d2"), Type: "other"},
	}
	vp := graph.Viewport{Zoom: 1, Width: 800, Height: 600}

	b := Categorize(edges, lookup, vp, &st)

	if got := ids(b.DocMemory); len(got) != 2 || got[0] != "dm" || got[1] != "dm2" {
		t.Errorf("DocMemory = %v, want [dm dm2]", got)
	}
	if got := ids(b.DocDoc); len(got) != 1 || got[0] != "dd" {
		t.Errorf("DocDoc = %v, want [dd]", got)
	}
	if got := ids(b.Version); len(got) != 1 || got[0] != "v" {
		t.Errorf("Version = %v, want [v]", got)
	}
	if b.Unresolved != 2 {
		t.Errorf("Unresolved = %d, want 2", b.Unresolved)
	}
	if b.Len() != 4 {
		t.Errorf("Len() = %d, want 4", b.Len())
	}
	r := b.DocMemory[0]
	if r.SX != 100 || r.TY != 200 || r.Target != nodes[2] {
		t.Errorf("resolved geometry = %+v", r)
	}
}

func TestCategorizeViewportCull(t *testing.T) {
	st := style.Default()
	vp := graph.Viewport{Zoom: 1, Width: 800, Height: 600}
	tests := []struct {
		name   string
		s, d   [2]float64
		culled bool
	}{
		{"both visible", [2]float64{10, 10}, [2]float64{20, 20}, false},
		{"both far left", [2]float64{-200, 10}, [2]float64{-150, 500}, true},
		{"both far right", [2]float64{950, 10}, [2]float64{1000, 500}, true},
		{"both far above", [2]float64{10, -101}, [2]float64{700, -500}, true},
		{"both far below", [2]float64{10, 800}, [2]float64{700, 701}, true},
		{"inside margin", [2]float64{-99, 10}, [2]float64{-50, 10}, false},
		{"spans left to right", [2]float64{-500, 300}, [2]float64{1500, 300}, false},
		{"left and below", [2]float64{-500, 300}, [2]float64{300, 1500}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := node("a", graph.NodeDocument, tt.s[0], tt.s[1])
			c := node("c", graph.NodeDocument, tt.d[0], tt.d[1])
			edges := []graph.Edge{{ID: "e", Source: graph.ID("a"), Target: graph.ID("c"), Type: graph.EdgeDocDoc}}
			b := Categorize(edges, graph.NewLookup([]*graph.Node{a, c}), vp, &st)
			if got := b.Culled == 1; got != tt.culled {
				t.Errorf("culled = %v, want %v", got, tt.culled)
			}
			if !tt.culled && len(b.DocDoc) != 1 {
				t.Errorf("DocDoc = %d edges, want 1", len(b.DocDoc))
			}
		})
	}
}

func TestCategorizeLOD(t *testing.T) {
	st := style.Default()
	nodes := []*graph.Node{node("d", graph.NodeDocument, 10, 10), node("m", graph.NodeMemory, 20, 20), node("d2", graph.NodeDocument, 30, 30)}
	edges := []graph.Edge{
		{ID: "faint", Source: graph.ID("d"), Target: graph.ID("m"), Type: graph.EdgeDocMemory, Visual: graph.VisualProps{Opacity: 0.2}},
		{ID: "solid", Source: graph.ID("d"), Target: graph.ID("m"), Type: graph.EdgeDocMemory, Visual: graph.VisualProps{Opacity: 0.3}},
		{ID: "faint-dd", Source: graph.ID("d"), Target: graph.ID("d2"), Type: graph.EdgeDocDoc, Visual: graph.VisualProps{Opacity: 0.1}},
	}
	lookup := graph.NewLookup(nodes)

	far := Categorize(edges, lookup, graph.Viewport{Zoom: 0.29, Width: 800, Height: 600}, &st)
	if got := ids(far.DocMemory); len(got) != 1 || got[0] != "solid" {
		t.Errorf("DocMemory below LOD = %v, want [solid]", got)
	}
	if len(far.DocDoc) != 1 {
		t.Errorf("LOD must not drop doc-doc edges, got %d", len(far.DocDoc))
	}

	near := Categorize(edges, lookup, graph.Viewport{Zoom: 0.3, Width: 800, Height: 600}, &st)
	if len(near.DocMemory) != 2 {
		t.Errorf("DocMemory at LOD boundary = %d, want 2", len(near.DocMemory))
	}
}

func TestCategorizeNonFinite(t *testing.T) {
	st := style.Default()
	nodes := []*graph.Node{node("a", graph.NodeMemory, math.NaN(), 0), node("b", graph.NodeMemory, 0, 0)}
	edges := []graph.Edge{{ID: "e", Source: graph.ID("a"), Target: graph.ID("b"), Type: graph.EdgeVersion}}
	b := Categorize(edges, graph.NewLookup(nodes), graph.Viewport{Zoom: 1, Width: 10, Height: 10}, &st)
	if b.Len() != 0 || b.Unresolved != 1 {
		t.Errorf("Len() = %d, Unresolved = %d, want 0, 1", b.Len(), b.Unresolved)
	}

	b = Categorize(edges, graph.NewLookup(nodes), graph.Viewport{Zoom: math.NaN()}, &st)
	if b.Len() != 0 {
		t.Errorf("invalid viewport should draw nothing, got %d", b.Len())
	}
}

func TestSimilarityTier(t *testing.T) {
	st := style.Default()
	tests := []struct {
		sim  float64
		want Tier
	}{
		{0, TierWeak},
		{0.725, TierWeak},
		{0.7251, TierMedium},
		{0.85, TierMedium},
		{0.8501, TierStrong},
		{1, TierStrong},
	}
	for _, tt := range tests {
		if got := SimilarityTier(tt.sim, &st); got != tt.want {
			t.Errorf("SimilarityTier(%v) = %v, want %v", tt.sim, got, tt.want)
		}
	}
}
