// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package snapshot

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/memgraph/graph"
)

const sample = `{
  "nodes": [
    {"id": "d1", "type": "document", "x": 0, "y": 0, "size": 50,
     "document": {"id": "d1", "type": "pdf"}},
    {"id": "m1", "type": "memory", "x": 120, "y": 40, "size": 30,
     "memory": {"id": "m1", "isLatest": true}}
  ],
  "edges": [
    {"id": "e1", "source": "d1", "target": {"id": "m1"}, "similarity": 1,
     "edgeType": "doc-memory", "visualProps": {"opacity": 0.8}}
  ],
  "viewport": {"panX": 400, "panY": 300, "width": 800, "height": 600},
  "interaction": {"selectedNodeId": "m1", "highlightDocumentIds": ["d1"]}
}`

func TestDecode(t *testing.T) {
	f, err := Decode(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(f.Nodes) != 2 || len(f.Edges) != 1 {
		t.Fatalf("Decode() = %d nodes, %d edges; want 2, 1", len(f.Nodes), len(f.Edges))
	}
	if f.Viewport.Zoom != 1 || f.DPR != 1 {
		t.Errorf("defaults zoom = %v, dpr = %v; want 1, 1", f.Viewport.Zoom, f.DPR)
	}
	if got := f.Nodes[0].Document.Kind(); got != graph.KindPDF {
		t.Errorf("document kind = %q, want pdf", got)
	}
	if got := f.Edges[0].Target.Key(); got != "m1" {
		t.Errorf("target = %q, want m1", got)
	}

	p := f.Props()
	if p.Interaction.SelectedNodeID != "m1" || p.Viewport.Width != 800 || p.DPR != 1 {
		t.Errorf("Props() = %+v", p)
	}
}

func TestDecodeInvalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"missing id", `{"nodes": [{"type": "memory"}]}`},
		{"bad node type", `{"nodes": [{"id": "a", "type": "image"}]}`},
		{"negative size", `{"nodes": [{"id": "a", "type": "memory", "size": -1}]}`},
		{"duplicate id", `{"nodes": [{"id": "a", "type": "memory"}, {"id": "a", "type": "document"}]}`},
		{"bad edge type", `{"edges": [{"id": "e", "source": "a", "target": "b", "edgeType": "link"}]}`},
		{"missing endpoint", `{"edges": [{"id": "e", "source": "a", "edgeType": "version"}]}`},
		{"similarity range", `{"edges": [{"id": "e", "source": "a", "target": "b", "edgeType": "doc-doc", "similarity": 2}]}`},
		{"bad relation", `{"edges": [{"id": "e", "source": "a", "target": "b", "edgeType": "version", "relationType": "forks"}]}`},
		{"negative zoom", `{"viewport": {"zoom": -1}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.in))
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Decode() error = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestDecodeSyntax(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"nodes": [`))
	if err == nil || errors.Is(err, ErrInvalid) {
		t.Errorf("Decode() error = %v, want a decode error", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.json")
	if err := os.WriteFile(path, []byte(sample), 0o600); err != nil {
		t.Fatal(err)
	}
	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(f.Nodes) != 2 {
		t.Errorf("Load() nodes = %d, want 2", len(f.Nodes))
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want ErrNotExist", err)
	}
}
