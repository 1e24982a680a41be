// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package snapshot reads positioned graph fixtures for the memgraph tool.
//
// A snapshot is a JSON object holding nodes, edges and optionally the
// viewport, interaction state and device pixel ratio of one frame.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/gogpu/memgraph"
	"github.com/gogpu/memgraph/graph"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("snapshot: invalid graph")

// File is a decoded snapshot.
type File struct {
	Nodes       []*graph.Node     `json:"nodes"`
	Edges       []graph.Edge      `json:"edges"`
	Viewport    graph.Viewport    `json:"viewport"`
	Interaction graph.Interaction `json:"interaction"`
	DPR         float64           `json:"dpr,omitempty"`
}

// Load reads and validates the snapshot at path.
func Load(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("snapshot: failed to open %s: %w", path, err)
	}
	defer fh.Close()

	f, err := Decode(fh)
	if err != nil {
		return nil, fmt.Errorf("snapshot: %s: %w", path, err)
	}
	return f, nil
}

// Decode parses a snapshot, fills defaults and validates it. A missing zoom
// or device pixel ratio defaults to 1.
func Decode(r io.Reader) (*File, error) {
	var f File
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if f.Viewport.Zoom == 0 {
		f.Viewport.Zoom = 1
	}
	if f.DPR == 0 {
		f.DPR = 1
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks node and edge shape. Edges whose endpoints are missing
// from Nodes are allowed; the renderer skips them.
func (f *File) Validate() error {
	err := validation.ValidateStruct(f,
		validation.Field(&f.Nodes, validation.Each(validation.By(validNode)), validation.By(uniqueIDs)),
		validation.Field(&f.Edges, validation.Each(validation.By(validEdge))),
		validation.Field(&f.Viewport, validation.By(validViewport)),
		validation.Field(&f.DPR, validation.Min(0.0)),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// Props returns the snapshot as engine input.
func (f *File) Props() memgraph.Props {
	return memgraph.Props{
		Nodes:       f.Nodes,
		Edges:       f.Edges,
		Viewport:    f.Viewport,
		Interaction: f.Interaction,
		DPR:         f.DPR,
	}
}

func validNode(v any) error {
	n, _ := v.(*graph.Node)
	if n == nil {
		return errors.New("node is null")
	}
	return validation.ValidateStruct(n,
		validation.Field(&n.ID, validation.Required),
		validation.Field(&n.Type, validation.Required, validation.In(graph.NodeDocument, graph.NodeMemory)),
		validation.Field(&n.Size, validation.Min(0.0)),
	)
}

func uniqueIDs(v any) error {
	nodes, _ := v.([]*graph.Node)
	seen := make(map[string]struct{}, len(nodes))
	for _, n := range nodes {
		if n == nil {
			continue
		}
		if _, dup := seen[n.ID]; dup {
			return fmt.Errorf("duplicate node id %q", n.ID)
		}
		seen[n.ID] = struct{}{}
	}
	return nil
}

func validEdge(v any) error {
	e, ok := v.(graph.Edge)
	if !ok {
		return errors.New("not an edge")
	}
	if e.Source.Key() == "" || e.Target.Key() == "" {
		return fmt.Errorf("edge %q: source and target are required", e.ID)
	}
	return validation.ValidateStruct(&e,
		validation.Field(&e.Type, validation.Required, validation.In(graph.EdgeDocMemory, graph.EdgeDocDoc, graph.EdgeVersion)),
		validation.Field(&e.Similarity, validation.Min(0.0), validation.Max(1.0)),
		validation.Field(&e.Relation, validation.In(graph.RelationUpdates, graph.RelationExtends, graph.RelationDerives)),
	)
}

func validViewport(v any) error {
	vp, _ := v.(graph.Viewport)
	if !vp.Valid() {
		return errors.New("zoom must be positive and pan finite")
	}
	return validation.ValidateStruct(&vp,
		validation.Field(&vp.Width, validation.Min(0.0)),
		validation.Field(&vp.Height, validation.Min(0.0)),
	)
}
