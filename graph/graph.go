// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package graph defines the memory-graph data model consumed by the
// renderer: positioned document and memory nodes, the edges between them,
// the viewport transform and the interaction state supplied by the host.
//
// The renderer treats every value here as a read-only snapshot. Hosts own
// the data and may replace or mutate it between frames, never during one.
package graph

import (
	"encoding/json"
	"fmt"
	"math"
)

// NodeType distinguishes document nodes from memory nodes.
type NodeType string

// Node types.
const (
	NodeDocument NodeType = "document"
	NodeMemory   NodeType = "memory"
)

// EdgeType classifies an edge. It selects the batch, stroke style and
// curvature used to draw it.
type EdgeType string

// Edge types.
const (
	EdgeDocMemory EdgeType = "doc-memory"
	EdgeDocDoc    EdgeType = "doc-doc"
	EdgeVersion   EdgeType = "version"
)

// RelationType is the relation carried by a version edge.
type RelationType string

// Relation types.
const (
	RelationUpdates RelationType = "updates"
	RelationExtends RelationType = "extends"
	RelationDerives RelationType = "derives"
)

// Node is a positioned vertex in world coordinates.
//
// Exactly one of Document and Memory is expected to be set, matching Type.
// X, Y and Size should be finite; nodes with non-finite geometry are culled
// rather than drawn.
type Node struct {
	ID         string        `json:"id"`
	Type       NodeType      `json:"type"`
	X          float64       `json:"x"`
	Y          float64       `json:"y"`
	Size       float64       `json:"size"`
	IsHovered  bool          `json:"isHovered,omitempty"`
	IsDragging bool          `json:"isDragging,omitempty"`
	Document   *DocumentData `json:"document,omitempty"`
	Memory     *MemoryData   `json:"memory,omitempty"`
}

// Finite reports whether the node's position and size are all finite.
func (n *Node) Finite() bool {
	return Finite(n.X, n.Y, n.Size)
}

// VisualProps holds advisory rendering hints computed by the graph builder.
// Only Opacity is consulted by the renderer (for LOD culling).
type VisualProps struct {
	Opacity       float64 `json:"opacity"`
	Thickness     float64 `json:"thickness,omitempty"`
	Glow          float64 `json:"glow,omitempty"`
	PulseDuration float64 `json:"pulseDuration,omitempty"`
}

// Edge connects two nodes.
type Edge struct {
	ID         string       `json:"id"`
	Source     Endpoint     `json:"source"`
	Target     Endpoint     `json:"target"`
	Similarity float64      `json:"similarity"`
	Type       EdgeType     `json:"edgeType"`
	Relation   RelationType `json:"relationType,omitempty"`
	Visual     VisualProps  `json:"visualProps"`
}

// Endpoint is one end of an edge: either a node ID or a direct node
// reference. The zero Endpoint refers to nothing.
type Endpoint struct {
	id   string
	node *Node
}

// ID returns an Endpoint that refers to a node by ID.
func ID(id string) Endpoint { return Endpoint{id: id} }

// Ref returns an Endpoint that refers to n directly.
func Ref(n *Node) Endpoint { return Endpoint{node: n} }

// Key returns the node ID this endpoint refers to, or "" for the zero value.
func (e Endpoint) Key() string {
	if e.node != nil {
		return e.node.ID
	}
	return e.id
}

// IsRef reports whether e holds a direct node reference.
func (e Endpoint) IsRef() bool { return e.node != nil }

// Resolve returns the node e refers to within the current pass, or nil.
// References are resolved through the lookup by ID as well, so a reference
// to a node that is no longer part of the graph resolves to nil.
func (e Endpoint) Resolve(l Lookup) *Node {
	key := e.Key()
	if key == "" {
		return nil
	}
	return l[key]
}

func (e Endpoint) String() string { return e.Key() }

// MarshalJSON encodes the endpoint as its node ID.
func (e Endpoint) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.Key())
}

// UnmarshalJSON accepts either a node ID string or a node object with an
// "id" field.
func (e *Endpoint) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		*e = ID(id)
		return nil
	}
	var obj struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("graph: endpoint must be an id or a node: %w", err)
	}
	*e = ID(obj.ID)
	return nil
}

// Lookup maps node IDs to nodes for one render pass.
type Lookup map[string]*Node

// NewLookup indexes nodes by ID. Later duplicates win. Nil nodes are skipped.
func NewLookup(nodes []*Node) Lookup {
	l := make(Lookup, len(nodes))
	for _, n := range nodes {
		if n != nil {
			l[n.ID] = n
		}
	}
	return l
}

// Finite reports whether every value is neither NaN nor infinite.
func Finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
