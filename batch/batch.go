// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package batch resolves edge endpoints, culls edges that cannot be seen
// and groups the survivors by type so the renderer can set stroke state once
// per group.
package batch

import (
	"github.com/gogpu/memgraph/graph"
	"github.com/gogpu/memgraph/style"
)

// Resolved is an edge whose endpoints were found in the current pass,
// with their screen positions.
type Resolved struct {
	Edge           *graph.Edge
	Source, Target *graph.Node
	SX, SY         float64
	TX, TY         float64
}

// Batches holds the visible edges of one frame in input order per type.
type Batches struct {
	DocMemory []Resolved
	DocDoc    []Resolved
	Version   []Resolved

	// Unresolved counts edges dropped for a missing endpoint, unknown type
	// or non-finite coordinates. Culled counts viewport and LOD drops.
	Unresolved int
	Culled     int
}

// Len returns the number of edges that will be drawn.
func (b *Batches) Len() int {
	return len(b.DocMemory) + len(b.DocDoc) + len(b.Version)
}

// Categorize splits edges into batches in a single pass.
//
// An edge is dropped when an endpoint does not resolve, when both endpoints
// lie beyond st.EdgeCullMargin on the same side of the viewport, or, below
// st.LODZoom, when it is a doc-memory edge whose advisory opacity is below
// st.LODEdgeOpacity. An edge with one endpoint on each side of the viewport
// is kept.
func Categorize(edges []graph.Edge, lookup graph.Lookup, vp graph.Viewport, st *style.Style) Batches {
	var b Batches
	if !vp.Valid() {
		b.Unresolved = len(edges)
		return b
	}
	lod := vp.Zoom < st.LODZoom
	m := st.EdgeCullMargin
	minX, minY := -m, -m
	maxX, maxY := vp.Width+m, vp.Height+m

	for i := range edges {
		e := &edges[i]
		src, dst := e.Source.Resolve(lookup), e.Target.Resolve(lookup)
		if src == nil || dst == nil {
			b.Unresolved++
			continue
		}
		sx, sy := vp.ToScreen(src.X, src.Y)
		tx, ty := vp.ToScreen(dst.X, dst.Y)
		if !graph.Finite(sx, sy, tx, ty) {
			b.Unresolved++
			continue
		}
		if (sx < minX && tx < minX) || (sx > maxX && tx > maxX) ||
			(sy < minY && ty < minY) || (sy > maxY && ty > maxY) {
			b.Culled++
			continue
		}

		r := Resolved{Edge: e, Source: src, Target: dst, SX: sx, SY: sy, TX: tx, TY: ty}
		switch e.Type {
		case graph.EdgeDocMemory:
			if lod && e.Visual.Opacity < st.LODEdgeOpacity {
				b.Culled++
				continue
			}
			b.DocMemory = append(b.DocMemory, r)
		case graph.EdgeDocDoc:
			b.DocDoc = append(b.DocDoc, r)
		case graph.EdgeVersion:
			b.Version = append(b.Version, r)
		default:
			b.Unresolved++
		}
	}
	return b
}

// Tier is a doc-doc similarity band.
type Tier uint8

// Similarity tiers.
const (
	TierWeak Tier = iota
	TierMedium
	TierStrong
)

func (t Tier) String() string {
	switch t {
	case TierStrong:
		return "strong"
	case TierMedium:
		return "medium"
	default:
		return "weak"
	}
}

// SimilarityTier bands a similarity score. Boundaries are exclusive: a
// score equal to st.SimilarityStrong is medium.
func SimilarityTier(sim float64, st *style.Style) Tier {
	switch {
	case sim > st.SimilarityStrong:
		return TierStrong
	case sim > st.SimilarityMedium:
		return TierMedium
	default:
		return TierWeak
	}
}
