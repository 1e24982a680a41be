// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package frame

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/memgraph/batch"
	"github.com/gogpu/memgraph/graph"
	"github.com/gogpu/memgraph/style"
)

// Edge opacities when not dimmed.
const (
	docMemoryAlpha  = 0.9
	versionAlpha    = 0.8
	versionHalo     = 0.3
	docDocAlphaGain = 0.5
)

var docDocDash = []float64{10, 5}

func (r *Renderer) drawEdges(p *pen, in *Input, lod bool) {
	b := in.Batches
	selected := in.Interaction.SelectedNodeID
	dimmed := 1 - in.Dim*r.style.EdgeDim
	alpha := func(e *batch.Resolved, normal float64) float64 {
		if selected != "" && e.Source.ID != selected && e.Target.ID != selected {
			return dimmed
		}
		return normal
	}

	if len(b.DocMemory) > 0 {
		p.line(1, gg.LineCapRound)
		for i := range b.DocMemory {
			e := &b.DocMemory[i]
			p.alpha = alpha(e, docMemoryAlpha)
			r.edgePath(p, e, lod)
			p.stroke(r.style.Connection.Memory)
		}
	}

	if len(b.DocDoc) > 0 {
		var dash []float64
		if !lod {
			dash = docDocDash
		}
		for i := range b.DocDoc {
			e := &b.DocDoc[i]
			sim := e.Edge.Similarity
			p.line(math.Max(1, sim*2), gg.LineCapRound, dash...)
			p.alpha = alpha(e, math.Max(0, sim*docDocAlphaGain))
			r.edgePath(p, e, lod)
			p.stroke(r.tierColor(sim))
		}
	}

	for i := range b.Version {
		e := &b.Version[i]
		a := alpha(e, versionAlpha)
		c := r.relationColor(e.Edge.Relation)
		dc := p.dc

		p.line(3, gg.LineCapRound)
		p.alpha = a * versionHalo
		dc.MoveTo(e.SX, e.SY)
		dc.LineTo(e.TX, e.TY)
		p.stroke(c)

		p.line(1, gg.LineCapRound)
		p.alpha = a
		dc.MoveTo(e.SX, e.SY)
		dc.LineTo(e.TX, e.TY)
		p.stroke(c)

		zoom := in.Viewport.Zoom
		arrow := ArrowHead(e.SX, e.SY, e.TX, e.TY, e.Target.Size*zoom/2, zoom)
		p.line(math.Max(1, 1.5*zoom), gg.LineCapRound)
		dc.MoveTo(arrow.Tip.X, arrow.Tip.Y)
		dc.LineTo(arrow.Left.X, arrow.Left.Y)
		dc.MoveTo(arrow.Tip.X, arrow.Tip.Y)
		dc.LineTo(arrow.Right.X, arrow.Right.Y)
		p.stroke(c)
	}
}

// edgePath adds a doc-memory or doc-doc edge to the current path: straight
// under LOD or for zero-length edges, a quadratic curve otherwise.
func (r *Renderer) edgePath(p *pen, e *batch.Resolved, lod bool) {
	dc := p.dc
	dc.MoveTo(e.SX, e.SY)
	if !lod {
		d := math.Hypot(e.TX-e.SX, e.TY-e.SY)
		if cx, cy, ok := control(e.SX, e.SY, e.TX, e.TY, bend(e.Edge.Type, d)); ok {
			dc.QuadraticTo(cx, cy, e.TX, e.TY)
			return
		}
	}
	dc.LineTo(e.TX, e.TY)
}

func (r *Renderer) tierColor(sim float64) style.Color {
	switch batch.SimilarityTier(sim, &r.style) {
	case batch.TierStrong:
		return r.style.Connection.Strong
	case batch.TierMedium:
		return r.style.Connection.Medium
	default:
		return r.style.Connection.Weak
	}
}

func (r *Renderer) relationColor(rel graph.RelationType) style.Color {
	switch rel {
	case graph.RelationExtends:
		return r.style.Relations.Extends
	case graph.RelationDerives:
		return r.style.Relations.Derives
	default:
		return r.style.Relations.Updates
	}
}
