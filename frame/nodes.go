// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package frame

import (
	"math"
	"time"

	"github.com/gogpu/gg"

	"github.com/gogpu/memgraph/graph"
)

// Node opacities.
const (
	highlightAlpha = 0.9
	glowAlpha      = 0.6
	staleAlpha     = 0.4
)

var (
	highlightDash = []float64{6, 4}
	glowDash      = []float64{3, 3}
)

// bareMemory stands in for a memory node without payload.
var bareMemory = graph.MemoryData{IsLatest: true}

// nodeState is the per-node context shared by the shape painters.
type nodeState struct {
	n         *graph.Node
	x, y, s   float64 // screen center and size*zoom
	hovered   bool
	dragging  bool
	dim       bool    // a node is selected and it is not this one
	opacity   float64 // 1, or the dimmed opacity when dim
	lod       bool
	highlight bool
}

func (r *Renderer) drawNodes(p *pen, in *Input, lod bool) (drawn, culled int) {
	vp := in.Viewport
	selected := in.Interaction.SelectedNodeID
	highlights := in.Interaction.HighlightSet()
	now := in.Now
	if now.IsZero() {
		now = time.Now()
	}
	dimmed := 1 - in.Dim*r.style.NodeDim

	for _, n := range in.Nodes {
		if n == nil || !n.Finite() {
			culled++
			continue
		}
		sx, sy := vp.ToScreen(n.X, n.Y)
		s := n.Size * vp.Zoom
		margin := s + r.style.NodeCullMargin
		if sx < -margin || sx > vp.Width+margin || sy < -margin || sy > vp.Height+margin {
			culled++
			continue
		}

		ns := nodeState{
			n: n, x: sx, y: sy, s: s,
			hovered:  n.IsHovered || (in.HoveredID != "" && n.ID == in.HoveredID),
			dragging: n.IsDragging,
			dim:      selected != "" && n.ID != selected,
			opacity:  1,
			lod:      lod,
		}
		if ns.dim {
			ns.opacity = dimmed
		}

		if n.Type == graph.NodeDocument {
			ns.highlight = highlighted(n.Document, highlights)
			r.drawDocument(p, &ns)
		} else {
			m := n.Memory
			if m == nil {
				m = &bareMemory
			}
			r.drawMemory(p, &ns, m, now)
		}
		if !lod && (ns.hovered || ns.dragging) {
			r.drawGlow(p, &ns)
		}
		drawn++
	}
	return drawn, culled
}

func highlighted(d *graph.DocumentData, set map[string]struct{}) bool {
	if d == nil || len(set) == 0 {
		return false
	}
	if d.CustomID != "" {
		if _, ok := set[d.CustomID]; ok {
			return true
		}
	}
	_, ok := set[d.ID]
	return ok
}

func (r *Renderer) drawDocument(p *pen, ns *nodeState) {
	pal := r.style.Document
	dc := p.dc
	w, h := ns.s*docWidth, ns.s*docHeight
	left, top := ns.x-w/2, ns.y-h/2

	fill, border, width := pal.Primary, pal.Border, 1.0
	switch {
	case ns.dragging:
		fill, border, width = pal.Accent, pal.Glow, 3
	case ns.hovered:
		fill, border, width = pal.Secondary, pal.Accent, 2
	}
	radius := docRadius
	if ns.lod {
		radius = docRadiusLOD
	}

	p.alpha = ns.opacity
	p.line(width, gg.LineCapRound)
	dc.DrawRoundedRectangle(left, top, w, h, radius)
	p.fillStroke(fill, border)

	if !ns.lod && (ns.hovered || ns.dragging) {
		p.line(1, gg.LineCapRound)
		dc.DrawRoundedRectangle(left+1, top+1, w-2, h-2, radius-1)
		p.stroke(r.style.DocumentHighlight)
	}

	if ns.highlight {
		pad := (w + h) / 2 * padFraction
		p.alpha = highlightAlpha
		p.line(3, gg.LineCapRound, highlightDash...)
		dc.DrawRoundedRectangle(left-pad, top-pad, w+2*pad, h+2*pad, radius+6)
		p.stroke(r.style.Accent.Primary)
		p.alpha = ns.opacity
	}

	if !ns.lod && r.icons != nil {
		kind := graph.KindText
		if ns.n.Document != nil {
			kind = ns.n.Document.Kind()
		}
		r.icons.draw(p, ns.x, ns.y, h*iconFraction, kind, r.style.Icon)
	}
}

func (r *Renderer) drawMemory(p *pen, ns *nodeState, m *graph.MemoryData, now time.Time) {
	pal := r.style.Memory
	st := r.style.Status
	dc := p.dc

	fill, border, glow := pal.Primary, pal.Border, pal.Glow
	forgotten := m.Forgotten(now)
	switch m.Status(now) {
	case graph.StatusForgotten:
		fill, border, glow = st.Forgotten, st.ForgottenBorder, st.ForgottenGlow
	case graph.StatusExpiring:
		border, glow = st.Expiring, r.style.Accent.Amber
	case graph.StatusNew:
		border, glow = st.New, r.style.Accent.Emerald
	}
	switch {
	case ns.dragging:
		fill, border = pal.Accent, glow
	case ns.hovered:
		fill = pal.Secondary
	}

	width := 1.5
	switch {
	case ns.dragging:
		width = 3
	case ns.hovered:
		width = 2
	}

	switch {
	case ns.dim:
		p.alpha = ns.opacity
	case m.IsLatest:
		p.alpha = 1
	default:
		p.alpha = staleAlpha
	}

	radius := ns.s / 2
	p.line(width, gg.LineCapRound)
	if ns.lod {
		dc.DrawCircle(ns.x, ns.y, radius)
		p.fillStroke(fill, border)
	} else {
		hex := hexagon(ns.x, ns.y, radius)
		p.polygon(hex[:])
		p.fillStroke(fill, border)

		if ns.hovered || ns.dragging {
			inner := hexagon(ns.x, ns.y, radius-2)
			p.line(1, gg.LineCapRound)
			p.polygon(inner[:])
			p.stroke(r.style.MemoryHighlight)
		}
	}

	switch {
	case forgotten:
		c := ns.s * crossFraction
		p.line(2, gg.LineCapRound)
		dc.MoveTo(ns.x-c, ns.y-c)
		dc.LineTo(ns.x+c, ns.y+c)
		dc.MoveTo(ns.x+c, ns.y-c)
		dc.LineTo(ns.x-c, ns.y+c)
		p.stroke(st.ForgottenCross)
	case m.IsNew(now):
		off := ns.s * dotOffset
		dc.DrawCircle(ns.x+off, ns.y-off, math.Max(dotMinRadius, ns.s*dotFraction))
		p.fill(st.New)
	}
}

// drawGlow outlines a hovered or dragged node with a dashed halo.
func (r *Renderer) drawGlow(p *pen, ns *nodeState) {
	dc := p.dc
	p.alpha = glowAlpha
	p.line(1, gg.LineCapRound, glowDash...)
	if ns.n.Type == graph.NodeDocument {
		w, h := ns.s*docWidth, ns.s*docHeight
		pad := (w + h) / 2 * padFraction
		dc.DrawRoundedRectangle(ns.x-w/2-pad, ns.y-h/2-pad, w+2*pad, h+2*pad, docGlowRadius)
		p.stroke(r.style.Document.Glow)
	} else {
		hex := hexagon(ns.x, ns.y, ns.s*memGlowScale)
		p.polygon(hex[:])
		p.stroke(r.style.Memory.Glow)
	}
	p.line(1, gg.LineCapRound)
}
