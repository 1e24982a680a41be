// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package frame draws one frame of the memory graph onto a gg.Context.
//
// A frame is drawn in a fixed order: clear, background grid, edges batch
// by batch (doc-memory, doc-doc, version), then nodes in input order so
// later nodes paint over earlier ones. Alpha and dash state are reset after
// every pass.
//
// All coordinates are logical pixels. The caller owns the context transform
// (the device pixel ratio scale in particular); Draw never resets it.
package frame

import (
	"math"
	"time"

	"github.com/gogpu/gg"

	"github.com/gogpu/memgraph/batch"
	"github.com/gogpu/memgraph/graph"
	"github.com/gogpu/memgraph/internal/logger"
	"github.com/gogpu/memgraph/style"
)

// Input is everything one frame depends on.
type Input struct {
	Nodes       []*graph.Node
	Batches     *batch.Batches
	Viewport    graph.Viewport
	Interaction graph.Interaction

	// HoveredID is the node under the pointer as tracked by the input
	// adapter. A node is drawn hovered when it matches or its own
	// IsHovered flag is set.
	HoveredID string

	// Dim is the dim progress in [0, 1].
	Dim float64

	// Now is the reference time for memory status. Zero means time.Now.
	Now time.Time
}

// Stats reports what one Draw call did.
type Stats struct {
	Edges       int
	Nodes       int
	CulledNodes int
	Ops         int
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithBackground fills the frame with the style background color instead
// of clearing it to transparent.
func WithBackground() Option {
	return func(r *Renderer) { r.background = true }
}

// WithoutIcons disables document icons.
func WithoutIcons() Option {
	return func(r *Renderer) { r.icons = nil }
}

// Renderer draws frames with a fixed style. It caches font faces and is not
// safe for concurrent use.
type Renderer struct {
	style      style.Style
	background bool
	icons      *icons
}

// New returns a renderer for st.
func New(st style.Style, opts ...Option) *Renderer {
	r := &Renderer{style: st, icons: newIcons()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Style returns the renderer's style.
func (r *Renderer) Style() style.Style { return r.style }

// Close releases cached fonts.
func (r *Renderer) Close() error {
	if r.icons == nil {
		return nil
	}
	return r.icons.close()
}

// Draw renders in onto dc. A nil context draws nothing.
func (r *Renderer) Draw(dc *gg.Context, in *Input) Stats {
	var st Stats
	if dc == nil || in == nil {
		return st
	}
	p := newPen(dc)

	if r.background {
		dc.ClearWithColor(r.style.Background.RGBA())
	} else {
		dc.Clear()
	}
	dc.ClearPath()

	vp := in.Viewport
	if !vp.Valid() {
		return st
	}
	lod := vp.Zoom < r.style.LODZoom

	r.drawGrid(p, vp)
	p.reset()

	if in.Batches != nil {
		r.drawEdges(p, in, lod)
		p.reset()
		st.Edges = in.Batches.Len()
	}

	st.Nodes, st.CulledNodes = r.drawNodes(p, in, lod)
	p.reset()

	st.Ops = p.ops
	if p.err != nil {
		logger.L().Debug("frame: draw error", "err", p.err)
	}
	return st
}

// drawGrid strokes the background grid: lines every GridSpacing*zoom
// pixels, phase-locked to the pan offset.
func (r *Renderer) drawGrid(p *pen, vp graph.Viewport) {
	spacing := r.style.GridSpacing * vp.Zoom
	if !(spacing >= 1) || math.IsInf(spacing, 0) || r.style.GridLine.A == 0 {
		return
	}
	dc := p.dc
	p.line(1, gg.LineCapButt)
	for x := math.Mod(vp.PanX, spacing); x < vp.Width; x += spacing {
		dc.MoveTo(x, 0)
		dc.LineTo(x, vp.Height)
	}
	for y := math.Mod(vp.PanY, spacing); y < vp.Height; y += spacing {
		dc.MoveTo(0, y)
		dc.LineTo(vp.Width, y)
	}
	p.stroke(r.style.GridLine)
}
