// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package frame

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/memgraph/style"
)

// pen wraps a gg.Context with a global alpha that scales every color it
// sets, and remembers the first drawing error of the frame.
type pen struct {
	dc    *gg.Context
	alpha float64
	err   error
	ops   int
}

func newPen(dc *gg.Context) *pen {
	return &pen{dc: dc, alpha: 1}
}

func (p *pen) color(c style.Color) {
	p.dc.SetRGBA(c.R, c.G, c.B, c.A*p.alpha)
}

// line sets the complete stroke style. Width, cap and dash always travel
// together so no stale state leaks between passes.
func (p *pen) line(width float64, lineCap gg.LineCap, dash ...float64) {
	s := gg.DefaultStroke().WithWidth(width).WithCap(lineCap)
	if len(dash) > 0 {
		s = s.WithDashPattern(dash...)
	}
	p.dc.SetStroke(s)
}

func (p *pen) stroke(c style.Color) {
	p.color(c)
	p.check(p.dc.Stroke())
}

func (p *pen) fill(c style.Color) {
	p.color(c)
	p.check(p.dc.Fill())
}

// fillStroke fills the current path with fill, then strokes it with
// border. Fill and stroke share one brush in gg, so the color is switched
// in between.
func (p *pen) fillStroke(fill, border style.Color) {
	p.color(fill)
	p.check(p.dc.FillPreserve())
	p.stroke(border)
}

func (p *pen) check(err error) {
	p.ops++
	if err != nil && p.err == nil {
		p.err = err
	}
}

// reset restores full alpha and a plain solid stroke.
func (p *pen) reset() {
	p.alpha = 1
	p.dc.SetStroke(gg.DefaultStroke())
}

func (p *pen) polygon(pts []gg.Point) {
	p.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		p.dc.LineTo(pt.X, pt.Y)
	}
	p.dc.ClosePath()
}
