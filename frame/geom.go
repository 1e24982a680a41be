// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package frame

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/memgraph/graph"
)

// Node shape proportions relative to size*zoom.
const (
	docWidth       = 1.4
	docHeight      = 0.9
	docRadius      = 12.0
	docRadiusLOD   = 6.0
	docGlowRadius  = 15.0
	padFraction    = 0.1
	memGlowScale   = 0.7
	iconFraction   = 0.4
	crossFraction  = 0.25
	dotOffset      = 0.25
	dotFraction    = 0.15
	dotMinRadius   = 2.0
	arrowClearance = 2.0
)

// Edge curvature, in logical pixels.
const (
	docMemoryBend = 15.0
	docDocBendMax = 30.0
	docDocBend    = 0.2
)

// hexagon returns the vertices of a regular hexagon with circumradius r,
// starting at the top and going clockwise on screen.
func hexagon(cx, cy, r float64) [6]gg.Point {
	var pts [6]gg.Point
	for i := range pts {
		a := float64(i)*2*math.Pi/6 - math.Pi/2
		pts[i] = gg.Pt(cx+r*math.Cos(a), cy+r*math.Sin(a))
	}
	return pts
}

// bend returns the control-point offset for a curved edge of length d.
func bend(t graph.EdgeType, d float64) float64 {
	if t == graph.EdgeDocMemory {
		return docMemoryBend
	}
	return math.Min(docDocBendMax, d*docDocBend)
}

// control returns the quadratic control point for an edge from (sx, sy) to
// (tx, ty): the midpoint pushed off the line by offset along the normal
// (dy, -dx)/d. ok is false for zero-length edges.
func control(sx, sy, tx, ty, offset float64) (cx, cy float64, ok bool) {
	dx, dy := tx-sx, ty-sy
	d := math.Hypot(dx, dy)
	if d == 0 {
		return 0, 0, false
	}
	mx, my := (sx+tx)/2, (sy+ty)/2
	return mx + offset*dy/d, my - offset*dx/d, true
}

// Arrow is a two-stroke arrowhead: lines from Tip to Left and from Tip to
// Right.
type Arrow struct {
	Tip, Left, Right gg.Point
}

// ArrowHead places the arrowhead of a version edge. The tip sits
// targetRadius+2 pixels back from the target center along the
// source-to-target direction; the wings extend max(6, 8·zoom) back and
// max(8, 12·zoom) across.
func ArrowHead(sx, sy, tx, ty, targetRadius, zoom float64) Arrow {
	angle := math.Atan2(ty-sy, tx-sx)
	cos, sin := math.Cos(angle), math.Sin(angle)
	length := math.Max(6, 8*zoom)
	half := math.Max(8, 12*zoom) / 2

	off := targetRadius + arrowClearance
	tip := gg.Pt(tx-cos*off, ty-sin*off)
	wing := func(side float64) gg.Point {
		// Rotate (-length, side) by angle.
		return gg.Pt(tip.X-length*cos-side*sin, tip.Y-length*sin+side*cos)
	}
	return Arrow{Tip: tip, Left: wing(half), Right: wing(-half)}
}
