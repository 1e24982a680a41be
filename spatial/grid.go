// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package spatial buckets nodes into a uniform screen-space grid and answers
// point queries against it.
//
// The grid is rebuilt, never patched: any change to the node set, pan or zoom
// produces a fresh Grid. Index memoizes the last build so repeated frames
// with unchanged inputs reuse it.
package spatial

import (
	"math"

	"github.com/gogpu/memgraph/graph"
)

// Hit areas relative to size*zoom.
const (
	docHitWidth  = 1.4
	docHitHeight = 0.9
)

// maxCell bounds cell coordinates so the int conversion stays exact.
const maxCell = 1 << 40

// Cell is a grid cell coordinate.
type Cell struct {
	X, Y int
}

type entry struct {
	node   *graph.Node
	sx, sy float64
}

// Grid maps cells to the nodes whose screen centers fall inside them,
// in node order.
type Grid struct {
	size  float64
	zoom  float64
	cells map[Cell][]entry
	count int
}

// Build indexes nodes at their screen positions under vp. Nodes with
// non-finite geometry are left out. A non-positive cellSize yields an empty
// grid.
func Build(nodes []*graph.Node, vp graph.Viewport, cellSize float64) *Grid {
	g := &Grid{size: cellSize, zoom: vp.Zoom, cells: make(map[Cell][]entry)}
	if !(cellSize > 0) || !vp.Valid() {
		return g
	}
	for _, n := range nodes {
		if n == nil || !n.Finite() {
			continue
		}
		sx, sy := vp.ToScreen(n.X, n.Y)
		c, ok := g.cellOf(sx, sy)
		if !ok {
			continue
		}
		g.cells[c] = append(g.cells[c], entry{node: n, sx: sx, sy: sy})
		g.count++
	}
	return g
}

// Len returns the number of indexed nodes.
func (g *Grid) Len() int {
	if g == nil {
		return 0
	}
	return g.count
}

// CellOf returns the cell containing screen point (sx, sy).
func (g *Grid) CellOf(sx, sy float64) (Cell, bool) {
	return g.cellOf(sx, sy)
}

func (g *Grid) cellOf(sx, sy float64) (Cell, bool) {
	if !(g.size > 0) || !graph.Finite(sx, sy) {
		return Cell{}, false
	}
	cx, cy := math.Floor(sx/g.size), math.Floor(sy/g.size)
	if math.Abs(cx) > maxCell || math.Abs(cy) > maxCell {
		return Cell{}, false
	}
	return Cell{X: int(cx), Y: int(cy)}, true
}

// NodesIn returns the IDs indexed in cell c, in insertion order.
func (g *Grid) NodesIn(c Cell) []string {
	if g == nil {
		return nil
	}
	es := g.cells[c]
	ids := make([]string, len(es))
	for i, e := range es {
		ids[i] = e.node.ID
	}
	return ids
}

// HitTest returns the ID of the node under screen point (x, y), or "" when
// there is none. See HitNode.
func (g *Grid) HitTest(x, y float64) string {
	if n := g.HitNode(x, y); n != nil {
		return n.ID
	}
	return ""
}

// HitNode returns the node under screen point (x, y). The containing cell
// and its four edge neighbours are searched in the order center, left,
// right, up, down; within a cell the most recently inserted node is tested
// first. Documents hit on a 1.4×0.9 rectangle and memories on a circle, both
// scaled by size*zoom. Points on a document edge miss; the memory circle
// includes its boundary.
func (g *Grid) HitNode(x, y float64) *graph.Node {
	if g == nil || g.count == 0 {
		return nil
	}
	c, ok := g.cellOf(x, y)
	if !ok {
		return nil
	}
	for _, cc := range [...]Cell{
		c,
		{c.X - 1, c.Y},
		{c.X + 1, c.Y},
		{c.X, c.Y - 1},
		{c.X, c.Y + 1},
	} {
		es := g.cells[cc]
		for i := len(es) - 1; i >= 0; i-- {
			if g.contains(es[i], x, y) {
				return es[i].node
			}
		}
	}
	return nil
}

func (g *Grid) contains(e entry, x, y float64) bool {
	s := e.node.Size * g.zoom
	if e.node.Type == graph.NodeDocument {
		hw, hh := s*docHitWidth/2, s*docHitHeight/2
		return x > e.sx-hw && x < e.sx+hw && y > e.sy-hh && y < e.sy+hh
	}
	dx, dy := x-e.sx, y-e.sy
	r := s / 2
	return dx*dx+dy*dy <= r*r
}
