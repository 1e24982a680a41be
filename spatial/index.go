// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package spatial

import (
	"github.com/gogpu/memgraph/graph"
	"github.com/gogpu/memgraph/internal/logger"
)

type memoKey struct {
	first      **graph.Node
	n          int
	panX, panY float64
	zoom       float64
	stamp      uint64
}

// Index holds the most recently built Grid and rebuilds it only when its
// inputs change.
//
// The inputs are the node slice identity and length, pan, zoom and a
// caller-supplied content stamp. Hosts that move nodes in place without
// replacing the slice must change the stamp.
type Index struct {
	cellSize float64
	key      memoKey
	grid     *Grid
	builds   int
}

// NewIndex returns an empty index with the given cell size.
func NewIndex(cellSize float64) *Index {
	return &Index{cellSize: cellSize}
}

// Update returns the grid for the inputs, rebuilding when any of them
// changed since the last call. rebuilt reports whether a build happened.
func (ix *Index) Update(nodes []*graph.Node, vp graph.Viewport, stamp uint64) (g *Grid, rebuilt bool) {
	key := memoKey{n: len(nodes), panX: vp.PanX, panY: vp.PanY, zoom: vp.Zoom, stamp: stamp}
	if len(nodes) > 0 {
		key.first = &nodes[0]
	}
	if ix.grid != nil && key == ix.key {
		return ix.grid, false
	}
	ix.key = key
	ix.grid = Build(nodes, vp, ix.cellSize)
	ix.builds++
	logger.L().Debug("spatial: grid rebuilt", "nodes", ix.grid.Len(), "cells", len(ix.grid.cells))
	return ix.grid, true
}

// Grid returns the last built grid, or nil before the first Update.
func (ix *Index) Grid() *Grid { return ix.grid }

// Builds returns how many grids have been built.
func (ix *Index) Builds() int { return ix.builds }

// HitTest hit-tests against the last built grid.
func (ix *Index) HitTest(x, y float64) string {
	return ix.grid.HitTest(x, y)
}
