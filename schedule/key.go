// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package schedule

import (
	"hash/fnv"
	"math"

	"github.com/gogpu/memgraph/graph"
)

// Salts keep the scalar terms of Key from cancelling one another.
const (
	saltEdges uint64 = iota + 1
	saltPanX
	saltPanY
	saltZoom
	saltWidth
	saltHeight
	saltHighlight
)

// mix is the splitmix64 finalizer.
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// round returns v rounded to the nearest integer, or 0 when v is not finite
// or too large to represent.
func round(v float64) uint64 {
	if !graph.Finite(v) || math.Abs(v) > 1<<62 {
		return 0
	}
	return uint64(int64(math.Round(v)))
}

func term(salt, v uint64) uint64 {
	return mix(mix(salt) ^ v)
}

func hashString(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}

// NodesKey fingerprints node identity, position at 0.1 precision and the
// hover and drag flags. Terms are combined with XOR so the result does not
// depend on node order.
func NodesKey(nodes []*graph.Node) uint64 {
	var h uint64
	for _, n := range nodes {
		if n == nil {
			continue
		}
		t := hashString(n.ID)
		t = mix(t ^ round(n.X*10))
		t = mix(t ^ round(n.Y*10))
		if n.IsDragging {
			t = mix(t ^ 1)
		}
		if n.IsHovered {
			t = mix(t ^ 2)
		}
		h ^= t
	}
	return h
}

// HighlightKey fingerprints a set of highlight IDs independent of order.
// Duplicates count once.
func HighlightKey(ids []string) uint64 {
	var h uint64
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		h ^= mix(hashString(id))
	}
	return h
}

// Key computes the idle-mode render key from everything that changes the
// picture without going through an animation: node geometry and flags,
// edge count, pan, zoom at 0.01 precision, logical canvas size and the
// highlight set. Equal inputs always give equal keys; non-finite values
// contribute as zero.
func Key(nodes []*graph.Node, edges int, vp graph.Viewport, highlights []string) uint64 {
	h := NodesKey(nodes)
	h ^= term(saltEdges, uint64(edges))
	h ^= term(saltPanX, round(vp.PanX))
	h ^= term(saltPanY, round(vp.PanY))
	h ^= term(saltZoom, round(vp.Zoom*100))
	h ^= term(saltWidth, round(vp.Width))
	h ^= term(saltHeight, round(vp.Height))
	h ^= term(saltHighlight, HighlightKey(highlights))
	return h
}
