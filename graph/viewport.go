// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package graph

// Viewport maps world coordinates to logical screen pixels:
// screen = world*Zoom + Pan.
type Viewport struct {
	PanX   float64 `json:"panX"`
	PanY   float64 `json:"panY"`
	Zoom   float64 `json:"zoom"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// ToScreen converts a world point to screen coordinates.
func (v Viewport) ToScreen(x, y float64) (sx, sy float64) {
	return x*v.Zoom + v.PanX, y*v.Zoom + v.PanY
}

// ToWorld converts a screen point to world coordinates. It returns the
// origin when Zoom is zero.
func (v Viewport) ToWorld(sx, sy float64) (x, y float64) {
	if v.Zoom == 0 {
		return 0, 0
	}
	return (sx - v.PanX) / v.Zoom, (sy - v.PanY) / v.Zoom
}

// Valid reports whether the transform is usable for drawing.
func (v Viewport) Valid() bool {
	return Finite(v.PanX, v.PanY, v.Zoom) && v.Zoom > 0
}

// Interaction is the host's interaction state for one frame.
// Empty strings mean "none".
type Interaction struct {
	DraggingNodeID       string   `json:"draggingNodeId,omitempty"`
	SelectedNodeID       string   `json:"selectedNodeId,omitempty"`
	HighlightDocumentIDs []string `json:"highlightDocumentIds,omitempty"`
	SimulationActive     bool     `json:"isSimulationActive,omitempty"`
}

// HighlightSet returns the highlight IDs as a set.
func (i Interaction) HighlightSet() map[string]struct{} {
	if len(i.HighlightDocumentIDs) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(i.HighlightDocumentIDs))
	for _, id := range i.HighlightDocumentIDs {
		set[id] = struct{}{}
	}
	return set
}
