// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package style holds the immutable visual configuration of the graph
// renderer: the palette plus every threshold, margin and duration the
// renderer, hit tester and animator consult.
//
// A Style is a plain value. Obtain one from Default or LoadFile, adjust it,
// then pass it to the engine; the engine copies it and never mutates it.
package style

import (
	"errors"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ErrInvalidStyle wraps every validation failure.
var ErrInvalidStyle = errors.New("style: invalid style")

// NodePalette colors one node kind in its three fill states.
type NodePalette struct {
	Primary   Color `yaml:"primary" toml:"primary"`
	Secondary Color `yaml:"secondary" toml:"secondary"`
	Accent    Color `yaml:"accent" toml:"accent"`
	Border    Color `yaml:"border" toml:"border"`
	Glow      Color `yaml:"glow" toml:"glow"`
}

// Validate validates every color of the palette.
func (p NodePalette) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Primary),
		validation.Field(&p.Secondary),
		validation.Field(&p.Accent),
		validation.Field(&p.Border),
		validation.Field(&p.Glow),
	)
}

// ConnectionPalette colors doc-memory edges and the doc-doc similarity tiers.
type ConnectionPalette struct {
	Weak   Color `yaml:"weak" toml:"weak"`
	Memory Color `yaml:"memory" toml:"memory"`
	Medium Color `yaml:"medium" toml:"medium"`
	Strong Color `yaml:"strong" toml:"strong"`
}

// Validate validates every color of the palette.
func (p ConnectionPalette) Validate() error {
	return validateColors(p.Weak, p.Memory, p.Medium, p.Strong)
}

// AccentPalette holds highlight and status accent colors.
type AccentPalette struct {
	Primary Color `yaml:"primary" toml:"primary"`
	Amber   Color `yaml:"amber" toml:"amber"`
	Emerald Color `yaml:"emerald" toml:"emerald"`
}

// Validate validates every color of the palette.
func (p AccentPalette) Validate() error {
	return validateColors(p.Primary, p.Amber, p.Emerald)
}

// StatusPalette colors memories by status.
type StatusPalette struct {
	Forgotten       Color `yaml:"forgotten" toml:"forgotten"`
	ForgottenBorder Color `yaml:"forgotten_border" toml:"forgotten_border"`
	ForgottenGlow   Color `yaml:"forgotten_glow" toml:"forgotten_glow"`
	ForgottenCross  Color `yaml:"forgotten_cross" toml:"forgotten_cross"`
	Expiring        Color `yaml:"expiring" toml:"expiring"`
	New             Color `yaml:"new" toml:"new"`
}

// Validate validates every color of the palette.
func (p StatusPalette) Validate() error {
	return validateColors(p.Forgotten, p.ForgottenBorder, p.ForgottenGlow, p.ForgottenCross, p.Expiring, p.New)
}

// RelationPalette colors version edges by relation.
type RelationPalette struct {
	Updates Color `yaml:"updates" toml:"updates"`
	Extends Color `yaml:"extends" toml:"extends"`
	Derives Color `yaml:"derives" toml:"derives"`
}

// Validate validates every color of the palette.
func (p RelationPalette) Validate() error {
	return validateColors(p.Updates, p.Extends, p.Derives)
}

func validateColors(cs ...Color) error {
	for _, c := range cs {
		if err := c.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Style is the complete renderer configuration.
type Style struct {
	Background Color             `yaml:"background" toml:"background"`
	GridLine   Color             `yaml:"grid_line" toml:"grid_line"`
	Document   NodePalette       `yaml:"document" toml:"document"`
	Memory     NodePalette       `yaml:"memory" toml:"memory"`
	Connection ConnectionPalette `yaml:"connection" toml:"connection"`
	Accent     AccentPalette     `yaml:"accent" toml:"accent"`
	Status     StatusPalette     `yaml:"status" toml:"status"`
	Relations  RelationPalette   `yaml:"relations" toml:"relations"`

	// Overlay colors.
	DocumentHighlight Color `yaml:"document_highlight" toml:"document_highlight"`
	MemoryHighlight   Color `yaml:"memory_highlight" toml:"memory_highlight"`
	Icon              Color `yaml:"icon" toml:"icon"`

	// Spatial index and culling, in logical pixels.
	CellSize       float64 `yaml:"cell_size" toml:"cell_size"`
	EdgeCullMargin float64 `yaml:"edge_cull_margin" toml:"edge_cull_margin"`
	NodeCullMargin float64 `yaml:"node_cull_margin" toml:"node_cull_margin"`
	GridSpacing    float64 `yaml:"grid_spacing" toml:"grid_spacing"`

	// Level of detail: below LODZoom shapes simplify and doc-memory edges
	// whose advisory opacity is below LODEdgeOpacity are dropped.
	LODZoom        float64 `yaml:"lod_zoom" toml:"lod_zoom"`
	LODEdgeOpacity float64 `yaml:"lod_edge_opacity" toml:"lod_edge_opacity"`

	// Doc-doc similarity tier boundaries (strictly greater than).
	SimilarityMedium float64 `yaml:"similarity_medium" toml:"similarity_medium"`
	SimilarityStrong float64 `yaml:"similarity_strong" toml:"similarity_strong"`

	// Dimming: at full dim progress nodes keep 1-NodeDim of their opacity
	// and edges keep 1-EdgeDim.
	NodeDim     float64       `yaml:"node_dim" toml:"node_dim"`
	EdgeDim     float64       `yaml:"edge_dim" toml:"edge_dim"`
	DimDuration time.Duration `yaml:"dim_duration" toml:"dim_duration"`

	// MaxBackingSize caps each backing-store dimension in device pixels.
	MaxBackingSize int `yaml:"max_backing_size" toml:"max_backing_size"`
}

// Default returns the stock dark palette and thresholds.
func Default() Style {
	slate := func(a float64) Color { return RGBA8(148, 163, 184, a) }
	white := func(a float64) Color { return RGBA8(255, 255, 255, a) }
	sky := func(a float64) Color { return RGBA8(147, 197, 253, a) }
	red := func(a float64) Color { return RGBA8(220, 38, 38, a) }
	amber := RGBA8(251, 165, 36, 0.8)
	emerald := RGBA8(16, 185, 129, 0.4)

	return Style{
		Background: MustParseColor("#0f1419"),
		GridLine:   slate(0.03),
		Document: NodePalette{
			Primary:   white(0.06),
			Secondary: white(0.12),
			Accent:    white(0.18),
			Border:    white(0.25),
			Glow:      sky(0.4),
		},
		Memory: NodePalette{
			Primary:   sky(0.08),
			Secondary: sky(0.16),
			Accent:    sky(0.24),
			Border:    sky(0.35),
			Glow:      sky(0.5),
		},
		Connection: ConnectionPalette{
			Weak:   slate(0),
			Memory: slate(0.3),
			Medium: slate(0.125),
			Strong: slate(0.4),
		},
		Accent: AccentPalette{
			Primary: RGBA8(59, 130, 246, 0.7),
			Amber:   amber,
			Emerald: emerald,
		},
		Status: StatusPalette{
			Forgotten:       red(0.15),
			ForgottenBorder: red(0.3),
			ForgottenGlow:   red(0.2),
			ForgottenCross:  red(0.4),
			Expiring:        amber,
			New:             emerald,
		},
		Relations: RelationPalette{
			Updates: RGBA8(147, 77, 253, 0.5),
			Extends: RGBA8(16, 185, 129, 0.5),
			Derives: sky(0.5),
		},
		DocumentHighlight: white(0.1),
		MemoryHighlight:   sky(0.3),
		Icon:              white(0.8),

		CellSize:       150,
		EdgeCullMargin: 100,
		NodeCullMargin: 50,
		GridSpacing:    100,

		LODZoom:        0.3,
		LODEdgeOpacity: 0.3,

		SimilarityMedium: 0.725,
		SimilarityStrong: 0.85,

		NodeDim:     0.9,
		EdgeDim:     0.95,
		DimDuration: time.Second,

		MaxBackingSize: 16384,
	}
}

// Validate reports every out-of-range threshold and malformed color.
// The returned error wraps ErrInvalidStyle.
func (s Style) Validate() error {
	err := validation.ValidateStruct(&s,
		validation.Field(&s.Background),
		validation.Field(&s.GridLine),
		validation.Field(&s.Document),
		validation.Field(&s.Memory),
		validation.Field(&s.Connection),
		validation.Field(&s.Accent),
		validation.Field(&s.Status),
		validation.Field(&s.Relations),
		validation.Field(&s.DocumentHighlight),
		validation.Field(&s.MemoryHighlight),
		validation.Field(&s.Icon),
		validation.Field(&s.CellSize, validation.Required, validation.Min(1.0)),
		validation.Field(&s.EdgeCullMargin, validation.Min(0.0)),
		validation.Field(&s.NodeCullMargin, validation.Min(0.0)),
		validation.Field(&s.GridSpacing, validation.Min(0.0)),
		validation.Field(&s.LODZoom, validation.Min(0.0)),
		validation.Field(&s.LODEdgeOpacity, validation.Min(0.0), validation.Max(1.0)),
		validation.Field(&s.SimilarityMedium, validation.Min(0.0), validation.Max(1.0)),
		validation.Field(&s.SimilarityStrong, validation.Min(s.SimilarityMedium), validation.Max(1.0)),
		validation.Field(&s.NodeDim, validation.Min(0.0), validation.Max(0.99)),
		validation.Field(&s.EdgeDim, validation.Min(0.0), validation.Max(0.99)),
		validation.Field(&s.DimDuration, validation.Min(time.Duration(0))),
		validation.Field(&s.MaxBackingSize, validation.Required, validation.Min(1)),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidStyle, err)
	}
	return nil
}
