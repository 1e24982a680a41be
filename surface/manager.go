// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/memgraph/internal/logger"
)

// DefaultMaxSize is the largest backing dimension, in pixels, per axis.
const DefaultMaxSize = 16384

// EffectiveRatio clamps dpr so that width*ratio and height*ratio stay
// within maxSize. A non-positive or non-finite dpr counts as 1. When either
// dimension is not positive the ratio is dpr unchanged.
func EffectiveRatio(width, height, dpr float64, maxSize int) float64 {
	if !(dpr > 0) || math.IsInf(dpr, 0) {
		dpr = 1
	}
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	if !(width > 0) || !(height > 0) {
		return dpr
	}
	m := float64(maxSize)
	return math.Min(dpr, math.Min(m/width, m/height))
}

// Metrics describes the last applied sizing.
type Metrics struct {
	// Logical size in CSS-style pixels.
	Width, Height float64
	// Backing store size in device pixels.
	PixelWidth, PixelHeight int
	// Ratio is the effective device pixel ratio.
	Ratio float64
}

// Manager sizes a backing for a logical viewport and device pixel ratio.
type Manager struct {
	backing Backing
	maxSize int
	m       Metrics
}

// NewManager returns a manager for b. A non-positive maxSize means
// DefaultMaxSize.
func NewManager(b Backing, maxSize int) *Manager {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	return &Manager{backing: b, maxSize: maxSize}
}

// Backing returns the managed backing.
func (m *Manager) Backing() Backing { return m.backing }

// Metrics returns the last applied sizing.
func (m *Manager) Metrics() Metrics { return m.m }

// Context returns the backing's drawing context, or nil.
func (m *Manager) Context() *gg.Context {
	if m.backing == nil {
		return nil
	}
	return m.backing.Context()
}

// Apply sizes the backing for a width×height logical viewport at dpr and
// resets the context transform to a uniform scale by the effective ratio.
// A zero, negative or non-finite logical size is a no-op.
func (m *Manager) Apply(width, height, dpr float64) (Metrics, error) {
	if !(width > 0) || !(height > 0) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		return m.m, nil
	}
	dc := m.Context()
	if dc == nil {
		return m.m, ErrNoContext
	}

	ratio := EffectiveRatio(width, height, dpr, m.maxSize)
	pw := clampPixels(width*ratio, m.maxSize)
	ph := clampPixels(height*ratio, m.maxSize)

	if pw != m.m.PixelWidth || ph != m.m.PixelHeight || dc.Width() != pw || dc.Height() != ph {
		if err := m.backing.Resize(pw, ph); err != nil {
			logger.L().Warn("surface: backing resize failed", "width", pw, "height", ph, "err", err)
			return m.m, fmt.Errorf("surface: apply %vx%v@%v: %w", width, height, dpr, err)
		}
		logger.L().Debug("surface: backing resized", "width", pw, "height", ph, "ratio", ratio)
		dc = m.backing.Context()
	}

	dc.Identity()
	dc.Scale(ratio, ratio)

	m.m = Metrics{Width: width, Height: height, PixelWidth: pw, PixelHeight: ph, Ratio: ratio}
	return m.m, nil
}

// clampPixels floors v to whole pixels within [1, limit].
func clampPixels(v float64, limit int) int {
	px := int(math.Floor(v))
	if px > limit {
		px = limit
	}
	if px < 1 {
		px = 1
	}
	return px
}
