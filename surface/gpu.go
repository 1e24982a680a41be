// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gpucontext"
)

// GPU is a backing whose pixels are uploaded to a GPU texture by a
// ggcanvas.Canvas. The host presents the texture returned by Flush.
type GPU struct {
	canvas *ggcanvas.Canvas
}

// NewGPU creates a GPU backing sharing the host's device.
func NewGPU(provider gpucontext.DeviceProvider, width, height int) (*GPU, error) {
	c, err := ggcanvas.New(provider, width, height)
	if err != nil {
		return nil, fmt.Errorf("surface: gpu backing: %w", err)
	}
	return &GPU{canvas: c}, nil
}

// Context returns the canvas drawing context, or nil once closed.
func (b *GPU) Context() *gg.Context {
	return b.canvas.Context()
}

// Resize resizes the canvas; the texture is recreated on the next Flush.
func (b *GPU) Resize(width, height int) error {
	if err := b.canvas.Resize(width, height); err != nil {
		return fmt.Errorf("surface: resize: %w", err)
	}
	return nil
}

// Flush marks the frame dirty and uploads it. It returns the texture to
// present.
func (b *GPU) Flush() (any, error) {
	b.canvas.MarkDirty()
	return b.canvas.Flush()
}

// Canvas exposes the underlying canvas for hosts that render it
// themselves.
func (b *GPU) Canvas() *ggcanvas.Canvas {
	return b.canvas
}

// Close destroys the textures and the context.
func (b *GPU) Close() error {
	return b.canvas.Close()
}
