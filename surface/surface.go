// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg"
)

// Errors returned by backings and the manager.
var (
	// ErrClosed is returned when a closed backing is used.
	ErrClosed = errors.New("surface: backing is closed")

	// ErrInvalidSize is returned for non-positive pixel dimensions.
	ErrInvalidSize = errors.New("surface: invalid size")

	// ErrNoContext is returned when a backing has no drawing context.
	ErrNoContext = errors.New("surface: no drawing context")
)

// Backing is a drawing target sized in device pixels.
type Backing interface {
	// Context returns the drawing context, or nil once closed.
	Context() *gg.Context

	// Resize reallocates the pixel buffer. Contents are discarded.
	Resize(width, height int) error

	// Close releases the backing. It is idempotent.
	Close() error
}

// Image is a CPU backing around a plain gg.Context.
type Image struct {
	dc     *gg.Context
	closed bool
}

// NewImage returns a CPU backing of width×height pixels. opts are passed
// to gg.NewContext, so tests can inject a renderer with gg.WithRenderer.
func NewImage(width, height int, opts ...gg.ContextOption) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	return &Image{dc: gg.NewContext(width, height, opts...)}, nil
}

// Context returns the drawing context, or nil once closed.
func (b *Image) Context() *gg.Context {
	if b.closed {
		return nil
	}
	return b.dc
}

// Resize reallocates the pixmap when the size changed.
func (b *Image) Resize(width, height int) error {
	if b.closed {
		return ErrClosed
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if err := b.dc.Resize(width, height); err != nil {
		return fmt.Errorf("surface: resize: %w", err)
	}
	return nil
}

// Size returns the pixel size.
func (b *Image) Size() (width, height int) {
	return b.dc.Width(), b.dc.Height()
}

// Image returns the rendered pixels.
func (b *Image) Image() image.Image {
	return b.dc.Image()
}

// EncodePNG writes the pixels as PNG.
func (b *Image) EncodePNG(w io.Writer) error {
	if b.closed {
		return ErrClosed
	}
	return b.dc.EncodePNG(w)
}

// Close releases the context.
func (b *Image) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	return b.dc.Close()
}
