// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"bytes"
	"errors"
	"math"
	"testing"
)

func TestEffectiveRatio(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
		dpr           float64
		max           int
		want          float64
	}{
		{"plain", 800, 600, 2, 16384, 2},
		{"clamped by width", 10000, 100, 2, 16384, 1.6384},
		{"clamped by height", 100, 16384, 3, 16384, 1},
		{"zero width", 0, 600, 2, 16384, 2},
		{"zero height", 800, 0, 2, 16384, 2},
		{"nan dpr", 800, 600, math.NaN(), 16384, 1},
		{"negative dpr", 800, 600, -1, 16384, 1},
		{"infinite dpr", 800, 600, math.Inf(1), 16384, 1},
		{"default max", 32768, 100, 1, 0, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EffectiveRatio(tt.width, tt.height, tt.dpr, tt.max)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("EffectiveRatio(%v, %v, %v, %d) = %v, want %v",
					tt.width, tt.height, tt.dpr, tt.max, got, tt.want)
			}
		})
	}
}

func newImage(t *testing.T) *Image {
	t.Helper()
	b, err := NewImage(1, 1)
	if err != nil {
		t.Fatalf("NewImage() error = %v", err)
	}
	t.Cleanup(func() { _ = b.Close() })
	return b
}

func TestManagerApply(t *testing.T) {
	b := newImage(t)
	m := NewManager(b, 0)

	got, err := m.Apply(800, 600, 2)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	want := Metrics{Width: 800, Height: 600, PixelWidth: 1600, PixelHeight: 1200, Ratio: 2}
	if got != want {
		t.Errorf("Apply() = %+v, want %+v", got, want)
	}
	if w, h := b.Size(); w != 1600 || h != 1200 {
		t.Errorf("backing size = %dx%d, want 1600x1200", w, h)
	}
	if x, y := m.Context().TransformPoint(10, 5); x != 20 || y != 10 {
		t.Errorf("TransformPoint(10, 5) = (%v, %v), want (20, 10)", x, y)
	}

	// Reapplying must not compound the scale.
	if _, err := m.Apply(800, 600, 2); err != nil {
		t.Fatalf("Apply() again error = %v", err)
	}
	if x, _ := m.Context().TransformPoint(10, 5); x != 20 {
		t.Errorf("after reapply TransformPoint x = %v, want 20", x)
	}
}

func TestManagerClamp(t *testing.T) {
	b := newImage(t)
	m := NewManager(b, 1000)

	got, err := m.Apply(2000, 500, 2)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if got.Ratio != 0.5 || got.PixelWidth != 1000 || got.PixelHeight != 250 {
		t.Errorf("Apply() = %+v, want ratio 0.5 and 1000x250", got)
	}
}

func TestManagerLargeCanvas(t *testing.T) {
	b := newImage(t)
	m := NewManager(b, DefaultMaxSize)

	got, err := m.Apply(20000, 20000, 3)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if got.PixelWidth != DefaultMaxSize || got.PixelHeight != DefaultMaxSize {
		t.Errorf("Apply() = %dx%d, want %dx%d", got.PixelWidth, got.PixelHeight, DefaultMaxSize, DefaultMaxSize)
	}
}

func TestManagerFractionalSize(t *testing.T) {
	b := newImage(t)
	m := NewManager(b, 0)

	got, err := m.Apply(100.7, 50.2, 1.5)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if got.PixelWidth != 151 || got.PixelHeight != 75 {
		t.Errorf("pixels = %dx%d, want 151x75", got.PixelWidth, got.PixelHeight)
	}
}

func TestManagerZeroSize(t *testing.T) {
	b := newImage(t)
	m := NewManager(b, 0)
	if _, err := m.Apply(400, 300, 1); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	before := m.Metrics()

	for _, sz := range [][2]float64{{0, 300}, {400, 0}, {0, 0}, {math.NaN(), 300}, {math.Inf(1), 300}} {
		got, err := m.Apply(sz[0], sz[1], 2)
		if err != nil {
			t.Errorf("Apply(%v, %v) error = %v", sz[0], sz[1], err)
		}
		if got != before {
			t.Errorf("Apply(%v, %v) = %+v, want unchanged %+v", sz[0], sz[1], got, before)
		}
	}
	if w, h := b.Size(); w != 400 || h != 300 {
		t.Errorf("backing size = %dx%d, want 400x300", w, h)
	}
}

func TestManagerClosedBacking(t *testing.T) {
	b := newImage(t)
	_ = b.Close()
	m := NewManager(b, 0)
	if _, err := m.Apply(100, 100, 1); !errors.Is(err, ErrNoContext) {
		t.Errorf("Apply() on closed backing error = %v, want ErrNoContext", err)
	}
	if _, err := NewManager(nil, 0).Apply(100, 100, 1); !errors.Is(err, ErrNoContext) {
		t.Errorf("Apply() without backing error = %v, want ErrNoContext", err)
	}
}

func TestImage(t *testing.T) {
	if _, err := NewImage(0, 10); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("NewImage(0, 10) error = %v, want ErrInvalidSize", err)
	}

	b, err := NewImage(4, 4)
	if err != nil {
		t.Fatalf("NewImage() error = %v", err)
	}
	if err := b.Resize(-1, 4); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Resize(-1, 4) error = %v, want ErrInvalidSize", err)
	}
	var buf bytes.Buffer
	if err := b.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Error("EncodePNG() did not write a PNG")
	}

	if err := b.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := b.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	if b.Context() != nil {
		t.Error("Context() after Close is not nil")
	}
	if err := b.Resize(8, 8); !errors.Is(err, ErrClosed) {
		t.Errorf("Resize() after Close error = %v, want ErrClosed", err)
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Open(Options{Width: 10, Height: 10}); !errors.Is(err, ErrNoBackend) {
		t.Errorf("Open() on empty registry error = %v, want ErrNoBackend", err)
	}

	failing := errors.New("boom")
	r.Register("broken", 50, func(Options) (Backing, error) { return nil, failing }, nil)
	r.Register("image", 10, func(o Options) (Backing, error) { return NewImage(o.Width, o.Height) }, nil)
	r.Register("never", 100, nil, func(Options) bool { return false })

	if got := r.List(); len(got) != 3 || got[0] != "never" || got[2] != "image" {
		t.Errorf("List() = %v, want [never broken image]", got)
	}

	b, err := r.Open(Options{Width: 10, Height: 10})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if _, ok := b.(*Image); !ok {
		t.Errorf("Open() = %T, want *Image fallback", b)
	}
	_ = b.Close()

	var notFound *BackendNotFoundError
	if _, err := r.OpenByName("missing", Options{}); !errors.As(err, &notFound) {
		t.Errorf("OpenByName(missing) error = %v, want BackendNotFoundError", err)
	}
	var unavailable *BackendUnavailableError
	if _, err := r.OpenByName("never", Options{}); !errors.As(err, &unavailable) {
		t.Errorf("OpenByName(never) error = %v, want BackendUnavailableError", err)
	}

	r.Unregister("image")
	if _, err := r.Open(Options{Width: 10, Height: 10}); !errors.Is(err, failing) {
		t.Errorf("Open() without image error = %v, want %v", err, failing)
	}
}

func TestGlobalRegistryDefaults(t *testing.T) {
	b, err := Open(Options{Width: 16, Height: 16})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer b.Close()
	if _, ok := b.(*Image); !ok {
		t.Errorf("Open() without provider = %T, want *Image", b)
	}
}
