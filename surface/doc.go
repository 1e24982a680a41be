// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package surface manages the backing store the graph is drawn into.
//
// A Backing owns a gg.Context sized in device pixels. Two backings are
// built in:
//
//   - Image: CPU pixmap, used for tests, PNG export and headless hosts
//   - GPU: a ggcanvas.Canvas that uploads the pixmap to a GPU texture
//
// Hosts can register more through the registry:
//
//	surface.Register("offscreen", 50, newOffscreen, nil)
//	b, err := surface.Open(surface.Options{Width: 800, Height: 600})
//
// # Device pixel ratio
//
// Manager keeps a backing in step with the host's logical size and device
// pixel ratio. The effective ratio is clamped so neither backing dimension
// exceeds the maximum safe size (DefaultMaxSize per axis), and the context
// transform is reset to a uniform scale by that ratio so all drawing is
// expressed in logical pixels:
//
//	m := surface.NewManager(b, surface.DefaultMaxSize)
//	if _, err := m.Apply(1280, 720, 2); err != nil {
//	    return err
//	}
//	renderer.Draw(m.Context(), in)
//
// Zero or non-finite logical sizes leave the backing untouched.
package surface
