// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package anim animates the dim progress that fades unrelated nodes and
// edges while a node is selected.
package anim

import (
	"math"
	"time"

	"github.com/gogpu/memgraph/frameloop"
)

// EaseOutCubic maps t in [0, 1] to 1-(1-t)³.
func EaseOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// Dim animates a progress value between 0 (nothing dimmed) and 1 (fully
// dimmed). It is either idle at some progress or animating from a start
// value toward a target that began at a start time.
//
// Dim is not safe for concurrent use; drive it from the frame goroutine.
type Dim struct {
	frames   frameloop.Requester
	duration time.Duration
	onTick   func()

	progress  float64
	from, to  float64
	startedAt time.Time
	animating bool
	frame     frameloop.FrameID
}

// NewDim returns an idle animator. Its progress starts at 1 when selected
// is true and at 0 otherwise, so the first frame does not animate. onTick is
// called after every progress update and may be nil.
func NewDim(frames frameloop.Requester, duration time.Duration, selected bool, onTick func()) *Dim {
	d := &Dim{frames: frames, duration: duration, onTick: onTick}
	if selected {
		d.progress, d.to = 1, 1
	}
	return d
}

// Progress returns the current dim progress in [0, 1].
func (d *Dim) Progress() float64 { return d.progress }

// Target returns the progress the animator is heading to or resting at.
func (d *Dim) Target() float64 { return d.to }

// Animating reports whether a transition is in flight.
func (d *Dim) Animating() bool { return d.animating }

// SetSelected retargets the animator: 1 when a node is selected, 0 when
// none is. A change of target restarts the transition from the current
// progress and ticks once immediately at now; subsequent ticks run once per
// frame until the duration has elapsed.
func (d *Dim) SetSelected(selected bool, now time.Time) {
	target := 0.0
	if selected {
		target = 1
	}
	if target == d.to && (d.animating || d.progress == target) {
		return
	}
	d.cancel()
	d.from, d.to = d.progress, target
	d.startedAt = now
	d.animating = true
	d.tick(now)
}

// Stop cancels a pending tick, freezing progress where it is.
func (d *Dim) Stop() {
	d.cancel()
	d.animating = false
}

func (d *Dim) cancel() {
	if d.frame != 0 {
		d.frames.CancelFrame(d.frame)
		d.frame = 0
	}
}

func (d *Dim) tick(now time.Time) {
	d.frame = 0
	t := 1.0
	if d.duration > 0 {
		t = math.Min(1, math.Max(0, float64(now.Sub(d.startedAt))/float64(d.duration)))
	}
	if t >= 1 {
		d.progress = d.to
		d.animating = false
	} else {
		d.progress = d.from + (d.to-d.from)*EaseOutCubic(t)
	}
	if d.onTick != nil {
		d.onTick()
	}
	if d.animating {
		d.frame = d.frames.RequestFrame(d.tick)
	}
}
