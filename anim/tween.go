// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package anim

import (
	"math"
	"sync"
	"time"

	"github.com/gogpu/memgraph/frameloop"
)

// EaseOutQuad maps t in [0, 1] to 1-(1-t)².
func EaseOutQuad(t float64) float64 {
	u := 1 - t
	return 1 - u*u
}

// Tween calls a step function once per frame with eased progress running
// from 0 to 1. The clock starts at the first frame. Unlike Dim, a Tween may
// be started from any goroutine; step runs on the frame goroutine without
// the Tween's lock held.
type Tween struct {
	frames frameloop.Requester

	mu       sync.Mutex
	gen      uint64
	frame    frameloop.FrameID
	start    time.Time
	duration time.Duration
	ease     func(float64) float64
	step     func(p float64)
}

// NewTween returns an idle tween.
func NewTween(frames frameloop.Requester) *Tween {
	return &Tween{frames: frames}
}

// Start replaces any running transition. A nil ease is linear.
func (tw *Tween) Start(d time.Duration, ease func(float64) float64, step func(p float64)) {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	tw.cancelLocked()
	tw.gen++
	tw.start = time.Time{}
	tw.duration = d
	tw.ease = ease
	tw.step = step
	gen := tw.gen
	tw.frame = tw.frames.RequestFrame(func(now time.Time) { tw.tick(gen, now) })
}

// Running reports whether a transition is in flight.
func (tw *Tween) Running() bool {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	return tw.frame != 0
}

// Stop cancels the transition where it is.
func (tw *Tween) Stop() {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	tw.cancelLocked()
}

func (tw *Tween) cancelLocked() {
	if tw.frame != 0 {
		tw.frames.CancelFrame(tw.frame)
		tw.frame = 0
	}
}

func (tw *Tween) tick(gen uint64, now time.Time) {
	tw.mu.Lock()
	if gen != tw.gen || tw.frame == 0 {
		tw.mu.Unlock()
		return
	}
	if tw.start.IsZero() {
		tw.start = now
	}
	t := 1.0
	if tw.duration > 0 {
		t = math.Min(1, float64(now.Sub(tw.start))/float64(tw.duration))
	}
	p := t
	if tw.ease != nil {
		p = tw.ease(t)
	}
	step := tw.step
	if t < 1 {
		tw.frame = tw.frames.RequestFrame(func(now time.Time) { tw.tick(gen, now) })
	} else {
		tw.frame = 0
	}
	tw.mu.Unlock()

	step(p)
}
