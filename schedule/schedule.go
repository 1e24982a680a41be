// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package schedule decides when a frame is drawn.
//
// In Active mode, while the host's layout simulation runs, the scheduler
// redraws on every frame. In Idle mode it redraws only when the render key
// changes, so a static graph costs nothing between interactions.
package schedule

import (
	"time"

	"github.com/gogpu/memgraph/frameloop"
	"github.com/gogpu/memgraph/internal/logger"
)

// Mode is the scheduling mode.
type Mode uint8

// Scheduling modes.
const (
	Idle Mode = iota
	Active
)

func (m Mode) String() string {
	if m == Active {
		return "active"
	}
	return "idle"
}

// Scheduler drives a render function in Active or Idle mode.
// It is not safe for concurrent use.
type Scheduler struct {
	frames frameloop.Requester
	render func(now time.Time)

	mode      Mode
	frame     frameloop.FrameID
	key       uint64
	committed bool
	closed    bool

	rendered int
	skipped  int
}

// New returns an idle scheduler calling render.
func New(frames frameloop.Requester, render func(now time.Time)) *Scheduler {
	return &Scheduler{frames: frames, render: render}
}

// Mode returns the current mode.
func (s *Scheduler) Mode() Mode { return s.mode }

// Sync applies the latest inputs. With active set it starts, or keeps, the
// per-frame loop. Otherwise it stops the loop and, when key differs from
// the last committed key, renders synchronously at now and commits key.
// It reports whether it rendered.
func (s *Scheduler) Sync(active bool, key uint64, now time.Time) bool {
	if s.closed {
		return false
	}
	if active {
		if s.mode != Active {
			logger.L().Debug("schedule: entering active mode")
			s.mode = Active
			s.frame = s.frames.RequestFrame(s.loop)
		}
		return false
	}
	if s.mode == Active {
		logger.L().Debug("schedule: entering idle mode")
		s.stopLoop()
		s.mode = Idle
	}
	if s.committed && key == s.key {
		s.skipped++
		return false
	}
	s.render(now)
	s.rendered++
	s.key = key
	s.committed = true
	return true
}

// Invalidate forgets the committed key so the next idle Sync renders.
func (s *Scheduler) Invalidate() { s.committed = false }

// Close stops the loop. Later calls to Sync do nothing.
func (s *Scheduler) Close() {
	s.stopLoop()
	s.closed = true
}

// Rendered returns the number of frames drawn by the scheduler.
func (s *Scheduler) Rendered() int { return s.rendered }

// Skipped returns the number of idle syncs that found the key unchanged.
func (s *Scheduler) Skipped() int { return s.skipped }

func (s *Scheduler) stopLoop() {
	if s.frame != 0 {
		s.frames.CancelFrame(s.frame)
		s.frame = 0
	}
}

func (s *Scheduler) loop(now time.Time) {
	s.frame = 0
	if s.closed || s.mode != Active {
		return
	}
	s.render(now)
	s.rendered++
	s.frame = s.frames.RequestFrame(s.loop)
}
