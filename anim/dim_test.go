// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package anim

import (
	"math"
	"testing"
	"time"

	"github.com/gogpu/memgraph/frameloop"
)

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func TestEaseOutCubic(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{0, 0},
		{1, 1},
		{0.5, 0.875},
	}
	for _, tt := range tests {
		if got := EaseOutCubic(tt.in); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("EaseOutCubic(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDimInitialState(t *testing.T) {
	m := frameloop.NewManual(epoch)
	if p := NewDim(m, time.Second, true, nil).Progress(); p != 1 {
		t.Errorf("selected initial Progress() = %v, want 1", p)
	}
	if p := NewDim(m, time.Second, false, nil).Progress(); p != 0 {
		t.Errorf("unselected initial Progress() = %v, want 0", p)
	}
	if m.Pending() != 0 {
		t.Errorf("construction requested %d frames, want 0", m.Pending())
	}
}

func TestDimConvergesMonotonically(t *testing.T) {
	m := frameloop.NewManual(epoch)
	ticks := 0
	d := NewDim(m, time.Second, false, func() { ticks++ })

	d.SetSelected(true, m.Now())
	if ticks != 1 {
		t.Fatalf("SetSelected() ticked %d times, want 1 immediate tick", ticks)
	}
	prev := d.Progress()
	for d.Animating() {
		m.Step(100 * time.Millisecond)
		if p := d.Progress(); p < prev {
			t.Fatalf("progress decreased: %v -> %v", prev, p)
		}
		prev = d.Progress()
	}
	if d.Progress() != 1 {
		t.Errorf("final Progress() = %v, want 1", d.Progress())
	}
	if ticks != 11 {
		t.Errorf("ticks = %d, want 11", ticks)
	}
	if m.Pending() != 0 {
		t.Errorf("Pending() = %d after settling, want 0", m.Pending())
	}
}

func TestDimMidwayValue(t *testing.T) {
	m := frameloop.NewManual(epoch)
	d := NewDim(m, time.Second, false, nil)
	d.SetSelected(true, m.Now())
	m.Step(500 * time.Millisecond)
	if got := d.Progress(); math.Abs(got-0.875) > 1e-9 {
		t.Errorf("Progress() at half duration = %v, want 0.875", got)
	}
}

func TestDimReverseFromMidway(t *testing.T) {
	m := frameloop.NewManual(epoch)
	d := NewDim(m, time.Second, false, nil)
	d.SetSelected(true, m.Now())
	m.Step(500 * time.Millisecond)
	mid := d.Progress()

	d.SetSelected(false, m.Now())
	if d.Progress() != mid {
		t.Errorf("reverse should start from %v, got %v", mid, d.Progress())
	}
	if m.Pending() != 1 {
		t.Errorf("Pending() = %d after retarget, want 1", m.Pending())
	}
	for d.Animating() {
		m.Step(50 * time.Millisecond)
	}
	if d.Progress() != 0 {
		t.Errorf("final Progress() = %v, want 0", d.Progress())
	}
}

func TestDimSameTargetIsNoop(t *testing.T) {
	m := frameloop.NewManual(epoch)
	ticks := 0
	d := NewDim(m, time.Second, true, func() { ticks++ })
	d.SetSelected(true, m.Now())
	if ticks != 0 || d.Animating() {
		t.Errorf("SetSelected(same) ticked %d, animating %v", ticks, d.Animating())
	}

	d.SetSelected(false, m.Now())
	m.Step(10 * time.Millisecond)
	before := ticks
	d.SetSelected(false, m.Now())
	if ticks != before {
		t.Error("retargeting to the in-flight target restarted the animation")
	}
}

func TestDimZeroDuration(t *testing.T) {
	m := frameloop.NewManual(epoch)
	d := NewDim(m, 0, false, nil)
	d.SetSelected(true, m.Now())
	if d.Progress() != 1 || d.Animating() {
		t.Errorf("zero duration: Progress() = %v, Animating() = %v", d.Progress(), d.Animating())
	}
}

func TestDimStopCancelsFrame(t *testing.T) {
	m := frameloop.NewManual(epoch)
	ticks := 0
	d := NewDim(m, time.Second, false, func() { ticks++ })
	d.SetSelected(true, m.Now())
	d.Stop()
	m.Step(100 * time.Millisecond)
	if ticks != 1 {
		t.Errorf("ticks = %d after Stop, want 1", ticks)
	}
	if d.Animating() {
		t.Error("Animating() = true after Stop")
	}
}
