// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package input

import (
	"sync"

	"github.com/gogpu/memgraph/internal/logger"
)

// HitTester finds the topmost node at a canvas position. It returns "" on
// a miss.
type HitTester interface {
	HitTest(x, y float64) string
}

// Target is a native event source. Listeners are registered non-passive so
// they can cancel the platform default.
type Target interface {
	OnWheel(fn func(*Wheel)) (remove func())
	OnGesture(fn func(*Gesture)) (remove func())
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithHoverChange registers fn to run after the hovered node changes.
func WithHoverChange(fn func(id string)) Option {
	return func(a *Adapter) { a.onHover = fn }
}

// Adapter translates host events into Controller intents.
//
// Intents are delivered outside the adapter's lock, so a Controller may
// call back into the adapter or the engine. The dragged node is the
// controller's state: the adapter only learns of it through SetDragging.
type Adapter struct {
	hit     HitTester
	ctl     Controller
	onHover func(string)

	mu       sync.Mutex
	hovered  string
	dragging string
}

// NewAdapter returns an adapter hit-testing with hit and reporting to ctl.
// A nil ctl discards intents.
func NewAdapter(hit HitTester, ctl Controller, opts ...Option) *Adapter {
	if ctl == nil {
		ctl = Nop{}
	}
	a := &Adapter{hit: hit, ctl: ctl}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Adapter) hitTest(x, y float64) string {
	if a.hit == nil {
		return ""
	}
	return a.hit.HitTest(x, y)
}

// Hovered returns the node under the pointer, or "".
func (a *Adapter) Hovered() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.hovered
}

// Dragging returns the node being dragged, or "".
func (a *Adapter) Dragging() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.dragging
}

// SetDragging syncs the dragged node from the controller's state.
func (a *Adapter) SetDragging(id string) {
	a.mu.Lock()
	a.dragging = id
	a.mu.Unlock()
}

// Cursor returns the pointer affordance: grabbing while dragging, grab over
// a node, move otherwise.
func (a *Adapter) Cursor() Cursor {
	a.mu.Lock()
	defer a.mu.Unlock()
	switch {
	case a.dragging != "":
		return CursorGrabbing
	case a.hovered != "":
		return CursorGrab
	default:
		return CursorMove
	}
}

// PointerDown asks the controller to start a drag on a node or, on a miss,
// a pan. A drag takes effect once the controller confirms it with
// SetDragging; until then moves are reported as pan moves.
func (a *Adapter) PointerDown(e Pointer) {
	id := a.hitTest(e.X, e.Y)
	if id == "" {
		a.ctl.PanStart(e)
		return
	}
	if e.Native != nil {
		e.Native.StopPropagation()
	}
	a.ctl.NodeDragStart(id, e)
}

// PointerMove updates hover, then moves the drag or the pan.
func (a *Adapter) PointerMove(e Pointer) {
	id := a.hitTest(e.X, e.Y)

	a.mu.Lock()
	changed := id != a.hovered
	a.hovered = id
	dragging := a.dragging != ""
	a.mu.Unlock()

	if changed {
		a.ctl.NodeHover(id)
		if a.onHover != nil {
			a.onHover(id)
		}
	}
	if dragging {
		a.ctl.NodeDragMove(e)
	} else {
		a.ctl.PanMove(e)
	}
}

// PointerUp ends the drag or the pan.
func (a *Adapter) PointerUp(Pointer) { a.release() }

// PointerLeave ends the drag or the pan when the pointer leaves the canvas.
func (a *Adapter) PointerLeave(Pointer) { a.release() }

func (a *Adapter) release() {
	a.mu.Lock()
	dragging := a.dragging != ""
	a.dragging = ""
	a.mu.Unlock()

	if dragging {
		a.ctl.NodeDragEnd()
	} else {
		a.ctl.PanEnd()
	}
}

// Click reports a click on the node under the pointer. Clicks on empty
// canvas are ignored.
func (a *Adapter) Click(e Pointer) {
	if id := a.hitTest(e.X, e.Y); id != "" {
		a.ctl.NodeClick(id)
	}
}

// DoubleClick forwards a double click.
func (a *Adapter) DoubleClick(e Pointer) { a.ctl.DoubleClick(e) }

// TouchStart forwards a touch start.
func (a *Adapter) TouchStart(e Touch) { a.ctl.TouchStart(e) }

// TouchMove forwards a touch move.
func (a *Adapter) TouchMove(e Touch) { a.ctl.TouchMove(e) }

// TouchEnd forwards a touch end.
func (a *Adapter) TouchEnd(e Touch) { a.ctl.TouchEnd(e) }

// Wheel cancels the native default and forwards the event.
func (a *Adapter) Wheel(e *Wheel) {
	if e.Native != nil {
		e.Native.PreventDefault()
		e.Native.StopPropagation()
	}
	fwd := *e
	fwd.Native = nil
	a.ctl.Wheel(fwd)
}

// Gesture cancels a platform gesture so it cannot zoom the page.
func (a *Adapter) Gesture(e *Gesture) {
	if e.Native != nil {
		e.Native.PreventDefault()
	}
}

// Attach registers the wheel and gesture listeners on t. The returned
// detach removes both and is safe to call more than once.
func (a *Adapter) Attach(t Target) (detach func()) {
	removeWheel := t.OnWheel(a.Wheel)
	removeGesture := t.OnGesture(a.Gesture)
	logger.L().Debug("input: listeners attached")

	var once sync.Once
	return func() {
		once.Do(func() {
			removeWheel()
			removeGesture()
			logger.L().Debug("input: listeners detached")
		})
	}
}
