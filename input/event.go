// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package input turns host pointer, touch, wheel and gesture events into
// graph intents: hover, click, node drag, pan, zoom.
//
// Coordinates are logical canvas pixels relative to the canvas origin.
// The Adapter hit-tests pointer positions and calls a Controller, which
// owns pan, zoom and drag state. The Adapter never changes that state
// itself.
package input

import "time"

// Native is the host event behind a wheel or gesture, for suppressing the
// platform's default page zoom.
type Native interface {
	PreventDefault()
	StopPropagation()
}

// Button identifies a pointer button.
type Button uint8

// Buttons.
const (
	ButtonPrimary Button = iota
	ButtonAuxiliary
	ButtonSecondary
)

// Pointer is a mouse or pen event.
type Pointer struct {
	X, Y   float64
	Button Button
	Time   time.Time
	Native Native
}

// Wheel is a scroll or trackpad event. Positive DeltaY scrolls down.
type Wheel struct {
	X, Y           float64
	DeltaX, DeltaY float64
	Ctrl           bool
	Native         Native
}

// TouchPoint is one finger of a touch event.
type TouchPoint struct {
	ID   int
	X, Y float64
}

// Touch is a touch start, move or end event with all active touches.
type Touch struct {
	Touches []TouchPoint
	Time    time.Time
	Native  Native
}

// GesturePhase is the stage of a platform pinch/rotate gesture.
type GesturePhase uint8

// Gesture phases.
const (
	GestureStart GesturePhase = iota
	GestureChange
	GestureEnd
)

// Gesture is a platform gesture event (Safari's gesturestart and friends).
type Gesture struct {
	Phase    GesturePhase
	Scale    float64
	Rotation float64
	Native   Native
}

// Cursor is the pointer affordance over the canvas.
type Cursor string

// Cursors.
const (
	CursorGrabbing Cursor = "grabbing"
	CursorGrab     Cursor = "grab"
	CursorMove     Cursor = "move"
)
