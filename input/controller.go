// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package input

// Controller receives the intents produced by the Adapter. Node IDs are
// never empty except in NodeHover, where "" means the pointer left all
// nodes.
type Controller interface {
	NodeHover(id string)
	NodeClick(id string)
	NodeDragStart(id string, e Pointer)
	NodeDragMove(e Pointer)
	NodeDragEnd()
	PanStart(e Pointer)
	PanMove(e Pointer)
	PanEnd()
	Wheel(e Wheel)
	DoubleClick(e Pointer)
	TouchStart(e Touch)
	TouchMove(e Touch)
	TouchEnd(e Touch)
}

// Nop ignores every intent. Embed it to implement part of Controller.
type Nop struct{}

func (Nop) NodeHover(string)              {}
func (Nop) NodeClick(string)              {}
func (Nop) NodeDragStart(string, Pointer) {}
func (Nop) NodeDragMove(Pointer)          {}
func (Nop) NodeDragEnd()                  {}
func (Nop) PanStart(Pointer)              {}
func (Nop) PanMove(Pointer)               {}
func (Nop) PanEnd()                       {}
func (Nop) Wheel(Wheel)                   {}
func (Nop) DoubleClick(Pointer)           {}
func (Nop) TouchStart(Touch)              {}
func (Nop) TouchMove(Touch)               {}
func (Nop) TouchEnd(Touch)                {}

var _ Controller = Nop{}
