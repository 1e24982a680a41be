// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package interact is a reference owner of pan, zoom, selection and drag
// state. It implements input.Controller, so it can be plugged straight
// into the engine; hosts with their own state management can use it as a
// model and implement input.Controller themselves.
package interact

import (
	"math"
	"sync"
	"time"

	"github.com/gogpu/memgraph/anim"
	"github.com/gogpu/memgraph/frameloop"
	"github.com/gogpu/memgraph/graph"
	"github.com/gogpu/memgraph/input"
)

// Zoom limits and steps.
const (
	MinZoom = 0.05
	MaxZoom = 3.0

	wheelZoomIn     = 1.03
	wheelZoomOut    = 0.97
	wheelPanFactor  = 0.5
	doubleClickZoom = 1.5
	buttonZoomIn    = 1.2
	buttonZoomOut   = 0.8
	fitPadding      = 1.4
)

// Animation durations.
const (
	zoomDuration   = 200 * time.Millisecond
	centerDuration = 400 * time.Millisecond
	fitDuration    = 160 * time.Millisecond
)

// View is a pan and zoom.
type View struct {
	PanX, PanY, Zoom float64
}

// Preset initial views.
var (
	Console  = View{Zoom: 0.8}
	Consumer = View{PanX: 400, PanY: 300, Zoom: 0.5}
)

// Option configures a Controller.
type Option func(*Controller)

// WithInitial sets the view restored by ResetView. The default is Console.
func WithInitial(v View) Option {
	return func(c *Controller) { c.initial, c.view = v, v }
}

// WithFrames animates programmatic view changes on frames. Without it they
// apply at once.
func WithFrames(frames frameloop.Requester) Option {
	return func(c *Controller) { c.tween = anim.NewTween(frames) }
}

// WithOnChange registers fn to run after every state change. It is called
// without the controller's lock held.
func WithOnChange(fn func()) Option {
	return func(c *Controller) { c.onChange = fn }
}

type point struct{ x, y float64 }

type touchState struct {
	count     int
	distance  float64
	center    point
	gesturing bool
}

// Controller holds interaction state and updates it from input intents.
// It is safe for concurrent use.
type Controller struct {
	initial  View
	tween    *anim.Tween
	onChange func()

	mu        sync.Mutex
	view      View
	nodes     graph.Lookup
	hovered   string
	selected  string
	dragging  string
	panning   bool
	panStart  point
	dragStart point
	dragNode  point
	positions map[string]point
	touch     touchState
}

// New returns a controller at the Console view.
func New(opts ...Option) *Controller {
	c := &Controller{initial: Console, view: Console, positions: make(map[string]point)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ input.Controller = (*Controller)(nil)

func (c *Controller) changed() {
	if c.onChange != nil {
		c.onChange()
	}
}

// SetNodes gives the controller the current nodes, used to find a node's
// position when a drag starts.
func (c *Controller) SetNodes(nodes []*graph.Node) {
	l := graph.NewLookup(nodes)
	c.mu.Lock()
	c.nodes = l
	c.mu.Unlock()
}

// View returns the current pan and zoom.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

// Viewport returns the view as a graph viewport of the given size.
func (c *Controller) Viewport(width, height float64) graph.Viewport {
	v := c.View()
	return graph.Viewport{PanX: v.PanX, PanY: v.PanY, Zoom: v.Zoom, Width: width, Height: height}
}

// Interaction returns the selection and drag state.
func (c *Controller) Interaction() graph.Interaction {
	c.mu.Lock()
	defer c.mu.Unlock()
	return graph.Interaction{DraggingNodeID: c.dragging, SelectedNodeID: c.selected}
}

// Hovered returns the hovered node, or "".
func (c *Controller) Hovered() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hovered
}

// Select sets the selected node; "" clears the selection.
func (c *Controller) Select(id string) {
	c.mu.Lock()
	c.selected = id
	c.mu.Unlock()
	c.changed()
}

// Position returns the dragged position of a node, if it was moved.
func (c *Controller) Position(id string) (x, y float64, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, ok := c.positions[id]
	return p.x, p.y, ok
}

// ApplyPositions returns nodes with dragged positions applied. Moved nodes
// are copied; the input is not modified.
func (c *Controller) ApplyPositions(nodes []*graph.Node) []*graph.Node {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.positions) == 0 {
		return nodes
	}
	out := make([]*graph.Node, len(nodes))
	for i, n := range nodes {
		out[i] = n
		if n == nil {
			continue
		}
		if p, ok := c.positions[n.ID]; ok {
			moved := *n
			moved.X, moved.Y = p.x, p.y
			moved.IsDragging = n.ID == c.dragging
			out[i] = &moved
		}
	}
	return out
}

// NodeHover implements input.Controller.
func (c *Controller) NodeHover(id string) {
	c.mu.Lock()
	c.hovered = id
	c.mu.Unlock()
	c.changed()
}

// NodeClick toggles the selection of id.
func (c *Controller) NodeClick(id string) {
	c.mu.Lock()
	if c.selected == id {
		c.selected = ""
	} else {
		c.selected = id
	}
	c.mu.Unlock()
	c.changed()
}

// NodeDragStart starts dragging id if it is a known node.
func (c *Controller) NodeDragStart(id string, e input.Pointer) {
	c.mu.Lock()
	n := c.nodes[id]
	if n == nil {
		c.mu.Unlock()
		return
	}
	x, y := n.X, n.Y
	if p, ok := c.positions[id]; ok {
		x, y = p.x, p.y
	}
	c.dragging = id
	c.dragStart = point{e.X, e.Y}
	c.dragNode = point{x, y}
	c.mu.Unlock()
	c.changed()
}

// NodeDragMove moves the dragged node by the pointer delta in world units.
func (c *Controller) NodeDragMove(e input.Pointer) {
	c.mu.Lock()
	if c.dragging == "" || c.view.Zoom == 0 {
		c.mu.Unlock()
		return
	}
	dx := (e.X - c.dragStart.x) / c.view.Zoom
	dy := (e.Y - c.dragStart.y) / c.view.Zoom
	c.positions[c.dragging] = point{c.dragNode.x + dx, c.dragNode.y + dy}
	c.mu.Unlock()
	c.changed()
}

// NodeDragEnd implements input.Controller.
func (c *Controller) NodeDragEnd() {
	c.mu.Lock()
	c.dragging = ""
	c.mu.Unlock()
	c.changed()
}

// PanStart implements input.Controller.
func (c *Controller) PanStart(e input.Pointer) {
	c.mu.Lock()
	c.panning = true
	c.panStart = point{e.X - c.view.PanX, e.Y - c.view.PanY}
	c.mu.Unlock()
}

// PanMove pans while a pan is active and no node is dragged.
func (c *Controller) PanMove(e input.Pointer) {
	c.mu.Lock()
	if !c.panning || c.dragging != "" {
		c.mu.Unlock()
		return
	}
	c.view.PanX = e.X - c.panStart.x
	c.view.PanY = e.Y - c.panStart.y
	c.mu.Unlock()
	c.changed()
}

// PanEnd implements input.Controller.
func (c *Controller) PanEnd() {
	c.mu.Lock()
	c.panning = false
	c.mu.Unlock()
}

// Wheel pans horizontally for mostly-horizontal scrolls and otherwise
// zooms one step about the pointer.
func (c *Controller) Wheel(e input.Wheel) {
	c.mu.Lock()
	if math.Abs(e.DeltaX) > math.Abs(e.DeltaY) {
		c.view.PanX -= e.DeltaX * wheelPanFactor
	} else {
		factor := wheelZoomIn
		if e.DeltaY > 0 {
			factor = wheelZoomOut
		}
		c.view = zoomAt(c.view, e.X, e.Y, c.view.Zoom*factor)
	}
	c.mu.Unlock()
	c.changed()
}

// DoubleClick zooms in about the pointer.
func (c *Controller) DoubleClick(e input.Pointer) {
	c.mu.Lock()
	c.view = zoomAt(c.view, e.X, e.Y, c.view.Zoom*doubleClickZoom)
	c.mu.Unlock()
	c.changed()
}

// TouchStart begins a pinch when two or more fingers are down.
func (c *Controller) TouchStart(e input.Touch) {
	c.mu.Lock()
	c.touch.count = len(e.Touches)
	if len(e.Touches) >= 2 {
		c.touch.distance, c.touch.center = pinch(e.Touches)
		c.touch.gesturing = true
	} else {
		c.touch.gesturing = false
	}
	c.mu.Unlock()
}

// TouchMove zooms about the pinch center and follows its movement, or pans
// with one finger while a pan is active.
func (c *Controller) TouchMove(e input.Touch) {
	c.mu.Lock()
	switch {
	case len(e.Touches) >= 2 && c.touch.gesturing:
		distance, center := pinch(e.Touches)
		if c.touch.distance > 0 {
			v := zoomAt(c.view, center.x, center.y, c.view.Zoom*distance/c.touch.distance)
			v.PanX += center.x - c.touch.center.x
			v.PanY += center.y - c.touch.center.y
			c.view = v
		}
		c.touch.distance, c.touch.center = distance, center
	case len(e.Touches) == 1 && !c.touch.gesturing && c.panning:
		c.view.PanX = e.Touches[0].X - c.panStart.x
		c.view.PanY = e.Touches[0].Y - c.panStart.y
	default:
		c.mu.Unlock()
		return
	}
	c.touch.count = len(e.Touches)
	c.mu.Unlock()
	c.changed()
}

// TouchEnd ends the pinch below two fingers and the pan when none remain.
func (c *Controller) TouchEnd(e input.Touch) {
	c.mu.Lock()
	c.touch.count = len(e.Touches)
	if len(e.Touches) < 2 {
		c.touch.gesturing = false
	}
	if len(e.Touches) == 0 {
		c.panning = false
	}
	c.mu.Unlock()
}

func pinch(ts []input.TouchPoint) (distance float64, center point) {
	a, b := ts[0], ts[1]
	return math.Hypot(b.X-a.X, b.Y-a.Y), point{(a.X + b.X) / 2, (a.Y + b.Y) / 2}
}

// zoomAt returns v zoomed to zoom, clamped, keeping the world point under
// screen (x, y) fixed.
func zoomAt(v View, x, y, zoom float64) View {
	zoom = clampZoom(zoom)
	if v.Zoom == 0 {
		return View{PanX: v.PanX, PanY: v.PanY, Zoom: zoom}
	}
	wx, wy := (x-v.PanX)/v.Zoom, (y-v.PanY)/v.Zoom
	return View{PanX: x - wx*zoom, PanY: y - wy*zoom, Zoom: zoom}
}

func clampZoom(z float64) float64 {
	return math.Max(MinZoom, math.Min(MaxZoom, z))
}

// ZoomIn zooms one step about the origin of the screen.
func (c *Controller) ZoomIn() { c.zoomBy(buttonZoomIn, nil) }

// ZoomOut zooms out one step about the origin of the screen.
func (c *Controller) ZoomOut() { c.zoomBy(buttonZoomOut, nil) }

// ZoomInAt zooms one step keeping screen (x, y) fixed.
func (c *Controller) ZoomInAt(x, y float64) { c.zoomBy(buttonZoomIn, &point{x, y}) }

// ZoomOutAt zooms out one step keeping screen (x, y) fixed.
func (c *Controller) ZoomOutAt(x, y float64) { c.zoomBy(buttonZoomOut, &point{x, y}) }

func (c *Controller) zoomBy(factor float64, at *point) {
	c.mu.Lock()
	target := c.view
	if at != nil {
		target = zoomAt(c.view, at.x, at.y, c.view.Zoom*factor)
	} else {
		target.Zoom = clampZoom(c.view.Zoom * factor)
	}
	c.mu.Unlock()
	c.animateTo(target, zoomDuration, anim.EaseOutCubic, true)
}

// CenterOn pans so world (x, y) sits in the middle of a width×height
// viewport, keeping the zoom.
func (c *Controller) CenterOn(x, y, width, height float64) {
	c.mu.Lock()
	target := c.view
	target.PanX = width/2 - x*c.view.Zoom
	target.PanY = height/2 - y*c.view.Zoom
	c.mu.Unlock()
	c.animateTo(target, centerDuration, anim.EaseOutCubic, true)
}

// ResetView restores the initial view and forgets dragged positions.
func (c *Controller) ResetView() {
	if c.tween != nil {
		c.tween.Stop()
	}
	c.mu.Lock()
	c.view = c.initial
	clear(c.positions)
	c.mu.Unlock()
	c.changed()
}

// FitOptions tune AutoFit.
type FitOptions struct {
	// OccludedRight is the width in pixels covered on the right edge, for
	// example by a side panel.
	OccludedRight float64
	Animate       bool
}

// AutoFit zooms and pans so all nodes fit a width×height viewport with
// padding. Empty input leaves the view alone.
func (c *Controller) AutoFit(nodes []*graph.Node, width, height float64, opts FitOptions) {
	v, ok := Fit(nodes, width, height, opts.OccludedRight)
	if !ok {
		return
	}
	c.animateTo(v, fitDuration, anim.EaseOutQuad, opts.Animate)
}

// Fit computes the view that fits nodes into a width×height viewport, less
// occludedRight pixels on the right. Nodes with non-finite geometry are
// ignored. ok is false when no node qualifies.
func Fit(nodes []*graph.Node, width, height, occludedRight float64) (v View, ok bool) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, n := range nodes {
		if n == nil || !n.Finite() {
			continue
		}
		r := n.Size / 2
		minX, maxX = math.Min(minX, n.X-r), math.Max(maxX, n.X+r)
		minY, maxY = math.Min(minY, n.Y-r), math.Max(maxY, n.Y+r)
		ok = true
	}
	if !ok {
		return View{}, false
	}

	available := math.Max(1, width-math.Max(0, occludedRight))
	zx := available / ((maxX - minX) * fitPadding)
	zy := height / ((maxY - minY) * fitPadding)
	zoom := clampZoom(math.Min(zx, zy))
	if math.IsNaN(zoom) {
		zoom = MaxZoom
	}

	cx, cy := (minX+maxX)/2, (minY+maxY)/2
	return View{
		PanX: available/2 - cx*zoom,
		PanY: height/2 - cy*zoom,
		Zoom: zoom,
	}, true
}

// animateTo moves the view to target, on frames when animate is set and
// frames are configured.
func (c *Controller) animateTo(target View, d time.Duration, ease func(float64) float64, animate bool) {
	if !animate || c.tween == nil {
		if c.tween != nil {
			c.tween.Stop()
		}
		c.mu.Lock()
		c.view = target
		c.mu.Unlock()
		c.changed()
		return
	}

	c.mu.Lock()
	from := c.view
	c.mu.Unlock()
	c.tween.Start(d, ease, func(p float64) {
		c.mu.Lock()
		c.view = View{
			PanX: from.PanX + (target.PanX-from.PanX)*p,
			PanY: from.PanY + (target.PanY-from.PanY)*p,
			Zoom: from.Zoom + (target.Zoom-from.Zoom)*p,
		}
		c.mu.Unlock()
		c.changed()
	})
}
