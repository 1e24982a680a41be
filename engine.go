package memgraph

import (
	"errors"
	"fmt"
	"time"

	"github.com/gogpu/memgraph/anim"
	"github.com/gogpu/memgraph/batch"
	"github.com/gogpu/memgraph/frame"
	"github.com/gogpu/memgraph/frameloop"
	"github.com/gogpu/memgraph/graph"
	"github.com/gogpu/memgraph/input"
	"github.com/gogpu/memgraph/internal/logger"
	"github.com/gogpu/memgraph/schedule"
	"github.com/gogpu/memgraph/spatial"
	"github.com/gogpu/memgraph/surface"
)

var (
	// ErrClosed is returned by operations on a closed Engine.
	ErrClosed = errors.New("memgraph: engine closed")

	// ErrNoSurface is returned by New when backing is nil.
	ErrNoSurface = errors.New("memgraph: no drawing surface")

	// ErrNoFrames is returned by New when the frame requester is nil.
	ErrNoFrames = errors.New("memgraph: no frame requester")
)

// Props is the host's input for one update. The engine treats it as an
// immutable snapshot: hosts that move nodes replace the slice or mutate it
// only between updates.
type Props struct {
	Nodes       []*graph.Node
	Edges       []graph.Edge
	Viewport    graph.Viewport
	Interaction graph.Interaction

	// DPR is the device pixel ratio. Non-positive means 1.
	DPR float64
}

// rendererState is everything the engine carries from one frame to the
// next.
type rendererState struct {
	props   Props
	index   *spatial.Index
	dim     *anim.Dim
	sched   *schedule.Scheduler
	surface *surface.Manager
	hovered string
	metrics surface.Metrics
	forced  int
}

// Engine draws a memory graph onto a backing store and translates pointer
// input into controller intents.
type Engine struct {
	opts     options
	frames   frameloop.Requester
	renderer *frame.Renderer
	input    *input.Adapter

	st     rendererState
	closed bool
}

// New creates an engine drawing onto backing, pacing frames with frames and
// reporting interaction intents to ctl. A nil ctl discards intents.
//
// The engine takes ownership of backing and closes it in Close.
func New(backing surface.Backing, frames frameloop.Requester, ctl input.Controller, opts ...Option) (*Engine, error) {
	if backing == nil {
		return nil, ErrNoSurface
	}
	if frames == nil {
		return nil, ErrNoFrames
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.style.Validate(); err != nil {
		return nil, fmt.Errorf("memgraph: new engine: %w", err)
	}
	maxSize := o.style.MaxBackingSize
	if o.maxSize > 0 {
		maxSize = o.maxSize
	}

	e := &Engine{
		opts:     o,
		frames:   frames,
		renderer: frame.New(o.style, o.frame...),
	}
	e.st.index = spatial.NewIndex(o.style.CellSize)
	e.st.surface = surface.NewManager(backing, maxSize)
	e.st.sched = schedule.New(frames, e.render)
	e.input = input.NewAdapter(e, ctl, input.WithHoverChange(e.hoverChanged))

	logger.L().Info("memgraph: engine created", "maxBackingSize", maxSize)
	return e, nil
}

// Input returns the pointer adapter. Hosts forward their pointer, touch,
// wheel and gesture events to it.
func (e *Engine) Input() *input.Adapter { return e.input }

// Surface returns the current backing-store metrics.
func (e *Engine) Surface() surface.Metrics { return e.st.metrics }

// Update applies a new props snapshot. It sizes the backing store, refreshes
// the spatial index, retargets the dim animation and then either starts the
// per-frame loop or, in idle mode, draws when the render key changed.
func (e *Engine) Update(p Props) error {
	if e.closed {
		return ErrClosed
	}
	now := e.opts.clock()
	if p.Interaction.SelectedNodeID != e.st.props.Interaction.SelectedNodeID {
		// The render key has no selection term.
		e.st.sched.Invalidate()
	}
	e.st.props = p

	m, err := e.st.surface.Apply(p.Viewport.Width, p.Viewport.Height, p.DPR)
	if err != nil {
		return fmt.Errorf("memgraph: update: %w", err)
	}
	if m != e.st.metrics {
		// A resized backing store lost its pixels.
		e.st.metrics = m
		e.st.sched.Invalidate()
	}

	e.refreshIndex()
	e.input.SetDragging(p.Interaction.DraggingNodeID)

	selected := p.Interaction.SelectedNodeID != ""
	if e.st.dim == nil {
		e.st.dim = anim.NewDim(e.frames, e.opts.style.DimDuration, selected, e.dimTick)
	} else {
		e.st.dim.SetSelected(selected, now)
	}

	e.sync(now)
	return nil
}

// HitTest returns the ID of the node under logical screen point (x, y), or
// "" when there is none.
func (e *Engine) HitTest(x, y float64) string {
	return e.st.index.HitTest(x, y)
}

// RenderNow draws the current props immediately, bypassing the scheduler.
func (e *Engine) RenderNow() error {
	if e.closed {
		return ErrClosed
	}
	e.draw(e.opts.clock(), true)
	return nil
}

// Stats returns the engine counters.
func (e *Engine) Stats() Stats {
	s := Stats{
		Mode:        e.st.sched.Mode(),
		Rendered:    e.st.sched.Rendered(),
		Forced:      e.st.forced,
		Skipped:     e.st.sched.Skipped(),
		IndexBuilds: e.st.index.Builds(),
		Hovered:     e.st.hovered,
	}
	if e.st.dim != nil {
		s.Dim = e.st.dim.Progress()
	}
	return s
}

// Close cancels pending frames and releases the renderer and the backing
// store. Close is idempotent.
func (e *Engine) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true
	e.st.sched.Close()
	if e.st.dim != nil {
		e.st.dim.Stop()
	}
	err := errors.Join(e.renderer.Close(), e.st.surface.Backing().Close())
	logger.L().Info("memgraph: engine closed")
	return err
}

func (e *Engine) refreshIndex() {
	nodes := e.st.props.Nodes
	grid, rebuilt := e.st.index.Update(nodes, e.st.props.Viewport, schedule.NodesKey(nodes))
	if rebuilt && e.opts.observer != nil {
		e.opts.observer.IndexRebuilt(grid.Len())
	}
}

func (e *Engine) sync(now time.Time) {
	p := &e.st.props
	key := schedule.Key(p.Nodes, len(p.Edges), p.Viewport, p.Interaction.HighlightDocumentIDs)
	skipped := e.st.sched.Skipped()
	e.st.sched.Sync(p.Interaction.SimulationActive, key, now)
	if e.st.sched.Skipped() != skipped {
		logger.L().Debug("memgraph: frame skipped", "key", key)
		if e.opts.observer != nil {
			e.opts.observer.FrameSkipped()
		}
	}
}

func (e *Engine) hoverChanged(id string) {
	if e.closed {
		return
	}
	e.st.hovered = id
	e.st.sched.Invalidate()
	e.sync(e.opts.clock())
}

func (e *Engine) dimTick() {
	if e.closed {
		return
	}
	e.draw(e.opts.clock(), true)
}

// render is the scheduler's frame callback.
func (e *Engine) render(now time.Time) {
	e.draw(now, false)
}

func (e *Engine) draw(now time.Time, forced bool) {
	dc := e.st.surface.Context()
	if dc == nil {
		return
	}
	start := e.opts.clock()
	p := &e.st.props
	st := e.renderer.Style()

	// Nodes may have moved since Update in active mode.
	if p.Interaction.SimulationActive {
		e.refreshIndex()
	}
	batches := batch.Categorize(p.Edges, graph.NewLookup(p.Nodes), p.Viewport, &st)
	in := frame.Input{
		Nodes:       p.Nodes,
		Batches:     &batches,
		Viewport:    p.Viewport,
		Interaction: p.Interaction,
		HoveredID:   e.st.hovered,
		Now:         now,
	}
	if e.st.dim != nil {
		in.Dim = e.st.dim.Progress()
	}
	fs := e.renderer.Draw(dc, &in)

	if f, ok := e.st.surface.Backing().(interface{ Flush() (any, error) }); ok {
		if _, err := f.Flush(); err != nil {
			logger.L().Debug("memgraph: flush failed", "err", err)
		}
	}
	if forced {
		e.st.forced++
	}
	if e.opts.observer != nil {
		e.opts.observer.FrameRendered(FrameStats{
			Mode:        e.st.sched.Mode(),
			Forced:      forced,
			Nodes:       fs.Nodes,
			CulledNodes: fs.CulledNodes,
			Edges:       fs.Edges,
			Ops:         fs.Ops,
			Dim:         in.Dim,
			Duration:    e.opts.clock().Sub(start),
		})
	}
}
