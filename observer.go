package memgraph

import (
	"time"

	"github.com/gogpu/memgraph/schedule"
)

// FrameStats describes one drawn frame.
type FrameStats struct {
	Mode schedule.Mode

	// Forced is set for frames drawn by the dim animation or RenderNow
	// rather than by the scheduler.
	Forced bool

	Nodes       int
	CulledNodes int
	Edges       int
	Ops         int
	Dim         float64
	Duration    time.Duration
}

// Observer receives engine statistics. Calls are made on the engine's
// goroutine and must not block.
type Observer interface {
	FrameRendered(FrameStats)
	FrameSkipped()
	IndexRebuilt(nodes int)
}

// Stats is a snapshot of the engine counters.
type Stats struct {
	Mode        schedule.Mode
	Rendered    int
	Forced      int
	Skipped     int
	IndexBuilds int
	Dim         float64
	Hovered     string
}
