// Package memgraph renders an interactive memory graph onto a 2D canvas.
//
// # Overview
//
// A memory graph has two kinds of nodes, documents and the memories
// extracted from them, and three kinds of edges: doc-memory, doc-doc
// (similarity) and version (memory updates). The host owns layout, data
// and interaction state; memgraph owns drawing, hit-testing and pointer
// translation.
//
// # Quick Start
//
//	backing, _ := surface.NewImage(800, 600)
//	loop := frameloop.NewLoop(frameloop.DefaultInterval)
//	eng, err := memgraph.New(backing, loop, controller)
//	if err != nil {
//	    return err
//	}
//	defer eng.Close()
//
//	eng.Update(memgraph.Props{
//	    Nodes:    nodes,
//	    Edges:    edges,
//	    Viewport: graph.Viewport{Zoom: 1, Width: 800, Height: 600},
//	    DPR:      2,
//	})
//
// # Scheduling
//
// While Interaction.SimulationActive is set, the engine redraws on every
// frame. Otherwise it redraws only when the render key changes: node
// positions and flags, edge count, pan, zoom, canvas size or the highlight
// set. Selection changes fade unrelated nodes and edges over
// Style.DimDuration; those frames are drawn regardless of the key.
//
// # Threading
//
// An Engine is not safe for concurrent use. Drive it from the goroutine
// that runs its frame requester, for example by posting to a
// frameloop.Loop.
//
// # Architecture
//
//   - graph: node, edge and viewport types
//   - spatial: grid index and hit testing
//   - batch: edge resolution, culling and grouping
//   - frame: the frame renderer
//   - anim: dim and view transitions
//   - schedule: render key and Active/Idle scheduler
//   - surface: backing stores and the DPI manager
//   - input: pointer and gesture adapter
//   - interact: a reference interaction controller
package memgraph
