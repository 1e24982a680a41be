// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/gogpu/memgraph"
	"github.com/gogpu/memgraph/schedule"
)

func TestRecorder(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRecorder(reg)

	r.FrameRendered(memgraph.FrameStats{Mode: schedule.Idle, Nodes: 3, Edges: 2, Duration: 3 * time.Millisecond})
	r.FrameRendered(memgraph.FrameStats{Mode: schedule.Idle, Forced: true, Nodes: 4, Dim: 0.5})
	r.FrameRendered(memgraph.FrameStats{Mode: schedule.Active, Nodes: 5})
	r.FrameSkipped()
	r.FrameSkipped()
	r.IndexRebuilt(7)

	tests := []struct {
		name string
		c    prometheus.Collector
		want float64
	}{
		{"idle schedule", r.FramesRendered.WithLabelValues("idle", "schedule"), 1},
		{"idle forced", r.FramesRendered.WithLabelValues("idle", "forced"), 1},
		{"active schedule", r.FramesRendered.WithLabelValues("active", "schedule"), 1},
		{"skipped", r.FramesSkipped, 2},
		{"rebuilds", r.IndexRebuilds, 1},
		{"indexed nodes", r.IndexedNodes, 7},
		{"drawn nodes", r.DrawnNodes, 5},
		{"dim", r.DimProgress, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := testutil.ToFloat64(tt.c); got != tt.want {
				t.Errorf("value = %v, want %v", got, tt.want)
			}
		})
	}

	if n := testutil.CollectAndCount(r.FrameDuration); n != 2 {
		t.Errorf("duration series = %d, want 2", n)
	}
	if n, err := testutil.GatherAndCount(reg, "memgraph_frames_rendered_total"); err != nil || n != 3 {
		t.Errorf("GatherAndCount() = %d, %v; want 3 series", n, err)
	}
}

func TestRecorderUnregistered(t *testing.T) {
	r := NewRecorder(nil)
	r.FrameSkipped()
	if got := testutil.ToFloat64(r.FramesSkipped); got != 1 {
		t.Errorf("FramesSkipped = %v, want 1", got)
	}
}
