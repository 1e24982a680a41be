// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package metrics exports engine statistics as Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/gogpu/memgraph"
)

// Recorder implements memgraph.Observer.
type Recorder struct {
	FramesRendered *prometheus.CounterVec
	FramesSkipped  prometheus.Counter
	FrameDuration  *prometheus.HistogramVec
	IndexRebuilds  prometheus.Counter
	IndexedNodes   prometheus.Gauge
	DrawnNodes     prometheus.Gauge
	DrawnEdges     prometheus.Gauge
	DimProgress    prometheus.Gauge
}

var _ memgraph.Observer = (*Recorder)(nil)

// NewRecorder creates the collectors and registers them with reg.
// A nil reg creates unregistered collectors.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)
	return &Recorder{
		// Counts drawn frames by scheduler mode and cause.
		FramesRendered: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "memgraph_frames_rendered_total",
				Help: "Total number of frames drawn",
			},
			[]string{"mode", "cause"},
		),
		FramesSkipped: f.NewCounter(prometheus.CounterOpts{
			Name: "memgraph_frames_skipped_total",
			Help: "Idle updates that found the render key unchanged",
		}),
		// Buckets from a trivial frame to a badly overloaded one.
		FrameDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "memgraph_frame_duration_seconds",
				Help:    "Time spent drawing one frame",
				Buckets: []float64{0.0005, 0.001, 0.002, 0.004, 0.008, 0.016, 0.033, 0.066, 0.1, 0.25},
			},
			[]string{"mode"},
		),
		IndexRebuilds: f.NewCounter(prometheus.CounterOpts{
			Name: "memgraph_index_rebuilds_total",
			Help: "Spatial grid rebuilds",
		}),
		IndexedNodes: f.NewGauge(prometheus.GaugeOpts{
			Name: "memgraph_indexed_nodes",
			Help: "Nodes in the last built spatial grid",
		}),
		DrawnNodes: f.NewGauge(prometheus.GaugeOpts{
			Name: "memgraph_drawn_nodes",
			Help: "Nodes drawn in the last frame",
		}),
		DrawnEdges: f.NewGauge(prometheus.GaugeOpts{
			Name: "memgraph_drawn_edges",
			Help: "Edges drawn in the last frame",
		}),
		DimProgress: f.NewGauge(prometheus.GaugeOpts{
			Name: "memgraph_dim_progress",
			Help: "Selection dim progress of the last frame",
		}),
	}
}

// FrameRendered records one drawn frame.
func (r *Recorder) FrameRendered(s memgraph.FrameStats) {
	cause := "schedule"
	if s.Forced {
		cause = "forced"
	}
	mode := s.Mode.String()
	r.FramesRendered.WithLabelValues(mode, cause).Inc()
	r.FrameDuration.WithLabelValues(mode).Observe(s.Duration.Seconds())
	r.DrawnNodes.Set(float64(s.Nodes))
	r.DrawnEdges.Set(float64(s.Edges))
	r.DimProgress.Set(s.Dim)
}

// FrameSkipped records an idle update that did not draw.
func (r *Recorder) FrameSkipped() { r.FramesSkipped.Inc() }

// IndexRebuilt records a spatial grid rebuild over n nodes.
func (r *Recorder) IndexRebuilt(n int) {
	r.IndexRebuilds.Inc()
	r.IndexedNodes.Set(float64(n))
}
