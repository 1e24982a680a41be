package memgraph

import (
	"time"

	"github.com/gogpu/memgraph/frame"
	"github.com/gogpu/memgraph/style"
)

// Option configures an Engine during creation.
//
// Example:
//
//	eng, err := memgraph.New(backing, loop, ctl,
//	    memgraph.WithStyle(st),
//	    memgraph.WithObserver(metrics.NewRecorder(prometheus.DefaultRegisterer)),
//	)
type Option func(*options)

type options struct {
	style    style.Style
	clock    func() time.Time
	observer Observer
	maxSize  int
	frame    []frame.Option
}

func defaultOptions() options {
	return options{
		style: style.Default(),
		clock: time.Now,
	}
}

// WithStyle sets the palette and thresholds. New validates it.
func WithStyle(st style.Style) Option {
	return func(o *options) {
		o.style = st
	}
}

// WithClock sets the time source used for idle renders and memory status.
// Frame callbacks use the time passed by the frame requester.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.clock = now
		}
	}
}

// WithObserver reports frame and index statistics to obs.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		o.observer = obs
	}
}

// WithMaxBackingSize overrides Style.MaxBackingSize, the cap on each
// backing-store dimension in device pixels.
func WithMaxBackingSize(px int) Option {
	return func(o *options) {
		o.maxSize = px
	}
}

// WithFrameOptions passes options to the frame renderer.
func WithFrameOptions(opts ...frame.Option) Option {
	return func(o *options) {
		o.frame = append(o.frame, opts...)
	}
}
