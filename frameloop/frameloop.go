// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package frameloop provides the cancelable per-frame callback primitive the
// engine schedules rendering and animation with.
//
// A Requester runs each requested callback once, on the next frame. Callbacks
// that want to keep running request again from inside the callback. Loop is
// the production implementation; Manual is driven by hand in tests.
package frameloop

import (
	"context"
	"sync"
	"time"
)

// FrameID identifies a pending frame request. The zero value is never issued.
type FrameID uint64

// Requester schedules callbacks for the next frame.
type Requester interface {
	// RequestFrame schedules fn to run once on the next frame.
	RequestFrame(fn func(now time.Time)) FrameID
	// CancelFrame drops a pending request. Unknown or already-run IDs are
	// ignored.
	CancelFrame(id FrameID)
}

type request struct {
	id FrameID
	fn func(time.Time)
}

// queue is the pending-request bookkeeping shared by Loop and Manual.
type queue struct {
	mu       sync.Mutex
	next     FrameID
	pending  []request
	inflight map[FrameID]bool // taken by the running flush; true once canceled
}

func (q *queue) add(fn func(time.Time)) FrameID {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.next++
	q.pending = append(q.pending, request{id: q.next, fn: fn})
	return q.next
}

func (q *queue) cancel(id FrameID) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for i, r := range q.pending {
		if r.id == id {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
	if _, ok := q.inflight[id]; ok {
		q.inflight[id] = true
	}
}

func (q *queue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// flush runs every request pending at entry. Requests added by the
// callbacks wait for the next flush. A request canceled by an earlier
// callback of the same flush does not run.
func (q *queue) flush(now time.Time) int {
	q.mu.Lock()
	batch := q.pending
	q.pending = nil
	q.inflight = make(map[FrameID]bool, len(batch))
	for _, r := range batch {
		q.inflight[r.id] = false
	}
	q.mu.Unlock()

	ran := 0
	for _, r := range batch {
		q.mu.Lock()
		canceled := q.inflight[r.id]
		delete(q.inflight, r.id)
		q.mu.Unlock()
		if canceled {
			continue
		}
		r.fn(now)
		ran++
	}
	return ran
}

// Loop is a Requester backed by a goroutine that fires frames at a fixed
// interval while requests are pending and runs posted work in between.
// All callbacks and posted functions run on the goroutine calling Run.
type Loop struct {
	q        queue
	interval time.Duration
	wake     chan struct{}
	posts    chan func()
	done     chan struct{}
	once     sync.Once
}

// DefaultInterval is one frame at 60 Hz.
const DefaultInterval = time.Second / 60

// NewLoop returns a loop firing frames every interval. A non-positive
// interval selects DefaultInterval.
func NewLoop(interval time.Duration) *Loop {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Loop{
		interval: interval,
		wake:     make(chan struct{}, 1),
		posts:    make(chan func(), 64),
		done:     make(chan struct{}),
	}
}

// RequestFrame implements Requester. It is safe to call from any goroutine.
func (l *Loop) RequestFrame(fn func(now time.Time)) FrameID {
	id := l.q.add(fn)
	select {
	case l.wake <- struct{}{}:
	default:
	}
	return id
}

// CancelFrame implements Requester.
func (l *Loop) CancelFrame(id FrameID) { l.q.cancel(id) }

// Pending returns the number of outstanding frame requests.
func (l *Loop) Pending() int { return l.q.len() }

// Post queues fn to run on the loop goroutine. It reports false once the
// loop has stopped.
func (l *Loop) Post(fn func()) bool {
	select {
	case <-l.done:
		return false
	default:
	}
	select {
	case l.posts <- fn:
		return true
	case <-l.done:
		return false
	}
}

// Done is closed when Run returns.
func (l *Loop) Done() <-chan struct{} { return l.done }

// Run processes frames and posted work until ctx is done. It returns
// ctx.Err().
func (l *Loop) Run(ctx context.Context) error {
	defer l.once.Do(func() { close(l.done) })

	timer := time.NewTimer(l.interval)
	timer.Stop()
	var tick <-chan time.Time
	arm := func() {
		if tick == nil && l.q.len() > 0 {
			timer.Reset(l.interval)
			tick = timer.C
		}
	}
	arm()

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case fn := <-l.posts:
			fn()
			arm()
		case <-l.wake:
			arm()
		case now := <-tick:
			tick = nil
			l.q.flush(now)
			arm()
		}
	}
}

// Manual is a Requester whose frames fire only when Step is called.
type Manual struct {
	q   queue
	now time.Time
}

// NewManual returns a Manual whose clock starts at start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// RequestFrame implements Requester.
func (m *Manual) RequestFrame(fn func(now time.Time)) FrameID { return m.q.add(fn) }

// CancelFrame implements Requester.
func (m *Manual) CancelFrame(id FrameID) { m.q.cancel(id) }

// Pending returns the number of outstanding requests.
func (m *Manual) Pending() int { return m.q.len() }

// Now returns the clock of the last step.
func (m *Manual) Now() time.Time { return m.now }

// Step advances the clock by d and fires the pending frame. It returns the
// number of callbacks run.
func (m *Manual) Step(d time.Duration) int {
	m.now = m.now.Add(d)
	return m.q.flush(m.now)
}
