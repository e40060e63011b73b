package app

import (
	"fmt"
	"math"
	"sync/atomic"
	"time"
)

// Metrics tracks editor loop counters and frame timing.
type Metrics struct {
	// Frame timing
	frameCount   atomic.Uint64
	frameTotalNs atomic.Int64
	frameMinNs   atomic.Int64
	frameMaxNs   atomic.Int64
	lastFrameNs  atomic.Int64

	// Input handling
	inputCount   atomic.Uint64
	actionCount  atomic.Uint64
	ignoredCount atomic.Uint64
	pollTimeouts atomic.Uint64
	otherEvents  atomic.Uint64

	startTime time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	m := &Metrics{
		startTime: time.Now(),
	}
	m.frameMinNs.Store(math.MaxInt64)
	return m
}

// RecordFrame records the duration of one render pass.
func (m *Metrics) RecordFrame(duration time.Duration) {
	ns := duration.Nanoseconds()

	m.frameCount.Add(1)
	m.frameTotalNs.Add(ns)
	m.lastFrameNs.Store(ns)

	for {
		old := m.frameMinNs.Load()
		if ns >= old || m.frameMinNs.CompareAndSwap(old, ns) {
			break
		}
	}
	for {
		old := m.frameMaxNs.Load()
		if ns <= old || m.frameMaxNs.CompareAndSwap(old, ns) {
			break
		}
	}
}

// RecordInput records a key event read from the terminal. dispatched is
// false when the key decoded to no action in the current mode.
func (m *Metrics) RecordInput(dispatched bool) {
	m.inputCount.Add(1)
	if dispatched {
		m.actionCount.Add(1)
	} else {
		m.ignoredCount.Add(1)
	}
}

// RecordPollTimeout records a poll that returned without an event.
func (m *Metrics) RecordPollTimeout() {
	m.pollTimeouts.Add(1)
}

// RecordOtherEvent records a resize, mouse or unrecognized terminal event.
func (m *Metrics) RecordOtherEvent() {
	m.otherEvents.Add(1)
}

// Snapshot returns a snapshot of current metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	frameCount := m.frameCount.Load()

	var avgFrameNs int64
	if frameCount > 0 {
		avgFrameNs = m.frameTotalNs.Load() / int64(frameCount)
	}

	minFrameNs := m.frameMinNs.Load()
	if minFrameNs == math.MaxInt64 {
		minFrameNs = 0
	}

	return MetricsSnapshot{
		Uptime:         time.Since(m.startTime),
		FrameCount:     frameCount,
		AvgFrameTimeNs: avgFrameNs,
		MinFrameTimeNs: minFrameNs,
		MaxFrameTimeNs: m.frameMaxNs.Load(),
		LastFrameNs:    m.lastFrameNs.Load(),
		InputCount:     m.inputCount.Load(),
		ActionCount:    m.actionCount.Load(),
		IgnoredCount:   m.ignoredCount.Load(),
		PollTimeouts:   m.pollTimeouts.Load(),
		OtherEvents:    m.otherEvents.Load(),
	}
}

// MetricsSnapshot is a point-in-time view of metrics.
type MetricsSnapshot struct {
	Uptime         time.Duration
	FrameCount     uint64
	AvgFrameTimeNs int64
	MinFrameTimeNs int64
	MaxFrameTimeNs int64
	LastFrameNs    int64
	InputCount     uint64
	ActionCount    uint64
	IgnoredCount   uint64
	PollTimeouts   uint64
	OtherEvents    uint64
}

// AvgFrameTime returns the mean render pass duration.
func (s MetricsSnapshot) AvgFrameTime() time.Duration {
	return time.Duration(s.AvgFrameTimeNs)
}

// String formats the snapshot for the shutdown log line.
func (s MetricsSnapshot) String() string {
	return fmt.Sprintf("uptime=%s frames=%d avg_frame=%s max_frame=%s inputs=%d actions=%d ignored=%d timeouts=%d other=%d",
		s.Uptime.Round(time.Millisecond), s.FrameCount, s.AvgFrameTime(), time.Duration(s.MaxFrameTimeNs),
		s.InputCount, s.ActionCount, s.IgnoredCount, s.PollTimeouts, s.OtherEvents)
}

// Timer provides a simple way to measure elapsed time.
type Timer struct {
	start time.Time
}

// StartTimer creates a new timer.
func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

// Elapsed returns the elapsed time since the timer started.
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

// Metrics returns the application's metrics instance.
func (app *Application) Metrics() *Metrics {
	return app.metrics
}
