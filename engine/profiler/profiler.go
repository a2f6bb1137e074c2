package profiler

import (
	"log"
	"runtime"
	"time"
)

// Profiler tracks frame rate, frame time spread and memory statistics for performance monitoring.
// Outputs stats to the log once per update interval.
type Profiler struct {
	frameCount     int
	lastTime       time.Time
	lastFrame      time.Time
	minFrame       time.Duration
	maxFrame       time.Duration
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64
	logf           func(format string, args ...any)
}

// Stats is a snapshot of one update interval.
type Stats struct {
	FPS      float64
	MinFrame time.Duration
	MaxFrame time.Duration
	HeapMB   float64
	GCCount  uint32
}

// ProfilerOption is a functional option used to configure a Profiler during construction.
type ProfilerOption func(*Profiler)

// WithUpdateInterval sets how often stats are logged. Non-positive values keep the default of 1 second.
func WithUpdateInterval(interval time.Duration) ProfilerOption {
	return func(p *Profiler) {
		if interval > 0 {
			p.updateInterval = interval
		}
	}
}

// WithLogFunc replaces log.Printf as the stats sink.
func WithLogFunc(logf func(format string, args ...any)) ProfilerOption {
	return func(p *Profiler) {
		if logf != nil {
			p.logf = logf
		}
	}
}

// NewProfiler creates a new Profiler. The first Tick starts the first interval.
//
// Parameters:
//   - options: functional options to configure the profiler
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerOption) *Profiler {
	p := &Profiler{
		updateInterval: time.Second,
		logf:           log.Printf,
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// Tick should be called once per frame with the frame's timestamp.
// Logs performance statistics when the update interval has elapsed.
//
// Parameters:
//   - now: the timestamp of the current frame
//
// Returns:
//   - Stats: the interval statistics, zero unless logged
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick(now time.Time) (Stats, bool) {
	if p.lastTime.IsZero() {
		p.lastTime = now
		p.lastFrame = now
		return Stats{}, false
	}

	frame := now.Sub(p.lastFrame)
	p.lastFrame = now
	if p.frameCount == 0 || frame < p.minFrame {
		p.minFrame = frame
	}
	if frame > p.maxFrame {
		p.maxFrame = frame
	}
	p.frameCount++

	elapsed := now.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return Stats{}, false
	}

	runtime.ReadMemStats(&p.memStats)
	// Alloc: bytes of live heap objects
	// TotalAlloc: cumulative bytes allocated, tracks churn
	// Sys: bytes obtained from the OS
	stats := Stats{
		FPS:      float64(p.frameCount) / elapsed.Seconds(),
		MinFrame: p.minFrame,
		MaxFrame: p.maxFrame,
		HeapMB:   float64(p.memStats.Alloc) / 1024 / 1024,
		GCCount:  p.memStats.NumGC,
	}
	sysMB := float64(p.memStats.Sys) / 1024 / 1024
	allocRateMB := float64(p.memStats.TotalAlloc-p.lastTotalAlloc) / 1024 / 1024 / elapsed.Seconds()

	var maxPauseUs uint64
	// PauseNs is a circular buffer of the last 256 GC pauses
	startIdx := p.lastGCCount
	if stats.GCCount-startIdx > 256 {
		startIdx = stats.GCCount - 256
	}
	for i := startIdx; i < stats.GCCount; i++ {
		maxPauseUs = max(maxPauseUs, p.memStats.PauseNs[i%256]/1000)
	}

	p.logf("[Profiler] FPS: %.2f | Frame: %s min, %s max | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d (max pause: %d µs) | Sys: %.2f MB",
		stats.FPS, stats.MinFrame, stats.MaxFrame, stats.HeapMB, allocRateMB, stats.GCCount, maxPauseUs, sysMB)

	p.frameCount = 0
	p.minFrame = 0
	p.maxFrame = 0
	p.lastTime = now
	p.lastGCCount = stats.GCCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return stats, true
}
