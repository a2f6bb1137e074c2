package profiler

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTickLogsOncePerInterval(t *testing.T) {
	var lines []string
	p := NewProfiler(WithLogFunc(func(format string, args ...any) {
		lines = append(lines, fmt.Sprintf(format, args...))
	}))

	start := time.Unix(1000, 0)
	_, logged := p.Tick(start)
	assert.False(t, logged)

	// 10 frames of 50ms, then 10 of 50ms with one 100ms frame
	now := start
	for i := 0; i < 19; i++ {
		now = now.Add(50 * time.Millisecond)
		_, logged = p.Tick(now)
		require.False(t, logged, "frame %d", i)
	}
	now = now.Add(100 * time.Millisecond)
	stats, logged := p.Tick(now)

	require.True(t, logged)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "[Profiler] FPS: 19.05")
	assert.InDelta(t, 20.0/1.05, stats.FPS, 1e-9)
	assert.Equal(t, 50*time.Millisecond, stats.MinFrame)
	assert.Equal(t, 100*time.Millisecond, stats.MaxFrame)

	// the next interval starts fresh
	now = now.Add(10 * time.Millisecond)
	_, logged = p.Tick(now)
	assert.False(t, logged)
}

func TestWithUpdateInterval(t *testing.T) {
	count := 0
	p := NewProfiler(
		WithUpdateInterval(100*time.Millisecond),
		WithLogFunc(func(string, ...any) { count++ }),
	)

	now := time.Unix(0, 0)
	for i := 0; i < 10; i++ {
		p.Tick(now)
		now = now.Add(50 * time.Millisecond)
	}
	assert.Equal(t, 4, count)
}

func TestWithUpdateIntervalIgnoresNonPositive(t *testing.T) {
	p := NewProfiler(WithUpdateInterval(0))
	assert.Equal(t, time.Second, p.updateInterval)
}
