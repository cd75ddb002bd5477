package profiler

import (
	"bytes"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestTickLogsOncePerInterval(t *testing.T) {
	var buf bytes.Buffer
	p := NewProfiler(log.New(&buf))
	p.updateInterval = time.Hour

	assert.False(t, p.Tick(1))
	assert.False(t, p.Tick(2))
	assert.Empty(t, buf.String())

	p.lastTime = time.Now().Add(-2 * time.Hour)
	assert.True(t, p.Tick(3))
	assert.Contains(t, buf.String(), "frame stats")
	assert.Contains(t, buf.String(), "pickPasses=2")
	assert.Zero(t, p.frameCount)
	assert.Zero(t, p.pickPasses)
}
