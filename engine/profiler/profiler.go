// Package profiler reports frame rate and memory statistics of the interactive viewer.
package profiler

import (
	"runtime"
	"time"

	"github.com/charmbracelet/log"
)

// Profiler tracks frame rate, pick passes and memory statistics for performance monitoring.
// Outputs stats to its logger at a configurable interval.
type Profiler struct {
	logger         *log.Logger
	frameCount     int
	pickPasses     int
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64
}

// NewProfiler creates a new Profiler with default settings.
// Update interval defaults to 1 second.
//
// Parameters:
//   - logger: destination for the stats, log.Default() when nil
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(logger *log.Logger) *Profiler {
	if logger == nil {
		logger = log.Default()
	}
	return &Profiler{
		logger:         logger.WithPrefix("profiler"),
		lastTime:       time.Now(),
		updateInterval: time.Second,
	}
}

// Tick should be called once per frame to track frame timing.
// Logs performance statistics when the update interval has elapsed.
// Statistics include: FPS, pick passes per frame, heap usage, allocation rate, GC count/pause times, total memory.
//
// Parameters:
//   - pickPasses: pick passes run by every scene this frame
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick(pickPasses int) bool {
	p.frameCount++
	p.pickPasses += pickPasses
	currentTime := time.Now()
	elapsed := currentTime.Sub(p.lastTime)

	if elapsed < p.updateInterval {
		return false
	}

	fps := float64(p.frameCount) / elapsed.Seconds()
	passes := float64(p.pickPasses) / float64(p.frameCount)

	runtime.ReadMemStats(&p.memStats)
	// Alloc: live heap. Sys: process footprint.
	allocMB := float64(p.memStats.Alloc) / 1024 / 1024
	sysMB := float64(p.memStats.Sys) / 1024 / 1024

	allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc
	allocRateMB := float64(allocDelta) / 1024 / 1024 / elapsed.Seconds()

	gcCount := p.memStats.NumGC
	var lastPauseUs, maxPauseUs uint64
	if gcCount > 0 {
		// PauseNs is a circular buffer of last 256 GC pauses
		lastPauseUs = p.memStats.PauseNs[(gcCount-1)%256] / 1000

		startIdx := p.lastGCCount
		if gcCount-startIdx > 256 {
			startIdx = gcCount - 256
		}
		for i := startIdx; i < gcCount; i++ {
			maxPauseUs = max(maxPauseUs, p.memStats.PauseNs[i%256]/1000)
		}
	}

	p.logger.Info("frame stats",
		"fps", fps,
		"pickPasses", passes,
		"heapMB", allocMB,
		"allocMBps", allocRateMB,
		"gc", gcCount,
		"lastPauseUs", lastPauseUs,
		"maxPauseUs", maxPauseUs,
		"sysMB", sysMB,
	)

	p.frameCount = 0
	p.pickPasses = 0
	p.lastTime = currentTime
	p.lastGCCount = gcCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}
