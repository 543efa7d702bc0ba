package overlay

import (
	"fmt"
	"runtime"
)

// updateInterval: runtime stats text is only refreshed every N frames to reduce allocations.
const updateInterval = 30

// maxLogLines is how many recent log lines the stats window shows.
const maxLogLines = 8

// Stats is the runtime stats window: heap, goroutines, frame count and recent log lines.
type Stats struct {
	frameCount    uint64
	lastMemText   string
	lastGoroutine string
	memStats      runtime.MemStats
}

// Draw renders the stats window for frame.
func (st *Stats) Draw(s Surface, frame uint64, v View) {
	st.frameCount++
	if st.lastMemText == "" || st.frameCount%updateInterval == 0 {
		runtime.ReadMemStats(&st.memStats)
		mb := float64(st.memStats.Alloc) / (1024 * 1024)
		st.lastMemText = fmt.Sprintf("heap alloc: %.2f MiB", mb)
		st.lastGoroutine = fmt.Sprintf("goroutines: %d", runtime.NumGoroutine())
	}

	if s.Begin("runtime stats") {
		s.Text("%s", st.lastMemText)
		s.Text("%s", st.lastGoroutine)
		s.Text("frame: %d", frame)
		s.Text("update model: %s (%d in flight)", v.Model, v.Model.FramesInFlight())
		s.Text("dropped input polls: %d", v.DroppedInputs)
		logLines := v.LogLines
		start := 0
		if len(logLines) > maxLogLines {
			start = len(logLines) - maxLogLines
		}
		for _, line := range logLines[start:] {
			s.TextWrapped(line)
		}
	}
	s.End()
}
