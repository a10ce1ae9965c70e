package renderer

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"
)

const progressBarWidth = 50

var spinner = []rune(`/-\|`)

// Monitor periodically reports how many pixels are done and the estimated time left.
// It only reads the shared counter and never holds up the render.
type Monitor struct {
	total    int64
	done     *atomic.Int64
	interval time.Duration
	report   func(line string)
}

// NewMonitor creates a monitor over a counter that workers increment once per finished pixel
func NewMonitor(total int, done *atomic.Int64, interval time.Duration, report func(line string)) *Monitor {
	if interval <= 0 {
		interval = DefaultProgressInterval
	}
	return &Monitor{
		total:    int64(total),
		done:     done,
		interval: interval,
		report:   report,
	}
}

// Run reports progress every interval until all pixels are done or ctx is cancelled
func (m *Monitor) Run(ctx context.Context) {
	start := time.Now()
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for spin := 0; ; spin++ {
		done := m.done.Load()
		if done >= m.total {
			return
		}
		m.report(FormatProgress(done, m.total, time.Since(start), spin))

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// FormatProgress renders a progress bar line such as
// "[=====>    ]  50% / ETA:   1 min   3 s"
func FormatProgress(done, total int64, elapsed time.Duration, spin int) string {
	progress := 1.0
	if total > 0 {
		progress = float64(done) / float64(total)
	}
	pos := int(progressBarWidth * progress)

	var bar strings.Builder
	for i := 0; i < progressBarWidth; i++ {
		switch {
		case i < pos:
			bar.WriteByte('=')
		case i == pos:
			bar.WriteByte('>')
		default:
			bar.WriteByte(' ')
		}
	}

	eta := "  ? min   ? s"
	if done > 0 && elapsed > 0 {
		remaining := time.Duration(float64(elapsed) / float64(done) * float64(total-done))
		seconds := int(remaining.Seconds())
		eta = fmt.Sprintf("%3d min %3d s", seconds/60, seconds%60)
	}

	return fmt.Sprintf("[%s] %3d%% %c ETA: %s", bar.String(), int(progress*100), spinner[spin%len(spinner)], eta)
}
