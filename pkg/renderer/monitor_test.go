package renderer

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestFormatProgress(t *testing.T) {
	tests := []struct {
		name     string
		done     int64
		total    int64
		elapsed  time.Duration
		spin     int
		contains []string
	}{
		{"start", 0, 100, 0, 0, []string{"[>", "  0% /", "ETA:   ? min   ? s"}},
		{"half", 50, 100, 10 * time.Second, 1, []string{" 50% -", "ETA:   0 min  10 s"}},
		{"minutes", 25, 100, 60 * time.Second, 2, []string{" 25% \\", "ETA:   3 min   0 s"}},
		{"done", 100, 100, 5 * time.Second, 3, []string{"100% |", "ETA:   0 min   0 s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := FormatProgress(tt.done, tt.total, tt.elapsed, tt.spin)
			for _, want := range tt.contains {
				if !strings.Contains(line, want) {
					t.Errorf("Expected %q in %q", want, line)
				}
			}
		})
	}
}

func TestFormatProgress_BarWidth(t *testing.T) {
	line := FormatProgress(50, 100, time.Second, 0)
	bar := line[1:strings.Index(line, "]")]
	if len(bar) != progressBarWidth {
		t.Fatalf("Expected bar width %d, got %d", progressBarWidth, len(bar))
	}
	if strings.Count(bar, "=") != progressBarWidth/2 || strings.Count(bar, ">") != 1 {
		t.Errorf("Unexpected half-way bar %q", bar)
	}
}

func TestMonitor_StopsWhenDone(t *testing.T) {
	var done atomic.Int64
	var mu sync.Mutex
	var lines []string
	monitor := NewMonitor(10, &done, time.Millisecond, func(line string) {
		mu.Lock()
		lines = append(lines, line)
		mu.Unlock()
	})

	finished := make(chan struct{})
	go func() {
		monitor.Run(context.Background())
		close(finished)
	}()

	for i := 0; i < 10; i++ {
		time.Sleep(time.Millisecond)
		done.Add(1)
	}

	select {
	case <-finished:
	case <-time.After(5 * time.Second):
		t.Fatal("Monitor did not stop after all pixels were done")
	}

	mu.Lock()
	defer mu.Unlock()
	if len(lines) == 0 {
		t.Error("Expected at least one progress report")
	}
}

func TestMonitor_StopsOnCancel(t *testing.T) {
	var done atomic.Int64
	monitor := NewMonitor(10, &done, time.Hour, func(string) {})

	ctx, cancel := context.WithCancel(context.Background())
	finished := make(chan struct{})
	go func() {
		monitor.Run(ctx)
		close(finished)
	}()
	cancel()

	select {
	case <-finished:
	case <-time.After(5 * time.Second):
		t.Fatal("Monitor did not stop on cancellation")
	}
}
