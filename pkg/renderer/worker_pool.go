package renderer

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// PixelTask is one unit of work: all samples of a single pixel
type PixelTask struct {
	Index int // Row-major pixel index
}

// PixelFunc renders one pixel. Each worker owns its PixelFunc, so any state captured
// by it (samplers, scratch buffers) is never shared between goroutines.
type PixelFunc func(task PixelTask) error

// WorkerPool hands pixels out one at a time to a fixed set of workers
type WorkerPool struct {
	numWorkers int
}

// NewWorkerPool creates a pool; numWorkers <= 0 uses one worker per CPU
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{numWorkers: numWorkers}
}

// NumWorkers returns the number of workers in the pool
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}

// Run dispatches pixel indices [0, total) and waits for every worker to finish.
// newWorker is called once per worker. The first error or a cancelled ctx stops
// dispatching and is returned.
func (wp *WorkerPool) Run(ctx context.Context, total int, newWorker func(id int) PixelFunc) error {
	g, ctx := errgroup.WithContext(ctx)
	taskQueue := make(chan PixelTask, wp.numWorkers*4)

	g.Go(func() error {
		defer close(taskQueue)
		for i := 0; i < total; i++ {
			select {
			case taskQueue <- PixelTask{Index: i}:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for id := 0; id < wp.numWorkers; id++ {
		render := newWorker(id)
		g.Go(func() error {
			for task := range taskQueue {
				if err := render(task); err != nil {
					return err
				}
			}
			return nil
		})
	}

	return g.Wait()
}
