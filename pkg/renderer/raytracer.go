package renderer

import (
	"bytes"
	"context"
	"sync/atomic"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/log"
)

// Frame is a rendered linear-radiance image stored row-major, top row first
type Frame struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// At returns the pixel in column i of row j
func (f *Frame) At(i, j int) core.Vec3 {
	return f.Pixels[j*f.Width+i]
}

// Raytracer renders a world through a camera into a Frame
type Raytracer struct {
	world      geometry.Hittable
	camera     *Camera
	config     CameraConfig
	opts       Options
	integrator integrator.Integrator
	stats      RenderStats
	logger     log.Logger

	pixelsDone atomic.Int64
}

// NewRaytracer validates the configuration and prepares the camera and integrator.
// lights may be nil when the scene has nothing worth sampling directly.
func NewRaytracer(world geometry.Hittable, lights geometry.LightTarget, config CameraConfig, opts Options) (*Raytracer, error) {
	if world == nil {
		return nil, ErrNoWorld
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	pathTracer := integrator.NewPathTracer(integrator.Config{
		MaxDepth:                  config.MaxDepth,
		Background:                config.Background,
		RussianRouletteMinBounces: opts.RussianRouletteMinBounces,
	}, world, lights)

	return &Raytracer{
		world:      world,
		camera:     NewCamera(config),
		config:     config,
		opts:       opts,
		integrator: pathTracer,
		logger:     log.New("renderer"),
	}, nil
}

// Camera returns the camera used for primary rays
func (rt *Raytracer) Camera() *Camera {
	return rt.camera
}

// PixelsDone returns how many pixels have been completed so far
func (rt *Raytracer) PixelsDone() int64 {
	return rt.pixelsDone.Load()
}

// Stats returns statistics about the last completed render
func (rt *Raytracer) Stats() RenderStats {
	return rt.stats
}

// Render traces every pixel in parallel and returns the finished frame.
// The result only depends on the configuration and Options.Seed, not on the
// number of workers.
func (rt *Raytracer) Render(ctx context.Context) (*Frame, error) {
	width, height := rt.camera.ImageWidth(), rt.camera.ImageHeight()
	total := width * height
	pool := NewWorkerPool(rt.opts.NumWorkers)

	rt.logger.Noticef("rendering %dx%d at %d samples/pixel, max depth %d, %d workers",
		width, height, rt.camera.SamplesPerPixel(), rt.config.MaxDepth, pool.NumWorkers())
	if bvh, ok := rt.world.(*geometry.BVHNode); ok {
		s := bvh.Stats()
		rt.logger.Debugf("bvh: %d primitives, %d interior nodes, max depth %d, avg leaf depth %.1f",
			s.Primitives, s.InteriorNodes, s.MaxDepth, s.AvgLeafDepth)
	}

	frame := &Frame{Width: width, Height: height, Pixels: make([]core.Vec3, total)}
	stdErrors := make([]float64, total)
	rt.pixelsDone.Store(0)

	monitorCtx, stopMonitor := context.WithCancel(ctx)
	monitorDone := make(chan struct{})
	monitor := NewMonitor(total, &rt.pixelsDone, rt.opts.ProgressInterval, func(line string) {
		rt.logger.Info(line)
	})
	go func() {
		defer close(monitorDone)
		monitor.Run(monitorCtx)
	}()

	start := time.Now()
	err := pool.Run(ctx, total, func(id int) PixelFunc {
		sampler := core.NewRandomSampler(rt.opts.Seed, 0)
		var stats PixelStats
		return func(task PixelTask) error {
			sampler.Reseed(rt.opts.Seed, uint64(task.Index))
			stats.Reset()
			rt.renderPixel(task.Index%width, task.Index/width, sampler, &stats)
			frame.Pixels[task.Index] = stats.GetColor()
			stdErrors[task.Index] = stats.StdError()
			rt.pixelsDone.Add(1)
			return nil
		}
	})
	stopMonitor()
	<-monitorDone
	if err != nil {
		rt.logger.Warningf("render stopped after %d of %d pixels: %v", rt.pixelsDone.Load(), total, err)
		return nil, err
	}

	meanStdError := 0.0
	for _, e := range stdErrors {
		meanStdError += e
	}
	meanStdError /= float64(total)

	rt.stats = RenderStats{
		Width:            width,
		Height:           height,
		SamplesPerPixel:  rt.camera.SamplesPerPixel(),
		Workers:          pool.NumWorkers(),
		TotalSamples:     int64(total) * int64(rt.camera.SamplesPerPixel()),
		RenderTime:       time.Since(start),
		AverageLuminance: AverageLuminance(frame.Pixels),
		MeanStdError:     meanStdError,
	}

	buf := bytes.Buffer{}
	rt.stats.WriteTable(&buf)
	rt.logger.Noticef("render complete\n%s", buf.String())

	return frame, nil
}

// renderPixel accumulates one sample from every stratum of pixel (i, j)
func (rt *Raytracer) renderPixel(i, j int, sampler core.Sampler, stats *PixelStats) {
	sqrtSPP := rt.camera.SqrtSPP()
	for sj := 0; sj < sqrtSPP; sj++ {
		for si := 0; si < sqrtSPP; si++ {
			ray := rt.camera.GetRay(i, j, si, sj, sampler)
			stats.AddSample(rt.integrator.Radiance(ray, sampler))
		}
	}
}
