package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/df07/go-pathtracer/pkg/imageio"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
	"github.com/urfave/cli"
)

// RenderFlags are the flags accepted by the render command
var RenderFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "scene, s",
		Value: "cornell",
		Usage: "name of the built-in scene to render",
	},
	cli.IntFlag{
		Name:  "width",
		Usage: "image width; defaults to the scene's width",
	},
	cli.IntFlag{
		Name:  "spp",
		Usage: "samples per pixel, rounded down to a perfect square; defaults to the scene's value",
	},
	cli.IntFlag{
		Name:  "depth",
		Usage: "max bounces per path; defaults to the scene's value",
	},
	cli.IntFlag{
		Name:  "workers",
		Usage: "number of render goroutines; 0 uses one per CPU",
	},
	cli.Uint64Flag{
		Name:  "seed",
		Value: 1,
		Usage: "random seed; the same seed renders the same image",
	},
	cli.IntFlag{
		Name:  "rr-bounces",
		Usage: "min bounces before applying russian roulette for path elimination; 0 disables it",
	},
	cli.StringFlag{
		Name:  "format, f",
		Value: imageio.FormatPPM,
		Usage: "output format: ppm or png",
	},
	cli.StringFlag{
		Name:  "out, o",
		Usage: "image filename for the rendered frame; defaults to <scene>.<format>",
	},
}

// RenderFrame renders a built-in scene and writes the image to disk.
func RenderFrame(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	sc, err := scene.Create(ctx.String("scene"), ctx.Uint64("seed"))
	if err != nil {
		return err
	}

	config := cameraOverrides(ctx, sc.Camera)
	opts := renderer.Options{
		NumWorkers:                ctx.Int("workers"),
		Seed:                      ctx.Uint64("seed"),
		RussianRouletteMinBounces: ctx.Int("rr-bounces"),
	}
	if opts.RussianRouletteMinBounces >= config.MaxDepth {
		logger.Notice("disabling RR for path elimination")
		opts.RussianRouletteMinBounces = 0
	}

	rt, err := renderer.NewRaytracer(sc.World, sc.Lights, config, opts)
	if err != nil {
		return err
	}

	// Interrupting the process abandons the frame
	renderCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	frame, err := rt.Render(renderCtx)
	if err != nil {
		return fmt.Errorf("rendering scene %q: %w", ctx.String("scene"), err)
	}
	logger.Noticef("rendered frame in %d ms", time.Since(start).Milliseconds())

	format := ctx.String("format")
	out := ctx.String("out")
	if out == "" {
		out = ctx.String("scene") + "." + format
	}
	if err := writeFrame(out, format, frame); err != nil {
		return err
	}

	logger.Noticef("wrote %s", out)
	return nil
}

// cameraOverrides replaces the scene's defaults with the flags the user actually set
func cameraOverrides(ctx *cli.Context, config renderer.CameraConfig) renderer.CameraConfig {
	if ctx.IsSet("width") {
		config.ImageWidth = ctx.Int("width")
	}
	if ctx.IsSet("spp") {
		config.SamplesPerPixel = ctx.Int("spp")
	}
	if ctx.IsSet("depth") {
		config.MaxDepth = ctx.Int("depth")
	}
	return config
}

func writeFrame(path, format string, frame *renderer.Frame) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	return imageio.Encode(f, format, frame.Width, frame.Height, frame.Pixels)
}
