package main

import (
	"bufio"
	"bytes"
	"errors"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-pathtracer/pkg/imageio"
	"github.com/df07/go-pathtracer/pkg/log"
	"github.com/df07/go-pathtracer/pkg/scene"
)

func init() {
	log.SetSink(io.Discard)
}

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	app := newApp()
	var out bytes.Buffer
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(append([]string{"go-pathtracer"}, args...))
	return out.String(), err
}

func TestRender_PPM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frames", "quads.ppm")
	if _, err := runApp(t, "render", "--scene", "quads", "--width", "8", "--spp", "1", "--depth", "3", "--out", path); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Expected output file: %v", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	// The quads scene is square, so an 8 pixel wide frame is 8x8
	if len(lines) != 3+64 {
		t.Fatalf("Expected 67 lines, got %d", len(lines))
	}
	if lines[0] != "P3" || lines[1] != "8 8" || lines[2] != "255" {
		t.Errorf("Unexpected header %q", lines[:3])
	}
	if len(strings.Fields(lines[3])) != 3 {
		t.Errorf("Expected three channels per pixel line, got %q", lines[3])
	}
}

func TestRender_PNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cornell.png")
	_, err := runApp(t, "-v", "render", "-s", "cornell", "--width", "10", "--spp", "1", "--depth", "2",
		"--workers", "2", "--format", imageio.FormatPNG, "-o", path)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Expected output file: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("Decoding PNG failed: %v", err)
	}
	if img.Bounds().Dx() != 10 || img.Bounds().Dy() != 10 {
		t.Errorf("Expected 10x10 image, got %v", img.Bounds())
	}
}

func TestRender_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name     string
		args     []string
		expected error
	}{
		{"unknown scene", []string{"render", "--scene", "teapot", "--out", filepath.Join(dir, "a.ppm")}, scene.ErrUnknownScene},
		{"unknown format", []string{"render", "--scene", "quads", "--width", "4", "--spp", "1", "--format", "exr", "--out", filepath.Join(dir, "b.exr")}, imageio.ErrUnknownFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := runApp(t, tt.args...); !errors.Is(err, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, err)
			}
		})
	}
}

func TestScenesCommand(t *testing.T) {
	out, err := runApp(t, "scenes")
	if err != nil {
		t.Fatalf("scenes failed: %v", err)
	}

	for _, name := range scene.Names() {
		if !strings.Contains(out, name) {
			t.Errorf("Expected %q in listing:\n%s", name, out)
		}
	}
	if !strings.Contains(out, "600x600") {
		t.Errorf("Expected the cornell resolution in listing:\n%s", out)
	}
}

func TestApp_GlobalFlags(t *testing.T) {
	defer log.SetSink(io.Discard)
	defer log.SetLevel(log.Notice)

	tests := []struct {
		name       string
		args       []string
		infoShown  bool
		debugShown bool
	}{
		{"default", []string{"scenes"}, false, false},
		{"verbose", []string{"-v", "scenes"}, true, false},
		{"very verbose", []string{"-vv", "scenes"}, true, true},
		{"explicit level", []string{"--log-level", "debug", "scenes"}, true, true},
		{"explicit level wins", []string{"-vv", "--log-level", "warning", "scenes"}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log.SetLevel(log.Notice)
			if _, err := runApp(t, tt.args...); err != nil {
				t.Fatalf("run failed: %v", err)
			}

			var buf bytes.Buffer
			log.SetSink(&buf)
			logger := log.New("flags")
			logger.Info("info line")
			logger.Debug("debug line")
			log.SetSink(io.Discard)

			out := buf.String()
			if strings.Contains(out, "info line") != tt.infoShown {
				t.Errorf("Expected info shown=%t, got output %q", tt.infoShown, out)
			}
			if strings.Contains(out, "debug line") != tt.debugShown {
				t.Errorf("Expected debug shown=%t, got output %q", tt.debugShown, out)
			}
		})
	}
}

func TestApp_UnknownLogLevel(t *testing.T) {
	if _, err := runApp(t, "--log-level", "loud", "scenes"); err == nil || !strings.Contains(err.Error(), "loud") {
		t.Errorf("Expected unknown log level error, got %v", err)
	}
}

func TestApp_Version(t *testing.T) {
	out, err := runApp(t, "--version")
	if err != nil {
		t.Fatalf("--version failed: %v", err)
	}
	if !strings.Contains(out, "0.1.0") {
		t.Errorf("Expected version in output, got %q", out)
	}
}
