package renderer

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/olekukonko/tablewriter"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width           int
	Height          int
	SamplesPerPixel int // Samples actually taken per pixel
	Workers         int
	TotalSamples    int64
	RenderTime      time.Duration

	AverageLuminance float64 // Mean pixel luminance of the frame
	MeanStdError     float64 // Mean per-pixel standard error of the luminance estimate
}

// SamplesPerSecond returns the camera-path throughput
func (s RenderStats) SamplesPerSecond() float64 {
	if s.RenderTime <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.RenderTime.Seconds()
}

// WriteTable renders the statistics as a text table
func (s RenderStats) WriteTable(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Resolution", "Samples/pixel", "Workers", "Samples/sec", "Avg luminance", "Std error"})
	table.Append([]string{
		fmt.Sprintf("%dx%d", s.Width, s.Height),
		fmt.Sprintf("%d", s.SamplesPerPixel),
		fmt.Sprintf("%d", s.Workers),
		fmt.Sprintf("%.0f", s.SamplesPerSecond()),
		fmt.Sprintf("%.4f", s.AverageLuminance),
		fmt.Sprintf("%.4f", s.MeanStdError),
	})
	table.SetFooter([]string{"", "", "", "", "TOTAL", s.RenderTime.Round(time.Millisecond).String()})
	table.Render()
}

// PixelStats tracks sampling statistics for a single pixel
type PixelStats struct {
	ColorAccum       core.Vec3 // RGB accumulator for final result
	LuminanceAccum   float64   // Luminance accumulator for convergence
	LuminanceSqAccum float64   // Luminance squared for variance
	SampleCount      int       // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	luminance := color.Luminance()
	ps.LuminanceAccum += luminance
	ps.LuminanceSqAccum += luminance * luminance
	ps.SampleCount++
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{}
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}

// StdError returns the standard error of the mean luminance, zero below two samples
func (ps *PixelStats) StdError() float64 {
	if ps.SampleCount < 2 {
		return 0
	}
	n := float64(ps.SampleCount)
	mean := ps.LuminanceAccum / n
	variance := math.Max(0, (ps.LuminanceSqAccum/n-mean*mean)*n/(n-1))
	return math.Sqrt(variance / n)
}

// Reset clears the accumulators for reuse on the next pixel
func (ps *PixelStats) Reset() {
	*ps = PixelStats{}
}

// AverageLuminance returns the mean luminance of a frame, ignoring non-finite pixels
func AverageLuminance(pixels []core.Vec3) float64 {
	if len(pixels) == 0 {
		return 0
	}
	sum := 0.0
	for _, p := range pixels {
		if l := p.Luminance(); !math.IsNaN(l) && !math.IsInf(l, 0) {
			sum += l
		}
	}
	return sum / float64(len(pixels))
}
