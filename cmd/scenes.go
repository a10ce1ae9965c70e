package cmd

import (
	"bytes"
	"fmt"

	"github.com/df07/go-pathtracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// ListScenes prints the built-in scenes with their default settings.
func ListScenes(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Name", "Description", "Resolution", "Samples/pixel", "Max depth", "Lights"})

	for _, info := range scene.List() {
		sc, err := scene.Create(info.Name, 0)
		if err != nil {
			return err
		}
		config := sc.Camera
		table.Append([]string{
			info.Name,
			info.Description,
			fmt.Sprintf("%dx%d", config.ImageWidth, config.ImageHeight()),
			fmt.Sprintf("%d", config.SamplesPerPixel),
			fmt.Sprintf("%d", config.MaxDepth),
			fmt.Sprintf("%d", sc.LightCount()),
		})
	}
	table.Render()

	_, err := fmt.Fprint(ctx.App.Writer, buf.String())
	return err
}
