package cmd

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/david14higgins/Pathtracer/asset/image"
	"github.com/david14higgins/Pathtracer/asset/scenefile"
	"github.com/david14higgins/Pathtracer/renderer"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// RenderFrame renders a single scene file to a PPM image:
// `render <scene.json> [--useBVH] [--useAA] [--aa-grid N]`.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return errors.New("missing scene file argument")
	}
	sceneFile := ctx.Args().First()

	result, err := scenefile.Load(sceneFile)
	if err != nil {
		return err
	}

	mode, err := parseRenderMode(result.RenderMode)
	if err != nil {
		return err
	}

	opts := renderer.DefaultOptions()
	opts.FrameW = result.Camera.Width
	opts.FrameH = result.Camera.Height
	opts.Mode = mode
	opts.NumBounces = result.NumBounces
	opts.MinBouncesForRR = ctx.Int("rr-bounces")
	opts.UseBVH = ctx.Bool("useBVH")
	opts.UseAA = ctx.Bool("useAA")
	opts.SamplesPerPixel = ctx.Int("aa-grid")
	opts.PathSamples = ctx.Int("path-samples")
	opts.Exposure = result.Camera.Exposure
	opts.ToneMap = ctx.Bool("tonemap")
	opts.Seed = int64(ctx.Int("seed"))
	opts.ProgressFunc = func(fraction float64) {
		logger.Infof("render progress: %02.0f%%", fraction*100)
	}

	r, err := renderer.New(opts)
	if err != nil {
		return err
	}

	img, err := r.Render(result.Scene, result.Camera)
	if err != nil {
		return err
	}

	outPath := ctx.String("out")
	if outPath == "" {
		outPath = image.OutputPath(sceneFile)
	}
	if err := image.WritePPM(img, outPath); err != nil {
		return err
	}
	logger.Noticef("wrote frame to %s", outPath)

	displayFrameStats(r.Stats())

	return nil
}

func parseRenderMode(mode string) (renderer.Mode, error) {
	switch mode {
	case "binary":
		return renderer.Binary, nil
	case "phong":
		return renderer.Phong, nil
	case "pathtracer":
		return renderer.PathTracer, nil
	default:
		return 0, fmt.Errorf("render: unknown rendermode %q", mode)
	}
}

func displayFrameStats(stats renderer.FrameStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Worker", "Rows", "% of frame", "Render time"})
	for _, stat := range stats.Tiles {
		table.Append([]string{
			fmt.Sprintf("%d", stat.WorkerId),
			fmt.Sprintf("%d-%d", stat.RowStart, stat.RowEnd),
			fmt.Sprintf("%02.1f %%", stat.FramePercent),
			fmt.Sprintf("%s", stat.RenderTime),
		})
	}
	table.SetFooter([]string{"", "", "TOTAL", fmt.Sprintf("%s", stats.RenderTime)})

	table.Render()
	logger.Noticef("frame statistics\n%s", buf.String())
}
