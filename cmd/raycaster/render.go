package main

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"raycaster/internal/logger"
	"raycaster/pkg/engine"
	"raycaster/pkg/scene"
)

// Render traces the demo scene headless and writes the last frame.
func Render(ctx *cli.Context) error {
	cfg, log, err := setup(ctx)
	if err != nil {
		return err
	}
	defer log.Close()

	if w := ctx.Int("width"); w > 0 {
		cfg.Window.Width = w
	}
	if h := ctx.Int("height"); h > 0 {
		cfg.Window.Height = h
	}
	if n := ctx.Int("workers"); n > 0 {
		cfg.Render.Workers = n
	}
	frames := ctx.Int("frames")
	if frames < 1 {
		return fmt.Errorf("frames must be at least 1, got %d", frames)
	}

	sc := scene.NewDefaultScene(cfg.SceneOptions(), cfg.CameraPosition())
	defer sc.Release()

	animator := scene.DefaultAnimation()
	if err := animator.Validate(sc); err != nil {
		return err
	}

	rt, err := engine.NewRaytracer(sc, cfg.Render, log)
	if err != nil {
		return err
	}

	frame := engine.NewFrameBuffer(cfg.Window.Width, cfg.Window.Height)
	log.Infof("rendering %d frame(s) at %dx%d with %d workers", frames, frame.Width(), frame.Height(), rt.Workers())

	start := time.Now()
	var stats engine.FrameStats
	for i := 0; i < frames; i++ {
		if i > 0 {
			animator.Step(sc)
		}
		stats = rt.Render(frame)
		log.Debugf("frame %d rendered in %s", i, stats.RenderTime)
	}

	displayFrameStats(log, stats, frame.Height(), time.Since(start))

	out := ctx.String("out")
	if err := engine.SaveScreenshot(frame, out); err != nil {
		return err
	}
	log.Infof("frame written to %s", out)

	if ctx.Bool("ascii") {
		preview, err := engine.NewASCIIRenderer(cfg.Preview, os.Stdout)
		if err != nil {
			return err
		}
		defer preview.Close()
		return preview.Render(frame)
	}
	return nil
}

func displayFrameStats(log *logger.Logger, stats engine.FrameStats, rows int, total time.Duration) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Worker", "Rows", "% of frame", "Render time"})
	for _, stat := range stats.Workers {
		table.Append([]string{
			fmt.Sprintf("%d", stat.ID),
			fmt.Sprintf("%d", stat.Rows),
			fmt.Sprintf("%02.1f %%", 100*float64(stat.Rows)/float64(rows)),
			stat.RenderTime.String(),
		})
	}
	table.SetFooter([]string{"", "", "LAST FRAME", stats.RenderTime.String()})

	table.Render()
	log.Infof("frame statistics (total %s)\n%s", total, buf.String())
}
