package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Carmen-Shannon/oxy-plot/engine"
	"github.com/Carmen-Shannon/oxy-plot/engine/canvas"
	"github.com/Carmen-Shannon/oxy-plot/engine/layout"
	"github.com/Carmen-Shannon/oxy-plot/engine/renderer"
	"github.com/Carmen-Shannon/oxy-plot/engine/scene"
	"github.com/Carmen-Shannon/oxy-plot/engine/soft"
	"github.com/Carmen-Shannon/oxy-plot/engine/window"
)

type viewOptions struct {
	snapshotDir string
	vsync       bool
}

func (c *CLI) viewCommand() *cobra.Command {
	var opts viewOptions

	cmd := &cobra.Command{
		Use:   "view <figure>",
		Short: "Open a figure in an interactive window",
		Long: `Open a figure in a window. Drag with the left button to orbit, with any other button
to pan, and scroll to zoom. The arrow keys orbit in steps, R resets the camera, P saves a
PNG snapshot and Esc quits.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runView(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.snapshotDir, "snapshots", ".", "directory for P-key snapshots")
	cmd.Flags().BoolVar(&opts.vsync, "vsync", true, "synchronize presentation with the display")

	return cmd
}

func (c *CLI) runView(ctx context.Context, path string, opts viewOptions) error {
	logger := loggerFromContext(ctx)

	fig, err := layout.Load(path)
	if err != nil {
		return err
	}
	if fig.Layout == nil {
		fig.Layout = layout.Layout{}
	}

	vp := c.Config.Viewport
	win := window.NewWindow(
		window.WithTitle(fmt.Sprintf("%s - %s", appName, filepath.Base(path))),
		window.WithWidth(vp.Width),
		window.WithHeight(vp.Height),
	)

	mode := renderer.PresentModeUncapped
	if opts.vsync {
		mode = renderer.PresentModeVSync
	}
	r := renderer.NewRenderer(renderer.BackendTypeWGPU, win, renderer.WithPresentMode(mode))

	var canvasOpts []canvas.CanvasBuilderOption
	if c.Config.Render.FontFile != "" {
		canvasOpts = append(canvasOpts, canvas.WithFontFile(c.Config.Render.FontFile))
	}
	cv, err := canvas.NewCanvas(win.Width(), win.Height(), canvasOpts...)
	if err != nil {
		r.Release()
		win.Close()
		return fmt.Errorf("failed to create canvas: %w", err)
	}

	eng := engine.NewEngine(
		engine.WithWindow(win),
		engine.WithRenderer(r),
		engine.WithCanvas(cv),
		engine.WithLogger(logger.WithPrefix("engine")),
		engine.WithConfig(c.Config.Render),
		engine.WithSnapshotDir(opts.snapshotDir),
	)

	keys := map[string]int{}
	for i, id := range sceneIDs(fig) {
		keys[id] = i
		eng.AddScene(i, scene.NewScene(id, eng, soft.NewBackend(cv, soft.WithLogger(logger)),
			scene.WithConfig(c.Config.Scene),
			scene.WithLogger(logger.WithPrefix(id)),
		))
	}
	for _, t := range fig.Data {
		if t != nil {
			eng.Submit(keys[t.SceneID()], fig.Layout, t)
		}
	}

	logger.Info("viewing figure", "path", path, "scenes", len(keys), "traces", len(fig.Data))
	eng.SetTickCallback(func(float32) {
		if ctx.Err() != nil {
			eng.Quit()
		}
	})
	eng.Run()
	return nil
}
