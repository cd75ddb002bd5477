package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Carmen-Shannon/oxy-plot/engine/layout"
)

type renderOptions struct {
	outDir  string
	width   int
	height  int
	mouse   string
	sceneID string
}

func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOptions

	cmd := &cobra.Command{
		Use:   "render <figure...>",
		Short: "Render figures to PNG",
		Long: `Render one or more JSON or YAML figures to PNG without a window.

Figures are rendered concurrently, one scene per figure. Each image is written to the
output directory as <figure name>.png. Pass --mouse to render the pick spikes and
hover state as if the cursor were at that pixel.`,
		Example: `  oxyplot render surface.json
  oxyplot render a.yaml b.yaml --out images --width 1024 --height 768
  oxyplot render points.json --mouse 400,300`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.outDir, "out", "o", ".", "output directory")
	cmd.Flags().IntVar(&opts.width, "width", 0, "image width in pixels (default from config)")
	cmd.Flags().IntVar(&opts.height, "height", 0, "image height in pixels (default from config)")
	cmd.Flags().StringVar(&opts.mouse, "mouse", "", "cursor position as X,Y")
	cmd.Flags().StringVar(&opts.sceneID, "scene", "scene", "scene id to render")

	return cmd
}

// runRender renders every figure through a worker pool and joins the failures.
func (c *CLI) runRender(ctx context.Context, paths []string, opts renderOptions) error {
	logger := loggerFromContext(ctx)

	mouse, err := parseMouse(opts.mouse)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	prog := newProgress(logger)
	pool := worker.NewDynamicWorkerPool(c.Config.Render.Workers, len(paths), 1*time.Second)
	defer pool.Stop()

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	for i, path := range paths {
		if err := ctx.Err(); err != nil {
			break
		}
		out := filepath.Join(opts.outDir, strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))+".png")
		frame := frameOptions{width: opts.width, height: opts.height, mouse: mouse, sceneID: opts.sceneID}

		wg.Add(1)
		pool.SubmitTask(worker.Task{
			ID:      i,
			Payload: path,
			Do: func() (any, error) {
				defer wg.Done()
				err := c.renderFile(path, out, frame, logger.With("figure", filepath.Base(path)))
				if err != nil {
					mu.Lock()
					errs = append(errs, err)
					mu.Unlock()
				}
				return out, err
			},
		})
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %d figure(s)", len(paths)), "out", opts.outDir)
	return nil
}

// renderFile renders the figure at path and writes the PNG to out.
func (c *CLI) renderFile(path, out string, frame frameOptions, logger *log.Logger) error {
	fig, err := layout.Load(path)
	if err != nil {
		return err
	}
	s, cv, err := c.renderHeadless(fig, frame, logger)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	defer cv.Close()
	defer s.Dispose()

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", out, err)
	}
	if err := s.WritePNG(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", out, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}
	logger.Debug("wrote image", "path", out, "passes", s.PickPasses())
	return nil
}

// parseMouse parses "X,Y". An empty string means no cursor.
func parseMouse(s string) ([2]int, error) {
	if s == "" {
		return [2]int{-1, -1}, nil
	}
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return [2]int{}, fmt.Errorf("invalid --mouse %q: want X,Y", s)
	}
	x, errX := strconv.Atoi(strings.TrimSpace(xs))
	y, errY := strconv.Atoi(strings.TrimSpace(ys))
	if errX != nil || errY != nil {
		return [2]int{}, fmt.Errorf("invalid --mouse %q: want integer X,Y", s)
	}
	return [2]int{x, y}, nil
}
