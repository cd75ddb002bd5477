package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Carmen-Shannon/oxy-plot/engine/layout"
	"github.com/Carmen-Shannon/oxy-plot/engine/scene"
)

type pickOptions struct {
	x, y          int
	width, height int
	sceneID       string
}

func (c *CLI) pickCommand() *cobra.Command {
	var opts pickOptions

	cmd := &cobra.Command{
		Use:   "pick <figure>",
		Short: "Report the data point under a pixel",
		Long: `Render a figure headless with the cursor at --x, --y and print the data point nearest
to the cursor within the configured pick radius.`,
		Example: `  oxyplot pick points.json --x 400 --y 300`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPick(cmd.Context(), cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().IntVar(&opts.x, "x", 0, "cursor x in pixels from the left")
	cmd.Flags().IntVar(&opts.y, "y", 0, "cursor y in pixels from the top")
	cmd.Flags().IntVar(&opts.width, "width", 0, "viewport width in pixels (default from config)")
	cmd.Flags().IntVar(&opts.height, "height", 0, "viewport height in pixels (default from config)")
	cmd.Flags().StringVar(&opts.sceneID, "scene", "scene", "scene id to pick in")

	return cmd
}

func (c *CLI) runPick(ctx context.Context, w io.Writer, path string, opts pickOptions) error {
	logger := loggerFromContext(ctx)

	fig, err := layout.Load(path)
	if err != nil {
		return err
	}
	frame := frameOptions{width: opts.width, height: opts.height, mouse: [2]int{opts.x, opts.y}, sceneID: opts.sceneID}
	s, cv, err := c.renderHeadless(fig, frame, logger)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	defer cv.Close()
	defer s.Dispose()

	logger.Debug("pick done", "passes", s.PickPasses(), "objects", s.ObjectCount())
	return printSelection(w, s.Selection())
}

func printSelection(w io.Writer, sel *scene.Selection) error {
	if sel == nil {
		_, err := fmt.Fprintln(w, "no point within pick radius")
		return err
	}
	d := sel.DataCoordinate
	_, err := fmt.Fprintf(w,
		"trace:  %s (%s)\nindex:  %v\ndata:   (%g, %g, %g)\nscreen: (%.1f, %.1f)\ndepth:  %.6f\n",
		sel.Drawable.UID(), sel.Drawable.Kind(),
		sel.Index,
		d[0], d[1], d[2],
		sel.ScreenCoordinate[0], sel.ScreenCoordinate[1],
		sel.ZDistance,
	)
	return err
}
