package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/Carmen-Shannon/oxy-plot/engine/canvas"
	"github.com/Carmen-Shannon/oxy-plot/engine/layout"
	"github.com/Carmen-Shannon/oxy-plot/engine/scene"
	"github.com/Carmen-Shannon/oxy-plot/engine/soft"
)

// headless is a scene shell with no window: an offscreen canvas and a fixed cursor.
type headless struct {
	canvas         canvas.Canvas
	mouseX, mouseY int
}

var _ scene.Shell = &headless{}

func (h *headless) Width() int            { return h.canvas.Width() }
func (h *headless) Height() int           { return h.canvas.Height() }
func (h *headless) Mouse() (int, int)     { return h.mouseX, h.mouseY }
func (h *headless) Canvas() canvas.Canvas { return h.canvas }

// frameOptions describes one headless render.
type frameOptions struct {
	width, height int
	// mouse is the cursor position, (-1, -1) for no pick.
	mouse   [2]int
	sceneID string
}

// renderHeadless draws every trace of fig that belongs to opts.sceneID into a new scene and
// renders one frame. The caller disposes the scene and closes the canvas.
//
// Parameters:
//   - fig: the figure to draw
//   - opts: viewport, cursor and target scene
//   - logger: logger for the scene and backend
//
// Returns:
//   - scene.Scene: the rendered scene
//   - canvas.Canvas: the canvas holding the frame
//   - error: if the canvas cannot be created or a trace fails to draw
func (c *CLI) renderHeadless(fig *layout.Figure, opts frameOptions, logger *log.Logger) (scene.Scene, canvas.Canvas, error) {
	width, height := opts.width, opts.height
	if width <= 0 {
		width = c.Config.Viewport.Width
	}
	if height <= 0 {
		height = c.Config.Viewport.Height
	}

	var canvasOpts []canvas.CanvasBuilderOption
	if c.Config.Render.FontFile != "" {
		canvasOpts = append(canvasOpts, canvas.WithFontFile(c.Config.Render.FontFile))
	}
	cv, err := canvas.NewCanvas(width, height, canvasOpts...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create canvas: %w", err)
	}

	sceneID := opts.sceneID
	if sceneID == "" {
		sceneID = "scene"
	}
	shell := &headless{canvas: cv, mouseX: opts.mouse[0], mouseY: opts.mouse[1]}
	s := scene.NewScene(sceneID, shell, soft.NewBackend(cv, soft.WithLogger(logger)),
		scene.WithConfig(c.Config.Scene),
		scene.WithLogger(logger.WithPrefix(sceneID)),
	)

	if err := drawFigure(s, fig, logger); err != nil {
		s.Dispose()
		cv.Close()
		return nil, nil, err
	}
	s.Render()
	return s, cv, nil
}

// drawFigure draws the traces of fig that belong to s. Traces of an unknown type are
// skipped with a warning.
func drawFigure(s scene.Scene, fig *layout.Figure, logger *log.Logger) error {
	if fig.Layout == nil {
		fig.Layout = layout.Layout{}
	}
	drawn := 0
	for _, t := range fig.Data {
		if t == nil || t.SceneID() != s.ID() {
			continue
		}
		err := s.Draw(fig.Layout, t)
		if errors.Is(err, layout.ErrUnknownTraceType) {
			logger.Warn("skipping trace", "uid", t.UID, "err", err)
			continue
		}
		if err != nil {
			return err
		}
		drawn++
	}
	logger.Debug("figure drawn", "scene", s.ID(), "traces", drawn, "objects", s.ObjectCount())
	return nil
}

// sceneIDs returns the distinct scene ids of fig's traces in first-seen order.
func sceneIDs(fig *layout.Figure) []string {
	var ids []string
	seen := map[string]bool{}
	for _, t := range fig.Data {
		if t == nil || seen[t.SceneID()] {
			continue
		}
		seen[t.SceneID()] = true
		ids = append(ids, t.SceneID())
	}
	if len(ids) == 0 {
		ids = append(ids, "scene")
	}
	return ids
}
