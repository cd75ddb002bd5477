package scene

import (
	"github.com/Carmen-Shannon/oxy-plot/engine/drawable"
	"github.com/Carmen-Shannon/oxy-plot/engine/pick"
)

// handlePick runs one pick pass per group of 256 ids and returns the hit nearest in depth,
// or nil when nothing lies within the pick radius.
func (s *scene) handlePick(params drawable.CameraParams) *Selection {
	s.pickPasses = 0
	if s.selectBuffer == nil {
		return nil
	}
	w, h := s.shell.Width(), s.shell.Height()
	s.selectBuffer.SetShape(w, h)
	mx, my := s.shell.Mouse()

	var (
		best    *Selection
		bestHit *pick.Result
	)
	for pass := 0; pass < s.ids.Passes(); pass++ {
		s.pickPasses++
		s.selectBuffer.Begin(mx, my, s.pickRadius)
		for _, d := range s.renderQueue {
			if d.GroupID() == pass {
				d.DrawPick(params, s.selectBuffer)
			}
		}
		hit := s.selectBuffer.End()
		if hit == nil || (bestHit != nil && hit.Distance > bestHit.Distance) {
			continue
		}

		for _, d := range s.renderQueue {
			if d.GroupID() != pass {
				continue
			}
			pd := d.Pick(hit)
			if pd == nil {
				continue
			}
			z := drawable.Depth(params.Project(pd.Position))
			if best == nil || best.ZDistance > z {
				best = &Selection{Drawable: d, Index: pd.Index, Position: pd.Position, ZDistance: z}
				bestHit = hit
			}
		}
	}
	if best == nil {
		return nil
	}

	best.DataCoordinate = best.Position
	if dc, ok := best.Drawable.DataCoordinate(best.Index); ok {
		best.DataCoordinate = dc
	}
	if screen, ok := params.ToScreen(params.Project(best.DataCoordinate)); ok {
		best.ScreenCoordinate = screen
	}
	best.MouseCoordinate = bestHit.Coord
	return best
}
