package scene

import (
	"fmt"
	"slices"

	"github.com/Carmen-Shannon/oxy-plot/common"
	"github.com/Carmen-Shannon/oxy-plot/engine/camera"
	"github.com/Carmen-Shannon/oxy-plot/engine/drawable"
	"github.com/Carmen-Shannon/oxy-plot/engine/layout"
)

func (s *scene) Draw(l layout.Layout, trace *layout.Trace) error {
	if s.disposed {
		return ErrDisposed
	}
	if l == nil || trace == nil {
		return ErrNoSceneLayout
	}
	if err := trace.Type.Validate(); err != nil {
		return fmt.Errorf("failed to draw trace %q: %w", trace.UID, err)
	}

	s.syncLayout(l)
	s.setData(trace)
	if e, ok := s.glDataMap[trace.UID]; ok {
		s.updateRenderQueue(e.drawable, trace.IsVisible())
	}
	s.setAxesRange()
	s.setModelScale()
	s.configureAxes()

	if s.selectBuffer == nil {
		buf, err := s.backend.NewPickBuffer(max(s.shell.Width(), 1), max(s.shell.Height(), 1))
		if err != nil {
			return fmt.Errorf("failed to create pick buffer: %w", err)
		}
		s.selectBuffer = buf
	}
	if s.spikes == nil {
		sp, err := s.backend.NewSpikes()
		if err != nil {
			return fmt.Errorf("failed to create spikes: %w", err)
		}
		s.spikes = sp
	}
	s.dirty = true
	return nil
}

// syncLayout adopts the layout, applies its camera pose and background, then writes the
// live pose back so the layout always reflects the camera.
func (s *scene) syncLayout(l layout.Layout) {
	s.layout = l
	sl, ok := l[s.id]
	if !ok || sl == nil {
		sl = &layout.SceneLayout{}
		l[s.id] = sl
	}
	s.sceneLayout = sl
	for i := 0; i < 3; i++ {
		sl.Axis(i)
	}

	if sl.BgColor != "" {
		s.bgColor = common.ColorOr(sl.BgColor, s.bgColor)
	}
	if cp := sl.CameraPosition; cp != nil {
		s.cam.SetPose(camera.Pose{Rotation: cp.Rotation, Center: cp.Center, Distance: cp.Distance})
	}
	s.saveStateToLayout()
}

func (s *scene) saveStateToLayout() {
	p := s.cam.Pose()
	s.sceneLayout.CameraPosition = &layout.CameraPosition{
		Rotation: p.Rotation,
		Center:   p.Center,
		Distance: p.Distance,
	}
}

// setData builds or updates the drawable of a trace. Traces whose data cannot be drawn
// leave glDataMap untouched.
func (s *scene) setData(trace *layout.Trace) {
	var params drawable.Params
	switch trace.Type {
	case layout.TraceSurface:
		if p := s.surfaceParams(trace); p != nil {
			params = p
		}
	case layout.TraceScatter3D:
		if p := s.scatterParams(trace); p != nil {
			params = p
		}
	}
	if params == nil {
		s.logger.Warn("skipping trace without drawable data", "uid", trace.UID, "type", trace.Type)
		return
	}

	e, ok := s.glDataMap[trace.UID]
	if ok && e.drawable.Kind() != params.Kind() {
		s.logger.Debug("trace changed type, replacing drawable", "uid", trace.UID, "from", e.drawable.Kind(), "to", params.Kind())
		s.updateRenderQueue(e.drawable, false)
		e.drawable.Dispose()
		delete(s.glDataMap, trace.UID)
		ok = false
	}

	if ok {
		assignPickIDs(params, e.ids.IDs)
		if err := e.drawable.Update(params); err != nil {
			s.logger.Warn("failed to update drawable", "uid", trace.UID, "err", err)
		}
		return
	}

	block := s.ids.Reserve(pickSlots(params))
	assignPickIDs(params, block.IDs)
	d, err := s.create(params)
	if err != nil {
		s.logger.Warn("failed to create drawable", "uid", trace.UID, "err", err)
		return
	}
	d.SetUID(trace.UID)
	d.SetGroupID(block.Group)
	s.glDataMap[trace.UID] = &entry{drawable: d, ids: block}
	s.logger.Debug("drawable created", "uid", trace.UID, "kind", d.Kind(), "group", block.Group)
}

func (s *scene) create(params drawable.Params) (drawable.Drawable, error) {
	switch p := params.(type) {
	case *drawable.SurfaceParams:
		return s.backend.NewSurface(p)
	case *drawable.ScatterParams:
		return s.backend.NewScatter(p)
	}
	return nil, fmt.Errorf("%w: %s", layout.ErrUnknownTraceType, params.Kind())
}

// updateRenderQueue adds or removes a drawable by identity.
func (s *scene) updateRenderQueue(d drawable.Drawable, visible bool) {
	idx := slices.Index(s.renderQueue, d)
	switch {
	case visible && idx < 0:
		s.renderQueue = append(s.renderQueue, d)
		s.logger.Debug("drawable queued", "uid", d.UID(), "queue", len(s.renderQueue))
	case !visible && idx >= 0:
		s.renderQueue = slices.Delete(s.renderQueue, idx, idx+1)
		s.logger.Debug("drawable hidden", "uid", d.UID(), "queue", len(s.renderQueue))
	}
}
