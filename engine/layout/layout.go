// Package layout is the declarative input of a scene: per-scene layout (camera, background,
// axes) and the trace data objects that become drawables.
//
// Optional properties are pointers so that a scene can tell "absent" from "zero" and only
// copy what an incoming layout actually sets.
package layout

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Figure bundles a layout with the traces drawn against it.
type Figure struct {
	Layout Layout   `json:"layout" yaml:"layout"`
	Data   []*Trace `json:"data" yaml:"data"`
}

// Layout maps scene ids ("scene", "scene2", ...) to their layouts.
type Layout map[string]*SceneLayout

// SceneLayout is the layout of one 3D scene.
type SceneLayout struct {
	// CameraPosition is written back by the scene after every Draw.
	CameraPosition *CameraPosition `json:"cameraposition,omitempty" yaml:"cameraposition,omitempty"`
	BgColor        string          `json:"bgcolor,omitempty" yaml:"bgcolor,omitempty"`
	XAxis          *Axis           `json:"xaxis,omitempty" yaml:"xaxis,omitempty"`
	YAxis          *Axis           `json:"yaxis,omitempty" yaml:"yaxis,omitempty"`
	ZAxis          *Axis           `json:"zaxis,omitempty" yaml:"zaxis,omitempty"`
}

// Axis returns the axis at index i (0 = x, 1 = y, 2 = z), allocating an empty one if unset.
func (s *SceneLayout) Axis(i int) *Axis {
	slot := [3]**Axis{&s.XAxis, &s.YAxis, &s.ZAxis}[i]
	if *slot == nil {
		*slot = &Axis{}
	}
	return *slot
}

// CameraPosition is the persisted camera pose. It serializes as the 3-tuple
// [rotation quaternion, center, distance].
type CameraPosition struct {
	Rotation [4]float64
	Center   [3]float64
	Distance float64
}

func (c CameraPosition) tuple() []any {
	return []any{c.Rotation[:], c.Center[:], c.Distance}
}

func (c *CameraPosition) fromParts(rot, center []float64, dist float64) error {
	if len(rot) != 4 || len(center) != 3 {
		return fmt.Errorf("cameraposition: want [[4 floats], [3 floats], distance], got %d and %d components", len(rot), len(center))
	}
	copy(c.Rotation[:], rot)
	copy(c.Center[:], center)
	c.Distance = dist
	return nil
}

func (c CameraPosition) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.tuple())
}

func (c *CameraPosition) UnmarshalJSON(data []byte) error {
	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return fmt.Errorf("cameraposition: %w", err)
	}
	if len(parts) != 3 {
		return fmt.Errorf("cameraposition: want 3 elements, got %d", len(parts))
	}
	var rot, center []float64
	var dist float64
	if err := json.Unmarshal(parts[0], &rot); err != nil {
		return fmt.Errorf("cameraposition rotation: %w", err)
	}
	if err := json.Unmarshal(parts[1], &center); err != nil {
		return fmt.Errorf("cameraposition center: %w", err)
	}
	if err := json.Unmarshal(parts[2], &dist); err != nil {
		return fmt.Errorf("cameraposition distance: %w", err)
	}
	return c.fromParts(rot, center, dist)
}

func (c CameraPosition) MarshalYAML() (any, error) {
	return c.tuple(), nil
}

func (c *CameraPosition) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode || len(value.Content) != 3 {
		return fmt.Errorf("cameraposition: line %d: want a 3 element sequence", value.Line)
	}
	var rot, center []float64
	var dist float64
	if err := value.Content[0].Decode(&rot); err != nil {
		return fmt.Errorf("cameraposition rotation: %w", err)
	}
	if err := value.Content[1].Decode(&center); err != nil {
		return fmt.Errorf("cameraposition center: %w", err)
	}
	if err := value.Content[2].Decode(&dist); err != nil {
		return fmt.Errorf("cameraposition distance: %w", err)
	}
	return c.fromParts(rot, center, dist)
}
