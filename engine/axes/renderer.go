package axes

import (
	"github.com/Carmen-Shannon/oxy-plot/common"
	"github.com/Carmen-Shannon/oxy-plot/engine/drawable"
)

// Renderer draws the axes box, grid, ticks and labels.
type Renderer interface {
	// Update applies a new configuration. Called when the layout changes or ticks move.
	//
	// Parameters:
	//   - opts: the configuration to copy from
	Update(opts *Options)

	// Draw renders the axes for this frame.
	//
	// Parameters:
	//   - params: camera matrices and viewport
	Draw(params drawable.CameraParams)

	// Bounds returns the data box the axes enclose.
	Bounds() common.Box

	// SetPixelLengths sets the data-space sizes solved from the pixel defaults for this frame.
	//
	// Parameters:
	//   - lineTick: tick mark length per axis
	//   - tickPad: tick label offset per axis
	//   - labelPad: axis title offset per axis
	SetPixelLengths(lineTick, tickPad, labelPad [3]float64)

	// Dispose releases the renderer's resources.
	Dispose()
}

// SpikeProperties is the per-axis spike configuration reconciled from the layout.
type SpikeProperties struct {
	Enable [3]bool
	Colors [3]common.RGBA
	Sides  [3]bool
	Width  [3]float64
}

// DefaultSpikeProperties returns spikes enabled on every axis, black, two pixels wide, drawn to both sides.
func DefaultSpikeProperties() SpikeProperties {
	return SpikeProperties{
		Enable: fill3(true),
		Colors: fill3(common.Black),
		Sides:  fill3(true),
		Width:  fill3(2.0),
	}
}

// SpikeParams positions spikes for one frame.
type SpikeParams struct {
	Position  common.Vec3
	Bounds    common.Box
	Colors    [3]common.RGBA
	DrawSides [3]bool
	Enabled   [3]bool
	LineWidth [3]float64
}

// Spikes draws guide lines from a picked point to the faces of the axes box.
type Spikes interface {
	// Update positions the spikes.
	//
	// Parameters:
	//   - params: picked data coordinate, axes box and styling
	Update(params SpikeParams)

	// Draw renders the spikes for this frame.
	//
	// Parameters:
	//   - params: camera matrices and viewport
	Draw(params drawable.CameraParams)

	// Dispose releases the renderer's resources.
	Dispose()
}
