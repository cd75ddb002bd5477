// Package drawable defines the contract between a scene and the renderers that draw its traces.
package drawable

import (
	"github.com/Carmen-Shannon/oxy-plot/common"
	"github.com/Carmen-Shannon/oxy-plot/engine/pick"
)

// Kind tags the trace type a drawable renders.
type Kind string

const (
	KindSurface   Kind = "surface"
	KindScatter3D Kind = "scatter3d"
)

// PointData is what a drawable reports for a pick hit that belongs to it.
type PointData struct {
	// Index identifies the picked element: one entry for point traces, (i, j) for grids.
	Index []int
	// Position is the element's position in data space.
	Position common.Vec3
}

// Drawable is a renderable trace owned by a scene.
type Drawable interface {
	// Draw renders the drawable into its canvas.
	//
	// Parameters:
	//   - params: camera matrices and viewport for this frame
	//   - transparent: true during the blended pass, false during the opaque pass
	Draw(params CameraParams, transparent bool)

	// DrawPick writes the drawable's pick ids into target.
	//
	// Parameters:
	//   - params: camera matrices and viewport for this frame
	//   - target: the pick buffer of the current pass
	DrawPick(params CameraParams, target pick.Target)

	// Pick decodes a pick hit.
	//
	// Parameters:
	//   - hit: the pick buffer result
	//
	// Returns:
	//   - *PointData: the picked element, or nil if the hit was written by another drawable
	Pick(hit *pick.Result) *PointData

	// Update replaces the drawable's parameters in place.
	//
	// Parameters:
	//   - params: *SurfaceParams or *ScatterParams matching Kind
	//
	// Returns:
	//   - error: if the params do not match the drawable's kind
	Update(params Params) error

	// Dispose releases the drawable's resources.
	Dispose()

	// Bounds returns the data-space extent of the drawable.
	Bounds() common.Box

	// ClipBounds returns the box outside of which nothing is drawn.
	ClipBounds() common.Box

	// SetClipBounds sets the clip box. Scenes set the same box on every queued drawable.
	SetClipBounds(b common.Box)

	// GroupID returns the picking pass this drawable is drawn in.
	GroupID() int

	// SetGroupID assigns the picking pass.
	SetGroupID(id int)

	// UID returns the trace id this drawable renders.
	UID() string

	// SetUID sets the trace id.
	SetUID(uid string)

	// Kind returns the trace type tag.
	Kind() Kind

	// SupportsTransparency reports whether the drawable wants a second draw in the blended pass.
	SupportsTransparency() bool

	// DataCoordinate maps a picked index to its coordinate in data space.
	//
	// Parameters:
	//   - index: PointData.Index of a previous pick
	//
	// Returns:
	//   - common.Vec3: data-space coordinate
	//   - bool: false if the index is out of range
	DataCoordinate(index []int) (common.Vec3, bool)
}

// Base holds the bookkeeping every drawable shares. Embed it to satisfy the
// id, group and clip accessors of Drawable.
type Base struct {
	uid     string
	groupID int
	clip    common.Box
}

func (b *Base) UID() string                { return b.uid }
func (b *Base) SetUID(uid string)          { b.uid = uid }
func (b *Base) GroupID() int               { return b.groupID }
func (b *Base) SetGroupID(id int)          { b.groupID = id }
func (b *Base) ClipBounds() common.Box     { return b.clip }
func (b *Base) SetClipBounds(c common.Box) { b.clip = c }
