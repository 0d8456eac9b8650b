// Package sim holds the per-tick world state: falling parcels, ground
// targets, decorations, and the score. Geometry generation and rendering
// live elsewhere; the simulation only moves points and flips flags.
package sim

import (
	"github.com/hollybyte/skydrop/internal/engine/geometry"
	"github.com/hollybyte/skydrop/pkg/math"
)

// Parcel drop defaults.
const ParcelRadius = 0.5

// Gravity is the constant release velocity of a parcel. Velocity does not
// change after release: no drag, no accumulated acceleration.
var Gravity = math.Vec3{X: 0, Y: -9.8, Z: 0}

// Parcel is a released package falling toward the terrain.
// Active flips to false exactly once, on terrain impact or on scoring a
// hit, and the parcel is inert afterwards. Inactive parcels stay in the
// collection; compaction is the owner's concern.
type Parcel struct {
	Position math.Vec3
	Velocity math.Vec3
	Radius   float32
	Mesh     *geometry.Mesh
	Active   bool
}

// NewParcel creates an active parcel at the given position with the
// standard gravity velocity and collision radius.
func NewParcel(position math.Vec3, mesh *geometry.Mesh) Parcel {
	return Parcel{
		Position: position,
		Velocity: Gravity,
		Radius:   ParcelRadius,
		Mesh:     mesh,
		Active:   true,
	}
}
