package sim

import (
	"github.com/chewxy/math32"

	"github.com/hollybyte/skydrop/internal/engine/geometry"
	"github.com/hollybyte/skydrop/internal/engine/terrain"
	"github.com/hollybyte/skydrop/pkg/math"
)

// Target placement defaults.
const (
	TargetRadius = 2.5

	// GroundClearance is how high above the sampled terrain a house body
	// sits when placed.
	GroundClearance = 2.0

	// RoofLift and RoofTurn place the roof mesh relative to the body:
	// raised by RoofLift and rotated RoofTurn radians about Y.
	RoofLift = 2.0
	RoofTurn = math32.Pi / 4
)

// Target is a stationary house awarding score when hit by a parcel.
// Active transitions to false exactly once, on the first hit.
type Target struct {
	Position math.Vec3
	Body     *geometry.Mesh
	Roof     *geometry.Mesh
	Radius   float32
	Active   bool
}

// NewTarget creates an active target at the given position with the
// standard collision radius.
func NewTarget(position math.Vec3, body, roof *geometry.Mesh) Target {
	return Target{
		Position: position,
		Body:     body,
		Roof:     roof,
		Radius:   TargetRadius,
		Active:   true,
	}
}

// PlaceTarget grounds a new target on the terrain at (x, z), lifting the
// body GroundClearance above the sampled height.
func PlaceTarget(ground *terrain.Heightfield, x, z float32, body, roof *geometry.Mesh) Target {
	pos := math.Vec3{X: x, Y: ground.HeightAt(x, z) + GroundClearance, Z: z}
	return NewTarget(pos, body, roof)
}
