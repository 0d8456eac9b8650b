package sim

import (
	"github.com/hollybyte/skydrop/internal/engine/geometry"
	"github.com/hollybyte/skydrop/pkg/math"
)

// Decoration is a small mesh attached to a parent object at a fixed
// offset from the parent's origin. Pure data: decorations have no
// lifecycle of their own and disappear with the owning scene.
type Decoration struct {
	Mesh   *geometry.Mesh
	Offset math.Vec3
}

// PlacedMesh is a decoration resolved to a world position.
type PlacedMesh struct {
	Mesh     *geometry.Mesh
	Position math.Vec3
}

// Decorations maps an anchor id to the decorations attached to it, so
// placement lives in one declarative table instead of literals scattered
// through scene-build code.
type Decorations map[string][]Decoration

// Add attaches a decoration to an anchor.
func (d Decorations) Add(anchor string, mesh *geometry.Mesh, offset math.Vec3) {
	d[anchor] = append(d[anchor], Decoration{Mesh: mesh, Offset: offset})
}

// Resolve returns the decorations under anchor placed against the
// parent's world position. Unknown anchors resolve to nothing.
func (d Decorations) Resolve(anchor string, parent math.Vec3) []PlacedMesh {
	src := d[anchor]
	if len(src) == 0 {
		return nil
	}
	placed := make([]PlacedMesh, len(src))
	for i, deco := range src {
		placed[i] = PlacedMesh{Mesh: deco.Mesh, Position: parent.Add(deco.Offset)}
	}
	return placed
}
