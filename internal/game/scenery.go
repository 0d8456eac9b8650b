package game

import (
	"github.com/hollybyte/skydrop/internal/engine/geometry"
	"github.com/hollybyte/skydrop/internal/sim"
	"github.com/hollybyte/skydrop/pkg/math"
)

// Terrain grid resolution in cells; the mesh spans 100 world units per
// axis before horizontal scaling, matching the height sampler's square.
const terrainCells = 100

// Fixed scene placement.
var (
	treeBase = math.Vec3{X: 20, Z: 20}

	// Leaf cones stack on the trunk at these lifts, largest first.
	branchLifts = []float32{5, 8, 10.5}

	// Ornament offsets relative to the tree base, one per ball texture.
	ballOffsets = []math.Vec3{
		{X: 3.5, Y: 5, Z: 4.6},
		{X: -2.5, Y: 5.5, Z: 4.9},
		{X: -1.8, Y: 8, Z: 4.4},
		{X: 1.5, Y: 9, Z: 3.5},
		{X: -0.8, Y: 11.5, Z: 2.8},
	}

	starOffset = math.Vec3{Y: 14}

	// Target lattice: five houses on a diagonal across the map.
	targetSpotX = [5]float32{-30, -15, 0, 15, 30}
	targetSpotZ = [5]float32{-20, -10, 0, 10, 20}
)

// scenery holds every static mesh in the scene, CPU-side.
type scenery struct {
	terrain  *geometry.Mesh
	trunk    *geometry.Mesh
	branches []*geometry.Mesh
	balloon  *geometry.Mesh
	gondola  *geometry.Mesh
	parcel   *geometry.Mesh
	house    *geometry.Mesh
	roof     *geometry.Mesh

	decorations sim.Decorations
}

// buildScenery generates all static meshes and the decoration table.
func buildScenery(tex *textures) *scenery {
	s := &scenery{
		terrain: geometry.TerrainGrid(terrainCells, terrainCells, tex.grass, tex.heightMap),
		trunk:   geometry.Cylinder(1.5, 15, 32, tex.bark),
		branches: []*geometry.Mesh{
			geometry.Cone(6, 6, 32, tex.leaves),
			geometry.Cone(5, 5, 32, tex.leaves),
			geometry.Cone(4, 4, 32, tex.leaves),
		},
		balloon: geometry.Ellipsoid(5, 3, 3, 32, 32, tex.airship, tex.airshipNormal),
		gondola: geometry.Box(2, tex.airship),
		parcel:  geometry.Box(1, tex.parcel),
		house:   geometry.Box(4, tex.house),
		roof:    geometry.Cone(3.5, 3, 4, tex.house),

		decorations: sim.Decorations{},
	}

	s.decorations.Add("tree", geometry.Ellipsoid(0.6, 3, 0.6, 24, 24, tex.star, 0), starOffset)
	for i, offset := range ballOffsets {
		ball := geometry.Ellipsoid(0.4, 0.4, 0.4, 24, 24, tex.balls[i%len(tex.balls)], 0)
		s.decorations.Add("tree", ball, offset)
	}

	return s
}
