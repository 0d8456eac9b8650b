package geometry

import "github.com/chewxy/math32"

// gridIndices builds two triangles per cell of a rows x cols quad grid
// whose vertices are laid out row-major with cols+1 vertices per row.
// Shared by the ellipsoid and terrain, which both reuse vertices across
// cells for smooth shading (unlike the faceted box/cone/cylinder).
func gridIndices(rows, cols int) []uint32 {
	indices := make([]uint32, 0, rows*cols*6)
	stride := cols + 1
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			first := uint32(i*stride + j)
			second := first + uint32(stride)
			indices = append(indices,
				first, second, first+1,
				second, second+1, first+1,
			)
		}
	}
	return indices
}

// Ellipsoid builds an ellipsoid with semi-axes rx, ry, rz using the
// standard latitude/longitude parametrization: phi sweeps [0,pi] over
// stacks+1 rows and theta sweeps [0,2pi] over slices+1 columns. The
// normal is the position scaled by the inverse radii and renormalized
// (the true ellipsoid normal, not the position direction). The tangent
// follows the theta derivative, the bitangent is normal x tangent, so
// every vertex carries a right-handed orthogonal frame for normal
// mapping.
func Ellipsoid(rx, ry, rz float32, slices, stacks int, tex, normalMap uint32) *Mesh {
	vertices := make([]Vertex, 0, (stacks+1)*(slices+1))

	for i := 0; i <= stacks; i++ {
		phi := math32.Pi * float32(i) / float32(stacks)
		for j := 0; j <= slices; j++ {
			theta := 2 * math32.Pi * float32(j) / float32(slices)

			x := rx * math32.Cos(theta) * math32.Sin(phi)
			y := ry * math32.Cos(phi)
			z := rz * math32.Sin(theta) * math32.Sin(phi)

			normal := normalize3([3]float32{x / rx, y / ry, z / rz})
			tangent := normalize3([3]float32{-math32.Sin(theta), 0, math32.Cos(theta)})

			vertices = append(vertices, Vertex{
				Position:  [3]float32{x, y, z},
				Normal:    normal,
				TexCoord:  [2]float32{float32(j) / float32(slices), float32(i) / float32(stacks)},
				Tangent:   tangent,
				Bitangent: cross3(normal, tangent),
			})
		}
	}

	return &Mesh{
		Vertices:  vertices,
		Indices:   gridIndices(stacks, slices),
		Texture:   tex,
		NormalMap: normalMap,
	}
}

// terrainUVRepeat tiles the ground texture across the grid.
const terrainUVRepeat = 10.0

// TerrainGrid builds a flat (width+1) x (depth+1) vertex grid centered at
// the origin in the XZ plane. The CPU mesh stores zero elevation and +Y
// normals: vertical displacement happens in the vertex stage by sampling
// heightTex, so the grid here is topology only. The ground texture
// repeats terrainUVRepeat times across the grid.
func TerrainGrid(width, depth int, tex, heightTex uint32) *Mesh {
	vertices := make([]Vertex, 0, (width+1)*(depth+1))

	for z := 0; z <= depth; z++ {
		for x := 0; x <= width; x++ {
			u := float32(x) / float32(width)
			v := float32(z) / float32(depth)
			vertices = append(vertices, Vertex{
				Position:  [3]float32{float32(x) - float32(width)/2, 0, float32(z) - float32(depth)/2},
				Normal:    [3]float32{0, 1, 0},
				TexCoord:  [2]float32{u * terrainUVRepeat, v * terrainUVRepeat},
				Tangent:   [3]float32{1, 0, 0},
				Bitangent: [3]float32{0, 0, 1},
			})
		}
	}

	return &Mesh{
		Vertices:  vertices,
		Indices:   gridIndices(depth, width),
		Texture:   tex,
		HeightMap: heightTex,
	}
}
