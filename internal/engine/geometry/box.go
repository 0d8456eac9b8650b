package geometry

// boxFace describes one axis-aligned face of a unit box: a flat normal,
// the texture-space axes, and four corners with their UVs. Corners are
// in unit coordinates (±1) and scaled by the half-extent at build time.
type boxFace struct {
	normal    [3]float32
	tangent   [3]float32
	bitangent [3]float32
	corners   [4][3]float32
	uv        [4][2]float32
}

var boxFaces = [6]boxFace{
	{ // front (+Z)
		normal: [3]float32{0, 0, 1}, tangent: [3]float32{1, 0, 0}, bitangent: [3]float32{0, 1, 0},
		corners: [4][3]float32{{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1}},
		uv:      [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
	},
	{ // back (-Z)
		normal: [3]float32{0, 0, -1}, tangent: [3]float32{-1, 0, 0}, bitangent: [3]float32{0, 1, 0},
		corners: [4][3]float32{{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1}},
		uv:      [4][2]float32{{1, 0}, {0, 0}, {0, 1}, {1, 1}},
	},
	{ // top (+Y)
		normal: [3]float32{0, 1, 0}, tangent: [3]float32{1, 0, 0}, bitangent: [3]float32{0, 0, -1},
		corners: [4][3]float32{{-1, 1, -1}, {1, 1, -1}, {1, 1, 1}, {-1, 1, 1}},
		uv:      [4][2]float32{{0, 1}, {1, 1}, {1, 0}, {0, 0}},
	},
	{ // bottom (-Y)
		normal: [3]float32{0, -1, 0}, tangent: [3]float32{1, 0, 0}, bitangent: [3]float32{0, 0, 1},
		corners: [4][3]float32{{-1, -1, -1}, {1, -1, -1}, {1, -1, 1}, {-1, -1, 1}},
		uv:      [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
	},
	{ // right (+X)
		normal: [3]float32{1, 0, 0}, tangent: [3]float32{0, 0, -1}, bitangent: [3]float32{0, 1, 0},
		corners: [4][3]float32{{1, -1, -1}, {1, 1, -1}, {1, 1, 1}, {1, -1, 1}},
		uv:      [4][2]float32{{1, 0}, {1, 1}, {0, 1}, {0, 0}},
	},
	{ // left (-X)
		normal: [3]float32{-1, 0, 0}, tangent: [3]float32{0, 0, 1}, bitangent: [3]float32{0, 1, 0},
		corners: [4][3]float32{{-1, -1, -1}, {-1, 1, -1}, {-1, 1, 1}, {-1, -1, 1}},
		uv:      [4][2]float32{{0, 0}, {0, 1}, {1, 1}, {1, 0}},
	},
}

// Box builds a cube of the given edge length centered at the origin.
// Faces do not share vertices (24 vertices, 36 indices) so each face keeps
// a flat normal and its own UV square.
func Box(size float32, tex uint32) *Mesh {
	half := size / 2

	vertices := make([]Vertex, 0, 24)
	indices := make([]uint32, 0, 36)

	for _, f := range boxFaces {
		base := uint32(len(vertices))
		for c := 0; c < 4; c++ {
			vertices = append(vertices, Vertex{
				Position:  [3]float32{f.corners[c][0] * half, f.corners[c][1] * half, f.corners[c][2] * half},
				Normal:    f.normal,
				TexCoord:  f.uv[c],
				Tangent:   f.tangent,
				Bitangent: f.bitangent,
			})
		}
		indices = append(indices, base, base+1, base+2, base+2, base+3, base)
	}

	return &Mesh{Vertices: vertices, Indices: indices, Texture: tex}
}
