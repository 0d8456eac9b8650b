// Package geometry builds indexed triangle meshes for all renderable shapes.
//
// Every generator emits the same interleaved vertex layout so the renderer
// can bind attributes by fixed offset. Generators are pure: they allocate
// and return a caller-owned Mesh and never touch the GPU.
package geometry

// Vertex is the fixed per-vertex attribute record shared by all generators.
// Field order matters: the renderer binds attributes at byte offsets into
// this struct (14 floats per vertex).
type Vertex struct {
	Position  [3]float32
	Normal    [3]float32
	TexCoord  [2]float32
	Tangent   [3]float32
	Bitangent [3]float32
}

// Mesh holds indexed triangle geometry ready for GPU upload.
// Texture handles are opaque renderer-owned ids; the mesh stores
// references only.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32

	Texture   uint32
	NormalMap uint32 // 0 when the surface has no normal map
	HeightMap uint32 // 0 except for terrain, displaced in the vertex stage
}
