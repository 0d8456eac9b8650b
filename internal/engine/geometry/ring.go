package geometry

import "github.com/chewxy/math32"

// ringPoint is one angular sample on a circle of the given radius,
// with the angular fraction used for lateral texture mapping.
type ringPoint struct {
	x, z float32
	u    float32
}

// ring samples a circle of the given radius at evenly spaced angles.
// Shared by the cone and cylinder, which both duplicate vertices per ring
// so cap normals and side normals never interpolate across the rim.
func ring(radius float32, segments int) []ringPoint {
	points := make([]ringPoint, segments)
	step := 2 * math32.Pi / float32(segments)
	for i := range points {
		angle := float32(i) * step
		points[i] = ringPoint{
			x: radius * math32.Cos(angle),
			z: radius * math32.Sin(angle),
			u: float32(i) / float32(segments),
		}
	}
	return points
}

// Cone builds a cone with its base ring on the XZ plane around the origin
// and the apex at (0, height, 0). The base is texture-mapped radially and
// the lateral surface by angular fraction. Base and side vertices are
// disjoint at the same perimeter points: base normals point straight down
// while side normals follow the slant.
func Cone(radius, height float32, segments int, tex uint32) *Mesh {
	vertices := make([]Vertex, 0, 2+segments*2)
	indices := make([]uint32, 0, segments*6)

	// Base center, then apex.
	vertices = append(vertices,
		Vertex{
			Position: [3]float32{0, 0, 0}, Normal: [3]float32{0, -1, 0},
			TexCoord: [2]float32{0.5, 0.5},
			Tangent:  [3]float32{1, 0, 0}, Bitangent: [3]float32{0, 0, 1},
		},
		Vertex{
			Position: [3]float32{0, height, 0}, Normal: [3]float32{0, 1, 0},
			TexCoord: [2]float32{0.5, 0.5},
			Tangent:  [3]float32{1, 0, 0}, Bitangent: [3]float32{0, 0, 1},
		},
	)

	for _, p := range ring(radius, segments) {
		// Polar UV over the base disc.
		u := (p.x/radius + 1) * 0.5
		v := (p.z/radius + 1) * 0.5
		vertices = append(vertices, Vertex{
			Position: [3]float32{p.x, 0, p.z}, Normal: [3]float32{0, -1, 0},
			TexCoord: [2]float32{u, v},
			Tangent:  [3]float32{1, 0, 0}, Bitangent: [3]float32{0, 0, 1},
		})

		side := normalize3([3]float32{p.x, radius / height, p.z})
		vertices = append(vertices, Vertex{
			Position: [3]float32{p.x, 0, p.z}, Normal: side,
			TexCoord: [2]float32{p.u, 0},
			Tangent:  [3]float32{1, 0, 0}, Bitangent: [3]float32{0, 1, 0},
		})
	}

	for i := 0; i < segments; i++ {
		next := (i + 1) % segments
		// Base fan, facing down.
		indices = append(indices, 0, uint32(2+i*2), uint32(2+next*2))
	}
	for i := 0; i < segments; i++ {
		next := (i + 1) % segments
		// Side fan from the apex.
		indices = append(indices, 1, uint32(2+next*2+1), uint32(2+i*2+1))
	}

	return &Mesh{Vertices: vertices, Indices: indices, Texture: tex}
}

// Cylinder builds a cylinder with its bottom cap on the XZ plane around
// the origin and its top cap at y = height. Each angular sample carries
// four vertices (bottom rim, top rim, side bottom, side top) so cap
// normals stay vertical while side normals stay radial.
func Cylinder(radius, height float32, segments int, tex uint32) *Mesh {
	vertices := make([]Vertex, 0, 2+segments*4)
	indices := make([]uint32, 0, segments*12)

	// Bottom center, then top center.
	vertices = append(vertices,
		Vertex{
			Position: [3]float32{0, 0, 0}, Normal: [3]float32{0, -1, 0},
			TexCoord: [2]float32{0.5, 0.5},
			Tangent:  [3]float32{1, 0, 0}, Bitangent: [3]float32{0, 0, 1},
		},
		Vertex{
			Position: [3]float32{0, height, 0}, Normal: [3]float32{0, 1, 0},
			TexCoord: [2]float32{0.5, 0.5},
			Tangent:  [3]float32{1, 0, 0}, Bitangent: [3]float32{0, 0, 1},
		},
	)

	for _, p := range ring(radius, segments) {
		radial := normalize3([3]float32{p.x, 0, p.z})
		// Tangent follows the angular direction around the side.
		sideTangent := [3]float32{-p.z, 0, p.x}

		vertices = append(vertices,
			// Bottom rim (cap normal).
			Vertex{
				Position: [3]float32{p.x, 0, p.z}, Normal: [3]float32{0, -1, 0},
				TexCoord: [2]float32{p.u, 0},
				Tangent:  [3]float32{1, 0, 0}, Bitangent: [3]float32{0, 0, 1},
			},
			// Top rim (cap normal).
			Vertex{
				Position: [3]float32{p.x, height, p.z}, Normal: [3]float32{0, 1, 0},
				TexCoord: [2]float32{p.u, 1},
				Tangent:  [3]float32{1, 0, 0}, Bitangent: [3]float32{0, 0, 1},
			},
			// Side bottom (radial normal).
			Vertex{
				Position: [3]float32{p.x, 0, p.z}, Normal: radial,
				TexCoord: [2]float32{p.u, 1},
				Tangent:  sideTangent, Bitangent: [3]float32{0, 1, 0},
			},
			// Side top (radial normal).
			Vertex{
				Position: [3]float32{p.x, height, p.z}, Normal: radial,
				TexCoord: [2]float32{p.u, 0},
				Tangent:  sideTangent, Bitangent: [3]float32{0, 1, 0},
			},
		)
	}

	const base = 2
	for i := 0; i < segments; i++ {
		next := (i + 1) % segments

		indices = append(indices,
			// Bottom cap fan.
			0, uint32(base+i*4), uint32(base+next*4),
			// Top cap fan.
			1, uint32(base+next*4+1), uint32(base+i*4+1),
		)

		// Two triangles per side quad.
		bl := uint32(base + i*4 + 2)
		tl := uint32(base + i*4 + 3)
		br := uint32(base + next*4 + 2)
		tr := uint32(base + next*4 + 3)
		indices = append(indices, bl, tr, tl, bl, br, tr)
	}

	return &Mesh{Vertices: vertices, Indices: indices, Texture: tex}
}

func normalize3(v [3]float32) [3]float32 {
	l := math32.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	if l < 1e-6 {
		return [3]float32{0, 1, 0}
	}
	return [3]float32{v[0] / l, v[1] / l, v[2] / l}
}

func cross3(a, b [3]float32) [3]float32 {
	return [3]float32{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}
