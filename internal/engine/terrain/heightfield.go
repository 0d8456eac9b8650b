// Package terrain provides world-space elevation lookup over an
// elevation image.
package terrain

import "image"

// baseExtent is the side length of the terrain square before horizontal
// scaling. It matches the 100x100 cell grid built by the geometry package.
const baseExtent = 100.0

// ElevationSource is a 2D grid of intensity samples, origin top-left.
// The host loads it from an image file; decoding is out of scope here.
type ElevationSource interface {
	Dimensions() (width, height int)
	Intensity(x, y int) uint8
}

// Heightfield maps world XZ coordinates to terrain elevation by sampling
// an elevation source. It is a pure lookup: identical inputs always give
// identical output.
type Heightfield struct {
	Source          ElevationSource
	HorizontalScale float32
	VerticalScale   float32
}

// HeightAt returns the terrain elevation at the given world coordinate.
// The terrain occupies a square of side 100*HorizontalScale centered at
// the world origin; points outside it are flat at elevation 0.
//
// Lookup is nearest-pixel, not bilinear: coarse elevation images produce
// visibly stepped terrain. Pixel coordinates are clamped so queries
// exactly on the square's edge never index out of bounds.
func (h *Heightfield) HeightAt(worldX, worldZ float32) float32 {
	size := baseExtent * h.HorizontalScale
	half := size / 2

	if worldX < -half || worldX > half || worldZ < -half || worldZ > half {
		return 0
	}

	u := (worldX + half) / size
	v := (worldZ + half) / size

	w, ht := h.Source.Dimensions()
	x := int(u * float32(w))
	y := int(v * float32(ht))
	if x >= w {
		x = w - 1
	}
	if y >= ht {
		y = ht - 1
	}

	return float32(h.Source.Intensity(x, y)) / 255.0 * h.VerticalScale
}

// ImageSource adapts a decoded image to an ElevationSource using the red
// channel as intensity.
type ImageSource struct {
	Img image.Image
}

// Dimensions returns the image size in pixels.
func (s ImageSource) Dimensions() (int, int) {
	b := s.Img.Bounds()
	return b.Dx(), b.Dy()
}

// Intensity returns the red channel of the pixel at (x, y), in [0,255].
func (s ImageSource) Intensity(x, y int) uint8 {
	b := s.Img.Bounds()
	r, _, _, _ := s.Img.At(b.Min.X+x, b.Min.Y+y).RGBA()
	return uint8(r >> 8)
}
