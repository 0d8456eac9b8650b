package terrain

import (
	"image"
	"image/color"
	"testing"
)

// gridSource is a fixed-size source whose intensity encodes the pixel
// coordinates, so tests can tell exactly which pixel was sampled.
type gridSource struct {
	w, h int
	at   func(x, y int) uint8
}

func (g gridSource) Dimensions() (int, int)   { return g.w, g.h }
func (g gridSource) Intensity(x, y int) uint8 { return g.at(x, y) }

func flat(value uint8) gridSource {
	return gridSource{w: 16, h: 16, at: func(x, y int) uint8 { return value }}
}

func TestHeightAtOutsideSquare(t *testing.T) {
	h := &Heightfield{Source: flat(255), HorizontalScale: 2, VerticalScale: 10}

	// Square side is 200, so |coord| > 100 is outside.
	outside := [][2]float32{
		{10000, 0}, {-101, 0}, {0, 101}, {0, -100.5}, {150, 150},
	}
	for _, c := range outside {
		if got := h.HeightAt(c[0], c[1]); got != 0 {
			t.Errorf("HeightAt(%v, %v) = %v, want 0 outside the terrain square", c[0], c[1], got)
		}
	}
}

func TestHeightAtScaling(t *testing.T) {
	h := &Heightfield{Source: flat(255), HorizontalScale: 2, VerticalScale: 10}
	if got := h.HeightAt(0, 0); got != 10 {
		t.Errorf("HeightAt(0,0) = %v, want 10 (full intensity x vertical scale)", got)
	}

	h.Source = flat(127)
	want := float32(127) / 255 * 10
	if got := h.HeightAt(0, 0); got != want {
		t.Errorf("HeightAt(0,0) = %v, want %v", got, want)
	}
}

func TestHeightAtIdempotent(t *testing.T) {
	h := &Heightfield{Source: flat(200), HorizontalScale: 1, VerticalScale: 7}
	first := h.HeightAt(12.5, -30.25)
	for i := 0; i < 10; i++ {
		if got := h.HeightAt(12.5, -30.25); got != first {
			t.Fatalf("HeightAt not idempotent: %v then %v", first, got)
		}
	}
}

func TestHeightAtEdgeClamp(t *testing.T) {
	var maxX, maxY int
	src := gridSource{w: 8, h: 8, at: func(x, y int) uint8 {
		if x > maxX {
			maxX = x
		}
		if y > maxY {
			maxY = y
		}
		if x > 7 || y > 7 || x < 0 || y < 0 {
			panic("out of bounds sample")
		}
		return 100
	}}
	h := &Heightfield{Source: src, HorizontalScale: 2, VerticalScale: 10}

	// Exactly on every edge and corner of the square: must clamp, not panic.
	for _, c := range [][2]float32{{100, 100}, {-100, -100}, {100, -100}, {-100, 100}, {100, 0}, {0, 100}} {
		got := h.HeightAt(c[0], c[1])
		want := float32(100) / 255 * 10
		if got != want {
			t.Errorf("HeightAt(%v, %v) = %v, want %v", c[0], c[1], got, want)
		}
	}
	if maxX != 7 || maxY != 7 {
		t.Errorf("edge queries clamped to (%d, %d), want (7, 7)", maxX, maxY)
	}
}

func TestHeightAtNearestPixel(t *testing.T) {
	// Intensity differs per pixel column; a query in the left half must hit
	// a left-half pixel with no interpolation from its neighbor.
	src := gridSource{w: 2, h: 1, at: func(x, y int) uint8 {
		if x == 0 {
			return 0
		}
		return 255
	}}
	h := &Heightfield{Source: src, HorizontalScale: 1, VerticalScale: 1}

	if got := h.HeightAt(-25, 0); got != 0 {
		t.Errorf("left-half sample = %v, want 0", got)
	}
	if got := h.HeightAt(25, 0); got != 1 {
		t.Errorf("right-half sample = %v, want 1", got)
	}
}

func TestImageSourceRedChannel(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 180, G: 5, B: 250, A: 255})
	img.Set(1, 1, color.RGBA{R: 30, G: 255, B: 0, A: 255})

	src := ImageSource{Img: img}
	if w, h := src.Dimensions(); w != 2 || h != 2 {
		t.Fatalf("Dimensions() = %d x %d, want 2 x 2", w, h)
	}
	if got := src.Intensity(0, 0); got != 180 {
		t.Errorf("Intensity(0,0) = %d, want red channel 180", got)
	}
	if got := src.Intensity(1, 1); got != 30 {
		t.Errorf("Intensity(1,1) = %d, want red channel 30", got)
	}
}
