// Package texture loads image files and uploads them as OpenGL textures.
package texture

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// LoadImage decodes an image file. Format is picked by the registered
// stdlib decoders (JPEG and PNG).
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return img, nil
}

// Load decodes an image file and uploads it as a mipmapped 2D texture.
// repeat selects GL_REPEAT wrapping; otherwise edges are clamped (used
// for normal maps and the height map, which must not tile).
func Load(path string, repeat bool) (uint32, error) {
	img, err := LoadImage(path)
	if err != nil {
		return 0, err
	}
	return Upload(img, repeat), nil
}

// Upload creates a GL texture from a decoded image. The caller owns the
// returned handle.
func Upload(img image.Image, repeat bool) uint32 {
	rgba := toRGBA(img)
	w := int32(rgba.Bounds().Dx())
	h := int32(rgba.Bounds().Dy())

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, w, h, 0, gl.RGBA, gl.UNSIGNED_BYTE,
		unsafe.Pointer(&rgba.Pix[0]))
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	wrap := int32(gl.CLAMP_TO_EDGE)
	if repeat {
		wrap = gl.REPEAT
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrap)

	return tex
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	return rgba
}
