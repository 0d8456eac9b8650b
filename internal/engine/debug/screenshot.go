// Package debug provides development helpers.
package debug

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// Screenshots writes captured frames as timestamped PNG files.
type Screenshots struct {
	dir string
}

// NewScreenshots creates a capture helper writing into dir.
func NewScreenshots(dir string) *Screenshots {
	return &Screenshots{dir: dir}
}

// Save encodes raw RGBA framebuffer pixels to a PNG and returns the file
// path. The rows are flipped during the copy since GL reads bottom-up.
func (s *Screenshots) Save(pixels []byte, width, height int) (string, error) {
	img, err := flipToImage(pixels, width, height)
	if err != nil {
		return "", err
	}

	if s.dir != "" {
		if err := os.MkdirAll(s.dir, 0755); err != nil {
			return "", fmt.Errorf("creating screenshot dir: %w", err)
		}
	}
	name := fmt.Sprintf("skydrop_%s.png", time.Now().Format("2006-01-02_15-04-05"))
	path := filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return "", fmt.Errorf("encoding PNG: %w", err)
	}
	return path, nil
}

func flipToImage(pixels []byte, width, height int) (*image.RGBA, error) {
	if len(pixels) != width*height*4 {
		return nil, fmt.Errorf("pixel data size mismatch: expected %d, got %d",
			width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * rowSize
		dst := y * img.Stride
		copy(img.Pix[dst:dst+rowSize], pixels[src:src+rowSize])
	}
	return img, nil
}
