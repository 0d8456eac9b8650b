package game

import (
	"fmt"
	"path/filepath"

	"github.com/hollybyte/skydrop/internal/config"
	"github.com/hollybyte/skydrop/internal/engine/terrain"
	"github.com/hollybyte/skydrop/internal/engine/texture"
)

// textures holds every GL texture the scene needs. Handles are owned by
// the GL context and shared freely between meshes.
type textures struct {
	grass         uint32
	bark          uint32
	leaves        uint32
	airship       uint32
	airshipNormal uint32
	house         uint32
	parcel        uint32
	star          uint32
	balls         []uint32
	heightMap     uint32
}

// ballTextureCount is how many ornament textures the scene cycles through.
const ballTextureCount = 5

// loadAssets loads all scene textures plus the CPU-side elevation image
// the height sampler reads. A missing file fails startup: the core never
// sees load errors, they stop here at the host boundary.
func loadAssets(cfg *config.Config) (*textures, terrain.ElevationSource, error) {
	dir := cfg.Assets.Dir

	load := func(name string, repeat bool) (uint32, error) {
		return texture.Load(filepath.Join(dir, name), repeat)
	}

	var tex textures
	var err error

	if tex.grass, err = load("grass.jpg", true); err != nil {
		return nil, nil, err
	}
	if tex.bark, err = load("tree_bark.jpg", true); err != nil {
		return nil, nil, err
	}
	if tex.leaves, err = load("tree_leaves.jpg", true); err != nil {
		return nil, nil, err
	}
	if tex.airship, err = load("airship_tex.jpg", true); err != nil {
		return nil, nil, err
	}
	if tex.airshipNormal, err = load("airship_normal.jpg", false); err != nil {
		return nil, nil, err
	}
	if tex.house, err = load("house_tex.jpg", true); err != nil {
		return nil, nil, err
	}
	if tex.parcel, err = load("parcel_tex.jpg", true); err != nil {
		return nil, nil, err
	}
	if tex.star, err = load("star.jpg", true); err != nil {
		return nil, nil, err
	}
	for i := 1; i <= ballTextureCount; i++ {
		ball, err := load(fmt.Sprintf("ball_tree%d.jpg", i), true)
		if err != nil {
			return nil, nil, err
		}
		tex.balls = append(tex.balls, ball)
	}

	// The elevation image is both uploaded for GPU displacement and kept
	// decoded for CPU-side height queries.
	img, err := texture.LoadImage(filepath.Join(dir, cfg.World.Heightmap))
	if err != nil {
		return nil, nil, err
	}
	tex.heightMap = texture.Upload(img, false)

	return &tex, terrain.ImageSource{Img: img}, nil
}
