// Package game implements the main loop: input, simulation, rendering.
package game

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/chewxy/math32"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/hollybyte/skydrop/internal/config"
	"github.com/hollybyte/skydrop/internal/engine/audio"
	"github.com/hollybyte/skydrop/internal/engine/camera"
	"github.com/hollybyte/skydrop/internal/engine/debug"
	"github.com/hollybyte/skydrop/internal/engine/geometry"
	"github.com/hollybyte/skydrop/internal/engine/input"
	"github.com/hollybyte/skydrop/internal/engine/scene"
	"github.com/hollybyte/skydrop/internal/engine/terrain"
	"github.com/hollybyte/skydrop/internal/engine/window"
	"github.com/hollybyte/skydrop/internal/logger"
	"github.com/hollybyte/skydrop/internal/sim"
	"github.com/hollybyte/skydrop/pkg/math"
)

// releaseDrop is how far below the airship a parcel spawns, clearing the
// gondola before it starts falling.
var releaseDrop = math.Vec3{Y: -4}

// Game is the running game instance.
type Game struct {
	cfg      *config.Config
	window   *window.Window
	renderer *scene.Renderer
	input    *input.Input
	audio    *audio.Manager
	shots    *debug.Screenshots

	scenery *scenery
	gpu     map[*geometry.Mesh]*scene.GPUMesh

	world    *sim.World
	treePos  math.Vec3
	airship  math.Vec3
	aiming   bool
	chase    *camera.Chase
	sight    *camera.Bombsight
	proj     math.Mat4
	lightDir math.Vec3

	running bool
}

// New creates the window, loads assets, builds the scene, and places the
// world's targets on the terrain.
func New(cfg *config.Config) (*Game, error) {
	g := &Game{
		cfg:      cfg,
		gpu:      make(map[*geometry.Mesh]*scene.GPUMesh),
		airship:  math.Vec3{Y: cfg.Game.StartAltitude},
		chase:    camera.NewChase(),
		sight:    camera.NewBombsight(),
		lightDir: math.Vec3{X: -0.5, Y: -1, Z: -0.5}.Normalize(),
	}

	var err error
	g.window, err = window.New(window.Config{
		Title:      "Skydrop",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	g.renderer, err = scene.New(cfg.World.HeightScale)
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("creating renderer: %w", err)
	}
	g.renderer.Resize(cfg.Graphics.Width, cfg.Graphics.Height)

	g.input = input.New()

	tex, elevation, err := loadAssets(cfg)
	if err != nil {
		g.renderer.Close()
		g.window.Close()
		return nil, fmt.Errorf("loading assets: %w", err)
	}

	g.scenery = buildScenery(tex)
	g.uploadScenery()

	ground := &terrain.Heightfield{
		Source:          elevation,
		HorizontalScale: cfg.World.TerrainScale,
		VerticalScale:   cfg.World.HeightScale,
	}
	g.world = &sim.World{Ground: ground}

	g.treePos = treeBase
	g.treePos.Y = ground.HeightAt(treeBase.X, treeBase.Z)

	for i := range targetSpotX {
		g.world.Targets = append(g.world.Targets,
			sim.PlaceTarget(ground, targetSpotX[i], targetSpotZ[i],
				g.scenery.house, g.scenery.roof))
	}

	aspect := float32(cfg.Graphics.Width) / float32(cfg.Graphics.Height)
	g.proj = math.Perspective(math32.Pi/3, aspect, 0.1, 1000)

	g.shots = debug.NewScreenshots("screenshots")
	g.audio = audio.New()
	g.initAudio()

	logger.Info("game initialized")
	return g, nil
}

func (g *Game) initAudio() {
	if !g.cfg.Audio.Enabled {
		return
	}
	if err := g.audio.Init(); err != nil {
		logger.Sugar.Warnf("audio disabled: %v", err)
		return
	}
	g.audio.SetVolume(g.cfg.Audio.Volume)

	dir := g.cfg.Assets.Dir
	for name, file := range map[string]string{
		"drop":  "drop.wav",
		"chime": "chime.wav",
	} {
		if err := g.audio.LoadSound(name, filepath.Join(dir, file)); err != nil {
			logger.Sugar.Debugf("sound %s unavailable: %v", name, err)
		}
	}
	if g.cfg.Audio.Music != "" {
		if err := g.audio.PlayMusic(filepath.Join(dir, g.cfg.Audio.Music)); err != nil {
			logger.Sugar.Debugf("music unavailable: %v", err)
		}
	}
}

// Close releases all resources.
func (g *Game) Close() {
	if g.audio != nil {
		g.audio.Close()
	}
	for _, gm := range g.gpu {
		g.renderer.Delete(gm)
	}
	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}

func (g *Game) uploadScenery() {
	s := g.scenery
	meshes := []*geometry.Mesh{
		s.terrain, s.trunk, s.balloon, s.gondola, s.parcel, s.house, s.roof,
	}
	meshes = append(meshes, s.branches...)
	for _, decos := range s.decorations {
		for _, d := range decos {
			meshes = append(meshes, d.Mesh)
		}
	}
	for _, m := range meshes {
		g.gpu[m] = g.renderer.Upload(m)
	}
}

// Run drives the main loop until quit.
func (g *Game) Run() error {
	g.running = true

	lastTime := time.Now()
	frames := 0
	fpsTimer := time.Now()
	g.updateTitle(0)

	for g.running {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		if g.input.Update() {
			g.running = false
			break
		}
		g.handleInput(dt)

		if hits := g.world.Step(dt); hits > 0 {
			g.audio.Play("chime")
			logger.Sugar.Infof("hit! score=%d", g.world.Score)
			g.updateTitle(frames)
		}

		g.render()
		g.window.SwapBuffers()

		frames++
		if time.Since(fpsTimer) >= time.Second {
			logger.Sugar.Debugf("fps=%d dt=%.2fms", frames, dt*1000)
			if g.cfg.Game.ShowFPS {
				g.updateTitle(frames)
			}
			frames = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (g *Game) updateTitle(fps int) {
	title := fmt.Sprintf("Skydrop | score %d", g.world.Score)
	if g.cfg.Game.ShowFPS {
		title = fmt.Sprintf("%s | %d fps", title, fps)
	}
	g.window.SetTitle(title)
}

func (g *Game) handleInput(dt float32) {
	if g.input.Pressed(sdl.SCANCODE_C) {
		g.aiming = !g.aiming
	}
	if g.input.Pressed(sdl.SCANCODE_P) {
		g.world.Release(sim.NewParcel(g.airship.Add(releaseDrop), g.scenery.parcel))
		g.audio.Play("drop")
		logger.Debug("parcel released")
	}
	if g.input.Pressed(sdl.SCANCODE_F12) {
		w, h := g.window.Size()
		path, err := g.shots.Save(g.renderer.ReadPixels(w, h), w, h)
		if err != nil {
			logger.Sugar.Warnf("screenshot failed: %v", err)
		} else {
			logger.Sugar.Infof("screenshot saved: %s", path)
		}
	}

	speed := g.cfg.Game.AirshipSpeed
	forward := math.Vec3{Z: -1}
	right := forward.Cross(math.Vec3{Y: 1}).Normalize()

	if g.input.Held(sdl.SCANCODE_W) {
		g.airship = g.airship.Add(forward.Scale(speed * dt))
	}
	if g.input.Held(sdl.SCANCODE_S) {
		g.airship = g.airship.Sub(forward.Scale(speed * dt))
	}
	if g.input.Held(sdl.SCANCODE_D) {
		g.airship = g.airship.Add(right.Scale(speed * dt))
	}
	if g.input.Held(sdl.SCANCODE_A) {
		g.airship = g.airship.Sub(right.Scale(speed * dt))
	}
	if g.input.Held(sdl.SCANCODE_SPACE) {
		g.airship.Y += speed * dt
	}
	if g.input.Held(sdl.SCANCODE_LCTRL) {
		g.airship.Y -= speed * dt
	}
}

func (g *Game) render() {
	var cam camera.Camera = g.chase
	if g.aiming {
		cam = g.sight
	}
	g.renderer.BeginFrame(cam.ViewMatrix(g.airship), g.proj, cam.Eye(g.airship), g.lightDir)

	// Terrain, stretched horizontally to the world scale.
	ts := g.cfg.World.TerrainScale
	g.renderer.DrawTerrain(g.gpu[g.scenery.terrain], math.Scale(ts, 1, ts))

	// Tree: trunk with leaf cones stacked above it.
	g.renderer.Draw(g.gpu[g.scenery.trunk], math.TranslateV(g.treePos))
	for i, branch := range g.scenery.branches {
		lift := math.Vec3{Y: branchLifts[i]}
		g.renderer.Draw(g.gpu[branch], math.TranslateV(g.treePos.Add(lift)))
	}
	for _, placed := range g.scenery.decorations.Resolve("tree", g.treePos) {
		g.renderer.Draw(g.gpu[placed.Mesh], math.TranslateV(placed.Position))
	}

	// Airship: balloon turned broadside, gondola hanging below.
	balloon := math.TranslateV(g.airship).Mul(math.RotateY(math32.Pi / 2))
	g.renderer.Draw(g.gpu[g.scenery.balloon], balloon)
	g.renderer.Draw(g.gpu[g.scenery.gondola], math.TranslateV(g.airship.Add(math.Vec3{Y: -3})))

	for _, t := range g.world.Targets {
		if !t.Active {
			continue
		}
		g.renderer.Draw(g.gpu[t.Body], math.TranslateV(t.Position))
		roof := math.TranslateV(t.Position.Add(math.Vec3{Y: sim.RoofLift})).
			Mul(math.RotateY(sim.RoofTurn))
		g.renderer.Draw(g.gpu[t.Roof], roof)
	}

	for _, p := range g.world.Parcels {
		if !p.Active {
			continue
		}
		g.renderer.Draw(g.gpu[p.Mesh], math.TranslateV(p.Position))
	}
}
