// Package input handles SDL2 input events and keyboard state.
package input

import "github.com/veandco/go-sdl2/sdl"

// Input polls SDL events once per frame and tracks which keys were
// pressed this frame versus held down.
type Input struct {
	quit    bool
	pressed map[sdl.Scancode]bool
	held    []uint8
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		pressed: make(map[sdl.Scancode]bool, 8),
	}
}

// Update drains the SDL event queue. Returns true when the host asked to
// quit (window close or Escape).
func (in *Input) Update() bool {
	for k := range in.pressed {
		delete(in.pressed, k)
	}

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			in.quit = true
		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN && e.Repeat == 0 {
				if e.Keysym.Scancode == sdl.SCANCODE_ESCAPE {
					in.quit = true
				}
				in.pressed[e.Keysym.Scancode] = true
			}
		}
	}

	in.held = sdl.GetKeyboardState()
	return in.quit
}

// Pressed reports whether the key went down this frame (no key repeat).
func (in *Input) Pressed(code sdl.Scancode) bool {
	return in.pressed[code]
}

// Held reports whether the key is currently held down.
func (in *Input) Held(code sdl.Scancode) bool {
	return len(in.held) > int(code) && in.held[code] != 0
}
