// Package audio provides sound effect and music playback.
package audio

import (
	"fmt"
	"math"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

// sampleRate is the playback rate; loaded sounds are resampled to it.
const sampleRate = beep.SampleRate(44100)

// Manager plays short effects over an optional looping music track.
type Manager struct {
	mu sync.RWMutex

	initialized bool
	volume      float64

	sounds   map[string]*beep.Buffer
	sfxMixer *beep.Mixer

	music       beep.StreamSeekCloser
	musicVolume *effects.Volume
}

// New creates an audio manager. Call Init before playing anything.
func New() *Manager {
	return &Manager{
		volume:   1.0,
		sounds:   make(map[string]*beep.Buffer),
		sfxMixer: &beep.Mixer{},
	}
}

// Init opens the speaker. Playback silently no-ops if this fails or is
// never called, so audio trouble never takes the game down.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/30)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(m.sfxMixer)

	m.initialized = true
	return nil
}

// Close stops all playback and releases the music stream.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.music != nil {
		m.music.Close()
		m.music = nil
	}
	if m.initialized {
		speaker.Clear()
	}
	m.initialized = false
}

// SetVolume sets the master volume (0.0 to 1.0).
func (m *Manager) SetVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.volume = clamp(vol, 0, 1)
	if m.musicVolume != nil {
		speaker.Lock()
		applyVolume(m.musicVolume, m.volume)
		speaker.Unlock()
	}
}

// Volume returns the master volume.
func (m *Manager) Volume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.volume
}

// LoadSound decodes a WAV file into memory under the given name.
func (m *Manager) LoadSound(name, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	streamer, format, err := wav.Decode(f)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	defer streamer.Close()

	buf := beep.NewBuffer(beep.Format{
		SampleRate:  sampleRate,
		NumChannels: format.NumChannels,
		Precision:   format.Precision,
	})
	if format.SampleRate == sampleRate {
		buf.Append(streamer)
	} else {
		buf.Append(beep.Resample(4, format.SampleRate, sampleRate, streamer))
	}

	m.mu.Lock()
	m.sounds[name] = buf
	m.mu.Unlock()
	return nil
}

// Play fires a loaded sound effect. Unknown names are ignored.
func (m *Manager) Play(name string) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.initialized {
		return
	}
	buf, ok := m.sounds[name]
	if !ok {
		return
	}

	v := &effects.Volume{
		Streamer: buf.Streamer(0, buf.Len()),
		Base:     2,
	}
	applyVolume(v, m.volume)

	speaker.Lock()
	m.sfxMixer.Add(v)
	speaker.Unlock()
}

// PlayMusic starts a WAV file looping in the background, replacing any
// track already playing.
func (m *Manager) PlayMusic(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}

	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return fmt.Errorf("decoding %s: %w", path, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		streamer.Close()
		return fmt.Errorf("audio not initialized")
	}
	if m.music != nil {
		m.music.Close()
	}
	m.music = streamer

	var loop beep.Streamer = beep.Loop(-1, streamer)
	if format.SampleRate != sampleRate {
		loop = beep.Resample(4, format.SampleRate, sampleRate, loop)
	}
	m.musicVolume = &effects.Volume{Streamer: loop, Base: 2}
	applyVolume(m.musicVolume, m.volume)

	speaker.Play(m.musicVolume)
	return nil
}

// applyVolume maps a 0-1 level onto the effect's log2 gain scale.
func applyVolume(v *effects.Volume, vol float64) {
	if vol <= 0 {
		v.Silent = true
		return
	}
	v.Silent = false
	v.Volume = math.Log2(vol)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
