package audio

import (
	"path/filepath"
	"testing"
)

func TestNewManager(t *testing.T) {
	m := New()
	if m == nil {
		t.Fatal("New() returned nil")
	}
	if m.Volume() != 1.0 {
		t.Errorf("default volume = %f, want 1.0", m.Volume())
	}
}

func TestSetVolumeClamps(t *testing.T) {
	m := New()

	m.SetVolume(0.5)
	if m.Volume() != 0.5 {
		t.Errorf("volume = %f, want 0.5", m.Volume())
	}

	m.SetVolume(2.0)
	if m.Volume() != 1.0 {
		t.Errorf("volume = %f, want 1.0 (clamped)", m.Volume())
	}

	m.SetVolume(-1.0)
	if m.Volume() != 0.0 {
		t.Errorf("volume = %f, want 0.0 (clamped)", m.Volume())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, min, max, want float64
	}{
		{0.5, 0, 1, 0.5},
		{-1, 0, 1, 0},
		{2, 0, 1, 1},
		{0, 0, 1, 0},
		{1, 0, 1, 1},
	}

	for _, tt := range tests {
		got := clamp(tt.v, tt.min, tt.max)
		if got != tt.want {
			t.Errorf("clamp(%f, %f, %f) = %f, want %f", tt.v, tt.min, tt.max, got, tt.want)
		}
	}
}

func TestLoadSoundMissingFile(t *testing.T) {
	m := New()
	err := m.LoadSound("chime", filepath.Join(t.TempDir(), "nope.wav"))
	if err == nil {
		t.Fatal("LoadSound with missing file did not return an error")
	}
}

func TestPlayUninitializedIsNoop(t *testing.T) {
	m := New()
	// Must not panic without Init or a loaded sound.
	m.Play("chime")
	m.Play("missing")
}
