// Package config handles game configuration loading and management.
package config

// Config holds all game settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	World    WorldConfig    `yaml:"world"`
	Game     GameConfig     `yaml:"game"`
	Assets   AssetsConfig   `yaml:"assets"`
	Audio    AudioConfig    `yaml:"audio"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// WorldConfig holds terrain settings.
type WorldConfig struct {
	// TerrainScale stretches the 100x100 terrain grid horizontally.
	TerrainScale float32 `yaml:"terrain_scale"`
	// HeightScale converts full elevation-image intensity to world units.
	HeightScale float32 `yaml:"height_scale"`
	// Heightmap is the elevation image file, relative to the assets dir.
	Heightmap string `yaml:"heightmap"`
}

// GameConfig holds gameplay settings.
type GameConfig struct {
	AirshipSpeed  float32 `yaml:"airship_speed"`
	StartAltitude float32 `yaml:"start_altitude"`
	ShowFPS       bool    `yaml:"show_fps"`
}

// AssetsConfig holds asset file locations.
type AssetsConfig struct {
	Dir string `yaml:"dir"`
}

// AudioConfig holds sound settings.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
	// Music is the looping background track, relative to the assets dir.
	// Empty disables music.
	Music string `yaml:"music"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
	Console bool   `yaml:"console"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      800,
			Height:     600,
			Fullscreen: false,
			VSync:      true,
		},
		World: WorldConfig{
			TerrainScale: 2.0,
			HeightScale:  10.0,
			Heightmap:    "heightmap.jpg",
		},
		Game: GameConfig{
			AirshipSpeed:  15.0,
			StartAltitude: 30.0,
			ShowFPS:       false,
		},
		Assets: AssetsConfig{
			Dir: "assets",
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.8,
			Music:   "music.wav",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
			Console: false,
		},
	}
}
