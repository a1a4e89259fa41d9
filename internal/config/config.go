// Package config handles configuration loading and management.
package config

// Config holds all settings.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Demo    DemoConfig    `yaml:"demo"`
	Logging LoggingConfig `yaml:"logging"`
}

// DisplayConfig holds window and presentation settings. The virtual
// screen is fixed at 160x144; Scale is the integer window multiplier.
type DisplayConfig struct {
	Scale      int  `yaml:"scale"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	FPSLimit   int  `yaml:"fps_limit"`
}

// DemoConfig drives the demo host's synthetic frame content.
type DemoConfig struct {
	// Pipeline selects the tilemap path: "plane" composes the
	// background texture on the CPU, "grid" draws every cell instanced.
	Pipeline string `yaml:"pipeline"`
	// Sprites is the number of moving demo sprites.
	Sprites int `yaml:"sprites"`
	// Rotate animates the blit pipeline's rotation uniform.
	Rotate bool `yaml:"rotate"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			Scale:      4,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   0,
		},
		Demo: DemoConfig{
			Pipeline: "plane",
			Sprites:  8,
			Rotate:   false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
