// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Viewer   ViewerConfig   `yaml:"viewer"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	FPSLimit   int  `yaml:"fps_limit"`
}

// ViewerConfig holds scene and model settings.
type ViewerConfig struct {
	// ModelPath is the .obj file loaded as the alternate sphere mesh.
	// Empty means only the procedural sphere is available.
	ModelPath     string `yaml:"model_path"`
	StartScene    int    `yaml:"start_scene"`
	ShowFPS       bool   `yaml:"show_fps"`
	ShowHelp      bool   `yaml:"show_help"`
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
// 800x600 matches the window size the scenes were tuned for.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      800,
			Height:     600,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   60,
		},
		Viewer: ViewerConfig{
			ModelPath:     "assets/sphere.obj",
			StartScene:    0,
			ShowFPS:       true,
			ShowHelp:      true,
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
