// Package config handles navtool configuration loading and management.
package config

// Config holds all navtool settings.
type Config struct {
	Build   BuildConfig   `yaml:"build"`
	Gen     GenConfig     `yaml:"gen"`
	Draw    DrawConfig    `yaml:"draw"`
	Logging LoggingConfig `yaml:"logging"`
}

// BuildConfig holds mesh generation settings.
type BuildConfig struct {
	// Workers caps the goroutines compressing blocks; 0 means one per CPU.
	Workers int `yaml:"workers"`
}

// GenConfig holds synthetic terrain defaults for `navtool gen`.
type GenConfig struct {
	Seed         int64   `yaml:"seed"`
	Size         int     `yaml:"size"`
	NoiseScale   float64 `yaml:"noise_scale"`
	HeightScale  float64 `yaml:"height_scale"`
	PlateauStep  float64 `yaml:"plateau_step"`
	SeaLevel     float64 `yaml:"sea_level"`
	MassSpots    int     `yaml:"mass_spots"`
	Hydrocarbons int     `yaml:"hydrocarbons"`
}

// DrawConfig holds overlay rendering settings.
type DrawConfig struct {
	// Scale is the number of image pixels per map cell.
	Scale int `yaml:"scale"`
	// OutputDir is where overlay PNGs are written.
	OutputDir string `yaml:"output_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Build: BuildConfig{
			Workers: 0,
		},
		Gen: GenConfig{
			Seed:         1,
			Size:         256,
			NoiseScale:   0.02,
			HeightScale:  12,
			PlateauStep:  4,
			SeaLevel:     3,
			MassSpots:    16,
			Hydrocarbons: 4,
		},
		Draw: DrawConfig{
			Scale:     2,
			OutputDir: "overlays",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
