package config

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"

	"github.com/Dallionking/notchbar/internal/routes"
)

// FileName is the config file looked up when --config is not given.
const FileName = "notchbar.json"

// Config is the full notchbar.json schema.
type Config struct {
	InitialRoute string              `json:"initialRoute" mapstructure:"initialRoute"`
	Routes       []routes.Descriptor `json:"routes" mapstructure:"routes"`
	Bar          BarConfig           `json:"bar" mapstructure:"bar"`
	Animation    AnimationConfig     `json:"animation" mapstructure:"animation"`
	Theme        ThemeConfig         `json:"theme" mapstructure:"theme"`
	LogFile      string              `json:"logFile" mapstructure:"logFile"`
}

// BarConfig sizes the bar. Lengths are in pixels.
type BarConfig struct {
	Height       float64     `json:"height" mapstructure:"height"`
	ColumnPixels float64     `json:"columnPixels" mapstructure:"columnPixels"`
	RowPixels    float64     `json:"rowPixels" mapstructure:"rowPixels"`
	MarkerSize   float64     `json:"markerSize" mapstructure:"markerSize"`
	Curve        CurveConfig `json:"curve" mapstructure:"curve"`
}

// CurveConfig shapes the notch.
type CurveConfig struct {
	Width  float64 `json:"width" mapstructure:"width"`
	Height float64 `json:"height" mapstructure:"height"`
}

// AnimationConfig controls the focus tween.
type AnimationConfig struct {
	DurationMs int    `json:"durationMs" mapstructure:"durationMs"`
	Easing     string `json:"easing" mapstructure:"easing"`
	FPS        int    `json:"fps" mapstructure:"fps"`
}

// ThemeConfig holds hex colours for the bar.
type ThemeConfig struct {
	Background  string `json:"background" mapstructure:"background"`
	Primary     string `json:"primary" mapstructure:"primary"`
	Icon        string `json:"icon" mapstructure:"icon"`
	ActiveIcon  string `json:"activeIcon" mapstructure:"activeIcon"`
	BottomInset int    `json:"bottomInset" mapstructure:"bottomInset"`
}

// Duration returns the tween length.
func (c *Config) Duration() time.Duration {
	return time.Duration(c.Animation.DurationMs) * time.Millisecond
}

// FrameInterval is the delay between animation frames.
func (c *Config) FrameInterval() time.Duration {
	fps := c.Animation.FPS
	if fps <= 0 {
		fps = 60
	}
	return time.Second / time.Duration(fps)
}

// setDefaults registers every default on v.
func setDefaults(v *viper.Viper) {
	v.SetDefault("initialRoute", routes.Home)
	v.SetDefault("routes", routes.Defaults())

	v.SetDefault("bar.height", 64.0)
	v.SetDefault("bar.columnPixels", 8.0)
	v.SetDefault("bar.rowPixels", 16.0)
	v.SetDefault("bar.markerSize", 40.0)
	v.SetDefault("bar.curve.width", 120.0)
	v.SetDefault("bar.curve.height", 38.0)

	v.SetDefault("animation.durationMs", 350)
	v.SetDefault("animation.easing", "ease-in-out")
	v.SetDefault("animation.fps", 60)

	v.SetDefault("theme.background", "#0a0e14")
	v.SetDefault("theme.primary", "#4fc1ff")
	v.SetDefault("theme.icon", "#0a0e14")
	v.SetDefault("theme.activeIcon", "#0a0e14")
	v.SetDefault("theme.bottomInset", 0)

	v.SetDefault("logFile", "")
}

// Read loads the config at path without caching it. An empty path yields
// the defaults. NOTCHBAR_* environment variables override file values,
// e.g. NOTCHBAR_ANIMATION_DURATIONMS=500.
func Read(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("json")
	setDefaults(v)

	v.SetEnvPrefix("NOTCHBAR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	return &cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg, err := Read("")
	if err != nil {
		// Defaults always decode; a failure here is a programming error.
		panic(fmt.Sprintf("decoding default config: %v", err))
	}
	return cfg
}

// singleton holds the loaded config and the file it came from.
var (
	globalCfg  *Config
	globalPath string
	mu         sync.RWMutex
)

// Load reads the config from path, or from the nearest notchbar.json when
// path is empty, and caches it for Get.
func Load(path string) (*Config, error) {
	if path == "" {
		found, err := FindConfigFile()
		if err == nil {
			path = found
		}
	}

	cfg, err := Read(path)
	if err != nil {
		return nil, err
	}

	Set(cfg, path)
	return cfg, nil
}

// Set replaces the cached config, e.g. after a live reload.
func Set(cfg *Config, path string) {
	mu.Lock()
	globalCfg = cfg
	globalPath = path
	mu.Unlock()
}

// Get returns the cached config. It panics if Load has not been called.
func Get() *Config {
	mu.RLock()
	defer mu.RUnlock()

	if globalCfg == nil {
		panic("config.Get() called before config.Load()")
	}
	return globalCfg
}

// Path returns the file the cached config was read from, or "" for
// defaults.
func Path() string {
	mu.RLock()
	defer mu.RUnlock()
	return globalPath
}
