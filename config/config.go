// Package config loads application settings from defaults, an optional YAML
// file and HUD_* environment variables, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"portfoliohud/content"
	"portfoliohud/hud"
	"portfoliohud/logger"
)

// EnvPrefix namespaces environment overrides, e.g. HUD_WINDOW_WIDTH.
const EnvPrefix = "HUD"

var ErrInvalid = errors.New("invalid configuration")

// Config holds everything the application reads at startup.
type Config struct {
	Window  WindowConfig  `mapstructure:"window"`
	HUD     hud.Settings  `mapstructure:"hud"`
	Content ContentConfig `mapstructure:"content"`
	Log     LogConfig     `mapstructure:"log"`
	Profile ProfileConfig `mapstructure:"profile"`
}

type WindowConfig struct {
	// Width is the initial window width in logical pixels
	Width int `mapstructure:"width"`

	// Height is the initial window height in logical pixels
	Height int `mapstructure:"height"`

	Title      string `mapstructure:"title"`
	Resizable  bool   `mapstructure:"resizable"`
	Fullscreen bool   `mapstructure:"fullscreen"`
}

type ContentConfig struct {
	// Language is the initial UI language, en or es
	Language string `mapstructure:"language"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`

	// File, when set, receives a copy of every log line
	File string `mapstructure:"file"`
}

// ProfileConfig drives the FPS-drop profiler.
type ProfileConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Dir     string `mapstructure:"dir"`

	// FPSThreshold triggers a capture when the measured FPS falls below it
	FPSThreshold float64 `mapstructure:"fps_threshold"`

	// Cooldown is the minimum time between two captures
	Cooldown time.Duration `mapstructure:"cooldown"`

	// Warmup ignores FPS drops right after startup
	Warmup time.Duration `mapstructure:"warmup"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Width:     1280,
			Height:    720,
			Title:     "Luis Modesto - Portfolio",
			Resizable: true,
		},
		HUD:     hud.DefaultSettings(),
		Content: ContentConfig{Language: string(content.EN)},
		Log:     LogConfig{Level: "INFO"},
		Profile: ProfileConfig{
			Enabled:      true,
			Dir:          "profiles",
			FPSThreshold: 55,
			Cooldown:     30 * time.Second,
			Warmup:       5 * time.Second,
		},
	}
}

// Load reads path (optional) on top of the defaults, then applies the
// environment. An empty path skips the file.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// setDefaults registers every leaf key so AutomaticEnv can see it.
func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("window.width", d.Window.Width)
	v.SetDefault("window.height", d.Window.Height)
	v.SetDefault("window.title", d.Window.Title)
	v.SetDefault("window.resizable", d.Window.Resizable)
	v.SetDefault("window.fullscreen", d.Window.Fullscreen)

	v.SetDefault("hud.particle_count", d.HUD.ParticleCount)
	v.SetDefault("hud.particle_speed", d.HUD.ParticleSpeed)
	v.SetDefault("hud.phase_step", d.HUD.PhaseStep)
	v.SetDefault("hud.link_distance", d.HUD.LinkDistance)
	v.SetDefault("hud.link_alpha", d.HUD.LinkAlpha)
	v.SetDefault("hud.grid_pitch", d.HUD.GridPitch)
	v.SetDefault("hud.grid_scroll", d.HUD.GridScroll)
	v.SetDefault("hud.breakpoint", d.HUD.Breakpoint)
	setHSV(v, "hud.theme.background", d.HUD.Theme.Background)
	setHSV(v, "hud.theme.accent", d.HUD.Theme.Accent)
	setHSV(v, "hud.theme.grid", d.HUD.Theme.Grid)
	setHSV(v, "hud.theme.bar", d.HUD.Theme.Bar)

	v.SetDefault("content.language", d.Content.Language)

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)

	v.SetDefault("profile.enabled", d.Profile.Enabled)
	v.SetDefault("profile.dir", d.Profile.Dir)
	v.SetDefault("profile.fps_threshold", d.Profile.FPSThreshold)
	v.SetDefault("profile.cooldown", d.Profile.Cooldown)
	v.SetDefault("profile.warmup", d.Profile.Warmup)
}

func setHSV(v *viper.Viper, key string, c hud.HSV) {
	v.SetDefault(key+".h", c.H)
	v.SetDefault(key+".s", c.S)
	v.SetDefault(key+".v", c.V)
}

// Validate wraps every problem in ErrInvalid.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if err := c.HUD.Validate(); err != nil {
		errs = append(errs, err)
	}
	if _, err := content.ParseLanguage(c.Content.Language); err != nil {
		errs = append(errs, err)
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	if c.Profile.FPSThreshold < 0 {
		errs = append(errs, fmt.Errorf("profile fps_threshold %v is negative", c.Profile.FPSThreshold))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}

// Language returns the validated content language.
func (c Config) Language() content.Language {
	lang, err := content.ParseLanguage(c.Content.Language)
	if err != nil {
		return content.EN
	}
	return lang
}
