package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"time"

	"github.com/spf13/viper"

	"github.com/pders01/pagesnap/internal/gesture"
	"github.com/pders01/pagesnap/internal/session"
	"github.com/pders01/pagesnap/internal/snap"
)

type Config struct {
	Site       SiteConfig       `mapstructure:"site"`
	Navigation NavigationConfig `mapstructure:"navigation"`
	Refresh    RefreshConfig    `mapstructure:"refresh"`
	Carousel   CarouselConfig   `mapstructure:"carousel"`
	Tutorial   TutorialConfig   `mapstructure:"tutorial"`
	Input      InputConfig      `mapstructure:"input"`
	UI         UIConfig         `mapstructure:"ui"`
	Log        LogConfig        `mapstructure:"log"`
	Keys       KeyConfig        `mapstructure:"keys"`
}

type SiteConfig struct {
	// Path to a TOML or YAML manifest. Empty uses the built-in site.
	Path  string `mapstructure:"path"`
	Watch bool   `mapstructure:"watch"`
}

type NavigationConfig struct {
	ScrollCooldown  time.Duration `mapstructure:"scroll_cooldown"`
	WheelDeadzone   float64       `mapstructure:"wheel_deadzone"`
	WheelDelta      float64       `mapstructure:"wheel_delta"`
	SwipeThreshold  float64       `mapstructure:"swipe_threshold"`
	DotsIdle        time.Duration `mapstructure:"dots_idle"`
	DotsIdleOpacity float64       `mapstructure:"dots_idle_opacity"`
}

type RefreshConfig struct {
	MobileMaxWidth float64       `mapstructure:"mobile_max_width"`
	HintDistance   float64       `mapstructure:"hint_distance"`
	MinDistance    float64       `mapstructure:"min_distance"`
	MaxHorizontal  float64       `mapstructure:"max_horizontal"`
	MaxDuration    time.Duration `mapstructure:"max_duration"`
	ReloadDelay    time.Duration `mapstructure:"reload_delay"`
	HintText       string        `mapstructure:"hint_text"`
	RefreshingText string        `mapstructure:"refreshing_text"`
}

type CarouselConfig struct {
	SwipeThreshold float64 `mapstructure:"swipe_threshold"`
	Gap            float64 `mapstructure:"gap"`
}

type TutorialConfig struct {
	Threshold float64 `mapstructure:"threshold"`
}

// InputConfig maps terminal cells to the pixel units the gestures use.
type InputConfig struct {
	CellWidth  float64 `mapstructure:"cell_width"`
	CellHeight float64 `mapstructure:"cell_height"`
}

type UIConfig struct {
	Colors       UIColors `mapstructure:"colors"`
	GlamourStyle string   `mapstructure:"glamour_style"`
}

type UIColors struct {
	Primary   string `mapstructure:"primary"`
	Secondary string `mapstructure:"secondary"`
	Accent    string `mapstructure:"accent"`
	Surface   string `mapstructure:"surface"`
	Text      string `mapstructure:"text"`
	Muted     string `mapstructure:"muted"`
	Error     string `mapstructure:"error"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

type KeyConfig struct {
	Quit  string `mapstructure:"quit"`
	Close string `mapstructure:"close"`
}

func defaultConfig() *Config {
	return &Config{
		Navigation: NavigationConfig{
			ScrollCooldown:  700 * time.Millisecond,
			WheelDeadzone:   10,
			WheelDelta:      100,
			SwipeThreshold:  50,
			DotsIdle:        time.Second,
			DotsIdleOpacity: 0.3,
		},
		Refresh: RefreshConfig{
			MobileMaxWidth: 768,
			HintDistance:   20,
			MinDistance:    70,
			MaxHorizontal:  50,
			MaxDuration:    900 * time.Millisecond,
			ReloadDelay:    220 * time.Millisecond,
			HintText:       "Pull to refresh",
			RefreshingText: "Refreshing…",
		},
		Carousel: CarouselConfig{
			SwipeThreshold: 50,
			Gap:            16,
		},
		Tutorial: TutorialConfig{
			Threshold: 1,
		},
		Input: InputConfig{
			CellWidth:  8,
			CellHeight: 16,
		},
		UI: UIConfig{
			Colors: UIColors{
				Primary:   "#FF6B6B",
				Secondary: "#4ECDC4",
				Accent:    "#95E1D3",
				Surface:   "#16213E",
				Text:      "#EAEAEA",
				Muted:     "#94A3B8",
				Error:     "#EF4444",
			},
			GlamourStyle: "dark",
		},
		Log: LogConfig{
			Level: "off",
		},
		Keys: KeyConfig{
			Quit:  "q",
			Close: "esc",
		},
	}
}

// DefaultPath is the config file looked up when none is given.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "pagesnap", "config.toml")
}

func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v, "", reflect.ValueOf(defaultConfig()).Elem())

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("toml")
		v.AddConfigPath(filepath.Dir(DefaultPath()))
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("PAGESNAP")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	config.Site.Path = expandPath(config.Site.Path)
	config.Log.File = expandPath(config.Log.File)

	return &config, nil
}

// expandPath expands ~ to the home directory and makes the path absolute.
func expandPath(path string) string {
	if path == "" {
		return path
	}
	if len(path) >= 2 && path[:2] == "~/" {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}
	if !filepath.IsAbs(path) {
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
	}
	return path
}

// setDefaults registers every leaf of a config struct under its dotted
// mapstructure key, so a partial section in the file keeps the other
// defaults.
func setDefaults(v *viper.Viper, prefix string, val reflect.Value) {
	typ := val.Type()
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		key := field.Tag.Get("mapstructure")
		if key == "" {
			continue
		}
		if prefix != "" {
			key = prefix + "." + key
		}
		fv := val.Field(i)
		if fv.Kind() == reflect.Struct {
			setDefaults(v, key, fv)
			continue
		}
		v.SetDefault(key, fv.Interface())
	}
}

func Save(config *Config, path string) error {
	v := viper.New()
	for key, section := range toMap(reflect.ValueOf(config).Elem()) {
		v.Set(key, section)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return v.WriteConfigAs(path)
}

// toMap mirrors setDefaults for writing: nested maps keyed by mapstructure
// tag, durations as strings so the TOML stays readable.
func toMap(val reflect.Value) map[string]interface{} {
	out := make(map[string]interface{})
	typ := val.Type()
	for i := 0; i < typ.NumField(); i++ {
		key := typ.Field(i).Tag.Get("mapstructure")
		if key == "" {
			continue
		}
		fv := val.Field(i)
		switch {
		case fv.Type() == reflect.TypeOf(time.Duration(0)):
			out[key] = time.Duration(fv.Int()).String()
		case fv.Kind() == reflect.Struct:
			out[key] = toMap(fv)
		default:
			out[key] = fv.Interface()
		}
	}
	return out
}

func GenerateDefaultConfig(path string) error {
	return Save(defaultConfig(), path)
}

// SessionOptions converts the tuning sections into session options.
func (c *Config) SessionOptions() session.Options {
	return session.Options{
		Navigation: snap.Options{
			ScrollCooldown:  c.Navigation.ScrollCooldown,
			WheelDeadzone:   c.Navigation.WheelDeadzone,
			SwipeThreshold:  c.Navigation.SwipeThreshold,
			DotsIdle:        c.Navigation.DotsIdle,
			DotsIdleOpacity: c.Navigation.DotsIdleOpacity,
		},
		Refresh: gesture.RefreshOptions{
			MobileMaxWidth: c.Refresh.MobileMaxWidth,
			HintDistance:   c.Refresh.HintDistance,
			MinDistance:    c.Refresh.MinDistance,
			MaxHorizontal:  c.Refresh.MaxHorizontal,
			MaxDuration:    c.Refresh.MaxDuration,
			ReloadDelay:    c.Refresh.ReloadDelay,
			HintText:       c.Refresh.HintText,
			RefreshingText: c.Refresh.RefreshingText,
		},
		CarouselThreshold: c.Carousel.SwipeThreshold,
		CarouselGap:       c.Carousel.Gap,
		TutorialThreshold: c.Tutorial.Threshold,
	}
}
