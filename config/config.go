package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/yourloops/basalviz/model"
	"github.com/yourloops/basalviz/render"
)

// Config holds user-configurable chart defaults and the render service.
type Config struct {
	Chart  ChartConfig  `json:"chart"`
	Labels LabelConfig  `json:"labels"`
	Server ServerConfig `json:"server"`
}

// ChartConfig sizes the drawing area. RateMax of 0 scales to the data.
type ChartConfig struct {
	Width             float64 `json:"width"`
	Height            float64 `json:"height"`
	RateMax           float64 `json:"rate_max"`
	FlushBottomOffset float64 `json:"flush_bottom_offset"`
	MarkerRadius      float64 `json:"marker_radius"`
}

type LabelConfig struct {
	Automated string `json:"automated"`
	Manual    string `json:"manual"`
}

type ServerConfig struct {
	Listen  string `json:"listen"`
	Metrics bool   `json:"metrics"`
}

// Default returns a config with sensible defaults.
func Default() Config {
	return Config{
		Chart: ChartConfig{
			Width:             720,
			Height:            80,
			FlushBottomOffset: render.DefaultFlushBottomOffset,
			MarkerRadius:      render.DefaultMarkerRadius,
		},
		Labels: LabelConfig{
			Automated: "Automated",
			Manual:    "Manual",
		},
		Server: ServerConfig{
			Listen:  "127.0.0.1:8087",
			Metrics: true,
		},
	}
}

// ClassLabels maps each delivery class to its display name.
func (c Config) ClassLabels() map[model.DeliveryClass]string {
	return map[model.DeliveryClass]string{
		model.ClassAutomated: c.Labels.Automated,
		model.ClassManual:    c.Labels.Manual,
	}
}

// Path returns ~/.config/basalviz/config.json (or XDG_CONFIG_HOME).
// Returns empty string if home directory cannot be determined.
func Path() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "basalviz", "config.json")
}

// Load loads config from disk; returns defaults on error.
func Load() Config {
	cfg := Default()
	p := Path()
	if p == "" {
		return cfg
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return cfg
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		log.Printf("basalviz: warning: config parse error: %v", err)
		return Default()
	}
	if cfg.Chart.Width <= 0 || cfg.Chart.Height <= 0 {
		log.Printf("basalviz: warning: chart size %gx%g invalid, using defaults", cfg.Chart.Width, cfg.Chart.Height)
		def := Default()
		cfg.Chart.Width, cfg.Chart.Height = def.Chart.Width, def.Chart.Height
	}
	return cfg
}

// Save writes the config to disk.
func Save(cfg Config) error {
	path := Path()
	if path == "" {
		return fmt.Errorf("cannot determine config directory")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
