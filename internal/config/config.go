// Package config holds the user-editable YAML configuration plus the
// credential helpers for the describe service. Environment variables
// are read-only overrides on top of the file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// EndpointsConfig names the remote dataset and service URLs.
type EndpointsConfig struct {
	ZonesURL    string `yaml:"zones_url"`
	MetricsURL  string `yaml:"metrics_url"`
	ManifestURL string `yaml:"manifest_url"`
	DescribeURL string `yaml:"describe_url"`
	TimeoutMs   int    `yaml:"timeout_ms"`
}

// ViewportConfig tunes zoom capping. ZoomCaps lists per-zone ceilings
// for shapes that would over-magnify; everything else uses DefaultCap.
type ViewportConfig struct {
	DefaultCap float64            `yaml:"default_cap"`
	ZoomCaps   map[string]float64 `yaml:"zoom_caps"`
}

// WindowConfig is the initial window geometry.
type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// LoggingConfig mirrors the log package options.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// Config is the persisted application configuration.
type Config struct {
	DataDir   string          `yaml:"data_dir"`
	Endpoints EndpointsConfig `yaml:"endpoints"`
	Viewport  ViewportConfig  `yaml:"viewport"`
	Window    WindowConfig    `yaml:"window"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// Defaults returns the application defaults.
func Defaults() Config {
	return Config{
		DataDir: "data",
		Endpoints: EndpointsConfig{
			ZonesURL:    "https://data.rizzthegrid.dev/v1/zones.geojson",
			MetricsURL:  "https://data.rizzthegrid.dev/v1/metrics.csv",
			ManifestURL: "https://data.rizzthegrid.dev/v1/manifest.json",
			DescribeURL: "https://api.rizzthegrid.dev/v1/describe",
			TimeoutMs:   10000,
		},
		Viewport: ViewportConfig{
			DefaultCap: 8,
			ZoomCaps:   map[string]float64{"LU": 4, "MT": 3, "CY": 4},
		},
		Window:  WindowConfig{Width: 1400, Height: 900},
		Logging: LoggingConfig{Level: "info", Format: "text"},
	}
}

// Env var names used as overrides.
const (
	EnvDataDir     = "RTG_DATA_DIR"
	EnvZonesURL    = "RTG_ZONES_URL"
	EnvMetricsURL  = "RTG_METRICS_URL"
	EnvManifestURL = "RTG_MANIFEST_URL"
	EnvDescribeURL = "RTG_DESCRIBE_URL"
	EnvTimeoutMs   = "RTG_TIMEOUT_MS"
	EnvLogLevel    = "RTG_LOG_LEVEL"
	EnvLogFormat   = "RTG_LOG_FORMAT"
	EnvLogFile     = "RTG_LOG_FILE"
)

// Path returns the per-user config file location.
func Path() (string, error) {
	var base string
	switch runtime.GOOS {
	case "windows":
		base = os.Getenv("AppData")
		if base == "" {
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		base = filepath.Join(base, "RizzTheGrid")
	case "darwin":
		base = filepath.Join(os.Getenv("HOME"), "Library", "Application Support", "RizzTheGrid")
	default:
		base = filepath.Join(os.Getenv("HOME"), ".config", "rizzthegrid")
	}
	if base == "" {
		return "", errors.New("cannot resolve config directory")
	}
	return filepath.Join(base, "config.yaml"), nil
}

// Load reads the config file at path (the per-user location when path
// is empty), merges it over the defaults and applies env overrides. A
// missing file is fine; a file that does not parse is not.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if path == "" {
		p, err := Path()
		if err != nil {
			return cfg, err
		}
		path = p
	}
	if data, err := os.ReadFile(path); err == nil {
		var fileCfg Config
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return cfg, fmt.Errorf("config %s: %w", path, err)
		}
		mergeInto(&cfg, &fileCfg)
	}
	applyEnvOverrides(&cfg)
	return cfg, nil
}

// Save writes the config YAML to path (per-user location when empty).
func Save(cfg Config, path string) error {
	if path == "" {
		p, err := Path()
		if err != nil {
			return err
		}
		path = p
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// Timeout returns the HTTP timeout as a duration, floored at 1s.
func (c Config) Timeout() time.Duration {
	if c.Endpoints.TimeoutMs < 1000 {
		return time.Second
	}
	return time.Duration(c.Endpoints.TimeoutMs) * time.Millisecond
}

func mergeInto(dst, src *Config) {
	if strings.TrimSpace(src.DataDir) != "" {
		dst.DataDir = src.DataDir
	}
	if src.Endpoints.ZonesURL != "" {
		dst.Endpoints.ZonesURL = src.Endpoints.ZonesURL
	}
	if src.Endpoints.MetricsURL != "" {
		dst.Endpoints.MetricsURL = src.Endpoints.MetricsURL
	}
	if src.Endpoints.ManifestURL != "" {
		dst.Endpoints.ManifestURL = src.Endpoints.ManifestURL
	}
	if src.Endpoints.DescribeURL != "" {
		dst.Endpoints.DescribeURL = src.Endpoints.DescribeURL
	}
	if src.Endpoints.TimeoutMs != 0 {
		dst.Endpoints.TimeoutMs = src.Endpoints.TimeoutMs
	}
	if src.Viewport.DefaultCap != 0 {
		dst.Viewport.DefaultCap = src.Viewport.DefaultCap
	}
	if len(src.Viewport.ZoomCaps) != 0 {
		dst.Viewport.ZoomCaps = src.Viewport.ZoomCaps
	}
	if src.Window.Width != 0 {
		dst.Window.Width = src.Window.Width
	}
	if src.Window.Height != 0 {
		dst.Window.Height = src.Window.Height
	}
	if strings.TrimSpace(src.Logging.Level) != "" {
		dst.Logging.Level = strings.ToLower(strings.TrimSpace(src.Logging.Level))
	}
	if strings.TrimSpace(src.Logging.Format) != "" {
		dst.Logging.Format = strings.ToLower(strings.TrimSpace(src.Logging.Format))
	}
	if strings.TrimSpace(src.Logging.File) != "" {
		dst.Logging.File = strings.TrimSpace(src.Logging.File)
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(EnvDataDir)); v != "" {
		cfg.DataDir = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvZonesURL)); v != "" {
		cfg.Endpoints.ZonesURL = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvMetricsURL)); v != "" {
		cfg.Endpoints.MetricsURL = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvManifestURL)); v != "" {
		cfg.Endpoints.ManifestURL = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvDescribeURL)); v != "" {
		cfg.Endpoints.DescribeURL = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvTimeoutMs)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Endpoints.TimeoutMs = n
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Logging.Level = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		cfg.Logging.Format = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		cfg.Logging.File = v
	}
}
