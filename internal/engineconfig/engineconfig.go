package engineconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jinzhu/copier"
	"gopkg.in/yaml.v3"
)

// EngineConfigPath is the path to the engine config file, relative to the process working directory.
const EngineConfigPath = "config/engine.yaml"

// EnvPrefix prefixes every environment override.
const EnvPrefix = "BIFROST_"

// Config holds engine settings persisted across runs. Zero-valued fields in a file keep their
// defaults, so every boolean is phrased so that false is the default.
type Config struct {
	Title       string `yaml:"title,omitempty"`
	Width       int    `yaml:"width,omitempty"`
	Height      int    `yaml:"height,omitempty"`
	Fullscreen  bool   `yaml:"fullscreen,omitempty"`
	TargetFPS   int    `yaml:"target_fps,omitempty"`
	UpdateModel string `yaml:"update_model,omitempty"`
	StartApp    string `yaml:"start_app,omitempty"`
	HideOverlay bool   `yaml:"hide_overlay,omitempty"`
	// CameraSensitivity scales pointer deltas for the fly camera.
	CameraSensitivity float32 `yaml:"camera_sensitivity,omitempty"`
	// UIFont names a font under assets/fonts for the overlay; empty uses raylib's default font.
	UIFont   string `yaml:"ui_font,omitempty"`
	LogFile  string `yaml:"log_file,omitempty"`
	LogLevel string `yaml:"log_level,omitempty"`
}

// Default returns the default engine configuration.
func Default() Config {
	return Config{
		Title:             "bifrost",
		Width:             1280,
		Height:            720,
		TargetFPS:         60,
		UpdateModel:       "atomic",
		StartApp:          "fly_scene",
		CameraSensitivity: 1,
		LogFile:           "logs/engine.txt",
		LogLevel:          "info",
	}
}

// Load reads path (EngineConfigPath when empty) and merges it over Default(). A missing file is
// not an error. A malformed file returns Default() together with the parse error.
func Load(path string) (Config, error) {
	if path == "" {
		path = EngineConfigPath
	}
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("engineconfig: read %s: %w", path, err)
	}
	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("engineconfig: parse %s: %w", path, err)
	}
	if err := copier.CopyWithOption(&cfg, &file, copier.Option{IgnoreEmpty: true}); err != nil {
		return Default(), fmt.Errorf("engineconfig: merge %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg as YAML to path (EngineConfigPath when empty), creating the directory if needed.
func Save(path string, cfg Config) error {
	if path == "" {
		path = EngineConfigPath
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("engineconfig: encode: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// ApplyEnv overrides fields from BIFROST_* variables looked up with getenv (os.Getenv when nil).
// Unparseable values are reported and leave the field unchanged.
func ApplyEnv(cfg *Config, getenv func(string) string) error {
	if getenv == nil {
		getenv = os.Getenv
	}
	var errs []error
	if v := getenv(EnvPrefix + "UPDATE_MODEL"); v != "" {
		cfg.UpdateModel = v
	}
	if v := getenv(EnvPrefix + "START_APP"); v != "" {
		cfg.StartApp = v
	}
	if v := getenv(EnvPrefix + "LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := getenv(EnvPrefix + "TARGET_FPS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			errs = append(errs, fmt.Errorf("engineconfig: %sTARGET_FPS=%q is not a positive integer", EnvPrefix, v))
		} else {
			cfg.TargetFPS = n
		}
	}
	if v := getenv(EnvPrefix + "SHOW_OVERLAY"); v != "" {
		show, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("engineconfig: %sSHOW_OVERLAY: %w", EnvPrefix, err))
		} else {
			cfg.HideOverlay = !show
		}
	}
	return errors.Join(errs...)
}

// LoadEnvFile reads the given file (e.g. ".env") and sets environment variables for each
// line of the form KEY=VALUE. Empty lines and lines starting with # are skipped.
// The file may be missing; that is not an error.
func LoadEnvFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, raw := range strings.Split(string(data), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			continue
		}
		value = strings.TrimSpace(value)
		// Remove surrounding quotes if present
		if len(value) >= 2 && (value[0] == '"' && value[len(value)-1] == '"' || value[0] == '\'' && value[len(value)-1] == '\'') {
			value = value[1 : len(value)-1]
		}
		_ = os.Setenv(key, value)
	}
	return nil
}
