package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix prefixes every environment override, e.g. POINTVIZ_LOG_LEVEL.
	EnvPrefix = "POINTVIZ_"
	// EnvConfigPath names an explicit YAML file to load.
	EnvConfigPath = EnvPrefix + "CONFIG"
	// DefaultConfigPath is loaded when present and EnvConfigPath is unset.
	DefaultConfigPath = "config/viewer.yaml"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. YAML file from POINTVIZ_CONFIG, else config/viewer.yaml if it exists
//  3. env (prefix POINTVIZ_; a double underscore nests, e.g. POINTVIZ_WINDOW__WIDTH)
func Load() (*Config, error) {
	base := New()
	k := koanf.New(".")

	path, explicit := os.LookupEnv(EnvConfigPath)
	if !explicit {
		path = DefaultConfigPath
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			path = ""
		}
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrLoadConfig, path, err)
		}
	}

	envProvider := env.Provider(EnvPrefix, ".", envKey)
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: env: %v", ErrLoadConfig, err)
	}

	// Unmarshal into a copy of the defaults so unset keys keep their default.
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKey maps POINTVIZ_CAMERA__PAN_BUTTON to camera.pan_button.
func envKey(s string) string {
	s = strings.TrimPrefix(s, EnvPrefix)
	s = strings.ToLower(s)
	return strings.ReplaceAll(s, "__", ".")
}
