package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/extgen-labs/extgen/internal/branding"
	"github.com/extgen-labs/extgen/internal/platform"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Config keys as they appear in config.yaml.
const (
	KeyToken       = "token"
	KeyServerPath  = "server_path"
	KeyIsTurboWarp = "is_turbowarp"
	KeyUsername    = "username"
)

// Keys lists every supported config key.
var Keys = []string{KeyToken, KeyServerPath, KeyIsTurboWarp, KeyUsername}

// tokenEnvAlias is the variable older installs exported the token under.
const tokenEnvAlias = "HFTOKEN"

// ErrNotSetUp is returned when no config file exists yet.
var ErrNotSetUp = errors.New("extgen is not set up yet")

// Config is the user configuration. It is passed explicitly to whatever needs
// it; nothing reads configuration from globals.
type Config struct {
	Token       string `mapstructure:"token" yaml:"token"`
	ServerPath  string `mapstructure:"server_path" yaml:"server_path"`
	IsTurboWarp bool   `mapstructure:"is_turbowarp" yaml:"is_turbowarp"`
	Username    string `mapstructure:"username" yaml:"username"`
}

// Dir returns the path to the config directory (~/.extgen/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the config file path. EXTGEN_CONFIG overrides the default
// ~/.extgen/config.yaml.
func FilePath() string {
	if v := os.Getenv(branding.EnvVar("CONFIG")); v != "" {
		return v
	}
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// Exists reports whether a config file is present at path.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// newViper returns a Viper instance bound to path and to the EXTGEN_*
// environment.
func newViper(path string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType(fileType)
	v.SetEnvPrefix(branding.EnvPrefix())
	v.AutomaticEnv()
	_ = v.BindEnv(KeyToken, branding.EnvVar(KeyToken), tokenEnvAlias)
	for _, key := range []string{KeyServerPath, KeyIsTurboWarp, KeyUsername} {
		_ = v.BindEnv(key)
	}
	return v
}

// Load reads and validates the config file at path, then applies environment
// overrides. It returns ErrNotSetUp when the file does not exist and an
// *InvalidConfigError when the file, or the file with overrides applied,
// breaks the schema.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: no config at %s", ErrNotSetUp, path)
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating config %s: %w", path, err)
	}
	if !result.Valid {
		return nil, &InvalidConfigError{Path: path, Issues: result.Issues}
	}

	v := newViper(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config %s: %w", path, err)
	}

	// Environment overrides must satisfy the schema too.
	if err := checkMerged(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// checkMerged validates cfg after file values and overrides were combined.
func checkMerged(path string, cfg *Config) error {
	result, err := Check(cfg)
	if err != nil {
		return fmt.Errorf("validating config %s: %w", path, err)
	}
	if !result.Valid {
		return &InvalidConfigError{Path: path, Issues: result.Issues}
	}
	return nil
}

// Save writes cfg to path, creating the parent directory, and restricts the
// file to its owner because it holds the token.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), platform.DirPerm); err != nil {
		return fmt.Errorf("creating config directory %s: %w", filepath.Dir(path), err)
	}

	v := viper.New()
	v.SetConfigType(fileType)
	v.Set(KeyToken, cfg.Token)
	v.Set(KeyServerPath, cfg.ServerPath)
	v.Set(KeyIsTurboWarp, cfg.IsTurboWarp)
	v.Set(KeyUsername, cfg.Username)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config file %s: %w", path, err)
	}
	return platform.Secure(path)
}

// Get returns a config value by key, environment overrides included. Returns
// an empty string if the key is not set.
func Get(path, key string) (string, error) {
	if !slices.Contains(Keys, key) {
		return "", fmt.Errorf("unknown config key %q (known keys: %v)", key, Keys)
	}
	v := newViper(path)
	if Exists(path) {
		if err := v.ReadInConfig(); err != nil {
			return "", fmt.Errorf("loading config %s: %w", path, err)
		}
	}
	return v.GetString(key), nil
}

// Set writes a single key and saves the config file. Boolean keys must parse
// with strconv.ParseBool, and the resulting config must pass the schema; an
// *InvalidConfigError leaves the file untouched.
func Set(path, key, value string) error {
	if !slices.Contains(Keys, key) {
		return fmt.Errorf("unknown config key %q (known keys: %v)", key, Keys)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType(fileType)
	if Exists(path) {
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("loading config %s: %w", path, err)
		}
	}

	if key == KeyIsTurboWarp {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s must be true or false, got %q", key, value)
		}
		v.Set(key, b)
	} else {
		v.Set(key, value)
	}

	var merged Config
	if err := v.Unmarshal(&merged); err != nil {
		return fmt.Errorf("decoding config %s: %w", path, err)
	}
	if err := checkMerged(path, &merged); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), platform.DirPerm); err != nil {
		return fmt.Errorf("creating config directory %s: %w", filepath.Dir(path), err)
	}
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return platform.Secure(path)
}
