// Package config provides configuration management for mkt using Viper.
package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/thoreinstein/mkt/internal/marketplace"
	"github.com/thoreinstein/mkt/internal/paths"
	"github.com/thoreinstein/mkt/internal/validator"
	"github.com/thoreinstein/mkt/pkg/fileutil"
)

// AppName is the application name used for config file naming.
const AppName = paths.AppName

// EnvConfigDir overrides the directory searched for config.yaml.
const EnvConfigDir = "MKT_CONFIG_DIR"

// CurrentVersion is the only config schema version understood.
const CurrentVersion = 1

// Configuration keys.
const (
	KeyVersion    = "version"
	KeyOwnerName  = "owner.name"
	KeyOwnerEmail = "owner.email"
	KeyLicense    = "license"
	KeyStrict     = "strict"
	KeyOutput     = "output"
)

// ErrUnknownKey is returned by Set for keys outside [Keys].
var ErrUnknownKey = errors.New("unknown config key")

// Config represents the top-level configuration structure.
type Config struct {
	Version int    `mapstructure:"version" yaml:"version" json:"version" toml:"version"`
	Owner   Owner  `mapstructure:"owner" yaml:"owner" json:"owner" toml:"owner"`
	License string `mapstructure:"license" yaml:"license" json:"license" toml:"license"`
	Strict  bool   `mapstructure:"strict" yaml:"strict" json:"strict" toml:"strict"`
	Output  string `mapstructure:"output" yaml:"output" json:"output" toml:"output"`
}

// Owner holds the defaults written into new marketplace manifests.
type Owner struct {
	Name  string `mapstructure:"name" yaml:"name" json:"name" toml:"name"`
	Email string `mapstructure:"email" yaml:"email" json:"email" toml:"email"`
}

// Keys returns every settable key in display order.
func Keys() []string {
	return []string{KeyVersion, KeyOwnerName, KeyOwnerEmail, KeyLicense, KeyStrict, KeyOutput}
}

// Dir returns the directory holding the user config file.
// MKT_CONFIG_DIR takes precedence over the XDG location.
func Dir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir
	}
	return paths.ConfigDir()
}

// Path returns the config file in use, or the default location when none
// has been read yet.
func Path() string {
	if used := viper.ConfigFileUsed(); used != "" {
		return used
	}
	return filepath.Join(Dir(), paths.ConfigFileName)
}

// Init resets Viper and installs defaults, search paths and env binding.
// Call this once at application startup before accessing config values.
func Init() {
	viper.Reset()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	viper.AddConfigPath(Dir())

	viper.SetEnvPrefix("MKT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault(KeyVersion, CurrentVersion)
	viper.SetDefault(KeyOwnerName, marketplace.PlaceholderOwnerName)
	viper.SetDefault(KeyOwnerEmail, marketplace.PlaceholderOwnerEmail)
	viper.SetDefault(KeyLicense, marketplace.DefaultLicense)
	viper.SetDefault(KeyStrict, false)
	viper.SetDefault(KeyOutput, string(validator.FormatText))
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations and falls back to
// defaults when no file exists.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound) && path == "":
			// implicit load: defaults apply
		case errors.As(err, &notFound), errors.Is(err, fs.ErrNotExist):
			return nil, errors.Wrapf(err, "config file not found at %s", path)
		default:
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	cfg, err := Current()
	if err != nil {
		return nil, err
	}

	if errs := Validate(cfg); len(errs) > 0 {
		return nil, errors.Wrap(errs[0], "validating config")
	}

	return cfg, nil
}

// Current unmarshals the live Viper state.
func Current() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}
	return &cfg, nil
}

// Set parses value for key, validates the resulting config and applies it
// to the live Viper state. It does not write the file; call [Save].
func Set(key, value string) error {
	if !isKey(key) {
		return errors.Wrapf(ErrUnknownKey, "%s (valid: %v)", key, Keys())
	}

	var parsed any = value
	switch key {
	case KeyVersion:
		n, err := strconv.Atoi(value)
		if err != nil {
			return errors.Wrapf(err, "parsing %s", key)
		}
		parsed = n
	case KeyStrict:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return errors.Wrapf(err, "parsing %s", key)
		}
		parsed = b
	}

	cfg, err := Current()
	if err != nil {
		return err
	}
	apply(cfg, key, parsed)
	if errs := Validate(cfg); len(errs) > 0 {
		return errs[0]
	}

	viper.Set(key, parsed)
	return nil
}

// Save writes cfg as YAML to path, creating the parent directory.
func Save(path string, cfg *Config) error {
	if err := paths.EnsureDir(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "creating config directory")
	}
	if err := fileutil.AtomicWriteYAML(path, cfg); err != nil {
		return errors.Wrap(err, "writing config file")
	}
	return nil
}

// Values flattens cfg into dotted keys, sorted.
func (c *Config) Values() map[string]any {
	return map[string]any{
		KeyVersion:    c.Version,
		KeyOwnerName:  c.Owner.Name,
		KeyOwnerEmail: c.Owner.Email,
		KeyLicense:    c.License,
		KeyStrict:     c.Strict,
		KeyOutput:     c.Output,
	}
}

func isKey(key string) bool {
	for _, k := range Keys() {
		if k == key {
			return true
		}
	}
	return false
}

func apply(cfg *Config, key string, v any) {
	switch key {
	case KeyVersion:
		cfg.Version = v.(int)
	case KeyOwnerName:
		cfg.Owner.Name = v.(string)
	case KeyOwnerEmail:
		cfg.Owner.Email = v.(string)
	case KeyLicense:
		cfg.License = v.(string)
	case KeyStrict:
		cfg.Strict = v.(bool)
	case KeyOutput:
		cfg.Output = v.(string)
	}
}
