// internal/config/config.go
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	appName = "toolboard"

	// EnvPrefix prefixes environment overrides, e.g. TOOLBOARD_BACKEND_URL.
	EnvPrefix = "TOOLBOARD"

	DefaultBackendURL   = "http://localhost:8000"
	DefaultScoringDelay = 3 * time.Second
	DefaultNotifyTTL    = 4 * time.Second
	DefaultStubAddr     = ":8000"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type BackendConfig struct {
	URL string `yaml:"url" mapstructure:"url"`
}

type LoggingConfig struct {
	Level string `yaml:"level" mapstructure:"level"`
	File  string `yaml:"file" mapstructure:"file"`
}

type EssayConfig struct {
	ScoringDelay time.Duration `yaml:"scoring_delay" mapstructure:"scoring_delay"`
}

type DraftsConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

type StubConfig struct {
	Addr string `yaml:"addr" mapstructure:"addr"`
}

type NotifyConfig struct {
	TTL time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

type Config struct {
	Backend BackendConfig `yaml:"backend" mapstructure:"backend"`
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
	Essay   EssayConfig   `yaml:"essay" mapstructure:"essay"`
	Drafts  DraftsConfig  `yaml:"drafts" mapstructure:"drafts"`
	Stub    StubConfig    `yaml:"stub" mapstructure:"stub"`
	Notify  NotifyConfig  `yaml:"notify" mapstructure:"notify"`
}

// Load reads the config file at path (DefaultPath when empty), applies
// TOOLBOARD_* environment overrides and fills unset values with defaults.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	v := viper.New()
	setDefaults(v)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("stat config %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	cfg := &Config{Essay: EssayConfig{ScoringDelay: DefaultScoringDelay}}
	applyDefaults(cfg)
	return cfg
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("backend.url", d.Backend.URL)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.file", d.Logging.File)
	v.SetDefault("essay.scoring_delay", d.Essay.ScoringDelay)
	v.SetDefault("drafts.path", d.Drafts.Path)
	v.SetDefault("stub.addr", d.Stub.Addr)
	v.SetDefault("notify.ttl", d.Notify.TTL)
}

func applyDefaults(cfg *Config) {
	if cfg.Backend.URL == "" {
		cfg.Backend.URL = DefaultBackendURL
	}
	cfg.Backend.URL = strings.TrimRight(cfg.Backend.URL, "/")
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.File == "" {
		cfg.Logging.File = filepath.Join(stateDir(), "toolboard.log")
	}
	if cfg.Essay.ScoringDelay < 0 {
		cfg.Essay.ScoringDelay = 0
	}
	if cfg.Drafts.Path == "" {
		cfg.Drafts.Path = filepath.Join(dataDir(), "drafts.db")
	}
	if cfg.Stub.Addr == "" {
		cfg.Stub.Addr = DefaultStubAddr
	}
	if cfg.Notify.TTL <= 0 {
		cfg.Notify.TTL = DefaultNotifyTTL
	}
}

// Validate checks values that would otherwise fail late, at request time.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Backend.URL)
	if err != nil {
		return fmt.Errorf("%w: backend.url: %v", ErrInvalidConfig, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: backend.url must be http or https, got %q", ErrInvalidConfig, c.Backend.URL)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: backend.url has no host", ErrInvalidConfig)
	}
	return nil
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if path == "" {
		path = DefaultPath()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	var buf bytes.Buffer
	if err := c.Write(&buf); err != nil {
		return err
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Write encodes the configuration as YAML to w.
func (c *Config) Write(w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return nil
}

// DefaultPath is $XDG_CONFIG_HOME/toolboard/config.yaml.
func DefaultPath() string {
	configDir, _ := os.UserConfigDir()
	if configDir == "" {
		configDir = os.ExpandEnv("$HOME/.config")
	}
	return filepath.Join(configDir, appName, "config.yaml")
}

func dataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		dataHome = os.ExpandEnv("$HOME/.local/share")
	}
	return filepath.Join(dataHome, appName)
}

func stateDir() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		stateHome = os.ExpandEnv("$HOME/.local/state")
	}
	return filepath.Join(stateHome, appName)
}
