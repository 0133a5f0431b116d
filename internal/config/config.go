package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"capmatrix/internal/domain"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	// Sink settings
	MirrorPath      string        `yaml:"mirror_path"`
	Bucket          string        `yaml:"bucket"`
	ProjectID       string        `yaml:"project"`
	CredentialsFile string        `yaml:"credentials"`
	UploadTimeout   time.Duration `yaml:"upload_timeout"`

	// Aggregation settings
	MarkerCategory string `yaml:"marker_category"`

	// Column headers keyed by engine
	EngineNames map[string]string `yaml:"engine_names"`

	// Command flags
	Flags Flags `yaml:"-"`
}

// Flags holds command-line flags
type Flags struct {
	ConfigFile      string
	EnvFile         string
	Verbose         bool
	MirrorPath      string
	Bucket          string
	ProjectID       string
	CredentialsFile string
	UploadTimeout   time.Duration
	Filter          string
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		MirrorPath:      DefaultMirrorPath,
		Bucket:          DefaultBucket,
		ProjectID:       DefaultProjectID,
		CredentialsFile: DefaultCredentialsFile,
		UploadTimeout:   DefaultUploadTimeout,
		MarkerCategory:  DefaultMarkerCategory,
	}
	// Copy default engine names
	cfg.EngineNames = make(map[string]string, len(DefaultEngineNames))
	for k, v := range DefaultEngineNames {
		cfg.EngineNames[k] = v
	}
	return cfg
}

// Load creates a config from defaults, the optional YAML file, the
// environment and finally the flags
func Load(flags Flags) (*Config, error) {
	cfg := New()
	cfg.Flags = flags

	if flags.ConfigFile != "" {
		if err := cfg.loadFile(flags.ConfigFile); err != nil {
			return nil, err
		}
	}

	if err := cfg.loadEnv(flags.EnvFile); err != nil {
		return nil, err
	}

	// Apply flag overrides
	if flags.MirrorPath != "" {
		cfg.MirrorPath = flags.MirrorPath
	}
	if flags.Bucket != "" {
		cfg.Bucket = flags.Bucket
	}
	if flags.ProjectID != "" {
		cfg.ProjectID = flags.ProjectID
	}
	if flags.CredentialsFile != "" {
		cfg.CredentialsFile = flags.CredentialsFile
	}
	if flags.UploadTimeout > 0 {
		cfg.UploadTimeout = flags.UploadTimeout
	}

	return cfg, nil
}

// loadFile merges a YAML config file over the current values.
// Engine names from the file are added to the defaults.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &domain.ConfigError{Source: path, Err: err}
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return &domain.ConfigError{Source: path, Err: err}
	}

	if file.MirrorPath != "" {
		c.MirrorPath = file.MirrorPath
	}
	if file.Bucket != "" {
		c.Bucket = file.Bucket
	}
	if file.ProjectID != "" {
		c.ProjectID = file.ProjectID
	}
	if file.CredentialsFile != "" {
		c.CredentialsFile = file.CredentialsFile
	}
	if file.UploadTimeout > 0 {
		c.UploadTimeout = file.UploadTimeout
	}
	if file.MarkerCategory != "" {
		c.MarkerCategory = file.MarkerCategory
	}
	for k, v := range file.EngineNames {
		c.EngineNames[k] = v
	}
	return nil
}

// loadEnv loads the env file into the process environment and applies
// CAPMATRIX_* overrides. A missing default .env is not an error.
func (c *Config) loadEnv(envFile string) error {
	path := envFile
	if path == "" {
		path = DefaultEnvFile
	}
	if err := godotenv.Load(path); err != nil {
		if envFile != "" || !errors.Is(err, fs.ErrNotExist) {
			return &domain.ConfigError{Source: path, Err: err}
		}
	}

	if v := os.Getenv(EnvPrefix + "MIRROR_PATH"); v != "" {
		c.MirrorPath = v
	}
	if v := os.Getenv(EnvPrefix + "BUCKET"); v != "" {
		c.Bucket = v
	}
	if v := os.Getenv(EnvPrefix + "PROJECT"); v != "" {
		c.ProjectID = v
	}
	if v := os.Getenv(EnvPrefix + "CREDENTIALS"); v != "" {
		c.CredentialsFile = v
	}
	if v := os.Getenv(EnvPrefix + "MARKER_CATEGORY"); v != "" {
		c.MarkerCategory = v
	}
	if v := os.Getenv(EnvPrefix + "UPLOAD_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return &domain.ConfigError{Source: EnvPrefix + "UPLOAD_TIMEOUT", Err: err}
		}
		c.UploadTimeout = d
	}
	return nil
}

// EngineName returns the column header for an engine key
func (c *Config) EngineName(key string) (string, bool) {
	name, ok := c.EngineNames[key]
	return name, ok
}

// RemoteURL returns the gs:// URL of an object in the configured bucket
func (c *Config) RemoteURL(key string) string {
	return fmt.Sprintf("gs://%s/%s", c.Bucket, key)
}
