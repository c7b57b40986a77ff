package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/creasty/defaults"
	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"

	"github.com/0xERR0R/tldextract/log"
)

const (
	// DefaultConfigPath is used when no path is given on the command line.
	DefaultConfigPath = "./config.yml"

	maxCacheSize = 10_000_000
)

// Configurable is a config section that can be enabled and logged.
type Configurable interface {
	// IsEnabled returns true when the section is used.
	IsEnabled() bool

	// LogConfig logs the section's effective values.
	LogConfig(*logrus.Entry)
}

// Config main configuration
type Config struct {
	Extract `yaml:",inline"`

	Downloads Downloader  `yaml:"downloads"`
	Log       log.Config  `yaml:"log"`
	HTTP      HTTPService `yaml:"http"`
	Metrics   Metrics     `yaml:"metrics"`
}

// WithDefaults returns a T with all defaults applied.
func WithDefaults[T any]() (T, error) {
	var cfg T

	if err := defaults.Set(&cfg); err != nil {
		return cfg, fmt.Errorf("can't apply %T defaults: %w", cfg, err)
	}

	return cfg, nil
}

// LoadConfig reads the YAML file at `path` on top of the defaults.
// If the file does not exist and `mandatory` is false, the defaults are returned.
func LoadConfig(path string, mandatory bool) (*Config, error) {
	cfg, err := WithDefaults[Config]()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !mandatory {
			log.Log().Debugf("config file '%s' not found, using defaults", path)

			return &cfg, nil
		}

		return nil, fmt.Errorf("can't read config file '%s': %w", path, err)
	}

	if err := unmarshalConfig(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func unmarshalConfig(data []byte, cfg *Config) error {
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return fmt.Errorf("wrong file structure: %w", err)
	}

	return cfg.Validate()
}

// Validate checks the configuration and reports every problem found.
func (cfg *Config) Validate() error {
	var err *multierror.Error

	sources := cfg.SuffixList.Sources()
	if len(sources) == 0 {
		err = multierror.Append(err, errors.New("suffixList: at least one source is required"))
	}

	for _, source := range sources {
		if !source.Type.IsValid() {
			err = multierror.Append(err, fmt.Errorf("suffixList: invalid source '%s'", source))
		}
	}

	if !cfg.SuffixList.Expire.IsAtLeastZero() {
		err = multierror.Append(err, fmt.Errorf("suffixList.expire must not be negative, got %s", cfg.SuffixList.Expire))
	}

	if !cfg.SuffixList.RefreshTimeout.IsAboveZero() {
		err = multierror.Append(err, errors.New("suffixList.refreshTimeout must be above zero"))
	}

	if cfg.CacheSize < 0 || cfg.CacheSize > maxCacheSize {
		err = multierror.Append(err, fmt.Errorf("cacheSize must be between 0 and %d, got %d", maxCacheSize, cfg.CacheSize))
	}

	if cfg.Downloads.Attempts == 0 {
		err = multierror.Append(err, errors.New("downloads.attempts must be at least 1"))
	}

	if !cfg.Downloads.Timeout.IsAboveZero() {
		err = multierror.Append(err, errors.New("downloads.timeout must be above zero"))
	}

	for _, url := range cfg.Downloads.FallbackURLs {
		if !strings.HasPrefix(url, "http") {
			err = multierror.Append(err, fmt.Errorf("downloads.fallbackURLs: '%s' is not an HTTP(S) URL", url))
		}
	}

	if cfg.Metrics.IsEnabled() && !strings.HasPrefix(cfg.Metrics.Path, "/") {
		err = multierror.Append(err, fmt.Errorf("metrics.path must start with '/', got '%s'", cfg.Metrics.Path))
	}

	return err.ErrorOrNil()
}

// LogConfig logs every section of the configuration.
func (cfg *Config) LogConfig(logger *logrus.Entry) {
	sections := []struct {
		name string
		cfg  Configurable
	}{
		{"extract", &cfg.Extract},
		{"downloads", &cfg.Downloads},
		{"log", &cfg.Log},
		{"http", &cfg.HTTP},
		{"metrics", &cfg.Metrics},
	}

	for _, section := range sections {
		if !section.cfg.IsEnabled() {
			logger.Infof("%s: disabled", section.name)

			continue
		}

		logger.Infof("%s:", section.name)
		section.cfg.LogConfig(logger.WithField("prefix", section.name))
	}
}
