package config

import (
	"github.com/sirupsen/logrus"
)

// DefaultFallbackURLs are tried in order for `remote` sources.
// nolint:gochecknoglobals
var DefaultFallbackURLs = []string{
	"https://publicsuffix.org/list/public_suffix_list.dat",
	"https://raw.githubusercontent.com/publicsuffix/list/master/public_suffix_list.dat",
}

// Downloader configures how remote suffix lists are fetched.
type Downloader struct {
	Timeout      Duration `yaml:"timeout" default:"5s"`
	Attempts     uint     `yaml:"attempts" default:"3"`
	Cooldown     Duration `yaml:"cooldown" default:"500ms"`
	FallbackURLs []string `yaml:"fallbackURLs"`
}

// URLs returns the configured fallback URLs or the default ones.
func (c *Downloader) URLs() []string {
	if len(c.FallbackURLs) > 0 {
		return c.FallbackURLs
	}

	return DefaultFallbackURLs
}

// IsEnabled implements `config.Configurable`.
func (c *Downloader) IsEnabled() bool {
	return true
}

// LogConfig implements `config.Configurable`.
func (c *Downloader) LogConfig(logger *logrus.Entry) {
	logger.Infof("timeout = %s", c.Timeout)
	logger.Infof("attempts = %d", c.Attempts)
	logger.Debugf("cooldown = %s", c.Cooldown)

	logger.Info("fallbackURLs:")

	for _, url := range c.URLs() {
		logger.Infof("  - %s", url)
	}
}
