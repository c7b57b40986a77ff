package config

import (
	"github.com/sirupsen/logrus"

	"github.com/0xERR0R/tldextract/util"
)

// SuffixList configures where public suffix rules come from and how long they stay fresh.
type SuffixList struct {
	Source                BytesSource   `yaml:"source"`
	Extra                 []BytesSource `yaml:"extra"`
	DisablePrivateDomains bool          `yaml:"disablePrivateDomains" default:"false"`
	Expire                Duration      `yaml:"expire"`
	RefreshTimeout        Duration      `yaml:"refreshTimeout" default:"30s"`
}

// SetDefaults implements `defaults.Setter`: the built-in snapshot is used unless a source is set.
func (c *SuffixList) SetDefaults() {
	if c.Source.IsZero() {
		c.Source = SnapshotBytesSource()
	}
}

// IsEnabled implements `config.Configurable`.
func (c *SuffixList) IsEnabled() bool {
	return !c.Source.IsZero() || len(c.Extra) != 0
}

// LogConfig implements `config.Configurable`.
func (c *SuffixList) LogConfig(logger *logrus.Entry) {
	logger.Infof("source = %s", c.Source)

	if len(c.Extra) > 0 {
		logger.Info("extra:")

		for _, source := range c.Extra {
			logger.Infof("  - %s", source)
		}
	}

	logger.Infof("disablePrivateDomains = %t", c.DisablePrivateDomains)

	if c.Expire.IsAboveZero() {
		logger.Infof("expire = %s", c.Expire)
	} else {
		logger.Info("expire = never")
	}

	logger.Infof("refreshTimeout = %s", c.RefreshTimeout)
}

// Sources returns the main source followed by the extra ones.
func (c *SuffixList) Sources() []BytesSource {
	var main []BytesSource

	if !c.Source.IsZero() {
		main = []BytesSource{c.Source}
	}

	return util.ConcatSlices(main, c.Extra)
}

// Extract configures the domain extractor.
type Extract struct {
	SuffixList    SuffixList `yaml:"suffixList"`
	UnicodeOutput bool       `yaml:"unicodeOutput" default:"true"`
	CacheSize     int        `yaml:"cacheSize" default:"0"`
}

// IsEnabled implements `config.Configurable`.
func (c *Extract) IsEnabled() bool {
	return c.SuffixList.IsEnabled()
}

// LogConfig implements `config.Configurable`.
func (c *Extract) LogConfig(logger *logrus.Entry) {
	logger.Infof("unicodeOutput = %t", c.UnicodeOutput)

	if c.CacheSize > 0 {
		logger.Infof("cacheSize = %d", c.CacheSize)
	} else {
		logger.Info("cacheSize = disabled")
	}

	logger.Info("suffixList:")
	c.SuffixList.LogConfig(logger.WithField("prefix", "suffixList"))
}
