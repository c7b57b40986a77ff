package config

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// HTTPService configures the HTTP API.
type HTTPService struct {
	Addr               string   `yaml:"addr" default:":4000"`
	CORSAllowedOrigins []string `yaml:"corsAllowedOrigins"`
}

// IsEnabled implements `config.Configurable`.
func (c *HTTPService) IsEnabled() bool {
	return len(c.Addr) != 0
}

// LogConfig implements `config.Configurable`.
func (c *HTTPService) LogConfig(logger *logrus.Entry) {
	logger.Infof("addr = %s", c.Addr)

	if len(c.CORSAllowedOrigins) > 0 {
		logger.Infof("corsAllowedOrigins = %s", strings.Join(c.CORSAllowedOrigins, ", "))
	}
}

// AllowedOrigins returns the CORS origins, any origin if none is configured.
func (c *HTTPService) AllowedOrigins() []string {
	if len(c.CORSAllowedOrigins) == 0 {
		return []string{"*"}
	}

	return c.CORSAllowedOrigins
}

// Metrics configures the Prometheus endpoint, served by the HTTP API.
type Metrics struct {
	Enable bool   `yaml:"enable" default:"false"`
	Path   string `yaml:"path" default:"/metrics"`
}

// IsEnabled implements `config.Configurable`.
func (c *Metrics) IsEnabled() bool {
	return c.Enable
}

// LogConfig implements `config.Configurable`.
func (c *Metrics) LogConfig(logger *logrus.Entry) {
	logger.Infof("path = %s", c.Path)
}
