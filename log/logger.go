package log

//go:generate go run github.com/abice/go-enum -f=$GOFILE --marshal --names

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

const timestampFormat = "2006-01-02 15:04:05"

// FormatType format for logging ENUM(
// text // human readable, with the prefix in front of the message
// json // one JSON object per entry
// )
type FormatType int

// Level log level ENUM(
// info
// trace
// debug
// warn
// error
// fatal
// )
type Level int

// Config is the `log` section of the configuration file.
type Config struct {
	Level     Level      `yaml:"level" default:"info"`
	Format    FormatType `yaml:"format" default:"text"`
	Timestamp bool       `yaml:"timestamp" default:"true"`
}

// nolint:gochecknoglobals
var (
	logger = logrus.New()

	levels = map[Level]logrus.Level{
		LevelInfo:  logrus.InfoLevel,
		LevelTrace: logrus.TraceLevel,
		LevelDebug: logrus.DebugLevel,
		LevelWarn:  logrus.WarnLevel,
		LevelError: logrus.ErrorLevel,
		LevelFatal: logrus.FatalLevel,
	}
)

// nolint:gochecknoinits
func init() {
	ConfigureLogger(Config{Level: LevelInfo, Format: FormatTypeText, Timestamp: true})
}

// Log returns the global logger
func Log() *logrus.Logger {
	return logger
}

// PrefixedLog return the global logger with prefix
func PrefixedLog(prefix string) *logrus.Entry {
	return logger.WithField("prefix", prefix)
}

// EscapeInput strips CR and LF so user input can't forge log lines
func EscapeInput(input string) string {
	return strings.NewReplacer("\n", "", "\r", "").Replace(input)
}

// ConfigureLogger applies configuration to the global logger
func ConfigureLogger(lc Config) {
	level, ok := levels[lc.Level]
	if !ok {
		level = logrus.InfoLevel
	}

	logger.SetLevel(level)
	logger.SetFormatter(newFormatter(lc))
}

func newFormatter(lc Config) logrus.Formatter {
	if lc.Format == FormatTypeJson {
		return &logrus.JSONFormatter{
			TimestampFormat:  timestampFormat,
			DisableTimestamp: !lc.Timestamp,
		}
	}

	f := &prefixed.TextFormatter{
		TimestampFormat:  timestampFormat,
		FullTimestamp:    true,
		ForceFormatting:  true,
		QuoteEmptyFields: true,
		DisableTimestamp: !lc.Timestamp,
	}

	f.SetColorScheme(&prefixed.ColorScheme{
		PrefixStyle:    "cyan+b",
		TimestampStyle: "white+h",
	})

	return f
}

// IsEnabled implements `config.Configurable`.
func (c *Config) IsEnabled() bool {
	return true
}

// LogConfig implements `config.Configurable`.
func (c *Config) LogConfig(logger *logrus.Entry) {
	logger.Infof("level = %s", c.Level)
	logger.Infof("format = %s", c.Format)
	logger.Infof("timestamp = %t", c.Timestamp)
}

// SetOutput redirects the global logger, the CLI keeps stdout for results
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// Silence disables the logger output
func Silence() {
	logger.Out = io.Discard
}

func unmarshalYAMLText(unmarshal func(interface{}) error, target interface{ UnmarshalText([]byte) error }) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}

	return target.UnmarshalText([]byte(s))
}

// UnmarshalYAML implements `yaml.Unmarshaler`.
func (x *Level) UnmarshalYAML(unmarshal func(interface{}) error) error {
	return unmarshalYAMLText(unmarshal, x)
}

// UnmarshalYAML implements `yaml.Unmarshaler`.
func (x *FormatType) UnmarshalYAML(unmarshal func(interface{}) error) error {
	return unmarshalYAMLText(unmarshal, x)
}
