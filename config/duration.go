package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hako/durafmt"
)

const day = 24 * time.Hour

// Duration is a time.Duration read from YAML.
//
// Besides Go duration strings ("90m", "1h30m") it accepts whole days ("7d"),
// the usual unit for a suffix list expiry.
type Duration time.Duration

// ToDuration converts Duration to time.Duration
func (c Duration) ToDuration() time.Duration {
	return time.Duration(c)
}

// IsAboveZero returns true if duration is strictly greater than zero.
func (c Duration) IsAboveZero() bool {
	return c > 0
}

// IsAtLeastZero returns true if duration is greater or equal to zero.
func (c Duration) IsAtLeastZero() bool {
	return c >= 0
}

// String implements `fmt.Stringer`
func (c Duration) String() string {
	return durafmt.Parse(c.ToDuration()).String()
}

// MarshalText implements `encoding.TextMarshaler`.
func (c Duration) MarshalText() ([]byte, error) {
	return []byte(c.ToDuration().String()), nil
}

// UnmarshalText implements `encoding.TextUnmarshaler`.
func (c *Duration) UnmarshalText(data []byte) error {
	input := strings.TrimSpace(string(data))

	if days, ok := strings.CutSuffix(input, "d"); ok {
		n, err := strconv.Atoi(days)
		if err != nil {
			return fmt.Errorf("invalid duration '%s': %w", input, err)
		}

		*c = Duration(time.Duration(n) * day)

		return nil
	}

	duration, err := time.ParseDuration(input)
	if err != nil {
		return err
	}

	*c = Duration(duration)

	return nil
}

// UnmarshalYAML implements `yaml.Unmarshaler`.
func (c *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var input string
	if err := unmarshal(&input); err != nil {
		return err
	}

	return c.UnmarshalText([]byte(input))
}
