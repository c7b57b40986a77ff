//go:generate go run github.com/abice/go-enum -f=$GOFILE --marshal --names --values
package config

import (
	"fmt"
	"strings"
)

const (
	maxTextSourceDisplayLen = 12

	snapshotSourceName = "snapshot"
	remoteSourceName   = "remote"
)

// BytesSourceType supported BytesSource types. ENUM(
// text=1   // Inline YAML block.
// http     // HTTP(S), the fallback URLs are used if no URL is given.
// file     // Local file.
// snapshot // Copy of the public suffix list built into the binary.
// )
type BytesSourceType uint16

// BytesSource is where suffix list rules are read from.
type BytesSource struct {
	Type BytesSourceType
	From string
}

// IsZero returns true if the source was never set.
func (s BytesSource) IsZero() bool {
	return s == BytesSource{}
}

// IsRemoteDefault returns true for an HTTP source without URL.
func (s BytesSource) IsRemoteDefault() bool {
	return s.Type == BytesSourceTypeHttp && len(s.From) == 0
}

func (s BytesSource) String() string {
	switch s.Type {
	case BytesSourceTypeText:
		break

	case BytesSourceTypeHttp:
		if s.IsRemoteDefault() {
			return remoteSourceName
		}

		return s.From

	case BytesSourceTypeFile:
		return fmt.Sprintf("file://%s", s.From)

	case BytesSourceTypeSnapshot:
		return snapshotSourceName

	default:
		return fmt.Sprintf("unknown source (%s: %s)", s.Type, s.From)
	}

	text := s.From
	truncated := false

	if idx := strings.IndexRune(text, '\n'); idx != -1 {
		truncated = idx < len(text)-1 // don't count removing last char
		text = text[:idx]             // first line only
	}

	if len(text) > maxTextSourceDisplayLen { // truncate
		text = text[:maxTextSourceDisplayLen]
		truncated = true
	}

	if truncated {
		return fmt.Sprintf("%s...", text)
	}

	return text
}

// UnmarshalText implements `encoding.TextUnmarshaler`.
func (s *BytesSource) UnmarshalText(data []byte) error {
	source := string(data)
	keyword := strings.ToLower(strings.TrimSpace(source))

	switch {
	case len(keyword) == 0:
		*s = BytesSource{}

	// Inline definition in YAML (with literal style Block Scalar)
	case strings.ContainsAny(source, "\n"):
		*s = BytesSource{Type: BytesSourceTypeText, From: source}

	case keyword == snapshotSourceName:
		*s = BytesSource{Type: BytesSourceTypeSnapshot}

	case keyword == remoteSourceName:
		*s = BytesSource{Type: BytesSourceTypeHttp}

	// HTTP(S)
	case strings.HasPrefix(source, "http"):
		*s = BytesSource{Type: BytesSourceTypeHttp, From: source}

	// Probably path to a local file
	default:
		*s = BytesSource{Type: BytesSourceTypeFile, From: strings.TrimPrefix(source, "file://")}
	}

	return nil
}

// UnmarshalYAML implements `yaml.Unmarshaler`.
func (s *BytesSource) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var input string
	if err := unmarshal(&input); err != nil {
		return err
	}

	return s.UnmarshalText([]byte(input))
}

// NewBytesSource parses `source` like a config value would be.
func NewBytesSource(source string) BytesSource {
	var res BytesSource

	// UnmarshalText never returns an error
	_ = res.UnmarshalText([]byte(source))

	return res
}

func NewBytesSources(sources ...string) []BytesSource {
	res := make([]BytesSource, 0, len(sources))

	for _, source := range sources {
		res = append(res, NewBytesSource(source))
	}

	return res
}

func TextBytesSource(lines ...string) BytesSource {
	return BytesSource{Type: BytesSourceTypeText, From: inlineList(lines...)}
}

func SnapshotBytesSource() BytesSource {
	return BytesSource{Type: BytesSourceTypeSnapshot}
}

func inlineList(lines ...string) string {
	res := strings.Join(lines, "\n")

	// ensure at least one line ending so it's parsed as an inline block
	res += "\n"

	return res
}
