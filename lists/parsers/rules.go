package parsers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
)

const (
	commentPrefix = "//"

	// PrivateSectionSeparator marks the start of the private rules.
	PrivateSectionSeparator = "// ===BEGIN PRIVATE DOMAINS==="
)

var ErrEmptyLabel = errors.New("rule has an empty label")

// Rule is a single suffix list rule.
type Rule struct {
	Value   string
	Private bool
}

func (r Rule) String() string {
	if r.Private {
		return fmt.Sprintf("%s (private)", r.Value)
	}

	return r.Value
}

// Rules parses a public suffix list.
//
// Comments are skipped, and a rule only extends up to its first whitespace.
// Every rule after the private section separator is marked as private.
// Rules with an empty label are reported as resumable errors.
func Rules(r io.Reader) SeriesParser[Rule] {
	return &rules{lines: Lines(r)}
}

type rules struct {
	lines   SeriesParser[string]
	private bool
}

func (r *rules) Position() string {
	return r.lines.Position()
}

func (r *rules) Next(ctx context.Context) (Rule, error) {
	for {
		line, err := r.lines.Next(ctx)
		if err != nil {
			return Rule{}, err
		}

		if strings.HasPrefix(line, commentPrefix) {
			if line == PrivateSectionSeparator {
				r.private = true
			}

			continue
		}

		if idx := strings.IndexFunc(line, unicode.IsSpace); idx != -1 {
			line = line[:idx]
		}

		if err := validateRule(line); err != nil {
			return Rule{}, fmt.Errorf("'%s': %w", line, err)
		}

		return Rule{Value: line, Private: r.private}, nil
	}
}

func validateRule(rule string) error {
	for _, label := range strings.Split(strings.TrimPrefix(rule, "!"), ".") {
		if len(label) == 0 {
			return ErrEmptyLabel
		}
	}

	return nil
}
