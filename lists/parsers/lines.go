package parsers

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

const byteOrderMark = "\uFEFF"

// Lines splits `r` into trimmed, non empty lines.
//
// Comments are kept: suffix lists mark their sections with them.
// A byte order mark on the first line is dropped.
func Lines(r io.Reader) SeriesParser[string] {
	return &lines{scanner: bufio.NewScanner(r)}
}

type lines struct {
	scanner *bufio.Scanner
	lineNo  uint
}

func (l *lines) Position() string {
	return fmt.Sprintf("line %d", l.lineNo)
}

func (l *lines) Next(ctx context.Context) (string, error) {
	for {
		l.lineNo++

		if err := ctx.Err(); err != nil {
			return "", NewNonResumableError(err)
		}

		if !l.scanner.Scan() {
			return "", l.end()
		}

		line := l.scanner.Text()

		if l.lineNo == 1 {
			line = strings.TrimPrefix(line, byteOrderMark)
		}

		if line = strings.TrimSpace(line); len(line) > 0 {
			return line, nil
		}
	}
}

// end reports why the scanner stopped, it can't be resumed in any case.
func (l *lines) end() error {
	if err := l.scanner.Err(); err != nil {
		return NewNonResumableError(err)
	}

	return NewNonResumableError(io.EOF)
}
