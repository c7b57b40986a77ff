package helpertest

import (
	"os"
	"path/filepath"
	"strings"
)

// TmpFolder is a temporary directory holding test files.
// Creation errors are kept in `Error` so tests can assert them with gomega.
type TmpFolder struct {
	Path  string
	Error error
}

// TmpFile is a file created in a TmpFolder.
type TmpFile struct {
	Path  string
	Error error
}

// NewTmpFolder creates a directory whose name starts with `prefix`.
func NewTmpFolder(prefix string) *TmpFolder {
	if len(prefix) == 0 {
		prefix = "tldextract"
	}

	path, err := os.MkdirTemp("", prefix)

	return &TmpFolder{Path: path, Error: err}
}

// Clean removes the folder and its content.
func (tf *TmpFolder) Clean() error {
	if len(tf.Path) == 0 {
		return nil
	}

	return os.RemoveAll(tf.Path)
}

// JoinPath returns the path of `name` inside the folder, without creating it.
func (tf *TmpFolder) JoinPath(name string) string {
	return filepath.Join(tf.Path, name)
}

// CreateEmptyFile creates `name` without content.
func (tf *TmpFolder) CreateEmptyFile(name string) *TmpFile {
	return tf.CreateStringFile(name)
}

// CreateStringFile writes `lines` to `name`, separated by line breaks.
// There is no line break after the last line.
func (tf *TmpFolder) CreateStringFile(name string, lines ...string) *TmpFile {
	path := tf.JoinPath(name)

	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o600); err != nil {
		return &TmpFile{Error: err}
	}

	return &TmpFile{Path: path}
}
