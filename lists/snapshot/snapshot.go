// Package snapshot holds the copy of the public suffix list built into the binary.
package snapshot

import (
	_ "embed"
)

// Data is the text of the built-in public suffix list.
//
//go:embed public_suffix_list.dat
var Data string
