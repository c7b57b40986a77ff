//go:build linux
// +build linux

package main

import (
	_ "time/tzdata"

	reaper "github.com/ramr/go-reaper"
)

// tldextract serve is often the init process of its container.
//
//nolint:gochecknoinits
func init() {
	go reaper.Reap()
}
