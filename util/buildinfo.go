package util

// nolint:gochecknoglobals
var (
	// Version current version number
	Version = "undefined"
	// BuildTime build time of the binary
	BuildTime = "undefined"
	// Architecture current CPU architecture
	Architecture = "undefined"
)
