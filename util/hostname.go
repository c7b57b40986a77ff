package util

import (
	"os"
	"strings"
	"sync"
)

const hostnameFile = "/etc/hostname"

// Containers often see a generated name through os.Hostname while the
// host's name is mounted at /etc/hostname.
// nolint:gochecknoglobals
var hostname = sync.OnceValues(func() (string, error) {
	return readHostname(hostnameFile)
})

// Hostname returns the machine name, read once.
func Hostname() (string, error) {
	return hostname()
}

// HostnameString is Hostname without the error, empty if the name is unknown.
func HostnameString() string {
	name, _ := hostname()

	return name
}

func readHostname(location string) (string, error) {
	if data, err := os.ReadFile(location); err == nil {
		if name := strings.TrimSpace(string(data)); len(name) > 0 {
			return name, nil
		}
	}

	return os.Hostname()
}
