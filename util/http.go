package util

import (
	"fmt"
	"net"
	"net/http"
	"strings"
)

// NewHTTPTransport returns a new Transport with the same defaults as net/http.
//
// The suffix list downloader tunes its own copy without touching
// `http.DefaultTransport`.
func NewHTTPTransport() *http.Transport {
	base, ok := http.DefaultTransport.(*http.Transport)
	if !ok {
		panic(fmt.Errorf("http.DefaultTransport is a %T, not a *http.Transport", http.DefaultTransport))
	}

	return base.Clone()
}

// HTTPClientIP returns the address of the client behind `r`.
//
// Proxy headers win over the connection address: first the RFC 7239
// `Forwarded` header, then the leftmost `X-Forwarded-For` entry.
func HTTPClientIP(r *http.Request) net.IP {
	if ip := forwardedFor(r.Header.Get("Forwarded")); ip != nil {
		return ip
	}

	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")

		if ip := net.ParseIP(strings.TrimSpace(first)); ip != nil {
			return ip
		}
	}

	return parseHostPort(r.RemoteAddr)
}

// forwardedFor returns the first usable `for=` node of a Forwarded header.
// for=192.0.2.43;proto=http, for="[2001:db8::1]:8080"
func forwardedFor(header string) net.IP {
	for _, element := range strings.Split(header, ",") {
		for _, pair := range strings.Split(element, ";") {
			key, value, ok := strings.Cut(strings.TrimSpace(pair), "=")
			if !ok || !strings.EqualFold(key, "for") {
				continue
			}

			if ip := parseHostPort(strings.Trim(value, `"`)); ip != nil {
				return ip
			}
		}
	}

	return nil
}

// parseHostPort accepts an IP with or without port, IPv6 optionally in brackets.
// Obfuscated identifiers like "unknown" or "_hidden" yield nil.
func parseHostPort(value string) net.IP {
	if host, _, err := net.SplitHostPort(value); err == nil {
		value = host
	}

	return net.ParseIP(strings.Trim(value, "[]"))
}
