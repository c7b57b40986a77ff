package util

import (
	"strings"

	"golang.org/x/net/idna"
)

const punycodePrefix = "xn--"

// Rules contain `*` and `!`, and input validation reports the offending
// character itself: the profile only maps, it does not reject.
// nolint:gochecknoglobals
var idnaProfile = idna.New(
	idna.MapForLookup(),
	idna.Transitional(false),
	idna.StrictDomainName(false),
	idna.ValidateLabels(false),
)

// ToASCII returns the lower case punycode form of `domain`.
func ToASCII(domain string) (string, error) {
	return idnaProfile.ToASCII(domain)
}

// ToUnicode decodes each punycode label of `domain`.
// Labels that can't be decoded are kept as they are.
func ToUnicode(domain string) string {
	if !strings.Contains(domain, punycodePrefix) {
		return domain
	}

	labels := strings.Split(domain, ".")

	for i, label := range labels {
		if !strings.HasPrefix(label, punycodePrefix) {
			continue
		}

		if decoded, err := idnaProfile.ToUnicode(label); err == nil {
			labels[i] = decoded
		}
	}

	return strings.Join(labels, ".")
}
