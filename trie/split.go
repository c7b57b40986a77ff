package trie

import "strings"

type SplitFunc func(string) (label, rest string)

// www.example.com -> ("com", "www.example")
func SplitTLD(domain string) (label, rest string) {
	domain = strings.TrimRight(domain, ".")

	idx := strings.LastIndexByte(domain, '.')
	if idx == -1 {
		return domain, ""
	}

	label = domain[idx+1:]
	rest = domain[:idx]

	return label, rest
}

// SplitLabels returns the labels of `domain`, most significant first.
//
// www.example.com -> [com example www]
//
// Empty labels are kept so that "a..com" does not collapse into "a.com".
func SplitLabels(domain string) []string {
	domain = strings.TrimRight(domain, ".")
	if len(domain) == 0 {
		return nil
	}

	labels := make([]string, 0, strings.Count(domain, ".")+1)

	for {
		idx := strings.LastIndexByte(domain, '.')
		if idx == -1 {
			return append(labels, domain)
		}

		labels = append(labels, domain[idx+1:])
		domain = domain[:idx]
	}
}

// JoinLabels is the inverse of SplitLabels.
func JoinLabels(labels []string) string {
	var sb strings.Builder

	for i := len(labels) - 1; i >= 0; i-- {
		sb.WriteString(labels[i])

		if i > 0 {
			sb.WriteByte('.')
		}
	}

	return sb.String()
}
