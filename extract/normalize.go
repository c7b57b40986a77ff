package extract

import (
	"strings"
	"unicode"

	"github.com/0xERR0R/tldextract/trie"
	"github.com/0xERR0R/tldextract/util"
)

func isSpaceOrControl(r rune) bool {
	return unicode.IsSpace(r) || unicode.IsControl(r)
}

func isAllowed(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '.', r == '-':
		return true
	}

	return false
}

// normalize returns the ASCII form of `raw`, ready to be split into labels.
func normalize(raw string) (string, error) {
	domain := strings.TrimFunc(raw, isSpaceOrControl)
	if len(domain) == 0 {
		return "", newDomainError(nil, "empty domain")
	}

	ascii, err := util.ToASCII(domain)
	if err != nil {
		return "", newDomainError(err, "can't convert '%s' to ASCII", domain)
	}

	ascii = strings.TrimFunc(ascii, isSpaceOrControl)

	// fully qualified names end with the root label
	ascii = strings.TrimRight(ascii, ".")
	if len(ascii) == 0 {
		return "", newDomainError(nil, "empty domain")
	}

	for i, r := range ascii {
		if !isAllowed(r) {
			return "", newDomainError(nil, "invalid character '%c' at position %d", r, i)
		}
	}

	// only ASCII is left: byte and character positions are the same
	if ascii[0] == '-' || ascii[len(ascii)-1] == '-' {
		return "", newDomainError(nil, "'-' can't start or end a domain")
	}

	return ascii, nil
}

// split decomposes the normalized `domain` using the rules of `t`.
func split(t *trie.SuffixTrie, domain string) Result {
	labels := trie.SplitLabels(domain)
	suffixLen := len(trie.Resolve(t.Search(labels)))

	var res Result

	if suffixLen > 0 {
		res.Suffix = trie.JoinLabels(labels[:suffixLen])
	}

	if suffixLen == len(labels) {
		return res
	}

	res.Domain = labels[suffixLen]
	res.Subdomain = trie.JoinLabels(labels[suffixLen+1:])

	// set as soon as a label follows the suffix, even an empty one (".com")
	if suffixLen > 0 {
		res.RegisteredDomain = trie.JoinLabels(labels[:suffixLen+1])
	}

	return res
}

func toUnicode(res Result) Result {
	return Result{
		Subdomain:        util.ToUnicode(res.Subdomain),
		Domain:           util.ToUnicode(res.Domain),
		Suffix:           util.ToUnicode(res.Suffix),
		RegisteredDomain: util.ToUnicode(res.RegisteredDomain),
	}
}
