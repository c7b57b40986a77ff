package helpertest

import "strings"

// PrivateSectionStart is the line separating ICANN rules from private ones.
const PrivateSectionStart = "// ===BEGIN PRIVATE DOMAINS==="

// PSLLines is a small public suffix list covering the rule kinds the
// extractor has to deal with: plain, nested, wildcard, exception, unicode and private rules.
// nolint:gochecknoglobals
var PSLLines = []string{
	"// This Source Code Form is subject to the terms of the Mozilla Public",
	"// ===BEGIN ICANN DOMAINS===",
	"",
	"com",
	"net",
	"org",
	"io",
	"",
	"// uk",
	"uk",
	"co.uk",
	"",
	"// cn",
	"cn",
	"edu.cn",
	"中国",
	"",
	"// ck",
	"*.ck",
	"!www.ck",
	"",
	"// jp",
	"jp",
	"*.kawasaki.jp",
	"!city.kawasaki.jp",
	"",
	"// ===END ICANN DOMAINS===",
	PrivateSectionStart,
	"",
	"// GitHub",
	"github.io",
	"",
	"// Google",
	"blogspot.com",
	"",
	"// ===END PRIVATE DOMAINS===",
}

// PSLText returns PSLLines as a single text.
func PSLText() string {
	return strings.Join(PSLLines, "\n") + "\n"
}
