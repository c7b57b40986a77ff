package extract

import (
	"errors"

	"github.com/0xERR0R/tldextract/trie"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("normalize", func() {
	DescribeTable("valid input",
		func(raw, expected string) {
			res, err := normalize(raw)
			Expect(err).Should(Succeed())
			Expect(res).Should(Equal(expected))
		},
		Entry("lower case", "www.example.com", "www.example.com"),
		Entry("upper case", "WWW.Example.COM", "www.example.com"),
		Entry("surrounding spaces", "  example.com\t\n", "example.com"),
		Entry("control characters", "\x00example.com\x7f", "example.com"),
		Entry("root label", "example.com.", "example.com"),
		Entry("unicode", "例子.中国", "xn--fsqu00a.xn--fiqs8s"),
		Entry("inner hyphen", "my-site.com", "my-site.com"),
		Entry("digits", "123.45", "123.45"),
	)

	DescribeTable("invalid input",
		func(raw, detail string) {
			_, err := normalize(raw)
			Expect(err).Should(HaveOccurred())

			var domainErr *DomainError
			Expect(errors.As(err, &domainErr)).Should(BeTrue())
			Expect(domainErr.Detail).Should(ContainSubstring(detail))
		},
		Entry("empty", "", "empty domain"),
		Entry("only spaces", "   ", "empty domain"),
		Entry("only dots", "..", "empty domain"),
		Entry("inner space", "exa mple.com", "invalid character ' '"),
		Entry("underscore", "_dmarc.example.com", "invalid character '_'"),
		Entry("slash", "example.com/path", "invalid character '/'"),
		Entry("port", "example.com:80", "invalid character ':'"),
		Entry("leading hyphen", "-example.com", "'-'"),
		Entry("trailing hyphen", "example.com-", "'-'"),
	)
})

var _ = Describe("split", func() {
	var t *trie.SuffixTrie

	BeforeEach(func() {
		t = trie.New()

		for _, rule := range []string{"com", "co.uk", "uk", "*.ck", "!www.ck"} {
			t.Insert(trie.SplitLabels(rule))
		}
	})

	It("should split subdomain, domain and suffix", func() {
		Expect(split(t, "a.b.example.co.uk")).Should(Equal(Result{
			Subdomain:        "a.b",
			Domain:           "example",
			Suffix:           "co.uk",
			RegisteredDomain: "example.co.uk",
		}))
	})

	It("should only set the suffix for a public suffix", func() {
		Expect(split(t, "co.uk")).Should(Equal(Result{Suffix: "co.uk"}))
	})

	It("should use the TLD-most label as domain without suffix", func() {
		Expect(split(t, "www.example.unknown")).Should(Equal(Result{
			Subdomain: "www.example",
			Domain:    "unknown",
		}))
	})
})
