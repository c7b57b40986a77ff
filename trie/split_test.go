package trie

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("SpltTLD", func() {
	It("should split a tld", func() {
		key, rest := SplitTLD("www.example.com")
		Expect(key).Should(Equal("com"))
		Expect(rest).Should(Equal("www.example"))
	})

	It("should not split a plain string", func() {
		key, rest := SplitTLD("example")
		Expect(key).Should(Equal("example"))
		Expect(rest).Should(Equal(""))
	})

	It("should not crash with an empty string", func() {
		key, rest := SplitTLD("")
		Expect(key).Should(Equal(""))
		Expect(rest).Should(Equal(""))
	})

	It("should ignore trailing dots", func() {
		key, rest := SplitTLD("www.example.com.")
		Expect(key).Should(Equal("com"))
		Expect(rest).Should(Equal("www.example"))

		key, rest = SplitTLD(rest)
		Expect(key).Should(Equal("example"))
		Expect(rest).Should(Equal("www"))
	})

	It("should skip empty parts", func() {
		key, rest := SplitTLD("www.example..com")
		Expect(key).Should(Equal("com"))
		Expect(rest).Should(Equal("www.example."))

		key, rest = SplitTLD(rest)
		Expect(key).Should(Equal("example"))
		Expect(rest).Should(Equal("www"))
	})
})

var _ = Describe("SplitLabels", func() {
	It("should return labels most significant first", func() {
		Expect(SplitLabels("mirrors.tuna.tsinghua.edu.cn")).
			Should(Equal([]string{"cn", "edu", "tsinghua", "tuna", "mirrors"}))
	})

	It("should return a single label", func() {
		Expect(SplitLabels("com")).Should(Equal([]string{"com"}))
	})

	It("should return nothing for an empty string", func() {
		Expect(SplitLabels("")).Should(BeEmpty())
		Expect(SplitLabels(".")).Should(BeEmpty())
	})

	It("should ignore trailing dots", func() {
		Expect(SplitLabels("www.example.com.")).Should(Equal([]string{"com", "example", "www"}))
	})

	It("should keep empty labels", func() {
		Expect(SplitLabels("www..com")).Should(Equal([]string{"com", "", "www"}))
	})

	It("should be reversed by JoinLabels", func() {
		for _, domain := range []string{"a", "a.b", "www.example.co.uk", "x..y"} {
			Expect(JoinLabels(SplitLabels(domain))).Should(Equal(domain))
		}
	})
})
