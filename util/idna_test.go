package util

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("IDNA", func() {
	Describe("ToASCII", func() {
		DescribeTable("should convert",
			func(in, expected string) {
				res, err := ToASCII(in)
				Expect(err).Should(Succeed())
				Expect(res).Should(Equal(expected))
			},
			Entry("ASCII", "example.com", "example.com"),
			Entry("upper case", "WWW.Example.COM", "www.example.com"),
			Entry("unicode", "例子.中国", "xn--fsqu00a.xn--fiqs8s"),
			Entry("mixed", "www.bücher.de", "www.xn--bcher-kva.de"),
			Entry("wildcard rule", "*.ck", "*.ck"),
			Entry("exception rule", "!city.kawasaki.jp", "!city.kawasaki.jp"),
			Entry("punycode", "xn--fiqs8s", "xn--fiqs8s"),
		)
	})

	Describe("ToUnicode", func() {
		DescribeTable("should convert",
			func(in, expected string) {
				Expect(ToUnicode(in)).Should(Equal(expected))
			},
			Entry("ASCII", "example.com", "example.com"),
			Entry("punycode", "xn--fsqu00a.xn--fiqs8s", "例子.中国"),
			Entry("mixed", "www.xn--bcher-kva.de", "www.bücher.de"),
		)
	})
})
