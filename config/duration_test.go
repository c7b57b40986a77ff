package config

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Duration", func() {
	var d Duration

	BeforeEach(func() {
		d = Duration(0)
	})

	Describe("UnmarshalText", func() {
		It("should parse Go durations", func() {
			Expect(d.UnmarshalText([]byte("1h30m"))).Should(Succeed())
			Expect(d.ToDuration()).Should(Equal(90 * time.Minute))
		})

		It("should parse days", func() {
			Expect(d.UnmarshalText([]byte("7d"))).Should(Succeed())
			Expect(d.ToDuration()).Should(Equal(7 * 24 * time.Hour))

			Expect(d.UnmarshalText([]byte("xd"))).ShouldNot(Succeed())
		})

		It("should fail on garbage", func() {
			Expect(d.UnmarshalText([]byte("soon"))).ShouldNot(Succeed())
		})
	})

	Describe("String", func() {
		It("should be human readable", func() {
			Expect(Duration(90 * time.Minute).String()).Should(Equal("1 hour 30 minutes"))
		})
	})

	Describe("MarshalText", func() {
		It("should write a Go duration", func() {
			text, err := Duration(36 * time.Hour).MarshalText()
			Expect(err).Should(Succeed())
			Expect(string(text)).Should(Equal("36h0m0s"))
		})
	})

	Describe("comparisons", func() {
		It("should compare to zero", func() {
			Expect(Duration(0).IsAboveZero()).Should(BeFalse())
			Expect(Duration(0).IsAtLeastZero()).Should(BeTrue())
			Expect(Duration(-1).IsAtLeastZero()).Should(BeFalse())
			Expect(Duration(time.Second).IsAboveZero()).Should(BeTrue())
		})
	})
})
