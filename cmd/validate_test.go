package cmd

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/0xERR0R/tldextract/config"
	"github.com/0xERR0R/tldextract/helpertest"
)

var _ = Describe("Validate command", func() {
	var tmpDir *helpertest.TmpFolder

	BeforeEach(func() {
		tmpDir = helpertest.NewTmpFolder("config")
		DeferCleanup(tmpDir.Clean)
	})

	When("Validate is called with not existing configuration file", func() {
		It("should terminate with error", func() {
			c := NewRootCommand()
			c.SetArgs([]string{"validate", "--config", "/notexisting/path.yaml"})

			Expect(c.Execute()).Should(MatchError(ContainSubstring("does not exist")))
		})
	})

	When("Validate is called with existing valid configuration file", func() {
		It("should terminate without error", func() {
			cfgFile := tmpDir.CreateStringFile("config.yaml",
				"suffixList:",
				"  source: remote",
				"  expire: 24h",
				"cacheSize: 1000")

			c := NewRootCommand()
			c.SetArgs([]string{"validate", "--config", cfgFile.Path})

			Expect(c.Execute()).Should(Succeed())
		})
	})

	When("Validate is called with existing invalid configuration file", func() {
		It("should terminate with error", func() {
			cfgFile := tmpDir.CreateStringFile("config.yaml",
				"suffixList:",
				"  expire: -1h",
				"cacheSize: -5")

			c := NewRootCommand()
			c.SetArgs([]string{"validate", "--config", cfgFile.Path})

			err := c.Execute()
			Expect(err).Should(MatchError(ContainSubstring("expire must not be negative")))
			Expect(err).Should(MatchError(ContainSubstring("cacheSize must be between")))
		})
	})
})

var _ = Describe("checkLocalSources", func() {
	var tmpDir *helpertest.TmpFolder

	BeforeEach(func() {
		tmpDir = helpertest.NewTmpFolder("sources")
		DeferCleanup(tmpDir.Clean)
	})

	It("should accept readable files and non local sources", func() {
		psl := tmpDir.CreateStringFile("psl.dat", helpertest.PSLLines...)
		Expect(psl.Error).Should(Succeed())

		Expect(checkLocalSources(config.NewBytesSources("snapshot", "remote", psl.Path))).Should(Succeed())
	})

	It("should report every missing file", func() {
		err := checkLocalSources(config.NewBytesSources(tmpDir.JoinPath("a.dat"), "snapshot", tmpDir.JoinPath("b.dat")))

		Expect(err).Should(MatchError(ContainSubstring("a.dat")))
		Expect(err).Should(MatchError(ContainSubstring("b.dat")))
	})

	It("should be used by the command", func() {
		cfgFile := tmpDir.CreateStringFile("config.yaml",
			"suffixList:",
			"  source: "+tmpDir.JoinPath("missing.dat"))

		c := NewRootCommand()
		c.SetArgs([]string{"validate", "--config", cfgFile.Path})

		Expect(c.Execute()).Should(MatchError(ContainSubstring("missing.dat")))
	})
})
