package log

import (
	"bytes"
	"context"
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus"
)

var _ = Describe("Logger", func() {
	var buf *bytes.Buffer

	BeforeEach(func() {
		buf = new(bytes.Buffer)
		SetOutput(buf)

		DeferCleanup(func() {
			ConfigureLogger(Config{Level: LevelInfo, Format: FormatTypeText, Timestamp: true})
			Silence()
		})
	})

	Describe("ConfigureLogger", func() {
		It("should apply the level", func() {
			ConfigureLogger(Config{Level: LevelWarn, Format: FormatTypeText})

			Expect(Log().GetLevel()).Should(Equal(logrus.WarnLevel))

			PrefixedLog("test").Info("hidden")
			Expect(buf.String()).Should(BeEmpty())

			PrefixedLog("test").Warn("visible")
			Expect(buf.String()).Should(ContainSubstring("visible"))
		})

		It("should log JSON with the prefix as field", func() {
			ConfigureLogger(Config{Level: LevelInfo, Format: FormatTypeJson})

			PrefixedLog("compiler").Info("hello")

			var entry map[string]interface{}
			Expect(json.Unmarshal(buf.Bytes(), &entry)).Should(Succeed())
			Expect(entry).Should(HaveKeyWithValue("prefix", "compiler"))
			Expect(entry).Should(HaveKeyWithValue("msg", "hello"))
			Expect(entry).ShouldNot(HaveKey("time"))
		})
	})

	Describe("LogConfig", func() {
		It("should log the effective values", func() {
			entry, hook := NewMockEntry()

			cfg := Config{Level: LevelDebug, Format: FormatTypeJson}
			Expect(cfg.IsEnabled()).Should(BeTrue())

			cfg.LogConfig(entry)

			Expect(hook.Contains("level = debug")).Should(BeTrue())
			Expect(hook.Contains("format = json")).Should(BeTrue())
			Expect(hook.Contains("timestamp = false")).Should(BeTrue())
		})
	})

	Describe("EscapeInput", func() {
		It("should remove line breaks", func() {
			Expect(EscapeInput("a\nb\r\nc")).Should(Equal("abc"))
		})
	})

	Describe("Enums", func() {
		It("should parse levels", func() {
			var l Level
			Expect(l.UnmarshalText([]byte("debug"))).Should(Succeed())
			Expect(l).Should(Equal(LevelDebug))

			Expect(l.UnmarshalText([]byte("loud"))).Should(MatchError(ErrInvalidLevel))
		})

		It("should parse formats", func() {
			f, err := ParseFormatType("json")
			Expect(err).Should(Succeed())
			Expect(f).Should(Equal(FormatTypeJson))
			Expect(f.String()).Should(Equal("json"))
			Expect(FormatTypeNames()).Should(ConsistOf("text", "json"))
		})
	})

	Describe("Context", func() {
		It("should fall back to the global logger", func() {
			Expect(FromCtx(context.Background()).Logger).Should(BeIdenticalTo(Log()))
		})

		It("should keep fields", func() {
			ctx, _ := CtxWithFields(context.Background(), logrus.Fields{"domain": "example.com"})
			ctx, entry := CtxWithFields(ctx, logrus.Fields{"req": 1})

			Expect(entry.Data).Should(HaveKeyWithValue("domain", "example.com"))
			Expect(FromCtx(ctx).Data).Should(HaveKeyWithValue("req", 1))
		})
	})

	Describe("MockEntry", func() {
		It("should record messages", func() {
			entry, hook := NewMockEntry()
			entry.Warn("something happened")

			Expect(hook.Contains("happened")).Should(BeTrue())
			hook.Reset()
			Expect(hook.Logged()).Should(BeEmpty())
		})
	})
})
