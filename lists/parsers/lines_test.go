package parsers

import (
	"bufio"
	"context"
	"io"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Lines", func() {
	// drain reads `sut` to its end and returns the lines with the position of each one
	drain := func(sut SeriesParser[string]) (res, positions []string, err error) {
		for {
			line, err := sut.Next(context.Background())
			if err != nil {
				return res, positions, err
			}

			res = append(res, line)
			positions = append(positions, sut.Position())
		}
	}

	DescribeTable("reading suffix list text",
		func(text string, expected, positions []string) {
			sut := Lines(strings.NewReader(text))

			res, pos, err := drain(sut)
			Expect(err).Should(MatchError(io.EOF))
			Expect(IsNonResumableErr(err)).Should(BeTrue())
			Expect(res).Should(Equal(expected))
			Expect(pos).Should(Equal(positions))
		},
		Entry("one rule per line",
			"com\nco.uk\n*.ck\n",
			[]string{"com", "co.uk", "*.ck"}, []string{"line 1", "line 2", "line 3"}),
		Entry("blank lines are skipped",
			"\n  \ncom\n\t\n\r\nnet\n",
			[]string{"com", "net"}, []string{"line 3", "line 6"}),
		Entry("comments are kept trimmed",
			"  // ===BEGIN ICANN DOMAINS===  \ncom",
			[]string{"// ===BEGIN ICANN DOMAINS===", "com"}, []string{"line 1", "line 2"}),
		Entry("CRLF line endings",
			"com\r\nnet\r\n",
			[]string{"com", "net"}, []string{"line 1", "line 2"}),
		Entry("a byte order mark is dropped",
			"\uFEFF// header\ncom",
			[]string{"// header", "com"}, []string{"line 1", "line 2"}),
		Entry("nothing at all",
			"",
			[]string(nil), []string(nil)),
	)

	It("should count the line the end was reached on", func() {
		sut := Lines(linesReader("com", "", ""))

		_, _, err := drain(sut)
		Expect(err).Should(MatchError(io.EOF))
		Expect(sut.Position()).Should(Equal("line 4"))
	})

	It("should fail on a line too long to scan", func() {
		sut := Lines(linesReader(strings.Repeat("a", bufio.MaxScanTokenSize)))

		_, err := sut.Next(context.Background())
		Expect(err).Should(MatchError(bufio.ErrTooLong))
		Expect(IsNonResumableErr(err)).Should(BeTrue())
		Expect(sut.Position()).Should(Equal("line 1"))
	})

	It("should stop once the context is cancelled", func() {
		ctx, cancel := context.WithCancel(context.Background())
		DeferCleanup(cancel)

		sut := Lines(linesReader("com", "net"))

		Expect(sut.Next(ctx)).Should(Equal("com"))

		cancel()

		_, err := sut.Next(ctx)
		Expect(err).Should(MatchError(context.Canceled))
		Expect(IsNonResumableErr(err)).Should(BeTrue())
		Expect(sut.Position()).Should(Equal("line 2"))
	})
})
