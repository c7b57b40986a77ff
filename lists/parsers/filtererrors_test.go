package parsers

import (
	"context"
	"errors"
	"io"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("errorFilter", func() {
	var (
		ctx    context.Context
		broken error
	)

	BeforeEach(func() {
		ctx = context.Background()
		broken = errors.New("broken rule")
	})

	// com, <broken>, net, <broken>, org, <broken>, EOF
	rules := func() *scripted[string] {
		return newScripted[string]("com", broken, "net", broken, "org", broken)
	}

	Describe("AllowErrors", func() {
		It("should stop at the first error when none is allowed", func() {
			sut := AllowErrors[string](rules(), 0)

			Expect(sut.Next(ctx)).Should(Equal("com"))

			_, err := sut.Next(ctx)
			Expect(err).Should(MatchError(ErrTooManyErrors))
			Expect(sut.Position()).Should(Equal("call 2"))
			Expect(sut.Skipped()).Should(BeZero())
		})

		It("should step over the allowed number of errors", func() {
			sut := AllowErrors[string](rules(), 1)

			Expect(sut.Next(ctx)).Should(Equal("com"))
			Expect(sut.Next(ctx)).Should(Equal("net"))
			Expect(sut.Position()).Should(Equal("call 3"))

			_, err := sut.Next(ctx)
			Expect(err).Should(MatchError(ErrTooManyErrors))
			Expect(sut.Position()).Should(Equal("call 4"))
			Expect(sut.Skipped()).Should(Equal(1))
		})

		It("should read until EOF with NoErrorLimit", func() {
			sut := AllowErrors[string](rules(), NoErrorLimit)

			res, err := Collect[string](ctx, sut)
			Expect(err).Should(Succeed())
			Expect(res).Should(Equal([]string{"com", "net", "org"}))
			Expect(sut.Position()).Should(Equal("call 7"))
			Expect(sut.Skipped()).Should(Equal(3))
		})

		It("should never skip non resumable errors", func() {
			fatal := NewNonResumableError(errors.New("read failed"))
			sut := AllowErrors[string](newScripted[string](fatal, "com"), NoErrorLimit)

			_, err := sut.Next(ctx)
			Expect(err).Should(MatchError(fatal))
			Expect(sut.Skipped()).Should(BeZero())
		})
	})

	Describe("FilterErrors", func() {
		It("should stop on the error returned by the filter", func() {
			stop := errors.New("stop")

			sut := FilterErrors[Rule](newScripted[Rule](ErrEmptyLabel, Rule{Value: "com"}, broken),
				func(err error) error {
					if errors.Is(err, ErrEmptyLabel) {
						return nil
					}

					return stop
				})

			Expect(sut.Next(ctx)).Should(Equal(Rule{Value: "com"}))

			_, err := sut.Next(ctx)
			Expect(err).Should(MatchError(stop))
			Expect(sut.Position()).Should(Equal("call 3"))
			Expect(sut.Skipped()).Should(Equal(1))
		})
	})

	Describe("OnErr", func() {
		It("should pass every resumable error with its position", func() {
			sut := AllowErrors[string](rules(), NoErrorLimit)

			var seen []string
			sut.OnErr(func(err error) {
				seen = append(seen, err.Error())
			})

			_, err := Collect[string](ctx, sut)
			Expect(err).Should(Succeed())
			Expect(seen).Should(Equal([]string{
				"call 2: broken rule",
				"call 4: broken rule",
				"call 6: broken rule",
			}))
		})

		It("should not be called for the end of the series", func() {
			sut := AllowErrors[string](newScripted[string]("com"), NoErrorLimit)

			sut.OnErr(func(err error) {
				Fail("unexpected error: " + err.Error())
			})

			Expect(sut.Next(ctx)).Should(Equal("com"))

			_, err := sut.Next(ctx)
			Expect(err).Should(MatchError(io.EOF))
		})
	})
})
