package parsers

import "context"

// TryAdapt returns a parser converting each value parsed by `inner`.
//
// A conversion error only concerns the current item: wrap the result with
// `FilterErrors` or `AllowErrors` to skip the values that can't be converted.
func TryAdapt[From, To any](inner SeriesParser[From], convert func(From) (To, error)) SeriesParser[To] {
	return &converter[From, To]{inner: inner, convert: convert}
}

type converter[From, To any] struct {
	inner   SeriesParser[From]
	convert func(From) (To, error)
}

func (c *converter[From, To]) Position() string {
	return c.inner.Position()
}

func (c *converter[From, To]) Next(ctx context.Context) (To, error) {
	from, err := c.inner.Next(ctx)
	if err != nil {
		var zero To

		return zero, err
	}

	return c.convert(from)
}
