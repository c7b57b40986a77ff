package parsers

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// SeriesParser parses a series of `T`.
type SeriesParser[T any] interface {
	// Next moves the cursor forward and returns the next `T`, or an error.
	//
	// Errors of type `NonResumableError` end the series: `Next` must not be called again.
	// Any other error only concerns the current item.
	Next(context.Context) (T, error)

	// Position describes where the cursor is, in terms a user understands (ex: "line 12").
	Position() string
}

// ForEach calls `callback` for each item of `parser`.
//
// Iteration stops at the first error, which is returned prefixed with the parser's position.
// Reaching the end of the series (`io.EOF`) is not an error.
//
// Use `FilterErrors` to keep going after resumable errors.
func ForEach[T any](ctx context.Context, parser SeriesParser[T], callback func(T) error) (rerr error) {
	defer func() {
		rerr = ErrWithPosition(parser, rerr)
	}()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		res, err := parser.Next(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}

			return err
		}

		if err := callback(res); err != nil {
			return err
		}
	}
}

// Collect returns all items of `parser`.
func Collect[T any](ctx context.Context, parser SeriesParser[T]) ([]T, error) {
	var res []T

	err := ForEach(ctx, parser, func(t T) error {
		res = append(res, t)

		return nil
	})

	return res, err
}

// ErrWithPosition prefixes `err` with the `parser`'s position.
func ErrWithPosition[T any](parser SeriesParser[T], err error) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%s: %w", parser.Position(), err)
}

// IsNonResumableErr returns true if `err` ends the series it was returned by.
func IsNonResumableErr(err error) bool {
	var nonResumableError *NonResumableError

	return errors.As(err, &nonResumableError)
}

// NonResumableError is an error after which a parser cannot continue.
type NonResumableError struct {
	inner error
}

func NewNonResumableError(inner error) error {
	return &NonResumableError{inner}
}

func (e *NonResumableError) Error() string {
	return fmt.Sprintf("non resumable parse error: %s", e.inner.Error())
}

func (e *NonResumableError) Unwrap() error {
	return e.inner
}
