package parsers

import (
	"context"
	"errors"
)

// NoErrorLimit can be used to continue parsing until EOF.
const NoErrorLimit = -1

var ErrTooManyErrors = errors.New("too many parse errors")

// FilteredSeriesParser is a `SeriesParser` that can step over resumable errors.
type FilteredSeriesParser[T any] interface {
	SeriesParser[T]

	// OnErr registers a callback invoked, with the position, for each resumable error.
	OnErr(func(error))

	// Skipped returns how many resumable errors were stepped over so far.
	Skipped() int
}

// FilterErrors lets `filter` decide, for each resumable error of `inner`, whether parsing goes on.
// A nil result skips the error. Non resumable errors are always returned.
func FilterErrors[T any](inner SeriesParser[T], filter func(error) error) FilteredSeriesParser[T] {
	return &errorFilter[T]{inner: inner, filter: filter}
}

// AllowErrors skips up to `n` resumable errors of `inner`, or all of them with `NoErrorLimit`.
func AllowErrors[T any](inner SeriesParser[T], n int) FilteredSeriesParser[T] {
	f := &errorFilter[T]{inner: inner}

	f.filter = func(error) error {
		if n != NoErrorLimit && f.skipped >= n {
			return ErrTooManyErrors
		}

		return nil
	}

	return f
}

type errorFilter[T any] struct {
	inner     SeriesParser[T]
	filter    func(error) error
	callbacks []func(error)
	skipped   int
}

func (f *errorFilter[T]) OnErr(callback func(error)) {
	f.callbacks = append(f.callbacks, callback)
}

func (f *errorFilter[T]) Skipped() int {
	return f.skipped
}

func (f *errorFilter[T]) Position() string {
	return f.inner.Position()
}

func (f *errorFilter[T]) Next(ctx context.Context) (T, error) {
	for {
		res, err := f.inner.Next(ctx)

		switch {
		case err == nil:
			return res, nil

		case IsNonResumableErr(err):
			return res, err
		}

		for _, callback := range f.callbacks {
			callback(ErrWithPosition(f.inner, err))
		}

		if err := f.filter(err); err != nil {
			return res, err
		}

		f.skipped++
	}
}
