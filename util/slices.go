package util

// ConvertEach returns `convert` applied to every element of `in`.
// A nil input gives a nil result.
func ConvertEach[T, U any](in []T, convert func(T) U) []U {
	if in == nil {
		return nil
	}

	res := make([]U, len(in))

	for i, t := range in {
		res[i] = convert(t)
	}

	return res
}

// ConcatSlices returns a new slice holding the elements of every input, in order.
func ConcatSlices[T any](slices ...[]T) []T {
	size := 0

	for _, s := range slices {
		size += len(s)
	}

	res := make([]T, 0, size)

	for _, s := range slices {
		res = append(res, s...)
	}

	return res
}
