package util

import "strconv"

// CloneSlice clones slice with cloneSize.
// This function will use src length as the clone size if cloneSize is 0.
func CloneSlice[T any](src []T, cloneSize int) []T {
	if cloneSize == 0 {
		cloneSize = len(src)
	}
	clone := make([]T, cloneSize)
	copy(clone, src)

	return clone
}

// JoinInts renders the values as base-10 integers joined by sep.
// It returns an empty string for an empty slice.
func JoinInts[T ~int](values []T, sep string) string {
	if len(values) == 0 {
		return ""
	}

	buf := make([]byte, 0, len(values)*3)
	for i, v := range values {
		if i > 0 {
			buf = append(buf, sep...)
		}
		buf = strconv.AppendInt(buf, int64(v), 10)
	}

	return string(buf)
}
