package utils

// FindIndex returns the position of the first occurrence of item, or -1.
func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// Filter returns a new slice with the elements of slice that satisfy keep.
func Filter[T any](slice []T, keep func(T) bool) []T {
	kept := []T{}
	for _, v := range slice {
		if keep(v) {
			kept = append(kept, v)
		}
	}
	return kept
}
