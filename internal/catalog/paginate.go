package catalog

// Offset is the zero-based index of the first element on a 1-indexed page.
func Offset(size, number int) int {
	if size <= 0 || number <= 1 {
		return 0
	}
	return (number - 1) * size
}

// Page returns items[(number-1)*size : +size], clamped to the slice.
// A page past the end is empty, never an error.
func Page[T any](items []T, size, number int) []T {
	if size <= 0 {
		return []T{}
	}
	start := Offset(size, number)
	if start >= len(items) {
		return []T{}
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
