package patch

// Coalesce returns *ptr when the field was sent, fallback otherwise.
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// ReplaceSlice returns next when present, fallback otherwise. A present nil
// slice becomes an empty one so stored lists never turn into null.
func ReplaceSlice[T any](present bool, next, fallback []T) []T {
	if !present {
		return fallback
	}
	if next == nil {
		return []T{}
	}
	return next
}
