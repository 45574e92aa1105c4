package patch

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise fallback.
// Used for merge-on-update semantics where nil means "leave unchanged".
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}
