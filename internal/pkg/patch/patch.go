package patch

// Coalesce dereferences ptr, falling back when a PATCH body left the field out.
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr == nil {
		return fallback
	}
	return *ptr
}
