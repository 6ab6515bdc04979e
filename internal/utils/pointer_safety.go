package utils

// Value dereferences p, returning the zero value when p is nil.
func Value[T any](v *T) T {
	if v == nil {
		return *new(T)
	}
	return *v
}

// Ptr returns a pointer to v. Handy for the optional fields of partial
// update payloads.
func Ptr[T any](v T) *T {
	return &v
}
