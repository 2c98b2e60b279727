package runtime

// The coercion helpers implement Python's strict keyword-argument checks:
// a parameter either holds exactly the declared variant, or (for the OrNone
// forms) None standing in for a default.

// AssertType returns the contained T iff the active variant is exactly T.
// Any other variant, None included, yields a TypeError carrying message.
func AssertType[T Value](v Value, message string) (T, error) {
	if t, ok := v.(T); ok {
		return t, nil
	}
	var zero T
	return zero, NewError(TypeError, message)
}

// TypeOrNone is AssertType with None substituting the zero value of T.
func TypeOrNone[T Value](v Value, message string) (T, error) {
	var zero T
	return TypeOrDefault(v, zero, message)
}

// TypeOrDefault is AssertType with None substituting an explicit default.
func TypeOrDefault[T Value](v Value, def T, message string) (T, error) {
	if t, ok := v.(T); ok {
		return t, nil
	}
	if IsNone(v) {
		return def, nil
	}
	var zero T
	return zero, NewError(TypeError, message)
}
