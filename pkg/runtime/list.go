package runtime

// ListValue is an ordered, growable, owning sequence of values. Mixed element
// kinds and duplicates are allowed; insertion order is preserved. Lists own
// their elements, so Clone copies the spine and every contained list.
type ListValue struct {
	Elements []Value
}

func (l *ListValue) Kind() Kind { return KindList }

// NewList builds a list from the given elements, in order. The variadic
// slice is copied so callers cannot alias the list's storage.
func NewList(elems ...Value) *ListValue {
	out := make([]Value, len(elems))
	copy(out, elems)
	return &ListValue{Elements: out}
}

// Len returns the number of elements.
func (l *ListValue) Len() int {
	return len(l.Elements)
}

// Index returns the element at i, accepting Python's negative indices:
// -1 is the last element. i is normalized to Len()+i before bounds
// validation; anything outside [-Len, Len-1] is an IndexError.
func (l *ListValue) Index(i int64) (Value, error) {
	n := int64(len(l.Elements))
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return nil, NewError(IndexError, "list index out of range")
	}
	return l.Elements[i], nil
}

// Append adds v at the end, taking ownership of it.
func (l *ListValue) Append(v Value) {
	l.Elements = append(l.Elements, v)
}

// Repeat returns a new list holding the original sequence concatenated n
// times. Any n <= 0 yields an empty list, matching Python's repeat counts.
func (l *ListValue) Repeat(n int64) *ListValue {
	if n <= 0 {
		return &ListValue{Elements: []Value{}}
	}
	out := make([]Value, 0, n*int64(len(l.Elements)))
	for ; n > 0; n-- {
		for _, el := range l.Elements {
			out = append(out, Clone(el))
		}
	}
	return &ListValue{Elements: out}
}

// Concat returns a new list holding l's elements followed by other's.
func (l *ListValue) Concat(other *ListValue) *ListValue {
	out := make([]Value, 0, len(l.Elements)+len(other.Elements))
	for _, el := range l.Elements {
		out = append(out, Clone(el))
	}
	for _, el := range other.Elements {
		out = append(out, Clone(el))
	}
	return &ListValue{Elements: out}
}

// Clone deep-copies the list.
func (l *ListValue) Clone() *ListValue {
	out := make([]Value, len(l.Elements))
	for i, el := range l.Elements {
		out[i] = Clone(el)
	}
	return &ListValue{Elements: out}
}
