package runtime

// RangeValue is a lazy, finite, restartable sequence of integers counting by
// one from Start (inclusive) to Stop (exclusive). compy's range() takes no
// step argument.
type RangeValue struct {
	Start int64
	Stop  int64
}

// Range builds a range from the dynamic arguments of an emitted range()
// call: one argument is the stop, two are start and stop. Arguments must be
// ints.
func Range(bounds ...Value) (RangeValue, error) {
	switch len(bounds) {
	case 0:
		return RangeValue{}, NewError(TypeError, "range expected at least 1 argument, got 0")
	case 1:
		stop, err := rangeBound(bounds[0])
		if err != nil {
			return RangeValue{}, err
		}
		return RangeValue{Stop: stop}, nil
	case 2:
		start, err := rangeBound(bounds[0])
		if err != nil {
			return RangeValue{}, err
		}
		stop, err := rangeBound(bounds[1])
		if err != nil {
			return RangeValue{}, err
		}
		return RangeValue{Start: start, Stop: stop}, nil
	default:
		return RangeValue{}, Errorf(TypeError, "range expected at most 2 arguments, got %d", len(bounds))
	}
}

func rangeBound(v Value) (int64, error) {
	n, ok := v.(IntValue)
	if !ok {
		return 0, Errorf(TypeError, "'%s' object cannot be interpreted as an integer", v.Kind())
	}
	return n.Val, nil
}

// Len returns the number of values the range yields.
func (r RangeValue) Len() int64 {
	if r.Stop <= r.Start {
		return 0
	}
	return r.Stop - r.Start
}

// Iter starts a fresh traversal. Each call returns an independent iterator,
// so a range can be walked any number of times.
func (r RangeValue) Iter() *RangeIterator {
	return &RangeIterator{next: r.Start, stop: r.Stop}
}

// RangeIterator walks a range once.
type RangeIterator struct {
	next int64
	stop int64
}

// Next returns the next integer and true, or a zero value and false once the
// range is exhausted.
func (it *RangeIterator) Next() (IntValue, bool) {
	if it.next >= it.stop {
		return IntValue{}, false
	}
	v := Int(it.next)
	it.next++
	return v, true
}
