package runtime

// Binary operators over dynamic values. compy emits these for the handful of
// operators its front end accepts; operand checks are strict and the error
// messages follow CPython's phrasing.

func operandTypeError(op string, a, b Value) *Error {
	return Errorf(TypeError, "unsupported operand type(s) for %s: '%s' and '%s'", op, a.Kind(), b.Kind())
}

// Add implements int+int, str+str and list+list.
func Add(a, b Value) (Value, error) {
	switch lhs := a.(type) {
	case IntValue:
		if rhs, ok := b.(IntValue); ok {
			return Int(lhs.Val + rhs.Val), nil
		}
	case StringValue:
		if rhs, ok := b.(StringValue); ok {
			return Text(lhs.Val + rhs.Val), nil
		}
	case *ListValue:
		if rhs, ok := b.(*ListValue); ok {
			return lhs.Concat(rhs), nil
		}
	}
	return nil, operandTypeError("+", a, b)
}

// Sub implements int-int.
func Sub(a, b Value) (Value, error) {
	lhs, lok := a.(IntValue)
	rhs, rok := b.(IntValue)
	if !lok || !rok {
		return nil, operandTypeError("-", a, b)
	}
	return Int(lhs.Val - rhs.Val), nil
}

// Mul implements int*int plus Python's sequence repetition in both operand
// orders: list*int, int*list, str*int and int*str.
func Mul(a, b Value) (Value, error) {
	switch lhs := a.(type) {
	case IntValue:
		switch rhs := b.(type) {
		case IntValue:
			return Int(lhs.Val * rhs.Val), nil
		case StringValue:
			return Text(repeatText(rhs.Val, lhs.Val)), nil
		case *ListValue:
			return rhs.Repeat(lhs.Val), nil
		}
	case StringValue:
		if rhs, ok := b.(IntValue); ok {
			return Text(repeatText(lhs.Val, rhs.Val)), nil
		}
		return nil, Errorf(TypeError, "can't multiply sequence by non-int of type '%s'", b.Kind())
	case *ListValue:
		if rhs, ok := b.(IntValue); ok {
			return lhs.Repeat(rhs.Val), nil
		}
		return nil, Errorf(TypeError, "can't multiply sequence by non-int of type '%s'", b.Kind())
	}
	return nil, operandTypeError("*", a, b)
}

// Less implements int<int.
func Less(a, b Value) (Value, error) {
	lhs, lok := a.(IntValue)
	rhs, rok := b.(IntValue)
	if !lok || !rok {
		return nil, Errorf(TypeError, "'<' not supported between instances of '%s' and '%s'", a.Kind(), b.Kind())
	}
	return Bool(lhs.Val < rhs.Val), nil
}

// LessEq implements int<=int.
func LessEq(a, b Value) (Value, error) {
	lhs, lok := a.(IntValue)
	rhs, rok := b.(IntValue)
	if !lok || !rok {
		return nil, Errorf(TypeError, "'<=' not supported between instances of '%s' and '%s'", a.Kind(), b.Kind())
	}
	return Bool(lhs.Val <= rhs.Val), nil
}

// Truth applies Python truthiness: None is false, numbers compare against
// zero, sequences against emptiness.
func Truth(v Value) bool {
	switch t := v.(type) {
	case NoneValue:
		return false
	case BoolValue:
		return t.Val
	case IntValue:
		return t.Val != 0
	case StringValue:
		return t.Val != ""
	case *ListValue:
		return len(t.Elements) > 0
	default:
		return true
	}
}

// Subscript evaluates v[index]. Only lists are subscriptable; the index must
// be an int and follows list indexing (negative indices, IndexError on
// out-of-range access).
func Subscript(v Value, index Value) (Value, error) {
	list, ok := v.(*ListValue)
	if !ok {
		return nil, NewError(TypeError, "Subscript is only allowed for list types")
	}
	i, ok := index.(IntValue)
	if !ok {
		return nil, Errorf(TypeError, "list indices must be integers, not %s", index.Kind())
	}
	return list.Index(i.Val)
}

func repeatText(s string, n int64) string {
	if n <= 0 {
		return ""
	}
	out := make([]byte, 0, n*int64(len(s)))
	for ; n > 0; n-- {
		out = append(out, s...)
	}
	return string(out)
}
