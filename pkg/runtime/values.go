package runtime

// Kind identifies the runtime value category. The set is closed: compy only
// emits code over these five kinds. String() yields the Python type name so
// error messages can match CPython's phrasing.
type Kind int

const (
	KindNone Kind = iota
	KindBool
	KindInt
	KindString
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "NoneType"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindString:
		return "str"
	case KindList:
		return "list"
	default:
		return "unknown"
	}
}

// Value is the shared behaviour for all runtime values. Exactly one variant
// is active at a time; the zero value of the dynamic domain is None.
type Value interface {
	Kind() Kind
}

//-----------------------------------------------------------------------------
// Variants
//-----------------------------------------------------------------------------

type NoneValue struct{}

func (NoneValue) Kind() Kind { return KindNone }

type BoolValue struct {
	Val bool
}

func (v BoolValue) Kind() Kind { return KindBool }

type IntValue struct {
	Val int64
}

func (v IntValue) Kind() Kind { return KindInt }

type StringValue struct {
	Val string
}

func (v StringValue) Kind() Kind { return KindString }

//-----------------------------------------------------------------------------
// Constructors (the literal surface used by emitted code)
//-----------------------------------------------------------------------------

// None returns the None value. A nil Value never appears in emitted code;
// absence is always represented by None.
func None() NoneValue { return NoneValue{} }

// Bool wraps a host boolean.
func Bool(b bool) BoolValue { return BoolValue{Val: b} }

// Int wraps a host integer.
func Int(n int64) IntValue { return IntValue{Val: n} }

// Text wraps a host string. Emitted string literals go through here.
func Text(s string) StringValue { return StringValue{Val: s} }

//-----------------------------------------------------------------------------
// Shared helpers
//-----------------------------------------------------------------------------

// IsNone reports whether the active variant is None.
func IsNone(v Value) bool {
	if v == nil {
		return true
	}
	_, ok := v.(NoneValue)
	return ok
}

// Clone deep-copies a value. Scalars copy by value; lists copy their element
// storage recursively, so the clone never aliases the original.
func Clone(v Value) Value {
	if l, ok := v.(*ListValue); ok {
		return l.Clone()
	}
	return v
}
