package runtime

import (
	"strconv"
	"strings"
)

// Str renders a value the way CPython's str() does for the supported subset:
// None, True/False, decimal integers, strings verbatim, and lists as
// "[...]" with repr-formatted elements. Value implementations outside the
// closed variant set are unsupported.
func Str(v Value) (string, error) {
	switch t := v.(type) {
	case NoneValue:
		return "None", nil
	case BoolValue:
		if t.Val {
			return "True", nil
		}
		return "False", nil
	case IntValue:
		return strconv.FormatInt(t.Val, 10), nil
	case StringValue:
		return t.Val, nil
	case *ListValue:
		return formatList(t)
	default:
		return "", Errorf(NotImplementedError, "values of type '%s' are not supported", v.Kind())
	}
}

// Repr renders a value like CPython's repr(): identical to Str except that
// strings gain quotes and escapes.
func Repr(v Value) (string, error) {
	if s, ok := v.(StringValue); ok {
		return quoteText(s.Val), nil
	}
	return Str(v)
}

// ToStr is the str() builtin surface for emitted code.
func ToStr(v Value) (StringValue, error) {
	s, err := Str(v)
	if err != nil {
		return StringValue{}, err
	}
	return Text(s), nil
}

func formatList(l *ListValue) (string, error) {
	var b strings.Builder
	b.WriteByte('[')
	for i, el := range l.Elements {
		if i > 0 {
			b.WriteString(", ")
		}
		s, err := Repr(el)
		if err != nil {
			return "", err
		}
		b.WriteString(s)
	}
	b.WriteByte(']')
	return b.String(), nil
}

// quoteText applies Python's quote choice: single quotes, switching to
// double quotes when the text contains a single quote but no double quote.
func quoteText(s string) string {
	quote := byte('\'')
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		quote = '"'
	}
	var b strings.Builder
	b.WriteByte(quote)
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case rune(quote):
			b.WriteByte('\\')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte(quote)
	return b.String()
}
