package runtime

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// Kwargs carries the keyword arguments of an emitted call site. Keys are
// unique; no ordering is guaranteed. Append chains so emitted code can build
// a bundle in one expression.
type Kwargs map[string]Value

func (k Kwargs) Append(key string, v Value) Kwargs {
	if k == nil {
		k = Kwargs{}
	}
	k[key] = v
	return k
}

// Printer mirrors Python's print() configuration as explicit typed fields.
// The zero Printer is not useful; NewPrinter supplies Python's defaults and
// standard output.
type Printer struct {
	Out       io.Writer
	Separator string
	End       string
	Flush     bool
}

func NewPrinter() *Printer {
	return &Printer{
		Out:       os.Stdout,
		Separator: " ",
		End:       "\n",
		Flush:     false,
	}
}

type flusher interface {
	Flush() error
}

// Print writes the arguments joined by the separator, followed by the
// terminator, flushing the writer when configured and supported.
func (p *Printer) Print(args ...Value) error {
	var b strings.Builder
	for i, arg := range args {
		if i > 0 {
			b.WriteString(p.Separator)
		}
		s, err := Str(arg)
		if err != nil {
			return err
		}
		b.WriteString(s)
	}
	b.WriteString(p.End)
	if _, err := io.WriteString(p.Out, b.String()); err != nil {
		return fmt.Errorf("print: %w", err)
	}
	if p.Flush {
		if f, ok := p.Out.(flusher); ok {
			if err := f.Flush(); err != nil {
				return fmt.Errorf("print: flush: %w", err)
			}
		}
	}
	return nil
}

// configure applies a keyword bundle to the printer, enforcing Python's
// per-option type checks.
func (p *Printer) configure(kw Kwargs) error {
	if v, ok := kw["sep"]; ok {
		sep, err := TypeOrDefault(v, Text(p.Separator), "sep must be None or a string")
		if err != nil {
			return err
		}
		p.Separator = sep.Val
	}
	if v, ok := kw["end"]; ok {
		end, err := TypeOrDefault(v, Text(p.End), "end must be None or a string")
		if err != nil {
			return err
		}
		p.End = end.Val
	}
	if v, ok := kw["flush"]; ok {
		flush, err := TypeOrDefault(v, Bool(p.Flush), "flush must be None or a bool")
		if err != nil {
			return err
		}
		p.Flush = flush.Val
	}
	if _, ok := kw["file"]; ok {
		return NewError(NotImplementedError, "print() does not support the file keyword argument yet")
	}
	var unknown []string
	for key := range kw {
		switch key {
		case "sep", "end", "flush", "file":
		default:
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return Errorf(TypeError, "'%s' is an invalid keyword argument for print()", unknown[0])
	}
	return nil
}

// Print is Python's print(*args) with default options.
func Print(args ...Value) error {
	return NewPrinter().Print(args...)
}

// PrintKw is Python's print(*args, **kwargs) for the recognized option set
// (sep, end, flush; file is not implemented).
func PrintKw(kw Kwargs, args ...Value) error {
	p := NewPrinter()
	if err := p.configure(kw); err != nil {
		return err
	}
	return p.Print(args...)
}
