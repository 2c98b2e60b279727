package runtime

import (
	"fmt"
	"io"
	"os"
)

// Run invokes an emitted program's entry function and converts any escaping
// error into a diagnostic on stderr plus a process exit code: 0 on success,
// 1 on failure. Runtime errors print as "<Kind>: <message>".
func Run(program func() error, stderr io.Writer) int {
	if err := program(); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

// Main is the top-level boundary emitted main functions delegate to. It is
// the only place that decides process exit behaviour; nothing else in the
// runtime assumes it exists.
func Main(program func() error) {
	os.Exit(Run(program, os.Stderr))
}
