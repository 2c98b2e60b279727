// Recursive factorial written in the calling convention compy emits: every
// Python value is a runtime.Value, operators go through the runtime's
// checked helpers, and main delegates to runtime.Main for the top-level
// error boundary.
//
// Source program:
//
//	def factorial(n) -> int:
//	    return 1 if n < 2 else n * factorial(n-1)
//
//	def test_factorial(n):
//	    print(n, "! = ", factorial(5), sep="")
//
//	test_factorial(5)
package main

import (
	"github.com/RobertBendun/compy/pkg/runtime"
)

func factorial(n runtime.Value) (runtime.Value, error) {
	cond, err := runtime.Less(n, runtime.Int(2))
	if err != nil {
		return nil, err
	}
	if runtime.Truth(cond) {
		return runtime.Int(1), nil
	}
	pred, err := runtime.Sub(n, runtime.Int(1))
	if err != nil {
		return nil, err
	}
	rec, err := factorial(pred)
	if err != nil {
		return nil, err
	}
	return runtime.Mul(n, rec)
}

func testFactorial(n runtime.Value) error {
	f, err := factorial(runtime.Int(5))
	if err != nil {
		return err
	}
	return runtime.PrintKw(
		runtime.Kwargs{}.Append("sep", runtime.Text("")),
		n, runtime.Text("! = "), f)
}

func compyMain() error {
	return testFactorial(runtime.Int(5))
}

func main() {
	runtime.Main(compyMain)
}
