// Iterative factorials in the calling convention compy emits, covering the
// while-loop and the range-based for-loop translations of the same program.
//
// Source program:
//
//	def factorial_while(n) -> int:
//	    i : int = 1
//	    result : int = 1
//	    while i <= n:
//	        result *= i
//	        i += 1
//	    return result
//
//	def factorial_for(n) -> int:
//	    result : int = 1
//	    for i in range(1, n+1):
//	        result *= i
//	    return result
//
//	print("5! = ", factorial_while(5), sep="")
//	print("5! = ", factorial_for(5), sep="")
package main

import (
	"github.com/RobertBendun/compy/pkg/runtime"
)

func factorialWhile(n runtime.Value) (runtime.Value, error) {
	var i runtime.Value = runtime.Int(1)
	var result runtime.Value = runtime.Int(1)
	for {
		cond, err := runtime.LessEq(i, n)
		if err != nil {
			return nil, err
		}
		if !runtime.Truth(cond) {
			break
		}
		result, err = runtime.Mul(result, i)
		if err != nil {
			return nil, err
		}
		i, err = runtime.Add(i, runtime.Int(1))
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

func factorialFor(n runtime.Value) (runtime.Value, error) {
	var result runtime.Value = runtime.Int(1)
	stop, err := runtime.Add(n, runtime.Int(1))
	if err != nil {
		return nil, err
	}
	r, err := runtime.Range(runtime.Int(1), stop)
	if err != nil {
		return nil, err
	}
	for it := r.Iter(); ; {
		i, ok := it.Next()
		if !ok {
			break
		}
		result, err = runtime.Mul(result, i)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

func compyMain() error {
	for _, fac := range []func(runtime.Value) (runtime.Value, error){factorialWhile, factorialFor} {
		f, err := fac(runtime.Int(5))
		if err != nil {
			return err
		}
		err = runtime.PrintKw(
			runtime.Kwargs{}.Append("sep", runtime.Text("")),
			runtime.Text("5! = "), f)
		if err != nil {
			return err
		}
	}
	return nil
}

func main() {
	runtime.Main(compyMain)
}
