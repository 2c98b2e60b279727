package runtime

import (
	"bytes"
	"errors"
	"testing"
)

func TestRunSuccess(t *testing.T) {
	var stderr bytes.Buffer
	code := Run(func() error { return nil }, &stderr)
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if stderr.Len() != 0 {
		t.Fatalf("stderr = %q, want empty", stderr.String())
	}
}

func TestRunPrintsRuntimeErrors(t *testing.T) {
	cases := []struct {
		err  *Error
		want string
	}{
		{NewError(TypeError, "sep must be None or a string"), "TypeError: sep must be None or a string\n"},
		{NewError(IndexError, "list index out of range"), "IndexError: list index out of range\n"},
		{NewError(NotImplementedError, "print() does not support the file keyword argument yet"), "NotImplementedError: print() does not support the file keyword argument yet\n"},
	}
	for _, tc := range cases {
		var stderr bytes.Buffer
		code := Run(func() error { return tc.err }, &stderr)
		if code != 1 {
			t.Errorf("exit code = %d, want 1", code)
		}
		if stderr.String() != tc.want {
			t.Errorf("stderr = %q, want %q", stderr.String(), tc.want)
		}
	}
}

func TestRunReportsForeignErrors(t *testing.T) {
	var stderr bytes.Buffer
	code := Run(func() error { return errors.New("broken pipe") }, &stderr)
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if stderr.String() != "broken pipe\n" {
		t.Fatalf("stderr = %q", stderr.String())
	}
}
