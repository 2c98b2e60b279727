package runtime

import "testing"

func collectRange(t *testing.T, r RangeValue) []int64 {
	t.Helper()
	var out []int64
	for it := r.Iter(); ; {
		v, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, v.Val)
	}
	return out
}

func TestRangeStopOnly(t *testing.T) {
	r, err := Range(Int(4))
	if err != nil {
		t.Fatalf("range(4) failed: %v", err)
	}
	got := collectRange(t, r)
	want := []int64{0, 1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("range(4) yielded %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("range(4) yielded %v, want %v", got, want)
		}
	}
}

func TestRangeStartStop(t *testing.T) {
	r, err := Range(Int(1), Int(4))
	if err != nil {
		t.Fatalf("range(1, 4) failed: %v", err)
	}
	got := collectRange(t, r)
	if len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Fatalf("range(1, 4) yielded %v", got)
	}
	if r.Len() != 3 {
		t.Fatalf("range(1, 4) len = %d, want 3", r.Len())
	}
}

func TestRangeEmptyWhenStopNotAfterStart(t *testing.T) {
	for _, bounds := range [][]Value{
		{Int(0)},
		{Int(-3)},
		{Int(5), Int(5)},
		{Int(7), Int(2)},
	} {
		r, err := Range(bounds...)
		if err != nil {
			t.Fatalf("range(%v) failed: %v", bounds, err)
		}
		if got := collectRange(t, r); len(got) != 0 {
			t.Errorf("range(%v) yielded %v, want nothing", bounds, got)
		}
		if r.Len() != 0 {
			t.Errorf("range(%v) len = %d, want 0", bounds, r.Len())
		}
	}
}

func TestRangeIsRestartable(t *testing.T) {
	r, err := Range(Int(3))
	if err != nil {
		t.Fatalf("range(3) failed: %v", err)
	}
	first := collectRange(t, r)
	second := collectRange(t, r)
	if len(first) != 3 || len(second) != 3 {
		t.Fatalf("restarted traversals yielded %v then %v", first, second)
	}
}

func TestRangeArgumentValidation(t *testing.T) {
	if _, err := Range(); !IsKind(err, TypeError) {
		t.Fatalf("range() error = %v, want TypeError", err)
	}

	_, err := Range(Int(0), Int(1), Int(2))
	if err == nil || err.Error() != "TypeError: range expected at most 2 arguments, got 3" {
		t.Fatalf("range(0, 1, 2) error = %v", err)
	}

	_, err = Range(Text("5"))
	if err == nil || err.Error() != "TypeError: 'str' object cannot be interpreted as an integer" {
		t.Fatalf("range(\"5\") error = %v", err)
	}
}
