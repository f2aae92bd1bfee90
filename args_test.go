package clformat

import (
	"errors"
	"testing"
)

func TestArgumentsCursor(t *testing.T) {
	args := NewArguments(1, 2, 3)
	if args.Len() != 3 || args.Remaining() != 3 || args.Empty() {
		t.Fatalf("fresh cursor in unexpected state")
	}
	v, err := args.Next()
	if err != nil || v != 1 {
		t.Errorf("Next() = %v, %v, want 1", v, err)
	}
	if args.Remaining() != 2 {
		t.Errorf("Remaining() = %d, want 2", args.Remaining())
	}
	v, err = args.Peek(0)
	if err != nil || v != 2 {
		t.Errorf("Peek(0) = %v, %v, want 2", v, err)
	}
	v, err = args.Peek(-1)
	if err != nil || v != 1 {
		t.Errorf("Peek(-1) = %v, %v, want 1", v, err)
	}
	v, err = args.Prev()
	if err != nil || v != 1 {
		t.Errorf("Prev() = %v, %v, want 1", v, err)
	}
	if err = args.Goto(2); err != nil {
		t.Errorf("Goto(2) failed: %v", err)
	}
	if v, _ = args.Next(); v != 3 {
		t.Errorf("after Goto(2), Next() = %v, want 3", v)
	}
	if !args.Empty() {
		t.Errorf("cursor should be exhausted")
	}
	if _, err = args.Next(); !errors.Is(err, ErrNoMoreArguments) {
		t.Errorf("Next() on exhausted cursor: %v", err)
	}
	if err = args.Goto(3); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("Goto(3) should be out of bounds, got %v", err)
	}
}

func TestArgumentsNesting(t *testing.T) {
	outer := NewArguments([]any{1, 2}, 3)
	v, _ := outer.Next()
	list, ok := asList(v)
	if !ok {
		t.Fatalf("expected a sequence argument")
	}
	inner := nested(list, outer)
	if inner.Outer() != outer {
		t.Errorf("nested cursor lost its outer reference")
	}
	if outer.Remaining() != 1 || inner.Remaining() != 2 {
		t.Errorf("unexpected remaining counts: %d, %d",
			outer.Remaining(), inner.Remaining())
	}
}

func TestAsList(t *testing.T) {
	if _, ok := asList("no list"); ok {
		t.Errorf("a string should not coerce to a sequence")
	}
	list, ok := asList([]string{"a", "b"})
	if !ok || len(list) != 2 || list[1] != "b" {
		t.Errorf("asList([]string) = %v, %v", list, ok)
	}
	list, ok = asList([2]int{7, 9})
	if !ok || len(list) != 2 || list[0] != 7 {
		t.Errorf("asList([2]int) = %v, %v", list, ok)
	}
}
