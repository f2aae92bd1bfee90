package clformat

import (
	"strings"
	"testing"

	"github.com/npillmayer/clformat/pretty"
)

func expectPretty(t *testing.T, want string, width int, control string, args ...any) {
	t.Helper()
	var sb strings.Builder
	pp := pretty.New(&sb, width)
	if err := Format(pp, control, args...); err != nil {
		t.Errorf("format %q: unexpected error: %v", control, err)
		return
	}
	if err := pp.Close(); err != nil {
		t.Fatal(err)
	}
	if sb.String() != want {
		t.Errorf("format %q at width %d:\ngot  %q\nwant %q",
			control, width, sb.String(), want)
	}
}

func TestLogicalBlock(t *testing.T) {
	teardown := setupTest(t)
	defer teardown()
	//
	control := "+ ~<Roads ~<~A, ~:_~A~:> ~:_ Town ~<~A~:>~:> +"
	roads := []string{"Elm", "Cottonwood"}
	town := []string{"Boston"}
	arg := []any{roads, town}

	expectPretty(t, "+ Roads Elm, Cottonwood  Town Boston +",
		50, control, arg)
	expectPretty(t, "+ Roads Elm, Cottonwood \n   Town Boston +",
		25, control, arg)
	expectPretty(t, "+ Roads Elm, \n        Cottonwood \n   Town Boston +",
		21, control, arg)
}

func TestBlockIndentation(t *testing.T) {
	teardown := setupTest(t)
	defer teardown()
	//
	control := "~<(~;~A ~:I~A ~:_~A ~1I~_~A~;)~:>"
	defun := []any{"defun", "prod", "(x y)", "(* x y)"}

	expectPretty(t, "(defun prod (x y) (* x y))", 50, control, defun)
	expectPretty(t, "(defun prod (x y) \n  (* x y))", 25, control, defun)
	expectPretty(t, "(defun prod \n       (x y) \n  (* x y))", 15, control, defun)
}

func TestLogicalBlockBrackets(t *testing.T) {
	teardown := setupTest(t)
	defer teardown()
	// the colon modifier supplies default brackets
	expectPretty(t, "[a b c]", 40, "~:<~A ~A ~A~:>", []string{"a", "b", "c"})
}

func TestConditionalNewlineWithoutBlock(t *testing.T) {
	teardown := setupTest(t)
	defer teardown()
	// outside a logical block only the mandatory form breaks
	expectFormat(t, "hello world", "hello ~_world")
	expectFormat(t, "hello world", "hello ~:_world")
	expectFormat(t, "hello\nworld", "hello~:@_world")
}

func TestMandatoryNewline(t *testing.T) {
	teardown := setupTest(t)
	defer teardown()
	// ~:@_ breaks even when the block fits
	expectPretty(t, "ab\ncd", 40, "~<ab~:@_cd~:>", []any{})
}
