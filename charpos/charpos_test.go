package charpos

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func setupTest(t *testing.T) func() {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	return teardown
}

func TestColumnTracking(t *testing.T) {
	teardown := setupTest(t)
	defer teardown()
	//
	var sb strings.Builder
	cw := New(&sb)
	if cw.Column() != 0 {
		t.Errorf("fresh writer should start at column 0")
	}
	cw.WriteString("hello")
	if cw.Column() != 5 {
		t.Errorf("Column() = %d, want 5", cw.Column())
	}
	cw.WriteString(" world\nab")
	if cw.Column() != 2 {
		t.Errorf("Column() after newline = %d, want 2", cw.Column())
	}
	if sb.String() != "hello world\nab" {
		t.Errorf("sink content = %q", sb.String())
	}
}

func TestFreshLine(t *testing.T) {
	teardown := setupTest(t)
	defer teardown()
	//
	var sb strings.Builder
	cw := New(&sb)
	if cw.FreshLine() {
		t.Errorf("FreshLine at column 0 should be a no-op")
	}
	cw.WriteString("abc")
	if !cw.FreshLine() {
		t.Errorf("FreshLine at column 3 should write a newline")
	}
	if cw.Column() != 0 || sb.String() != "abc\n" {
		t.Errorf("column %d, content %q", cw.Column(), sb.String())
	}
	cw.EndLine()
	if sb.String() != "abc\n\n" {
		t.Errorf("EndLine is unconditional, content %q", sb.String())
	}
}

func TestEmptyWrites(t *testing.T) {
	teardown := setupTest(t)
	defer teardown()
	// empty strings and line-final newlines must not upset width calculation
	if w := StringWidth(""); w != 0 {
		t.Errorf("StringWidth(\"\") = %d, want 0", w)
	}
	var sb strings.Builder
	cw := New(&sb)
	cw.WriteString("")
	cw.WriteString("\n")
	if cw.Column() != 0 {
		t.Errorf("Column() after newline-only write = %d, want 0", cw.Column())
	}
	cw.WriteString("ab\n")
	if cw.Column() != 0 || sb.String() != "\nab\n" {
		t.Errorf("column %d, content %q", cw.Column(), sb.String())
	}
}

func TestWideCharacters(t *testing.T) {
	teardown := setupTest(t)
	defer teardown()
	// East Asian wide characters occupy two cells
	if w := StringWidth("世界"); w != 4 {
		t.Errorf("StringWidth(世界) = %d, want 4", w)
	}
	if w := StringWidth("abc"); w != 3 {
		t.Errorf("StringWidth(abc) = %d, want 3", w)
	}
	var sb strings.Builder
	cw := New(&sb)
	cw.WriteString("a世")
	if cw.Column() != 3 {
		t.Errorf("Column() = %d, want 3", cw.Column())
	}
}
