package clformat

import (
	"testing"
)

func TestParseLiteralFolding(t *testing.T) {
	// constant-character directives with literal parameters fold into the
	// surrounding text at compile time
	items, err := compile("a~%b~3~c")
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 1 {
		t.Fatalf("expected a single folded literal, got %d items", len(items))
	}
	if lit, ok := items[0].(literal); !ok || string(lit) != "a\nb~~~c" {
		t.Errorf("folded literal = %q", items[0])
	}
	// a V parameter keeps the directive
	items, err = compile("~V%")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := items[0].(*directive); !ok {
		t.Errorf("~V%% should stay a directive")
	}
}

func TestParseParameters(t *testing.T) {
	items, err := compile("~-2,'x,,V,#R")
	if err != nil {
		t.Fatal(err)
	}
	d := items[0].(*directive)
	if len(d.params) != 5 {
		t.Fatalf("expected 5 parameters, got %d", len(d.params))
	}
	want := []param{
		{kind: paramInt, num: -2},
		{kind: paramChar, ch: 'x'},
		{kind: paramAbsent},
		{kind: paramArg},
		{kind: paramRemaining},
	}
	for i, p := range d.params {
		if p != want[i] {
			t.Errorf("param %d = %+v, want %+v", i, p, want[i])
		}
	}
	if d.op != opRadix {
		t.Errorf("selector parsed as opcode %d", d.op)
	}
}

func TestParseLowercaseSelector(t *testing.T) {
	items, err := compile("~d~a~s")
	if err != nil {
		t.Fatal(err)
	}
	ops := []opcode{opDecimal, opAesthetic, opStandard}
	for i, it := range items {
		if d, ok := it.(*directive); !ok || d.op != ops[i] {
			t.Errorf("item %d: selector case-insensitivity broken", i)
		}
	}
}

func TestParseClauseStructure(t *testing.T) {
	items, err := compile("~[a~;b~:;c~]")
	if err != nil {
		t.Fatal(err)
	}
	d := items[0].(*directive)
	if len(d.clauses) != 3 || len(d.separators) != 2 {
		t.Fatalf("clauses/separators = %d/%d, want 3/2",
			len(d.clauses), len(d.separators))
	}
	if !d.separators[1].colon {
		t.Errorf("final separator should carry the colon")
	}
	if d.closer == nil || d.closer.op != opEndConditional {
		t.Errorf("closer not recorded")
	}
}

func TestParseLogicalBlockDiscriminant(t *testing.T) {
	// one opening syntax, two semantics: the closer's colon decides
	items, _ := compile("~<pre~;body~;post~:>")
	d := items[0].(*directive)
	if !d.logical {
		t.Fatalf("~:> should select logical-block semantics")
	}
	if d.prefix != "pre" || d.suffix != "post" {
		t.Errorf("prefix/suffix = %q/%q", d.prefix, d.suffix)
	}
	if !d.needPretty {
		t.Errorf("logical block should require a pretty-printing sink")
	}

	items, _ = compile("~<abc~>")
	d = items[0].(*directive)
	if d.logical {
		t.Errorf("~> should select justification semantics")
	}
}

func TestParseSinkRequirements(t *testing.T) {
	for _, tc := range []struct {
		control    string
		needCol    bool
		needPretty bool
	}{
		{"plain text ~D", false, false},
		{"~0,8T", true, false},
		{"~&", true, false},
		{"~A", true, true},
		{"~{~D~}", false, false},
		{"~{~A~}", true, true},
		{"~{~}", true, true}, // run-time body: be prepared
	} {
		f, err := Compile(tc.control)
		if err != nil {
			t.Fatal(err)
		}
		if f.needCol != tc.needCol || f.needPretty != tc.needPretty {
			t.Errorf("%q: needCol/needPretty = %v/%v, want %v/%v", tc.control,
				f.needCol, f.needPretty, tc.needCol, tc.needPretty)
		}
	}
}

func TestParseDeterminism(t *testing.T) {
	control := "~{~A~^, ~}"
	a, err := Compile(control)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Compile(control)
	if err != nil {
		t.Fatal(err)
	}
	args := []any{[]string{"x", "y"}}
	s1, err1 := a.String(args...)
	s2, err2 := b.String(args...)
	if err1 != nil || err2 != nil || s1 != s2 || s1 != "x, y" {
		t.Errorf("compilation not deterministic: %q vs %q", s1, s2)
	}
}
