package report

import (
	"errors"
	"testing"

	"github.com/goliatone/reportgen/pkg/picture"
)

func TestCompile_UnknownBandKey(t *testing.T) {
	_, err := Compile("@<<<\nv", WithBand("sideways", "oops"))
	var cfg *ConfigError
	if !errors.As(err, &cfg) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
}

func TestCompile_RecursiveBandReference(t *testing.T) {
	shared, err := Compile("@<<<\nv")
	if err != nil {
		t.Fatalf("compile shared: %v", err)
	}
	_, err = Compile("@<<<\nv", WithTop(shared), WithBottom(shared))
	var cfg *ConfigError
	if !errors.As(err, &cfg) {
		t.Fatalf("expected ConfigError for shared band form, got %v", err)
	}
}

func TestCompile_BandCompileErrorsPropagate(t *testing.T) {
	_, err := Compile("@<<<\nv", WithBottom("@<< @>>\nonly_one"))
	var arity *picture.ArityMismatchError
	if !errors.As(err, &arity) {
		t.Fatalf("expected ArityMismatchError from band, got %v", err)
	}
}

func TestCompile_NestedFormSharesPaginationContext(t *testing.T) {
	top, err := Compile("Page @&&&\npg")
	if err != nil {
		t.Fatalf("compile top: %v", err)
	}
	form, err := Compile("@<<<<<\nname", WithPageLength(3), WithTop(top), WithBottom("---"))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	sink := &sliceSink{}
	for _, name := range []string{"a", "b", "c"} {
		if err := form.Render(mapStringResolver{"name": name}, sink); err != nil {
			t.Fatalf("render %s: %v", name, err)
		}
	}
	// Third record forces a break; the nested top must see page 2 from the
	// shared counter.
	found := false
	for _, line := range sink.lines {
		if line == "Page  2" {
			found = true
		}
	}
	if !found {
		t.Fatalf("nested top never saw the shared page counter: %q", sink.lines)
	}
}

func TestForm_LineCount(t *testing.T) {
	form, err := Compile("one\ntwo\n@<<<\nv")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if got := form.LineCount(); got != 3 {
		t.Fatalf("line count = %d, want 3", got)
	}
}

func TestForm_ResetPage(t *testing.T) {
	form, err := Compile("@<<<<<\nname", WithPageLength(4))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	sink := &sliceSink{}
	if err := form.Render(mapStringResolver{"name": "x"}, sink); err != nil {
		t.Fatalf("render: %v", err)
	}
	form.ResetPage()
	if form.ctx.linesLeft != 4 || !form.ctx.topPending {
		t.Fatalf("context after reset: %+v", form.ctx)
	}
}
