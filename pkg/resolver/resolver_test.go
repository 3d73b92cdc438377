package resolver

import (
	"errors"
	"testing"
)

func TestMap_StringifiesValues(t *testing.T) {
	m := NewMap(map[string]any{
		"s": "text",
		"i": 42,
		"f": 12.5,
		"b": true,
	})
	cases := map[string]string{
		"s":       "text",
		"i":       "42",
		"f":       "12.5",
		"b":       "true",
		"missing": "",
	}
	for name, want := range cases {
		if got := m.Get(name); got != want {
			t.Fatalf("Get(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestMap_SetWritesThrough(t *testing.T) {
	m := NewMap(map[string]any{"text": "abcdef"})
	m.Set("text", "def")
	if got := m.Get("text"); got != "def" {
		t.Fatalf("after Set, Get = %q", got)
	}
	if got := m.Values()["text"]; got != "def" {
		t.Fatalf("backing map not updated: %#v", got)
	}
}

func TestStruct_ResolvesExportedFields(t *testing.T) {
	type invoice struct {
		Customer string
		Total    float64 `report:"total"`
		internal int
	}

	s, err := NewStruct(&invoice{Customer: "ACME", Total: 99.5, internal: 1})
	if err != nil {
		t.Fatalf("new struct: %v", err)
	}
	if got := s.Get("Customer"); got != "ACME" {
		t.Fatalf("Customer = %q", got)
	}
	if got := s.Get("total"); got != "99.5" {
		t.Fatalf("total = %q", got)
	}
	if got := s.Get("internal"); got != "" {
		t.Fatalf("unexported field leaked: %q", got)
	}
}

func TestStruct_SetShadowsWithoutMutating(t *testing.T) {
	type rec struct{ Text string }
	v := rec{Text: "abcdef"}
	s, err := NewStruct(&v)
	if err != nil {
		t.Fatalf("new struct: %v", err)
	}
	s.Set("Text", "def")
	if got := s.Get("Text"); got != "def" {
		t.Fatalf("override not visible: %q", got)
	}
	if v.Text != "abcdef" {
		t.Fatalf("struct mutated: %q", v.Text)
	}
}

func TestStruct_RejectsNonStruct(t *testing.T) {
	if _, err := NewStruct(42); err == nil {
		t.Fatalf("expected error for non-struct")
	}
}

func TestPrompt_AsksOncePerMissingName(t *testing.T) {
	asked := 0
	p := NewPrompt(NewMap(map[string]any{"present": "x"})).WithAsk(func(string) (string, error) {
		asked++
		return "answer", nil
	})
	if got := p.Get("present"); got != "x" {
		t.Fatalf("present = %q", got)
	}
	if got := p.Get("missing"); got != "answer" {
		t.Fatalf("missing = %q", got)
	}
	// answered value now lives in the inner resolver; no second prompt
	if got := p.Get("missing"); got != "answer" {
		t.Fatalf("cached = %q", got)
	}
	if asked != 1 {
		t.Fatalf("asked %d times", asked)
	}
}

func TestPrompt_FailedAskResolvesEmpty(t *testing.T) {
	p := NewPrompt(NewMap(nil)).WithAsk(func(string) (string, error) {
		return "", errors.New("no terminal")
	})
	if got := p.Get("anything"); got != "" {
		t.Fatalf("failed prompt = %q", got)
	}
}

func TestScript_EvaluatesExpressions(t *testing.T) {
	s := NewScript()
	if err := s.Run(`var price = 12.5; var qty = 4;`); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := s.Get("price"); got != "12.5" {
		t.Fatalf("price = %q", got)
	}
	if got := s.Get("price * qty"); got != "50" {
		t.Fatalf("price * qty = %q", got)
	}
	if got := s.Get("undefinedName"); got != "" {
		t.Fatalf("undefined = %q", got)
	}
}

func TestScript_SetDefinesGlobal(t *testing.T) {
	s := NewScript()
	s.Set("rest", "tail of value")
	if got := s.Get("rest"); got != "tail of value" {
		t.Fatalf("rest = %q", got)
	}
}
