package formfile

import (
	"errors"
	"testing"

	"github.com/goliatone/reportgen/pkg/report"
)

const yamlDefinition = `
pageLength: 10
bands:
  body: |
    Name: @<<<<<<<<<
    name
  bottom: |
    Page @&&&
    pg
`

func TestParse_YAML(t *testing.T) {
	def, err := Parse([]byte(yamlDefinition), "form.yaml")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if def.PageLength != 10 {
		t.Fatalf("page length = %d", def.PageLength)
	}
	if len(def.Bands) != 2 {
		t.Fatalf("bands = %v", def.Bands)
	}
}

func TestParse_JSON(t *testing.T) {
	data := []byte(`{"pageLength": 5, "bands": {"body": "literal line"}}`)
	def, err := Parse(data, "form.json")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if def.PageLength != 5 {
		t.Fatalf("page length = %d", def.PageLength)
	}
}

func TestParse_RejectsEmptyBands(t *testing.T) {
	if _, err := Parse([]byte("pageLength: 4"), "form.yaml"); err == nil {
		t.Fatalf("expected error for missing bands")
	}
}

func TestDefinition_Compile(t *testing.T) {
	def, err := Parse([]byte(yamlDefinition), "form.yaml")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	form, err := def.Compile()
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if got := form.LineCount(); got != 1 {
		t.Fatalf("line count = %d", got)
	}
}

func TestDefinition_CompileUnknownBand(t *testing.T) {
	def := &Definition{Bands: map[string]string{
		"body":     "literal",
		"sideways": "nope",
	}}
	_, err := def.Compile()
	var cfg *report.ConfigError
	if !errors.As(err, &cfg) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
}

func TestDefinition_CompileRequiresBody(t *testing.T) {
	def := &Definition{Bands: map[string]string{"top": "only a header"}}
	if _, err := def.Compile(); err == nil {
		t.Fatalf("expected error for missing body band")
	}
}

func TestDefinition_AcceptsPageDetailKey(t *testing.T) {
	def := &Definition{Bands: map[string]string{"page-detail": "literal"}}
	if _, err := def.Compile(); err != nil {
		t.Fatalf("compile: %v", err)
	}
}
