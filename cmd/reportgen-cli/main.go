package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/reportgen/pkg/formfile"
	"github.com/goliatone/reportgen/pkg/reader"
	"github.com/goliatone/reportgen/pkg/report"
	"github.com/goliatone/reportgen/pkg/resolver"
)

func main() {
	spec := flag.String("spec", "", "form definition file (YAML or JSON)")
	values := flag.String("values", "", "YAML file with one record or a list of records")
	read := flag.String("read", "", "rendered text to decompose back into records (\"-\" for stdin)")
	output := flag.String("output", "", "output file (stdout if empty)")
	pageLength := flag.Int("page-length", 0, "override the definition's page length")
	formFeed := flag.Bool("form-feed", false, "emit a form feed after the final page")
	interactive := flag.Bool("interactive", false, "prompt for variables missing from the values file")
	flag.Parse()

	if *spec == "" {
		log.Fatalf("missing -spec")
	}

	def, err := formfile.Load(*spec)
	if err != nil {
		log.Fatalf("Failed to load spec: %v", err)
	}
	form, err := def.Compile()
	if err != nil {
		log.Fatalf("Failed to compile spec: %v", err)
	}
	if *pageLength > 0 {
		form.SetPageLength(*pageLength)
	}

	out := os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			log.Fatalf("Failed to create output: %v", err)
		}
		defer f.Close()
		out = f
	}

	if *read != "" {
		if err := runRead(form, *read, out); err != nil {
			log.Fatalf("Failed to read report: %v", err)
		}
		return
	}
	if err := runRender(form, *values, *interactive, *formFeed, out); err != nil {
		log.Fatalf("Failed to render report: %v", err)
	}
}

func runRender(form *report.Form, valuesPath string, interactive, formFeed bool, out io.Writer) error {
	records, err := loadRecords(valuesPath)
	if err != nil {
		return err
	}
	sink := report.NewWriterSink(out)
	for _, rec := range records {
		var res report.VariableResolver = resolver.NewMap(rec)
		if interactive {
			res = resolver.NewPrompt(res)
		}
		if err := form.Render(res, sink); err != nil {
			return err
		}
	}
	last := resolver.NewMap(nil)
	return form.FinishPage(last, sink, formFeed)
}

func runRead(form *report.Form, path string, out io.Writer) error {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return err
	}

	m, err := reader.NewMatcher(form.Body())
	if err != nil {
		return err
	}
	var records []reader.Record
	cursor := m.ReadString(string(data))
	for {
		rec, ok := cursor.Next()
		if !ok {
			break
		}
		records = append(records, rec)
	}
	enc, err := yaml.Marshal(records)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(out, string(enc))
	return err
}

// loadRecords accepts either a single YAML mapping or a list of mappings.
func loadRecords(path string) ([]map[string]any, error) {
	if path == "" {
		return []map[string]any{{}}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var list []map[string]any
	if err := yaml.Unmarshal(data, &list); err == nil {
		return list, nil
	}
	var single map[string]any
	if err := yaml.Unmarshal(data, &single); err != nil {
		return nil, fmt.Errorf("values file %s: %w", path, err)
	}
	return []map[string]any{single}, nil
}
