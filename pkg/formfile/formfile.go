// Package formfile loads report form definitions from JSON or YAML files: a
// page length plus one picture spec per band key. Definitions compile into
// report.Form values, so a report layout can live next to the data it
// formats instead of inside the program.
package formfile

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/reportgen/pkg/report"
)

// Definition is the on-disk shape of a form. Bands maps band keys (top,
// bottom, group-header, group-detail, group-footer, summary) and the body
// key to raw picture text.
type Definition struct {
	PageLength int               `json:"pageLength" yaml:"pageLength"`
	Bands      map[string]string `json:"bands" yaml:"bands"`
}

// bodyKeys name the main band; both spellings are accepted.
var bodyKeys = []string{"body", "page-detail"}

// Load reads and parses a definition file, deciding JSON vs YAML by
// extension (.json parses as JSON, everything else as YAML).
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("formfile: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// LoadFS reads a definition from a filesystem, for embedded specs.
func LoadFS(fsys fs.FS, name string) (*Definition, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("formfile: read %s: %w", name, err)
	}
	return Parse(data, name)
}

// Parse decodes definition bytes. The path only picks the decoder and
// decorates errors.
func Parse(data []byte, path string) (*Definition, error) {
	var def Definition
	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := json.Unmarshal(data, &def); err != nil {
			return nil, fmt.Errorf("formfile: parse %s: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &def); err != nil {
			return nil, fmt.Errorf("formfile: parse %s: %w", path, err)
		}
	}
	if len(def.Bands) == 0 {
		return nil, fmt.Errorf("formfile: %s defines no bands", path)
	}
	return &def, nil
}

// Compile turns the definition into a composed form. The body band is
// required; unknown band keys surface as report.ConfigError.
func (d *Definition) Compile(opts ...report.Option) (*report.Form, error) {
	var body string
	found := ""
	for _, key := range bodyKeys {
		if spec, ok := d.Bands[key]; ok {
			if found != "" {
				return nil, fmt.Errorf("formfile: both %q and %q band keys present", found, key)
			}
			body = spec
			found = key
		}
	}
	if found == "" {
		return nil, fmt.Errorf("formfile: no body band (use %q or %q)", bodyKeys[0], bodyKeys[1])
	}

	if d.PageLength > 0 {
		opts = append(opts, report.WithPageLength(d.PageLength))
	}
	for key, spec := range d.Bands {
		if key == found {
			continue
		}
		opts = append(opts, report.WithBand(key, spec))
	}
	return report.Compile(body, opts...)
}
