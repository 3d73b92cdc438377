package picture

import (
	"fmt"
	"strings"
)

// Lines normalizes a picture spec supplied as a multi-line string or a slice
// of lines. Callers composing bands pass either shape through untouched.
func Lines(spec any) ([]string, error) {
	switch v := spec.(type) {
	case string:
		return strings.Split(strings.TrimSuffix(v, "\n"), "\n"), nil
	case []string:
		return v, nil
	case nil:
		return nil, fmt.Errorf("picture: nil spec")
	default:
		return nil, fmt.Errorf("picture: unsupported spec type %T", spec)
	}
}

// CompileString compiles a picture spec held in one multi-line string.
func CompileString(spec string) (*CompiledForm, error) {
	lines, err := Lines(spec)
	if err != nil {
		return nil, err
	}
	return Compile(lines)
}

// Compile turns raw picture-spec lines into a CompiledForm. Lines beginning
// with `#` are comments. Processing alternates between expecting a picture
// line and expecting a variable-name line; the latter mode is entered whenever
// the previous picture line declared at least one field.
func Compile(raw []string) (*CompiledForm, error) {
	form := &CompiledForm{}
	pending := -1 // index into form.Lines awaiting variable names
	pendingAt := 0

	for n, src := range raw {
		lineNo := n + 1
		if strings.HasPrefix(src, "#") {
			continue
		}
		if pending >= 0 {
			if err := bindNames(&form.Lines[pending], src, lineNo); err != nil {
				return nil, err
			}
			pending = -1
			continue
		}
		line, err := lexLine(src, lineNo)
		if err != nil {
			return nil, err
		}
		form.Lines = append(form.Lines, line)
		if line.VarCount() > 0 {
			pending = len(form.Lines) - 1
			pendingAt = lineNo
		}
	}
	if pending >= 0 {
		return nil, &ArityMismatchError{Line: pendingAt, Fields: form.Lines[pending].VarCount()}
	}
	return form, nil
}

// bindNames attaches the comma-separated names of a variable line to the
// fields of the picture line that precedes it, in source order.
func bindNames(line *Line, src string, lineNo int) error {
	names := strings.Split(src, ",")
	for i := range names {
		names[i] = strings.TrimSpace(names[i])
	}
	want := line.VarCount()
	if len(names) != want {
		return &ArityMismatchError{Line: lineNo, Fields: want, Names: len(names)}
	}
	next := 0
	for i := range line.Fields {
		if !line.Fields[i].IsVariable() {
			continue
		}
		line.Fields[i].Name = names[next]
		next++
	}
	return nil
}
