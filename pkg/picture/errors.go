package picture

import "fmt"

// MalformedFieldError reports a field introducer whose trailing text matches
// none of the recognized layout patterns. Compilation stops at the first one.
type MalformedFieldError struct {
	// Line is the 1-based source line number.
	Line int
	// Fragment is the offending introducer plus its trailing run.
	Fragment string
}

func (e *MalformedFieldError) Error() string {
	return fmt.Sprintf("picture: line %d: unrecognized field pattern %q", e.Line, e.Fragment)
}

// ArityMismatchError reports a variable-name line whose comma-separated count
// differs from the field count of the preceding picture line. Names == 0 with
// a positive Fields count means the name line was missing entirely.
type ArityMismatchError struct {
	Line   int
	Fields int
	Names  int
}

func (e *ArityMismatchError) Error() string {
	if e.Names == 0 && e.Fields > 0 {
		return fmt.Sprintf("picture: line %d: missing variable line for %d field(s)", e.Line, e.Fields)
	}
	return fmt.Sprintf("picture: line %d: variable line supplies %d name(s) for %d field(s)", e.Line, e.Names, e.Fields)
}
