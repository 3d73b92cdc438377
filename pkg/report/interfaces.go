package report

import (
	"fmt"
	"io"
)

// VariableResolver supplies the values bound to picture fields. Get must
// return the empty string for unknown names; missing variables are not
// errors, they render as blanks and can trigger line suppression. Set is
// used only by chomp fields to write back the unconsumed remainder.
type VariableResolver interface {
	Get(name string) string
	Set(name, value string)
}

// Sink receives rendered lines one at a time, without trailing newlines.
type Sink interface {
	WriteLine(text string) error
}

type writerSink struct {
	w io.Writer
}

// NewWriterSink adapts an io.Writer into a Sink, terminating each line with
// a newline.
func NewWriterSink(w io.Writer) Sink {
	return writerSink{w: w}
}

func (s writerSink) WriteLine(text string) error {
	_, err := fmt.Fprintln(s.w, text)
	return err
}
