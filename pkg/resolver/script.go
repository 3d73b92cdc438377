package resolver

import (
	"github.com/dop251/goja"
)

// Script resolves variables by evaluating them as expressions inside an
// embedded JavaScript runtime, so a report can pull values straight out of a
// scripted environment. Names are usually plain identifiers but any
// expression the runtime accepts works (`totals.net`, `price * qty`).
type Script struct {
	vm *goja.Runtime
}

// NewScript creates a resolver with a fresh runtime.
func NewScript() *Script {
	return &Script{vm: goja.New()}
}

// Runtime exposes the underlying runtime for callers that want to install
// their own globals or host functions.
func (s *Script) Runtime() *goja.Runtime {
	return s.vm
}

// Run evaluates a setup script, typically variable declarations.
func (s *Script) Run(src string) error {
	_, err := s.vm.RunString(src)
	return err
}

// Get evaluates the name as an expression. Errors, null, and undefined all
// resolve to the empty string, matching the missing-variable contract.
func (s *Script) Get(name string) string {
	v, err := s.vm.RunString(name)
	if err != nil || v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return ""
	}
	return v.String()
}

// Set defines (or replaces) a global with the given string value; chomp
// fields use this to store their unconsumed remainder.
func (s *Script) Set(name, value string) {
	_ = s.vm.Set(name, value)
}
