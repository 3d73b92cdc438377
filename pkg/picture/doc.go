// Package picture compiles textual picture specifications into the typed
// form consumed by the render and reader pipelines. A picture is a sequence
// of lines mixing literal text with field placeholders (`@` or `^` followed
// by a layout pattern); every line that declares at least one field must be
// followed by a comma-separated variable-name line of matching arity.
// Implementations of the formatting and inverse-matching stages live in
// pkg/report and pkg/reader and consume the CompiledForm produced here.
package picture
