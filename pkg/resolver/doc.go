// Package resolver ships VariableResolver implementations for common value
// sources: plain maps, structs via reflection, interactive terminal prompts,
// and an embedded script runtime. Callers with richer data models implement
// report.VariableResolver directly.
package resolver
