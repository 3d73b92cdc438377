// Package report renders compiled picture forms into fixed-width, paginated
// text. A Form owns one compiled body picture plus optional bands (top,
// bottom, group header/detail/footer, summary) and drives them against a
// caller-supplied VariableResolver and line Sink. All forms composed together
// share one PaginationContext, so page numbering and line accounting stay
// consistent across bands.
package report
