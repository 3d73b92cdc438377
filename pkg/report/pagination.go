package report

// DefaultPageLength is the page length used when composition does not
// override it.
const DefaultPageLength = 60

// PaginationContext tracks the page accounting shared by a Form and every
// band composed into it. Exactly one context exists per composition group;
// bands never get independent counters.
type PaginationContext struct {
	pageLength  int
	linesLeft   int
	pageNumber  int
	topPending  bool
	printedBody bool
}

// NewPaginationContext creates a fresh context for a page of the given
// length. Non-positive lengths fall back to DefaultPageLength.
func NewPaginationContext(pageLength int) *PaginationContext {
	if pageLength <= 0 {
		pageLength = DefaultPageLength
	}
	return &PaginationContext{
		pageLength: pageLength,
		linesLeft:  pageLength,
		pageNumber: 1,
		topPending: true,
	}
}

// SetPageLength changes the page length. When the current page is still
// untouched the remaining line budget follows immediately.
func (c *PaginationContext) SetPageLength(n int) {
	if n <= 0 {
		return
	}
	fresh := c.linesLeft == c.pageLength
	c.pageLength = n
	if fresh {
		c.linesLeft = n
	}
}

// PageLength returns the configured page length.
func (c *PaginationContext) PageLength() int {
	return c.pageLength
}

// ResetPage abandons the current page: the line budget refills and a new top
// band becomes due. The page number is left alone.
func (c *PaginationContext) ResetPage() {
	c.linesLeft = c.pageLength
	c.topPending = true
	c.printedBody = false
}

// ResetPageNumber rewinds the page counter to 1.
func (c *PaginationContext) ResetPageNumber() {
	c.pageNumber = 1
}
