package report

import (
	"github.com/goliatone/reportgen/pkg/picture"
)

// Band keys accepted by WithBand and by form-definition files.
const (
	BandTop         = "top"
	BandBottom      = "bottom"
	BandGroupHeader = "group-header"
	BandGroupDetail = "group-detail"
	BandGroupFooter = "group-footer"
	BandSummary     = "summary"
)

// Form is one compiled picture plus the bands composed around it. All
// composed forms share the owning form's PaginationContext.
type Form struct {
	body *picture.CompiledForm

	top         *Form
	bottom      *Form
	groupHeader *Form
	groupDetail *Form
	groupFooter *Form
	summary     *Form

	ctx *PaginationContext

	// groupHeaded records that the group header already fired on the
	// current page; it clears on page break and on EndGroup.
	groupHeaded bool

	names []string // cached union of variable names across body and bands
}

type config struct {
	pageLength int
	bands      []bandSpec
	err        error
}

type bandSpec struct {
	key  string
	spec any
}

// Option customises form composition.
type Option func(*config)

// WithPageLength sets the page length for the composition group.
func WithPageLength(n int) Option {
	return func(c *config) { c.pageLength = n }
}

// WithBand attaches a band by key. The spec may be a raw picture spec
// (string or []string) or an already compiled *Form; unknown keys surface as
// a ConfigError from Compile.
func WithBand(key string, spec any) Option {
	return func(c *config) {
		switch key {
		case BandTop, BandBottom, BandGroupHeader, BandGroupDetail, BandGroupFooter, BandSummary:
			c.bands = append(c.bands, bandSpec{key: key, spec: spec})
		default:
			if c.err == nil {
				c.err = configErrorf("undefined band key %q", key)
			}
		}
	}
}

// WithTop attaches the page-header band.
func WithTop(spec any) Option { return WithBand(BandTop, spec) }

// WithBottom attaches the page-footer band.
func WithBottom(spec any) Option { return WithBand(BandBottom, spec) }

// WithGroupHeader attaches the group-header band.
func WithGroupHeader(spec any) Option { return WithBand(BandGroupHeader, spec) }

// WithGroupDetail attaches the group-detail band.
func WithGroupDetail(spec any) Option { return WithBand(BandGroupDetail, spec) }

// WithGroupFooter attaches the group-footer band.
func WithGroupFooter(spec any) Option { return WithBand(BandGroupFooter, spec) }

// WithSummary attaches the summary band.
func WithSummary(spec any) Option { return WithBand(BandSummary, spec) }

// Compile builds a Form from a body picture spec (the page detail) and any
// band options. The body may be a string, a []string, or an existing *Form
// whose body is reused. A fresh PaginationContext is created for the group
// and shared into every band.
func Compile(body any, opts ...Option) (*Form, error) {
	cfg := config{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	form := &Form{ctx: NewPaginationContext(cfg.pageLength)}
	if err := form.setBody(body); err != nil {
		return nil, err
	}
	for _, b := range cfg.bands {
		band, err := form.compileBand(b.spec)
		if err != nil {
			return nil, err
		}
		switch b.key {
		case BandTop:
			form.top = band
		case BandBottom:
			form.bottom = band
		case BandGroupHeader:
			form.groupHeader = band
		case BandGroupDetail:
			form.groupDetail = band
		case BandGroupFooter:
			form.groupFooter = band
		case BandSummary:
			form.summary = band
		}
	}
	if err := form.checkCycles(); err != nil {
		return nil, err
	}
	form.adoptContext(form.ctx, make(map[*Form]bool))
	form.names = form.collectNames()
	return form, nil
}

func (f *Form) setBody(body any) error {
	if nested, ok := body.(*Form); ok {
		if nested == nil {
			return configErrorf("nil body form")
		}
		f.body = nested.body
		return nil
	}
	lines, err := picture.Lines(body)
	if err != nil {
		return err
	}
	cf, err := picture.Compile(lines)
	if err != nil {
		return err
	}
	f.body = cf
	return nil
}

func (f *Form) compileBand(spec any) (*Form, error) {
	if nested, ok := spec.(*Form); ok {
		return nested, nil
	}
	band := &Form{}
	if err := band.setBody(spec); err != nil {
		return nil, err
	}
	return band, nil
}

// checkCycles rejects a form composed into itself, directly or transitively.
// Band ownership is exclusive, so any form reached twice is an error, whether
// the second reference closes a cycle or merely shares the instance.
func (f *Form) checkCycles() error {
	seen := make(map[*Form]bool)
	var walk func(form *Form) error
	walk = func(form *Form) error {
		if form == nil {
			return nil
		}
		if seen[form] {
			return configErrorf("recursive band reference")
		}
		seen[form] = true
		for _, band := range form.bands() {
			if err := walk(band); err != nil {
				return err
			}
		}
		return nil
	}
	return walk(f)
}

// adoptContext shares one PaginationContext across the whole composition.
func (f *Form) adoptContext(ctx *PaginationContext, seen map[*Form]bool) {
	if f == nil || seen[f] {
		return
	}
	seen[f] = true
	f.ctx = ctx
	for _, band := range f.bands() {
		band.adoptContext(ctx, seen)
	}
}

func (f *Form) bands() []*Form {
	var out []*Form
	for _, band := range []*Form{f.top, f.bottom, f.groupHeader, f.groupDetail, f.groupFooter, f.summary} {
		if band != nil {
			out = append(out, band)
		}
	}
	return out
}

func (f *Form) collectNames() []string {
	seen := make(map[string]struct{})
	var names []string
	var walk func(form *Form)
	visited := make(map[*Form]bool)
	walk = func(form *Form) {
		if form == nil || visited[form] {
			return
		}
		visited[form] = true
		for _, n := range form.body.Names() {
			if _, ok := seen[n]; ok {
				continue
			}
			seen[n] = struct{}{}
			names = append(names, n)
		}
		for _, band := range form.bands() {
			walk(band)
		}
	}
	walk(f)
	return names
}

// Body exposes the compiled body picture, e.g. for building an inverse
// matcher over the rendered output.
func (f *Form) Body() *picture.CompiledForm {
	return f.body
}

// LineCount returns the number of picture lines in the body.
func (f *Form) LineCount() int {
	return f.body.LineCount()
}

// SetPageLength adjusts the shared pagination context.
func (f *Form) SetPageLength(n int) {
	f.ctx.SetPageLength(n)
}

// ResetPage abandons the current page without touching the page number.
func (f *Form) ResetPage() {
	f.ctx.ResetPage()
}

// ResetPageNumber rewinds the shared page counter to 1.
func (f *Form) ResetPageNumber() {
	f.ctx.ResetPageNumber()
}

// PageNumber reports the page number a page-number field would render next.
// While a filled page still owes its bottom band the tentative next number is
// reported instead.
func (f *Form) PageNumber() int {
	if f.bottom != nil && f.ctx.printedBody && f.ctx.linesLeft == f.bandSize(f.bottom) {
		return f.ctx.pageNumber + 1
	}
	return f.ctx.pageNumber
}

func (f *Form) bandSize(band *Form) int {
	if band == nil {
		return 0
	}
	return band.body.LineCount()
}
