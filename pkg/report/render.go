package report

import (
	"strings"

	"github.com/goliatone/reportgen/pkg/picture"
)

// Render composes one logical record against the body picture and emits it.
// Lines buffer until the whole record is composed so the fit decision can
// weigh the record size against the remaining page space and the bottom band.
func (f *Form) Render(res VariableResolver, sink Sink) error {
	return f.renderRecord(res, sink, func() ([]string, error) {
		return f.compose(f.body, res)
	})
}

// RenderGroup composes one group-detail record, firing the group header when
// a group opens on the current page. The header-size check keeps the header
// from double-firing right after it was already placed at the page top.
func (f *Form) RenderGroup(res VariableResolver, sink Sink) error {
	if f.groupDetail == nil {
		return configErrorf("no group-detail band configured")
	}
	withHeader := false
	err := f.renderRecord(res, sink, func() ([]string, error) {
		var lines []string
		withHeader = false
		if f.groupHeader != nil && !f.groupHeaded &&
			f.bandSize(f.groupHeader)+f.ctx.linesLeft != f.ctx.pageLength {
			hdr, err := f.compose(f.groupHeader.body, res)
			if err != nil {
				return nil, err
			}
			lines = append(lines, hdr...)
			withHeader = true
		}
		det, err := f.compose(f.groupDetail.body, res)
		if err != nil {
			return nil, err
		}
		return append(lines, det...), nil
	})
	if err == nil && withHeader {
		f.groupHeaded = true
	}
	return err
}

// EndGroup closes the current group, rendering the group footer when one is
// configured. The next RenderGroup opens a new group.
func (f *Form) EndGroup(res VariableResolver, sink Sink) error {
	f.groupHeaded = false
	if f.groupFooter == nil {
		return nil
	}
	return f.renderRecord(res, sink, func() ([]string, error) {
		return f.compose(f.groupFooter.body, res)
	})
}

// RenderSummary emits the summary band, breaking the page first when it no
// longer fits alongside the bottom band.
func (f *Form) RenderSummary(res VariableResolver, sink Sink) error {
	if f.summary == nil {
		return configErrorf("no summary band configured")
	}
	return f.renderRecord(res, sink, func() ([]string, error) {
		return f.compose(f.summary.body, res)
	})
}

// FinishPage closes the current page: the remaining body space fills with
// blank lines, the bottom band renders, and a new top becomes due. When
// formFeed is set a form-feed line follows.
func (f *Form) FinishPage(res VariableResolver, sink Sink, formFeed bool) error {
	if err := f.breakPage(res, sink); err != nil {
		return err
	}
	if formFeed {
		return sink.WriteLine("\f")
	}
	return nil
}

// renderRecord drives one composed record through the pagination state
// machine: fit, partial flush, or defer-and-retry on a fresh page.
func (f *Form) renderRecord(res VariableResolver, sink Sink, compose func() ([]string, error)) error {
	ctx := f.ctx
	snapshot := f.snapshot(res)
	bottomSize := f.bandSize(f.bottom)
	for {
		if err := f.ensureTop(res, sink); err != nil {
			return err
		}
		lines, err := compose()
		if err != nil {
			return err
		}
		if len(lines)+bottomSize <= ctx.linesLeft {
			if err := f.writeBody(lines, sink); err != nil {
				return err
			}
			return nil
		}
		if !ctx.printedBody {
			return f.partialFlush(lines, res, sink, bottomSize)
		}
		// The page already carries output: put back any chomp consumption,
		// close the page, and retry the whole record on the fresh one.
		f.restore(res, snapshot)
		if err := f.breakPage(res, sink); err != nil {
			return err
		}
	}
}

// partialFlush emits an oversized record on a page that has nothing printed
// yet. As much as fits is written, the page closes, and the remainder spills
// onto subsequent fresh pages until the buffer drains.
func (f *Form) partialFlush(lines []string, res VariableResolver, sink Sink, bottomSize int) error {
	ctx := f.ctx
	rest := lines
	stalled := false
	for len(rest)+bottomSize > ctx.linesLeft {
		fit := ctx.linesLeft - bottomSize
		if fit < 0 {
			fit = 0
		}
		if fit > len(rest) {
			fit = len(rest)
		}
		if fit == 0 {
			if stalled {
				return configErrorf("bands leave no room for body lines on a %d-line page", ctx.pageLength)
			}
			stalled = true
		} else {
			stalled = false
		}
		if err := f.writeBody(rest[:fit], sink); err != nil {
			return err
		}
		rest = rest[fit:]
		if err := f.breakPage(res, sink); err != nil {
			return err
		}
		if err := f.ensureTop(res, sink); err != nil {
			return err
		}
	}
	return f.writeBody(rest, sink)
}

func (f *Form) writeBody(lines []string, sink Sink) error {
	for _, ln := range lines {
		if err := sink.WriteLine(ln); err != nil {
			return err
		}
		f.ctx.linesLeft--
	}
	if len(lines) > 0 {
		f.ctx.printedBody = true
	}
	return nil
}

// ensureTop fires the top band when a new page is due. The band renders only
// while the page is untouched, so a partially filled page never grows a
// second header.
func (f *Form) ensureTop(res VariableResolver, sink Sink) error {
	ctx := f.ctx
	if !ctx.topPending {
		return nil
	}
	ctx.topPending = false
	if f.top == nil || ctx.linesLeft != ctx.pageLength {
		return nil
	}
	lines, err := f.compose(f.top.body, res)
	if err != nil {
		return err
	}
	for _, ln := range lines {
		if err := sink.WriteLine(ln); err != nil {
			return err
		}
		ctx.linesLeft--
	}
	return nil
}

// breakPage pads the page with blank lines down to the bottom band's size,
// flushes the bottom, and resets the context for the next page.
func (f *Form) breakPage(res VariableResolver, sink Sink) error {
	ctx := f.ctx
	bottomSize := f.bandSize(f.bottom)
	for ctx.linesLeft > bottomSize {
		if err := sink.WriteLine(""); err != nil {
			return err
		}
		ctx.linesLeft--
	}
	return f.flushBottom(res, sink)
}

// flushBottom renders the bottom band and advances the page. The page number
// moves only when a bottom actually renders; a composition without a bottom
// band keeps the counter pinned.
func (f *Form) flushBottom(res VariableResolver, sink Sink) error {
	ctx := f.ctx
	if f.bottom != nil {
		lines, err := f.compose(f.bottom.body, res)
		if err != nil {
			return err
		}
		for _, ln := range lines {
			if err := sink.WriteLine(ln); err != nil {
				return err
			}
		}
		ctx.pageNumber++
	}
	ctx.linesLeft = ctx.pageLength
	ctx.topPending = true
	ctx.printedBody = false
	f.groupHeaded = false
	return nil
}

// compose renders every picture line of cf, applying suppression and repeat
// semantics. Lines come back right-trimmed.
func (f *Form) compose(cf *picture.CompiledForm, res VariableResolver) ([]string, error) {
	var out []string
	for i, line := range cf.Lines {
		text, blank, err := f.composeLine(line, i, res)
		if err != nil {
			return nil, err
		}
		if line.RepeatUntilBlank {
			if !line.HasChomp() {
				// Nothing on the line consumes its value, so repeating
				// could never terminate; the line renders at most once.
				if !blank {
					out = append(out, text)
				}
				continue
			}
			for !blank {
				out = append(out, text)
				if chompExhausted(line, res) {
					break
				}
				text, blank, err = f.composeLine(line, i, res)
				if err != nil {
					return nil, err
				}
			}
			continue
		}
		if line.SuppressIfBlank && blank {
			continue
		}
		out = append(out, text)
	}
	return out, nil
}

// chompExhausted reports whether every chomp field on the line has consumed
// its whole value. Repeat lines stop here even when ordinary fields on the
// same line still carry text.
func chompExhausted(line picture.Line, res VariableResolver) bool {
	for _, fld := range line.Fields {
		if fld.Chomp && res.Get(fld.Name) != "" {
			return false
		}
	}
	return true
}

// composeLine formats one picture line. blank reports whether every variable
// field resolved to the empty string; literal-only lines are never blank.
func (f *Form) composeLine(line picture.Line, idx int, res VariableResolver) (string, bool, error) {
	var b strings.Builder
	blank := true
	vars := 0
	for _, fld := range line.Fields {
		if !fld.IsVariable() {
			b.WriteString(fld.Text)
			continue
		}
		vars++
		if fld.Name == "" {
			return "", false, &picture.ArityMismatchError{Line: idx + 1, Fields: line.VarCount()}
		}
		value := res.Get(fld.Name)
		if value != "" {
			blank = false
		}
		b.WriteString(formatField(fld, value, f.ctx, res))
	}
	if vars == 0 {
		blank = false
	}
	return strings.TrimRight(b.String(), " \t"), blank, nil
}

func (f *Form) snapshot(res VariableResolver) map[string]string {
	snap := make(map[string]string, len(f.names))
	for _, n := range f.names {
		snap[n] = res.Get(n)
	}
	return snap
}

func (f *Form) restore(res VariableResolver, snap map[string]string) {
	for _, n := range f.names {
		res.Set(n, snap[n])
	}
}
