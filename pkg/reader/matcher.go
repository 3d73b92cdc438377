package reader

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goliatone/reportgen/pkg/picture"
)

// Record maps variable names to the values recovered from one logical
// record's worth of rendered lines.
type Record map[string]any

// Matcher decomposes rendered report lines back into records. Build one per
// compiled picture; it is stateless and reusable across inputs.
type Matcher struct {
	lines []matcherLine
}

type matcherLine struct {
	re     *regexp.Regexp
	fields []picture.Field
	repeat bool
}

// NewMatcher builds decomposition patterns from a compiled picture. Literal
// segments become anchors; each field captures its declared width, except
// the last field on a line, which captures to end-of-line to absorb any
// width the renderer overflowed (unbounded fixed-point integers) and the
// trailing-space trim applied to every rendered line.
func NewMatcher(cf *picture.CompiledForm) (*Matcher, error) {
	if cf == nil {
		return nil, fmt.Errorf("reader: nil compiled form")
	}
	m := &Matcher{}
	for _, line := range cf.Lines {
		ml, err := compileLine(line)
		if err != nil {
			return nil, err
		}
		m.lines = append(m.lines, ml)
	}
	return m, nil
}

func compileLine(line picture.Line) (matcherLine, error) {
	lastVar := -1
	for i, f := range line.Fields {
		if f.IsVariable() {
			lastVar = i
		}
	}

	var b strings.Builder
	b.WriteString("^")
	var fields []picture.Field
	for i, f := range line.Fields {
		if !f.IsVariable() {
			text := f.Text
			if i == len(line.Fields)-1 {
				text = strings.TrimRight(text, " ")
			}
			b.WriteString(regexp.QuoteMeta(text))
			continue
		}
		if i == lastVar {
			b.WriteString("(.*)")
		} else {
			fmt.Fprintf(&b, "(.{%d})", f.Width)
		}
		fields = append(fields, f)
	}

	re, err := regexp.Compile(b.String())
	if err != nil {
		return matcherLine{}, fmt.Errorf("reader: compile pattern: %w", err)
	}
	return matcherLine{re: re, fields: fields, repeat: line.RepeatUntilBlank}, nil
}

// match applies the line pattern to one input line, merging extracted values
// into rec. It reports whether the line matched.
func (ml matcherLine) match(text string, rec Record) bool {
	sub := ml.re.FindStringSubmatch(text)
	if sub == nil {
		return false
	}
	for i, f := range ml.fields {
		val := extract(f, sub[i+1])
		if f.Chomp {
			prev, _ := rec[f.Name].(string)
			frag, _ := val.(string)
			rec[f.Name] = joinFragments(prev, frag)
			continue
		}
		rec[f.Name] = val
	}
	return true
}

// extract converts captured text according to the field kind. Numeric fields
// parse as float when the pattern spelled a radix point and as integer
// otherwise; a capture that fails to parse comes back as its trimmed text so
// ragged data degrades instead of aborting.
func extract(f picture.Field, raw string) any {
	switch f.Kind {
	case picture.KindFixed, picture.KindScientific:
		t := strings.TrimSpace(raw)
		if f.HasRadix || f.Kind == picture.KindScientific {
			if v, err := strconv.ParseFloat(t, 64); err == nil {
				return v
			}
			return t
		}
		if v, err := strconv.ParseInt(t, 10, 64); err == nil {
			return v
		}
		return t
	case picture.KindPage:
		t := strings.TrimSpace(raw)
		if v, err := strconv.ParseInt(t, 10, 64); err == nil {
			return v
		}
		return t
	case picture.KindRight:
		return strings.TrimLeft(raw, " ")
	case picture.KindCenter:
		return strings.Join(strings.Fields(raw), " ")
	default:
		return strings.TrimRight(raw, " ")
	}
}

// joinFragments accumulates chomp captures across repeated lines, inserting
// a single separating space only when both sides are non-empty.
func joinFragments(prev, next string) string {
	if prev != "" && next != "" {
		return prev + " " + next
	}
	return prev + next
}

// Records is a lazy cursor over the logical records recognized in a line
// sequence. Build a fresh one with Matcher.Read to restart.
type Records struct {
	m     *Matcher
	lines []string
	pos   int
}

// Read starts a cursor over rendered lines.
func (m *Matcher) Read(lines []string) *Records {
	return &Records{m: m, lines: lines}
}

// ReadString splits rendered text on newlines and starts a cursor.
func (m *Matcher) ReadString(text string) *Records {
	return m.Read(strings.Split(strings.TrimSuffix(text, "\n"), "\n"))
}

// Next recognizes the next logical record. Each compiled line is tried in
// order: repeat lines consume input lines until one stops matching, other
// lines that fail simply pass control to the next compiled line at the same
// input position. An input line no compiled line recognizes is skipped so a
// damaged region cannot stall the cursor.
func (r *Records) Next() (Record, bool) {
	for r.pos < len(r.lines) {
		rec := Record{}
		matched := false
		for _, ml := range r.m.lines {
			if r.pos >= len(r.lines) {
				break
			}
			if ml.repeat {
				for r.pos < len(r.lines) && ml.match(r.lines[r.pos], rec) {
					r.pos++
					matched = true
				}
				continue
			}
			if ml.match(r.lines[r.pos], rec) {
				r.pos++
				matched = true
			}
		}
		if matched {
			return rec, true
		}
		r.pos++ // deliberate loss-tolerant recovery, not an error
	}
	return nil, false
}

// All drains the cursor.
func (r *Records) All() []Record {
	var out []Record
	for {
		rec, ok := r.Next()
		if !ok {
			return out
		}
		out = append(out, rec)
	}
}
