package picture

import (
	"regexp"
	"strings"
)

// Classification patterns, tried in order against the text that follows an
// introducer. First match wins; the order disambiguates scientific patterns
// from the fixed-point prefixes they share.
var fieldRules = []struct {
	kind Kind
	re   *regexp.Regexp
}{
	{KindRight, regexp.MustCompile(`^>+`)},
	{KindCenter, regexp.MustCompile(`^\|+`)},
	{KindScientific, regexp.MustCompile(`^(#*)(\.?)(#*)([eEgG])(#+)`)},
	{KindFixed, regexp.MustCompile(`^(#+)(\.?)(#*)`)},
	{KindFixed, regexp.MustCompile(`^(#*)(\.)(#+)`)},
	{KindLeft, regexp.MustCompile(`^<+`)},
	{KindPage, regexp.MustCompile(`^&+`)},
}

// fieldSpan is a classified field plus its extent in the marker-stripped line.
type fieldSpan struct {
	start, end int
	field      Field
}

// stripMarkers removes the suppress (`~`) and repeat (`~~`) markers from a raw
// picture line, recording them as flags. A single suppress marker at the very
// start of the line becomes a literal space so the columns that follow keep
// their position.
func stripMarkers(raw string, line *Line) string {
	s := raw
	for {
		i := strings.Index(s, "~~")
		if i < 0 {
			break
		}
		line.RepeatUntilBlank = true
		s = s[:i] + s[i+2:]
	}
	for {
		i := strings.IndexByte(s, '~')
		if i < 0 {
			break
		}
		line.SuppressIfBlank = true
		if i == 0 {
			s = " " + s[1:]
		} else {
			s = s[:i] + s[i+1:]
		}
	}
	return s
}

// classify matches the text following an introducer against the rule table
// and returns the resulting field together with the matched pattern length.
func classify(introducer byte, rest string) (Field, int, bool) {
	for _, rule := range fieldRules {
		m := rule.re.FindStringSubmatch(rest)
		if m == nil {
			continue
		}
		f := Field{
			Kind:  rule.kind,
			Chomp: introducer == '^',
			Width: 1 + len(m[0]),
		}
		switch rule.kind {
		case KindFixed:
			f.IntWidth = 1 + len(m[1])
			f.HasRadix = m[2] == "."
			f.FracWidth = len(m[3])
		case KindScientific:
			f.IntWidth = 1 + len(m[1])
			f.HasRadix = m[2] == "."
			f.FracWidth = len(m[3])
			f.Notation = m[4][0]
			f.ExpWidth = len(m[5])
		}
		return f, len(m[0]), true
	}
	return Field{}, 0, false
}

// lexLine splits one marker-stripped picture line into literal and field
// segments. Discovery runs right to left, matching the last unmatched
// introducer first: field patterns extend rightward from their introducer, so
// scanning outward from the end keeps adjacent literal text from being
// absorbed into an earlier field.
func lexLine(s string, lineNo int) (Line, error) {
	var line Line
	s = stripMarkers(s, &line)

	var spans []fieldSpan
	limit := len(s)
	for {
		i := strings.LastIndexAny(s[:limit], "@^")
		if i < 0 {
			break
		}
		f, n, ok := classify(s[i], s[i+1:])
		if !ok {
			frag := s[i:]
			if sp := strings.IndexByte(frag, ' '); sp > 0 {
				frag = frag[:sp]
			}
			return Line{}, &MalformedFieldError{Line: lineNo, Fragment: frag}
		}
		spans = append(spans, fieldSpan{start: i, end: i + 1 + n, field: f})
		limit = i
	}

	// spans were collected right to left; emit segments in source order.
	pos := 0
	for i := len(spans) - 1; i >= 0; i-- {
		sp := spans[i]
		if sp.start > pos {
			line.Fields = append(line.Fields, Field{Kind: KindLiteral, Text: s[pos:sp.start]})
		}
		line.Fields = append(line.Fields, sp.field)
		pos = sp.end
	}
	if pos < len(s) {
		line.Fields = append(line.Fields, Field{Kind: KindLiteral, Text: s[pos:]})
	}
	return line, nil
}
