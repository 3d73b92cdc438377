package picture

// Kind identifies the layout behaviour of a single segment on a picture line.
// The set is closed: formatters and the inverse matcher both switch over it.
type Kind int

const (
	// KindLiteral carries verbatim text between fields.
	KindLiteral Kind = iota
	// KindLeft left-justifies the value.
	KindLeft
	// KindRight right-justifies the value.
	KindRight
	// KindCenter centers the value.
	KindCenter
	// KindFixed renders a fixed-point number.
	KindFixed
	// KindScientific renders a number in scientific notation.
	KindScientific
	// KindPage renders the current page number, ignoring the bound value.
	KindPage
)

// String returns the kind name used in error messages.
func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindLeft:
		return "left"
	case KindRight:
		return "right"
	case KindCenter:
		return "center"
	case KindFixed:
		return "fixed-point"
	case KindScientific:
		return "scientific"
	case KindPage:
		return "page-number"
	default:
		return "unknown"
	}
}

// Field is one segment of a picture line: either a literal run of text or a
// typed placeholder. Width counts the introducer character, so a field always
// occupies exactly Width columns in the rendered line (fixed-point integer
// overflow excepted).
type Field struct {
	Kind Kind

	// Text holds the literal run for KindLiteral segments.
	Text string

	// Name is the variable bound to the field by the name line that follows
	// the picture line. Empty for literals.
	Name string

	// Width is the total declared column width, introducer included.
	Width int

	// Chomp marks fields introduced with `^`: after rendering, the consumed
	// prefix is removed from the backing value through the resolver.
	Chomp bool

	// IntWidth counts the columns available to the integer part of a numeric
	// field, introducer slot included.
	IntWidth int
	// FracWidth counts the digits after the radix point.
	FracWidth int
	// HasRadix records whether the pattern spelled an explicit radix point.
	HasRadix bool
	// ExpWidth counts the exponent digits of a scientific field.
	ExpWidth int
	// Notation is one of 'e', 'E', 'g', 'G' for scientific fields. The letter
	// case controls the case of the printed exponent marker.
	Notation byte
}

// IsVariable reports whether the field consumes a variable-name slot.
func (f Field) IsVariable() bool {
	return f.Kind != KindLiteral
}

// Numeric reports whether the field parses back as a number.
func (f Field) Numeric() bool {
	return f.Kind == KindFixed || f.Kind == KindScientific || f.Kind == KindPage
}

// Line is one compiled picture line: its segments in source order plus the
// line-level flags recovered from the suppress markers.
type Line struct {
	Fields []Field

	// SuppressIfBlank omits the line when every field resolves empty (`~`).
	SuppressIfBlank bool
	// RepeatUntilBlank recomposes and re-emits the line until it would be
	// suppressed (`~~`).
	RepeatUntilBlank bool
}

// VarCount returns the number of variable-consuming fields on the line.
func (l Line) VarCount() int {
	n := 0
	for _, f := range l.Fields {
		if f.IsVariable() {
			n++
		}
	}
	return n
}

// HasChomp reports whether any field on the line consumes its value prefix.
func (l Line) HasChomp() bool {
	for _, f := range l.Fields {
		if f.Chomp {
			return true
		}
	}
	return false
}

// CompiledForm is the ordered result of compiling one picture spec.
type CompiledForm struct {
	Lines []Line
}

// LineCount returns the number of picture lines, used for band-size planning.
func (c *CompiledForm) LineCount() int {
	if c == nil {
		return 0
	}
	return len(c.Lines)
}

// Names returns every bound variable name in source order, without
// duplicates. Renderers snapshot these before composing a record.
func (c *CompiledForm) Names() []string {
	if c == nil {
		return nil
	}
	seen := make(map[string]struct{})
	var names []string
	for _, line := range c.Lines {
		for _, f := range line.Fields {
			if !f.IsVariable() || f.Name == "" {
				continue
			}
			if _, ok := seen[f.Name]; ok {
				continue
			}
			seen[f.Name] = struct{}{}
			names = append(names, f.Name)
		}
	}
	return names
}
