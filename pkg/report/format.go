package report

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/goliatone/reportgen/pkg/picture"
)

// formatField renders one field's value into exactly the declared width.
// The single exception is the fixed-point integer part, which is never
// truncated even when it overflows the field: losing whole-number magnitude
// is worse than breaking column alignment.
func formatField(f picture.Field, value string, ctx *PaginationContext, res VariableResolver) string {
	switch f.Kind {
	case picture.KindLiteral:
		return f.Text
	case picture.KindLeft, picture.KindRight, picture.KindCenter:
		return formatJustify(f, value, res)
	case picture.KindFixed:
		return formatFixed(f, value)
	case picture.KindScientific:
		return formatScientific(f, value)
	case picture.KindPage:
		return padCenter(strconv.Itoa(ctx.pageNumber), f.Width)
	default:
		return padLeft("", f.Width)
	}
}

func formatJustify(f picture.Field, value string, res VariableResolver) string {
	if f.Chomp {
		taken, rest := chompSplit(value, f.Width)
		res.Set(f.Name, rest)
		value = taken
	} else if len(value) > f.Width {
		value = value[:f.Width]
	}
	switch f.Kind {
	case picture.KindRight:
		return padRight(value, f.Width)
	case picture.KindCenter:
		return padCenter(value, f.Width)
	default:
		return padLeft(value, f.Width)
	}
}

// chompSplit takes as much of value as fits in width columns, preferring to
// break at the last space within the first width+1 characters so words stay
// intact when any break point exists. The remainder comes back with leading
// whitespace stripped, ready to be written into the resolver for the next
// repeat of the line.
func chompSplit(value string, width int) (taken, rest string) {
	if len(value) <= width {
		return value, ""
	}
	cut := width
	if i := strings.LastIndexByte(value[:width+1], ' '); i >= 0 {
		cut = i
	}
	rest = strings.TrimLeftFunc(value[cut:], unicode.IsSpace)
	return value[:cut], rest
}

// formatFixed renders a fixed-point number. The integer part keeps every
// digit; when it overflows its declared columns the fraction gives up space,
// down to nothing. A value with no radix point at all skips the numeric path
// entirely and is left-justified in the full field width.
func formatFixed(f picture.Field, value string) string {
	radix := strings.IndexByte(value, '.')
	if radix < 0 {
		return padLeft(value, f.Width)
	}
	intPart := value[:radix]
	fracPart := value[radix+1:]
	if intPart == "" {
		intPart = "0"
	}

	if len(intPart) >= f.Width {
		return intPart
	}
	avail := f.FracWidth
	if len(intPart) > f.IntWidth {
		avail = f.Width - len(intPart) - 1
		if avail < 0 {
			avail = 0
		}
	}
	frac := roundFraction(fracPart, avail)
	out := intPart
	if f.HasRadix && f.Width-len(intPart) >= 1 {
		out += "." + frac
	}
	return padRight(out, f.Width)
}

// roundFraction trims a fraction-digit string to n digits using round-half-up
// on the first dropped digit. The carry walks left through the fraction only;
// a carry out of the leftmost fraction digit is dropped rather than bumping
// the integer part. Short fractions are zero-padded on the right.
func roundFraction(frac string, n int) string {
	if len(frac) <= n {
		return frac + strings.Repeat("0", n-len(frac))
	}
	digits := []byte(frac[:n])
	if frac[n] >= '5' {
		for i := n - 1; i >= 0; i-- {
			if digits[i] != '9' {
				digits[i]++
				break
			}
			digits[i] = '0'
		}
	}
	return string(digits)
}

// formatScientific renders a value in e/E/g/G notation. For g/G the digit
// columns (introducer slot included) count significant figures; for e/E only
// the fraction columns count, as digits after the radix. The notation letter
// decides the case of the exponent marker in the output.
func formatScientific(f picture.Field, value string) string {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return padLeft("", f.Width)
	}
	prec := f.FracWidth
	if f.Notation == 'g' || f.Notation == 'G' {
		prec = f.IntWidth + f.FracWidth
	}
	return padRight(strconv.FormatFloat(v, f.Notation, prec, 64), f.Width)
}

func padLeft(s string, w int) string {
	if len(s) >= w {
		return s
	}
	return s + strings.Repeat(" ", w-len(s))
}

func padRight(s string, w int) string {
	if len(s) >= w {
		return s
	}
	return strings.Repeat(" ", w-len(s)) + s
}

func padCenter(s string, w int) string {
	if len(s) >= w {
		return s[:w]
	}
	left := (w - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", w-len(s)-left)
}
