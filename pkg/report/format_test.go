package report

import (
	"testing"

	"github.com/goliatone/reportgen/pkg/picture"
)

func mustField(t *testing.T, pic string) picture.Field {
	t.Helper()
	form, err := picture.Compile([]string{pic, "v"})
	if err != nil {
		t.Fatalf("compile %q: %v", pic, err)
	}
	for _, f := range form.Lines[0].Fields {
		if f.IsVariable() {
			return f
		}
	}
	t.Fatalf("no field in %q", pic)
	return picture.Field{}
}

type discardResolver struct{}

func (discardResolver) Get(string) string  { return "" }
func (discardResolver) Set(string, string) {}

type mapStringResolver map[string]string

func (m mapStringResolver) Get(name string) string { return m[name] }
func (m mapStringResolver) Set(name, value string) { m[name] = value }

func TestFormatFixed(t *testing.T) {
	cases := []struct {
		name    string
		pattern string
		value   string
		want    string
	}{
		{"round half up", "@##.##", "123.355", "123.36"},
		{"zero pad fraction", "@##.##", "12.5", " 12.50"},
		{"exact fit", "@##.##", "123.35", "123.35"},
		{"carry stays in fraction", "@#.##", "1.996", " 1.00"},
		{"integer overflow eats fraction", "@##.##", "12345.678", "12345."},
		{"integer overflow past field", "@##.##", "1234567.8", "1234567"},
		{"bare integer left justified", "@##.##", "42", "42    "},
		{"no radix pattern rounds away fraction", "@###", "12.7", "  12"},
		{"negative value", "@##.##", "-1.25", " -1.25"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := mustField(t, tc.pattern)
			got := formatFixed(f, tc.value)
			if got != tc.want {
				t.Fatalf("formatFixed(%q, %q) = %q, want %q", tc.pattern, tc.value, got, tc.want)
			}
		})
	}
}

func TestFormatScientific(t *testing.T) {
	cases := []struct {
		name    string
		pattern string
		value   string
		want    string
	}{
		{"three significant figures upper", "@.##G###", "1.234e-14", "1.23E-14"},
		{"six significant figures lower", "@##.###g###", "123.4567E200", "1.23457e+202"},
		{"one fraction digit upper", "@##.#E###", "123.4567E200", " 1.2E+202"},
		{"unparseable renders blank", "@.##G###", "oops", "        "},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := mustField(t, tc.pattern)
			got := formatScientific(f, tc.value)
			if got != tc.want {
				t.Fatalf("formatScientific(%q, %q) = %q, want %q", tc.pattern, tc.value, got, tc.want)
			}
		})
	}
}

func TestFormatJustify(t *testing.T) {
	cases := []struct {
		name    string
		pattern string
		value   string
		want    string
	}{
		{"left pads right", "@<<<<", "ab", "ab   "},
		{"right pads left", "@>>>>", "ab", "   ab"},
		{"center splits padding", "@||||||", "ab", "  ab   "},
		{"overlong truncates", "@<<", "abcdef", "abc"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := mustField(t, tc.pattern)
			got := formatJustify(f, tc.value, discardResolver{})
			if got != tc.want {
				t.Fatalf("formatJustify(%q, %q) = %q, want %q", tc.pattern, tc.value, got, tc.want)
			}
		})
	}
}

func TestChompSplit(t *testing.T) {
	cases := []struct {
		name     string
		value    string
		width    int
		wantTake string
		wantRest string
	}{
		{"fits whole", "abc", 5, "abc", ""},
		{"cuts mid word without spaces", "abcdefghij", 3, "abc", "defghij"},
		{"breaks at last space in window", "ab cd ef", 5, "ab cd", "ef"},
		{"space just past width", "abcde fgh", 5, "abcde", "fgh"},
		{"strips leading whitespace from rest", "abc   def", 3, "abc", "def"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			take, rest := chompSplit(tc.value, tc.width)
			if take != tc.wantTake || rest != tc.wantRest {
				t.Fatalf("chompSplit(%q, %d) = (%q, %q), want (%q, %q)",
					tc.value, tc.width, take, rest, tc.wantTake, tc.wantRest)
			}
		})
	}
}

func TestChompWritesBackRemainder(t *testing.T) {
	f := mustField(t, "^<<")
	values := map[string]string{"v": "abcdefghij"}
	res := mapStringResolver(values)
	got := formatJustify(f, values["v"], res)
	if got != "abc" {
		t.Fatalf("chomp render = %q", got)
	}
	if values["v"] != "defghij" {
		t.Fatalf("remainder = %q", values["v"])
	}
}

func TestFormatPageNumber(t *testing.T) {
	f := mustField(t, "@&&&&")
	ctx := NewPaginationContext(10)
	ctx.pageNumber = 7
	got := formatField(f, "ignored", ctx, discardResolver{})
	if got != "  7  " {
		t.Fatalf("page field = %q", got)
	}
}
