package mdhtml

import (
	"sort"
	"strings"

	"github.com/Yaidea/mdeditor-sub000/internal/palette"
)

// Colors groups the semantic color roles used by the renderer.
type Colors struct {
	Primary       string
	Text          string
	Heading       string
	Link          string
	Quote         string
	QuoteBar      string
	CodeText      string
	CodeBg        string
	Highlight     string
	HighlightText string
	TableBorder   string
	TableHeadBg   string
	Rule          string
}

// Theme provides named colors for Markdown rendering.
type Theme interface {
	Name() string
	Colors() Colors
}

type theme struct {
	name   string
	colors Colors
}

func (t theme) Name() string   { return t.name }
func (t theme) Colors() Colors { return t.colors }

// NewTheme returns a Theme from a Colors definition.
func NewTheme(name string, colors Colors) Theme {
	return theme{name: name, colors: colors}
}

func colorsFromPrimary(primary, text string) Colors {
	return Colors{
		Primary:       primary,
		Text:          text,
		Heading:       palette.Darken(primary, 15),
		Link:          primary,
		Quote:         palette.Mix(text, "#ffffff", 0.25),
		QuoteBar:      palette.Lighten(primary, 35),
		CodeText:      palette.Darken(primary, 10),
		CodeBg:        palette.Alpha(primary, 0.08),
		Highlight:     palette.Alpha(primary, 0.18),
		HighlightText: text,
		TableBorder:   palette.Lighten(primary, 55),
		TableHeadBg:   palette.Alpha(primary, 0.10),
		Rule:          palette.Lighten(primary, 60),
	}
}

var builtinThemes = map[string]Theme{
	"default":     theme{name: "default", colors: colorsFromPrimary("#4f46e5", "#1f2937")},
	"breeze-blue": theme{name: "breeze-blue", colors: colorsFromPrimary("#2563eb", "#1e293b")},
	"forest":      theme{name: "forest", colors: colorsFromPrimary("#16a34a", "#14532d")},
	"sunset":      theme{name: "sunset", colors: colorsFromPrimary("#ea580c", "#431407")},
	"grape":       theme{name: "grape", colors: colorsFromPrimary("#7c3aed", "#2e1065")},
	"rose":        theme{name: "rose", colors: colorsFromPrimary("#e11d48", "#4c0519")},
	"mono-ink":    theme{name: "mono-ink", colors: colorsFromPrimary("#111827", "#111827")},
}

var themeDescriptions = map[string]string{
	"default":     "Indigo accents on slate text; the neutral starting point.",
	"breeze-blue": "Bright blue accents tuned for the breeze copy layout.",
	"forest":      "Deep greens for long-form technical writing.",
	"sunset":      "Warm orange accents with a dark warm body color.",
	"grape":       "Violet accents with high-contrast headings.",
	"rose":        "Saturated rose accents for announcement-style posts.",
	"mono-ink":    "Single-ink near-black styling for print-like output.",
}

// AvailableThemes returns the names of built-in themes.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a built-in theme by name.
func ThemeByName(name string) (Theme, bool) {
	if name == "" {
		return builtinThemes["default"], true
	}
	normalized := strings.ToLower(strings.TrimSpace(name))
	t, ok := builtinThemes[normalized]
	return t, ok
}

// DescribeTheme returns a one-line description of a built-in theme.
func DescribeTheme(name string) string {
	return themeDescriptions[strings.ToLower(strings.TrimSpace(name))]
}

// DefaultTheme returns the default built-in theme.
func DefaultTheme() Theme {
	return builtinThemes["default"]
}
