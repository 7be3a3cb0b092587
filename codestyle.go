package mdhtml

import (
	"sort"
	"strings"
)

// SyntaxColors maps semantic highlighter roles to colors.
type SyntaxColors struct {
	Comment  string
	String   string
	Keyword  string
	Number   string
	Function string
}

// CodeStyle describes how fenced code blocks are decorated.
type CodeStyle struct {
	Name       string
	Background string
	HeaderBg   string
	Text       string
	Syntax     SyntaxColors
	// MacDots draws the three traffic-light dots in the block header.
	MacDots bool
	// ShowLanguage prints the fence language in the block header.
	ShowLanguage bool
}

var builtinCodeStyles = map[string]CodeStyle{
	"dusk": {
		Name:       "dusk",
		Background: "#282c34",
		HeaderBg:   "#21252b",
		Text:       "#abb2bf",
		Syntax: SyntaxColors{
			Comment:  "#5c6370",
			String:   "#98c379",
			Keyword:  "#c678dd",
			Number:   "#d19a66",
			Function: "#61afef",
		},
		MacDots:      true,
		ShowLanguage: true,
	},
	"paper": {
		Name:       "paper",
		Background: "#f6f8fa",
		HeaderBg:   "#eaeef2",
		Text:       "#24292f",
		Syntax: SyntaxColors{
			Comment:  "#6e7781",
			String:   "#0a3069",
			Keyword:  "#cf222e",
			Number:   "#0550ae",
			Function: "#8250df",
		},
		MacDots:      false,
		ShowLanguage: true,
	},
	"midnight": {
		Name:       "midnight",
		Background: "#0d1117",
		HeaderBg:   "#010409",
		Text:       "#c9d1d9",
		Syntax: SyntaxColors{
			Comment:  "#8b949e",
			String:   "#a5d6ff",
			Keyword:  "#ff7b72",
			Number:   "#79c0ff",
			Function: "#d2a8ff",
		},
		MacDots:      true,
		ShowLanguage: false,
	},
	"solarized": {
		Name:       "solarized",
		Background: "#fdf6e3",
		HeaderBg:   "#eee8d5",
		Text:       "#657b83",
		Syntax: SyntaxColors{
			Comment:  "#93a1a1",
			String:   "#2aa198",
			Keyword:  "#859900",
			Number:   "#d33682",
			Function: "#268bd2",
		},
		MacDots:      false,
		ShowLanguage: false,
	},
}

// AvailableCodeStyles returns the names of built-in code styles.
func AvailableCodeStyles() []string {
	names := make([]string, 0, len(builtinCodeStyles))
	for name := range builtinCodeStyles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CodeStyleByName returns a built-in code style by name.
func CodeStyleByName(name string) (CodeStyle, bool) {
	if name == "" {
		return builtinCodeStyles["dusk"], true
	}
	normalized := strings.ToLower(strings.TrimSpace(name))
	cs, ok := builtinCodeStyles[normalized]
	return cs, ok
}

// DefaultCodeStyle returns the default built-in code style.
func DefaultCodeStyle() CodeStyle {
	return builtinCodeStyles["dusk"]
}
