package mdhtml

import (
	"sort"
	"strings"
)

// Layout is a named theme-system: typography scale and block decoration
// rules, independent of color theme and code style.
type Layout struct {
	Name string
	// CopyAdapter selects the platform adapter applied to exported
	// HTML. Empty means no adapter.
	CopyAdapter string
	// HeadingScale holds per-level font-size multipliers for h1..h6
	// relative to the base font size.
	HeadingScale [6]float64
	// HeadingLineHeight is the line-height multiplier for headings.
	HeadingLineHeight float64
	// BlockSpacing is the vertical margin between blocks, in em.
	BlockSpacing float64
}

var builtinLayouts = map[string]Layout{
	"default": {
		Name:              "default",
		CopyAdapter:       "",
		HeadingScale:      [6]float64{2.0, 1.6, 1.35, 1.15, 1.0, 0.9},
		HeadingLineHeight: 1.3,
		BlockSpacing:      1.0,
	},
	"breeze": {
		Name:              "breeze",
		CopyAdapter:       "breeze",
		HeadingScale:      [6]float64{1.5, 1.3, 1.2, 1.1, 1.0, 0.9},
		HeadingLineHeight: 1.5,
		BlockSpacing:      1.2,
	},
	"compact": {
		Name:              "compact",
		CopyAdapter:       "",
		HeadingScale:      [6]float64{1.6, 1.4, 1.2, 1.05, 0.95, 0.85},
		HeadingLineHeight: 1.2,
		BlockSpacing:      0.6,
	},
}

// AvailableLayouts returns the names of built-in layouts.
func AvailableLayouts() []string {
	names := make([]string, 0, len(builtinLayouts))
	for name := range builtinLayouts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LayoutByName returns a built-in layout by name.
func LayoutByName(name string) (Layout, bool) {
	if name == "" {
		return builtinLayouts["default"], true
	}
	normalized := strings.ToLower(strings.TrimSpace(name))
	l, ok := builtinLayouts[normalized]
	return l, ok
}

// DefaultLayout returns the default built-in layout.
func DefaultLayout() Layout {
	return builtinLayouts["default"]
}
