package mdhtml

import (
	"fmt"
	"sort"
	"strings"
)

// FontSettings holds the typography inputs applied by the post-processor.
type FontSettings struct {
	// Family is a font family id resolved via FontStack.
	Family string
	// Size is the base font size in pixels.
	Size int
	// LetterSpacing is in pixels; zero omits the declaration.
	LetterSpacing float64
	// LineHeight is a unitless multiplier.
	LineHeight float64
}

var fontStacks = map[string]string{
	"system":  `-apple-system,BlinkMacSystemFont,"Segoe UI",Roboto,"Helvetica Neue",Arial,sans-serif`,
	"serif":   `Georgia,"Times New Roman",STSong,serif`,
	"rounded": `"Avenir Next","PingFang SC","Hiragino Sans",sans-serif`,
	"mono":    `"SF Mono",SFMono-Regular,Menlo,Consolas,"Liberation Mono",monospace`,
}

// AvailableFontFamilies returns the known font family ids.
func AvailableFontFamilies() []string {
	names := make([]string, 0, len(fontStacks))
	for name := range fontStacks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FontStack resolves a family id to a CSS font-family stack. Unknown ids
// fall back to the system stack.
func FontStack(family string) string {
	if stack, ok := fontStacks[strings.ToLower(strings.TrimSpace(family))]; ok {
		return stack
	}
	return fontStacks["system"]
}

// DefaultFontSettings returns the default typography settings.
func DefaultFontSettings() FontSettings {
	return FontSettings{
		Family:     "system",
		Size:       16,
		LineHeight: 1.75,
	}
}

func (f FontSettings) withDefaults() FontSettings {
	d := DefaultFontSettings()
	if f.Family == "" {
		f.Family = d.Family
	}
	if f.Size <= 0 {
		f.Size = d.Size
	}
	if f.LineHeight <= 0 {
		f.LineHeight = d.LineHeight
	}
	return f
}

func trimFloat(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	return s
}

func px(v float64) string {
	return trimFloat(v) + "px"
}
