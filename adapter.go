package mdhtml

import (
	"fmt"

	"github.com/Yaidea/mdeditor-sub000/internal/palette"
)

// AdapterParams carries the theme inputs a copy adapter may use.
type AdapterParams struct {
	Primary      string
	BaseFontSize int
	ThemeSystem  string
}

// Adapter is a platform-specific transform applied to exported HTML.
// Transforms must be idempotent on reapplication: they upsert style
// declarations rather than appending blindly.
type Adapter interface {
	Name() string
	Transform(html string, p AdapterParams) string
}

// identityAdapter is the fallback for unregistered theme-system ids.
type identityAdapter struct{}

func (identityAdapter) Name() string                              { return "identity" }
func (identityAdapter) Transform(html string, _ AdapterParams) string { return html }

var adapterRegistry = map[string]Adapter{
	"breeze": breezeAdapter{},
}

// AdapterFor returns the adapter registered for id, or a no-op adapter
// when the id is unknown or empty.
func AdapterFor(id string) Adapter {
	if a, ok := adapterRegistry[id]; ok {
		return a
	}
	return identityAdapter{}
}

// RegisterAdapter installs a copy adapter under its name.
func RegisterAdapter(a Adapter) {
	adapterRegistry[a.Name()] = a
}

// adapterTypography is the declarative per-theme-system typography
// config consulted by adapters.
type adapterTypography struct {
	HeadingScale      [4]float64
	HeadingLineHeight float64
}

var breezeTypography = map[string]adapterTypography{
	"breeze": {HeadingScale: [4]float64{1.4, 1.26, 1.15, 1.08}, HeadingLineHeight: 1.5},
}

var breezeDefaultTypography = adapterTypography{
	HeadingScale:      [4]float64{1.5, 1.3, 1.2, 1.1},
	HeadingLineHeight: 1.4,
}

// breezeAdapter decorates HTML in the breeze layout: h1 becomes a
// centered pill badge, h2-h4 get a colored left bar darkening per
// level, anchors and tables pick up theme-derived colors.
type breezeAdapter struct{}

func (breezeAdapter) Name() string { return "breeze" }

func (breezeAdapter) Transform(html string, p AdapterParams) string {
	if p.BaseFontSize <= 0 {
		p.BaseFontSize = DefaultFontSettings().Size
	}
	typo, ok := breezeTypography[p.ThemeSystem]
	if !ok {
		typo = breezeDefaultTypography
	}
	base := float64(p.BaseFontSize)

	html = applyDeclsToTag(html, "h1", []cssDecl{
		{"background", p.Primary},
		{"color", "#ffffff"},
		{"display", "table"},
		{"margin", "1.2em auto 1em"},
		{"padding", "6px 20px"},
		{"border-radius", "999px"},
		{"text-align", "center"},
		{"font-size", px(base * typo.HeadingScale[0])},
		{"line-height", trimFloat(typo.HeadingLineHeight)},
	}, "")

	// Per-level bar color mixes the primary toward black as the level
	// increases.
	barMix := [3]float64{0, 0.2, 0.4}
	for i, tag := range [3]string{"h2", "h3", "h4"} {
		bar := palette.Mix(p.Primary, "#000000", barMix[i])
		html = applyDeclsToTag(html, tag, []cssDecl{
			{"border-left", fmt.Sprintf("4px solid %s", bar)},
			{"padding-left", "10px"},
			{"color", bar},
			{"font-size", px(base * typo.HeadingScale[i+1])},
			{"line-height", trimFloat(typo.HeadingLineHeight)},
		}, "")
	}

	html = applyDeclsToTag(html, "a", []cssDecl{
		{"color", p.Primary},
		{"border-bottom", fmt.Sprintf("1px solid %s", palette.Alpha(p.Primary, 0.4))},
	}, "")

	border := palette.Lighten(p.Primary, 45)
	html = applyDeclsToTag(html, "table", []cssDecl{
		{"border", fmt.Sprintf("1px solid %s", border)},
	}, "")
	html = applyDeclsToTag(html, "th", []cssDecl{
		{"border", fmt.Sprintf("1px solid %s", border)},
		{"background", palette.Alpha(p.Primary, 0.12)},
	}, "")
	html = applyDeclsToTag(html, "td", []cssDecl{
		{"border", fmt.Sprintf("1px solid %s", border)},
	}, "")
	return html
}
