package mdhtml

// Options is the immutable input bundle for one Render call.
type Options struct {
	Theme  Theme
	Code   CodeStyle
	Layout Layout
	Font   FontSettings
	// Formula renders LaTeX fragments. Nil selects the built-in
	// fallback renderer.
	Formula FormulaRenderer
	// ForPreview marks output destined for the in-app preview, where
	// declarations carry !important so host styles cannot override
	// them. Exported copy payloads omit the suffix.
	ForPreview bool
}

// DefaultOptions returns Options with all built-in defaults selected.
func DefaultOptions() Options {
	return Options{
		Theme:  DefaultTheme(),
		Code:   DefaultCodeStyle(),
		Layout: DefaultLayout(),
		Font:   DefaultFontSettings(),
	}
}

func (o Options) withDefaults() Options {
	if o.Theme == nil {
		o.Theme = DefaultTheme()
	}
	if o.Code.Name == "" {
		o.Code = DefaultCodeStyle()
	}
	if o.Layout.Name == "" {
		o.Layout = DefaultLayout()
	}
	o.Font = o.Font.withDefaults()
	if o.Formula == nil {
		o.Formula = fallbackFormulaRenderer{}
	}
	return o
}

// important returns the declaration suffix for the active output mode.
func (o Options) important() string {
	if o.ForPreview {
		return " !important"
	}
	return ""
}
