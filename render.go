package mdhtml

import "strings"

// Render converts Markdown source into inline-styled HTML. Empty input
// yields an empty string. The call is synchronous and self-contained:
// all scratch state lives and dies with it, and malformed input falls
// back to literal rendering instead of failing.
func Render(markdown string, opts Options) string {
	if markdown == "" {
		return ""
	}
	opts = opts.withDefaults()

	src := normalizeInput(markdown)
	src = skipFrontMatter(src)
	if strings.TrimSpace(src) == "" {
		return ""
	}

	html := parseBlocks(src, opts)
	html = applyThemeAndFonts(html, opts)
	html = AdapterFor(opts.Layout.CopyAdapter).Transform(html, AdapterParams{
		Primary:      opts.Theme.Colors().Primary,
		BaseFontSize: opts.Font.Size,
		ThemeSystem:  opts.Layout.Name,
	})
	return html
}

// Restyle re-applies theme/font styling and the copy adapter to HTML
// produced by an earlier Render call, without re-parsing Markdown. Both
// passes are idempotent, so cached HTML can be restyled repeatedly.
func Restyle(html string, opts Options) string {
	if html == "" {
		return ""
	}
	opts = opts.withDefaults()
	html = applyThemeAndFonts(html, opts)
	return AdapterFor(opts.Layout.CopyAdapter).Transform(html, AdapterParams{
		Primary:      opts.Theme.Colors().Primary,
		BaseFontSize: opts.Font.Size,
		ThemeSystem:  opts.Layout.Name,
	})
}

// normalizeInput strips a UTF-8 BOM and folds CRLF line endings.
func normalizeInput(src string) string {
	src = strings.TrimPrefix(src, "\uFEFF")
	src = strings.ReplaceAll(src, "\r\n", "\n")
	return strings.ReplaceAll(src, "\r", "\n")
}
