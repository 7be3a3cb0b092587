package mdhtml

import (
	"regexp"
	"strings"
	"sync"
)

// The theme/font post-processor rewrites style attributes on assembled
// HTML instead of re-deriving it from Markdown. That allows late theme
// and font switching on cached HTML. Merging is per CSS property:
// replace if present, append if absent, which keeps repeated
// application idempotent.

type cssDecl struct {
	prop string
	val  string
}

var (
	tagPatternMu    sync.Mutex
	tagPatternCache = map[string]*regexp.Regexp{}
)

// tagPattern matches the opening tag with a name boundary, so a pass
// over <p> never touches <path> or <pre>.
func tagPattern(tag string) *regexp.Regexp {
	tagPatternMu.Lock()
	defer tagPatternMu.Unlock()
	if re, ok := tagPatternCache[tag]; ok {
		return re
	}
	re := regexp.MustCompile(`<` + tag + `(\s[^>]*)?>`)
	tagPatternCache[tag] = re
	return re
}

var reStyleAttr = regexp.MustCompile(`style="([^"]*)"`)

func renderDecls(decls []cssDecl, important string) string {
	var b strings.Builder
	for _, d := range decls {
		b.WriteString(d.prop)
		b.WriteString(":")
		b.WriteString(d.val)
		b.WriteString(important)
		b.WriteString(";")
	}
	return b.String()
}

// mergeDecls folds decls into an existing style value, replacing
// declarations whose property is already present and appending the rest.
func mergeDecls(existing string, decls []cssDecl, important string) string {
	type entry struct {
		prop string
		val  string
	}
	var entries []entry
	for _, part := range strings.Split(existing, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		idx := strings.Index(part, ":")
		if idx < 0 {
			continue
		}
		entries = append(entries, entry{
			prop: strings.TrimSpace(part[:idx]),
			val:  strings.TrimSpace(part[idx+1:]),
		})
	}
	for _, d := range decls {
		replaced := false
		for i := range entries {
			if entries[i].prop == d.prop {
				entries[i].val = d.val + important
				replaced = true
				break
			}
		}
		if !replaced {
			entries = append(entries, entry{prop: d.prop, val: d.val + important})
		}
	}
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(e.prop)
		b.WriteString(":")
		b.WriteString(e.val)
		b.WriteString(";")
	}
	return b.String()
}

// applyDeclsToTag upserts declarations on every occurrence of a tag,
// inserting a style attribute when none exists.
func applyDeclsToTag(html, tag string, decls []cssDecl, important string) string {
	if len(decls) == 0 {
		return html
	}
	return tagPattern(tag).ReplaceAllStringFunc(html, func(open string) string {
		if m := reStyleAttr.FindStringSubmatchIndex(open); m != nil {
			return open[:m[2]] + mergeDecls(open[m[2]:m[3]], decls, important) + open[m[3]:]
		}
		return open[:len(open)-1] + ` style="` + renderDecls(decls, important) + `">`
	})
}

// applyThemeAndFonts is the theme/font post-processing pass over fully
// assembled block HTML.
func applyThemeAndFonts(html string, opts Options) string {
	c := opts.Theme.Colors()
	imp := opts.important()
	family := FontStack(opts.Font.Family)
	base := float64(opts.Font.Size)

	textDecls := []cssDecl{
		{"font-family", family},
		{"font-size", px(base)},
		{"line-height", trimFloat(opts.Font.LineHeight)},
		{"color", c.Text},
	}
	if opts.Font.LetterSpacing != 0 {
		textDecls = append(textDecls, cssDecl{"letter-spacing", px(opts.Font.LetterSpacing)})
	}
	for _, tag := range []string{"p", "li"} {
		html = applyDeclsToTag(html, tag, textDecls, imp)
	}

	quoteDecls := []cssDecl{
		{"font-family", family},
		{"font-size", px(base)},
		{"line-height", trimFloat(opts.Font.LineHeight)},
	}
	html = applyDeclsToTag(html, "blockquote", quoteDecls, imp)

	headingTags := [6]string{"h1", "h2", "h3", "h4", "h5", "h6"}
	for i, tag := range headingTags {
		decls := []cssDecl{
			{"font-family", family},
			{"font-size", px(base * opts.Layout.HeadingScale[i])},
			{"line-height", trimFloat(opts.Layout.HeadingLineHeight)},
			{"color", c.Heading},
		}
		if opts.Font.LetterSpacing != 0 {
			decls = append(decls, cssDecl{"letter-spacing", px(opts.Font.LetterSpacing)})
		}
		html = applyDeclsToTag(html, tag, decls, imp)
	}

	cellDecls := []cssDecl{
		{"font-family", family},
		{"font-size", px(base * 0.9)},
		{"color", c.Text},
	}
	for _, tag := range []string{"th", "td"} {
		html = applyDeclsToTag(html, tag, cellDecls, imp)
	}
	return html
}
