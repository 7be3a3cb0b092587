package mdhtml

import (
	"fmt"
	"html"
	"regexp"
	"strings"
)

// Inline pass order is load-bearing: escapes, code spans and math are
// swapped for placeholder tokens before any broad emphasis pattern runs,
// and swapped back verbatim after every other pass has finished. Literal
// content therefore never meets a second pattern match.

var (
	reEscapedChar = regexp.MustCompile("\\\\([\\\\`*_{}\\[\\]()#+\\-.!~^=$|<>&])")
	reInlineCode  = regexp.MustCompile("`([^`\n]+)`")
	reImage       = regexp.MustCompile(`!\[([^\]]*)\]\(([^)\n]+)\)`)
	reLink        = regexp.MustCompile(`\[([^\]\n]+)\]\(([^)\n]+)\)`)
	reAutoLink    = regexp.MustCompile(`(^|\s)(https?://[^\s<]+)`)
	reKeyboard    = regexp.MustCompile(`\[\[([^\[\]\n]+)\]\]`)
	reHighlight   = regexp.MustCompile(`==([^=\n]+)==`)
	reBoldItalic  = regexp.MustCompile(`\*\*\*([^*\n]+)\*\*\*`)
	reBoldItalic2 = regexp.MustCompile(`___([^_\n]+)___`)
	reBold        = regexp.MustCompile(`\*\*([^*\n]+)\*\*`)
	reBold2       = regexp.MustCompile(`__([^_\n]+)__`)
	reItalic      = regexp.MustCompile(`\*([^*\n]+)\*`)
	reItalic2     = regexp.MustCompile(`(^|[^\w_])_([^_\n]+)_($|[^\w_])`)
	reStrike      = regexp.MustCompile(`~~([^~\n]+)~~`)
	reSuper       = regexp.MustCompile(`\^([^\s^]+)\^`)
	reSub         = regexp.MustCompile(`~([^~\s]+)~`)
)

var htmlTextEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

var escapeEntities = map[string]string{
	"<": "&lt;",
	">": "&gt;",
	"&": "&amp;",
}

// protectEscapes lifts backslash-escaped punctuation out of the text so
// no inner pass can treat it as a delimiter.
func protectEscapes(text string) (string, *placeholderContext) {
	pc := newPlaceholderContext("ESC")
	out := reEscapedChar.ReplaceAllStringFunc(text, func(match string) string {
		ch := match[1:]
		if entity, ok := escapeEntities[ch]; ok {
			ch = entity
		}
		return pc.protect(ch)
	})
	return out, pc
}

// processInlineCode extracts `code` spans, renders them immediately with
// theme colors, and leaves placeholder tokens behind.
func processInlineCode(text string, opts Options) (string, *placeholderContext) {
	pc := newPlaceholderContext("CODE")
	c := opts.Theme.Colors()
	out := reInlineCode.ReplaceAllStringFunc(text, func(match string) string {
		body := reInlineCode.FindStringSubmatch(match)[1]
		rendered := fmt.Sprintf(`<code style="color:%s;background:%s;padding:2px 4px;border-radius:4px;font-family:%s;">%s</code>`,
			c.CodeText, c.CodeBg, fontStacks["mono"], html.EscapeString(body))
		return pc.protect(rendered)
	})
	return out, pc
}

func applyImages(text string) string {
	return reImage.ReplaceAllString(text, `<img src="${2}" alt="${1}" style="max-width:100%;border-radius:6px;">`)
}

func applyLinks(text string, c Colors) string {
	repl := fmt.Sprintf(`<a href="${2}" style="color:%s;text-decoration:none;border-bottom:1px solid %s;">${1}</a>`, c.Link, c.Link)
	text = reLink.ReplaceAllString(text, repl)
	auto := fmt.Sprintf(`${1}<a href="${2}" style="color:%s;text-decoration:none;border-bottom:1px solid %s;">${2}</a>`, c.Link, c.Link)
	return reAutoLink.ReplaceAllString(text, auto)
}

func applyKeyboard(text string) string {
	return reKeyboard.ReplaceAllString(text,
		`<kbd style="font-family:`+fontStacks["mono"]+`;font-size:0.85em;background:#f3f4f6;color:#1f2937;border:1px solid #d1d5db;border-bottom-width:2px;border-radius:4px;padding:1px 5px;">$1</kbd>`)
}

func applyHighlight(text string, c Colors) string {
	repl := fmt.Sprintf(`<mark style="background:%s;color:%s;padding:0 2px;border-radius:3px;">$1</mark>`, c.Highlight, c.HighlightText)
	return reHighlight.ReplaceAllString(text, repl)
}

// applyEmphasis handles bold and italic in one combined pass. The triple
// marker must go first: once ***x*** is consumed, the independent bold
// and italic patterns cannot double-wrap it.
func applyEmphasis(text string) string {
	text = reBoldItalic.ReplaceAllString(text, `<strong><em>$1</em></strong>`)
	text = reBoldItalic2.ReplaceAllString(text, `<strong><em>$1</em></strong>`)
	text = reBold.ReplaceAllString(text, `<strong>$1</strong>`)
	text = reBold2.ReplaceAllString(text, `<strong>$1</strong>`)
	text = reItalic.ReplaceAllString(text, `<em>$1</em>`)
	// The underscore form needs non-word boundaries so snake_case text
	// survives. Boundary consumption can shadow an adjacent match, so
	// the pass runs twice.
	text = reItalic2.ReplaceAllString(text, `${1}<em>${2}</em>${3}`)
	text = reItalic2.ReplaceAllString(text, `${1}<em>${2}</em>${3}`)
	return text
}

// renderInline runs the full inline pipeline over one block of text.
func renderInline(text string, opts Options) string {
	c := opts.Theme.Colors()
	text, escCtx := protectEscapes(text)
	text, codeCtx := processInlineCode(text, opts)
	math := newMathContext()
	text = math.extract(text)
	text = htmlTextEscaper.Replace(text)
	text = applyImages(text)
	text = applyLinks(text, c)
	text = applyKeyboard(text)
	text = applyHighlight(text, c)
	text = applyEmphasis(text)
	text = reStrike.ReplaceAllString(text, `<del>$1</del>`)
	text = reSuper.ReplaceAllString(text, `<sup>$1</sup>`)
	text = reSub.ReplaceAllString(text, `<sub>$1</sub>`)
	math.renderAll(opts.Formula)
	text = math.restore(text)
	text = codeCtx.restore(text)
	text = escCtx.restore(text)
	return text
}
