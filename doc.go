// Package mdhtml renders Markdown to inline-styled HTML.
//
// The output is self-contained: every element carries its styling in a
// style attribute, so the HTML survives being pasted into surfaces that
// strip stylesheets (publishing platforms, rich-text clipboards). The
// same output feeds an in-app preview.
//
// Parsing is line-oriented with dedicated sub-processors for lists and
// tables, an ordered inline formatting pipeline with placeholder
// protection for literal content (code spans, formulas, escapes), a
// small multi-pass code highlighter, and two post-processing stages: a
// theme/font styler that can be re-applied to cached HTML, and a
// per-layout copy adapter for platform-specific decoration.
//
// Example:
//
//	html := mdhtml.Render("# Hello\n\nMarkdown in, styled HTML out.\n", mdhtml.DefaultOptions())
//	fmt.Println(html)
//
// Rendering is call-scoped and synchronous: no state survives between
// calls, and any input produces some HTML output.
package mdhtml
