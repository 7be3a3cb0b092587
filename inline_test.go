package mdhtml

import (
	"strings"
	"testing"
)

func TestInlineCodeSuppressesEmphasis(t *testing.T) {
	out := renderInline("`**not bold**`", DefaultOptions())
	if !strings.Contains(out, "<code") {
		t.Fatalf("no code element in %q", out)
	}
	if !strings.Contains(out, "**not bold**") {
		t.Fatalf("code content rewritten: %q", out)
	}
	if strings.Contains(out, "<strong>") {
		t.Fatalf("emphasis leaked into code span: %q", out)
	}
}

func TestEscapedMarkersRoundTrip(t *testing.T) {
	got := renderInline(`\*literal\*`, DefaultOptions())
	if got != "*literal*" {
		t.Fatalf("escaped asterisks = %q, want *literal*", got)
	}
}

func TestEscapedHTMLCharBecomesEntity(t *testing.T) {
	got := renderInline(`\<`, DefaultOptions())
	if got != "&lt;" {
		t.Fatalf("escaped < = %q, want &lt;", got)
	}
}

func TestEmphasisVariants(t *testing.T) {
	opts := DefaultOptions()
	cases := []struct {
		in   string
		want string
	}{
		{"***x***", "<strong><em>x</em></strong>"},
		{"**bold**", "<strong>bold</strong>"},
		{"*ital*", "<em>ital</em>"},
		{"__bold__", "<strong>bold</strong>"},
		{"_emph_", "<em>emph</em>"},
	}
	for _, c := range cases {
		if got := renderInline(c.in, opts); got != c.want {
			t.Errorf("renderInline(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSnakeCaseSurvivesItalics(t *testing.T) {
	got := renderInline("use snake_case_name here", DefaultOptions())
	if strings.Contains(got, "<em>") {
		t.Fatalf("snake_case mangled: %q", got)
	}
}

func TestAdjacentUnderscoreItalics(t *testing.T) {
	got := renderInline("_one_ _two_", DefaultOptions())
	if strings.Count(got, "<em>") != 2 {
		t.Fatalf("adjacent italics: %q", got)
	}
}

func TestStrikeSupSub(t *testing.T) {
	opts := DefaultOptions()
	if got := renderInline("~~old~~", opts); got != "<del>old</del>" {
		t.Errorf("strike = %q", got)
	}
	if got := renderInline("x^2^", opts); got != "x<sup>2</sup>" {
		t.Errorf("sup = %q", got)
	}
	if got := renderInline("H~2~O", opts); got != "H<sub>2</sub>O" {
		t.Errorf("sub = %q", got)
	}
}

func TestHighlightAndKeyboard(t *testing.T) {
	opts := DefaultOptions()
	out := renderInline("==note==", opts)
	if !strings.Contains(out, "<mark") || !strings.Contains(out, ">note</mark>") {
		t.Fatalf("highlight = %q", out)
	}
	out = renderInline("[[Ctrl]]+[[C]]", opts)
	if strings.Count(out, "<kbd") != 2 {
		t.Fatalf("keyboard = %q", out)
	}
	if !strings.Contains(out, ">Ctrl</kbd>") {
		t.Fatalf("keyboard content = %q", out)
	}
}

func TestLinksImagesAutolink(t *testing.T) {
	opts := DefaultOptions()
	out := renderInline("[docs](https://a.example/p)", opts)
	if !strings.Contains(out, `<a href="https://a.example/p"`) || !strings.Contains(out, ">docs</a>") {
		t.Fatalf("link = %q", out)
	}
	out = renderInline("![alt text](img.png)", opts)
	if !strings.Contains(out, `<img src="img.png" alt="alt text"`) {
		t.Fatalf("image = %q", out)
	}
	out = renderInline("see https://go.dev now", opts)
	if !strings.Contains(out, `<a href="https://go.dev"`) {
		t.Fatalf("autolink = %q", out)
	}
}

func TestPlainTextIsHTMLEscaped(t *testing.T) {
	got := renderInline("a < b & c", DefaultOptions())
	if got != "a &lt; b &amp; c" {
		t.Fatalf("escape = %q", got)
	}
}

func TestInlineMathUsesFallbackRenderer(t *testing.T) {
	out := renderInline("energy $E=mc^2$ done", DefaultOptions())
	if !strings.Contains(out, "font-style:italic") {
		t.Fatalf("no fallback formula styling: %q", out)
	}
	if !strings.Contains(out, "E=mc^2") {
		t.Fatalf("formula source lost: %q", out)
	}
	if strings.Contains(out, "$") {
		t.Fatalf("dollar delimiters leaked: %q", out)
	}
	if strings.Contains(out, placeholderOpen) {
		t.Fatalf("placeholder leaked: %q", out)
	}
}
