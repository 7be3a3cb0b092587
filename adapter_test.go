package mdhtml

import (
	"strings"
	"testing"

	"github.com/Yaidea/mdeditor-sub000/internal/palette"
)

func TestAdapterForUnknownIsIdentity(t *testing.T) {
	in := "<p>x</p>"
	for _, id := range []string{"", "nope", "wechat"} {
		if got := AdapterFor(id).Transform(in, AdapterParams{}); got != in {
			t.Errorf("AdapterFor(%q) modified input: %q", id, got)
		}
	}
}

type upperAdapter struct{}

func (upperAdapter) Name() string { return "upper-test" }
func (upperAdapter) Transform(html string, _ AdapterParams) string {
	return strings.ToUpper(html)
}

func TestRegisterAdapter(t *testing.T) {
	RegisterAdapter(upperAdapter{})
	if got := AdapterFor("upper-test").Transform("abc", AdapterParams{}); got != "ABC" {
		t.Fatalf("registered adapter not used: %q", got)
	}
}

func TestBreezeTurnsH1IntoPill(t *testing.T) {
	p := AdapterParams{Primary: "#2563eb", BaseFontSize: 16, ThemeSystem: "breeze"}
	out := AdapterFor("breeze").Transform(`<h1 id="t" style="color:#111111;">T</h1>`, p)
	if !strings.Contains(out, "border-radius:999px") {
		t.Fatalf("no pill radius: %q", out)
	}
	if !strings.Contains(out, "background:#2563eb") {
		t.Fatalf("no primary background: %q", out)
	}
	if !strings.Contains(out, "color:#ffffff") || strings.Contains(out, "#111111") {
		t.Fatalf("heading color not replaced: %q", out)
	}
	if !strings.Contains(out, "font-size:22.4px") {
		t.Fatalf("breeze h1 scale: %q", out)
	}
}

func TestBreezeBarDarkensPerLevel(t *testing.T) {
	p := AdapterParams{Primary: "#2563eb", BaseFontSize: 16, ThemeSystem: "breeze"}
	out := AdapterFor("breeze").Transform("<h2>a</h2><h3>b</h3><h4>c</h4>", p)
	for i, mix := range []float64{0, 0.2, 0.4} {
		bar := palette.Mix(p.Primary, "#000000", mix)
		if !strings.Contains(out, "4px solid "+bar) {
			t.Errorf("h%d bar color %q missing: %q", i+2, bar, out)
		}
	}
}

func TestBreezeIdempotent(t *testing.T) {
	p := AdapterParams{Primary: "#2563eb", BaseFontSize: 16, ThemeSystem: "breeze"}
	in := `<h1>T</h1><h2>S</h2><a href="https://x.example">x</a><table><tr><th>h</th><td>d</td></tr></table>`
	once := AdapterFor("breeze").Transform(in, p)
	twice := AdapterFor("breeze").Transform(once, p)
	if once != twice {
		t.Fatalf("reapplication changed output:\n%q\nvs\n%q", once, twice)
	}
}

func TestBreezeZeroFontSizeFallsBack(t *testing.T) {
	out := AdapterFor("breeze").Transform("<h1>T</h1>", AdapterParams{Primary: "#2563eb"})
	// 16 * default scale 1.5
	if !strings.Contains(out, "font-size:24px") {
		t.Fatalf("fallback size: %q", out)
	}
}

func TestRenderBreezeLayoutAppliesAdapter(t *testing.T) {
	opts := DefaultOptions()
	opts.Layout, _ = LayoutByName("breeze")
	out := Render("# Title", opts)
	if !strings.Contains(out, "border-radius:999px") {
		t.Fatalf("breeze layout did not run its adapter: %q", out)
	}
}
