package mdhtml

import (
	"fmt"
	"strings"
	"testing"
)

type stubFormulaRenderer struct{}

func (stubFormulaRenderer) RenderFormula(latex string, displayMode bool) string {
	return fmt.Sprintf("[%s|%v]", latex, displayMode)
}

type panickingFormulaRenderer struct{}

func (panickingFormulaRenderer) RenderFormula(string, bool) string {
	panic("renderer blew up")
}

type emptyFormulaRenderer struct{}

func (emptyFormulaRenderer) RenderFormula(string, bool) string { return "" }

func TestMathExtractDisplayBeforeInline(t *testing.T) {
	m := newMathContext()
	out := m.extract("$$disp$$ and $inl$")
	if strings.Contains(out, "$") {
		t.Fatalf("delimiters left behind: %q", out)
	}
	if len(m.formulas) != 2 {
		t.Fatalf("formulas = %d, want 2", len(m.formulas))
	}
	if m.formulas[0].Latex != "disp" || !m.formulas[0].DisplayMode {
		t.Fatalf("display formula = %+v", m.formulas[0])
	}
	if m.formulas[1].Latex != "inl" || m.formulas[1].DisplayMode {
		t.Fatalf("inline formula = %+v", m.formulas[1])
	}
}

func TestMathBatchRenderAndRestore(t *testing.T) {
	m := newMathContext()
	out := m.extract("$$disp$$ and $inl$")
	m.renderAll(stubFormulaRenderer{})
	got := m.restore(out)
	if got != "[disp|true] and [inl|false]" {
		t.Fatalf("restore = %q", got)
	}
}

func TestPanickingRendererYieldsErrorFragment(t *testing.T) {
	got := renderFormulaSafe(panickingFormulaRenderer{}, "x+y", false)
	if !strings.Contains(got, "dashed") || !strings.Contains(got, "x+y") {
		t.Fatalf("error fragment = %q", got)
	}
}

func TestEmptyRendererOutputYieldsErrorFragment(t *testing.T) {
	got := renderFormulaSafe(emptyFormulaRenderer{}, "a", true)
	if !strings.Contains(got, "dashed") {
		t.Fatalf("empty output not treated as failure: %q", got)
	}
}

func TestErrorFragmentEscapesSource(t *testing.T) {
	got := formulaErrorFragment("a<b")
	if !strings.Contains(got, "a&lt;b") {
		t.Fatalf("fragment not escaped: %q", got)
	}
}

func TestRenderMathBlockCentered(t *testing.T) {
	out := renderMathBlock("a+b", DefaultOptions().withDefaults())
	if !strings.Contains(out, "text-align:center") || !strings.Contains(out, "a+b") {
		t.Fatalf("math block = %q", out)
	}
}

func TestRenderUsesConfiguredFormulaRenderer(t *testing.T) {
	out := Render("Euler: $e^x$", Options{Formula: stubFormulaRenderer{}})
	if !strings.Contains(out, "[e^x|false]") {
		t.Fatalf("configured renderer not used: %q", out)
	}
}

func TestRenderDisplayMathBlock(t *testing.T) {
	out := Render("$$\n\\sum_i x_i\n$$", Options{Formula: stubFormulaRenderer{}})
	if !strings.Contains(out, "[\\sum_i x_i|true]") {
		t.Fatalf("display block = %q", out)
	}
	if !strings.Contains(out, "text-align:center") {
		t.Fatalf("display block not centered: %q", out)
	}
}
