package mdhtml

import (
	"fmt"
	"html"
	"regexp"
	"strings"
)

// FormulaRenderer is the collaborator contract for LaTeX rendering.
// Implementations must not panic; the engine still guards the call and
// substitutes an inline error fragment if one escapes.
type FormulaRenderer interface {
	RenderFormula(latex string, displayMode bool) string
}

// MathPlaceholder tracks one extracted formula through the batch render
// step. HTML stays empty until renderAll runs.
type MathPlaceholder struct {
	Token       string
	Latex       string
	DisplayMode bool
	HTML        string
}

// fallbackFormulaRenderer emits the escaped source in formula styling.
// It stands in when no external renderer is configured so formulas are
// never dropped.
type fallbackFormulaRenderer struct{}

func (fallbackFormulaRenderer) RenderFormula(latex string, _ bool) string {
	return fmt.Sprintf(`<span style="font-family:%s;font-style:italic;">%s</span>`,
		fontStacks["serif"], html.EscapeString(latex))
}

// formulaErrorFragment keeps the original source visible when a renderer
// fails, instead of losing content.
func formulaErrorFragment(latex string) string {
	return fmt.Sprintf(`<span style="color:#b91c1c;border:1px dashed #b91c1c;padding:0 4px;">%s</span>`, html.EscapeString(latex))
}

func renderFormulaSafe(r FormulaRenderer, latex string, displayMode bool) (out string) {
	defer func() {
		if recover() != nil {
			out = formulaErrorFragment(latex)
		}
	}()
	out = r.RenderFormula(latex, displayMode)
	if out == "" {
		out = formulaErrorFragment(latex)
	}
	return out
}

var (
	reDisplayMath = regexp.MustCompile(`\$\$([^$]+)\$\$`)
	reInlineMath  = regexp.MustCompile(`\$([^$\n]+)\$`)
)

type mathContext struct {
	pc       *placeholderContext
	formulas []MathPlaceholder
}

func newMathContext() *mathContext {
	return &mathContext{pc: newPlaceholderContext("MATH")}
}

// extract replaces $...$ and $$...$$ spans with placeholder tokens.
// Display spans are matched first so $$x$$ is not read as two empty
// inline formulas.
func (m *mathContext) extract(text string) string {
	text = reDisplayMath.ReplaceAllStringFunc(text, func(match string) string {
		latex := reDisplayMath.FindStringSubmatch(match)[1]
		token := m.pc.protect("")
		m.formulas = append(m.formulas, MathPlaceholder{Token: token, Latex: latex, DisplayMode: true})
		return token
	})
	text = reInlineMath.ReplaceAllStringFunc(text, func(match string) string {
		latex := reInlineMath.FindStringSubmatch(match)[1]
		token := m.pc.protect("")
		m.formulas = append(m.formulas, MathPlaceholder{Token: token, Latex: latex, DisplayMode: false})
		return token
	})
	return text
}

// renderAll batch-renders every extracted formula.
func (m *mathContext) renderAll(r FormulaRenderer) {
	for i := range m.formulas {
		m.formulas[i].HTML = renderFormulaSafe(r, m.formulas[i].Latex, m.formulas[i].DisplayMode)
	}
}

// restore substitutes rendered formula HTML back for this context's
// tokens.
func (m *mathContext) restore(text string) string {
	for i := range m.formulas {
		if m.formulas[i].HTML == "" {
			continue
		}
		text = strings.ReplaceAll(text, m.formulas[i].Token, m.formulas[i].HTML)
	}
	return text
}

// renderMathBlock renders a $$ fence body as a centered display block.
func renderMathBlock(latex string, opts Options) string {
	inner := renderFormulaSafe(opts.Formula, latex, true)
	return fmt.Sprintf(`<div style="text-align:center;margin:%sem 0;">%s</div>`,
		trimFloat(opts.Layout.BlockSpacing), inner)
}
