package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	mdhtml "github.com/Yaidea/mdeditor-sub000"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/version"
)

const defaultDescribeWidth = 80

func init() {
	version.SetDefaultModule("github.com/Yaidea/mdeditor-sub000")
}

func main() {
	var (
		themeName      string
		codeStyleName  string
		layoutName     string
		fontFamily     string
		fontSize       int
		letterSpacing  float64
		lineHeight     float64
		preview        bool
		outPath        string
		listThemes     bool
		describeThemes bool
		listCodeStyles bool
		listLayouts    bool
		listFonts      bool
		showVersion    bool
	)

	flags := pflag.NewFlagSet("mdhtml", pflag.ExitOnError)
	flags.StringVarP(&themeName, "theme", "t", "default", "Color theme name")
	flags.StringVarP(&codeStyleName, "code-style", "c", "dusk", "Code block style name")
	flags.StringVarP(&layoutName, "layout", "l", "default", "Layout/theme-system name")
	flags.StringVarP(&fontFamily, "font", "f", "system", "Font family id")
	flags.IntVar(&fontSize, "font-size", 16, "Base font size in pixels")
	flags.Float64Var(&letterSpacing, "letter-spacing", 0, "Letter spacing in pixels")
	flags.Float64Var(&lineHeight, "line-height", 0, "Line height multiplier (0 uses the default)")
	flags.BoolVar(&preview, "preview", false, "Emit preview output with !important overrides")
	flags.StringVarP(&outPath, "output", "o", "", "Output file instead of stdout")
	flags.BoolVar(&listThemes, "list-themes", false, "List available color themes")
	flags.BoolVar(&describeThemes, "describe-themes", false, "List color themes with descriptions")
	flags.BoolVar(&listCodeStyles, "list-code-styles", false, "List available code styles")
	flags.BoolVar(&listLayouts, "list-layouts", false, "List available layouts")
	flags.BoolVar(&listFonts, "list-fonts", false, "List available font family ids")
	flags.BoolVarP(&showVersion, "version", "V", false, "Print version and exit")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, version.Module(), version.Current())
		fmt.Fprintf(os.Stderr, "Usage: mdhtml [flags] [inputs...]\n")
		fmt.Fprintln(os.Stderr, "\nIf no input is provided, Markdown is read from stdin.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	switch {
	case showVersion:
		fmt.Fprintln(os.Stdout, version.Module(), version.Current())
		return
	case listThemes:
		printLines(mdhtml.AvailableThemes())
		return
	case describeThemes:
		printThemeDescriptions()
		return
	case listCodeStyles:
		printLines(mdhtml.AvailableCodeStyles())
		return
	case listLayouts:
		printLines(mdhtml.AvailableLayouts())
		return
	case listFonts:
		printLines(mdhtml.AvailableFontFamilies())
		return
	}

	theme, ok := mdhtml.ThemeByName(themeName)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown theme %q\n\n", themeName)
		printLines(mdhtml.AvailableThemes())
		os.Exit(2)
	}
	codeStyle, ok := mdhtml.CodeStyleByName(codeStyleName)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown code style %q\n\n", codeStyleName)
		printLines(mdhtml.AvailableCodeStyles())
		os.Exit(2)
	}
	layout, ok := mdhtml.LayoutByName(layoutName)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown layout %q\n\n", layoutName)
		printLines(mdhtml.AvailableLayouts())
		os.Exit(2)
	}

	source, err := readInputs(flags.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "read input: %v\n", err)
		os.Exit(1)
	}
	if err := mdhtml.ValidateInput(source); err != nil {
		fmt.Fprintf(os.Stderr, "invalid input: %v\n", err)
		os.Exit(1)
	}

	writer, closeOut, err := resolveOutput(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open output: %v\n", err)
		os.Exit(1)
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}
	if outPath == "" && isTerminal(writer) {
		fmt.Fprintln(os.Stderr, "note: writing HTML to a terminal; use -o/--output to save it")
	}

	html := mdhtml.Render(string(source), mdhtml.Options{
		Theme:  theme,
		Code:   codeStyle,
		Layout: layout,
		Font: mdhtml.FontSettings{
			Family:        fontFamily,
			Size:          fontSize,
			LetterSpacing: letterSpacing,
			LineHeight:    lineHeight,
		},
		ForPreview: preview,
	})
	fmt.Fprintln(writer, html)
}

func printLines(names []string) {
	for _, name := range names {
		fmt.Fprintln(os.Stdout, name)
	}
}

func printThemeDescriptions() {
	width := terminalWidth(defaultDescribeWidth)
	for _, name := range mdhtml.AvailableThemes() {
		desc := mdhtml.DescribeTheme(name)
		if desc == "" {
			fmt.Fprintln(os.Stdout, name)
			continue
		}
		fmt.Fprintln(os.Stdout, wordwrap.String(name+": "+desc, width))
	}
}

func terminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}

func readInputs(args []string) ([]byte, error) {
	if len(args) == 0 {
		return io.ReadAll(os.Stdin)
	}
	var buf []byte
	for i, arg := range args {
		data, err := os.ReadFile(normalizePath(arg))
		if err != nil {
			return nil, err
		}
		if i > 0 {
			buf = append(buf, '\n')
		}
		buf = append(buf, data...)
	}
	return buf, nil
}

func resolveOutput(path string) (io.Writer, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return os.Stdout, nil, nil
	}
	clean := normalizePath(path)
	dir := filepath.Dir(clean)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.Create(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
