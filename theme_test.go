package mdhtml

import (
	"sort"
	"testing"

	"github.com/Yaidea/mdeditor-sub000/internal/palette"
)

func TestThemeByName(t *testing.T) {
	if _, ok := ThemeByName("forest"); !ok {
		t.Fatalf("forest not found")
	}
	if _, ok := ThemeByName("no-such-theme"); ok {
		t.Fatalf("unknown theme resolved")
	}
	th, ok := ThemeByName("")
	if !ok || th.Name() != "default" {
		t.Fatalf("empty name should resolve to default, got %v %v", th, ok)
	}
	th, ok = ThemeByName("  FOREST ")
	if !ok || th.Name() != "forest" {
		t.Fatalf("lookup should normalize case and spacing")
	}
}

func TestAvailableThemesSorted(t *testing.T) {
	names := AvailableThemes()
	if !sort.StringsAreSorted(names) {
		t.Fatalf("names not sorted: %v", names)
	}
	found := false
	for _, n := range names {
		if n == "default" {
			found = true
		}
	}
	if !found {
		t.Fatalf("default theme missing from %v", names)
	}
}

func TestDescribeTheme(t *testing.T) {
	for _, name := range AvailableThemes() {
		if DescribeTheme(name) == "" {
			t.Errorf("theme %q has no description", name)
		}
	}
	if DescribeTheme("no-such-theme") != "" {
		t.Fatalf("unknown theme described")
	}
}

func TestColorsDerivedFromPrimary(t *testing.T) {
	c := DefaultTheme().Colors()
	if c.Link != c.Primary {
		t.Fatalf("link color = %q, want primary %q", c.Link, c.Primary)
	}
	if c.Heading != palette.Darken(c.Primary, 15) {
		t.Fatalf("heading color = %q", c.Heading)
	}
	if c.CodeBg != palette.Alpha(c.Primary, 0.08) {
		t.Fatalf("code background = %q", c.CodeBg)
	}
}

func TestNewTheme(t *testing.T) {
	custom := NewTheme("custom", Colors{Primary: "#123456", Text: "#000000"})
	if custom.Name() != "custom" || custom.Colors().Primary != "#123456" {
		t.Fatalf("NewTheme = %v", custom)
	}
}
