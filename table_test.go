package mdhtml

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPipeLineWithoutSeparatorIsNotATable(t *testing.T) {
	out := Render("a | b\nplain text", DefaultOptions())
	if strings.Contains(out, "<table") {
		t.Fatalf("false candidate rendered as table: %q", out)
	}
	if !strings.Contains(out, "a | b<br>plain text") {
		t.Fatalf("candidate line lost: %q", out)
	}
}

func TestBasicTable(t *testing.T) {
	out := Render("Name | Qty\n--- | ---\nfoo | 2\nbar | 3", DefaultOptions())
	if !strings.Contains(out, "<table") {
		t.Fatalf("no table in %q", out)
	}
	if strings.Count(out, "<th ") != 2 {
		t.Fatalf("header cells: %q", out)
	}
	if strings.Count(out, "<td ") != 4 {
		t.Fatalf("body cells: %q", out)
	}
	for _, cell := range []string{"Name", "Qty", "foo", "bar"} {
		if !strings.Contains(out, cell) {
			t.Errorf("cell %q missing", cell)
		}
	}
}

func TestParseAligns(t *testing.T) {
	got := parseAligns(":--- | :---: | ---:")
	want := []tableAlign{alignLeft, alignCenter, alignRight}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("aligns mismatch (-want +got):\n%s", diff)
	}
	if alignCenter.css() != "center" || alignRight.css() != "right" || alignLeft.css() != "left" {
		t.Fatalf("css mapping broken")
	}
}

func TestTableAlignmentInOutput(t *testing.T) {
	out := Render("a | b | c\n:--- | :---: | ---:\n1 | 2 | 3", DefaultOptions())
	for _, want := range []string{"text-align:left", "text-align:center", "text-align:right"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in %q", want, out)
		}
	}
}

func TestFormatterRejectionReplaysHeader(t *testing.T) {
	var f tableFormatter
	opts := DefaultOptions()

	if _, _, consumed := f.feed("a | b", opts); !consumed {
		t.Fatalf("candidate not consumed")
	}
	if f.state != tableDetecting {
		t.Fatalf("state = %d, want detecting", f.state)
	}
	emitted, replay, consumed := f.feed("no table here", opts)
	if consumed || emitted != "" {
		t.Fatalf("rejection consumed input or emitted %q", emitted)
	}
	if len(replay) != 1 || replay[0] != "a | b" {
		t.Fatalf("replay = %v, want the buffered header", replay)
	}
	if f.state != tableNone {
		t.Fatalf("state not reset after rejection")
	}
}

func TestFormatterBlankLineDuringDetection(t *testing.T) {
	var f tableFormatter
	opts := DefaultOptions()
	f.feed("a | b", opts)
	if _, _, consumed := f.feed("", opts); !consumed {
		t.Fatalf("blank line during detection not consumed")
	}
	if f.state != tableDetecting {
		t.Fatalf("blank line aborted detection")
	}
	if _, _, consumed := f.feed("--- | ---", opts); !consumed {
		t.Fatalf("separator not consumed")
	}
	if f.state != tableProcessing {
		t.Fatalf("separator did not confirm the table")
	}
}

func TestFormatterFinish(t *testing.T) {
	opts := DefaultOptions()

	var f tableFormatter
	f.feed("a | b", opts)
	emitted, replay := f.finish(opts)
	if emitted != "" || len(replay) != 1 || replay[0] != "a | b" {
		t.Fatalf("unconfirmed finish: emitted=%q replay=%v", emitted, replay)
	}

	f.feed("a | b", opts)
	f.feed("--- | ---", opts)
	f.feed("1 | 2", opts)
	emitted, replay = f.finish(opts)
	if replay != nil || !strings.Contains(emitted, "<table") {
		t.Fatalf("confirmed finish: emitted=%q replay=%v", emitted, replay)
	}
}

func TestTableEndsAtPlainLine(t *testing.T) {
	out := Render("h1 | h2\n---|---\na | b\nafter the table", DefaultOptions())
	if !strings.Contains(out, "<table") {
		t.Fatalf("table missing: %q", out)
	}
	if !strings.Contains(out, "after the table") {
		t.Fatalf("trailing paragraph lost: %q", out)
	}
	if strings.Contains(out, "<td ") && strings.Contains(out, ">after the table</td>") {
		t.Fatalf("trailing paragraph swallowed into table: %q", out)
	}
}

func TestTableCellsRenderInline(t *testing.T) {
	out := Render("Col | Note\n--- | ---\n**x** | `y`", DefaultOptions())
	if !strings.Contains(out, "<strong>x</strong>") {
		t.Fatalf("bold cell not rendered: %q", out)
	}
	if !strings.Contains(out, ">y</code>") {
		t.Fatalf("code cell not rendered: %q", out)
	}
}
