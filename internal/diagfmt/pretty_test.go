package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"qak/internal/diag"
	"qak/internal/source"
)

func reportAt(t *testing.T, data string, start, end uint32, msg string) (*diag.Bag, *source.File) {
	t.Helper()
	reg := source.NewRegistry()
	f, err := reg.AddVirtual("t.qak", []byte(data))
	if err != nil {
		t.Fatalf("AddVirtual: %v", err)
	}
	bag := diag.NewBag()
	bag.Report(diag.SynUnexpectedToken, diag.SevError, f.MakeSpan(start, end), msg, nil)
	return bag, f
}

func TestPrettyCaretUnderSpan(t *testing.T) {
	bag, f := reportAt(t, "var x = oops\n", 8, 12, "something wrong here")

	var out bytes.Buffer
	Pretty(&out, bag, f, PrettyOpts{})
	got := out.String()

	if !strings.Contains(got, "t.qak:1:9") {
		t.Errorf("missing location header in %q", got)
	}
	if !strings.Contains(got, "something wrong here") {
		t.Errorf("missing message in %q", got)
	}
	if !strings.Contains(got, "var x = oops") {
		t.Errorf("missing source line in %q", got)
	}
	if !strings.Contains(got, "~~~^") {
		t.Errorf("missing caret underline in %q", got)
	}
}

func TestPrettyTabAlignment(t *testing.T) {
	// The offending token sits after a tab; the underline row must
	// account for the tab's visual width so the caret lands under it.
	bag, f := reportAt(t, "\tbad\n", 1, 4, "after a tab")

	var out bytes.Buffer
	Pretty(&out, bag, f, PrettyOpts{})
	got := out.String()

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) < 3 {
		t.Fatalf("expected header, source, and caret lines, got %q", got)
	}
	caretRow := lines[len(lines)-1]
	if !strings.Contains(caretRow, "^") {
		t.Fatalf("no caret in %q", caretRow)
	}
	caretCol := strings.IndexByte(caretRow, '~')
	if caretCol < 0 {
		caretCol = strings.IndexByte(caretRow, '^')
	}
	srcRow := lines[len(lines)-2]
	tabCol := strings.IndexByte(srcRow, '\t')
	if tabCol < 0 {
		t.Fatalf("source row lost its tab: %q", srcRow)
	}
	// Gutter widths match between the two rows, and the underline must
	// start visually after the expanded tab, i.e. strictly to the right
	// of the tab's byte column.
	if caretCol <= tabCol {
		t.Errorf("underline starts at %d, not after the tab at %d:\n%s", caretCol, tabCol, got)
	}
}

func TestPrettyEmptySpanStillDrawsCaret(t *testing.T) {
	bag, f := reportAt(t, "module m\n", 8, 8, "reached the end")

	var out bytes.Buffer
	Pretty(&out, bag, f, PrettyOpts{})
	if !strings.Contains(out.String(), "^") {
		t.Errorf("empty span produced no caret: %q", out.String())
	}
}

func TestPrettySeparatesDiagnostics(t *testing.T) {
	reg := source.NewRegistry()
	f, _ := reg.AddVirtual("t.qak", []byte("a b\n"))
	bag := diag.NewBag()
	bag.Report(diag.SynUnexpectedToken, diag.SevError, f.MakeSpan(0, 1), "first", nil)
	bag.Report(diag.SynUnexpectedToken, diag.SevError, f.MakeSpan(2, 3), "second", nil)

	var out bytes.Buffer
	Pretty(&out, bag, f, PrettyOpts{})
	got := out.String()
	if !strings.Contains(got, "first") || !strings.Contains(got, "second") {
		t.Fatalf("missing diagnostics in %q", got)
	}
	if !strings.Contains(got, "\n\n") {
		t.Errorf("expected a blank separator line between diagnostics: %q", got)
	}
}
