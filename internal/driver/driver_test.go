package driver

import (
	"os"
	"path/filepath"
	"testing"

	"qak/internal/source"
	"qak/internal/token"
)

func TestCompileSourceCleanUnit(t *testing.T) {
	reg := source.NewRegistry()
	res, err := CompileSource(reg, "m.qak", []byte("module m var x = 1"), Options{})
	if err != nil {
		t.Fatalf("CompileSource: %v", err)
	}
	if res.Bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %+v", res.Bag.Items())
	}
	if res.Module == nil || res.Builder == nil {
		t.Fatalf("expected AST on a clean compile")
	}
	if len(res.Tokens) == 0 || res.Tokens[len(res.Tokens)-1].Kind != token.EOF {
		t.Fatalf("token vector must end in EOF: %+v", res.Tokens)
	}
}

func TestLexicalErrorVetoesParsing(t *testing.T) {
	reg := source.NewRegistry()
	res, err := CompileSource(reg, "m.qak", []byte("module m ~oops"), Options{})
	if err != nil {
		t.Fatalf("CompileSource: %v", err)
	}
	if res.Module != nil {
		t.Fatalf("parser must not run after a lexical error")
	}
	if res.Bag.Len() == 0 {
		t.Fatalf("expected the lexical diagnostic to be retained")
	}
	if len(res.Tokens) == 0 {
		t.Fatalf("tokens must still be available for inspection")
	}
}

func TestCompileFileIOError(t *testing.T) {
	reg := source.NewRegistry()
	if _, err := CompileFile(reg, filepath.Join(t.TempDir(), "nope.qak"), Options{}); err == nil {
		t.Fatalf("expected an I/O error")
	}
}

func TestTokenizeFileOnly(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "t.qak")
	if err := os.WriteFile(path, []byte("module m"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	reg := source.NewRegistry()
	res, err := TokenizeFile(reg, path, Options{})
	if err != nil {
		t.Fatalf("TokenizeFile: %v", err)
	}
	if res.Module != nil || res.Builder != nil {
		t.Fatalf("tokenize-only result must not carry an AST")
	}
	if len(res.Tokens) != 3 {
		t.Fatalf("expected module, m, EOF; got %+v", res.Tokens)
	}
}

func TestMaxDiagnosticsOption(t *testing.T) {
	reg := source.NewRegistry()
	res, err := CompileSource(reg, "m.qak", []byte("~ ~ ~ ~"), Options{MaxDiagnostics: 3})
	if err != nil {
		t.Fatalf("CompileSource: %v", err)
	}
	if res.Bag.Len() != 3 {
		t.Fatalf("expected the bag capped at 3, got %d", res.Bag.Len())
	}
}
