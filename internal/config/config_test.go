package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	cfg, found, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if found {
		t.Fatalf("expected no config file")
	}
	if cfg.Output.Color != "auto" || cfg.Output.MaxDiagnostics != 0 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadReadsValues(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "[output]\ncolor = \"off\"\nmax_diagnostics = 25\n")

	cfg, found, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !found {
		t.Fatalf("expected the config file to be found")
	}
	if cfg.Output.Color != "off" || cfg.Output.MaxDiagnostics != 25 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadRejectsBadColor(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "[output]\ncolor = \"rainbow\"\n")

	if _, _, err := Load(dir); err == nil {
		t.Fatalf("expected an error for an invalid color value")
	}
}

func TestLoadRejectsNegativeCap(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "[output]\nmax_diagnostics = -1\n")

	if _, _, err := Load(dir); err == nil {
		t.Fatalf("expected an error for a negative cap")
	}
}

func TestLoadRejectsBrokenTOML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "[output\ncolor =")

	if _, _, err := Load(dir); err == nil {
		t.Fatalf("expected a parse error")
	}
}
