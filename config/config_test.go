package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/gridview/colour"
	"github.com/lixenwraith/gridview/decorator"
	"github.com/lixenwraith/gridview/text"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Colour.Mode != "auto" {
		t.Errorf("expected mode auto, got %s", cfg.Colour.Mode)
	}
	if cfg.Border.Line != "single" {
		t.Errorf("expected line single, got %s", cfg.Border.Line)
	}
	if cfg.WrapPolicy() != text.PolicyWord {
		t.Errorf("expected word wrap, got %v", cfg.WrapPolicy())
	}
	if !cfg.Scroll.Scrollbar {
		t.Error("expected scrollbar enabled")
	}
}

func TestLoadFrom_FileNotExists(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Border.Line != "single" {
		t.Errorf("expected default line, got %s", cfg.Border.Line)
	}
}

func TestLoadFrom_ValidFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")

	content := `
[colour]
mode = "greyscale"

[border]
line = "rounded"
fg = "#ff0000"
title_bold = false
padding = [1, 0, 1, 0]

[text]
wrap = "char"

[scroll]
scrollbar = false
bell = true
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := cfg.Transform().(colour.Greyscale); !ok {
		t.Errorf("expected greyscale transform, got %T", cfg.Transform())
	}
	if cfg.BorderChars() != decorator.LineRounded.Chars() {
		t.Errorf("expected rounded chars, got %+v", cfg.BorderChars())
	}
	if cfg.BorderPadding() != decorator.NewPadding(1, 0, 1, 0) {
		t.Errorf("unexpected padding %+v", cfg.BorderPadding())
	}
	frame, title := cfg.BorderStyles()
	if fg, ok := frame.Foreground(); !ok || fg != colour.NewRGB(255, 0, 0) {
		t.Errorf("expected red frame, got %v", fg)
	}
	if title.Bold {
		t.Error("expected title not bold")
	}
	if cfg.WrapPolicy() != text.PolicyChar {
		t.Errorf("expected char wrap, got %v", cfg.WrapPolicy())
	}
	if cfg.Scroll.Scrollbar || !cfg.Scroll.Bell {
		t.Errorf("unexpected scroll config %+v", cfg.Scroll)
	}
	// Unset keys keep defaults
	if cfg.Text.Fg != "#c8c8c8" {
		t.Errorf("expected default text fg, got %s", cfg.Text.Fg)
	}
}

func TestLoadFrom_InvalidFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad toml", "[colour\nmode = 1"},
		{"unknown mode", "[colour]\nmode = \"sepia\""},
		{"unknown line", "[border]\nline = \"dotted\""},
		{"bad colour", "[text]\nfg = \"#zzzzzz\""},
		{"short padding", "[border]\npadding = [1, 2]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(configPath, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("failed to write test config: %v", err)
			}
			if _, err := LoadFrom(configPath); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("GRIDVIEW_COLOUR", "ansi16")
	t.Setenv("GRIDVIEW_BORDER", "double")

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := cfg.Transform().(colour.Ansi16); !ok {
		t.Errorf("expected ansi16 transform, got %T", cfg.Transform())
	}
	if cfg.BorderChars() != decorator.LineDouble.Chars() {
		t.Errorf("expected double chars, got %+v", cfg.BorderChars())
	}
}

func TestSaveTo_RoundTrip(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := Default()
	cfg.Border.Line = "heavy"
	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Border.Line != "heavy" {
		t.Errorf("expected heavy, got %s", loaded.Border.Line)
	}
}
