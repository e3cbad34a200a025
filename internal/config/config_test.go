package config

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/spf13/pflag"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Input != "README.md" {
		t.Errorf("expected input README.md, got %s", cfg.Input)
	}
	if cfg.Output != "TOC.md" {
		t.Errorf("expected output TOC.md, got %s", cfg.Output)
	}
	if cfg.Format != FormatMarkdown {
		t.Errorf("expected markdown format, got %s", cfg.Format)
	}
	if !slices.Contains(cfg.SkipKeywords, "оглавление") {
		t.Error("expected russian table of contents keyword")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected defaults to validate, got %v", err)
	}
}

func TestLoad(t *testing.T) {
	t.Run("defaults without config file", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)
		t.Setenv("HOME", dir)

		cfg, err := Load("", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Input != "README.md" || cfg.Output != "TOC.md" {
			t.Errorf("unexpected paths: %s -> %s", cfg.Input, cfg.Output)
		}
		if cfg.Debounce != 200*time.Millisecond {
			t.Errorf("expected 200ms debounce, got %s", cfg.Debounce)
		}
	})

	t.Run("config file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "mdtoc.yaml")
		content := "input: docs/guide.md\noutput: docs/TOC.md\nformat: html\nbase_level: 2\nskip_keywords:\n  - contents\n"
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}

		cfg, err := Load(path, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Input != "docs/guide.md" {
			t.Errorf("expected input docs/guide.md, got %s", cfg.Input)
		}
		if cfg.Format != FormatHTML {
			t.Errorf("expected html format, got %s", cfg.Format)
		}
		if cfg.BaseLevel != 2 {
			t.Errorf("expected base level 2, got %d", cfg.BaseLevel)
		}
		if !slices.Equal(cfg.SkipKeywords, []string{"contents"}) {
			t.Errorf("unexpected skip keywords: %v", cfg.SkipKeywords)
		}
	})

	t.Run("environment overrides file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "mdtoc.yaml")
		if err := os.WriteFile(path, []byte("output: file.md\n"), 0644); err != nil {
			t.Fatal(err)
		}
		t.Setenv("MDTOC_OUTPUT", "env.md")

		cfg, err := Load(path, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Output != "env.md" {
			t.Errorf("expected env.md, got %s", cfg.Output)
		}
	})

	t.Run("flags override environment", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)
		t.Setenv("HOME", dir)
		t.Setenv("MDTOC_INPUT", "env.md")

		flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
		flags.String("input", "README.md", "")
		flags.String("output", "TOC.md", "")
		flags.Int("base-level", 1, "")
		if err := flags.Parse([]string{"--input", "flag.md", "--base-level", "3"}); err != nil {
			t.Fatal(err)
		}

		cfg, err := Load("", flags)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Input != "flag.md" {
			t.Errorf("expected flag.md, got %s", cfg.Input)
		}
		if cfg.BaseLevel != 3 {
			t.Errorf("expected base level 3, got %d", cfg.BaseLevel)
		}
		if cfg.Output != "TOC.md" {
			t.Errorf("expected unchanged output TOC.md, got %s", cfg.Output)
		}
	})

	t.Run("malformed config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "mdtoc.yaml")
		if err := os.WriteFile(path, []byte("input: [unterminated\n"), 0644); err != nil {
			t.Fatal(err)
		}

		if _, err := Load(path, nil); err == nil {
			t.Error("expected error for malformed config")
		}
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"html format", func(c *Config) { c.Format = FormatHTML }, false},
		{"json format", func(c *Config) { c.Format = FormatJSON }, false},
		{"stdout output", func(c *Config) { c.Output = "" }, false},
		{"missing input", func(c *Config) { c.Input = "" }, true},
		{"unknown format", func(c *Config) { c.Format = "pdf" }, true},
		{"base level zero", func(c *Config) { c.BaseLevel = 0 }, true},
		{"base level too deep", func(c *Config) { c.BaseLevel = 7 }, true},
		{"zero debounce", func(c *Config) { c.Debounce = 0 }, true},
		{"output equals input", func(c *Config) { c.Output = "./README.md" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
