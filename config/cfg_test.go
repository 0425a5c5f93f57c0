package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rupor-github/gencfg"

	"bml/common"
	"bml/markup"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}
	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}

	def := markup.DefaultOptions()
	if cfg.Parser.PreviewTextLimit != def.PreviewTextLimit || cfg.Parser.InnerContentChildren != def.InnerContentChildren {
		t.Errorf("parser defaults = %+v, want %+v", cfg.Parser, def)
	}
	if !cfg.Parser.WarnCustomTags {
		t.Error("WarnCustomTags should be on by default")
	}
	if cfg.Output.Format != common.OutputFmtTree || cfg.Output.Overwrite {
		t.Errorf("output defaults = %+v", cfg.Output)
	}
	if cfg.Logging.ConsoleLogger.Level != "normal" || cfg.Logging.FileLogger.Level != "none" {
		t.Errorf("logging defaults = %+v", cfg.Logging)
	}
	if !strings.HasSuffix(cfg.Logging.FileLogger.Destination, "-bmlc.log") {
		t.Errorf("file log destination = %q", cfg.Logging.FileLogger.Destination)
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	path := writeConfig(t, `version: 1
parser:
  preview_text_limit: 10
  inner_content_children: 5
  warn_custom_tags: false
output:
  format: YAML
  overwrite: true
logging:
  console:
    level: debug
`)

	cfg, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	if cfg.Parser.PreviewTextLimit != 10 || cfg.Parser.InnerContentChildren != 5 || cfg.Parser.WarnCustomTags {
		t.Errorf("parser = %+v", cfg.Parser)
	}
	if cfg.Output.Format != common.OutputFmtYaml || !cfg.Output.Overwrite {
		t.Errorf("output = %+v", cfg.Output)
	}
	if cfg.Logging.ConsoleLogger.Level != "debug" {
		t.Errorf("console level = %q", cfg.Logging.ConsoleLogger.Level)
	}
	// not mentioned in file, comes from template
	if cfg.Reporting.Destination == "" {
		t.Error("reporting destination should keep default")
	}
}

func TestLoadConfiguration_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"invalid yaml", "version: 1\nparser:\n  preview_text_limit: 1\n  invalid indent\n"},
		{"unknown field", "version: 1\nunknown_field: value\n"},
		{"wrong version", "version: 2\n"},
		{"negative limit", "version: 1\nparser:\n  preview_text_limit: -1\n"},
		{"bad format", "version: 1\noutput:\n  format: pdf\n"},
		{"bad log level", "version: 1\nlogging:\n  console:\n    level: loud\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfiguration(writeConfig(t, tt.content)); err == nil {
				t.Error("Expected error")
			}
		})
	}

	if _, err := LoadConfiguration("/nonexistent/config.yaml"); err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestLoadConfiguration_WithOptions(t *testing.T) {
	option := func(opts *gencfg.ProcessingOptions) {}
	if _, err := LoadConfiguration("", option); err != nil {
		t.Fatalf("LoadConfiguration() with options error = %v", err)
	}
}

func TestPrepare(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if _, err := unmarshalConfig(data, &Config{}, true); err != nil {
		t.Errorf("Prepared config is not valid: %v", err)
	}
}

func TestDump(t *testing.T) {
	cfg := &Config{
		Version: 1,
		Parser:  ParserConfig{PreviewTextLimit: 7, InnerContentChildren: 1},
		Output:  OutputConfig{Format: common.OutputFmtScene},
	}
	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	if !strings.Contains(string(data), "format: scene") {
		t.Errorf("Dump() should write format by name:\n%s", data)
	}

	back, err := unmarshalConfig(data, &Config{}, false)
	if err != nil {
		t.Fatalf("Dumped config cannot be loaded: %v", err)
	}
	if back.Output.Format != common.OutputFmtScene || back.Parser.PreviewTextLimit != 7 {
		t.Errorf("loaded back = %+v", back)
	}
}

func TestParserConfig_Options(t *testing.T) {
	conf := ParserConfig{PreviewTextLimit: 3, InnerContentChildren: 4, WarnCustomTags: true}
	var got markup.Options
	conf.Options()(&got)
	want := markup.Options{PreviewTextLimit: 3, InnerContentChildren: 4, WarnCustomTags: true}
	if got != want {
		t.Errorf("Options() = %+v, want %+v", got, want)
	}
}

func TestCleanFileName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"menu", "menu"},
		{"a/b", "ab"},
		{"...", badFileName},
		{"", badFileName},
	}
	for _, tt := range tests {
		if got := CleanFileName(tt.in); got != tt.want {
			t.Errorf("CleanFileName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
