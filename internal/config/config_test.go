package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gyeh/pipelineqc/internal/model"
)

func TestLoadFromFile_Valid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	os.WriteFile(path, []byte("tools:\n  - flagstat\n  - macs2\n"), 0644)

	var c Config
	if err := c.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if len(c.Tools) != 2 {
		t.Fatalf("expected 2 tools, got %d", len(c.Tools))
	}
	got := c.SelectedTools()
	if got[0] != model.ToolFlagstat || got[1] != model.ToolMACS2PeakCount {
		t.Errorf("unexpected tools: %v", got)
	}
}

func TestLoadFromFile_UnknownTool(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	os.WriteFile(path, []byte("tools:\n  - flagstat\n  - fastqc\n"), 0644)

	var c Config
	err := c.LoadFromFile(path)
	if err == nil {
		t.Fatal("expected error for unknown tool")
	}
}

func TestLoadFromFile_EmptyDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	os.WriteFile(path, []byte("tools: []\n"), 0644)

	var c Config
	if err := c.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if len(c.Tools) != 6 {
		t.Errorf("expected 6 default tools, got %d: %v", len(c.Tools), c.Tools)
	}
}

func TestLoadFromFile_CommandLineWins(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	os.WriteFile(path, []byte("parquet_out: qc.parquet\n"), 0644)

	var c Config
	if err := c.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if c.ParquetOut != "qc.parquet" {
		t.Errorf("expected parquet_out from file, got %q", c.ParquetOut)
	}

	c = Config{ParquetOut: "cli.parquet"}
	if err := c.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if c.ParquetOut != "cli.parquet" {
		t.Errorf("command-line parquet path overridden: %q", c.ParquetOut)
	}
}

func TestLoadFromFile_UnknownKeyIgnored(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	os.WriteFile(path, []byte("mito_name: MT\n"), 0644)

	c := Config{MitoName: "chrM"}
	if err := c.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if c.MitoName != "chrM" {
		t.Errorf("mito name must come from the command line, got %q", c.MitoName)
	}
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	var c Config
	err := c.LoadFromFile("/nonexistent/config.yaml")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestSpecs_FilteredByTools(t *testing.T) {
	c := Config{ResultsDir: "/results", Tools: []string{"frip"}}
	specs := c.Specs()
	if len(specs) != 2 {
		t.Fatalf("expected 2 frip specs, got %d", len(specs))
	}
	for _, s := range specs {
		if s.Tool != model.ToolFRiP {
			t.Errorf("unexpected tool %s", s.Tool)
		}
	}

	c.Tools = nil
	if got := len(c.Specs()); got != len(model.PipelineSpecs("/results")) {
		t.Errorf("expected all specs with no tool filter, got %d", got)
	}
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f.txt")
	os.WriteFile(file, []byte("x"), 0644)

	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"ok", Config{ResultsDir: dir, OutFile: "out.tsv", MitoName: "chrM"}, false},
		{"no results dir", Config{OutFile: "out.tsv", MitoName: "chrM"}, true},
		{"results dir missing", Config{ResultsDir: filepath.Join(dir, "nope"), OutFile: "o", MitoName: "chrM"}, true},
		{"results dir is file", Config{ResultsDir: file, OutFile: "o", MitoName: "chrM"}, true},
		{"no out file", Config{ResultsDir: dir, MitoName: "chrM"}, true},
		{"no mito", Config{ResultsDir: dir, OutFile: "o"}, true},
	}
	for _, tt := range tests {
		err := tt.cfg.Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: Validate() err = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}

func TestValidateWithDSN(t *testing.T) {
	dir := t.TempDir()
	c := Config{ResultsDir: dir, MitoName: "chrM"}
	if err := c.ValidateWithDSN(); err == nil {
		t.Fatal("expected error without DSN")
	}
	c.DSN = "postgresql://localhost/qc"
	if err := c.ValidateWithDSN(); err != nil {
		t.Fatalf("ValidateWithDSN: %v", err)
	}
}
