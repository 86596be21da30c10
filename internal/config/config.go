package config

import (
	"fmt"
	"os"

	"github.com/gyeh/pipelineqc/internal/model"

	"gopkg.in/yaml.v3"
)

// Config holds all runtime configuration for a pipelineqc run.
type Config struct {
	ResultsDir string
	OutFile    string
	MitoName   string // mitochondrial reference name, e.g. "chrM"
	LogFormat  string // "text" or "json"
	ConfigFile string
	ParquetOut string   // optional long-format Parquet export path
	DSN        string   // Postgres connection string for load/migrate
	Tools      []string // subset of model.AllTools to collect; empty means all
}

// yamlConfig is the on-disk YAML structure.
type yamlConfig struct {
	Tools      []string `yaml:"tools"`
	ParquetOut string   `yaml:"parquet_out"`
}

// LoadFromFile reads a YAML config file and merges its values into Config.
// Values already set on the command line take precedence.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	c.Tools = yc.Tools
	if c.ParquetOut == "" {
		c.ParquetOut = yc.ParquetOut
	}
	return c.validateTools()
}

// validateTools checks that every entry in Tools is a known tool name.
// If Tools is empty, it defaults to all model.AllTools names.
func (c *Config) validateTools() error {
	if len(c.Tools) == 0 {
		c.Tools = make([]string, len(model.AllTools))
		for i, t := range model.AllTools {
			c.Tools[i] = t.String()
		}
		return nil
	}
	for _, name := range c.Tools {
		if _, ok := model.ToolByName(name); !ok {
			return fmt.Errorf("unknown tool %q in config", name)
		}
	}
	return nil
}

// SelectedTools returns Tools as model.Tool values. Unknown names are
// skipped; they are rejected earlier by LoadFromFile.
func (c *Config) SelectedTools() []model.Tool {
	var out []model.Tool
	for _, name := range c.Tools {
		if t, ok := model.ToolByName(name); ok {
			out = append(out, t)
		}
	}
	return out
}

// Specs returns the metric specs for ResultsDir restricted to the selected tools.
func (c *Config) Specs() []model.MetricSpec {
	return model.FilterSpecs(model.PipelineSpecs(c.ResultsDir), c.SelectedTools())
}

// ValidateResultsDir checks that ResultsDir is set and is a directory.
func (c *Config) ValidateResultsDir() error {
	if c.ResultsDir == "" {
		return fmt.Errorf("results directory is required")
	}
	st, err := os.Stat(c.ResultsDir)
	if err != nil {
		return fmt.Errorf("results directory not accessible: %w", err)
	}
	if !st.IsDir() {
		return fmt.Errorf("results directory %s is not a directory", c.ResultsDir)
	}
	return nil
}

// Validate checks required fields for a report run.
func (c *Config) Validate() error {
	if err := c.ValidateResultsDir(); err != nil {
		return err
	}
	if c.OutFile == "" {
		return fmt.Errorf("output file is required")
	}
	if c.MitoName == "" {
		return fmt.Errorf("mitochondrial reference name is required")
	}
	return nil
}

// ValidateWithDSN checks the fields needed to load into the database.
func (c *Config) ValidateWithDSN() error {
	if err := c.ValidateResultsDir(); err != nil {
		return err
	}
	if c.MitoName == "" {
		return fmt.Errorf("mitochondrial reference name is required")
	}
	if c.DSN == "" {
		return fmt.Errorf("--dsn or PIPELINEQC_DB_URL is required")
	}
	return nil
}
