package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gyeh/pipelineqc/internal/discover"
	"github.com/gyeh/pipelineqc/internal/exitcode"
	"github.com/gyeh/pipelineqc/internal/logging"
	"github.com/gyeh/pipelineqc/internal/normalize"
)

var planHashes bool

var planCmd = &cobra.Command{
	Use:   "plan RESULTS_DIR",
	Short: "Dry-run: list the metric files that would be collected (no parsing, no writes)",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().BoolVar(&planHashes, "sha256", false, "Print the SHA-256 of every matched file")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)
	cfg.ResultsDir = args[0]

	if err := loadConfigFile(); err != nil {
		log.Error().Err(err).Msg("config load failed")
		os.Exit(exitcode.UsageError)
	}
	if err := cfg.ValidateResultsDir(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	fmt.Println("=== pipelineqc plan ===")
	fmt.Printf("Results: %s\n\n", cfg.ResultsDir)

	total := 0
	for _, spec := range cfg.Specs() {
		matches, err := discover.Find(spec.SearchDir, spec.FileSuffix)
		if err != nil {
			log.Error().Err(err).Str("dir", spec.SearchDir).Msg("discovery failed")
			os.Exit(exitcode.FilesystemError)
		}
		total += len(matches)

		label := spec.Tool.String()
		if spec.HeaderPrefix != "" {
			label += " (" + spec.HeaderPrefix + ")"
		}
		fmt.Printf("%-16s %-28s *%s: %d file(s)\n", spec.Section, label, spec.FileSuffix, len(matches))
		for _, m := range matches {
			rel, err := filepath.Rel(cfg.ResultsDir, m.Path)
			if err != nil {
				rel = m.Path
			}
			if !planHashes {
				fmt.Printf("    %-24s %s\n", m.Sample, rel)
				continue
			}
			sha, err := normalize.FileHash(m.Path)
			if err != nil {
				log.Error().Err(err).Str("file", m.Path).Msg("failed to hash file")
				os.Exit(exitcode.FilesystemError)
			}
			fmt.Printf("    %-24s %s  %s\n", m.Sample, sha, rel)
		}
	}
	fmt.Printf("\nTotal matched files: %d\n", total)
	return nil
}
