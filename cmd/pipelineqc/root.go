package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/pipelineqc/internal/collect"
	"github.com/gyeh/pipelineqc/internal/config"
	"github.com/gyeh/pipelineqc/internal/exitcode"
	"github.com/gyeh/pipelineqc/internal/logging"
	"github.com/gyeh/pipelineqc/internal/model"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "pipelineqc RESULTS_DIR OUT_FILE MITO_NAME",
	Short: "ATAC-seq pipeline QC metrics → tab-delimited summary",
	Long: "Collects QC metrics (cutadapt, samtools flagstat/idxstats, Picard insert size, " +
		"MACS2 peak counts, FRiP) from a pipeline results directory into one tab-delimited " +
		"report organised by run, replicate and sample level.",
	Example: "  pipelineqc results/ results/qc/summary.tsv chrM",
	Args:    cobra.ExactArgs(3),
	RunE:    runReport,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.LogFormat, "log-format", "text", "Log format: text or json")
	pf.StringVar(&cfg.ConfigFile, "config", "", "Optional YAML config file (tools, parquet_out)")
	pf.StringVar(&cfg.DSN, "dsn", os.Getenv("PIPELINEQC_DB_URL"), "Postgres connection string (or set PIPELINEQC_DB_URL)")

	rootCmd.Flags().StringVar(&cfg.ParquetOut, "parquet", "", "Also write the report as long-format Parquet to this path")
	rootCmd.SilenceUsage = true
}

// loadConfigFile merges --config into cfg. Without one, cfg.Tools stays
// empty and every tool is collected.
func loadConfigFile() error {
	if cfg.ConfigFile == "" {
		return nil
	}
	return cfg.LoadFromFile(cfg.ConfigFile)
}

func runReport(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)
	cfg.ResultsDir, cfg.OutFile, cfg.MitoName = args[0], args[1], args[2]

	if err := loadConfigFile(); err != nil {
		log.Error().Err(err).Msg("config load failed")
		os.Exit(exitcode.UsageError)
	}
	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	summary, err := collect.Report(log, &cfg)
	if err != nil {
		var pe *collect.PhaseError
		if errors.As(err, &pe) {
			log.Error().Err(pe.Err).Str("phase", pe.Phase).Msg("qc report failed")
			if pe.Phase == collect.PhaseExtract {
				os.Exit(exitcode.ParseError)
			}
			os.Exit(exitcode.FilesystemError)
		}
		log.Error().Err(err).Msg("qc report failed")
		os.Exit(exitcode.FilesystemError)
	}

	fmt.Printf("QC report complete: %d files, %d run / %d replicate / %d sample rows → %s (%.1fs)\n",
		summary.FilesMatched,
		summary.SamplesBySection[model.SectionRun],
		summary.SamplesBySection[model.SectionReplicate],
		summary.SamplesBySection[model.SectionSample],
		summary.OutFile, summary.DurationTotal.Seconds())
	return nil
}
