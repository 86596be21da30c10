package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/pipelineqc/internal/collect"
	"github.com/gyeh/pipelineqc/internal/db"
	"github.com/gyeh/pipelineqc/internal/exitcode"
	"github.com/gyeh/pipelineqc/internal/load"
	"github.com/gyeh/pipelineqc/internal/logging"
)

var loadCmd = &cobra.Command{
	Use:   "load RESULTS_DIR MITO_NAME",
	Short: "Collect QC metrics and load them into Postgres",
	Long: `Collect QC metrics and load them into Postgres under a new run id.
Pending schema migrations are applied first, so a separate migrate step is
optional.`,
	Args: cobra.ExactArgs(2),
	RunE: runLoad,
}

func init() {
	rootCmd.AddCommand(loadCmd)
}

func runLoad(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)
	ctx := context.Background()
	cfg.ResultsDir, cfg.MitoName = args[0], args[1]

	if err := loadConfigFile(); err != nil {
		log.Error().Err(err).Msg("config load failed")
		os.Exit(exitcode.UsageError)
	}
	if err := cfg.ValidateWithDSN(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	report, _, err := collect.Run(log, &cfg)
	if err != nil {
		var pe *collect.PhaseError
		if errors.As(err, &pe) && pe.Phase == collect.PhaseExtract {
			log.Error().Err(pe.Err).Str("phase", pe.Phase).Msg("collection failed")
			os.Exit(exitcode.ParseError)
		}
		log.Error().Err(err).Msg("collection failed")
		os.Exit(exitcode.FilesystemError)
	}

	pool, err := db.NewPool(ctx, cfg.DSN)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		os.Exit(exitcode.DBConnError)
	}
	defer pool.Close()

	if _, err := db.ApplyMigrations(ctx, pool, log); err != nil {
		log.Error().Err(err).Msg("schema migration failed")
		os.Exit(exitcode.LoadError)
	}

	res, err := load.Run(ctx, pool, log, report)
	if err != nil {
		log.Error().Err(err).Msg("load failed")
		os.Exit(exitcode.LoadError)
	}

	fmt.Printf("Load complete: run %s, %d values from %d files (%.1fs)\n",
		res.RunID, res.RowsLoaded, res.SourceFiles, res.Duration.Seconds())
	return nil
}
