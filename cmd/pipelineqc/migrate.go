package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gyeh/pipelineqc/internal/db"
	"github.com/gyeh/pipelineqc/internal/exitcode"
	"github.com/gyeh/pipelineqc/internal/logging"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or upgrade the qc schema in Postgres",
	Args:  cobra.NoArgs,
	RunE:  runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)
	ctx := context.Background()

	if cfg.DSN == "" {
		log.Error().Msg("--dsn or PIPELINEQC_DB_URL is required")
		os.Exit(exitcode.UsageError)
	}

	pool, err := db.NewPool(ctx, cfg.DSN)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		os.Exit(exitcode.DBConnError)
	}
	defer pool.Close()

	ran, err := db.ApplyMigrations(ctx, pool, log)
	if err != nil {
		log.Error().Err(err).Strs("applied", ran).Msg("migration failed")
		os.Exit(exitcode.LoadError)
	}

	if len(ran) == 0 {
		fmt.Printf("Schema %s already up to date\n", db.Schema)
		return nil
	}
	fmt.Printf("Schema %s: applied %d migration(s): %s\n", db.Schema, len(ran), strings.Join(ran, ", "))
	return nil
}
