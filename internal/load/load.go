// Package load stores a collected QC report in Postgres.
package load

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gyeh/pipelineqc/internal/db"
	"github.com/gyeh/pipelineqc/internal/model"
	"github.com/gyeh/pipelineqc/internal/normalize"
	embedsql "github.com/gyeh/pipelineqc/internal/sql"
)

const copyBufferSize = 1024

// Result holds metrics from a load.
type Result struct {
	RunID       uuid.UUID
	SourceFiles int
	RowsLoaded  int64
	Duration    time.Duration
}

// Run registers a new QC run, records the provenance of every source file
// and COPY-loads the report's long-format rows. A failed load leaves the run
// row marked "failed".
func Run(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, report *model.Report) (*Result, error) {
	start := time.Now()
	runID := uuid.New()

	if _, err := pool.Exec(ctx, embedsql.InsertRun, runID, report.ResultsDir, report.MitoName); err != nil {
		return nil, fmt.Errorf("register run: %w", err)
	}
	log = log.With().Str("run_id", runID.String()).Logger()
	log.Info().Msg("run registered")

	nFiles, err := recordSources(ctx, pool, runID, report)
	if err != nil {
		_ = UpdateStatus(ctx, pool, runID, "failed")
		return nil, err
	}

	rows, err := copyRows(ctx, pool, runID, report.Rows())
	if err != nil {
		_ = UpdateStatus(ctx, pool, runID, "failed")
		return nil, err
	}

	if err := UpdateStatus(ctx, pool, runID, "loaded"); err != nil {
		return nil, fmt.Errorf("mark run loaded: %w", err)
	}

	dur := time.Since(start)
	log.Info().
		Int("source_files", nFiles).
		Int64("rows_loaded", rows).
		Str("duration", dur.String()).
		Msg("load complete")

	return &Result{RunID: runID, SourceFiles: nFiles, RowsLoaded: rows, Duration: dur}, nil
}

// recordSources hashes and registers every file that contributed to the
// report in a single batch. It returns the number of rows inserted; a path
// queued twice counts once.
func recordSources(ctx context.Context, pool *pgxpool.Pool, runID uuid.UUID, report *model.Report) (int, error) {
	batch := &pgx.Batch{}
	for _, s := range model.AllSections {
		t := report.Table(s)
		for _, sample := range t.SampleNames() {
			for _, src := range t.Samples[sample].Sources {
				sha, err := normalize.FileHash(src.Path)
				if err != nil {
					return 0, fmt.Errorf("hash source %s: %w", src.Path, err)
				}
				batch.Queue(embedsql.InsertSourceFile, runID, s.String(), sample, src.Tool.String(), src.Path, sha)
			}
		}
	}
	if batch.Len() == 0 {
		return 0, nil
	}

	br := pool.SendBatch(ctx, batch)
	var inserted int64
	for i := 0; i < batch.Len(); i++ {
		tag, err := br.Exec()
		if err != nil {
			br.Close()
			return 0, fmt.Errorf("record source files: %w", err)
		}
		inserted += tag.RowsAffected()
	}
	if err := br.Close(); err != nil {
		return 0, fmt.Errorf("record source files: %w", err)
	}
	return int(inserted), nil
}

// copyRows streams rows through a channel-backed CopyFromSource into
// qc.metric_values.
func copyRows(ctx context.Context, pool *pgxpool.Pool, runID uuid.UUID, rows []model.MetricRow) (int64, error) {
	ch := make(chan model.MetricRow, copyBufferSize)
	done := make(chan struct{})

	go func() {
		defer close(ch)
		for _, r := range rows {
			select {
			case ch <- r:
			case <-done:
				return
			}
		}
	}()

	n, err := pool.CopyFrom(ctx,
		pgx.Identifier{"qc", "metric_values"},
		model.MetricColumns(),
		db.NewChannelSource(runID, ch),
	)
	close(done)
	if err != nil {
		return 0, fmt.Errorf("copy metric values: %w", err)
	}
	return n, nil
}

// UpdateStatus sets the status of a run.
func UpdateStatus(ctx context.Context, pool *pgxpool.Pool, runID uuid.UUID, status string) error {
	_, err := pool.Exec(ctx, embedsql.UpdateRunStatus, runID, status)
	return err
}

// SampleValues returns the loaded values of one sample in one section,
// keyed by column name.
func SampleValues(ctx context.Context, pool *pgxpool.Pool, runID uuid.UUID, section model.Section, sample string) (map[string]string, error) {
	rows, err := pool.Query(ctx,
		`SELECT column_name, value FROM qc.metric_values
		 WHERE run_id = $1 AND section = $2 AND sample = $3
		 ORDER BY ordinal`,
		runID, section.String(), sample,
	)
	if err != nil {
		return nil, fmt.Errorf("query sample values: %w", err)
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var col, val string
		if err := rows.Scan(&col, &val); err != nil {
			return nil, fmt.Errorf("scan sample value: %w", err)
		}
		out[col] = val
	}
	return out, rows.Err()
}

// Samples returns the distinct sample names loaded for a run and section.
func Samples(ctx context.Context, pool *pgxpool.Pool, runID uuid.UUID, section model.Section) ([]string, error) {
	rows, err := pool.Query(ctx,
		"SELECT DISTINCT sample FROM qc.metric_values WHERE run_id = $1 AND section = $2",
		runID, section.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("query samples: %w", err)
	}
	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("collect samples: %w", err)
	}
	sort.Strings(names)
	return names, nil
}
