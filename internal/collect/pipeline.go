// Package collect gathers per-sample QC metrics from a pipeline results
// directory into a sectioned report.
package collect

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/gyeh/pipelineqc/internal/config"
	"github.com/gyeh/pipelineqc/internal/discover"
	"github.com/gyeh/pipelineqc/internal/extract"
	"github.com/gyeh/pipelineqc/internal/model"
	"github.com/gyeh/pipelineqc/internal/parquetio"
	"github.com/gyeh/pipelineqc/internal/tsv"
)

// Run discovers and parses every metric file named by the configured specs
// and returns the assembled report. The first malformed file aborts the run.
func Run(log zerolog.Logger, cfg *config.Config) (*model.Report, *model.RunSummary, error) {
	start := time.Now()
	report := model.NewReport(cfg.ResultsDir, cfg.MitoName)
	summary := &model.RunSummary{
		ResultsDir:       cfg.ResultsDir,
		SamplesBySection: make(map[model.Section]int),
	}

	for _, spec := range cfg.Specs() {
		slog := log.With().
			Str("section", spec.Section.String()).
			Str("tool", spec.Tool.String()).
			Str("suffix", spec.FileSuffix).
			Logger()

		matches, err := discover.Find(spec.SearchDir, spec.FileSuffix)
		if err != nil {
			return nil, nil, &PhaseError{Phase: PhaseDiscover, Err: err}
		}
		if len(matches) == 0 {
			summary.SpecsEmpty++
			slog.Warn().Str("dir", spec.SearchDir).Msg("no files found for metric")
			continue
		}
		summary.FilesMatched += len(matches)

		if err := addSpec(report.Table(spec.Section), spec, matches, cfg.MitoName); err != nil {
			return nil, nil, &PhaseError{Phase: PhaseExtract, Err: err}
		}
		slog.Debug().Int("files", len(matches)).Msg("metric collected")
	}

	for _, s := range model.AllSections {
		summary.SamplesBySection[s] = len(report.Table(s).Samples)
	}
	summary.DurationTotal = time.Since(start)

	log.Info().
		Int("files", summary.FilesMatched).
		Int("empty_specs", summary.SpecsEmpty).
		Int("run_samples", summary.SamplesBySection[model.SectionRun]).
		Int("replicate_samples", summary.SamplesBySection[model.SectionReplicate]).
		Int("sample_samples", summary.SamplesBySection[model.SectionSample]).
		Str("duration", summary.DurationTotal.String()).
		Msg("collection complete")

	return report, summary, nil
}

// addSpec parses matches in order and stores their values under the spec's
// columns. The columns join the section header once, when the first file of
// the spec is processed. Values are keyed by column, so a sample missing a
// file for this spec renders NA rather than shifting later columns. Two
// files of the spec naming the same sample abort the run.
func addSpec(t *model.SectionTable, spec model.MetricSpec, matches []discover.Match, mitoName string) error {
	columns := spec.Columns(mitoName)
	seen := make(map[string]string, len(matches))
	for i, m := range matches {
		if i == 0 {
			t.Header = append(t.Header, columns...)
		}
		if prev, ok := seen[m.Sample]; ok {
			return &DuplicateSampleError{Tool: spec.Tool, Sample: m.Sample, First: prev, Second: m.Path}
		}
		seen[m.Sample] = m.Path

		fields, err := extract.Fields(spec.Tool, m.Path, mitoName)
		if err != nil {
			return &ParseError{Tool: spec.Tool, Path: m.Path, Err: err}
		}

		rec := t.Record(m.Sample)
		rec.Sources = append(rec.Sources, model.Source{Path: m.Path, Tool: spec.Tool})
		for j, f := range fields {
			rec.Values[columns[j]] = f.Value
		}
	}
	return nil
}

// Report runs the collection and writes the TSV report, plus the Parquet
// export when cfg.ParquetOut is set.
func Report(log zerolog.Logger, cfg *config.Config) (*model.RunSummary, error) {
	log.Info().Str("results_dir", cfg.ResultsDir).Str("mito", cfg.MitoName).Msg("starting collection")
	report, summary, err := Run(log, cfg)
	if err != nil {
		return nil, err
	}

	if err := tsv.WriteFile(cfg.OutFile, report); err != nil {
		return nil, &PhaseError{Phase: PhaseWrite, Err: err}
	}
	summary.OutFile = cfg.OutFile
	log.Info().Str("file", cfg.OutFile).Msg("report written")

	if cfg.ParquetOut != "" {
		rows := report.Rows()
		if err := parquetio.WriteRows(cfg.ParquetOut, rows); err != nil {
			return nil, &PhaseError{Phase: PhaseExport, Err: err}
		}
		summary.RowsExported = int64(len(rows))
		log.Info().Str("file", cfg.ParquetOut).Int("rows", len(rows)).Msg("parquet export written")
	}
	return summary, nil
}
