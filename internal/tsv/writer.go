// Package tsv renders a collected report as a sectioned, tab-delimited file.
package tsv

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gyeh/pipelineqc/internal/model"
)

// Write renders every non-empty section of r to w: a "## <SECTION>" marker,
// the header row, one row per sample in name order, then a blank line.
func Write(w io.Writer, r *model.Report) error {
	bw := bufio.NewWriter(w)
	for _, s := range model.AllSections {
		t := r.Table(s)
		if t == nil || len(t.Samples) == 0 {
			continue
		}
		fmt.Fprintf(bw, "## %s\n", s)
		bw.WriteString(strings.Join(append([]string{"sample"}, t.Header...), "\t"))
		bw.WriteByte('\n')
		for _, sample := range t.SampleNames() {
			bw.WriteString(strings.Join(t.Row(sample), "\t"))
			bw.WriteByte('\n')
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// WriteFile writes r to path, creating the parent directory if missing.
// The report is written to a temporary file in the same directory and
// renamed into place, so a failed run never leaves a partial report.
func WriteFile(path string, r *model.Report) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp output: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err := Write(tmp, r); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if err := tmp.Chmod(0644); err != nil {
		return fmt.Errorf("chmod report: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close report: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename report into place: %w", err)
	}
	return nil
}
