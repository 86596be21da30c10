package model

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestPipelineSpecs(t *testing.T) {
	specs := PipelineSpecs("/results")
	if len(specs) != 12 {
		t.Fatalf("expected 12 specs, got %d", len(specs))
	}
	counts := map[Section]int{}
	for _, s := range specs {
		counts[s.Section]++
	}
	if counts[SectionRun] != 6 || counts[SectionReplicate] != 3 || counts[SectionSample] != 3 {
		t.Errorf("unexpected section split: %v", counts)
	}
	if got := specs[6].SearchDir; got != filepath.Join("/results", "align", "replicateLevel") {
		t.Errorf("replicate search dir: %s", got)
	}
	// Sections appear in report order so headers fill section by section.
	for i := 1; i < len(specs); i++ {
		if specs[i].Section < specs[i-1].Section {
			t.Errorf("spec %d out of section order", i)
		}
	}
}

func TestMetricSpec_Columns(t *testing.T) {
	withPrefix := MetricSpec{Tool: ToolIdxstats, HeaderPrefix: "unfiltered"}
	if got := withPrefix.Columns("chrM"); len(got) != 1 || got[0] != "unfiltered chrM" {
		t.Errorf("unexpected columns %v", got)
	}
	bare := MetricSpec{Tool: ToolCutadapt}
	if got := strings.Join(bare.Columns("chrM"), ","); got != "totalPairs,passTrimmedPairs,passTrimmedBases" {
		t.Errorf("unexpected columns %s", got)
	}
}

func TestToolByName(t *testing.T) {
	for _, tool := range AllTools {
		got, ok := ToolByName(tool.String())
		if !ok || got != tool {
			t.Errorf("ToolByName(%q) = %v, %v", tool.String(), got, ok)
		}
	}
	if _, ok := ToolByName("fastqc"); ok {
		t.Error("expected unknown tool")
	}
}

func TestSectionTable_Row(t *testing.T) {
	tbl := NewSectionTable(SectionSample)
	tbl.Header = []string{"numPeaks", "fripScore"}
	tbl.Record("WT").Values["fripScore"] = "0.3"

	row := tbl.Row("WT")
	want := []string{"WT", MissingValue, "0.3"}
	if strings.Join(row, "\t") != strings.Join(want, "\t") {
		t.Errorf("Row = %v, want %v", row, want)
	}
	if got := tbl.Row("absent"); len(got) != 3 || got[1] != MissingValue {
		t.Errorf("Row for unknown sample = %v", got)
	}
}

func TestReport_Rows(t *testing.T) {
	r := NewReport("/results", "chrM")
	smp := r.Table(SectionSample)
	smp.Header = []string{"numPeaks"}
	smp.Record("b").Values["numPeaks"] = "2"
	smp.Record("a").Values["numPeaks"] = "1"

	rows := r.Rows()
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Sample != "a" || rows[0].Section != "SAMPLE-LEVEL" || rows[1].Value != "2" {
		t.Errorf("unexpected rows %+v", rows)
	}
	if r.NumSamples() != 2 {
		t.Errorf("NumSamples = %d", r.NumSamples())
	}
}
