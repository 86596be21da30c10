package model

import "path/filepath"

// MetricSpec describes one class of metric file: where to look, how to
// recognise it, which parser reads it, and where its columns land.
type MetricSpec struct {
	Section      Section
	Tool         Tool
	HeaderPrefix string // e.g. "unfiltered"; empty for none
	SearchDir    string
	FileSuffix   string // e.g. ".mkD.sorted.bam.flagstat"
}

// Columns returns the report column names for this spec.
func (s MetricSpec) Columns(mitoName string) []string {
	fields := s.Tool.Fields(mitoName)
	cols := make([]string, len(fields))
	for i, f := range fields {
		if s.HeaderPrefix == "" {
			cols[i] = f
		} else {
			cols[i] = s.HeaderPrefix + " " + f
		}
	}
	return cols
}

// PipelineSpecs returns the ordered spec table for an ATAC-seq paired-end
// results directory. The order fixes the column order of the report.
func PipelineSpecs(resultsDir string) []MetricSpec {
	replicateDir := filepath.Join(resultsDir, "align", "replicateLevel")
	sampleDir := filepath.Join(resultsDir, "align", "sampleLevel")

	return []MetricSpec{
		{SectionRun, ToolCutadapt, "", resultsDir, ".cutadapt.log"},
		{SectionRun, ToolFlagstat, "unfiltered", resultsDir, ".mkD.sorted.bam.flagstat"},
		{SectionRun, ToolIdxstats, "unfiltered", resultsDir, ".mkD.sorted.bam.idxstats"},
		{SectionRun, ToolPicardInsert, "unfiltered", resultsDir, ".mkD.CollectMultipleMetrics.insert_size_metrics"},
		{SectionRun, ToolFlagstat, "filter", resultsDir, ".clN.sorted.bam.flagstat"},
		{SectionRun, ToolIdxstats, "filter", resultsDir, ".clN.sorted.bam.idxstats"},

		{SectionReplicate, ToolFlagstat, "", replicateDir, ".RpL.rmD.sorted.bam.flagstat"},
		{SectionReplicate, ToolMACS2PeakCount, "", replicateDir, "_peaks.broadPeak"},
		{SectionReplicate, ToolFRiP, "", replicateDir, "_peaks.frip.txt"},

		{SectionSample, ToolFlagstat, "", sampleDir, ".SmL.rmD.sorted.bam.flagstat"},
		{SectionSample, ToolMACS2PeakCount, "", sampleDir, "_peaks.broadPeak"},
		{SectionSample, ToolFRiP, "", sampleDir, "_peaks.frip.txt"},
	}
}

// FilterSpecs keeps only specs whose tool is in tools. An empty tools list
// keeps everything.
func FilterSpecs(specs []MetricSpec, tools []Tool) []MetricSpec {
	if len(tools) == 0 {
		return specs
	}
	keep := make(map[Tool]bool, len(tools))
	for _, t := range tools {
		keep[t] = true
	}
	var out []MetricSpec
	for _, s := range specs {
		if keep[s.Tool] {
			out = append(out, s)
		}
	}
	return out
}
