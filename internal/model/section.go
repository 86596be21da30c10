package model

import "fmt"

// Section is the analysis level a metric is reported under.
type Section int

const (
	SectionRun Section = iota
	SectionReplicate
	SectionSample
)

// AllSections lists the sections in report order.
var AllSections = []Section{SectionRun, SectionReplicate, SectionSample}

// String returns the section marker used in the report, e.g. "RUN-LEVEL".
func (s Section) String() string {
	switch s {
	case SectionRun:
		return "RUN-LEVEL"
	case SectionReplicate:
		return "REPLICATE-LEVEL"
	case SectionSample:
		return "SAMPLE-LEVEL"
	default:
		return fmt.Sprintf("Section(%d)", int(s))
	}
}

// Tool identifies the producer of a metric file, and with it the file format.
type Tool int

const (
	ToolCutadapt Tool = iota
	ToolFlagstat
	ToolIdxstats
	ToolPicardInsert
	ToolMACS2PeakCount
	ToolFRiP
)

var toolNames = map[Tool]string{
	ToolCutadapt:       "cutadapt",
	ToolFlagstat:       "flagstat",
	ToolIdxstats:       "idxstats",
	ToolPicardInsert:   "picard_insert_metrics",
	ToolMACS2PeakCount: "macs2",
	ToolFRiP:           "frip",
}

// AllTools lists every tool in canonical order.
var AllTools = []Tool{
	ToolCutadapt,
	ToolFlagstat,
	ToolIdxstats,
	ToolPicardInsert,
	ToolMACS2PeakCount,
	ToolFRiP,
}

func (t Tool) String() string {
	if name, ok := toolNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Tool(%d)", int(t))
}

// ToolByName returns the Tool for the given config name, or ok=false.
func ToolByName(name string) (Tool, bool) {
	for t, n := range toolNames {
		if n == name {
			return t, true
		}
	}
	return 0, false
}

// Fields returns the output field names a tool contributes, in column order.
// Idxstats reports a single field named after the mitochondrial reference.
func (t Tool) Fields(mitoName string) []string {
	switch t {
	case ToolCutadapt:
		return []string{"totalPairs", "passTrimmedPairs", "passTrimmedBases"}
	case ToolFlagstat:
		return []string{"totalPairs", "mapped", "properlyPaired", "duplicates", "read1", "read2"}
	case ToolIdxstats:
		return []string{mitoName}
	case ToolPicardInsert:
		return []string{"insertMean", "insertStdDev", "insertMax"}
	case ToolMACS2PeakCount:
		return []string{"numPeaks"}
	case ToolFRiP:
		return []string{"fripScore"}
	}
	return nil
}
