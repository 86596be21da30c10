package model

import "time"

// RunSummary captures metrics from a single collection run.
type RunSummary struct {
	ResultsDir       string
	OutFile          string
	FilesMatched     int
	SpecsEmpty       int
	SamplesBySection map[Section]int
	RowsExported     int64
	DurationTotal    time.Duration
}
