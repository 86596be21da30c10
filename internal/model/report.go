package model

import "sort"

// MissingValue is rendered for a column a sample has no value for.
const MissingValue = "NA"

// Field is one named, already formatted metric value.
type Field struct {
	Name  string
	Value string
}

// SampleRecord holds the metric values collected for one sample in one
// section, keyed by column name.
type SampleRecord struct {
	Name   string
	Values map[string]string
	// Sources lists the files that contributed values, in processing order.
	Sources []Source
}

// Source identifies a metric file that contributed to a record.
type Source struct {
	Path string
	Tool Tool
}

// Value returns the value for column, or MissingValue.
func (r *SampleRecord) Value(column string) string {
	if v, ok := r.Values[column]; ok {
		return v
	}
	return MissingValue
}

// SectionTable is the header and sample records of one report section.
type SectionTable struct {
	Section Section
	// Header is the ordered column list, excluding the leading "sample" column.
	Header  []string
	Samples map[string]*SampleRecord
}

// NewSectionTable returns an empty table for s.
func NewSectionTable(s Section) *SectionTable {
	return &SectionTable{Section: s, Samples: make(map[string]*SampleRecord)}
}

// Record returns the record for sample, creating it if needed.
func (t *SectionTable) Record(sample string) *SampleRecord {
	rec, ok := t.Samples[sample]
	if !ok {
		rec = &SampleRecord{Name: sample, Values: make(map[string]string)}
		t.Samples[sample] = rec
	}
	return rec
}

// SampleNames returns sample names in lexical order.
func (t *SectionTable) SampleNames() []string {
	names := make([]string, 0, len(t.Samples))
	for name := range t.Samples {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Row renders the record for sample against the header: the sample name
// followed by one value per header column.
func (t *SectionTable) Row(sample string) []string {
	rec := t.Samples[sample]
	row := make([]string, 0, len(t.Header)+1)
	row = append(row, sample)
	for _, col := range t.Header {
		if rec == nil {
			row = append(row, MissingValue)
			continue
		}
		row = append(row, rec.Value(col))
	}
	return row
}

// Report is the collected QC tables for a results directory.
type Report struct {
	ResultsDir string
	MitoName   string
	Tables     map[Section]*SectionTable
}

// NewReport returns a report with an empty table for every section.
func NewReport(resultsDir, mitoName string) *Report {
	r := &Report{
		ResultsDir: resultsDir,
		MitoName:   mitoName,
		Tables:     make(map[Section]*SectionTable, len(AllSections)),
	}
	for _, s := range AllSections {
		r.Tables[s] = NewSectionTable(s)
	}
	return r
}

// Table returns the table for s.
func (r *Report) Table(s Section) *SectionTable {
	return r.Tables[s]
}

// NumSamples returns the total number of sample records across sections.
func (r *Report) NumSamples() int {
	n := 0
	for _, t := range r.Tables {
		n += len(t.Samples)
	}
	return n
}
