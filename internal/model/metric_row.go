package model

// MetricRow is the long-format representation of a single report cell,
// used for the Parquet export and the database load.
type MetricRow struct {
	Section string `parquet:"section"`
	Sample  string `parquet:"sample"`
	Column  string `parquet:"column"`
	Value   string `parquet:"value"`
	Ordinal int32  `parquet:"ordinal"`
}

// MetricColumns returns the ordered column names for COPY into qc.metric_values.
func MetricColumns() []string {
	return []string{
		"run_id",
		"section",
		"sample",
		"column_name",
		"value",
		"ordinal",
	}
}

// Rows flattens the report into long format: sections in report order,
// samples sorted, columns in header order. Missing cells are included with
// MissingValue so the table can be rebuilt from the rows alone.
func (r *Report) Rows() []MetricRow {
	var rows []MetricRow
	for _, s := range AllSections {
		t := r.Tables[s]
		if t == nil {
			continue
		}
		for _, sample := range t.SampleNames() {
			rec := t.Samples[sample]
			for i, col := range t.Header {
				rows = append(rows, MetricRow{
					Section: s.String(),
					Sample:  sample,
					Column:  col,
					Value:   rec.Value(col),
					Ordinal: int32(i),
				})
			}
		}
	}
	return rows
}
