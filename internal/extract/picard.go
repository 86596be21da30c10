package extract

import (
	"bufio"
	"io"
	"strings"
)

// Picard InsertSizeMetrics columns reported in the QC table.
const (
	PicardMeanInsertSize    = "MEAN_INSERT_SIZE"
	PicardStandardDeviation = "STANDARD_DEVIATION"
	PicardMaxInsertSize     = "MAX_INSERT_SIZE"
)

var requiredInsertColumns = []string{PicardMeanInsertSize, PicardStandardDeviation, PicardMaxInsertSize}

// InsertMetrics maps a Picard metrics column name to its value, as written.
type InsertMetrics map[string]string

// ParseInsertMetrics reads a Picard CollectInsertSizeMetrics report. The
// line following "## METRICS CLASS" is the column header and the line after
// it the first (primary pair orientation) values row. The histogram section
// that follows is ignored.
func ParseInsertMetrics(r io.Reader) (InsertMetrics, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)

	var header, values []string
	state := 0 // 0: seeking class line, 1: header next, 2: values next
	for values == nil && sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		switch state {
		case 0:
			if strings.HasPrefix(line, "## METRICS CLASS") {
				state = 1
			}
		case 1:
			if strings.TrimSpace(line) == "" {
				continue
			}
			header = strings.Split(line, "\t")
			state = 2
		case 2:
			if strings.TrimSpace(line) == "" {
				return nil, formatErr("metrics header has no values row")
			}
			values = strings.Split(line, "\t")
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	switch {
	case state == 0:
		return nil, formatErr("no '## METRICS CLASS' line")
	case header == nil:
		return nil, formatErr("no metrics header row")
	case values == nil:
		return nil, formatErr("metrics header has no values row")
	}

	m := make(InsertMetrics, len(header))
	for i, name := range header {
		if i < len(values) {
			m[name] = strings.TrimSpace(values[i])
		}
	}
	for _, col := range requiredInsertColumns {
		if v, ok := m[col]; !ok || v == "" {
			return nil, formatErr("missing %s column", col)
		}
	}
	return m, nil
}

// ParseInsertMetricsFile parses the Picard report at path.
func ParseInsertMetricsFile(path string) (InsertMetrics, error) {
	return parseFile(path, ParseInsertMetrics)
}
