package extract

import (
	"fmt"
	"strconv"

	"github.com/gyeh/pipelineqc/internal/model"
)

// Fields parses the file at path with the parser for tool and returns its
// formatted report fields, named as in tool.Fields(mitoName) and in that
// order. Idxstats files without the mitochondrial reference yield no fields.
func Fields(tool model.Tool, path, mitoName string) ([]model.Field, error) {
	names := tool.Fields(mitoName)
	var values []string

	switch tool {
	case model.ToolCutadapt:
		st, err := ParseCutadaptFile(path)
		if err != nil {
			return nil, err
		}
		values = []string{
			strconv.FormatInt(st.TotalPairs, 10),
			strconv.FormatInt(st.PassTrimmedPairs, 10),
			strconv.FormatInt(st.PassTrimmedBases, 10),
		}

	case model.ToolFlagstat:
		fs, err := ParseFlagstatFile(path)
		if err != nil {
			return nil, err
		}
		values = []string{
			strconv.FormatInt(fs.TotalPairs(), 10),
			fs.Percent("mapped"),
			fs.Percent("properly paired"),
			fs.Percent("duplicates"),
			fs.Percent("read1"),
			fs.Percent("read2"),
		}

	case model.ToolIdxstats:
		st, err := ParseIdxstatsFile(path)
		if err != nil {
			return nil, err
		}
		pct, ok := st.MitoPercent(mitoName)
		if !ok {
			return nil, nil
		}
		values = []string{pct}

	case model.ToolPicardInsert:
		m, err := ParseInsertMetricsFile(path)
		if err != nil {
			return nil, err
		}
		values = []string{m[PicardMeanInsertSize], m[PicardStandardDeviation], m[PicardMaxInsertSize]}

	case model.ToolMACS2PeakCount:
		n, err := CountLinesFile(path)
		if err != nil {
			return nil, err
		}
		values = []string{strconv.FormatInt(n, 10)}

	case model.ToolFRiP:
		s, err := FirstLineFile(path)
		if err != nil {
			return nil, err
		}
		values = []string{s}

	default:
		return nil, fmt.Errorf("no parser for %s", tool)
	}

	fields := make([]model.Field, len(names))
	for i, name := range names {
		fields[i] = model.Field{Name: name, Value: values[i]}
	}
	return fields, nil
}
