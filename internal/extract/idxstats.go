package extract

import (
	"bufio"
	"io"
	"strings"

	"github.com/gyeh/pipelineqc/internal/normalize"
)

// RefCount is the length and mapped read count of one reference sequence.
type RefCount struct {
	Length int64
	Mapped int64
}

// Idxstats maps reference sequence name to its counts.
type Idxstats map[string]RefCount

// ParseIdxstats reads samtools idxstats output: tab-separated
// name, length, mapped and unmapped counts, one reference per line.
func ParseIdxstats(r io.Reader) (Idxstats, error) {
	st := make(Idxstats)
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		cols := strings.Split(line, "\t")
		if len(cols) != 4 {
			return nil, formatErr("line %d: expected 4 tab-separated columns, got %d", lineNo, len(cols))
		}
		length, err := normalize.ParseCount(cols[1])
		if err != nil {
			return nil, formatErr("line %d length: %v", lineNo, err)
		}
		mapped, err := normalize.ParseCount(cols[2])
		if err != nil {
			return nil, formatErr("line %d mapped: %v", lineNo, err)
		}
		if _, err := normalize.ParseCount(cols[3]); err != nil {
			return nil, formatErr("line %d unmapped: %v", lineNo, err)
		}
		st[cols[0]] = RefCount{Length: length, Mapped: mapped}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(st) == 0 {
		return nil, formatErr("no reference lines")
	}
	return st, nil
}

// ParseIdxstatsFile parses the idxstats output at path.
func ParseIdxstatsFile(path string) (Idxstats, error) {
	return parseFile(path, ParseIdxstats)
}

// TotalMapped sums mapped reads over every reference.
func (s Idxstats) TotalMapped() int64 {
	var n int64
	for _, rc := range s {
		n += rc.Mapped
	}
	return n
}

// MitoPercent renders reads mapped to the mitochondrial reference as a
// percentage of all mapped reads, e.g. "100 (10%)". ok is false when the
// reference is not present.
func (s Idxstats) MitoPercent(mitoName string) (string, bool) {
	rc, ok := s[mitoName]
	if !ok {
		return "", false
	}
	return PercentToStr(rc.Mapped, s.TotalMapped(), 2, true), true
}
