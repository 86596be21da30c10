package extract

import (
	"bufio"
	"io"
	"regexp"
	"strings"

	"github.com/gyeh/pipelineqc/internal/normalize"
)

// FlagstatCount is the QC-passed and QC-failed read counts of one
// samtools flagstat line.
type FlagstatCount struct {
	Pass int64
	Fail int64
}

// Flagstat maps a flagstat description ("in total", "mapped", ...) to its counts.
type Flagstat map[string]FlagstatCount

// RequiredFlagstatKeys are the descriptions every report must carry.
var RequiredFlagstatKeys = []string{"in total", "mapped", "properly paired", "duplicates", "read1", "read2"}

var flagstatLine = regexp.MustCompile(`^(\d+) \+ (\d+) (.+)$`)

// ParseFlagstat reads a samtools flagstat report. Parenthesised annotations
// are dropped from descriptions, so "mapped (95.00% : N/A)" is keyed as
// "mapped" and "in total (QC-passed reads + QC-failed reads)" as "in total".
func ParseFlagstat(r io.Reader) (Flagstat, error) {
	fs := make(Flagstat)
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		m := flagstatLine.FindStringSubmatch(line)
		if m == nil {
			return nil, formatErr("line %d: %q is not '<count> + <count> <description>'", lineNo, line)
		}
		pass, err := normalize.ParseCount(m[1])
		if err != nil {
			return nil, formatErr("line %d: %v", lineNo, err)
		}
		fail, err := normalize.ParseCount(m[2])
		if err != nil {
			return nil, formatErr("line %d: %v", lineNo, err)
		}
		desc := m[3]
		if i := strings.Index(desc, "("); i >= 0 {
			desc = desc[:i]
		}
		desc = strings.TrimSpace(desc)
		// Later samtools versions repeat descriptions (e.g. "primary mapped");
		// the first occurrence wins.
		if _, ok := fs[desc]; !ok {
			fs[desc] = FlagstatCount{Pass: pass, Fail: fail}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	for _, k := range RequiredFlagstatKeys {
		if _, ok := fs[k]; !ok {
			return nil, formatErr("missing %q line", k)
		}
	}
	return fs, nil
}

// ParseFlagstatFile parses the flagstat report at path.
func ParseFlagstatFile(path string) (Flagstat, error) {
	return parseFile(path, ParseFlagstat)
}

// TotalPairs is half the QC-passed "in total" read count.
func (f Flagstat) TotalPairs() int64 {
	return f["in total"].Pass / 2
}

// Percent renders the QC-passed count of key as a percentage of the
// QC-passed total, e.g. "950 (95%)".
func (f Flagstat) Percent(key string) string {
	return PercentToStr(f[key].Pass, f["in total"].Pass, 2, true)
}
