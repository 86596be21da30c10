package extract

import (
	"bufio"
	"io"
	"regexp"

	"github.com/gyeh/pipelineqc/internal/normalize"
)

// CutadaptStats holds the paired-end summary counts of a cutadapt report.
type CutadaptStats struct {
	TotalPairs       int64
	PassTrimmedPairs int64
	PassTrimmedBases int64
}

var (
	cutadaptTotalPairs = regexp.MustCompile(`^\s*Total read pairs processed:\s+([\d,]+)`)
	cutadaptPassPairs  = regexp.MustCompile(`^\s*Pairs written \(passing filters\):\s+([\d,]+)`)
	cutadaptPassBases  = regexp.MustCompile(`^\s*Total written \(filtered\):\s+([\d,]+) bp`)
)

// ParseCutadapt reads a paired-end cutadapt report.
func ParseCutadapt(r io.Reader) (*CutadaptStats, error) {
	type target struct {
		re    *regexp.Regexp
		dst   *int64
		found bool
		label string
	}
	var st CutadaptStats
	targets := []*target{
		{re: cutadaptTotalPairs, dst: &st.TotalPairs, label: "Total read pairs processed"},
		{re: cutadaptPassPairs, dst: &st.PassTrimmedPairs, label: "Pairs written (passing filters)"},
		{re: cutadaptPassBases, dst: &st.PassTrimmedBases, label: "Total written (filtered)"},
	}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		for _, t := range targets {
			if t.found {
				continue
			}
			m := t.re.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			n, err := normalize.ParseCount(m[1])
			if err != nil {
				return nil, formatErr("%s: %v", t.label, err)
			}
			*t.dst = n
			t.found = true
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	for _, t := range targets {
		if !t.found {
			return nil, formatErr("missing %q line; not a paired-end cutadapt report", t.label)
		}
	}
	return &st, nil
}

// ParseCutadaptFile parses the cutadapt report at path.
func ParseCutadaptFile(path string) (*CutadaptStats, error) {
	return parseFile(path, ParseCutadapt)
}
