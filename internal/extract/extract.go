// Package extract parses the text reports written by the tools of an
// ATAC-seq pipeline: cutadapt, samtools flagstat and idxstats, Picard
// CollectInsertSizeMetrics, MACS2 peak files and FRiP score files.
package extract

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrFormat is wrapped by every error caused by input that does not look
// like the report a parser expects.
var ErrFormat = errors.New("unexpected format")

func formatErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrFormat, fmt.Sprintf(format, args...))
}

// parseFile opens path and hands it to parse.
func parseFile[T any](path string, parse func(io.Reader) (T, error)) (T, error) {
	var zero T
	f, err := os.Open(path)
	if err != nil {
		return zero, err
	}
	defer f.Close()
	return parse(f)
}

// CountLines returns the number of lines in r. A final line without a
// trailing newline is counted.
func CountLines(r io.Reader) (int64, error) {
	br := bufio.NewReader(r)
	var n int64
	buf := make([]byte, 32*1024)
	var last byte = '\n'
	for {
		k, err := br.Read(buf)
		for _, b := range buf[:k] {
			if b == '\n' {
				n++
			}
		}
		if k > 0 {
			last = buf[k-1]
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, err
		}
	}
	if last != '\n' {
		n++
	}
	return n, nil
}

// CountLinesFile counts the lines of the file at path; one peak per line
// for MACS2 peak files.
func CountLinesFile(path string) (int64, error) {
	return parseFile(path, CountLines)
}

// FirstLine returns the first line of r with surrounding whitespace removed.
// An empty input is a format error.
func FirstLine(r io.Reader) (string, error) {
	br := bufio.NewReader(r)
	line, err := br.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	if line == "" && err == io.EOF {
		return "", formatErr("empty file")
	}
	return strings.TrimSpace(line), nil
}

// FirstLineFile returns the first line of the file at path.
func FirstLineFile(path string) (string, error) {
	return parseFile(path, FirstLine)
}
