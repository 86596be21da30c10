package collect

import (
	"fmt"

	"github.com/gyeh/pipelineqc/internal/model"
)

// Pipeline phases reported by PhaseError.
const (
	PhaseDiscover = "discover"
	PhaseExtract  = "extract"
	PhaseWrite    = "write"
	PhaseExport   = "export"
)

// PhaseError wraps an error with the phase where it occurred.
type PhaseError struct {
	Phase string
	Err   error
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Phase, e.Err)
}

func (e *PhaseError) Unwrap() error {
	return e.Err
}

// ParseError reports a metric file that could not be read by its tool's
// parser.
type ParseError struct {
	Tool model.Tool
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s file %s: %s", e.Tool, e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// DuplicateSampleError reports two files of one metric spec that resolve to
// the same sample name. Either file's values would overwrite the other's.
type DuplicateSampleError struct {
	Tool   model.Tool
	Sample string
	First  string
	Second string
}

func (e *DuplicateSampleError) Error() string {
	return fmt.Sprintf("%s sample %q found twice: %s and %s", e.Tool, e.Sample, e.First, e.Second)
}
