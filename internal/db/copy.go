package db

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/gyeh/pipelineqc/internal/model"
)

// ChannelSource implements pgx.CopyFromSource by reading MetricRows from a channel.
// This provides natural backpressure between the row producer and COPY writer.
type ChannelSource struct {
	runID   uuid.UUID
	ch      <-chan model.MetricRow
	current model.MetricRow
	err     error
}

// NewChannelSource creates a CopyFromSource backed by a channel. Every row
// is tagged with runID.
func NewChannelSource(runID uuid.UUID, ch <-chan model.MetricRow) *ChannelSource {
	return &ChannelSource{runID: runID, ch: ch}
}

// Next advances to the next row. Returns false when the channel is closed.
func (s *ChannelSource) Next() bool {
	row, ok := <-s.ch
	if !ok {
		return false
	}
	s.current = row
	return true
}

// Values returns the current row's values in model.MetricColumns order.
func (s *ChannelSource) Values() ([]any, error) {
	r := s.current
	return []any{s.runID, r.Section, r.Sample, r.Column, r.Value, r.Ordinal}, nil
}

// Err returns any error encountered during iteration.
func (s *ChannelSource) Err() error {
	return s.err
}

// Compile-time check that ChannelSource satisfies the interface.
var _ pgx.CopyFromSource = (*ChannelSource)(nil)
