package metrics

import (
	coremetrics "github.com/hamburgroadsurfer-create/LRP/core/metrics"
	"github.com/hamburgroadsurfer-create/LRP/core/model"
)

// MultiSink fans batch results out to multiple sinks.
type MultiSink struct {
	Sinks []coremetrics.Sink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...coremetrics.Sink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordAssessments forwards the batch to all sinks, returning the first
// error encountered.
func (m *MultiSink) RecordAssessments(run coremetrics.RunInfo, assessments []model.Assessment) error {
	for _, s := range m.Sinks {
		if err := s.RecordAssessments(run, assessments); err != nil {
			return err
		}
	}
	return nil
}

// RecordReturnRows forwards return rows to the sinks that record them.
func (m *MultiSink) RecordReturnRows(run coremetrics.RunInfo, rows []model.ReturnRow) error {
	for _, s := range m.Sinks {
		if rec, ok := s.(coremetrics.ReturnRecorder); ok {
			if err := rec.RecordReturnRows(run, rows); err != nil {
				return err
			}
		}
	}
	return nil
}

// Close closes every sink that holds resources, returning the first error.
func (m *MultiSink) Close() error {
	var first error
	for _, s := range m.Sinks {
		if c, ok := s.(coremetrics.Closer); ok {
			if err := c.Close(); err != nil && first == nil {
				first = err
			}
		}
	}
	return first
}
