// Package metrics defines the observability ports of the assessment engine.
// Sinks receive finished batch results; the engine itself never talks to a
// metrics backend directly.
package metrics

import (
	"time"

	"github.com/hamburgroadsurfer-create/LRP/core/model"
)

// RunInfo identifies one batch run. The ID tags every recorded point so runs
// can be told apart in dashboards.
type RunInfo struct {
	ID        string
	StartedAt time.Time
}

// Sink records the assessments of a completed time-budget run.
type Sink interface {
	RecordAssessments(run RunInfo, assessments []model.Assessment) error
}

// ReturnRecorder is implemented by sinks able to record distance-band rows.
type ReturnRecorder interface {
	RecordReturnRows(run RunInfo, rows []model.ReturnRow) error
}

// Closer is implemented by sinks holding a connection that must be flushed
// or released after the run.
type Closer interface {
	Close() error
}

// NopSink implements Sink with no-op methods.
type NopSink struct{}

func (NopSink) RecordAssessments(RunInfo, []model.Assessment) error { return nil }
func (NopSink) RecordReturnRows(RunInfo, []model.ReturnRow) error   { return nil }
