// Package alert defines the port for publishing at-risk bookings to
// operator channels after a batch run.
package alert

import "github.com/hamburgroadsurfer-create/LRP/core/model"

// Notifier publishes assessments whose booking is at risk.
type Notifier interface {
	// NotifyAtRisk publishes one message per assessment.
	NotifyAtRisk(assessments []model.Assessment) error
	Close() error
}

// NopNotifier implements Notifier with no-op methods.
type NopNotifier struct{}

func (NopNotifier) NotifyAtRisk([]model.Assessment) error { return nil }
func (NopNotifier) Close() error                          { return nil }

// AtRisk filters the assessments an operator has to act on: bookings that
// cannot be reached, including those without a known vehicle position.
func AtRisk(assessments []model.Assessment) []model.Assessment {
	var out []model.Assessment
	for _, a := range assessments {
		if !a.CanReach {
			out = append(out, a)
		}
	}
	return out
}
