package assess

import (
	"time"

	"github.com/hamburgroadsurfer-create/LRP/core/model"
)

// Verdict is the outcome of one time-budget classification. TravelHours and
// HoursUntilBooking are kept for operator inspection.
type Verdict struct {
	Status            model.Status
	CanReach          bool
	TravelHours       float64
	HoursUntilBooking float64
}

// TimeBudget classifies a booking by comparing the estimated drive time
// against the time remaining until the scheduled return.
type TimeBudget struct {
	Config Config
}

// Classify applies the decision rules in order, first match wins:
//
//  1. same calendar day and distance above the same-day cap: unreachable.
//     A large same-day hop is treated as physically implausible regardless
//     of the computed travel time.
//  2. travel time exceeds the remaining time: unreachable. A booking whose
//     return time already passed lands here via a negative remaining time.
//  3. margin below the buffer: tight.
//  4. otherwise: reachable.
//
// Same-day is an equal calendar date in each timestamp's own location.
func (t TimeBudget) Classify(distanceKM float64, sampledAt, returnAt time.Time) Verdict {
	travelHours := distanceKM / t.Config.AverageSpeedKMH
	hoursUntil := returnAt.Sub(sampledAt).Hours()
	sameDay := sameCalendarDay(sampledAt, returnAt)

	switch {
	case sameDay && distanceKM > t.Config.MaxSameDayDistanceKM:
		return Verdict{Status: model.StatusUnreachable, TravelHours: travelHours, HoursUntilBooking: hoursUntil}
	case travelHours > hoursUntil:
		return Verdict{Status: model.StatusUnreachable, TravelHours: travelHours, HoursUntilBooking: hoursUntil}
	case hoursUntil-travelHours < t.Config.BufferHours:
		return Verdict{Status: model.StatusTight, CanReach: true, TravelHours: travelHours, HoursUntilBooking: hoursUntil}
	default:
		return Verdict{Status: model.StatusReachable, CanReach: true, TravelHours: travelHours, HoursUntilBooking: hoursUntil}
	}
}

func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
