package metrics

import (
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"

	coremetrics "github.com/hamburgroadsurfer-create/LRP/core/metrics"
	"github.com/hamburgroadsurfer-create/LRP/core/model"
)

// PromSink records batch results as Prometheus metrics. Runs are batch
// processes, so metrics are pushed to a Pushgateway after the run instead of
// being exposed on a scrape endpoint.
type PromSink struct {
	cfg      coremetrics.PromConfig
	registry *prometheus.Registry
	statuses *prometheus.CounterVec
	bands    *prometheus.CounterVec
	distance prometheus.Histogram
}

// NewPromSink creates a sink backed by its own registry so repeated runs in
// one process never collide with other collectors.
func NewPromSink(cfg coremetrics.PromConfig) (*PromSink, error) {
	reg := prometheus.NewRegistry()
	s, err := NewPromSinkWithRegistry(cfg, reg)
	if err != nil {
		return nil, err
	}
	s.registry = reg
	return s, nil
}

// NewPromSinkWithRegistry registers the metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(cfg coremetrics.PromConfig, reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	statuses := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "lrp_assessments_total",
		Help: "Booking assessments by verdict",
	}, []string{"status", "can_reach"})
	bands := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "lrp_return_rows_total",
		Help: "Return report rows by traffic-light band",
	}, []string{"band"})
	distance := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "lrp_distance_km",
		Help:    "Vehicle to station distance per computable row",
		Buckets: prometheus.ExponentialBuckets(1, 2, 12),
	})

	if err := reg.Register(statuses); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			statuses = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(bands); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			bands = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(distance); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			distance = are.ExistingCollector.(prometheus.Histogram)
		} else {
			return nil, err
		}
	}

	return &PromSink{cfg: cfg, statuses: statuses, bands: bands, distance: distance}, nil
}

// RecordAssessments counts each verdict and observes computable distances.
func (s *PromSink) RecordAssessments(_ coremetrics.RunInfo, assessments []model.Assessment) error {
	for _, a := range assessments {
		s.statuses.WithLabelValues(a.Status.String(), strconv.FormatBool(a.CanReach)).Inc()
		if a.Status != model.StatusMissingLocation {
			s.distance.Observe(a.DistanceKM)
		}
	}
	return nil
}

// RecordReturnRows counts each band and observes computable distances.
func (s *PromSink) RecordReturnRows(_ coremetrics.RunInfo, rows []model.ReturnRow) error {
	for _, r := range rows {
		s.bands.WithLabelValues(r.Band.String()).Inc()
		if r.Band != model.BandMissingData {
			s.distance.Observe(r.DistanceKM)
		}
	}
	return nil
}

// Push sends the collected metrics to the configured Pushgateway, grouped by
// run ID. It is a no-op when the sink was registered on an external
// registerer.
func (s *PromSink) Push(run coremetrics.RunInfo) error {
	if s.registry == nil {
		return nil
	}
	if err := push.New(s.cfg.PushURL, s.cfg.Job).
		Gatherer(s.registry).
		Grouping("run_id", run.ID).
		Push(); err != nil {
		return fmt.Errorf("push metrics: %w", err)
	}
	return nil
}
