package cmd

import (
	"time"

	"github.com/google/uuid"

	"github.com/hamburgroadsurfer-create/LRP/config"
	"github.com/hamburgroadsurfer-create/LRP/core/alert"
	"github.com/hamburgroadsurfer-create/LRP/core/assess"
	"github.com/hamburgroadsurfer-create/LRP/core/logger"
	coremetrics "github.com/hamburgroadsurfer-create/LRP/core/metrics"
	"github.com/hamburgroadsurfer-create/LRP/core/model"
	inframetrics "github.com/hamburgroadsurfer-create/LRP/infra/metrics"
	inframqtt "github.com/hamburgroadsurfer-create/LRP/infra/mqtt"
)

func newRun() coremetrics.RunInfo {
	return coremetrics.RunInfo{ID: uuid.NewString(), StartedAt: time.Now().UTC()}
}

// buildMetricsSink assembles the configured sinks. The Prometheus sink is
// returned separately so callers can push after recording.
func buildMetricsSink(cfg coremetrics.Config) (coremetrics.Sink, *inframetrics.PromSink, error) {
	var sinks []coremetrics.Sink
	var prom *inframetrics.PromSink
	if cfg.Prometheus.Enabled {
		sink, err := inframetrics.NewPromSink(cfg.Prometheus)
		if err != nil {
			return nil, nil, err
		}
		prom = sink
		sinks = append(sinks, sink)
	}
	if cfg.Influx.Enabled {
		sinks = append(sinks, inframetrics.NewInfluxSinkWithFallback(cfg.Influx))
	}
	switch len(sinks) {
	case 0:
		return coremetrics.NopSink{}, prom, nil
	case 1:
		return sinks[0], prom, nil
	default:
		return inframetrics.NewMultiSink(sinks...), prom, nil
	}
}

// recordAssessments ships the batch to the configured backends. Metrics
// failures are warnings: the report is already produced at this point and
// must not be discarded over a dead backend.
func recordAssessments(cfg *config.Config, log logger.Logger, run coremetrics.RunInfo, assessments []model.Assessment) {
	sink, prom, err := buildMetricsSink(cfg.Metrics)
	if err != nil {
		log.Warnf("metrics sink: %v", err)
		return
	}
	if err := sink.RecordAssessments(run, assessments); err != nil {
		log.Warnf("record assessments: %v", err)
	}
	pushAndClose(log, run, sink, prom)
}

// recordReturnRows is the distance-band counterpart of recordAssessments.
func recordReturnRows(cfg *config.Config, log logger.Logger, run coremetrics.RunInfo, rows []model.ReturnRow) {
	sink, prom, err := buildMetricsSink(cfg.Metrics)
	if err != nil {
		log.Warnf("metrics sink: %v", err)
		return
	}
	if rec, ok := sink.(coremetrics.ReturnRecorder); ok {
		if err := rec.RecordReturnRows(run, rows); err != nil {
			log.Warnf("record return rows: %v", err)
		}
	}
	pushAndClose(log, run, sink, prom)
}

func pushAndClose(log logger.Logger, run coremetrics.RunInfo, sink coremetrics.Sink, prom *inframetrics.PromSink) {
	if prom != nil {
		if err := prom.Push(run); err != nil {
			log.Warnf("%v", err)
		}
	}
	if c, ok := sink.(coremetrics.Closer); ok {
		if err := c.Close(); err != nil {
			log.Warnf("close metrics sink: %v", err)
		}
	}
}

// notifyAtRisk publishes not-reachable assessments when alerts are
// configured. Like metrics, a broker failure downgrades to a warning.
func notifyAtRisk(cfg *config.Config, log logger.Logger, assessments []model.Assessment) {
	if !cfg.MQTT.Enabled {
		return
	}
	atRisk := alert.AtRisk(assessments)
	if len(atRisk) == 0 {
		return
	}
	notifier, err := inframqtt.NewPahoNotifier(cfg.MQTT)
	if err != nil {
		log.Warnf("alert notifier: %v", err)
		return
	}
	defer func() {
		if err := notifier.Close(); err != nil {
			log.Warnf("close notifier: %v", err)
		}
	}()
	if err := notifier.NotifyAtRisk(atRisk); err != nil {
		log.Warnf("publish alerts: %v", err)
		return
	}
	log.Infof("published %d at-risk alerts to %s", len(atRisk), cfg.MQTT.Topic)
}

func logSummary(log logger.Logger, s assess.Summary) {
	for _, label := range s.SortedLabels() {
		log.Infof("  %s: %d", label, s.Counts[label])
	}
	if s.Distance.Count > 0 {
		log.Infof("distances (%d computable): mean %.1f km, p50 %.1f km, p90 %.1f km, max %.1f km",
			s.Distance.Count, s.Distance.MeanKM, s.Distance.P50KM, s.Distance.P90KM, s.Distance.MaxKM)
	}
}
