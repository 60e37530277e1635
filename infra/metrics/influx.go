package metrics

import (
	"context"
	"math"
	"net/http"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	coremetrics "github.com/hamburgroadsurfer-create/LRP/core/metrics"
	"github.com/hamburgroadsurfer-create/LRP/core/model"
	"github.com/hamburgroadsurfer-create/LRP/infra/logger"
)

// InfluxSink writes batch results to an InfluxDB instance using the official
// client.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	log      logger.Logger
}

// NewInfluxSink creates a new sink configured for the given InfluxDB
// endpoint.
func NewInfluxSink(cfg coremetrics.InfluxConfig) *InfluxSink {
	base := strings.TrimSuffix(cfg.URL, "/api/v2/write")
	client := influxdb2.NewClientWithOptions(base, cfg.Token,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPIBlocking(cfg.Org, cfg.Bucket),
		log:      logger.New("influx-sink"),
	}
}

// NewInfluxSinkWithFallback tries to ping the InfluxDB instance and returns
// a NopSink if the health check fails, so a dead metrics backend never
// blocks a report run.
func NewInfluxSinkWithFallback(cfg coremetrics.InfluxConfig) coremetrics.Sink {
	sink := NewInfluxSink(cfg)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := sink.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			sink.log.Errorf("influx health check error: %v", err)
		} else {
			sink.log.Errorf("influx health status: %s", health.Status)
		}
		sink.client.Close()
		return coremetrics.NopSink{}
	}
	return sink
}

// RecordAssessments writes one point per assessment as line protocol. NaN
// metrics of missing_location rows are omitted since InfluxDB rejects NaN
// field values.
func (s *InfluxSink) RecordAssessments(run coremetrics.RunInfo, assessments []model.Assessment) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for _, a := range assessments {
		p := write.NewPointWithMeasurement("booking_assessment").
			AddTag("vin", a.VIN).
			AddTag("status", a.Status.String()).
			AddTag("station_id", a.StationID).
			AddTag("run_id", run.ID).
			AddField("can_reach", a.CanReach).
			AddField("booking_time", a.BookingTime.Format(time.RFC3339)).
			SetTime(run.StartedAt)
		addFloatField(p, "distance_km", a.DistanceKM)
		addFloatField(p, "travel_hours", a.TravelHours)
		addFloatField(p, "hours_until_booking", a.HoursUntilBooking)
		if err := s.writeAPI.WritePoint(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// RecordReturnRows writes one point per return report row.
func (s *InfluxSink) RecordReturnRows(run coremetrics.RunInfo, rows []model.ReturnRow) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for _, r := range rows {
		p := write.NewPointWithMeasurement("return_row").
			AddTag("vin", r.VIN).
			AddTag("band", r.Band.String()).
			AddTag("station", r.StationName).
			AddTag("run_id", run.ID).
			SetTime(run.StartedAt)
		addFloatField(p, "distance_km", r.DistanceKM)
		if err := s.writeAPI.WritePoint(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// Close releases the underlying HTTP client.
func (s *InfluxSink) Close() error {
	s.client.Close()
	return nil
}

func addFloatField(p *write.Point, name string, v float64) {
	if math.IsNaN(v) {
		return
	}
	p.AddField(name, round3(v))
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
