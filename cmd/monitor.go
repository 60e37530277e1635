package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/hamburgroadsurfer-create/LRP/core/assess"
	"github.com/hamburgroadsurfer-create/LRP/infra/loader"
	"github.com/hamburgroadsurfer-create/LRP/infra/logger"
	"github.com/hamburgroadsurfer-create/LRP/pkg/export"
)

var monitorOpts struct {
	locations   string
	stations    string
	bookings    string
	avgSpeed    float64
	bufferHours float64
	sameDayCap  float64
	skipMissing bool
	output      string
	asJSON      bool
}

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Assess whether vehicles reach their return station before the next booking",
	RunE:  runMonitor,
}

func init() {
	f := monitorCmd.Flags()
	f.StringVar(&monitorOpts.locations, "locations", "", "CSV with columns vin,latitude,longitude,timestamp")
	f.StringVar(&monitorOpts.stations, "stations", "", "CSV with columns station_id,name,latitude,longitude")
	f.StringVar(&monitorOpts.bookings, "bookings", "", "CSV with columns vin,return_time[,station_id]")
	f.Float64Var(&monitorOpts.avgSpeed, "avg-speed-kmh", 45, "assumed average travel speed in km/h")
	f.Float64Var(&monitorOpts.bufferHours, "buffer-hours", 2, "margin in hours below which a trip is flagged as tight")
	f.Float64Var(&monitorOpts.sameDayCap, "max-same-day-distance-km", 1000, "same-day distances above this count as unreachable")
	f.BoolVar(&monitorOpts.skipMissing, "skip-missing", false, "drop bookings without a current vehicle position")
	f.StringVarP(&monitorOpts.output, "output", "o", "", "report file (default stdout)")
	f.BoolVar(&monitorOpts.asJSON, "json", false, "write the report as JSON instead of CSV")
	for _, name := range []string{"locations", "stations", "bookings"} {
		if err := monitorCmd.MarkFlagRequired(name); err != nil {
			panic(err)
		}
	}
	rootCmd.AddCommand(monitorCmd)
}

func runMonitor(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	// Explicit flags override config-file values.
	flags := cmd.Flags()
	if flags.Changed("avg-speed-kmh") {
		cfg.Assess.AverageSpeedKMH = monitorOpts.avgSpeed
	}
	if flags.Changed("buffer-hours") {
		cfg.Assess.BufferHours = monitorOpts.bufferHours
	}
	if flags.Changed("max-same-day-distance-km") {
		cfg.Assess.MaxSameDayDistanceKM = monitorOpts.sameDayCap
	}
	if flags.Changed("skip-missing") {
		cfg.Assess.SkipMissing = monitorOpts.skipMissing
	}
	if err := cfg.Assess.Validate(); err != nil {
		return fmt.Errorf("assess config: %w", err)
	}
	if err := cfg.Logging.Apply(); err != nil {
		return err
	}
	log := logger.New("monitor")

	stations, err := loader.LoadStations(monitorOpts.stations)
	if err != nil {
		return err
	}
	locations, err := loader.LoadLatestLocations(monitorOpts.locations)
	if err != nil {
		return err
	}
	bookings, err := loader.LoadBookings(monitorOpts.bookings)
	if err != nil {
		return err
	}
	log.Infof("loaded %d stations, %d vehicle positions, %d bookings", stations.Len(), len(locations), len(bookings))

	assessments, err := assess.AssessBookings(bookings, locations, stations, cfg.Assess)
	if err != nil {
		return err
	}

	write := export.WriteAssessmentsCSV
	if monitorOpts.asJSON {
		write = export.WriteAssessmentsJSON
	}
	if monitorOpts.output == "" {
		if err := write(cmd.OutOrStdout(), assessments); err != nil {
			return err
		}
	} else {
		if err := export.WriteFile(monitorOpts.output, func(w io.Writer) error {
			return write(w, assessments)
		}); err != nil {
			return err
		}
		log.Infof("report written to %s (%d bookings)", monitorOpts.output, len(assessments))
	}

	labels := make([]string, len(assessments))
	distances := make([]float64, len(assessments))
	for i, a := range assessments {
		labels[i] = a.Status.String()
		distances[i] = a.DistanceKM
	}
	logSummary(log, assess.Summarize(labels, distances))

	run := newRun()
	recordAssessments(cfg, log, run, assessments)
	notifyAtRisk(cfg, log, assessments)
	return nil
}
