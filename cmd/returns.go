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

var returnsOpts struct {
	bookings  string
	positions string
	stations  string
	output    string
	green     float64
	yellow    float64
	asJSON    bool
}

var returnsCmd = &cobra.Command{
	Use:   "returns",
	Short: "Build the daily return report with distance traffic-light statuses",
	RunE:  runReturns,
}

func init() {
	f := returnsCmd.Flags()
	f.StringVar(&returnsOpts.bookings, "bookings", "bookings_return_today.csv", "CSV with today's return bookings")
	f.StringVar(&returnsOpts.positions, "positions", "positions.xlsx", "XLSX telemetry export with vehicle positions")
	f.StringVar(&returnsOpts.stations, "stations", "stations.csv", "CSV with station coordinates")
	f.StringVarP(&returnsOpts.output, "output", "o", "return_report.csv", "report file")
	f.Float64Var(&returnsOpts.green, "green-threshold", 200, "distances up to this are green (km)")
	f.Float64Var(&returnsOpts.yellow, "yellow-threshold", 1000, "distances up to this are yellow (km)")
	f.BoolVar(&returnsOpts.asJSON, "json", false, "write the report as JSON instead of CSV")
	rootCmd.AddCommand(returnsCmd)
}

func runReturns(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("green-threshold") {
		cfg.Bands.GreenKM = returnsOpts.green
	}
	if flags.Changed("yellow-threshold") {
		cfg.Bands.YellowKM = returnsOpts.yellow
	}
	if err := cfg.Bands.Validate(); err != nil {
		return fmt.Errorf("band config: %w", err)
	}
	if err := cfg.Logging.Apply(); err != nil {
		return err
	}
	log := logger.New("returns")

	stations, err := loader.LoadStations(returnsOpts.stations)
	if err != nil {
		return err
	}
	positions, err := loader.LoadTelemetryPositions(returnsOpts.positions)
	if err != nil {
		return err
	}
	bookings, err := loader.LoadReturnBookings(returnsOpts.bookings)
	if err != nil {
		return err
	}
	log.Infof("loaded %d stations, %d vehicle positions, %d bookings", stations.Len(), len(positions), len(bookings))

	rows, err := assess.BuildReturnReport(bookings, positions, stations, cfg.Bands)
	if err != nil {
		return err
	}

	write := export.WriteReturnsCSV
	if returnsOpts.asJSON {
		write = export.WriteReturnsJSON
	}
	if err := export.WriteFile(returnsOpts.output, func(w io.Writer) error {
		return write(w, rows)
	}); err != nil {
		return err
	}

	labels := make([]string, len(rows))
	distances := make([]float64, len(rows))
	for i, r := range rows {
		labels[i] = r.Band.String()
		distances[i] = r.DistanceKM
	}
	summary := assess.Summarize(labels, distances)
	fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s (%d vehicles)\n", returnsOpts.output, summary.Total)
	for _, label := range summary.SortedLabels() {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s: %d\n", label, summary.Counts[label])
	}
	logSummary(log, summary)

	run := newRun()
	recordReturnRows(cfg, log, run, rows)
	return nil
}
