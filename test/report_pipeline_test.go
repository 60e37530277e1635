package test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/hamburgroadsurfer-create/LRP/core/assess"
	"github.com/hamburgroadsurfer-create/LRP/infra/loader"
	"github.com/hamburgroadsurfer-create/LRP/pkg/export"
)

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestMonitorPipeline(t *testing.T) {
	dir := t.TempDir()
	stations := writeFixture(t, dir, "stations.csv",
		"station_id,name,latitude,longitude\n"+
			"ber,Berlin,52.5200,13.4050\n"+
			"ham,Hamburg,53.5511,9.9937\n")
	locations := writeFixture(t, dir, "locations.csv",
		"vin,latitude,longitude,timestamp\n"+
			"V1,52.5200,13.4050,2026-08-29T08:00:00+00:00\n"+
			"V1,53.5511,9.9937,2026-08-29T10:00:00+00:00\n")
	bookings := writeFixture(t, dir, "bookings.csv",
		"vin,return_time,station_id\n"+
			"V1,2026-08-30T18:00:00+00:00,ber\n"+
			"V2,2026-08-30T18:00:00+00:00,\n")

	stationSet, err := loader.LoadStations(stations)
	if err != nil {
		t.Fatalf("stations: %v", err)
	}
	latest, err := loader.LoadLatestLocations(locations)
	if err != nil {
		t.Fatalf("locations: %v", err)
	}
	bookingList, err := loader.LoadBookings(bookings)
	if err != nil {
		t.Fatalf("bookings: %v", err)
	}

	cfg := assess.Config{AverageSpeedKMH: 45, BufferHours: 2, MaxSameDayDistanceKM: 1000}
	assessments, err := assess.AssessBookings(bookingList, latest, stationSet, cfg)
	if err != nil {
		t.Fatalf("assess: %v", err)
	}
	if len(assessments) != 2 {
		t.Fatalf("expected 2 assessments, got %d", len(assessments))
	}
	// V1's latest fix is Hamburg, so the assigned Berlin station is ~255 km
	// away with ~32 h remaining: comfortably reachable.
	if assessments[0].StationID != "ber" || assessments[0].Status != "reachable" {
		t.Fatalf("v1 assessment: %#v", assessments[0])
	}
	if assessments[1].Status != "missing_location" {
		t.Fatalf("v2 assessment: %#v", assessments[1])
	}

	var first, second bytes.Buffer
	if err := export.WriteAssessmentsCSV(&first, assessments); err != nil {
		t.Fatalf("export: %v", err)
	}
	again, err := assess.AssessBookings(bookingList, latest, stationSet, cfg)
	if err != nil {
		t.Fatalf("assess again: %v", err)
	}
	if err := export.WriteAssessmentsCSV(&second, again); err != nil {
		t.Fatalf("export again: %v", err)
	}
	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Fatalf("pipeline not idempotent:\n%s\nvs\n%s", first.String(), second.String())
	}
	if !strings.Contains(first.String(), "Berlin (ber)") {
		t.Fatalf("station column: %s", first.String())
	}
}

func TestReturnsPipeline(t *testing.T) {
	dir := t.TempDir()
	stations := writeFixture(t, dir, "stations.csv",
		"Station_Fix,Latitude,Longitude\n"+
			"Berlin,\"52,5200\",\"13,4050\"\n"+
			"Hamburg,53.5511,9.9937\n")
	bookings := writeFixture(t, dir, "bookings.csv",
		"vehicle_id,station\n"+
			"v1,Berlin\n"+
			"v2,Berlin\n")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]interface{}{
		{"vin", "gnss_latitude", "gnss_longitude", "gnss_longitude_updated_at"},
		{"V1", "53.5511", "9.9937", "2026-08-30T06:00:00.000Z"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell: %v", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}
	positionsPath := filepath.Join(dir, "positions.xlsx")
	if err := f.SaveAs(positionsPath); err != nil {
		t.Fatalf("save xlsx: %v", err)
	}

	stationSet, err := loader.LoadStations(stations)
	if err != nil {
		t.Fatalf("stations: %v", err)
	}
	positions, err := loader.LoadTelemetryPositions(positionsPath)
	if err != nil {
		t.Fatalf("positions: %v", err)
	}
	bookingList, err := loader.LoadReturnBookings(bookings)
	if err != nil {
		t.Fatalf("bookings: %v", err)
	}

	report, err := assess.BuildReturnReport(bookingList, positions, stationSet, assess.Bands{GreenKM: 200, YellowKM: 1000})
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if len(report) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(report))
	}
	// Berlin-Hamburg is ~255 km: above green, inside yellow.
	if report[0].Band != "yellow" {
		t.Fatalf("v1 band: %#v", report[0])
	}
	if report[1].Band != "missing-data" {
		t.Fatalf("v2 band: %#v", report[1])
	}

	var buf bytes.Buffer
	if err := export.WriteReturnsCSV(&buf, report); err != nil {
		t.Fatalf("export: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("unexpected report: %q", buf.String())
	}
	if !strings.HasPrefix(lines[1], "V1,Berlin,52.52,13.405,53.5511,9.9937,") {
		t.Fatalf("row 1: %q", lines[1])
	}
	if !strings.HasSuffix(lines[2], ",,,missing-data") {
		t.Fatalf("row 2: %q", lines[2])
	}
}
