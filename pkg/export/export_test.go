package export

import (
	"bytes"
	"encoding/json"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/hamburgroadsurfer-create/LRP/core/model"
)

func TestWriteAssessmentsCSV(t *testing.T) {
	assessments := []model.Assessment{
		{
			VIN:               "WDB123",
			BookingTime:       time.Date(2026, 8, 30, 18, 0, 0, 0, time.UTC),
			StationID:         "ber",
			StationName:       "Berlin",
			DistanceKM:        254.958,
			TravelHours:       5.666,
			HoursUntilBooking: 8,
			CanReach:          true,
			Status:            model.StatusReachable,
		},
	}
	var buf bytes.Buffer
	if err := WriteAssessmentsCSV(&buf, assessments); err != nil {
		t.Fatalf("write: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if lines[0] != "VIN,Station,Distance_km,Travel_hours,Hours_until_booking,Can_reach,Status" {
		t.Fatalf("header: %q", lines[0])
	}
	if lines[1] != "WDB123,Berlin (ber),254.96,5.67,8.00,true,reachable" {
		t.Fatalf("row: %q", lines[1])
	}
	if !strings.HasSuffix(buf.String(), "\n") {
		t.Fatal("report must end with a newline")
	}
}

func TestWriteAssessmentsCSV_NaNToken(t *testing.T) {
	assessments := []model.Assessment{
		{VIN: "v1", StationID: "unknown", StationName: "unknown station",
			DistanceKM: math.NaN(), TravelHours: math.NaN(), HoursUntilBooking: math.NaN(),
			Status: model.StatusMissingLocation},
	}
	var buf bytes.Buffer
	if err := WriteAssessmentsCSV(&buf, assessments); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !strings.Contains(buf.String(), "v1,unknown station (unknown),NaN,NaN,NaN,false,missing_location") {
		t.Fatalf("NaN rendering: %q", buf.String())
	}
}

func TestWriteAssessmentsJSON_NaNBecomesNull(t *testing.T) {
	assessments := []model.Assessment{
		{VIN: "v1", DistanceKM: math.NaN(), TravelHours: math.NaN(), HoursUntilBooking: math.NaN(), Status: model.StatusMissingLocation},
	}
	var buf bytes.Buffer
	if err := WriteAssessmentsJSON(&buf, assessments); err != nil {
		t.Fatalf("write: %v", err)
	}
	var out []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out[0]["distance_km"] != nil {
		t.Fatalf("expected null distance: %#v", out[0])
	}
}

func TestWriteReturnsCSV(t *testing.T) {
	rows := []model.ReturnRow{
		{
			VIN: "WDB123", StationID: "Berlin", StationName: "Berlin",
			StationLat: 52.52, StationLon: 13.405,
			VehicleLat: 52.5, VehicleLon: 13.4,
			DistanceKM: 2.278, Band: model.BandGreen,
		},
		{
			VIN: "WDB999", StationID: "Berlin", StationName: "Berlin",
			StationLat: 52.52, StationLon: 13.405,
			VehicleLat: math.NaN(), VehicleLon: math.NaN(),
			DistanceKM: math.NaN(), Band: model.BandMissingData,
		},
	}
	var buf bytes.Buffer
	if err := WriteReturnsCSV(&buf, rows); err != nil {
		t.Fatalf("write: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if lines[0] != "vin,station,station_lat,station_lon,vehicle_lat,vehicle_lon,distance_km,status" {
		t.Fatalf("header: %q", lines[0])
	}
	if lines[1] != "WDB123,Berlin,52.52,13.405,52.5,13.4,2.28,green" {
		t.Fatalf("row: %q", lines[1])
	}
	if lines[2] != "WDB999,Berlin,52.52,13.405,,,,missing-data" {
		t.Fatalf("missing row: %q", lines[2])
	}
}

func TestWriteReturnsJSON(t *testing.T) {
	rows := []model.ReturnRow{
		{VIN: "v1", StationID: "x", DistanceKM: math.NaN(), StationLat: math.NaN(), StationLon: math.NaN(), VehicleLat: math.NaN(), VehicleLon: math.NaN(), Band: model.BandMissingData},
	}
	var buf bytes.Buffer
	if err := WriteReturnsJSON(&buf, rows); err != nil {
		t.Fatalf("write: %v", err)
	}
	var out []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out[0]["status"] != "missing-data" || out[0]["distance_km"] != nil {
		t.Fatalf("unexpected row: %#v", out[0])
	}
}

func TestWriteFile_CreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "out.csv")
	rows := []model.ReturnRow{{VIN: "v1", DistanceKM: 1, Band: model.BandGreen}}
	err := WriteFile(path, func(w io.Writer) error { return WriteReturnsCSV(w, rows) })
	if err != nil {
		t.Fatalf("write file: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !strings.HasSuffix(string(data), "\n") {
		t.Fatal("report file must end with a newline")
	}
}

func TestWriteFile_RemovesPartialFileOnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	err := WriteFile(path, func(io.Writer) error { return os.ErrInvalid })
	if err == nil {
		t.Fatal("expected error")
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Fatal("partial report left behind")
	}
}
