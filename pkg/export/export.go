// Package export serializes finished batch results for operators. Writers
// take an io.Writer so commands can target stdout or a file; WriteFile wraps
// the file case and creates missing parent directories.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/hamburgroadsurfer-create/LRP/core/model"
)

// WriteAssessmentsCSV writes the time-budget report. Floats are fixed to two
// decimals and NaN metrics of missing_location rows render as a literal NaN
// token.
func WriteAssessmentsCSV(w io.Writer, assessments []model.Assessment) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"VIN", "Station", "Distance_km", "Travel_hours", "Hours_until_booking", "Can_reach", "Status"}); err != nil {
		return err
	}
	for _, a := range assessments {
		rec := []string{
			a.VIN,
			fmt.Sprintf("%s (%s)", a.StationName, a.StationID),
			fixed2(a.DistanceKM),
			fixed2(a.TravelHours),
			fixed2(a.HoursUntilBooking),
			strconv.FormatBool(a.CanReach),
			a.Status.String(),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteAssessmentsJSON writes the time-budget report in JSON format. NaN
// metrics are emitted as null since JSON has no NaN literal.
func WriteAssessmentsJSON(w io.Writer, assessments []model.Assessment) error {
	out := make([]jsonAssessment, 0, len(assessments))
	for _, a := range assessments {
		out = append(out, jsonAssessment{
			VIN:               a.VIN,
			BookingTime:       a.BookingTime.Format(time.RFC3339),
			StationID:         a.StationID,
			StationName:       a.StationName,
			DistanceKM:        nullable(a.DistanceKM),
			TravelHours:       nullable(a.TravelHours),
			HoursUntilBooking: nullable(a.HoursUntilBooking),
			CanReach:          a.CanReach,
			Status:            a.Status.String(),
		})
	}
	enc := json.NewEncoder(w)
	return enc.Encode(out)
}

// WriteReturnsCSV writes the distance-band report. Unknown coordinates and
// distances render as empty cells; coordinates keep full precision while the
// distance is fixed to two decimals.
func WriteReturnsCSV(w io.Writer, rows []model.ReturnRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"vin", "station", "station_lat", "station_lon", "vehicle_lat", "vehicle_lon", "distance_km", "status"}); err != nil {
		return err
	}
	for _, r := range rows {
		rec := []string{
			r.VIN,
			stationLabel(r),
			coord(r.StationLat),
			coord(r.StationLon),
			coord(r.VehicleLat),
			coord(r.VehicleLon),
			fixed2OrEmpty(r.DistanceKM),
			r.Band.String(),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteReturnsJSON writes the distance-band report in JSON format.
func WriteReturnsJSON(w io.Writer, rows []model.ReturnRow) error {
	out := make([]jsonReturnRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, jsonReturnRow{
			VIN:        r.VIN,
			Station:    stationLabel(r),
			StationLat: nullable(r.StationLat),
			StationLon: nullable(r.StationLon),
			VehicleLat: nullable(r.VehicleLat),
			VehicleLon: nullable(r.VehicleLon),
			DistanceKM: nullable(r.DistanceKM),
			Status:     r.Band.String(),
		})
	}
	enc := json.NewEncoder(w)
	return enc.Encode(out)
}

// WriteFile creates the parent directories of path and streams the report
// into it via fn. The file is only kept when fn succeeds.
func WriteFile(path string, fn func(io.Writer) error) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create report dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	if err := fn(f); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close report: %w", err)
	}
	return nil
}

type jsonAssessment struct {
	VIN               string   `json:"vin"`
	BookingTime       string   `json:"booking_time"`
	StationID         string   `json:"station_id"`
	StationName       string   `json:"station_name"`
	DistanceKM        *float64 `json:"distance_km"`
	TravelHours       *float64 `json:"travel_hours"`
	HoursUntilBooking *float64 `json:"hours_until_booking"`
	CanReach          bool     `json:"can_reach"`
	Status            string   `json:"status"`
}

type jsonReturnRow struct {
	VIN        string   `json:"vin"`
	Station    string   `json:"station"`
	StationLat *float64 `json:"station_lat"`
	StationLon *float64 `json:"station_lon"`
	VehicleLat *float64 `json:"vehicle_lat"`
	VehicleLon *float64 `json:"vehicle_lon"`
	DistanceKM *float64 `json:"distance_km"`
	Status     string   `json:"status"`
}

func stationLabel(r model.ReturnRow) string {
	if r.StationName != "" {
		return r.StationName
	}
	return r.StationID
}

func fixed2(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func fixed2OrEmpty(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func coord(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func nullable(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	return &v
}
