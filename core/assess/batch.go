// Package assess turns station locations, latest vehicle positions and
// booking records into per-booking feasibility verdicts. It holds the two
// classification models (time budget and distance bands) behind one shared
// station resolution path; all I/O stays with the adapters.
package assess

import (
	"fmt"
	"math"

	"github.com/hamburgroadsurfer-create/LRP/core/model"
)

// AssessBookings runs the time-budget model over the bookings in input
// order. The configuration is validated before the first booking is touched.
// A booking whose vehicle has no known position is emitted as a
// missing_location row with NaN metrics, or silently dropped when
// cfg.SkipMissing is set; it never aborts the batch.
func AssessBookings(bookings []model.Booking, locations map[string]model.LocationSample, stations *model.StationSet, cfg Config) ([]model.Assessment, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("assess config: %w", err)
	}
	tb := TimeBudget{Config: cfg}
	assessments := make([]model.Assessment, 0, len(bookings))
	for _, booking := range bookings {
		sample, ok := locations[booking.VIN]
		if !ok {
			if !cfg.SkipMissing {
				assessments = append(assessments, missingAssessment(booking))
			}
			continue
		}
		station, distance, err := ResolveStation(sample, booking.StationID, stations)
		if err != nil {
			return nil, fmt.Errorf("booking %s: %w", booking.VIN, err)
		}
		verdict := tb.Classify(distance, sample.Timestamp, booking.ReturnTime)
		assessments = append(assessments, model.Assessment{
			VIN:               booking.VIN,
			BookingTime:       booking.ReturnTime,
			StationID:         station.ID,
			StationName:       station.Name,
			DistanceKM:        distance,
			TravelHours:       verdict.TravelHours,
			HoursUntilBooking: verdict.HoursUntilBooking,
			CanReach:          verdict.CanReach,
			Status:            verdict.Status,
		})
	}
	return assessments, nil
}

func missingAssessment(booking model.Booking) model.Assessment {
	stationID := booking.StationID
	if stationID == "" {
		stationID = "unknown"
	}
	return model.Assessment{
		VIN:               booking.VIN,
		BookingTime:       booking.ReturnTime,
		StationID:         stationID,
		StationName:       "unknown station",
		DistanceKM:        math.NaN(),
		TravelHours:       math.NaN(),
		HoursUntilBooking: math.NaN(),
		CanReach:          false,
		Status:            model.StatusMissingLocation,
	}
}

// BuildReturnReport runs the distance-band model over the bookings in input
// order. Stations resolve through the same path as the time-budget model:
// an exact station match from the booking wins, otherwise the nearest
// station to the vehicle. Only a missing vehicle position yields a
// missing-data row; its station coordinates are still filled in when the
// booking names a known station.
func BuildReturnReport(bookings []model.Booking, positions map[string]model.LocationSample, stations *model.StationSet, bands Bands) ([]model.ReturnRow, error) {
	if err := bands.Validate(); err != nil {
		return nil, fmt.Errorf("band config: %w", err)
	}
	rows := make([]model.ReturnRow, 0, len(bookings))
	for _, booking := range bookings {
		sample, ok := positions[booking.VIN]
		if !ok {
			rows = append(rows, missingReturnRow(booking, stations, bands))
			continue
		}
		station, distance, err := ResolveStation(sample, booking.StationID, stations)
		if err != nil {
			return nil, fmt.Errorf("booking %s: %w", booking.VIN, err)
		}
		rows = append(rows, model.ReturnRow{
			VIN:         booking.VIN,
			StationID:   station.ID,
			StationName: station.Name,
			StationLat:  station.Latitude,
			StationLon:  station.Longitude,
			VehicleLat:  sample.Latitude,
			VehicleLon:  sample.Longitude,
			DistanceKM:  distance,
			Band:        bands.Classify(distance),
		})
	}
	return rows, nil
}

func missingReturnRow(booking model.Booking, stations *model.StationSet, bands Bands) model.ReturnRow {
	row := model.ReturnRow{
		VIN:         booking.VIN,
		StationID:   booking.StationID,
		StationLat:  math.NaN(),
		StationLon:  math.NaN(),
		VehicleLat:  math.NaN(),
		VehicleLon:  math.NaN(),
		DistanceKM:  math.NaN(),
		Band:        bands.Classify(math.NaN()),
	}
	if st, ok := stations.Get(booking.StationID); ok {
		row.StationName = st.Name
		row.StationLat = st.Latitude
		row.StationLon = st.Longitude
	}
	return row
}
