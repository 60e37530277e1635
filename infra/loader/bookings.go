package loader

import (
	"fmt"
	"strings"

	"github.com/hamburgroadsurfer-create/LRP/core/model"
)

// LoadBookings reads the booking list for the time-budget model. The station
// column is optional; an empty value means the resolver picks the nearest
// station.
func LoadBookings(path string) ([]model.Booking, error) {
	rows, err := readCSVRows(path)
	if err != nil {
		return nil, err
	}
	var bookings []model.Booking
	for i, row := range rows {
		vin := pick(row, "vin", "fin")
		if vin == "" {
			return nil, fmt.Errorf("%s row %d: vin column is required", path, i+2)
		}
		returnTime, err := parseTimestamp(row["return_time"])
		if err != nil {
			return nil, fmt.Errorf("%s row %d (vin %s): return_time: %w", path, i+2, vin, err)
		}
		bookings = append(bookings, model.Booking{
			VIN:        vin,
			ReturnTime: returnTime,
			StationID:  pick(row, "station_id", "station", "Station"),
		})
	}
	if len(bookings) == 0 {
		return nil, fmt.Errorf("no bookings loaded from %s", path)
	}
	return bookings, nil
}

// LoadReturnBookings reads the booking list for the distance-band model.
// These exports carry no return time, key vehicles by an upper-cased VIN and
// name the return station by its display name.
func LoadReturnBookings(path string) ([]model.Booking, error) {
	rows, err := readCSVRows(path)
	if err != nil {
		return nil, err
	}
	var bookings []model.Booking
	for i, row := range rows {
		vin := strings.ToUpper(pick(row, "vehicle_id", "vin"))
		if vin == "" {
			return nil, fmt.Errorf("%s row %d: vehicle_id or vin column is required", path, i+2)
		}
		bookings = append(bookings, model.Booking{
			VIN:       vin,
			StationID: pick(row, "station", "Station"),
		})
	}
	if len(bookings) == 0 {
		return nil, fmt.Errorf("no bookings loaded from %s", path)
	}
	return bookings, nil
}
