package loader

import (
	"fmt"

	"github.com/hamburgroadsurfer-create/LRP/core/model"
)

// LoadLatestLocations reads GPS samples and reduces them to the most recent
// sample per vehicle. A later row only wins with a strictly greater
// timestamp, so exact ties keep the first-seen sample and repeated loads
// are deterministic.
func LoadLatestLocations(path string) (map[string]model.LocationSample, error) {
	rows, err := readCSVRows(path)
	if err != nil {
		return nil, err
	}
	latest := make(map[string]model.LocationSample)
	for i, row := range rows {
		vin := pick(row, "vin", "fin")
		if vin == "" {
			return nil, fmt.Errorf("%s row %d: vin column is required", path, i+2)
		}
		lat, err := parseFloat(pick(row, "latitude", "Latitude"))
		if err != nil {
			return nil, fmt.Errorf("%s row %d (vin %s): latitude: %w", path, i+2, vin, err)
		}
		lon, err := parseFloat(pick(row, "longitude", "Longitude"))
		if err != nil {
			return nil, fmt.Errorf("%s row %d (vin %s): longitude: %w", path, i+2, vin, err)
		}
		ts, err := parseTimestamp(row["timestamp"])
		if err != nil {
			return nil, fmt.Errorf("%s row %d (vin %s): timestamp: %w", path, i+2, vin, err)
		}
		sample := model.LocationSample{VIN: vin, Latitude: lat, Longitude: lon, Timestamp: ts}
		if existing, ok := latest[vin]; !ok || sample.Timestamp.After(existing.Timestamp) {
			latest[vin] = sample
		}
	}
	if len(latest) == 0 {
		return nil, fmt.Errorf("no location samples loaded from %s", path)
	}
	return latest, nil
}
