package loader

import (
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/hamburgroadsurfer-create/LRP/core/model"
)

// LoadTelemetryPositions reads the first worksheet of the telemetry health
// export and reduces it to the latest position per vehicle. Rows without a
// usable VIN or coordinate pair are skipped, not rejected: those vehicles
// simply have no known position and the missing-position policy handles
// them downstream. The freshness column is gnss_longitude_updated_at with
// updated_at as fallback; an untimestamped sample never replaces a
// timestamped one.
func LoadTelemetryPositions(path string) (map[string]model.LocationSample, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s has no worksheets", path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s of %s: %w", sheets[0], path, err)
	}
	if len(rows) == 0 {
		return map[string]model.LocationSample{}, nil
	}

	col := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		col[strings.TrimSpace(name)] = i
	}
	cell := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	positions := make(map[string]model.LocationSample)
	for _, row := range rows[1:] {
		vin := strings.ToUpper(cell(row, "vin"))
		if vin == "" {
			continue
		}
		lat, err := parseFloat(cell(row, "gnss_latitude"))
		if err != nil {
			continue
		}
		lon, err := parseFloat(cell(row, "gnss_longitude"))
		if err != nil {
			continue
		}
		var ts time.Time
		if t, err := parseTimestamp(cell(row, "gnss_longitude_updated_at")); err == nil {
			ts = t
		} else if t, err := parseTimestamp(cell(row, "updated_at")); err == nil {
			ts = t
		}
		sample := model.LocationSample{VIN: vin, Latitude: lat, Longitude: lon, Timestamp: ts}
		existing, ok := positions[vin]
		if !ok || (!sample.Timestamp.IsZero() && (existing.Timestamp.IsZero() || sample.Timestamp.After(existing.Timestamp))) {
			positions[vin] = sample
		}
	}
	return positions, nil
}
