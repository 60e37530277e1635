package loader

import (
	"fmt"

	"github.com/hamburgroadsurfer-create/LRP/core/model"
)

// LoadStations reads the station gazetteer. Rows carry either an id column
// (station_id or id) or only a name column (name, Station_Fix or
// Station_Master); name-only gazetteers are keyed by name. An empty result
// is a hard error: no assessment can run without stations.
func LoadStations(path string) (*model.StationSet, error) {
	rows, err := readCSVRows(path)
	if err != nil {
		return nil, err
	}
	set := model.NewStationSet()
	for i, row := range rows {
		id := pick(row, "station_id", "id")
		name := pick(row, "name", "Station_Fix", "Station_Master")
		if id == "" {
			id = name
		}
		if name == "" {
			name = id
		}
		if id == "" {
			return nil, fmt.Errorf("%s row %d: station id or name column is required", path, i+2)
		}
		lat, err := parseFloat(pick(row, "latitude", "Latitude"))
		if err != nil {
			return nil, fmt.Errorf("%s row %d (station %s): latitude: %w", path, i+2, id, err)
		}
		lon, err := parseFloat(pick(row, "longitude", "Longitude"))
		if err != nil {
			return nil, fmt.Errorf("%s row %d (station %s): longitude: %w", path, i+2, id, err)
		}
		set.Add(model.Station{ID: id, Name: name, Latitude: lat, Longitude: lon})
	}
	if set.Len() == 0 {
		return nil, fmt.Errorf("no stations loaded from %s", path)
	}
	return set, nil
}
