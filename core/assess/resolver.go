package assess

import (
	"errors"

	"github.com/hamburgroadsurfer-create/LRP/core/geo"
	"github.com/hamburgroadsurfer-create/LRP/core/model"
)

// ErrNoStations is returned when resolution is attempted against an empty
// station set. Loaders reject empty sets, so hitting this indicates a caller
// bug rather than bad input data.
var ErrNoStations = errors.New("assess: no station available")

// ResolveStation picks the station a vehicle is evaluated against. A
// non-empty stationID that exists in the set wins; otherwise the nearest
// station by great-circle distance is chosen. Ties resolve to the station
// added first, so repeated runs always pick the same station.
func ResolveStation(sample model.LocationSample, stationID string, stations *model.StationSet) (model.Station, float64, error) {
	if stationID != "" {
		if st, ok := stations.Get(stationID); ok {
			return st, geo.DistanceKM(sample.Latitude, sample.Longitude, st.Latitude, st.Longitude), nil
		}
	}
	return NearestStation(sample, stations)
}

// NearestStation scans the set in insertion order and returns the station
// minimizing the great-circle distance to the sample.
func NearestStation(sample model.LocationSample, stations *model.StationSet) (model.Station, float64, error) {
	if stations.Len() == 0 {
		return model.Station{}, 0, ErrNoStations
	}
	var nearest model.Station
	best := -1.0
	for _, st := range stations.All() {
		d := geo.DistanceKM(sample.Latitude, sample.Longitude, st.Latitude, st.Longitude)
		if best < 0 || d < best {
			best = d
			nearest = st
		}
	}
	return nearest, best, nil
}
