package assess

import (
	"testing"

	"github.com/hamburgroadsurfer-create/LRP/core/model"
)

func stationSet(stations ...model.Station) *model.StationSet {
	set := model.NewStationSet()
	for _, st := range stations {
		set.Add(st)
	}
	return set
}

func TestResolveStation_ExactMatch(t *testing.T) {
	set := stationSet(
		model.Station{ID: "ber", Name: "Berlin", Latitude: 52.52, Longitude: 13.405},
		model.Station{ID: "ham", Name: "Hamburg", Latitude: 53.5511, Longitude: 9.9937},
	)
	sample := model.LocationSample{VIN: "v1", Latitude: 52.5, Longitude: 13.4}
	st, _, err := ResolveStation(sample, "ham", set)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if st.ID != "ham" {
		t.Fatalf("requested station ignored: %#v", st)
	}
}

func TestResolveStation_NearestWhenUnspecified(t *testing.T) {
	// Nearest station is deliberately not first in iteration order.
	set := stationSet(
		model.Station{ID: "ham", Name: "Hamburg", Latitude: 53.5511, Longitude: 9.9937},
		model.Station{ID: "ber", Name: "Berlin", Latitude: 52.52, Longitude: 13.405},
	)
	sample := model.LocationSample{VIN: "v1", Latitude: 52.5, Longitude: 13.4}
	st, dist, err := ResolveStation(sample, "", set)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if st.ID != "ber" {
		t.Fatalf("expected nearest station ber, got %#v", st)
	}
	if dist > 10 {
		t.Fatalf("unexpected distance %.2f", dist)
	}
}

func TestResolveStation_UnknownIDFallsBackToNearest(t *testing.T) {
	set := stationSet(
		model.Station{ID: "ber", Name: "Berlin", Latitude: 52.52, Longitude: 13.405},
	)
	sample := model.LocationSample{VIN: "v1", Latitude: 52.5, Longitude: 13.4}
	st, _, err := ResolveStation(sample, "nope", set)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if st.ID != "ber" {
		t.Fatalf("expected fallback to nearest, got %#v", st)
	}
}

func TestNearestStation_TieKeepsFirst(t *testing.T) {
	// Two stations at the same coordinates: the first added must win.
	set := stationSet(
		model.Station{ID: "a", Name: "A", Latitude: 50, Longitude: 8},
		model.Station{ID: "b", Name: "B", Latitude: 50, Longitude: 8},
	)
	sample := model.LocationSample{VIN: "v1", Latitude: 50.1, Longitude: 8.1}
	for i := 0; i < 10; i++ {
		st, _, err := NearestStation(sample, set)
		if err != nil {
			t.Fatalf("nearest: %v", err)
		}
		if st.ID != "a" {
			t.Fatalf("tie not deterministic, got %#v", st)
		}
	}
}

func TestNearestStation_EmptySet(t *testing.T) {
	sample := model.LocationSample{VIN: "v1", Latitude: 50, Longitude: 8}
	if _, _, err := NearestStation(sample, model.NewStationSet()); err != ErrNoStations {
		t.Fatalf("expected ErrNoStations, got %v", err)
	}
}
