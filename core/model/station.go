package model

// Station is a fleet return station with a fixed location.
type Station struct {
	ID        string
	Name      string  // display name shown in reports
	Latitude  float64 // degrees, WGS84
	Longitude float64 // degrees, WGS84
}

// StationSet holds the known stations in load order. Iteration order is
// stable across runs, so nearest-station ties always resolve to the same
// station and repeated batch runs produce identical reports.
type StationSet struct {
	byID  map[string]int
	items []Station
}

// NewStationSet returns an empty StationSet.
func NewStationSet() *StationSet {
	return &StationSet{byID: make(map[string]int)}
}

// Add inserts the station keyed by its ID. Re-adding an existing ID replaces
// the station in place and keeps its original position.
func (s *StationSet) Add(st Station) {
	if i, ok := s.byID[st.ID]; ok {
		s.items[i] = st
		return
	}
	s.byID[st.ID] = len(s.items)
	s.items = append(s.items, st)
}

// Get returns the station with the given ID.
func (s *StationSet) Get(id string) (Station, bool) {
	i, ok := s.byID[id]
	if !ok {
		return Station{}, false
	}
	return s.items[i], true
}

// All returns the stations in insertion order. The slice is shared; callers
// must not modify it.
func (s *StationSet) All() []Station { return s.items }

// Len reports the number of stations in the set.
func (s *StationSet) Len() int { return len(s.items) }
