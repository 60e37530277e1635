package model

import "time"

// Status is the time-budget verdict for a single booking.
type Status string

const (
	StatusReachable       Status = "reachable"
	StatusTight           Status = "tight"
	StatusUnreachable     Status = "unreachable"
	StatusMissingLocation Status = "missing_location"
)

func (s Status) String() string { return string(s) }

// Band is the distance traffic-light classification for a return row.
type Band string

const (
	BandGreen       Band = "green"
	BandYellow      Band = "yellow"
	BandRed         Band = "red"
	BandMissingData Band = "missing-data"
)

func (b Band) String() string { return string(b) }

// Assessment is the time-budget verdict produced for one booking.
// DistanceKM, TravelHours and HoursUntilBooking are NaN when the vehicle has
// no known position; they are never zeroed to stand in for "unknown".
type Assessment struct {
	VIN               string    `json:"vin"`
	BookingTime       time.Time `json:"booking_time"`
	StationID         string    `json:"station_id"`
	StationName       string    `json:"station_name"`
	DistanceKM        float64   `json:"distance_km"`
	TravelHours       float64   `json:"travel_hours"`
	HoursUntilBooking float64   `json:"hours_until_booking"`
	CanReach          bool      `json:"can_reach"`
	Status            Status    `json:"status"`
}

// ReturnRow is one line of the distance-band return report. Coordinates and
// distance are NaN when unknown so the serializer can render them as empty
// cells.
type ReturnRow struct {
	VIN         string  `json:"vin"`
	StationID   string  `json:"station_id"`
	StationName string  `json:"station_name"`
	StationLat  float64 `json:"station_lat"`
	StationLon  float64 `json:"station_lon"`
	VehicleLat  float64 `json:"vehicle_lat"`
	VehicleLon  float64 `json:"vehicle_lon"`
	DistanceKM  float64 `json:"distance_km"`
	Band        Band    `json:"status"`
}
