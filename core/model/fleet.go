package model

import "time"

// LocationSample is a single GPS fix reported by a vehicle's telematics unit.
type LocationSample struct {
	VIN       string
	Latitude  float64
	Longitude float64
	Timestamp time.Time // observation time; naive source values are stored as UTC
}

// Booking is a scheduled vehicle return.
type Booking struct {
	VIN        string
	ReturnTime time.Time
	StationID  string // empty when the booking does not name a return station
}
