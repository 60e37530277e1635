package assess

import "fmt"

// Config defines the time-budget model parameters.
type Config struct {
	// AverageSpeedKMH is the assumed travel speed for drive-time estimates.
	AverageSpeedKMH float64 `json:"average_speed_kmh"`
	// BufferHours is the safety margin below which a reachable booking is
	// flagged as tight.
	BufferHours float64 `json:"buffer_hours"`
	// MaxSameDayDistanceKM discards implausible same-day reachability claims
	// caused by stale or erroneous position data.
	MaxSameDayDistanceKM float64 `json:"max_same_day_distance_km"`
	// SkipMissing drops bookings without a known vehicle position from the
	// output instead of emitting missing_location rows.
	SkipMissing bool `json:"skip_missing"`
}

// SetDefaults applies the operational defaults.
func (c *Config) SetDefaults() {
	if c.AverageSpeedKMH == 0 {
		c.AverageSpeedKMH = 45
	}
	if c.BufferHours == 0 {
		c.BufferHours = 2
	}
	if c.MaxSameDayDistanceKM == 0 {
		c.MaxSameDayDistanceKM = 1000
	}
}

// Validate rejects unusable parameters before any booking is processed.
func (c Config) Validate() error {
	if c.AverageSpeedKMH <= 0 {
		return fmt.Errorf("average_speed_kmh must be positive, got %v", c.AverageSpeedKMH)
	}
	if c.BufferHours < 0 {
		return fmt.Errorf("buffer_hours cannot be negative, got %v", c.BufferHours)
	}
	if c.MaxSameDayDistanceKM <= 0 {
		return fmt.Errorf("max_same_day_distance_km must be positive, got %v", c.MaxSameDayDistanceKM)
	}
	return nil
}

// Bands defines the distance thresholds of the traffic-light model.
// YellowKM below GreenKM is a caller configuration hazard, not an error:
// every distance above YellowKM classifies as red.
type Bands struct {
	GreenKM  float64 `json:"green_km"`
	YellowKM float64 `json:"yellow_km"`
}

// SetDefaults applies the operational defaults.
func (b *Bands) SetDefaults() {
	if b.GreenKM == 0 {
		b.GreenKM = 200
	}
	if b.YellowKM == 0 {
		b.YellowKM = 1000
	}
}

// Validate checks that both thresholds are positive.
func (b Bands) Validate() error {
	if b.GreenKM <= 0 {
		return fmt.Errorf("green_km must be positive, got %v", b.GreenKM)
	}
	if b.YellowKM <= 0 {
		return fmt.Errorf("yellow_km must be positive, got %v", b.YellowKM)
	}
	return nil
}
