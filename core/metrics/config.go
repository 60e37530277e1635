package metrics

import "fmt"

// Config defines settings for metrics sinks. All sinks are disabled by
// default; a batch run works without any observability backend.
type Config struct {
	Prometheus PromConfig   `json:"prometheus"`
	Influx     InfluxConfig `json:"influx"`
}

// PromConfig configures the Prometheus sink. Batch runs push to a
// Pushgateway after the run completes instead of exposing a scrape endpoint.
type PromConfig struct {
	Enabled bool   `json:"enabled"`
	PushURL string `json:"push_url"`
	Job     string `json:"job"`
}

// InfluxConfig configures the InfluxDB sink.
type InfluxConfig struct {
	Enabled bool   `json:"enabled"`
	URL     string `json:"url"`
	Token   string `json:"token"`
	Org     string `json:"org"`
	Bucket  string `json:"bucket"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.Prometheus.Job == "" {
		c.Prometheus.Job = "lrp"
	}
}

// Validate checks mandatory fields of the enabled sinks.
func (c Config) Validate() error {
	if c.Prometheus.Enabled && c.Prometheus.PushURL == "" {
		return fmt.Errorf("prometheus push_url is required when the sink is enabled")
	}
	if c.Influx.Enabled {
		if c.Influx.URL == "" {
			return fmt.Errorf("influx url is required when the sink is enabled")
		}
		if c.Influx.Bucket == "" {
			return fmt.Errorf("influx bucket is required when the sink is enabled")
		}
	}
	return nil
}
