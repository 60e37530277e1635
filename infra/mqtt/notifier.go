package mqtt

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	"github.com/hamburgroadsurfer-create/LRP/core/alert"
	"github.com/hamburgroadsurfer-create/LRP/core/model"
	"github.com/hamburgroadsurfer-create/LRP/infra/logger"
)

type pahoClient interface {
	IsConnected() bool
	Connect() paho.Token
	Disconnect(quiesce uint)
	Publish(topic string, qos byte, retained bool, payload interface{}) paho.Token
}

var newMQTTClient = func(opts *paho.ClientOptions) pahoClient {
	return paho.NewClient(opts)
}

// Ensure both notifier implementations satisfy the core port.
var (
	_ alert.Notifier = (*PahoNotifier)(nil)
	_ alert.Notifier = (*MockNotifier)(nil)
)

// PahoNotifier publishes at-risk assessments to an MQTT topic using Eclipse
// Paho. One JSON message is published per assessment so dashboard consumers
// can filter by VIN or station.
type PahoNotifier struct {
	cli     pahoClient
	topic   string
	qos     byte
	retain  bool
	timeout time.Duration
	logger  logger.Logger
}

// alertPayload is the wire format of one alert message. NaN metrics are
// sent as null since JSON has no NaN literal.
type alertPayload struct {
	VIN               string   `json:"vin"`
	BookingTime       string   `json:"booking_time"`
	StationID         string   `json:"station_id"`
	StationName       string   `json:"station_name"`
	DistanceKM        *float64 `json:"distance_km"`
	HoursUntilBooking *float64 `json:"hours_until_booking"`
	Status            string   `json:"status"`
}

// NewPahoNotifier connects to the MQTT broker.
func NewPahoNotifier(cfg Config) (*PahoNotifier, error) {
	opts := paho.NewClientOptions().AddBroker(cfg.Broker)
	opts.SetClientID(fmt.Sprintf("%s-%s", cfg.ClientID, uuid.NewString()[:8]))
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
	}
	if cfg.Password != "" {
		opts.SetPassword(cfg.Password)
	}
	if cfg.UseTLS {
		tlsCfg, err := cfg.LoadTLSConfig()
		if err != nil {
			return nil, err
		}
		opts.SetTLSConfig(tlsCfg)
	}

	log := logger.New("mqtt_notifier")
	timeout := time.Duration(cfg.TimeoutMS) * time.Millisecond
	cli := newMQTTClient(opts)
	token := cli.Connect()
	if !token.WaitTimeout(timeout) {
		return nil, fmt.Errorf("mqtt connect to %s timed out", cfg.Broker)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("mqtt connect to %s: %w", cfg.Broker, err)
	}
	return &PahoNotifier{
		cli:     cli,
		topic:   cfg.Topic,
		qos:     cfg.QoS,
		retain:  cfg.Retain,
		timeout: timeout,
		logger:  log,
	}, nil
}

// NotifyAtRisk publishes one message per assessment and waits for each
// publish to complete.
func (n *PahoNotifier) NotifyAtRisk(assessments []model.Assessment) error {
	for _, a := range assessments {
		payload, err := json.Marshal(toPayload(a))
		if err != nil {
			return fmt.Errorf("encode alert for %s: %w", a.VIN, err)
		}
		token := n.cli.Publish(n.topic, n.qos, n.retain, payload)
		if !token.WaitTimeout(n.timeout) {
			return fmt.Errorf("publish alert for %s timed out", a.VIN)
		}
		if err := token.Error(); err != nil {
			return fmt.Errorf("publish alert for %s: %w", a.VIN, err)
		}
		n.logger.Debugw("alert published", map[string]any{"vin": a.VIN, "status": a.Status.String()})
	}
	return nil
}

// Close disconnects from the broker.
func (n *PahoNotifier) Close() error {
	if n.cli.IsConnected() {
		n.cli.Disconnect(250)
	}
	return nil
}

func toPayload(a model.Assessment) alertPayload {
	return alertPayload{
		VIN:               a.VIN,
		BookingTime:       a.BookingTime.Format(time.RFC3339),
		StationID:         a.StationID,
		StationName:       a.StationName,
		DistanceKM:        optionalFloat(a.DistanceKM),
		HoursUntilBooking: optionalFloat(a.HoursUntilBooking),
		Status:            a.Status.String(),
	}
}

func optionalFloat(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	return &v
}
