package device

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/bvyvyana/sleepbrew/internal/domain"
	mqtt "github.com/eclipse/paho.mqtt.golang"
)

const (
	// commandQoS is at-least-once: the machine must not miss a brew command.
	commandQoS = 1
	statusQoS  = 1

	// DefaultAckTimeout bounds how long a dispatch waits for the machine
	// to confirm it started brewing.
	DefaultAckTimeout = 10 * time.Second
)

// Dispatcher sends a finalized brew command to a machine and reports
// whether the machine accepted it.
type Dispatcher interface {
	Dispatch(ctx context.Context, cmd domain.BrewCommand) (domain.BrewResult, error)
}

// DispatcherConfig holds topic patterns and timing for the MQTT dispatcher.
type DispatcherConfig struct {
	// CommandTopic is the publish pattern, e.g. "coffee/{device_id}/brew".
	CommandTopic string
	// StatusTopic is the subscribe pattern for acks, e.g. "coffee/+/status".
	StatusTopic string
	AckTimeout  time.Duration
}

// statusMessage is what the machine publishes when it handles a command.
type statusMessage struct {
	CommandID string `json:"command_id"`
	Status    string `json:"status"` // "ok" or "error"
	Detail    string `json:"detail,omitempty"`
}

// mqttDispatcher publishes brew commands and correlates status acks by
// command ID.
type mqttDispatcher struct {
	client mqtt.Client
	config DispatcherConfig

	mu      sync.Mutex
	pending map[string]chan statusMessage
}

// NewMQTTDispatcher subscribes to the status topic and returns a ready
// dispatcher.
func NewMQTTDispatcher(client mqtt.Client, config DispatcherConfig) (Dispatcher, error) {
	if config.AckTimeout <= 0 {
		config.AckTimeout = DefaultAckTimeout
	}

	d := &mqttDispatcher{
		client:  client,
		config:  config,
		pending: make(map[string]chan statusMessage),
	}

	token := client.Subscribe(config.StatusTopic, statusQoS, d.handleStatus)
	if token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("failed to subscribe to %s: %w", config.StatusTopic, token.Error())
	}

	return d, nil
}

func (d *mqttDispatcher) Dispatch(ctx context.Context, cmd domain.BrewCommand) (domain.BrewResult, error) {
	payload, err := json.Marshal(cmd)
	if err != nil {
		return domain.BrewResult{}, fmt.Errorf("failed to marshal brew command: %w", err)
	}

	ack := make(chan statusMessage, 1)
	key := cmd.CommandID.String()
	d.mu.Lock()
	d.pending[key] = ack
	d.mu.Unlock()
	defer func() {
		d.mu.Lock()
		delete(d.pending, key)
		d.mu.Unlock()
	}()

	topic := formatTopic(d.config.CommandTopic, cmd.DeviceID)
	start := time.Now()

	token := d.client.Publish(topic, commandQoS, false, payload)
	if token.Wait() && token.Error() != nil {
		return domain.BrewResult{}, fmt.Errorf("failed to publish brew command: %w", token.Error())
	}
	log.Printf("Dispatched %s brew to %s (command %s)", cmd.CoffeeType, topic, key)

	timeout := time.NewTimer(d.config.AckTimeout)
	defer timeout.Stop()

	select {
	case <-ctx.Done():
		return domain.BrewResult{}, ctx.Err()
	case <-timeout.C:
		return domain.BrewResult{
			Status:   domain.BrewStatusFailed,
			Duration: time.Since(start),
			Detail:   "no ack from machine",
		}, nil
	case msg := <-ack:
		result := domain.BrewResult{
			Status:   domain.BrewStatusSucceeded,
			Duration: time.Since(start),
			Detail:   msg.Detail,
		}
		if msg.Status != "ok" {
			result.Status = domain.BrewStatusFailed
		}
		return result, nil
	}
}

func (d *mqttDispatcher) handleStatus(_ mqtt.Client, msg mqtt.Message) {
	var status statusMessage
	if err := json.Unmarshal(msg.Payload(), &status); err != nil {
		log.Printf("MQTT: ignoring malformed status on %s: %v", msg.Topic(), err)
		return
	}

	d.mu.Lock()
	ack, ok := d.pending[status.CommandID]
	d.mu.Unlock()
	if !ok {
		// Ack for a command we are not waiting on (retransmit or restart).
		return
	}

	select {
	case ack <- status:
	default:
	}
}

// formatTopic replaces the {device_id} placeholder with the actual device ID.
func formatTopic(topicPattern, deviceID string) string {
	return strings.ReplaceAll(topicPattern, "{device_id}", deviceID)
}
