package nsq

import (
	"encoding/json"
	"fmt"

	"github.com/nsqio/go-nsq"
)

// Producer publishes JSON payloads to NSQ topics.
type Producer struct {
	producer *nsq.Producer
}

// NewProducer connects to an NSQ daemon and verifies it responds
func NewProducer(address string) (*Producer, error) {
	producer, err := nsq.NewProducer(address, nsq.NewConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ producer: %w", err)
	}
	if err := producer.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping NSQ daemon: %w", err)
	}
	return &Producer{producer: producer}, nil
}

// Publish marshals the payload and sends it to the given topic
func (p *Producer) Publish(topic string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}
	if err := p.producer.Publish(topic, body); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", topic, err)
	}
	return nil
}

// Stop flushes pending publishes and closes the connection
func (p *Producer) Stop() {
	p.producer.Stop()
}
