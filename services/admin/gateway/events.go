package gateway

import (
	"context"
	"fmt"

	"github.com/propline/adminauth/internal/pkg/models"
	"github.com/propline/adminauth/internal/pkg/nsq"
)

// EventGW publishes security and session audit events to NSQ
type EventGW struct {
	cfg      *models.Config
	producer *nsq.Producer
}

// NewEventGW creates a new event gateway instance
func NewEventGW(cfg *models.Config, producer *nsq.Producer) *EventGW {
	return &EventGW{
		cfg:      cfg,
		producer: producer,
	}
}

// PublishSecurityEvent publishes a security event to the security topic
func (g *EventGW) PublishSecurityEvent(ctx context.Context, event *models.SecurityEvent) error {
	if err := g.producer.Publish(g.cfg.NSQ.SecurityTopic, event); err != nil {
		return fmt.Errorf("failed to publish security event: %w", err)
	}
	return nil
}

// PublishSessionEvent publishes a session lifecycle event to the session topic
func (g *EventGW) PublishSessionEvent(ctx context.Context, event *models.SessionEvent) error {
	if err := g.producer.Publish(g.cfg.NSQ.SessionTopic, event); err != nil {
		return fmt.Errorf("failed to publish session event: %w", err)
	}
	return nil
}
