package admin

import (
	"context"

	"github.com/propline/adminauth/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/propline/adminauth/services/admin SMSGateway,EventPublisher

// SMSGateway wraps the external OTP delivery provider
type SMSGateway interface {
	// SendOTP dispatches a code to the mobile and returns the provider
	// request id
	SendOTP(ctx context.Context, mobile string) (string, error)

	// ResendOTP re-dispatches an existing request and returns the new
	// provider request id
	ResendOTP(ctx context.Context, requestID, mobile string) (string, error)

	// VerifyAssertion checks a widget assertion token and returns the mobile
	// number the provider claims to have verified. The claim is advisory;
	// callers must re-validate against the whitelist.
	VerifyAssertion(ctx context.Context, assertionToken string) (string, error)
}

// EventPublisher publishes security and session audit events
type EventPublisher interface {
	PublishSecurityEvent(ctx context.Context, event *models.SecurityEvent) error
	PublishSessionEvent(ctx context.Context, event *models.SessionEvent) error
}
