package usecase

import (
	"github.com/propline/adminauth/internal/pkg/models"
	"github.com/propline/adminauth/internal/pkg/totp"
	"github.com/propline/adminauth/services/admin"
)

type AdminUC struct {
	adminRepo admin.AdminRepo
	smsGW     admin.SMSGateway
	events    admin.EventPublisher
	totp      *totp.Engine
	cfg       *models.Config
}

// NewAdminUC creates a new admin auth usecase instance
func NewAdminUC(
	adminRepo admin.AdminRepo,
	smsGW admin.SMSGateway,
	events admin.EventPublisher,
	cfg *models.Config,
) *AdminUC {
	return &AdminUC{
		adminRepo: adminRepo,
		smsGW:     smsGW,
		events:    events,
		totp:      totp.NewEngine(cfg.Auth.TOTPIssuer),
		cfg:       cfg,
	}
}
