package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	httpclient "github.com/propline/adminauth/internal/pkg/http"
	"github.com/propline/adminauth/internal/pkg/models"
)

// SMSGW talks to the external OTP delivery provider over HTTPS and verifies
// the signed assertions its login widget hands back to the browser.
type SMSGW struct {
	cfg    *models.Config
	client *httpclient.Client
}

// NewSMSGW creates a new SMS gateway instance
func NewSMSGW(cfg *models.Config) *SMSGW {
	return &SMSGW{
		cfg:    cfg,
		client: httpclient.NewClient(cfg.Gateway.BaseURL, time.Duration(cfg.Gateway.Timeout)*time.Second),
	}
}

type sendOTPRequest struct {
	Mobile string `json:"mobile"`
}

type resendOTPRequest struct {
	RequestID string `json:"request_id"`
	Mobile    string `json:"mobile"`
}

type otpResponse struct {
	RequestID string `json:"request_id"`
	Status    string `json:"status"`
}

func (g *SMSGW) authHeaders() map[string]string {
	return map[string]string{
		"Authorization": "Bearer " + g.cfg.Gateway.APIKey,
	}
}

// SendOTP dispatches a one-time code to the mobile number
func (g *SMSGW) SendOTP(ctx context.Context, mobile string) (string, error) {
	var resp otpResponse
	err := g.client.PostJSON(ctx, "/v1/otp/send", g.authHeaders(), sendOTPRequest{Mobile: mobile}, &resp)
	if err != nil {
		return "", fmt.Errorf("failed to send otp: %w", err)
	}
	if resp.RequestID == "" {
		return "", fmt.Errorf("provider returned no request id")
	}

	return resp.RequestID, nil
}

// ResendOTP re-dispatches the code for an existing provider request
func (g *SMSGW) ResendOTP(ctx context.Context, requestID, mobile string) (string, error) {
	var resp otpResponse
	err := g.client.PostJSON(ctx, "/v1/otp/resend", g.authHeaders(), resendOTPRequest{RequestID: requestID, Mobile: mobile}, &resp)
	if err != nil {
		return "", fmt.Errorf("failed to resend otp: %w", err)
	}
	if resp.RequestID == "" {
		return "", fmt.Errorf("provider returned no request id")
	}

	return resp.RequestID, nil
}

// VerifyAssertion validates the signature and expiry of a widget assertion
// token and returns the mobile claim it carries. Verification is local; the
// provider signs assertions with the shared widget secret.
func (g *SMSGW) VerifyAssertion(ctx context.Context, assertionToken string) (string, error) {
	token, err := jwt.Parse(assertionToken, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(g.cfg.Gateway.WidgetSecret), nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to parse assertion: %w", err)
	}
	if !token.Valid {
		return "", fmt.Errorf("assertion token is not valid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("unexpected assertion claims")
	}

	mobile, ok := claims["mobile"].(string)
	if !ok || mobile == "" {
		return "", fmt.Errorf("assertion has no mobile claim")
	}

	return mobile, nil
}
