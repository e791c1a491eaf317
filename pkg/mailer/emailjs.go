package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// EmailJS sends through the EmailJS REST API.
type EmailJS struct {
	endpoint    string
	publicKey   string
	accessToken string
	client      *http.Client
}

// EmailJSOption configures an EmailJS sender.
type EmailJSOption func(*EmailJS)

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(c *http.Client) EmailJSOption {
	return func(e *EmailJS) {
		if c != nil {
			e.client = c
		}
	}
}

// WithAccessToken sets the account private key sent as accessToken.
func WithAccessToken(token string) EmailJSOption {
	return func(e *EmailJS) { e.accessToken = token }
}

func NewEmailJS(endpoint, publicKey string, opts ...EmailJSOption) (*EmailJS, error) {
	if endpoint == "" {
		return nil, fmt.Errorf("%w: EmailJS endpoint is required", ErrInvalidConfig)
	}
	if publicKey == "" {
		return nil, fmt.Errorf("%w: EmailJS public key is required", ErrInvalidConfig)
	}
	e := &EmailJS{endpoint: endpoint, publicKey: publicKey, client: http.DefaultClient}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

type emailJSRequest struct {
	ServiceID      string `json:"service_id"`
	TemplateID     string `json:"template_id"`
	UserID         string `json:"user_id"`
	TemplateParams Params `json:"template_params"`
	AccessToken    string `json:"accessToken,omitempty"`
}

func (e *EmailJS) Send(ctx context.Context, serviceID, templateID string, params Params) error {
	if err := checkRequest(ProviderEmailJS, serviceID, templateID); err != nil {
		return err
	}

	body, err := json.Marshal(emailJSRequest{
		ServiceID:      serviceID,
		TemplateID:     templateID,
		UserID:         e.publicKey,
		TemplateParams: params,
		AccessToken:    e.accessToken,
	})
	if err != nil {
		return deliveryError(ProviderEmailJS, serviceID, templateID, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.endpoint, bytes.NewReader(body))
	if err != nil {
		return deliveryError(ProviderEmailJS, serviceID, templateID, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return deliveryError(ProviderEmailJS, serviceID, templateID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return deliveryError(ProviderEmailJS, serviceID, templateID,
			fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg))))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
