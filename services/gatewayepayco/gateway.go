package gatewayepayco

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	defaultScriptURL       = "https://checkout.epayco.co/checkout.js"
	defaultSessionBaseURL  = "https://secure.payco.co/checkoutopen"
	defaultCheckoutPageURL = "https://checkout.epayco.co/checkout.php"
	defaultValidationURL   = "https://secure.epayco.co/validation/v1/reference"

	requestTimeout = 10 * time.Second
)

type Config struct {
	PublicKey       string
	Test            bool
	ScriptURL       string
	SessionBaseURL  string
	CheckoutPageURL string
	ValidationURL   string
}

func (cfg Config) withDefaults() Config {
	if cfg.ScriptURL == "" {
		cfg.ScriptURL = defaultScriptURL
	}
	if cfg.SessionBaseURL == "" {
		cfg.SessionBaseURL = defaultSessionBaseURL
	}
	if cfg.CheckoutPageURL == "" {
		cfg.CheckoutPageURL = defaultCheckoutPageURL
	}
	if cfg.ValidationURL == "" {
		cfg.ValidationURL = defaultValidationURL
	}
	return cfg
}

// Gateway is the HTTP surface of the payment gateway.
//
//go:generate mockgen -source=gateway.go -package gatewayepayco -destination gateway_mock.go Gateway
type Gateway interface {
	FetchCheckoutScript(c context.Context) error
	CreateSession(c context.Context, publicKey string, token string, fields map[string]string) (SessionResponse, error)
	ValidateReference(c context.Context, gatewayRef string) (ValidationResponse, error)
}

type restyGateway struct {
	cfg    Config
	client *resty.Client
}

func NewGateway(cfg Config) Gateway {
	return &restyGateway{
		cfg:    cfg.withDefaults(),
		client: resty.New().SetTimeout(requestTimeout),
	}
}

func (g *restyGateway) FetchCheckoutScript(c context.Context) error {
	resp, err := g.client.R().
		SetContext(c).
		Get(g.cfg.ScriptURL)
	if err != nil {
		return fmt.Errorf("error fetching checkout script %s: %s", g.cfg.ScriptURL, err)
	}
	if resp.IsError() {
		return fmt.Errorf("error fetching checkout script %s: status %d", g.cfg.ScriptURL, resp.StatusCode())
	}

	return nil
}

func (g *restyGateway) CreateSession(c context.Context, publicKey string, token string, fields map[string]string) (SessionResponse, error) {
	jsonFields, err := json.Marshal(fields)
	if err != nil {
		return SessionResponse{}, fmt.Errorf("error serializing session fields: %s", err)
	}

	sessionResp := SessionResponse{}
	resp, err := g.client.R().
		SetContext(c).
		SetFormData(map[string]string{
			"fname": string(jsonFields),
		}).
		SetResult(&sessionResp).
		Post(fmt.Sprintf("%s/%s/%s", g.cfg.SessionBaseURL, publicKey, token))
	if err != nil {
		return SessionResponse{}, fmt.Errorf("error creating gateway session: %s", err)
	}
	if resp.IsError() {
		return SessionResponse{}, fmt.Errorf("error creating gateway session: status %d", resp.StatusCode())
	}

	return sessionResp, nil
}

func (g *restyGateway) ValidateReference(c context.Context, gatewayRef string) (ValidationResponse, error) {
	validationResp := ValidationResponse{}
	resp, err := g.client.R().
		SetContext(c).
		SetResult(&validationResp).
		Get(fmt.Sprintf("%s/%s", g.cfg.ValidationURL, gatewayRef))
	if err != nil {
		return ValidationResponse{}, fmt.Errorf("error validating reference %s: %s", gatewayRef, err)
	}
	if resp.IsError() {
		return ValidationResponse{}, fmt.Errorf("error validating reference %s: status %d", gatewayRef, resp.StatusCode())
	}

	return validationResp, nil
}
