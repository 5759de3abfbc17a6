package gatewayepayco

import (
	"context"
	"fmt"

	"github.com/goodcause/donationbackend/lib/mylog"
	"github.com/goodcause/donationbackend/services/donationapi"
)

// EmbeddedClient implements the embedded-widget strategy: make sure the
// gateway's checkout script is available (fetched at most once), construct
// and cache a configured widget handle, and hand the mapped fields to the
// checkout page for rendering.
type EmbeddedClient struct {
	cfg      Config
	gateway  Gateway
	registry *ResourceRegistry
	logger   mylog.Logger
}

func NewEmbeddedClient(cfg Config, gateway Gateway, registry *ResourceRegistry) *EmbeddedClient {
	return &EmbeddedClient{
		cfg:      cfg.withDefaults(),
		gateway:  gateway,
		registry: registry,
		logger:   mylog.New("gatewayepayco"),
	}
}

func (e *EmbeddedClient) OpenCheckout(c context.Context, payload donationapi.CheckoutSessionPayload) (CheckoutResult, error) {
	err := e.ensureScript(c)
	if err != nil {
		return CheckoutResult{}, &InitError{Err: err}
	}

	handle, err := e.ensureHandle(c, payload)
	if err != nil {
		return CheckoutResult{}, &InitError{Err: err}
	}

	return CheckoutResult{
		Mode: ModeEmbedded,
		Widget: &WidgetPage{
			ScriptURL: e.cfg.ScriptURL,
			PublicKey: handle.PublicKey,
			Test:      handle.Test,
			Fields:    widgetFields(payload),
		},
	}, nil
}

// ensureScript fetches the checkout script at most once per registry lifetime.
func (e *EmbeddedClient) ensureScript(c context.Context) error {
	if e.registry.IsScriptLoaded(e.cfg.ScriptURL) {
		return nil
	}

	err := e.gateway.FetchCheckoutScript(c)
	if err != nil {
		return err
	}

	e.registry.MarkScriptLoaded(e.cfg.ScriptURL)

	return nil
}

// ensureHandle lazily constructs the widget handle, keyed by publicKey+test,
// and reuses it across calls.
func (e *EmbeddedClient) ensureHandle(c context.Context, payload donationapi.CheckoutSessionPayload) (*WidgetHandle, error) {
	if payload.PublicKey == "" {
		return nil, fmt.Errorf("cannot configure widget without a public key")
	}

	key := handleKey(payload.PublicKey, payload.Test)
	handle, found := e.registry.GetHandle(key)
	if found {
		return handle, nil
	}

	handle = &WidgetHandle{
		PublicKey: payload.PublicKey,
		Test:      payload.Test,
	}
	e.registry.PutHandle(key, handle)

	e.logger.Log(c, payload.Invoice, mylog.SeverityDebug, "Configured widget handle for key %s", key)

	return handle, nil
}
