package gatewayepayco

import (
	"context"
	"fmt"

	"github.com/goodcause/donationbackend/lib/mylog"
	"github.com/goodcause/donationbackend/lib/myuuid"
	"github.com/goodcause/donationbackend/services/donationapi"
)

// RedirectClient implements the hosted-page strategy: create a session on the
// gateway with a fresh idempotency token and redirect the full page to the
// gateway's checkout page. Failures here are terminal, never auto-retried.
type RedirectClient struct {
	cfg     Config
	gateway Gateway
	uuider  myuuid.UUIDer
	logger  mylog.Logger
}

func NewRedirectClient(cfg Config, gateway Gateway, uuider myuuid.UUIDer) *RedirectClient {
	return &RedirectClient{
		cfg:     cfg.withDefaults(),
		gateway: gateway,
		uuider:  uuider,
		logger:  mylog.New("gatewayepayco"),
	}
}

func (rc *RedirectClient) OpenCheckout(c context.Context, payload donationapi.CheckoutSessionPayload) (CheckoutResult, error) {
	token := rc.uuider.Create()

	resp, err := rc.gateway.CreateSession(c, payload.PublicKey, token, redirectFields(payload))
	if err != nil {
		return CheckoutResult{}, &SessionError{Err: err}
	}
	if !resp.Success || resp.Data.SessionID == "" {
		return CheckoutResult{}, &SessionError{Err: fmt.Errorf("gateway refused to create a session for invoice %s", payload.Invoice)}
	}

	rc.logger.Log(c, payload.Invoice, mylog.SeverityInfo, "Created hosted session %s for invoice %s", resp.Data.SessionID, payload.Invoice)

	return CheckoutResult{
		Mode:        ModeRedirect,
		RedirectURL: fmt.Sprintf("%s?transaction=%s", rc.cfg.CheckoutPageURL, resp.Data.SessionID),
	}, nil
}
