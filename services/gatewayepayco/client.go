package gatewayepayco

import (
	"context"
	"sync"

	"github.com/goodcause/donationbackend/lib/mylog"
	"github.com/goodcause/donationbackend/lib/myuuid"
	"github.com/goodcause/donationbackend/services/donationapi"
)

// Client hands the donor off to the payment gateway.
//
//go:generate mockgen -source=client.go -package gatewayepayco -destination client_mock.go Client
type Client interface {
	OpenCheckout(c context.Context, payload donationapi.CheckoutSessionPayload) (CheckoutResult, error)
}

// stickyClient tries the embedded strategy first. After a single embedded
// failure it permanently switches to the redirect strategy for the remainder
// of its lifetime, so repeated submissions do not pay the failure latency
// again.
type stickyClient struct {
	mutex    sync.Mutex
	fellBack bool

	embedded *EmbeddedClient
	redirect *RedirectClient
	logger   mylog.Logger
}

func NewClient(cfg Config, gateway Gateway, registry *ResourceRegistry, uuider myuuid.UUIDer) Client {
	return &stickyClient{
		embedded: NewEmbeddedClient(cfg, gateway, registry),
		redirect: NewRedirectClient(cfg, gateway, uuider),
		logger:   mylog.New("gatewayepayco"),
	}
}

func (s *stickyClient) OpenCheckout(c context.Context, payload donationapi.CheckoutSessionPayload) (CheckoutResult, error) {
	if !s.hasFallenBack() {
		result, err := s.embedded.OpenCheckout(c, payload)
		if err == nil {
			return result, nil
		}

		s.markFallenBack()
		s.logger.Log(c, payload.Invoice, mylog.SeverityWarn,
			"Embedded checkout unavailable, switching to hosted redirect for this session: %s", err)
	}

	return s.redirect.OpenCheckout(c, payload)
}

func (s *stickyClient) hasFallenBack() bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.fellBack
}

func (s *stickyClient) markFallenBack() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.fellBack = true
}
