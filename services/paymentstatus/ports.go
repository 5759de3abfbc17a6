package paymentstatus

import (
	"context"
	"fmt"

	"github.com/goodcause/donationbackend/lib/myerrors"
	"github.com/goodcause/donationbackend/services/donationapi"
	"github.com/goodcause/donationbackend/services/gatewayepayco"
)

// GatewayValidator looks a transaction up on the gateway by its own reference.
//
//go:generate mockgen -source=ports.go -package paymentstatus -destination ports_mock.go GatewayValidator,BackendStatus
type GatewayValidator interface {
	Validate(c context.Context, gatewayRef string) (donationapi.TransactionStatus, error)
}

// BackendStatus reports the backend's own view on a donation. The donation
// service satisfies this interface.
type BackendStatus interface {
	GetStatus(c context.Context, donationUID string) (donationapi.TransactionStatus, error)
}

type gatewayValidator struct {
	gateway gatewayepayco.Gateway
}

func NewGatewayValidator(gateway gatewayepayco.Gateway) GatewayValidator {
	return &gatewayValidator{
		gateway: gateway,
	}
}

func (v *gatewayValidator) Validate(c context.Context, gatewayRef string) (donationapi.TransactionStatus, error) {
	resp, err := v.gateway.ValidateReference(c, gatewayRef)
	if err != nil {
		return donationapi.TransactionStatus{}, myerrors.NewUnavailableError(fmt.Errorf("error validating reference %s: %s", gatewayRef, err))
	}
	if !resp.Success {
		return donationapi.TransactionStatus{}, myerrors.NewNotFoundError(fmt.Errorf("reference %s not known by gateway: %s", gatewayRef, resp.Message))
	}

	return resp.ToTransactionStatus(), nil
}
