package donation

import (
	"context"

	"github.com/goodcause/donationbackend/services/donationapi"
)

// Donator is the interface the wizard and the status page program against.
// The service in this package is its in-process implementation.
//
//go:generate mockgen -source=donator.go -package donation -destination donator_mock.go Donator
type Donator interface {
	// CreateOneTimeDonation validates the request, records the donation and
	// hands back the payload a gateway checkout session can be opened with.
	CreateOneTimeDonation(c context.Context, hostname string, req donationapi.CheckoutSessionRequest) (donationapi.OneTimeDonationResponse, error)

	// GetStatus reports the backend's view on a donation.
	GetStatus(c context.Context, donationUID string) (donationapi.TransactionStatus, error)
}
