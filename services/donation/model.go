package donation

import (
	"time"

	"github.com/goodcause/donationbackend/services/donationapi"
)

// Donation is the backend's own record of a one-time donation. It is created
// in status PendingCheckout when a checkout session is handed out, and updated
// by the gateway's confirmation webhook.
type Donation struct {
	UID           string
	CreatedAt     time.Time
	LastModified  *time.Time
	AmountInCents int
	Currency      string
	Donor         donationapi.DonorInfo
	CampaignUID   int
	Status        donationapi.Status
	StatusDetails string
	PaymentMethod string
	GatewayRef    string
	ApprovedAt    *time.Time
}

func (d Donation) ToTransactionStatus() donationapi.TransactionStatus {
	transactionAt := d.CreatedAt
	if d.LastModified != nil {
		transactionAt = *d.LastModified
	}

	return donationapi.TransactionStatus{
		Status:        d.Status,
		AmountInCents: d.AmountInCents,
		ReferenceCode: d.UID,
		DonorName:     d.Donor.FullName(),
		ApprovedAt:    d.ApprovedAt,
		TransactionAt: transactionAt,
	}
}

// Config carries the gateway account settings the donation service needs to
// construct checkout session payloads.
type Config struct {
	PublicKey string
	Test      bool
	// Language and country passed to the gateway. Donations are collected in
	// Colombia, so these default to "es"/"co" when left empty.
	Lang    string
	Country string
}

func (cfg Config) withDefaults() Config {
	if cfg.Lang == "" {
		cfg.Lang = "es"
	}
	if cfg.Country == "" {
		cfg.Country = "co"
	}
	return cfg
}
