package donationapi

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// Donation bounds in COP cents. Anything outside is refused before a
	// checkout session is ever requested.
	MinAmountInCents = 5000
	MaxAmountInCents = 20000000

	Currency = "COP"
)

type IdentificationType string

const (
	IdentificationNationalID IdentificationType = "CC"
	IdentificationForeignID  IdentificationType = "CE"
	IdentificationTaxID      IdentificationType = "NIT"
	IdentificationPassport   IdentificationType = "PP"
)

type DonorInfo struct {
	IDType    IdentificationType
	IDNumber  string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	City      string
	Country   string
}

func (d DonorInfo) FullName() string {
	return d.FirstName + " " + d.LastName
}

// Wizard steps. Forward transitions are gated by validation,
// backward transitions always succeed and retain prior input.
const (
	StepAmountSelection = 1
	StepDonorInfo       = 2
	StepReviewAndPay    = 3
)

type DonationDraft struct {
	UID            string
	CreatedAt      time.Time
	LastModified   *time.Time
	AmountInCents  int
	IsCustomAmount bool
	Donor          DonorInfo
	Step           int
	Submitting     bool
	CampaignUID    int
}

type Status string

const (
	StatusApproved        Status = "Approved"
	StatusRejected        Status = "Rejected"
	StatusPending         Status = "Pending"
	StatusPendingCheckout Status = "PendingCheckout"
	StatusFailed          Status = "Failed"
)

// ParseStatus normalizes a raw backend status string. Anything unrecognized
// collapses to Failed so that callers never branch on provider-specific values.
func ParseStatus(raw string) Status {
	switch Status(raw) {
	case StatusApproved, StatusRejected, StatusPending, StatusPendingCheckout, StatusFailed:
		return Status(raw)
	default:
		return StatusFailed
	}
}

// IsPending treats PendingCheckout as equivalent to Pending.
func (s Status) IsPending() bool {
	return s == StatusPending || s == StatusPendingCheckout
}

type TransactionStatus struct {
	Status        Status     `json:"status"`
	AmountInCents int        `json:"amount"`
	ReferenceCode string     `json:"referenceCode"`
	DonorName     string     `json:"donorName"`
	ApprovedAt    *time.Time `json:"approvedDate,omitempty"`
	TransactionAt time.Time  `json:"transactionDate"`
}

func (t TransactionStatus) AmountFormatted() string {
	return FormatCOP(t.AmountInCents)
}

var copPrinter = message.NewPrinter(language.Spanish)

// FormatCOP renders an amount the way Colombian donors expect it: "$ 100.000 COP".
func FormatCOP(amountInCents int) string {
	return copPrinter.Sprintf("$ %d COP", amountInCents)
}

// PaymentReference holds the reference codes found on the gateway's return URL.
type PaymentReference struct {
	GatewayRef string
	BackendRef string
}

func (r PaymentReference) IsEmpty() bool {
	return r.GatewayRef == "" && r.BackendRef == ""
}

func (r PaymentReference) String() string {
	return fmt.Sprintf("gateway:%s backend:%s", r.GatewayRef, r.BackendRef)
}
