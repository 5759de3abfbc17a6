package gatewayepayco

import (
	"strconv"
	"strings"
	"time"

	"github.com/goodcause/donationbackend/services/donationapi"
)

// Mode tells the caller how the hand-off to the gateway should happen.
type Mode string

const (
	ModeEmbedded Mode = "embedded"
	ModeRedirect Mode = "redirect"
)

// CheckoutResult is what OpenCheckout hands back: either the data needed to
// render the embedded widget, or a URL to redirect the full page to.
type CheckoutResult struct {
	Mode        Mode
	Widget      *WidgetPage
	RedirectURL string
}

// WidgetPage carries everything the embedded checkout page needs.
type WidgetPage struct {
	ScriptURL string
	PublicKey string
	Test      bool
	Fields    map[string]string
}

// WidgetHandle is the cached, configured widget. One handle exists per
// publicKey+test combination within a client instance.
type WidgetHandle struct {
	PublicKey string
	Test      bool
}

func handleKey(publicKey string, test bool) string {
	return publicKey + "/" + strconv.FormatBool(test)
}

// SessionResponse is the gateway's answer on hosted-session creation.
type SessionResponse struct {
	Success bool        `json:"success"`
	Data    SessionData `json:"data"`
}

type SessionData struct {
	SessionID string `json:"id_session"`
}

// ValidationResponse is the gateway's answer on a transaction-validation lookup.
type ValidationResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message,omitempty"`
	Data    ValidationData `json:"data"`
}

type ValidationData struct {
	ResponseCode     string `json:"x_cod_response"`
	Amount           string `json:"x_amount"`
	Invoice          string `json:"x_id_invoice"`
	CustomerName     string `json:"x_customer_name"`
	CustomerLastName string `json:"x_customer_lastname"`
	ApprovalCode     string `json:"x_approval_code"`
	TransactionDate  string `json:"x_transaction_date"`
}

// ToTransactionStatus normalizes the gateway's own response shape at the
// boundary: response codes 1/2/3 map to Approved/Rejected/Pending, anything
// else is Failed.
func (v ValidationResponse) ToTransactionStatus() donationapi.TransactionStatus {
	status := donationapi.StatusFailed
	switch v.Data.ResponseCode {
	case "1":
		status = donationapi.StatusApproved
	case "2":
		status = donationapi.StatusRejected
	case "3":
		status = donationapi.StatusPending
	}

	amount, _ := strconv.Atoi(v.Data.Amount)

	transactionAt, _ := time.Parse("2006-01-02 15:04:05", v.Data.TransactionDate)

	var approvedAt *time.Time
	if status == donationapi.StatusApproved {
		approvedAt = &transactionAt
	}

	return donationapi.TransactionStatus{
		Status:        status,
		AmountInCents: amount,
		ReferenceCode: v.Data.Invoice,
		DonorName:     strings.TrimSpace(v.Data.CustomerName + " " + v.Data.CustomerLastName),
		ApprovedAt:    approvedAt,
		TransactionAt: transactionAt,
	}
}

// widgetFields maps the session payload onto the widget's own argument names.
func widgetFields(payload donationapi.CheckoutSessionPayload) map[string]string {
	fields := map[string]string{
		"name":                payload.Name,
		"description":         payload.Description,
		"invoice":             payload.Invoice,
		"currency":            payload.Currency,
		"amount":              payload.Amount,
		"tax_base":            payload.TaxBase,
		"tax":                 payload.Tax,
		"country":             strings.ToUpper(payload.Country),
		"lang":                payload.Lang,
		"external":            "false",
		"response":            payload.ResponseURL,
		"confirmation":        payload.ConfirmationURL,
		"method_confirmation": payload.MethodConfirmation,
		"name_billing":        payload.CustomerName,
		"last_name_billing":   payload.CustomerLastName,
		"address_billing":     payload.CustomerAddress,
		"type_doc_billing":    payload.CustomerDocType,
		"mobilephone_billing": payload.CustomerPhone,
		"number_doc_billing":  payload.CustomerDocNumber,
		"email_billing":       payload.CustomerEmail,
		"city_billing":        payload.CustomerCity,
		"extra1":              payload.Extra1,
		"extra2":              payload.Extra2,
		"extra3":              payload.Extra3,
	}

	return fields
}

// redirectFields maps the session payload onto the gateway's form-encoded key
// names used by the hosted-page flow. Billing fields are included only when
// non-empty.
func redirectFields(payload donationapi.CheckoutSessionPayload) map[string]string {
	fields := map[string]string{
		"epaycoKey":          payload.PublicKey,
		"epaycoTest":         strconv.FormatBool(payload.Test),
		"epaycoName":         payload.Name,
		"epaycoDescription":  payload.Description,
		"epaycoInvoice":      payload.Invoice,
		"epaycoCurrency":     strings.ToUpper(payload.Currency),
		"epaycoAmount":       payload.Amount,
		"epaycoTax":          payload.Tax,
		"epaycoTaxBase":      payload.TaxBase,
		"epaycoTaxIco":       "0",
		"epaycoCountry":      strings.ToUpper(payload.Country),
		"epaycoLang":         payload.Lang,
		"epaycoExternal":     "true",
		"epaycoResponse":     payload.ResponseURL,
		"epaycoConfirmation": payload.ConfirmationURL,
		"epaycoMethod":       payload.MethodConfirmation,
		"epaycoConfig":       "{}",
	}
	if fields["epaycoMethod"] == "" {
		fields["epaycoMethod"] = "POST"
	}

	optional := map[string]string{
		"epaycoNameBilling":        payload.CustomerName,
		"epaycoLastNameBilling":    payload.CustomerLastName,
		"epaycoEmailBilling":       payload.CustomerEmail,
		"epaycoMobilephoneBilling": payload.CustomerPhone,
		"epaycoTypeDocBilling":     payload.CustomerDocType,
		"epaycoNumberDocBilling":   payload.CustomerDocNumber,
		"epaycoAddressBilling":     payload.CustomerAddress,
		"epaycoCityBilling":        payload.CustomerCity,
		"epaycoExtra1":             payload.Extra1,
		"epaycoExtra2":             payload.Extra2,
		"epaycoExtra3":             payload.Extra3,
	}
	for key, value := range optional {
		if value != "" {
			fields[key] = value
		}
	}

	return fields
}
