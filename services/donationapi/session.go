package donationapi

// CheckoutSessionRequest is the body posted to the donation service when the
// wizard submits. Field names are part of the public API contract.
type CheckoutSessionRequest struct {
	FirstName            string `json:"firstName"`
	LastName             string `json:"lastName"`
	Email                string `json:"email"`
	PhoneNumber          string `json:"phoneNumber,omitempty"`
	IdentificationType   string `json:"identificationType"`
	IdentificationNumber string `json:"identificationNumber"`
	Country              string `json:"country,omitempty"`
	City                 string `json:"city,omitempty"`
	AmountInCents        int    `json:"amount"`
	CampaignUID          int    `json:"campaignId,omitempty"`
}

// CheckoutSessionPayload is produced by the donation service and consumed by
// the gateway client. The wizard treats it as opaque.
type CheckoutSessionPayload struct {
	PublicKey          string `json:"publicKey"`
	Name               string `json:"name"`
	Description        string `json:"description"`
	Invoice            string `json:"invoice"`
	Currency           string `json:"currency"`
	Amount             string `json:"amount"`
	Tax                string `json:"tax"`
	TaxBase            string `json:"taxBase"`
	Country            string `json:"country"`
	Lang               string `json:"lang"`
	Test               bool   `json:"test"`
	External           bool   `json:"external"`
	ResponseURL        string `json:"responseUrl"`
	ConfirmationURL    string `json:"confirmationUrl"`
	MethodConfirmation string `json:"methodConfirmation"`
	CustomerName       string `json:"customerName,omitempty"`
	CustomerLastName   string `json:"customerLastName,omitempty"`
	CustomerEmail      string `json:"customerEmail,omitempty"`
	CustomerPhone      string `json:"customerPhone,omitempty"`
	CustomerDocType    string `json:"customerDocType,omitempty"`
	CustomerDocNumber  string `json:"customerDocNumber,omitempty"`
	CustomerAddress    string `json:"customerAddress,omitempty"`
	CustomerCity       string `json:"customerCity,omitempty"`
	Extra1             string `json:"extra1,omitempty"`
	Extra2             string `json:"extra2,omitempty"`
	Extra3             string `json:"extra3,omitempty"`
}

// OneTimeDonationResponse is what the donation service answers on a
// session-creation request. ErrorMessage is set when Success is false.
type OneTimeDonationResponse struct {
	Success       bool                    `json:"success"`
	SmartCheckout *CheckoutSessionPayload `json:"smartCheckout,omitempty"`
	ErrorMessage  string                  `json:"errorMessage,omitempty"`
}
