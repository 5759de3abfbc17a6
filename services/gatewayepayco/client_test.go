package gatewayepayco

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/goodcause/donationbackend/lib/myuuid"
	"github.com/goodcause/donationbackend/services/donationapi"
)

func TestEmbeddedCheckout(t *testing.T) {
	c := context.TODO()

	t.Run("Open checkout", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		gateway := NewMockGateway(ctrl)
		gateway.EXPECT().FetchCheckoutScript(gomock.Any()).Return(nil)

		client := NewEmbeddedClient(Config{}, gateway, NewResourceRegistry())

		result, err := client.OpenCheckout(c, examplePayload())

		assert.NoError(t, err)
		assert.Equal(t, ModeEmbedded, result.Mode)
		assert.NotNil(t, result.Widget)
		assert.Equal(t, "https://checkout.epayco.co/checkout.js", result.Widget.ScriptURL)
		assert.Equal(t, "pk_exampleExampleExample", result.Widget.PublicKey)
		assert.True(t, result.Widget.Test)
	})

	t.Run("Script fetched once, handle configured once across opens", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		gateway := NewMockGateway(ctrl)
		gateway.EXPECT().FetchCheckoutScript(gomock.Any()).Return(nil).Times(1)

		registry := NewResourceRegistry()
		client := NewEmbeddedClient(Config{}, gateway, registry)

		_, err := client.OpenCheckout(c, examplePayload())
		assert.NoError(t, err)
		_, err = client.OpenCheckout(c, examplePayload())
		assert.NoError(t, err)

		assert.Equal(t, 1, registry.HandleCount())
	})

	t.Run("Distinct key gets a distinct handle", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		gateway := NewMockGateway(ctrl)
		gateway.EXPECT().FetchCheckoutScript(gomock.Any()).Return(nil).Times(1)

		registry := NewResourceRegistry()
		client := NewEmbeddedClient(Config{}, gateway, registry)

		_, err := client.OpenCheckout(c, examplePayload())
		assert.NoError(t, err)

		other := examplePayload()
		other.PublicKey = "pk_otherOtherOtherOther"
		_, err = client.OpenCheckout(c, other)
		assert.NoError(t, err)

		assert.Equal(t, 2, registry.HandleCount())
	})

	t.Run("Widget field mapping", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		gateway := NewMockGateway(ctrl)
		gateway.EXPECT().FetchCheckoutScript(gomock.Any()).Return(nil)

		client := NewEmbeddedClient(Config{}, gateway, NewResourceRegistry())

		result, err := client.OpenCheckout(c, examplePayload())

		assert.NoError(t, err)
		fields := result.Widget.Fields
		assert.Equal(t, "100000", fields["amount"])
		assert.Equal(t, "COP", fields["currency"])
		assert.Equal(t, "CO", fields["country"])
		assert.Equal(t, "false", fields["external"])
		assert.Equal(t, "0", fields["tax_base"])
		assert.Equal(t, "don-123", fields["invoice"])
		assert.Equal(t, "Ana", fields["name_billing"])
		assert.Equal(t, "Ruiz", fields["last_name_billing"])
		assert.Equal(t, "ana@example.nl", fields["email_billing"])
		assert.Equal(t, "CC", fields["type_doc_billing"])
	})

	t.Run("Script fetch failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		gateway := NewMockGateway(ctrl)
		gateway.EXPECT().FetchCheckoutScript(gomock.Any()).Return(fmt.Errorf("connection refused"))

		client := NewEmbeddedClient(Config{}, gateway, NewResourceRegistry())

		_, err := client.OpenCheckout(c, examplePayload())

		assert.Error(t, err)
		initErr := &InitError{}
		assert.ErrorAs(t, err, &initErr)
	})

	t.Run("Missing public key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		gateway := NewMockGateway(ctrl)
		gateway.EXPECT().FetchCheckoutScript(gomock.Any()).Return(nil)

		client := NewEmbeddedClient(Config{}, gateway, NewResourceRegistry())

		payload := examplePayload()
		payload.PublicKey = ""
		_, err := client.OpenCheckout(c, payload)

		assert.Error(t, err)
		initErr := &InitError{}
		assert.ErrorAs(t, err, &initErr)
	})
}

func TestRedirectCheckout(t *testing.T) {
	c := context.TODO()

	t.Run("Open checkout", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		gateway := NewMockGateway(ctrl)
		uuider := myuuid.NewMockUUIDer(ctrl)
		uuider.EXPECT().Create().Return("token-1")
		gateway.EXPECT().
			CreateSession(gomock.Any(), "pk_exampleExampleExample", "token-1", gomock.Any()).
			Return(SessionResponse{Success: true, Data: SessionData{SessionID: "sess-42"}}, nil)

		client := NewRedirectClient(Config{}, gateway, uuider)

		result, err := client.OpenCheckout(c, examplePayload())

		assert.NoError(t, err)
		assert.Equal(t, ModeRedirect, result.Mode)
		assert.Nil(t, result.Widget)
		assert.Equal(t, "https://checkout.epayco.co/checkout.php?transaction=sess-42", result.RedirectURL)
	})

	t.Run("Redirect field mapping", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		gateway := NewMockGateway(ctrl)
		uuider := myuuid.NewMockUUIDer(ctrl)
		uuider.EXPECT().Create().Return("token-1")

		var captured map[string]string
		gateway.EXPECT().
			CreateSession(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ string, fields map[string]string) (SessionResponse, error) {
				captured = fields
				return SessionResponse{Success: true, Data: SessionData{SessionID: "sess-42"}}, nil
			})

		client := NewRedirectClient(Config{}, gateway, uuider)

		_, err := client.OpenCheckout(c, examplePayload())

		assert.NoError(t, err)
		assert.Equal(t, "pk_exampleExampleExample", captured["epaycoKey"])
		assert.Equal(t, "true", captured["epaycoTest"])
		assert.Equal(t, "100000", captured["epaycoAmount"])
		assert.Equal(t, "COP", captured["epaycoCurrency"])
		assert.Equal(t, "CO", captured["epaycoCountry"])
		assert.Equal(t, "true", captured["epaycoExternal"])
		assert.Equal(t, "0", captured["epaycoTaxIco"])
		assert.Equal(t, "{}", captured["epaycoConfig"])
		assert.Equal(t, "POST", captured["epaycoMethod"])
		assert.Equal(t, "Ana", captured["epaycoNameBilling"])
	})

	t.Run("Billing fields omitted when empty", func(t *testing.T) {
		payload := examplePayload()
		payload.CustomerName = ""
		payload.CustomerLastName = ""
		payload.CustomerAddress = ""

		fields := redirectFields(payload)

		assert.NotContains(t, fields, "epaycoNameBilling")
		assert.NotContains(t, fields, "epaycoLastNameBilling")
		assert.NotContains(t, fields, "epaycoAddressBilling")
		assert.Contains(t, fields, "epaycoEmailBilling")
	})

	t.Run("Session creation fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		gateway := NewMockGateway(ctrl)
		uuider := myuuid.NewMockUUIDer(ctrl)
		uuider.EXPECT().Create().Return("token-1")
		gateway.EXPECT().
			CreateSession(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(SessionResponse{}, fmt.Errorf("timeout"))

		client := NewRedirectClient(Config{}, gateway, uuider)

		_, err := client.OpenCheckout(c, examplePayload())

		assert.Error(t, err)
		sessionErr := &SessionError{}
		assert.ErrorAs(t, err, &sessionErr)
	})

	t.Run("Session refused", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		gateway := NewMockGateway(ctrl)
		uuider := myuuid.NewMockUUIDer(ctrl)
		uuider.EXPECT().Create().Return("token-1")
		gateway.EXPECT().
			CreateSession(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(SessionResponse{Success: false}, nil)

		client := NewRedirectClient(Config{}, gateway, uuider)

		_, err := client.OpenCheckout(c, examplePayload())

		assert.Error(t, err)
	})
}

func TestStickyFallback(t *testing.T) {
	c := context.TODO()

	t.Run("Embedded preferred while healthy", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		gateway := NewMockGateway(ctrl)
		uuider := myuuid.NewMockUUIDer(ctrl)
		gateway.EXPECT().FetchCheckoutScript(gomock.Any()).Return(nil).Times(1)

		client := NewClient(Config{}, gateway, NewResourceRegistry(), uuider)

		result, err := client.OpenCheckout(c, examplePayload())

		assert.NoError(t, err)
		assert.Equal(t, ModeEmbedded, result.Mode)

		result, err = client.OpenCheckout(c, examplePayload())

		assert.NoError(t, err)
		assert.Equal(t, ModeEmbedded, result.Mode)
	})

	t.Run("Embedded failure permanently switches to redirect", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		gateway := NewMockGateway(ctrl)
		uuider := myuuid.NewMockUUIDer(ctrl)

		// First open: script fetch fails once, then never tried again.
		gateway.EXPECT().FetchCheckoutScript(gomock.Any()).Return(fmt.Errorf("blocked")).Times(1)
		uuider.EXPECT().Create().Return("token-1").Times(2)
		gateway.EXPECT().
			CreateSession(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(SessionResponse{Success: true, Data: SessionData{SessionID: "sess-42"}}, nil).
			Times(2)

		client := NewClient(Config{}, gateway, NewResourceRegistry(), uuider)

		result, err := client.OpenCheckout(c, examplePayload())

		assert.NoError(t, err)
		assert.Equal(t, ModeRedirect, result.Mode)

		result, err = client.OpenCheckout(c, examplePayload())

		assert.NoError(t, err)
		assert.Equal(t, ModeRedirect, result.Mode)
	})

	t.Run("Redirect failure after fallback is terminal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		gateway := NewMockGateway(ctrl)
		uuider := myuuid.NewMockUUIDer(ctrl)

		gateway.EXPECT().FetchCheckoutScript(gomock.Any()).Return(fmt.Errorf("blocked"))
		uuider.EXPECT().Create().Return("token-1")
		gateway.EXPECT().
			CreateSession(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(SessionResponse{}, fmt.Errorf("timeout"))

		client := NewClient(Config{}, gateway, NewResourceRegistry(), uuider)

		_, err := client.OpenCheckout(c, examplePayload())

		assert.Error(t, err)
		sessionErr := &SessionError{}
		assert.ErrorAs(t, err, &sessionErr)
	})
}

func TestValidationResponseNormalization(t *testing.T) {
	t.Run("Approved", func(t *testing.T) {
		resp := exampleValidationResponse("1")

		status := resp.ToTransactionStatus()

		assert.Equal(t, donationapi.StatusApproved, status.Status)
		assert.Equal(t, 100000, status.AmountInCents)
		assert.Equal(t, "don-123", status.ReferenceCode)
		assert.Equal(t, "Ana Ruiz", status.DonorName)
		assert.NotNil(t, status.ApprovedAt)
		assert.Equal(t, status.TransactionAt, *status.ApprovedAt)
	})

	t.Run("Rejected", func(t *testing.T) {
		status := exampleValidationResponse("2").ToTransactionStatus()

		assert.Equal(t, donationapi.StatusRejected, status.Status)
		assert.Nil(t, status.ApprovedAt)
	})

	t.Run("Pending", func(t *testing.T) {
		status := exampleValidationResponse("3").ToTransactionStatus()

		assert.Equal(t, donationapi.StatusPending, status.Status)
	})

	t.Run("Unknown code is failed", func(t *testing.T) {
		status := exampleValidationResponse("11").ToTransactionStatus()

		assert.Equal(t, donationapi.StatusFailed, status.Status)
	})
}

func examplePayload() donationapi.CheckoutSessionPayload {
	return donationapi.CheckoutSessionPayload{
		PublicKey:         "pk_exampleExampleExample",
		Name:              "One-time donation",
		Description:       "One-time donation don-123",
		Invoice:           "don-123",
		Currency:          "COP",
		Amount:            "100000",
		Tax:               "0",
		TaxBase:           "0",
		Country:           "co",
		Lang:              "es",
		Test:              true,
		ResponseURL:       "https://donations.example.org/donate/response",
		ConfirmationURL:   "https://donations.example.org/api/donations/webhook/confirmation",
		CustomerName:      "Ana",
		CustomerLastName:  "Ruiz",
		CustomerEmail:     "ana@example.nl",
		CustomerDocType:   "CC",
		CustomerDocNumber: "100200300",
	}
}

func exampleValidationResponse(code string) ValidationResponse {
	return ValidationResponse{
		Success: true,
		Data: ValidationData{
			ResponseCode:     code,
			Amount:           "100000",
			Invoice:          "don-123",
			CustomerName:     "Ana",
			CustomerLastName: "Ruiz",
			ApprovalCode:     "apr-1",
			TransactionDate:  "2025-06-15 12:34:56",
		},
	}
}
