package donation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/goodcause/donationbackend/lib/mypublisher"
	"github.com/goodcause/donationbackend/lib/mystore"
	"github.com/goodcause/donationbackend/lib/mytime"
	"github.com/goodcause/donationbackend/lib/myuuid"
	"github.com/goodcause/donationbackend/services/donationapi"
	"github.com/goodcause/donationbackend/services/donationevents"
)

func TestDonationService(t *testing.T) {

	t.Run("Create one-time donation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, router, storer, nower, uuider, publisher := setup(t, ctrl)

		// given
		nower.EXPECT().Now().Return(mytime.ExampleTime)
		uuider.EXPECT().Create().Return("d-123")
		publisher.EXPECT().Publish(gomock.Any(), donationevents.TopicName, donationevents.DonationStarted{
			DonationUID:   "d-123",
			AmountInCents: 100000,
			Currency:      "COP",
			DonorEmail:    "ana@example.nl",
			CampaignUID:   7,
		}).Return(nil)

		// when
		request, err := http.NewRequest(http.MethodPost, "/api/donations/one-time", strings.NewReader(`{
			"firstName": "Ana",
			"lastName": "Ruiz",
			"email": "ana@example.nl",
			"identificationType": "CC",
			"identificationNumber": "100200300",
			"country": "CO",
			"amount": 100000,
			"campaignId": 7
		}`))
		assert.NoError(t, err)
		request.Host = "localhost:8888"
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		resp := donationapi.OneTimeDonationResponse{}
		assert.NoError(t, json.Unmarshal(response.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.NotNil(t, resp.SmartCheckout)
		assert.Equal(t, "my_public_key", resp.SmartCheckout.PublicKey)
		assert.Equal(t, "d-123", resp.SmartCheckout.Invoice)
		assert.Equal(t, "100000", resp.SmartCheckout.Amount)
		assert.Equal(t, "COP", resp.SmartCheckout.Currency)
		assert.Equal(t, "co", resp.SmartCheckout.Country)
		assert.Equal(t, "es", resp.SmartCheckout.Lang)
		assert.Equal(t, "http://localhost:8888/donate/response", resp.SmartCheckout.ResponseURL)
		assert.Equal(t, "http://localhost:8888/api/donations/webhook/confirmation", resp.SmartCheckout.ConfirmationURL)

		donation, exists, _ := storer.Get(ctx, "d-123")
		assert.True(t, exists)
		assert.Equal(t, donationapi.StatusPendingCheckout, donation.Status)
		assert.Equal(t, 100000, donation.AmountInCents)
		assert.Equal(t, 7, donation.CampaignUID)
		assert.Equal(t, "Ana Ruiz", donation.Donor.FullName())
	})

	t.Run("Create one-time donation with amount below minimum", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, nower, _, _ := setup(t, ctrl)

		// given
		nower.EXPECT().Now().Return(mytime.ExampleTime)

		// when
		request, err := http.NewRequest(http.MethodPost, "/api/donations/one-time", strings.NewReader(`{
			"firstName": "Ana",
			"lastName": "Ruiz",
			"email": "ana@example.nl",
			"identificationType": "CC",
			"identificationNumber": "100200300",
			"country": "CO",
			"amount": 100
		}`))
		assert.NoError(t, err)
		request.Host = "localhost:8888"
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 400, response.Code)
		resp := donationapi.OneTimeDonationResponse{}
		assert.NoError(t, json.Unmarshal(response.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.Nil(t, resp.SmartCheckout)
		assert.Contains(t, resp.ErrorMessage, "minimum donation")
	})

	t.Run("Create one-time donation with invalid email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, nower, _, _ := setup(t, ctrl)

		// given
		nower.EXPECT().Now().Return(mytime.ExampleTime)

		// when
		request, err := http.NewRequest(http.MethodPost, "/api/donations/one-time", strings.NewReader(`{
			"firstName": "Ana",
			"lastName": "Ruiz",
			"email": "not-an-email",
			"identificationType": "CC",
			"identificationNumber": "100200300",
			"country": "CO",
			"amount": 100000
		}`))
		assert.NoError(t, err)
		request.Host = "localhost:8888"
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 400, response.Code)
		resp := donationapi.OneTimeDonationResponse{}
		assert.NoError(t, json.Unmarshal(response.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.Contains(t, resp.ErrorMessage, "email")
	})

	t.Run("Get donation status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, router, storer, _, _, _ := setup(t, ctrl)

		// given
		_ = storer.Put(ctx, "d-123", Donation{
			UID:           "d-123",
			CreatedAt:     mytime.ExampleTime,
			AmountInCents: 100000,
			Currency:      "COP",
			Donor:         donationapi.DonorInfo{FirstName: "Ana", LastName: "Ruiz"},
			Status:        donationapi.StatusPendingCheckout,
		})

		// when
		request, err := http.NewRequest(http.MethodGet, "/api/donations/d-123/status", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		status := donationapi.TransactionStatus{}
		assert.NoError(t, json.Unmarshal(response.Body.Bytes(), &status))
		assert.Equal(t, donationapi.StatusPendingCheckout, status.Status)
		assert.Equal(t, "d-123", status.ReferenceCode)
		assert.Equal(t, "Ana Ruiz", status.DonorName)
	})

	t.Run("Get status of unknown donation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, _, _, _ := setup(t, ctrl)

		// when
		request, err := http.NewRequest(http.MethodGet, "/api/donations/unknown/status", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 404, response.Code)
	})

	t.Run("Handle confirmation webhook", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, router, storer, nower, _, publisher := setup(t, ctrl)

		// given
		nower.EXPECT().Now().Return(mytime.ExampleTime.Add(time.Hour))
		publisher.EXPECT().Publish(gomock.Any(), donationevents.TopicName, donationevents.DonationCompleted{
			DonationUID:   "d-123",
			Status:        donationapi.StatusApproved,
			StatusDetails: "Aceptada",
			PaymentMethod: "VISA",
		}).Return(nil)

		_ = storer.Put(ctx, "d-123", Donation{
			UID:           "d-123",
			CreatedAt:     mytime.ExampleTime,
			AmountInCents: 100000,
			Currency:      "COP",
			Donor:         donationapi.DonorInfo{FirstName: "Ana", LastName: "Ruiz"},
			Status:        donationapi.StatusPendingCheckout,
		})

		// when
		request, err := http.NewRequest(http.MethodPost, "/api/donations/webhook/confirmation",
			strings.NewReader(`x_id_invoice=d-123&x_ref_payco=9876&x_cod_response=1&x_response=Aceptada&x_franchise=VISA`))
		assert.NoError(t, err)
		request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)

		donation, exists, _ := storer.Get(ctx, "d-123")
		assert.True(t, exists)
		assert.Equal(t, donationapi.StatusApproved, donation.Status)
		assert.Equal(t, "9876", donation.GatewayRef)
		assert.Equal(t, "VISA", donation.PaymentMethod)
		assert.NotNil(t, donation.ApprovedAt)
	})

	t.Run("Handle rejected confirmation webhook", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, router, storer, nower, _, publisher := setup(t, ctrl)

		// given
		nower.EXPECT().Now().Return(mytime.ExampleTime.Add(time.Hour))
		publisher.EXPECT().Publish(gomock.Any(), donationevents.TopicName, donationevents.DonationCompleted{
			DonationUID:   "d-123",
			Status:        donationapi.StatusRejected,
			StatusDetails: "Rechazada",
			PaymentMethod: "VISA",
		}).Return(nil)

		_ = storer.Put(ctx, "d-123", Donation{
			UID:       "d-123",
			CreatedAt: mytime.ExampleTime,
			Status:    donationapi.StatusPendingCheckout,
		})

		// when
		request, err := http.NewRequest(http.MethodPost, "/api/donations/webhook/confirmation",
			strings.NewReader(`x_id_invoice=d-123&x_ref_payco=9876&x_cod_response=2&x_response=Rechazada&x_franchise=VISA`))
		assert.NoError(t, err)
		request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)

		donation, _, _ := storer.Get(ctx, "d-123")
		assert.Equal(t, donationapi.StatusRejected, donation.Status)
		assert.Nil(t, donation.ApprovedAt)
	})

	t.Run("Handle confirmation webhook without invoice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, _, _, _ := setup(t, ctrl)

		// when
		request, err := http.NewRequest(http.MethodPost, "/api/donations/webhook/confirmation",
			strings.NewReader(`x_cod_response=1`))
		assert.NoError(t, err)
		request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 400, response.Code)
	})
}

func setup(t *testing.T, ctrl *gomock.Controller) (context.Context, *mux.Router, mystore.Store[Donation], *mytime.MockNower, *myuuid.MockUUIDer, *mypublisher.MockPublisher) {
	c := context.TODO()
	storer, _, _ := mystore.NewInMemoryStore[Donation](c)
	nower := mytime.NewMockNower(ctrl)
	uuider := myuuid.NewMockUUIDer(ctrl)
	publisher := mypublisher.NewMockPublisher(ctrl)

	sut := NewWebService(Config{PublicKey: "my_public_key", Test: true}, nower, uuider, storer, publisher)
	router := mux.NewRouter()

	// Called by RegisterEndpoints
	publisher.EXPECT().CreateTopic(gomock.Any(), donationevents.TopicName).Return(nil)

	err := sut.RegisterEndpoints(c, router)
	assert.NoError(t, err)

	return c, router, storer, nower, uuider, publisher
}
