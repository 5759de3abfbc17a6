package paymentstatus

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/goodcause/donationbackend/services/donationapi"
)

func TestResponsePage(t *testing.T) {

	t.Run("Approved donation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		router, gateway, backend := setupWeb(t, ctrl)

		// given
		backend.EXPECT().GetStatus(gomock.Any(), "d-123").
			Return(donationapi.TransactionStatus{Status: donationapi.StatusPendingCheckout}, nil)
		gateway.EXPECT().Validate(gomock.Any(), "9876").
			Return(donationapi.TransactionStatus{
				Status:        donationapi.StatusApproved,
				AmountInCents: 100000,
				ReferenceCode: "d-123",
				DonorName:     "Ana Ruiz",
			}, nil)

		// when
		request, err := http.NewRequest(http.MethodGet, "/donate/response?ref_payco=9876&ref=d-123", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		assert.Contains(t, response.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, response.Body.String(), "Thank you, Ana Ruiz!")
		assert.Contains(t, response.Body.String(), "d-123")
		assert.NotContains(t, response.Body.String(), "Try again")
	})

	t.Run("Rejected donation offers a retry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		router, gateway, backend := setupWeb(t, ctrl)

		// given
		backend.EXPECT().GetStatus(gomock.Any(), "d-123").
			Return(donationapi.TransactionStatus{Status: donationapi.StatusPendingCheckout}, nil)
		gateway.EXPECT().Validate(gomock.Any(), "9876").
			Return(donationapi.TransactionStatus{
				Status:        donationapi.StatusRejected,
				AmountInCents: 100000,
				ReferenceCode: "d-123",
				DonorName:     "Ana Ruiz",
			}, nil)

		// when
		request, err := http.NewRequest(http.MethodGet, "/donate/response?ref_payco=9876&ref=d-123", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		assert.Contains(t, response.Body.String(), "could not be completed")
		assert.Contains(t, response.Body.String(), "Try again")
	})

	t.Run("Missing references", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		router, _, _ := setupWeb(t, ctrl)

		// when
		request, err := http.NewRequest(http.MethodGet, "/donate/response", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 400, response.Code)
	})
}

func setupWeb(t *testing.T, ctrl *gomock.Controller) (*mux.Router, *MockGatewayValidator, *MockBackendStatus) {
	c := context.TODO()
	gateway := NewMockGatewayValidator(ctrl)
	backend := NewMockBackendStatus(ctrl)

	sut := NewWebService(gateway, backend)
	router := mux.NewRouter()

	err := sut.RegisterEndpoints(c, router)
	assert.NoError(t, err)

	return router, gateway, backend
}
