package donation

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/goodcause/donationbackend/lib/mycontext"
	"github.com/goodcause/donationbackend/lib/myerrors"
	"github.com/goodcause/donationbackend/lib/myhttp"
	"github.com/goodcause/donationbackend/lib/mylog"
	"github.com/goodcause/donationbackend/lib/mypublisher"
	"github.com/goodcause/donationbackend/lib/mystore"
	"github.com/goodcause/donationbackend/lib/mytime"
	"github.com/goodcause/donationbackend/lib/myuuid"
	"github.com/goodcause/donationbackend/services/donationapi"
	"github.com/goodcause/donationbackend/services/donationevents"
)

type webService struct {
	logger  mylog.Logger
	service *service
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewWebService(cfg Config, nower mytime.Nower, uuider myuuid.UUIDer, donationStore mystore.Store[Donation], publisher mypublisher.Publisher) *webService {
	logger := mylog.New("donation")

	return &webService{
		logger:  logger,
		service: newService(cfg, logger, nower, uuider, donationStore, publisher),
	}
}

// Donator exposes the in-process port for the wizard and the status page.
func (s *webService) Donator() Donator {
	return s.service
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/api/donations/one-time", s.createOneTimeDonation()).Methods("POST")
	router.HandleFunc("/api/donations/{donationUID}/status", s.donationStatus()).Methods("GET")

	router.HandleFunc("/api/donations/webhook/confirmation", s.confirmationWebhook()).Methods("POST")

	err := s.service.publisher.CreateTopic(c, donationevents.TopicName)
	if err != nil {
		return fmt.Errorf("error creating topic %s: %s", donationevents.TopicName, err)
	}

	return nil
}

func (s *webService) createOneTimeDonation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		req := donationapi.CheckoutSessionRequest{}
		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInvalidInputError(fmt.Errorf("error parsing request: %s", err)))
			return
		}

		resp, err := s.service.CreateOneTimeDonation(c, myhttp.HostnameWithScheme(r), req)
		if err != nil {
			errorWriter.Write(c, w, myerrors.GetHTTPStatus(err), resp)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, resp)
	}
}

func (s *webService) donationStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		donationUID := mux.Vars(r)["donationUID"]

		status, err := s.service.GetStatus(c, donationUID)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, status)
	}
}

func (s *webService) confirmationWebhook() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		update, err := parseConfirmation(r)
		if err != nil {
			errorWriter.WriteError(c, w, 3, err)
			return
		}

		err = s.service.processConfirmation(c, update)
		if err != nil {
			errorWriter.WriteError(c, w, 4, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, myhttp.SuccessResponse{})
	}
}

func parseConfirmation(r *http.Request) (confirmationUpdate, error) {
	err := r.ParseForm()
	if err != nil {
		return confirmationUpdate{}, myerrors.NewInvalidInputError(err)
	}

	update := confirmationUpdate{
		DonationUID:   r.FormValue("x_id_invoice"),
		GatewayRef:    r.FormValue("x_ref_payco"),
		ResponseCode:  r.FormValue("x_cod_response"),
		Response:      r.FormValue("x_response"),
		PaymentMethod: r.FormValue("x_franchise"),
	}
	if update.DonationUID == "" {
		return confirmationUpdate{}, myerrors.NewInvalidInputErrorf("missing x_id_invoice")
	}
	if update.ResponseCode == "" {
		return confirmationUpdate{}, myerrors.NewInvalidInputErrorf("missing x_cod_response")
	}

	return update, nil
}
