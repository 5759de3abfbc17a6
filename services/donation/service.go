package donation

import (
	"context"
	"fmt"
	"strconv"

	"github.com/goodcause/donationbackend/lib/myerrors"
	"github.com/goodcause/donationbackend/lib/mylog"
	"github.com/goodcause/donationbackend/lib/mypublisher"
	"github.com/goodcause/donationbackend/lib/mystore"
	"github.com/goodcause/donationbackend/lib/mytime"
	"github.com/goodcause/donationbackend/lib/myuuid"
	"github.com/goodcause/donationbackend/services/donationapi"
	"github.com/goodcause/donationbackend/services/donationevents"
)

type service struct {
	cfg           Config
	logger        mylog.Logger
	nower         mytime.Nower
	uuider        myuuid.UUIDer
	donationStore mystore.Store[Donation]
	publisher     mypublisher.Publisher
}

// Use dependency injection to isolate the infrastructure and easy testing
func newService(cfg Config, logger mylog.Logger, nower mytime.Nower, uuider myuuid.UUIDer, donationStore mystore.Store[Donation], publisher mypublisher.Publisher) *service {
	return &service{
		cfg:           cfg.withDefaults(),
		logger:        logger,
		nower:         nower,
		uuider:        uuider,
		donationStore: donationStore,
		publisher:     publisher,
	}
}

func (s *service) CreateOneTimeDonation(c context.Context, hostname string, req donationapi.CheckoutSessionRequest) (donationapi.OneTimeDonationResponse, error) {
	now := s.nower.Now()

	err := donationapi.ValidateAmount(req.AmountInCents)
	if err != nil {
		return failedResponse(err), myerrors.NewInvalidInputError(err)
	}

	donor := donationapi.DonorInfo{
		IDType:    donationapi.IdentificationType(req.IdentificationType),
		IDNumber:  req.IdentificationNumber,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.PhoneNumber,
		City:      req.City,
		Country:   req.Country,
	}
	err = donationapi.ValidateDonor(donor)
	if err != nil {
		return failedResponse(err), myerrors.NewInvalidInputError(err)
	}

	donationUID := s.uuider.Create()

	s.logger.Log(c, donationUID, mylog.SeverityInfo, "Create one-time donation %s of %s for %s",
		donationUID, donationapi.FormatCOP(req.AmountInCents), donor.Email)

	err = s.donationStore.RunInTransaction(c, func(c context.Context) error {
		// must be idempotent

		err := s.donationStore.Put(c, donationUID, Donation{
			UID:           donationUID,
			CreatedAt:     now,
			AmountInCents: req.AmountInCents,
			Currency:      donationapi.Currency,
			Donor:         donor,
			CampaignUID:   req.CampaignUID,
			Status:        donationapi.StatusPendingCheckout,
		})
		if err != nil {
			return myerrors.NewInternalError(fmt.Errorf("error storing donation: %s", err))
		}

		err = s.publisher.Publish(c, donationevents.TopicName, donationevents.DonationStarted{
			DonationUID:   donationUID,
			AmountInCents: req.AmountInCents,
			Currency:      donationapi.Currency,
			DonorEmail:    donor.Email,
			CampaignUID:   req.CampaignUID,
		})
		if err != nil {
			return myerrors.NewInternalError(fmt.Errorf("error publishing event: %s", err))
		}

		return nil
	})
	if err != nil {
		return failedResponse(err), err
	}

	payload := s.composePayload(hostname, donationUID, req.AmountInCents, donor)

	return donationapi.OneTimeDonationResponse{
		Success:       true,
		SmartCheckout: &payload,
	}, nil
}

// composePayload maps a validated donation onto the field set the gateway
// checkout expects. Amounts travel as plain decimal strings.
func (s *service) composePayload(hostname string, donationUID string, amountInCents int, donor donationapi.DonorInfo) donationapi.CheckoutSessionPayload {
	return donationapi.CheckoutSessionPayload{
		PublicKey:          s.cfg.PublicKey,
		Name:               "One-time donation",
		Description:        fmt.Sprintf("One-time donation %s", donationUID),
		Invoice:            donationUID,
		Currency:           donationapi.Currency,
		Amount:             strconv.Itoa(amountInCents),
		Tax:                "0",
		TaxBase:            "0",
		Country:            s.cfg.Country,
		Lang:               s.cfg.Lang,
		Test:               s.cfg.Test,
		ResponseURL:        fmt.Sprintf("%s/donate/response", hostname),
		ConfirmationURL:    fmt.Sprintf("%s/api/donations/webhook/confirmation", hostname),
		MethodConfirmation: "POST",
		CustomerName:       donor.FirstName,
		CustomerLastName:   donor.LastName,
		CustomerEmail:      donor.Email,
		CustomerPhone:      donor.Phone,
		CustomerDocType:    string(donor.IDType),
		CustomerDocNumber:  donor.IDNumber,
		CustomerCity:       donor.City,
		Extra1:             donationUID,
	}
}

func failedResponse(err error) donationapi.OneTimeDonationResponse {
	return donationapi.OneTimeDonationResponse{
		Success:      false,
		ErrorMessage: err.Error(),
	}
}

func (s *service) GetStatus(c context.Context, donationUID string) (donationapi.TransactionStatus, error) {
	donation, found, err := s.donationStore.Get(c, donationUID)
	if err != nil {
		return donationapi.TransactionStatus{}, myerrors.NewInternalError(fmt.Errorf("error fetching donation with uid %s: %s", donationUID, err))
	}
	if !found {
		return donationapi.TransactionStatus{}, myerrors.NewNotFoundError(fmt.Errorf("donation with uid %s not found", donationUID))
	}

	return donation.ToTransactionStatus(), nil
}

// confirmationUpdate is what the gateway posts to the confirmation webhook.
type confirmationUpdate struct {
	DonationUID   string
	GatewayRef    string
	ResponseCode  string
	Response      string
	PaymentMethod string
}

func (s *service) processConfirmation(c context.Context, update confirmationUpdate) error {
	s.logger.Log(c, update.DonationUID, mylog.SeverityInfo, "Webhook: confirmation for donation %s -> code %s (%s)",
		update.DonationUID, update.ResponseCode, update.Response)

	now := s.nower.Now()
	status := classifyResponseCode(update.ResponseCode)

	err := s.donationStore.RunInTransaction(c, func(c context.Context) error {
		// must be idempotent

		donation, found, err := s.donationStore.Get(c, update.DonationUID)
		if err != nil {
			return myerrors.NewInternalError(err)
		}
		if !found {
			return myerrors.NewNotFoundError(fmt.Errorf("donation with uid %s not found", update.DonationUID))
		}

		donation.Status = status
		donation.StatusDetails = update.Response
		donation.PaymentMethod = update.PaymentMethod
		donation.GatewayRef = update.GatewayRef
		donation.LastModified = &now
		if status == donationapi.StatusApproved {
			donation.ApprovedAt = &now
		}

		err = s.donationStore.Put(c, donation.UID, donation)
		if err != nil {
			return myerrors.NewInternalError(err)
		}

		err = s.publisher.Publish(c, donationevents.TopicName, donationevents.DonationCompleted{
			DonationUID:   donation.UID,
			Status:        status,
			StatusDetails: update.Response,
			PaymentMethod: update.PaymentMethod,
		})
		if err != nil {
			return myerrors.NewInternalError(fmt.Errorf("error publishing event: %s", err))
		}

		return nil
	})
	if err != nil {
		return err
	}

	return nil
}

func classifyResponseCode(code string) donationapi.Status {
	switch code {
	case "1":
		return donationapi.StatusApproved
	case "2":
		return donationapi.StatusRejected
	case "3":
		return donationapi.StatusPending

	default:
		return donationapi.StatusFailed
	}
}
