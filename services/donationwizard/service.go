package donationwizard

import (
	"context"
	"fmt"

	"github.com/goodcause/donationbackend/lib/myerrors"
	"github.com/goodcause/donationbackend/lib/mylog"
	"github.com/goodcause/donationbackend/lib/mystore"
	"github.com/goodcause/donationbackend/lib/mytime"
	"github.com/goodcause/donationbackend/lib/myuuid"
	"github.com/goodcause/donationbackend/services/donation"
	"github.com/goodcause/donationbackend/services/donationapi"
	"github.com/goodcause/donationbackend/services/gatewayepayco"
)

type service struct {
	logger     mylog.Logger
	nower      mytime.Nower
	uuider     myuuid.UUIDer
	draftStore mystore.Store[donationapi.DonationDraft]
	donator    donation.Donator
	checkout   gatewayepayco.Client
}

// Use dependency injection to isolate the infrastructure and easy testing
func newService(logger mylog.Logger, nower mytime.Nower, uuider myuuid.UUIDer, draftStore mystore.Store[donationapi.DonationDraft], donator donation.Donator, checkout gatewayepayco.Client) *service {
	return &service{
		logger:     logger,
		nower:      nower,
		uuider:     uuider,
		draftStore: draftStore,
		donator:    donator,
		checkout:   checkout,
	}
}

func (s *service) startDonation(c context.Context) (string, error) {
	draftUID := s.uuider.Create()
	now := s.nower.Now()

	s.logger.Log(c, draftUID, mylog.SeverityInfo, "Start donation wizard %s", draftUID)

	err := s.draftStore.Put(c, draftUID, donationapi.DonationDraft{
		UID:       draftUID,
		CreatedAt: now,
		Step:      donationapi.StepAmountSelection,
	})
	if err != nil {
		return "", myerrors.NewInternalError(fmt.Errorf("error storing draft: %s", err))
	}

	return draftUID, nil
}

func (s *service) getDraft(c context.Context, draftUID string) (donationapi.DonationDraft, error) {
	draft, found, err := s.draftStore.Get(c, draftUID)
	if err != nil {
		return donationapi.DonationDraft{}, myerrors.NewInternalError(fmt.Errorf("error fetching draft with uid %s: %s", draftUID, err))
	}
	if !found {
		return donationapi.DonationDraft{}, myerrors.NewNotFoundError(fmt.Errorf("draft with uid %s not found", draftUID))
	}

	return draft, nil
}

// submitAmount guards the transition from step 1 to step 2.
func (s *service) submitAmount(c context.Context, draftUID string, form donationapi.AmountForm) error {
	err := donationapi.ValidateAmount(form.AmountInCents)
	if err != nil {
		return myerrors.NewInvalidInputError(err)
	}

	now := s.nower.Now()

	return s.draftStore.RunInTransaction(c, func(c context.Context) error {
		draft, err := s.getDraft(c, draftUID)
		if err != nil {
			return err
		}

		draft.AmountInCents = form.AmountInCents
		draft.IsCustomAmount = form.IsCustomAmount
		draft.Step = donationapi.StepDonorInfo
		draft.LastModified = &now

		return s.draftStore.Put(c, draftUID, draft)
	})
}

// submitDonor guards the transition from step 2 to step 3.
func (s *service) submitDonor(c context.Context, draftUID string, form donationapi.DonorForm) error {
	donor := form.ToDonorInfo()
	err := donationapi.ValidateDonor(donor)
	if err != nil {
		return myerrors.NewInvalidInputError(err)
	}

	now := s.nower.Now()

	return s.draftStore.RunInTransaction(c, func(c context.Context) error {
		draft, err := s.getDraft(c, draftUID)
		if err != nil {
			return err
		}

		draft.Donor = donor
		draft.Step = donationapi.StepReviewAndPay
		draft.LastModified = &now

		return s.draftStore.Put(c, draftUID, draft)
	})
}

// stepBack always succeeds and retains everything the donor already entered.
func (s *service) stepBack(c context.Context, draftUID string) error {
	now := s.nower.Now()

	return s.draftStore.RunInTransaction(c, func(c context.Context) error {
		draft, err := s.getDraft(c, draftUID)
		if err != nil {
			return err
		}

		if draft.Step > donationapi.StepAmountSelection {
			draft.Step--
		}
		draft.LastModified = &now

		return s.draftStore.Put(c, draftUID, draft)
	})
}

// submit turns the completed draft into a real donation and opens a gateway
// checkout. The Submitting flag makes a double click on the pay button a
// no-op: the second request gets a conflict instead of a second donation.
func (s *service) submit(c context.Context, draftUID string, hostname string) (gatewayepayco.CheckoutResult, error) {
	now := s.nower.Now()

	var draft donationapi.DonationDraft
	err := s.draftStore.RunInTransaction(c, func(c context.Context) error {
		var err error
		draft, err = s.getDraft(c, draftUID)
		if err != nil {
			return err
		}

		if draft.Step != donationapi.StepReviewAndPay {
			return myerrors.NewInvalidInputErrorf("draft %s is not ready for payment", draftUID)
		}
		if draft.Submitting {
			return myerrors.NewConflictError(fmt.Errorf("draft %s is already being submitted", draftUID))
		}

		draft.Submitting = true
		draft.LastModified = &now

		return s.draftStore.Put(c, draftUID, draft)
	})
	if err != nil {
		return gatewayepayco.CheckoutResult{}, err
	}

	result, err := s.openCheckout(c, draft, hostname)
	if err != nil {
		// Allow the donor to try again.
		s.releaseSubmitLock(c, draftUID)
		return gatewayepayco.CheckoutResult{}, err
	}

	return result, nil
}

func (s *service) openCheckout(c context.Context, draft donationapi.DonationDraft, hostname string) (gatewayepayco.CheckoutResult, error) {
	resp, err := s.donator.CreateOneTimeDonation(c, hostname, donationapi.CheckoutSessionRequest{
		FirstName:            draft.Donor.FirstName,
		LastName:             draft.Donor.LastName,
		Email:                draft.Donor.Email,
		PhoneNumber:          draft.Donor.Phone,
		IdentificationType:   string(draft.Donor.IDType),
		IdentificationNumber: draft.Donor.IDNumber,
		Country:              draft.Donor.Country,
		City:                 draft.Donor.City,
		AmountInCents:        draft.AmountInCents,
		CampaignUID:          draft.CampaignUID,
	})
	if err != nil {
		return gatewayepayco.CheckoutResult{}, err
	}
	if !resp.Success || resp.SmartCheckout == nil {
		return gatewayepayco.CheckoutResult{}, myerrors.NewInternalError(fmt.Errorf("donation service refused: %s", resp.ErrorMessage))
	}

	result, err := s.checkout.OpenCheckout(c, *resp.SmartCheckout)
	if err != nil {
		return gatewayepayco.CheckoutResult{}, myerrors.NewUnavailableError(fmt.Errorf("error opening checkout: %s", err))
	}

	s.logger.Log(c, draft.UID, mylog.SeverityInfo, "Opened %s checkout for draft %s", result.Mode, draft.UID)

	return result, nil
}

func (s *service) releaseSubmitLock(c context.Context, draftUID string) {
	err := s.draftStore.RunInTransaction(c, func(c context.Context) error {
		draft, err := s.getDraft(c, draftUID)
		if err != nil {
			return err
		}

		draft.Submitting = false

		return s.draftStore.Put(c, draftUID, draft)
	})
	if err != nil {
		s.logger.Log(c, draftUID, mylog.SeverityWarn, "Error releasing submit lock on draft %s: %s", draftUID, err)
	}
}
