package donationevents

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/goodcause/donationbackend/lib/myerrors"
	"github.com/goodcause/donationbackend/lib/myevents"
	"github.com/goodcause/donationbackend/services/donationapi"
)

const (
	TopicName             = "donation"
	donationStartedName   = TopicName + ".started"
	donationCompletedName = TopicName + ".completed"
)

type DonationEventService interface {
	OnDonationStarted(c context.Context, topic string, event DonationStarted) error
	OnDonationCompleted(c context.Context, topic string, event DonationCompleted) error
}

func DispatchEvent(c context.Context, reader io.Reader, service DonationEventService) error {
	envelope, err := myevents.ParseEventEnvelope(reader)
	if err != nil {
		return myerrors.NewInvalidInputError(err)
	}

	switch envelope.EventTypeName {
	case donationStartedName:
		{
			event := DonationStarted{}
			err := json.Unmarshal([]byte(envelope.EventPayload), &event)
			if err != nil {
				return myerrors.NewInvalidInputError(err)
			}
			return service.OnDonationStarted(c, envelope.Topic, event)
		}
	case donationCompletedName:
		{
			event := DonationCompleted{}
			err := json.Unmarshal([]byte(envelope.EventPayload), &event)
			if err != nil {
				return myerrors.NewInvalidInputError(err)
			}
			return service.OnDonationCompleted(c, envelope.Topic, event)
		}
	default:
		return myerrors.NewNotImplementedError(fmt.Errorf("unknown event type %s", envelope.EventTypeName))
	}
}

type DonationStarted struct {
	DonationUID   string
	AmountInCents int
	Currency      string
	DonorEmail    string
	CampaignUID   int
}

func (e DonationStarted) GetEventTypeName() string {
	return donationStartedName
}

func (e DonationStarted) GetAggregateName() string {
	return e.DonationUID
}

type DonationCompleted struct {
	DonationUID   string
	Status        donationapi.Status
	StatusDetails string
	PaymentMethod string
}

func (e DonationCompleted) GetEventTypeName() string {
	return donationCompletedName
}

func (e DonationCompleted) GetAggregateName() string {
	return e.DonationUID
}
