package paymentstatus

import (
	"context"
	"fmt"
	"time"

	"github.com/goodcause/donationbackend/lib/myerrors"
	"github.com/goodcause/donationbackend/lib/mylog"
	"github.com/goodcause/donationbackend/services/donationapi"
)

const (
	maxAttempts   = 5
	retryInterval = 3 * time.Second
)

type service struct {
	gateway       GatewayValidator
	backend       BackendStatus
	logger        mylog.Logger
	maxAttempts   int
	retryInterval time.Duration
}

// Use dependency injection to isolate the infrastructure and easy testing
func newService(gateway GatewayValidator, backend BackendStatus, logger mylog.Logger, interval time.Duration) *service {
	return &service{
		gateway:       gateway,
		backend:       backend,
		logger:        logger,
		maxAttempts:   maxAttempts,
		retryInterval: interval,
	}
}

type lookupResult struct {
	status donationapi.TransactionStatus
	err    error
}

// Reconcile determines the outcome of a payment by consulting the gateway and
// the backend. Both sources are queried concurrently on every attempt and the
// gateway's answer wins when both respond. A pending outcome is retried until
// the attempt budget runs out.
func (s *service) Reconcile(c context.Context, ref donationapi.PaymentReference) (donationapi.TransactionStatus, error) {
	if ref.IsEmpty() {
		return donationapi.TransactionStatus{}, myerrors.NewInvalidInputErrorf("no payment reference to check status on")
	}

	var lastErr error
	var lastPending donationapi.TransactionStatus
	var sawPending bool
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		status, found, err := s.lookupOnce(c, ref)
		if found && !status.Status.IsPending() {
			return status, nil
		}
		if found {
			lastPending = status
			sawPending = true
		} else {
			lastErr = err
		}

		s.logger.Log(c, ref.String(), mylog.SeverityInfo, "Status of %s unresolved after attempt %d of %d",
			ref, attempt, s.maxAttempts)

		if attempt < s.maxAttempts {
			select {
			case <-time.After(s.retryInterval):
			case <-c.Done():
				return donationapi.TransactionStatus{}, myerrors.NewUnavailableError(fmt.Errorf("status check aborted: %s", c.Err()))
			}
		}
	}

	if sawPending {
		// Never resolved, but at least one source did answer: report the
		// pending outcome rather than an error.
		return lastPending, nil
	}

	return donationapi.TransactionStatus{}, myerrors.NewUnavailableError(fmt.Errorf("could not determine payment status of %s: %s", ref, lastErr))
}

// lookupOnce fires both lookups in parallel and combines the answers,
// preferring the gateway's.
func (s *service) lookupOnce(c context.Context, ref donationapi.PaymentReference) (donationapi.TransactionStatus, bool, error) {
	gatewayChan := make(chan lookupResult, 1)
	backendChan := make(chan lookupResult, 1)

	go func() {
		if ref.GatewayRef == "" {
			gatewayChan <- lookupResult{err: myerrors.NewNotFoundError(fmt.Errorf("no gateway reference"))}
			return
		}
		status, err := s.gateway.Validate(c, ref.GatewayRef)
		gatewayChan <- lookupResult{status: status, err: err}
	}()
	go func() {
		if ref.BackendRef == "" {
			backendChan <- lookupResult{err: myerrors.NewNotFoundError(fmt.Errorf("no backend reference"))}
			return
		}
		status, err := s.backend.GetStatus(c, ref.BackendRef)
		backendChan <- lookupResult{status: status, err: err}
	}()

	gateway := <-gatewayChan
	backend := <-backendChan

	if gateway.err == nil {
		return gateway.status, true, nil
	}
	if backend.err == nil {
		return backend.status, true, nil
	}

	// Both failed: the gateway error is the more telling one.
	if ref.GatewayRef != "" {
		return donationapi.TransactionStatus{}, false, gateway.err
	}
	return donationapi.TransactionStatus{}, false, backend.err
}
