package paymentstatus

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/goodcause/donationbackend/lib/mycontext"
	"github.com/goodcause/donationbackend/lib/myerrors"
	"github.com/goodcause/donationbackend/lib/myhttp"
	"github.com/goodcause/donationbackend/lib/mylog"
	"github.com/goodcause/donationbackend/services/donationapi"
)

//go:embed templates
var templateFolder embed.FS
var (
	responsePageTemplate *template.Template
)

func init() {
	responsePageTemplate = template.Must(template.ParseFS(templateFolder, "templates/response.html"))
}

type webService struct {
	logger  mylog.Logger
	service *service
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewWebService(gateway GatewayValidator, backend BackendStatus) *webService {
	logger := mylog.New("paymentstatus")

	return &webService{
		logger:  logger,
		service: newService(gateway, backend, logger, retryInterval),
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	// The gateway redirects the donor here after checkout has finalized
	router.HandleFunc("/donate/response", s.responsePage()).Methods("GET")

	return nil
}

type responsePageData struct {
	Status          donationapi.Status
	AmountFormatted string
	DonorName       string
	Reference       string
	IsApproved      bool
	IsPending       bool
	CanRetry        bool
}

func (s *webService) responsePage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		ref := donationapi.PaymentReference{
			GatewayRef: r.URL.Query().Get("ref_payco"),
			BackendRef: r.URL.Query().Get("ref"),
		}

		status, err := s.service.Reconcile(c, ref)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		data := responsePageData{
			Status:          status.Status,
			AmountFormatted: status.AmountFormatted(),
			DonorName:       status.DonorName,
			Reference:       status.ReferenceCode,
			IsApproved:      status.Status == donationapi.StatusApproved,
			IsPending:       status.Status.IsPending(),
			CanRetry:        status.Status == donationapi.StatusRejected || status.Status == donationapi.StatusFailed,
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		err = responsePageTemplate.Execute(w, data)
		if err != nil {
			errorWriter.WriteError(c, w, 2, myerrors.NewInternalError(fmt.Errorf("error executing template: %s", err)))
			return
		}
	}
}
