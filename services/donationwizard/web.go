package donationwizard

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/goodcause/donationbackend/lib/mycontext"
	"github.com/goodcause/donationbackend/lib/myerrors"
	"github.com/goodcause/donationbackend/lib/myhttp"
	"github.com/goodcause/donationbackend/lib/mylog"
	"github.com/goodcause/donationbackend/lib/mystore"
	"github.com/goodcause/donationbackend/lib/mytime"
	"github.com/goodcause/donationbackend/lib/myuuid"
	"github.com/goodcause/donationbackend/services/donation"
	"github.com/goodcause/donationbackend/services/donationapi"
	"github.com/goodcause/donationbackend/services/gatewayepayco"
)

//go:embed templates
var templateFolder embed.FS
var (
	wizardPageTemplate *template.Template
	widgetPageTemplate *template.Template
)

func init() {
	wizardPageTemplate = template.Must(template.ParseFS(templateFolder, "templates/wizard.html"))
	widgetPageTemplate = template.Must(template.ParseFS(templateFolder, "templates/widget.html"))
}

// Amounts offered on step 1. The donor can always pick a custom amount
// within the allowed bounds instead.
var presetAmountsInCents = []int{20000, 50000, 100000, 500000}

type webService struct {
	logger  mylog.Logger
	service *service
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewWebService(nower mytime.Nower, uuider myuuid.UUIDer, draftStore mystore.Store[donationapi.DonationDraft], donator donation.Donator, checkout gatewayepayco.Client) *webService {
	logger := mylog.New("donationwizard")

	return &webService{
		logger:  logger,
		service: newService(logger, nower, uuider, draftStore, donator, checkout),
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	// Endpoints that compose the donor-facing wizard
	router.HandleFunc("/donate", s.startWizardPage()).Methods("GET")
	router.HandleFunc("/donate/{draftUID}", s.wizardPage()).Methods("GET")

	router.HandleFunc("/donate/{draftUID}/amount", s.submitAmountPage()).Methods("POST")
	router.HandleFunc("/donate/{draftUID}/donor", s.submitDonorPage()).Methods("POST")
	router.HandleFunc("/donate/{draftUID}/back", s.stepBackPage()).Methods("POST")
	router.HandleFunc("/donate/{draftUID}/submit", s.submitPage()).Methods("POST")

	return nil
}

type presetAmount struct {
	AmountInCents int
	Formatted     string
}

type wizardPageData struct {
	Draft         donationapi.DonationDraft
	PresetAmounts []presetAmount
	ErrorMessage  string
}

func (s *webService) startWizardPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		draftUID, err := s.service.startDonation(c)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		http.Redirect(w, r, fmt.Sprintf("/donate/%s", draftUID), http.StatusSeeOther)
	}
}

func (s *webService) wizardPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		draft, err := s.service.getDraft(c, mux.Vars(r)["draftUID"])
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		s.renderWizard(c, w, errorWriter, draft, "")
	}
}

func (s *webService) submitAmountPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		draftUID := mux.Vars(r)["draftUID"]

		form, err := donationapi.NewAmountFromRequest(r)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		err = s.service.submitAmount(c, draftUID, form)
		if err != nil {
			s.renderStepError(c, w, errorWriter, draftUID, err)
			return
		}

		http.Redirect(w, r, fmt.Sprintf("/donate/%s", draftUID), http.StatusSeeOther)
	}
}

func (s *webService) submitDonorPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		draftUID := mux.Vars(r)["draftUID"]

		form, err := donationapi.NewDonorFromRequest(r)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		err = s.service.submitDonor(c, draftUID, form)
		if err != nil {
			s.renderStepError(c, w, errorWriter, draftUID, err)
			return
		}

		http.Redirect(w, r, fmt.Sprintf("/donate/%s", draftUID), http.StatusSeeOther)
	}
}

func (s *webService) stepBackPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		draftUID := mux.Vars(r)["draftUID"]

		err := s.service.stepBack(c, draftUID)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		http.Redirect(w, r, fmt.Sprintf("/donate/%s", draftUID), http.StatusSeeOther)
	}
}

func (s *webService) submitPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		draftUID := mux.Vars(r)["draftUID"]

		result, err := s.service.submit(c, draftUID, myhttp.HostnameWithScheme(r))
		if err != nil {
			s.renderSubmitError(c, w, errorWriter, draftUID, err)
			return
		}

		if result.Mode == gatewayepayco.ModeRedirect {
			http.Redirect(w, r, result.RedirectURL, http.StatusSeeOther)
			return
		}

		// Pass relevant data to the embedded widget page
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		err = widgetPageTemplate.Execute(w, result.Widget)
		if err != nil {
			errorWriter.WriteError(c, w, 2, myerrors.NewInternalError(fmt.Errorf("error executing template: %s", err)))
			return
		}
	}
}

// renderSubmitError keeps the donor on the review step with an inline message
// so the payment can be retried. Conflicts and missing drafts keep the json
// error path.
func (s *webService) renderSubmitError(c context.Context, w http.ResponseWriter, errorWriter myhttp.ResponseWriter, draftUID string, submitErr error) {
	httpStatus := myerrors.GetHTTPStatus(submitErr)
	if httpStatus == http.StatusConflict || httpStatus == http.StatusNotFound {
		errorWriter.WriteError(c, w, 1, submitErr)
		return
	}

	draft, err := s.service.getDraft(c, draftUID)
	if err != nil {
		errorWriter.WriteError(c, w, 1, err)
		return
	}

	s.renderWizard(c, w, errorWriter, draft, submitErr.Error())
}

// renderStepError re-renders the wizard with the validation message so the
// donor can correct the input. Non-validation errors keep the json error path.
func (s *webService) renderStepError(c context.Context, w http.ResponseWriter, errorWriter myhttp.ResponseWriter, draftUID string, stepErr error) {
	validationErr := donationapi.ValidationError{}
	if !errors.As(stepErr, &validationErr) {
		errorWriter.WriteError(c, w, 1, stepErr)
		return
	}

	draft, err := s.service.getDraft(c, draftUID)
	if err != nil {
		errorWriter.WriteError(c, w, 1, err)
		return
	}

	s.renderWizard(c, w, errorWriter, draft, validationErr.Message)
}

func (s *webService) renderWizard(c context.Context, w http.ResponseWriter, errorWriter myhttp.ResponseWriter, draft donationapi.DonationDraft, errorMessage string) {
	data := wizardPageData{
		Draft:        draft,
		ErrorMessage: errorMessage,
	}
	for _, amount := range presetAmountsInCents {
		data.PresetAmounts = append(data.PresetAmounts, presetAmount{
			AmountInCents: amount,
			Formatted:     donationapi.FormatCOP(amount),
		})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := wizardPageTemplate.Execute(w, data)
	if err != nil {
		errorWriter.WriteError(c, w, 2, myerrors.NewInternalError(fmt.Errorf("error executing template: %s", err)))
		return
	}
}
