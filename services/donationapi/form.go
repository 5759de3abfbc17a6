package donationapi

import (
	"net/http"
	"net/url"

	formcodec "github.com/go-playground/form/v4"

	"github.com/goodcause/donationbackend/lib/myerrors"
)

type AmountForm struct {
	AmountInCents  int  `form:"amount"`
	IsCustomAmount bool `form:"customAmount"`
}

type DonorForm struct {
	IDType    string `form:"donor.idType"`
	IDNumber  string `form:"donor.idNumber"`
	FirstName string `form:"donor.firstName"`
	LastName  string `form:"donor.lastName"`
	Email     string `form:"donor.email"`
	Phone     string `form:"donor.phone"`
	City      string `form:"donor.city"`
	Country   string `form:"donor.country"`
}

func (f DonorForm) ToDonorInfo() DonorInfo {
	return DonorInfo{
		IDType:    IdentificationType(f.IDType),
		IDNumber:  f.IDNumber,
		FirstName: f.FirstName,
		LastName:  f.LastName,
		Email:     f.Email,
		Phone:     f.Phone,
		City:      f.City,
		Country:   f.Country,
	}
}

func NewAmountFromRequest(r *http.Request) (AmountForm, error) {
	err := r.ParseForm()
	if err != nil {
		return AmountForm{}, myerrors.NewInvalidInputError(err)
	}
	return decodeForm[AmountForm](r.Form)
}

func NewDonorFromRequest(r *http.Request) (DonorForm, error) {
	err := r.ParseForm()
	if err != nil {
		return DonorForm{}, myerrors.NewInvalidInputError(err)
	}
	return decodeForm[DonorForm](r.Form)
}

func decodeForm[T any](values url.Values) (T, error) {
	decoded := new(T)
	err := formcodec.NewDecoder().Decode(decoded, values)
	if err != nil {
		return *decoded, myerrors.NewInvalidInputErrorf("error decoding form: %s", err)
	}

	return *decoded, nil
}
