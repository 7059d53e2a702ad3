// Package domain holds the onboarding request and result types.
package domain

import (
	"errors"
	"strings"
	"time"

	companydomain "github.com/AryanPandeyy/opencap.co/internal/company/domain"
	userdomain "github.com/AryanPandeyy/opencap.co/internal/user/domain"
)

// Result messages returned to the caller.
const (
	MessageSuccess = "successfully onboarded"
	MessageFailure = "failed to onboard"
)

// CompanyInput carries the caller-supplied company attributes.
type CompanyInput struct {
	Name                 string
	IncorporationType    string
	IncorporationDate    string
	IncorporationCountry string
	IncorporationState   string
	StreetAddress        string
	City                 string
	State                string
	Zipcode              string
	Country              string
}

// UserInput carries the profile fields set on the onboarding user and their title in the company.
type UserInput struct {
	Name  string
	Email string
	Title string
}

// Input is a validated onboarding request.
type Input struct {
	Company CompanyInput
	User    UserInput
}

// Result is the envelope returned by the onboarding operation.
type Result struct {
	Success  bool
	Message  string
	PublicID string
}

// Succeeded returns the success envelope for publicID.
func Succeeded(publicID string) Result {
	return Result{Success: true, Message: MessageSuccess, PublicID: publicID}
}

// Failed returns the generic failure envelope.
func Failed() Result {
	return Result{Success: false, Message: MessageFailure}
}

// Normalize trims surrounding whitespace from every field.
func (in *Input) Normalize() {
	c := &in.Company
	for _, f := range []*string{
		&c.Name, &c.IncorporationType, &c.IncorporationDate, &c.IncorporationCountry,
		&c.IncorporationState, &c.StreetAddress, &c.City, &c.State, &c.Zipcode, &c.Country,
		&in.User.Name, &in.User.Email, &in.User.Title,
	} {
		*f = strings.TrimSpace(*f)
	}
}

// Validate checks the request contract. Returns an error describing the first validation failure.
func (in *Input) Validate() error {
	c := in.Company
	if c.Name == "" {
		return errors.New("company.name is required")
	}
	if _, ok := companydomain.ParseIncorporationType(c.IncorporationType); !ok {
		return errors.New("company.incorporationType must be one of llc, c-corp, s-corp")
	}
	if _, err := companydomain.ParseIncorporationDate(c.IncorporationDate); err != nil {
		return errors.New("company." + err.Error())
	}
	required := []struct{ field, value string }{
		{"company.incorporationCountry", c.IncorporationCountry},
		{"company.incorporationState", c.IncorporationState},
		{"company.streetAddress", c.StreetAddress},
		{"company.city", c.City},
		{"company.state", c.State},
		{"company.zipcode", c.Zipcode},
		{"user.name", in.User.Name},
		{"user.title", in.User.Title},
	}
	for _, r := range required {
		if r.value == "" {
			return errors.New(r.field + " is required")
		}
	}
	if err := userdomain.ValidateEmail(in.User.Email); err != nil {
		return errors.New("user." + err.Error())
	}
	return nil
}

// NewCompany builds the company record for this input. The input must have passed Validate.
func (in *Input) NewCompany(id, publicID string, now time.Time) (*companydomain.Company, error) {
	date, err := companydomain.ParseIncorporationDate(in.Company.IncorporationDate)
	if err != nil {
		return nil, err
	}
	typ, _ := companydomain.ParseIncorporationType(in.Company.IncorporationType)
	c := &companydomain.Company{
		ID:                   id,
		PublicID:             publicID,
		Name:                 in.Company.Name,
		IncorporationType:    typ,
		IncorporationDate:    date,
		IncorporationCountry: in.Company.IncorporationCountry,
		IncorporationState:   in.Company.IncorporationState,
		StreetAddress:        in.Company.StreetAddress,
		City:                 in.Company.City,
		State:                in.Company.State,
		Zipcode:              in.Company.Zipcode,
		Country:              in.Company.Country,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
