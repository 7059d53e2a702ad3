// Package onboardingv1 defines the onboarding.v1 service messages, carried with the JSON codec.
package onboardingv1

// Company is the company part of an onboarding request.
type Company struct {
	Name                 string `json:"name"`
	IncorporationType    string `json:"incorporationType"`
	IncorporationDate    string `json:"incorporationDate"`
	IncorporationCountry string `json:"incorporationCountry"`
	IncorporationState   string `json:"incorporationState"`
	StreetAddress        string `json:"streetAddress"`
	City                 string `json:"city"`
	State                string `json:"state"`
	Zipcode              string `json:"zipcode"`
	Country              string `json:"country,omitempty"`
}

// User is the profile part of an onboarding request.
type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Title string `json:"title"`
}

type OnboardRequest struct {
	Company *Company `json:"company"`
	User    *User    `json:"user"`
}

func (r *OnboardRequest) GetCompany() *Company {
	if r == nil {
		return nil
	}
	return r.Company
}

func (r *OnboardRequest) GetUser() *User {
	if r == nil {
		return nil
	}
	return r.User
}

type OnboardResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	PublicID string `json:"publicId,omitempty"`
}

func (r *OnboardResponse) GetSuccess() bool {
	if r == nil {
		return false
	}
	return r.Success
}

func (r *OnboardResponse) GetMessage() string {
	if r == nil {
		return ""
	}
	return r.Message
}

func (r *OnboardResponse) GetPublicID() string {
	if r == nil {
		return ""
	}
	return r.PublicID
}
